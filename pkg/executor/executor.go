package executor

import (
	"fmt"
	"time"

	"github.com/corehatch/statecover/pkg/builder"
	"github.com/corehatch/statecover/pkg/dimension"
	"github.com/corehatch/statecover/pkg/explore"
	"github.com/corehatch/statecover/pkg/graph"
	"github.com/google/uuid"
)

// Options configures one Execute run.
type Options struct {
	// ExploreGraph, when true, runs a full exploration of the graph
	// (Phase A) before replaying combinations individually. A failure
	// exploring the graph is recorded as a warning, not a fatal error: the
	// per-combination replay still runs.
	ExploreGraph bool

	// ExploreOptions configures Phase A, when ExploreGraph is true.
	ExploreOptions explore.Options

	// StopOnFirstFailure ends Phase B's combination replay at the first
	// failing combination instead of attempting every combination
	// independently.
	StopOnFirstFailure bool
}

// Executor replays combinations and, optionally, full graph explorations
// against a live system built by a Builder.
type Executor struct {
	builder *builder.Builder
	graph   *graph.StateGraph
}

// New constructs an Executor over a graph built from b.
func New(b *builder.Builder, g *graph.StateGraph) *Executor {
	return &Executor{builder: b, graph: g}
}

// Execute runs Phase A (optional full exploration) and Phase B (per-
// combination entry-action replay) and aggregates both into one result.
func (e *Executor) Execute(combos []*dimension.Combination, opts Options) *ExecutionResult {
	result := &ExecutionResult{RunID: uuid.NewString()}

	if opts.ExploreGraph {
		exploration, err := explore.Explore(e.graph, opts.ExploreOptions)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("phase A (explore) failed: %v", err))
		} else {
			result.Exploration = exploration
		}
	}

	for _, combo := range combos {
		step := e.executeSingle(combo)
		result.Steps = append(result.Steps, step)
		if opts.StopOnFirstFailure && !step.Success {
			break
		}
	}

	return result
}

// executeSingle replays combo's registered entry actions, in sorted
// dimension-name order, against a fresh context. A failing action stops
// the replay for this combination only; other combinations are unaffected.
func (e *Executor) executeSingle(combo *dimension.Combination) *StepResult {
	start := time.Now()
	ctx := graph.Context{"_current_combination": combo.NodeID()}

	step := &StepResult{Combination: combo}

	for _, setup := range e.builder.EntryActions(combo) {
		ctx[setup.Dimension] = setup.Value
		_, err := setup.Action(ctx)
		if err != nil {
			step.Success = false
			step.Err = fmt.Errorf("setup for %s=%v: %w", setup.Dimension, setup.Value, err)
			step.DurationMS = float64(time.Since(start).Microseconds()) / 1000
			return step
		}
	}

	step.Success = true
	step.DurationMS = float64(time.Since(start).Microseconds()) / 1000
	return step
}
