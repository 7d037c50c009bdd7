package executor

import (
	"fmt"
	"strings"

	"github.com/corehatch/statecover/pkg/dimension"
	"github.com/corehatch/statecover/pkg/explore"
)

// StepResult records the outcome of replaying one combination's entry
// actions against a live system.
type StepResult struct {
	Combination *dimension.Combination
	Success     bool
	Err         error
	DurationMS  float64
}

// ExecutionResult aggregates every combination replayed during one
// Execute call, plus an optional full graph exploration.
type ExecutionResult struct {
	RunID       string
	Steps       []*StepResult
	Exploration *explore.ExplorationResult
	Warnings    []string
}

// Successes returns the combinations that replayed cleanly.
func (r *ExecutionResult) Successes() []*StepResult {
	var out []*StepResult
	for _, s := range r.Steps {
		if s.Success {
			out = append(out, s)
		}
	}
	return out
}

// Failures returns the combinations whose replay failed.
func (r *ExecutionResult) Failures() []*StepResult {
	var out []*StepResult
	for _, s := range r.Steps {
		if !s.Success {
			out = append(out, s)
		}
	}
	return out
}

// SuccessRate returns the fraction of replayed combinations that
// succeeded, in [0, 1]. An execution with no steps reports 0.
func (r *ExecutionResult) SuccessRate() float64 {
	if len(r.Steps) == 0 {
		return 0
	}
	return float64(len(r.Successes())) / float64(len(r.Steps))
}

// TotalDurationMS returns the sum of every step's duration.
func (r *ExecutionResult) TotalDurationMS() float64 {
	total := 0.0
	for _, s := range r.Steps {
		total += s.DurationMS
	}
	return total
}

// AvgDurationMS returns the mean step duration, or 0 if no steps ran.
func (r *ExecutionResult) AvgDurationMS() float64 {
	if len(r.Steps) == 0 {
		return 0
	}
	return r.TotalDurationMS() / float64(len(r.Steps))
}

// Summary returns a short human-readable report of the execution.
func (r *ExecutionResult) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Execution Summary ===\n")
	fmt.Fprintf(&b, "run: %s\n", r.RunID)
	fmt.Fprintf(&b, "combinations: %d (%d succeeded, %d failed)\n", len(r.Steps), len(r.Successes()), len(r.Failures()))
	fmt.Fprintf(&b, "success rate: %.1f%%\n", r.SuccessRate()*100)
	fmt.Fprintf(&b, "duration: %.2fms total, %.2fms avg\n", r.TotalDurationMS(), r.AvgDurationMS())
	if r.Exploration != nil {
		fmt.Fprintf(&b, "\n%s", r.Exploration.Summary())
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "warning: %s\n", w)
	}
	return b.String()
}

// BugReport renders every failed combination as a Markdown report, ready
// to paste into an issue tracker.
func (r *ExecutionResult) BugReport() string {
	failures := r.Failures()
	if len(failures) == 0 {
		return "No failures.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Bug Report (run %s)\n\n", r.RunID)
	fmt.Fprintf(&b, "%d of %d combinations failed (%.1f%% success rate).\n\n", len(failures), len(r.Steps), r.SuccessRate()*100)

	for i, s := range failures {
		fmt.Fprintf(&b, "## Failure %d: %s\n\n", i+1, s.Combination.NodeID())
		fmt.Fprintf(&b, "- **Combination**: %s\n", s.Combination.Description())
		fmt.Fprintf(&b, "- **Duration**: %.2fms\n", s.DurationMS)
		if s.Err != nil {
			fmt.Fprintf(&b, "- **Error**: %s\n", s.Err.Error())
		}
		b.WriteString("\n")
	}

	if r.Exploration != nil && !r.Exploration.Success() {
		fmt.Fprintf(&b, "## Graph exploration\n\n")
		fmt.Fprintf(&b, "Broken nodes: %s\n\n", strings.Join(r.Exploration.BrokenNodes(), ", "))
		fmt.Fprintf(&b, "Broken edges: %s\n\n", strings.Join(r.Exploration.BrokenEdges(), ", "))
	}

	return b.String()
}
