package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/corehatch/statecover/pkg/builder"
	"github.com/corehatch/statecover/pkg/covering"
	"github.com/corehatch/statecover/pkg/diagram"
	"github.com/corehatch/statecover/pkg/dimension"
	"github.com/corehatch/statecover/pkg/executor"
	"github.com/corehatch/statecover/pkg/explore"
	"github.com/corehatch/statecover/pkg/graph"
	"github.com/corehatch/statecover/pkg/testplan"
)

const version = "0.1.0"

// CLI flags
var (
	planPath   = flag.String("plan", "", "Path to YAML test plan (required)")
	baseURL    = flag.String("base-url", "", "Base URL of the API under test (omit for a dry run with no-op transitions)")
	outputDir  = flag.String("output", ".", "Output directory for reports and diagrams")
	format     = flag.String("format", "text", "Report format: text, svg, or all")
	seedFlag   = flag.Uint64("seed", 0, "Override the seed from the plan (0 = use plan seed)")
	strength   = flag.Int("strength", 0, "Override the covering strength from the plan (0 = use plan strength)")
	exploreAll = flag.Bool("explore", true, "Explore the full state graph before replaying combinations")
	stopFirst  = flag.Bool("stop-on-failure", false, "Stop combination replay at the first failure")
	timeoutS   = flag.Int("timeout", 10, "HTTP timeout in seconds for the demo client")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("covertest version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *planPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -plan flag is required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"text": true, "svg": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: text, svg, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading test plan from %s\n", *planPath)
	}

	plan, err := testplan.LoadConfig(*planPath)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}

	if *seedFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding seed from %d to %d\n", plan.Seed, *seedFlag)
		}
		plan.Seed = *seedFlag
	}
	if *strength != 0 {
		plan.Strength = *strength
	}

	if *verbose {
		fmt.Printf("Using seed: %d, strength: %d\n", plan.Seed, plan.Strength)
		fmt.Printf("Dimensions: %d\n", len(plan.Dimensions))
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	space, err := plan.BuildSpace()
	if err != nil {
		return fmt.Errorf("failed to build dimension space: %w", err)
	}

	constraints, constraintWarnings := plan.BuildConstraintSet()
	for _, w := range constraintWarnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	client := newDemoClient(*baseURL, time.Duration(*timeoutS)*time.Second)
	if *baseURL == "" && *verbose {
		fmt.Println("No -base-url given; running a dry run with no-op transitions.")
	}

	b := builder.New(space, constraints, plan.Seed)
	if err := wireGeneric(b, space, client); err != nil {
		return fmt.Errorf("failed to wire plan against demo client: %w", err)
	}

	gen, err := covering.NewGenerator(space, constraints, plan.Seed)
	if err != nil {
		return fmt.Errorf("failed to create covering-array generator: %w", err)
	}

	if *verbose {
		fmt.Println("Generating covering array...")
	}
	start := time.Now()
	combos, genWarnings, err := gen.Generate(plan.Strength)
	if err != nil {
		return fmt.Errorf("covering-array generation failed: %w", err)
	}
	for _, w := range genWarnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	if *verbose {
		fmt.Printf("Generated %d combinations in %v\n", len(combos), time.Since(start))
		stats := gen.CoverageStats(combos, plan.Strength)
		fmt.Println(stats.String())
	}

	g, buildWarnings, err := b.BuildFromCombinations(combos)
	if err != nil {
		return fmt.Errorf("failed to lift combinations into a graph: %w", err)
	}
	for _, w := range buildWarnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	exec := executor.New(b, g)
	result := exec.Execute(combos, executor.Options{
		ExploreGraph:       *exploreAll,
		ExploreOptions:     explore.Options{StopOnViolation: true},
		StopOnFirstFailure: *stopFirst,
	})

	baseName := fmt.Sprintf("covertest_%d", plan.Seed)

	if err := writeReport(result, baseName); err != nil {
		return err
	}

	if *format == "svg" || *format == "all" {
		if err := writeSVG(g, result, plan.Seed, baseName); err != nil {
			return err
		}
	}

	fmt.Printf("Ran %d combination(s), %d succeeded, %d failed (run=%s)\n",
		len(result.Steps), len(result.Successes()), len(result.Failures()), result.RunID)

	if len(result.Failures()) > 0 {
		return fmt.Errorf("%d combination(s) failed; see %s", len(result.Failures()), filepath.Join(*outputDir, baseName+"_bugreport.md"))
	}
	return nil
}

// wireGeneric registers a transition, setup, and checker for every
// dimension-value pair in space against the demo client, so the graph
// builder has something to execute without a test author writing any Go.
// A real integration replaces this with domain-specific closures.
func wireGeneric(b *builder.Builder, space *dimension.Space, client *demoClient) error {
	for _, d := range space.Dimensions() {
		if err := b.RegisterChecker(d.Name(), client.checker()); err != nil {
			return err
		}
		for _, value := range d.Values() {
			if err := b.RegisterSetup(d.Name(), value, client.transition(d.Name(), value)); err != nil {
				return err
			}
			for _, other := range d.Values() {
				if value == other {
					continue
				}
				if err := b.RegisterTransition(d.Name(), value, other, client.transition(d.Name(), other)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeReport(result *executor.ExecutionResult, baseName string) error {
	summaryPath := filepath.Join(*outputDir, baseName+"_summary.txt")
	if err := os.WriteFile(summaryPath, []byte(result.Summary()), 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	if *verbose {
		fmt.Printf("Wrote summary to %s\n", summaryPath)
	}

	bugReportPath := filepath.Join(*outputDir, baseName+"_bugreport.md")
	if err := os.WriteFile(bugReportPath, []byte(result.BugReport()), 0644); err != nil {
		return fmt.Errorf("failed to write bug report: %w", err)
	}
	if *verbose {
		fmt.Printf("Wrote bug report to %s\n", bugReportPath)
	}
	return nil
}

func writeSVG(g *graph.StateGraph, result *executor.ExecutionResult, seed uint64, baseName string) error {
	layout, err := diagram.ComputeLayout(g, seed, diagram.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to lay out diagram: %w", err)
	}

	opts := diagram.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("State Graph (run=%s)", result.RunID)

	data, err := diagram.RenderSVG(g, layout, result.Exploration, opts)
	if err != nil {
		return fmt.Errorf("failed to render svg: %w", err)
	}

	svgPath := filepath.Join(*outputDir, baseName+".svg")
	if err := os.WriteFile(svgPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	if *verbose {
		fmt.Printf("Wrote diagram to %s\n", svgPath)
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: covertest -plan <plan.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'covertest -help' for detailed help")
}

func printHelp() {
	fmt.Printf("covertest version %s\n\n", version)
	fmt.Println("A command-line tool for running combinatorial, stateful API tests.")
	fmt.Println("\nUsage:")
	fmt.Println("  covertest -plan <plan.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -plan string")
	fmt.Println("        Path to YAML test plan")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -base-url string")
	fmt.Println("        Base URL of the API under test (omit for a dry run)")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for reports and diagrams (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Report format: text, svg, or all (default: text)")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the seed from the plan (default: 0, use plan seed)")
	fmt.Println("  -strength int")
	fmt.Println("        Override the covering strength from the plan (default: 0, use plan strength)")
	fmt.Println("  -explore")
	fmt.Println("        Explore the full state graph before replaying combinations (default: true)")
	fmt.Println("  -stop-on-failure")
	fmt.Println("        Stop combination replay at the first failure")
	fmt.Println("  -timeout int")
	fmt.Println("        HTTP timeout in seconds for the demo client (default: 10)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Dry run against a plan, no live API")
	fmt.Println("  covertest -plan plan.yaml -verbose")
	fmt.Println("\n  # Run against a live API, writing an SVG diagram")
	fmt.Println("  covertest -plan plan.yaml -base-url http://localhost:8080 -format all -output ./out")
	fmt.Println("\nTest Plan File:")
	fmt.Println("  The YAML test plan specifies the dimension space, strength, and constraints:")
	fmt.Println("  - seed (for deterministic generation)")
	fmt.Println("  - strength (covering-array t-wise strength)")
	fmt.Println("  - dimensions (name, values, default)")
	fmt.Println("  - constraints (exclude; require/at_most_one need Go code)")
	fmt.Println("\n  See pkg/testplan for the full schema.")
}
