// Package executor drives a built graph.StateGraph against a live system
// in two independent phases: an optional full exploration of the graph
// (package explore), and a per-combination replay of each combination's
// entry actions, run independently so one combination's failure never
// blocks the rest from being attempted.
//
// The result is an ExecutionResult: one StepResult per combination plus,
// when Phase A ran, the full ExplorationResult alongside it. Both
// Summary and BugReport render the result as text, the latter formatted
// as Markdown suitable for pasting into an issue.
package executor
