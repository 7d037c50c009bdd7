package graph

import "fmt"

// Context is the mutable key-value bag threaded through state checks,
// transition actions, and invariant checks during a single exploration or
// execution run.
type Context map[string]any

// StateChecker reports whether the context reflects the node it is bound
// to. Builders typically close over a combination or other target value.
type StateChecker func(ctx Context) bool

// ActionFunc executes a named transition against a live system (or a
// simulation of one) and returns whatever response the system produced.
// The response is opaque to the graph package; callers that want to
// inspect it do so with a type assertion.
type ActionFunc func(ctx Context) (any, error)

// InvariantFunc checks a rule that must hold after every transition. It
// returns false and a non-empty message when the rule is violated.
type InvariantFunc func(ctx Context) (bool, string)

// Severity classifies how serious an invariant violation is.
type Severity int

const (
	SeverityCritical Severity = iota
	SeverityHigh
	SeverityMedium
	SeverityLow
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	case SeverityLow:
		return "low"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// InvariantViolation records one invariant failing during a single check.
type InvariantViolation struct {
	Name     string
	Severity Severity
	Message  string
}

func (v InvariantViolation) String() string {
	return fmt.Sprintf("[%s] %s: %s", v.Severity, v.Name, v.Message)
}
