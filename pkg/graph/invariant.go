package graph

// Invariant is a named rule checked against the context after every
// transition, regardless of which node the transition landed on.
type Invariant struct {
	name        string
	check       InvariantFunc
	severity    Severity
	description string
	sqlExpr     string
}

// NewInvariant constructs an Invariant. name must be non-empty and check
// non-nil.
func NewInvariant(name string, check InvariantFunc, severity Severity, description string) (*Invariant, error) {
	if name == "" {
		return nil, ErrEmptyID
	}
	if check == nil {
		return nil, ErrNilCheck
	}
	return &Invariant{name: name, check: check, severity: severity, description: description}, nil
}

// MustNewInvariant is like NewInvariant but panics on error.
func MustNewInvariant(name string, check InvariantFunc, severity Severity, description string) *Invariant {
	inv, err := NewInvariant(name, check, severity, description)
	if err != nil {
		panic(err)
	}
	return inv
}

func (inv *Invariant) Name() string        { return inv.name }
func (inv *Invariant) Severity() Severity  { return inv.severity }
func (inv *Invariant) Description() string { return inv.description }

// SQLExpr returns the SQL expression reserved for store-backed invariants,
// if one was set with SetSQLExpr. It is documentation only: the core never
// executes it, since a data-store handle is an opaque capability an
// invariant's own closure captures and queries itself.
func (inv *Invariant) SQLExpr() string { return inv.sqlExpr }

// SetSQLExpr attaches the SQL expression a store-backed invariant's check
// closure actually runs, so reporting layers can surface it without parsing
// the closure.
func (inv *Invariant) SetSQLExpr(expr string) { inv.sqlExpr = expr }

// Check evaluates the invariant against ctx. A false result is always
// accompanied by a non-empty message.
func (inv *Invariant) Check(ctx Context) (bool, string) { return inv.check(ctx) }
