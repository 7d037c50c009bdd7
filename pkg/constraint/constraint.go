package constraint

import (
	"fmt"

	"github.com/corehatch/statecover/pkg/dimension"
)

// Assignment is a partial or complete dimension-name to value mapping, the
// shape both full combinations and in-progress covering-array candidates
// are checked against.
type Assignment map[string]dimension.Value

// Predicate reports whether an assignment satisfies some rule. Predicates
// may assume every dimension named in the owning Constraint's Dimensions is
// present in the assignment; IsValid never invokes the predicate otherwise.
type Predicate func(Assignment) bool

// Constraint is a named feasibility rule over a partial dimension
// assignment.
type Constraint struct {
	name        string
	predicate   Predicate
	description string
	dimensions  []string
}

// New constructs a Constraint. If dimensions is non-empty, IsValid is
// vacuously true for any assignment missing one or more of them.
func New(name string, predicate Predicate, description string, dimensions []string) (*Constraint, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if predicate == nil {
		return nil, ErrNilPredicate
	}
	return &Constraint{
		name:        name,
		predicate:   predicate,
		description: description,
		dimensions:  append([]string(nil), dimensions...),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(name string, predicate Predicate, description string, dimensions []string) *Constraint {
	c, err := New(name, predicate, description, dimensions)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Constraint) Name() string          { return c.name }
func (c *Constraint) Description() string   { return c.description }
func (c *Constraint) Dimensions() []string  { return append([]string(nil), c.dimensions...) }

// scopedDimensionsPresent reports whether every dimension the constraint is
// scoped to appears in the assignment.
func (c *Constraint) scopedDimensionsPresent(a Assignment) bool {
	for _, d := range c.dimensions {
		if _, ok := a[d]; !ok {
			return false
		}
	}
	return true
}

// IsValid reports whether the assignment satisfies the constraint. It
// returns true vacuously when a scoped dimension is absent. A predicate
// panic is recovered and reported as a warning with the constraint deemed
// violated, so one badly written predicate never brings down a generation
// run.
func (c *Constraint) IsValid(a Assignment) (ok bool, warning string) {
	if !c.scopedDimensionsPresent(a) {
		return true, ""
	}

	defer func() {
		if r := recover(); r != nil {
			ok = false
			warning = fmt.Sprintf("constraint %q panicked evaluating predicate: %v", c.name, r)
		}
	}()

	if !c.predicate(a) {
		return false, ""
	}
	return true, ""
}

func (c *Constraint) String() string {
	if c.description != "" {
		return fmt.Sprintf("Constraint(%s: %s)", c.name, c.description)
	}
	return fmt.Sprintf("Constraint(%s)", c.name)
}
