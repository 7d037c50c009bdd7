package constraint

import "fmt"

// Exclude builds a constraint that is violated when the assignment matches
// every given dimension-value pair simultaneously. It is the common "these
// two settings can't coexist" shape, e.g. exclude("no-anon-delete",
// "anonymous users can't delete", Assignment{"auth": "anon", "action":
// "delete"}).
func Exclude(name, description string, forbidden Assignment) *Constraint {
	dims := make([]string, 0, len(forbidden))
	for d := range forbidden {
		dims = append(dims, d)
	}

	predicate := func(a Assignment) bool {
		for d, v := range forbidden {
			if a[d] != v {
				return true
			}
		}
		return false
	}

	return MustNew(name, predicate, description, dims)
}

// Require builds a constraint of the shape "if ifCond holds, thenCond must
// also hold." It is vacuously satisfied whenever ifCond is false.
//
// dimensions scopes the constraint the same way a direct New call would:
// both conditions are expected to only read dimensions in that list, so the
// constraint doesn't fire on assignments that can't yet decide ifCond.
func Require(name string, ifCond, thenCond Predicate, description string, dimensions []string) *Constraint {
	predicate := func(a Assignment) bool {
		if !ifCond(a) {
			return true
		}
		return thenCond(a)
	}
	return MustNew(name, predicate, description, dimensions)
}

// AtMostOne builds a constraint satisfied when at most one of the given
// conditions holds for the assignment.
func AtMostOne(name string, conditions []Predicate, description string, dimensions []string) (*Constraint, error) {
	if len(conditions) == 0 {
		return nil, ErrNoConditions
	}

	predicate := func(a Assignment) bool {
		count := 0
		for _, cond := range conditions {
			if cond(a) {
				count++
			}
		}
		return count <= 1
	}

	c, err := New(name, predicate, description, dimensions)
	if err != nil {
		return nil, fmt.Errorf("at_most_one %q: %w", name, err)
	}
	return c, nil
}
