package constraint

// Set is an ordered collection of constraints checked together against an
// assignment.
type Set struct {
	constraints []*Constraint
}

// NewSet builds a Set from zero or more constraints.
func NewSet(constraints ...*Constraint) *Set {
	return &Set{constraints: append([]*Constraint(nil), constraints...)}
}

// Add appends a constraint to the set.
func (s *Set) Add(c *Constraint) {
	s.constraints = append(s.constraints, c)
}

// Len returns the number of constraints in the set.
func (s *Set) Len() int { return len(s.constraints) }

// Constraints returns the set's constraints in insertion order.
func (s *Set) Constraints() []*Constraint {
	return append([]*Constraint(nil), s.constraints...)
}

// IsValid reports whether the assignment satisfies every constraint in the
// set. It always evaluates every constraint (no short-circuit) so that
// every applicable warning surfaces, mirroring how invariant checks never
// stop at the first failure.
func (s *Set) IsValid(a Assignment) (ok bool, warnings []string) {
	ok = true
	for _, c := range s.constraints {
		valid, warning := c.IsValid(a)
		if warning != "" {
			warnings = append(warnings, warning)
		}
		if !valid {
			ok = false
		}
	}
	return ok, warnings
}

// ViolatedBy returns the constraints the assignment fails, in set order.
func (s *Set) ViolatedBy(a Assignment) []*Constraint {
	var violated []*Constraint
	for _, c := range s.constraints {
		if valid, _ := c.IsValid(a); !valid {
			violated = append(violated, c)
		}
	}
	return violated
}

// Filter returns the subset of assignments that satisfy every constraint in
// the set, along with any warnings raised while evaluating them.
func (s *Set) Filter(assignments []Assignment) (kept []Assignment, warnings []string) {
	for _, a := range assignments {
		ok, w := s.IsValid(a)
		warnings = append(warnings, w...)
		if ok {
			kept = append(kept, a)
		}
	}
	return kept, warnings
}
