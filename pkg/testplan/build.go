package testplan

import (
	"fmt"

	"github.com/corehatch/statecover/pkg/constraint"
	"github.com/corehatch/statecover/pkg/dimension"
)

// BuildSpace constructs a dimension.Space from the plan's declared
// dimensions, in declaration order.
func (c *Config) BuildSpace() (*dimension.Space, error) {
	dims := make([]*dimension.Dimension, 0, len(c.Dimensions))
	for _, dc := range c.Dimensions {
		d, err := dimension.New(dc.Name, dc.Values, dc.Description, dc.Default)
		if err != nil {
			return nil, fmt.Errorf("testplan: dimension %q: %w", dc.Name, err)
		}
		dims = append(dims, d)
	}
	return dimension.NewSpace(dims)
}

// BuildConstraintSet constructs a constraint.Set from the plan's declared
// constraints. Only "exclude" constraints can be built from YAML alone;
// "require" and "at_most_one" entries are skipped with a warning since
// their predicates are Go closures a plan file cannot express.
func (c *Config) BuildConstraintSet() (*constraint.Set, []string) {
	set := constraint.NewSet()
	var warnings []string

	for _, cc := range c.Constraints {
		switch cc.Kind {
		case "exclude":
			set.Add(constraint.Exclude(cc.Name, cc.Description, constraint.Assignment(cc.Forbidden)))
		default:
			warnings = append(warnings, fmt.Sprintf(
				"testplan: constraint %q has kind %q, which needs a Go predicate and cannot be built from the plan alone; register it directly with the builder", cc.Name, cc.Kind))
		}
	}
	return set, warnings
}
