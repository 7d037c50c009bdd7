package dimension

import (
	"fmt"
	"sort"
	"strings"
)

// NoSingleDifference is the sentinel dimension name returned by DiffersByOne
// when two combinations differ in zero or more than one dimension.
const NoSingleDifference = ""

// Combination is an immutable mapping from every dimension name in a space
// to exactly one of its legal values.
type Combination struct {
	space  *Space
	values map[string]Value
	nodeID string
}

// NewCombination builds a Combination from an explicit value mapping,
// validating it against the space: every dimension must be present and
// every value must be legal for its dimension.
func NewCombination(space *Space, values map[string]Value) (*Combination, error) {
	for _, d := range space.Dimensions() {
		v, ok := values[d.Name()]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingDimension, d.Name())
		}
		if !d.Contains(v) {
			return nil, fmt.Errorf("%w: %q=%v", ErrValueNotInDimension, d.Name(), v)
		}
	}
	return newCombination(space, values)
}

// newCombination skips validation; callers must guarantee every dimension
// in space has a legal value present in values.
func newCombination(space *Space, values map[string]Value) (*Combination, error) {
	cp := make(map[string]Value, len(values))
	for k, v := range values {
		cp[k] = v
	}
	c := &Combination{space: space, values: cp}
	c.nodeID = deriveNodeID(space, cp)
	return c, nil
}

// deriveNodeID builds a stable identifier from dimension values in the
// space's declared order, independent of map iteration order.
func deriveNodeID(space *Space, values map[string]Value) string {
	var b strings.Builder
	for i, d := range space.Dimensions() {
		if i > 0 {
			b.WriteByte('_')
		}
		fmt.Fprintf(&b, "%s-%v", sanitize(d.Name()), sanitize(fmt.Sprint(values[d.Name()])))
	}
	return b.String()
}

func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "_", "-"), " ", "-")
}

// Value returns the combination's value for the named dimension.
func (c *Combination) Value(name string) (Value, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Get is shorthand for Value, returning nil for an absent dimension.
func (c *Combination) Get(name string) Value {
	return c.values[name]
}

// Values returns a copy of the combination's dimension-name to value mapping.
func (c *Combination) Values() map[string]Value {
	cp := make(map[string]Value, len(c.values))
	for k, v := range c.values {
		cp[k] = v
	}
	return cp
}

// NodeID returns the combination's stable derived identifier, safe for use
// as a state-graph node id.
func (c *Combination) NodeID() string { return c.nodeID }

// Description returns a deterministic human-readable rendering of the
// combination, dimensions in declared order.
func (c *Combination) Description() string {
	names := make([]string, 0, len(c.values))
	if c.space != nil {
		for _, d := range c.space.Dimensions() {
			names = append(names, d.Name())
		}
	} else {
		for k := range c.values {
			names = append(names, k)
		}
		sort.Strings(names)
	}

	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", n, c.values[n]))
	}
	return strings.Join(parts, ", ")
}

// Equal reports whether two combinations have identical dimension-value
// mappings.
func (c *Combination) Equal(other *Combination) bool {
	if other == nil {
		return false
	}
	if len(c.values) != len(other.values) {
		return false
	}
	for k, v := range c.values {
		ov, ok := other.values[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// DiffersByOne returns the name of the single dimension on which c and
// other differ, and true, if exactly one dimension differs. Otherwise it
// returns NoSingleDifference and false. Runs in O(dimensions) time.
func (c *Combination) DiffersByOne(other *Combination) (string, bool) {
	diffDim := NoSingleDifference
	diffCount := 0

	names := make(map[string]bool, len(c.values)+len(other.values))
	for k := range c.values {
		names[k] = true
	}
	for k := range other.values {
		names[k] = true
	}

	for name := range names {
		v1, ok1 := c.values[name]
		v2, ok2 := other.values[name]
		if ok1 != ok2 || v1 != v2 {
			diffCount++
			diffDim = name
			if diffCount > 1 {
				return NoSingleDifference, false
			}
		}
	}

	if diffCount != 1 {
		return NoSingleDifference, false
	}
	return diffDim, true
}

// String returns the combination's derived node id.
func (c *Combination) String() string {
	return c.nodeID
}
