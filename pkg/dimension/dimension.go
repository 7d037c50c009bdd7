package dimension

import "fmt"

// Value is a single legal value of a dimension. Authors are expected to use
// comparable values (strings, ints, bools, and similar) since values are
// compared with == and used as map keys; non-comparable values (slices,
// maps, funcs) will panic on first comparison.
type Value = any

// Dimension is a named, ordered, duplicate-free list of values with a
// distinguished default.
type Dimension struct {
	name        string
	values      []Value
	description string
	defaultVal  Value
}

// New constructs a Dimension. The name must be non-empty and the value list
// non-empty with no duplicates. If defaultVal is nil, the first value
// becomes the default; otherwise defaultVal must be one of values.
func New(name string, values []Value, description string, defaultVal Value) (*Dimension, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(values) == 0 {
		return nil, ErrNoValues
	}

	seen := make(map[Value]bool, len(values))
	for _, v := range values {
		if seen[v] {
			return nil, fmt.Errorf("%w: %q has duplicate value %v", ErrDuplicateValue, name, v)
		}
		seen[v] = true
	}

	d := &Dimension{
		name:        name,
		values:      append([]Value(nil), values...),
		description: description,
	}

	if defaultVal == nil {
		d.defaultVal = values[0]
		return d, nil
	}

	if !seen[defaultVal] {
		return nil, fmt.Errorf("%w: %q default %v not in %v", ErrDefaultNotInValues, name, defaultVal, values)
	}
	d.defaultVal = defaultVal
	return d, nil
}

// MustNew is like New but panics on error. Intended for package-level
// dimension declarations where the input is known-good at compile time.
func MustNew(name string, values []Value, description string, defaultVal Value) *Dimension {
	d, err := New(name, values, description, defaultVal)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the dimension's name.
func (d *Dimension) Name() string { return d.name }

// Description returns the dimension's human-readable description.
func (d *Dimension) Description() string { return d.description }

// Values returns a copy of the dimension's legal values in declaration order.
func (d *Dimension) Values() []Value { return append([]Value(nil), d.values...) }

// Default returns the dimension's default value.
func (d *Dimension) Default() Value { return d.defaultVal }

// Contains reports whether v is one of the dimension's declared values.
func (d *Dimension) Contains(v Value) bool {
	for _, dv := range d.values {
		if dv == v {
			return true
		}
	}
	return false
}

// String returns a human-readable representation of the dimension.
func (d *Dimension) String() string {
	return fmt.Sprintf("Dimension(%s=%v, default=%v)", d.name, d.values, d.defaultVal)
}
