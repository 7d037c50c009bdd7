package dimension

import (
	"fmt"
	"iter"
)

// Space is an ordered collection of dimensions with unique names.
type Space struct {
	dimensions []*Dimension
	byName     map[string]*Dimension
}

// NewSpace constructs a dimension space from an ordered list of dimensions.
// It fails if any two dimensions share a name.
func NewSpace(dims []*Dimension) (*Space, error) {
	byName := make(map[string]*Dimension, len(dims))
	for _, d := range dims {
		if _, exists := byName[d.Name()]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDimension, d.Name())
		}
		byName[d.Name()] = d
	}
	return &Space{
		dimensions: append([]*Dimension(nil), dims...),
		byName:     byName,
	}, nil
}

// Dimensions returns the space's dimensions in declaration order.
func (s *Space) Dimensions() []*Dimension { return append([]*Dimension(nil), s.dimensions...) }

// Len returns the number of dimensions in the space.
func (s *Space) Len() int { return len(s.dimensions) }

// Dimension returns the named dimension, or an error if it is not present.
func (s *Space) Dimension(name string) (*Dimension, error) {
	d, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, name)
	}
	return d, nil
}

// TotalCombinations returns the number of exhaustive combinations: the
// product of every dimension's value-list size.
func (s *Space) TotalCombinations() int {
	total := 1
	for _, d := range s.dimensions {
		total *= len(d.Values())
	}
	return total
}

// All lazily enumerates every combination in the space's Cartesian product,
// in dimension-declaration order followed by each dimension's declared
// value order.
func (s *Space) All() iter.Seq[*Combination] {
	return func(yield func(*Combination) bool) {
		if len(s.dimensions) == 0 {
			return
		}
		indices := make([]int, len(s.dimensions))
		for {
			values := make(map[string]Value, len(s.dimensions))
			for i, d := range s.dimensions {
				values[d.Name()] = d.Values()[indices[i]]
			}
			combo, err := newCombination(s, values)
			if err != nil {
				return
			}
			if !yield(combo) {
				return
			}

			// Odometer-style increment, rightmost dimension fastest.
			pos := len(s.dimensions) - 1
			for pos >= 0 {
				indices[pos]++
				if indices[pos] < len(s.dimensions[pos].Values()) {
					break
				}
				indices[pos] = 0
				pos--
			}
			if pos < 0 {
				return
			}
		}
	}
}

// AllCombinations drains All into a slice. Prefer All for large spaces.
func (s *Space) AllCombinations() []*Combination {
	out := make([]*Combination, 0, s.TotalCombinations())
	for c := range s.All() {
		out = append(out, c)
	}
	return out
}

// DefaultCombination returns the combination mapping every dimension to its
// default value.
func (s *Space) DefaultCombination() *Combination {
	values := make(map[string]Value, len(s.dimensions))
	for _, d := range s.dimensions {
		values[d.Name()] = d.Default()
	}
	combo, _ := newCombination(s, values)
	return combo
}
