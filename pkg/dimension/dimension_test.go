package dimension_test

import (
	"errors"
	"testing"

	"github.com/corehatch/statecover/pkg/dimension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	d, err := dimension.New("auth", []dimension.Value{"anon", "user", "admin"}, "authentication state", nil)
	require.NoError(t, err)
	assert.Equal(t, "auth", d.Name())
	assert.Equal(t, "anon", d.Default())
	assert.True(t, d.Contains("user"))
	assert.False(t, d.Contains("ghost"))
}

func TestNewExplicitDefault(t *testing.T) {
	d, err := dimension.New("auth", []dimension.Value{"anon", "user", "admin"}, "", "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", d.Default())
}

func TestNewErrors(t *testing.T) {
	_, err := dimension.New("", []dimension.Value{"a"}, "", nil)
	require.ErrorIs(t, err, dimension.ErrEmptyName)

	_, err = dimension.New("x", nil, "", nil)
	require.ErrorIs(t, err, dimension.ErrNoValues)

	_, err = dimension.New("x", []dimension.Value{"a", "a"}, "", nil)
	require.ErrorIs(t, err, dimension.ErrDuplicateValue)

	_, err = dimension.New("x", []dimension.Value{"a", "b"}, "", "c")
	require.ErrorIs(t, err, dimension.ErrDefaultNotInValues)
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() {
		dimension.MustNew("x", nil, "", nil)
	})
}

func TestNewSpaceDuplicateName(t *testing.T) {
	a := dimension.MustNew("auth", []dimension.Value{"anon", "user"}, "", nil)
	b := dimension.MustNew("auth", []dimension.Value{"x", "y"}, "", nil)
	_, err := dimension.NewSpace([]*dimension.Dimension{a, b})
	require.ErrorIs(t, err, dimension.ErrDuplicateDimension)
}

func buildSpace(t *testing.T) *dimension.Space {
	t.Helper()
	auth := dimension.MustNew("auth", []dimension.Value{"anon", "user", "admin"}, "", nil)
	data := dimension.MustNew("data", []dimension.Value{"empty", "present"}, "", nil)
	s, err := dimension.NewSpace([]*dimension.Dimension{auth, data})
	require.NoError(t, err)
	return s
}

func TestSpaceTotalCombinations(t *testing.T) {
	s := buildSpace(t)
	assert.Equal(t, 6, s.TotalCombinations())
}

func TestSpaceAllEnumeratesCartesianProduct(t *testing.T) {
	s := buildSpace(t)
	combos := s.AllCombinations()
	require.Len(t, combos, 6)

	seen := make(map[string]bool)
	for _, c := range combos {
		seen[c.NodeID()] = true
	}
	assert.Len(t, seen, 6, "every combination must have a unique node id")

	// Fastest-varying dimension should be the last-declared one (data).
	assert.Equal(t, "anon", combos[0].Get("auth"))
	assert.Equal(t, "empty", combos[0].Get("data"))
	assert.Equal(t, "anon", combos[1].Get("auth"))
	assert.Equal(t, "present", combos[1].Get("data"))
	assert.Equal(t, "user", combos[2].Get("auth"))
}

func TestSpaceAllStopsWhenYieldReturnsFalse(t *testing.T) {
	s := buildSpace(t)
	count := 0
	for range s.All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestSpaceDefaultCombination(t *testing.T) {
	s := buildSpace(t)
	combo := s.DefaultCombination()
	assert.Equal(t, "anon", combo.Get("auth"))
	assert.Equal(t, "empty", combo.Get("data"))
}

func TestSpaceUnknownDimension(t *testing.T) {
	s := buildSpace(t)
	_, err := s.Dimension("nope")
	require.ErrorIs(t, err, dimension.ErrUnknownDimension)
}

func TestCombinationEqual(t *testing.T) {
	s := buildSpace(t)
	a, err := dimension.NewCombination(s, map[string]dimension.Value{"auth": "anon", "data": "empty"})
	require.NoError(t, err)
	b, err := dimension.NewCombination(s, map[string]dimension.Value{"auth": "anon", "data": "empty"})
	require.NoError(t, err)
	c, err := dimension.NewCombination(s, map[string]dimension.Value{"auth": "user", "data": "empty"})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, a.NodeID(), b.NodeID())
	assert.NotEqual(t, a.NodeID(), c.NodeID())
}

func TestCombinationValidation(t *testing.T) {
	s := buildSpace(t)
	_, err := dimension.NewCombination(s, map[string]dimension.Value{"auth": "anon"})
	require.ErrorIs(t, err, dimension.ErrMissingDimension)

	_, err = dimension.NewCombination(s, map[string]dimension.Value{"auth": "ghost", "data": "empty"})
	require.ErrorIs(t, err, dimension.ErrValueNotInDimension)
}

func TestCombinationDiffersByOne(t *testing.T) {
	s := buildSpace(t)
	a, _ := dimension.NewCombination(s, map[string]dimension.Value{"auth": "anon", "data": "empty"})
	b, _ := dimension.NewCombination(s, map[string]dimension.Value{"auth": "user", "data": "empty"})
	c, _ := dimension.NewCombination(s, map[string]dimension.Value{"auth": "user", "data": "present"})

	dim, ok := a.DiffersByOne(b)
	assert.True(t, ok)
	assert.Equal(t, "auth", dim)

	dim, ok = a.DiffersByOne(c)
	assert.False(t, ok)
	assert.Equal(t, dimension.NoSingleDifference, dim)

	dim, ok = a.DiffersByOne(a)
	assert.False(t, ok)
	assert.Equal(t, dimension.NoSingleDifference, dim)
}

func TestCombinationDescription(t *testing.T) {
	s := buildSpace(t)
	a, _ := dimension.NewCombination(s, map[string]dimension.Value{"auth": "anon", "data": "empty"})
	assert.Equal(t, "auth=anon, data=empty", a.Description())
}

func TestCombinationValuesIsACopy(t *testing.T) {
	s := buildSpace(t)
	a, _ := dimension.NewCombination(s, map[string]dimension.Value{"auth": "anon", "data": "empty"})
	vals := a.Values()
	vals["auth"] = "mutated"
	v, _ := a.Value("auth")
	assert.Equal(t, "anon", v)
}

func TestErrorsAreSentinels(t *testing.T) {
	assert.True(t, errors.Is(dimension.ErrEmptyName, dimension.ErrEmptyName))
}
