package testplan_test

import (
	"testing"

	"github.com/corehatch/statecover/pkg/testplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPlan = `
seed: 12345
strength: 2
dimensions:
  - name: auth
    values: [anon, user, admin]
    default: anon
  - name: data
    values: [empty, present]
constraints:
  - kind: exclude
    name: no-anon-admin-data
    forbidden:
      auth: anon
      data: present
`

func TestLoadConfigFromBytes(t *testing.T) {
	cfg, err := testplan.LoadConfigFromBytes([]byte(validPlan))
	require.NoError(t, err)
	assert.Equal(t, uint64(12345), cfg.Seed)
	assert.Equal(t, 2, cfg.Strength)
	require.Len(t, cfg.Dimensions, 2)
}

func TestLoadConfigGeneratesSeedWhenZero(t *testing.T) {
	cfg, err := testplan.LoadConfigFromBytes([]byte(`
dimensions:
  - name: auth
    values: [anon, user]
`))
	require.NoError(t, err)
	assert.NotZero(t, cfg.Seed)
	assert.Equal(t, 2, cfg.Strength, "strength should default to 2")
}

func TestValidateNoDimensions(t *testing.T) {
	_, err := testplan.LoadConfigFromBytes([]byte(`strength: 2`))
	require.ErrorIs(t, err, testplan.ErrNoDimensions)
}

func TestValidateDimensionNoValues(t *testing.T) {
	_, err := testplan.LoadConfigFromBytes([]byte(`
dimensions:
  - name: auth
    values: []
`))
	require.ErrorIs(t, err, testplan.ErrDimensionNoValues)
}

func TestValidateUnknownConstraintKind(t *testing.T) {
	_, err := testplan.LoadConfigFromBytes([]byte(`
dimensions:
  - name: auth
    values: [anon, user]
constraints:
  - kind: bogus
    name: x
`))
	require.ErrorIs(t, err, testplan.ErrUnknownConstraintKind)
}

func TestHashIsStableAndSensitiveToContent(t *testing.T) {
	cfgA, err := testplan.LoadConfigFromBytes([]byte(validPlan))
	require.NoError(t, err)
	cfgB, err := testplan.LoadConfigFromBytes([]byte(validPlan))
	require.NoError(t, err)
	assert.Equal(t, cfgA.Hash(), cfgB.Hash())

	cfgC, err := testplan.LoadConfigFromBytes([]byte(`
seed: 12345
strength: 3
dimensions:
  - name: auth
    values: [anon, user, admin]
`))
	require.NoError(t, err)
	assert.NotEqual(t, cfgA.Hash(), cfgC.Hash())
}

func TestBuildSpace(t *testing.T) {
	cfg, err := testplan.LoadConfigFromBytes([]byte(validPlan))
	require.NoError(t, err)

	space, err := cfg.BuildSpace()
	require.NoError(t, err)
	assert.Equal(t, 2, space.Len())
	assert.Equal(t, 6, space.TotalCombinations())
}

func TestBuildConstraintSetWarnsOnUnbuildableKind(t *testing.T) {
	cfg, err := testplan.LoadConfigFromBytes([]byte(`
dimensions:
  - name: auth
    values: [anon, user]
  - name: action
    values: [read, write]
constraints:
  - kind: require
    name: anon-read-only
`))
	require.NoError(t, err)

	set, warnings := cfg.BuildConstraintSet()
	assert.Equal(t, 0, set.Len())
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "anon-read-only")
}

func TestBuildConstraintSetBuildsExclude(t *testing.T) {
	cfg, err := testplan.LoadConfigFromBytes([]byte(validPlan))
	require.NoError(t, err)

	set, warnings := cfg.BuildConstraintSet()
	assert.Empty(t, warnings)
	assert.Equal(t, 1, set.Len())
}
