package kinetics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gokinet/domain/core"
)

func TestOperatingPointIsSteadyState(t *testing.T) {
	model := NewModel(DefaultParams())
	op := OperatingPoint()
	dst := NewStateVector()

	require.NoError(t, model.Derivative(0, op, dst))

	for i, d := range dst {
		assert.InDelta(t, 0.0, d, 1e-9, "d/dt of %s at the operating point", SpeciesName(i))
	}
}

func TestShadowRatesMatchHillAtOperatingPoint(t *testing.T) {
	model := NewModel(DefaultParams())
	r := model.Rates(OperatingPoint())

	// At the fit point the power-law substitutes reproduce the Hill rates
	// exactly, and the shadow mass-action rates equal the originals.
	assert.InEpsilon(t, r.V[29], r.V29p, 1e-9)
	assert.InEpsilon(t, r.V[33], r.V33p, 1e-9)
	assert.InEpsilon(t, r.V[28], r.SV28, 1e-12)
	assert.InEpsilon(t, r.V[30], r.SV30, 1e-12)
	assert.InEpsilon(t, r.V[34], r.SV34, 1e-12)
}

// conservedPools lists the species groups whose total is invariant under
// the network stoichiometry.
var conservedPools = map[string][]int{
	"receptor": {IR, IRp, IRins, IRip, IRi},
	"irs1":     {IRS1, IRS1p, IRS1p307, IRS1307},
	"x":        {X, Xp},
	"pkb":      {PKB, PKB308p, PKB473p, PKB308p473p},
	"mtorc1":   {MTORC1, MTORC1a},
	"mtorc2":   {MTORC2, MTORC2a},
	"as160":    {AS160, AS160p},
	"glut4":    {GLUT4, GLUT4m},
	"s6k":      {S6K, S6Kp},
	"s6":       {S6, S6p},
	"as160_pl": {ShadowAS160, ShadowAS160p},
	"s6k_pl":   {ShadowS6K, ShadowS6Kp},
}

func TestDerivativeConservesPools(t *testing.T) {
	model := NewModel(DefaultParams())

	// Conservation must hold at any state, not just the steady one.
	s := OperatingPoint()
	for i := range s {
		s[i] *= 1.0 + 0.01*float64(i%7)
	}

	dst := NewStateVector()
	require.NoError(t, model.Derivative(0, s, dst))

	for name, pool := range conservedPools {
		total := 0.0
		for _, idx := range pool {
			total += dst[idx]
		}
		assert.InDelta(t, 0.0, total, 1e-9, "pool %s", name)
	}
}

func TestDerivativeDimensionMismatch(t *testing.T) {
	model := NewModel(DefaultParams())

	err := model.Derivative(0, make(StateVector, 5), NewStateVector())
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)

	err = model.Derivative(0, OperatingPoint(), make(StateVector, 5))
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
}

func TestOperatingPointShadowsMatchOriginals(t *testing.T) {
	op := OperatingPoint()
	for _, pair := range ShadowPairs {
		assert.Equal(t, op[pair[1]], op[pair[0]],
			"%s must start at %s", SpeciesName(pair[0]), SpeciesName(pair[1]))
	}
}

func TestSpeciesNameRoundTrip(t *testing.T) {
	for i := 0; i < NumSpecies; i++ {
		idx, err := SpeciesIndex(SpeciesName(i))
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}

	_, err := SpeciesIndex("NotASpecies")
	assert.ErrorIs(t, err, core.ErrSpeciesNotFound)
}

func TestStateVectorHelpers(t *testing.T) {
	s := OperatingPoint()
	assert.True(t, s.IsFinite())
	assert.True(t, s.IsNonNegative())

	c := s.Clone()
	c[IR] = math.NaN()
	assert.False(t, c.IsFinite())
	assert.True(t, s.IsFinite(), "clone must be independent")

	c[IR] = -1
	assert.False(t, c.IsNonNegative())
}

func TestHillTermRange(t *testing.T) {
	// The Hill term saturates in (0, 1) and crosses 1/2 at x = km.
	assert.InDelta(t, 0.5, hill(30.54, 2.137, 30.54), 1e-12)
	assert.Less(t, hill(10, 2.137, 30.54), 0.5)
	assert.Greater(t, hill(100, 2.137, 30.54), 0.5)
	assert.Less(t, hill(1e6, 2.137, 30.54), 1.0)
}
