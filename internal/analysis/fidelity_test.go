package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gokinet/domain/core"
	"gokinet/domain/kinetics"
	"gokinet/internal/solve"
)

// makeSolution builds a synthetic trajectory where every shadow species
// is its original scaled by the given factor.
func makeSolution(samples int, shadowScale float64) *solve.Solution {
	sol := &solve.Solution{}
	for i := 0; i < samples; i++ {
		y := make([]float64, kinetics.NumSpecies)
		for j := range y {
			y[j] = 10 + float64(j) + math.Sin(float64(i)/10)
		}
		for _, pair := range kinetics.ShadowPairs {
			y[pair[0]] = y[pair[1]] * shadowScale
		}
		sol.Samples = append(sol.Samples, solve.Sample{T: float64(i), Y: y})
	}
	return sol
}

func TestSummarizeIdenticalTrajectories(t *testing.T) {
	fidelity, err := Summarize(makeSolution(50, 1.0))
	require.NoError(t, err)
	require.Len(t, fidelity, len(kinetics.ShadowPairs))

	for _, f := range fidelity {
		assert.Equal(t, 0.0, f.MaxRelDiff, "%s vs %s", f.Original, f.Shadow)
		assert.Equal(t, 0.0, f.MeanRelDiff)
		assert.Equal(t, 0.0, f.RMSE)
		assert.InDelta(t, 1.0, f.Correlation, 1e-9)
	}
}

func TestSummarizeScaledShadow(t *testing.T) {
	fidelity, err := Summarize(makeSolution(50, 1.01))
	require.NoError(t, err)

	for _, f := range fidelity {
		assert.InDelta(t, 0.01, f.MaxRelDiff, 1e-9)
		assert.InDelta(t, 0.01, f.MeanRelDiff, 1e-9)
		assert.InDelta(t, 0.01, f.FinalRelDiff, 1e-9)
		assert.Greater(t, f.RMSE, 0.0)
		// A pure scaling keeps the trajectories perfectly correlated.
		assert.InDelta(t, 1.0, f.Correlation, 1e-9)
	}
}

func TestSummarizeNamesPairs(t *testing.T) {
	fidelity, err := Summarize(makeSolution(10, 1.0))
	require.NoError(t, err)

	assert.Equal(t, "AS160", fidelity[0].Original)
	assert.Equal(t, "AS160_pl", fidelity[0].Shadow)
	assert.Equal(t, "S6Kp", fidelity[3].Original)
	assert.Equal(t, "S6Kp_pl", fidelity[3].Shadow)
}

func TestSummarizeEmptySolution(t *testing.T) {
	_, err := Summarize(&solve.Solution{})
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
}

func TestConstantTrajectoryCorrelation(t *testing.T) {
	// Flat series have no defined Pearson correlation; identical flats
	// score 1, diverging flats score 0.
	sol := &solve.Solution{}
	for i := 0; i < 10; i++ {
		y := make([]float64, kinetics.NumSpecies)
		for j := range y {
			y[j] = 5
		}
		sol.Samples = append(sol.Samples, solve.Sample{T: float64(i), Y: y})
	}

	fidelity, err := Summarize(sol)
	require.NoError(t, err)
	for _, f := range fidelity {
		assert.Equal(t, 1.0, f.Correlation)
	}
}
