package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gokinet/domain/kinetics"
	"gokinet/internal/analysis"
	"gokinet/internal/solve"
)

func sampleSolution(samples int) *solve.Solution {
	sol := &solve.Solution{}
	for i := 0; i < samples; i++ {
		y := make([]float64, kinetics.NumSpecies)
		for j := range y {
			y[j] = float64(i + j)
		}
		sol.Samples = append(sol.Samples, solve.Sample{T: float64(i) * 0.01, Y: y})
	}
	return sol
}

func TestExportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trajectories.xlsx")
	fidelity := []analysis.PairFidelity{
		{Original: "AS160", Shadow: "AS160_pl", MaxRelDiff: 0.001, Correlation: 0.9999},
	}

	require.NoError(t, NewWriter().Export(sampleSolution(5), fidelity, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{sheetTrajectories, sheetFidelity}, f.GetSheetList())

	rows, err := f.GetRows(sheetTrajectories)
	require.NoError(t, err)
	require.Len(t, rows, 6, "header plus one row per sample")
	assert.Equal(t, "t", rows[0][0])
	assert.Equal(t, "IR", rows[0][1])
	assert.Equal(t, kinetics.SpeciesName(kinetics.NumSpecies-1), rows[0][kinetics.NumSpecies])

	rows, err = f.GetRows(sheetFidelity)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "AS160", rows[1][0])
	assert.Equal(t, "AS160_pl", rows[1][1])
}
