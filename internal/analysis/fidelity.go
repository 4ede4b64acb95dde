// Package analysis quantifies how closely the power-law shadow species
// track their Hill-based originals over a simulated trajectory.
package analysis

import (
	"math"

	"gokinet/domain/core"
	"gokinet/domain/kinetics"
	"gokinet/internal/solve"

	mfstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// PairFidelity summarizes the divergence between one original species and
// its power-law approximation over a full trajectory.
type PairFidelity struct {
	Original     string  `json:"original"`
	Shadow       string  `json:"shadow"`
	MaxRelDiff   float64 `json:"max_rel_diff"`
	MeanRelDiff  float64 `json:"mean_rel_diff"`
	P95RelDiff   float64 `json:"p95_rel_diff"`
	FinalRelDiff float64 `json:"final_rel_diff"`
	RMSE         float64 `json:"rmse"`
	Correlation  float64 `json:"correlation"`
}

// Summarize computes fidelity metrics for every shadow pair of the model.
func Summarize(sol *solve.Solution) ([]PairFidelity, error) {
	out := make([]PairFidelity, 0, len(kinetics.ShadowPairs))
	for _, pair := range kinetics.ShadowPairs {
		shadow, original := pair[0], pair[1]
		_, orig := sol.Column(original)
		_, appr := sol.Column(shadow)
		f, err := comparePair(orig, appr)
		if err != nil {
			return nil, err
		}
		f.Original = kinetics.SpeciesName(original)
		f.Shadow = kinetics.SpeciesName(shadow)
		out = append(out, f)
	}
	return out, nil
}

func comparePair(orig, appr []float64) (PairFidelity, error) {
	if len(orig) != len(appr) || len(orig) == 0 {
		return PairFidelity{}, core.ErrDimensionMismatch
	}

	relDiffs := make([]float64, len(orig))
	sumSq := 0.0
	for i := range orig {
		d := appr[i] - orig[i]
		sumSq += d * d
		denom := math.Abs(orig[i])
		if denom < 1e-12 {
			denom = 1e-12
		}
		relDiffs[i] = math.Abs(d) / denom
	}

	maxRel, err := mfstats.Max(relDiffs)
	if err != nil {
		return PairFidelity{}, err
	}
	meanRel, err := mfstats.Mean(relDiffs)
	if err != nil {
		return PairFidelity{}, err
	}
	p95, err := mfstats.Percentile(relDiffs, 95)
	if err != nil {
		return PairFidelity{}, err
	}

	corr := stat.Correlation(orig, appr, nil)
	if math.IsNaN(corr) {
		// Constant trajectories have no defined correlation; score by
		// whether the gap stayed negligible.
		if maxRel < 1e-6 {
			corr = 1
		} else {
			corr = 0
		}
	}

	return PairFidelity{
		MaxRelDiff:   maxRel,
		MeanRelDiff:  meanRel,
		P95RelDiff:   p95,
		FinalRelDiff: relDiffs[len(relDiffs)-1],
		RMSE:         math.Sqrt(sumSq / float64(len(orig))),
		Correlation:  corr,
	}, nil
}
