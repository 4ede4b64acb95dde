// Package app wires the domain packages into the two services the CLI
// drives: fitting the power-law substitutes and running the comparison
// simulation.
package app

import (
	"gokinet/domain/kinetics"
	"gokinet/domain/powerlaw"
	"gokinet/internal"
	"gokinet/internal/errors"
)

// ApproximationService fits power-law substitutes for the two Hill-type
// reactions of the cascade at a steady-state operating point.
type ApproximationService struct {
	logger *internal.Logger
}

// NewApproximationService creates an approximation service
func NewApproximationService(logger *internal.Logger) *ApproximationService {
	return &ApproximationService{logger: logger}
}

// ApproximationResult carries the fitted forms plus the parameter block
// the kinetic model consumes.
type ApproximationResult struct {
	Approximations []powerlaw.Approximation `json:"approximations"`
	PowerLaw       kinetics.PowerLawParams  `json:"power_law"`
}

// hillRates builds the symbolic rate laws of the two Hill reactions.
// v29 activates AS160 under PKB-Ser473 phosphorylation; v33
// phosphorylates S6K under active mTORC1.
func hillRates(p kinetics.Params) []powerlaw.HillRate {
	return []powerlaw.HillRate{
		{
			Name:      "v29",
			K:         p.K29,
			N:         p.N6,
			Km:        p.Km6,
			HillVar:   kinetics.SpeciesName(kinetics.PKB473p),
			LinearVar: kinetics.SpeciesName(kinetics.AS160),
		},
		{
			Name:      "v33",
			K:         p.K33,
			N:         p.N9,
			Km:        p.Km9,
			HillVar:   kinetics.SpeciesName(kinetics.MTORC1a),
			LinearVar: kinetics.SpeciesName(kinetics.S6K),
		},
	}
}

// FitAtOperatingPoint fits both Hill reactions at the given state. The
// fit is fully symbolic and deterministic: the same inputs always yield
// bit-identical exponents and rate constants.
func (s *ApproximationService) FitAtOperatingPoint(params kinetics.Params, op kinetics.StateVector) (*ApproximationResult, error) {
	env := operatingEnv(op)

	result := &ApproximationResult{}
	for _, r := range hillRates(params) {
		a, err := powerlaw.Approximate(r, env)
		if err != nil {
			return nil, errors.FitError("power-law fit failed for "+r.Name, err)
		}
		s.logger.Info("fitted %s: v = %.6g * %s^%.6g * %s^%.6g",
			a.Reaction, a.RateConstant, r.HillVar, a.ExponentHill, r.LinearVar, a.ExponentLinear)
		result.Approximations = append(result.Approximations, a)
	}

	// v29 saturates in PKB473p and is linear in AS160; v33 saturates in
	// mTORC1a and is linear in S6K. The parameter block keeps the model's
	// own exponent ordering.
	v29, v33 := result.Approximations[0], result.Approximations[1]
	result.PowerLaw = kinetics.PowerLawParams{
		K29p: v29.RateConstant,
		P29:  v29.ExponentHill,
		Q29:  v29.ExponentLinear,
		K33p: v33.RateConstant,
		P33:  v33.ExponentLinear,
		Q33:  v33.ExponentHill,
	}
	return result, nil
}

// operatingEnv exposes a state vector to the symbolic evaluator by name.
func operatingEnv(op kinetics.StateVector) map[string]float64 {
	env := make(map[string]float64, len(op))
	for i, v := range op {
		env[kinetics.SpeciesName(i)] = v
	}
	return env
}
