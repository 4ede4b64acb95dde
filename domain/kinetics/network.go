// Package kinetics implements the insulin-resistance signaling reaction
// network: 27 model species coupled by 36 elementary reactions, plus four
// shadow species integrating the power-law substituted AS160 and S6K
// branches alongside the Hill-based originals.
package kinetics

import (
	"gokinet/domain/core"
)

// Model evaluates the reaction network for one immutable parameter set.
type Model struct {
	params Params
}

// NewModel creates a model bound to the given parameters.
func NewModel(params Params) *Model {
	return &Model{params: params}
}

// Params returns the parameter set the model was built with.
func (m *Model) Params() Params {
	return m.params
}

// Derivative evaluates d/dt of the state at (t, s) into dst. It is a pure
// function of its inputs; t is unused because the network is autonomous,
// but kept so the signature matches the solver's right-hand side.
func (m *Model) Derivative(t float64, s StateVector, dst StateVector) error {
	_ = t
	if len(s) != NumSpecies || len(dst) != NumSpecies {
		return core.ErrDimensionMismatch
	}

	r := m.Rates(s)
	v := &r.V

	dst[IR] = v[7] + v[8] - v[1] - v[2]
	dst[IRins] = v[1] - v[3]
	dst[IRp] = v[2] + v[3] - v[4] - v[7]
	dst[IRip] = v[4] - v[5] - v[6]
	dst[IRi] = v[5] + v[6] - v[8]

	dst[IRS1] = v[10] + v[14] - v[9]
	dst[IRS1p] = v[9] + v[12] - v[10] - v[11]
	dst[IRS1p307] = v[11] - v[12] - v[13]
	dst[IRS1307] = v[13] - v[14]

	dst[X] = v[16] - v[15]
	dst[Xp] = v[15] - v[16]

	dst[PKB] = v[18] + v[22] - v[17]
	dst[PKB308p] = v[17] - v[18] - v[19]
	dst[PKB473p] = v[21] - v[20] - v[22]
	dst[PKB308p473p] = v[19] + v[20] - v[21]

	dst[MTORC1] = v[25] - v[23] - v[24]
	dst[MTORC1a] = v[23] + v[24] - v[25]
	dst[MTORC2] = v[27] - v[26]
	dst[MTORC2a] = v[26] - v[27]

	dst[AS160] = v[30] - v[28] - v[29]
	dst[AS160p] = v[28] + v[29] - v[30]

	dst[GLUT4] = v[32] - v[31]
	dst[GLUT4m] = v[31] - v[32]

	dst[S6K] = v[34] - v[33]
	dst[S6Kp] = v[33] - v[34]
	dst[S6] = v[36] - v[35]
	dst[S6p] = v[35] - v[36]

	// Shadow branch: identical stoichiometry, v29/v33 replaced by the
	// power-law substitutes.
	dst[ShadowAS160] = r.SV30 - r.SV28 - r.V29p
	dst[ShadowAS160p] = r.SV28 + r.V29p - r.SV30
	dst[ShadowS6K] = r.SV34 - r.V33p
	dst[ShadowS6Kp] = r.V33p - r.SV34

	return nil
}
