package kinetics

import "math"

// hill evaluates the saturating Hill term x^n/(km^n + x^n).
func hill(x, n, km float64) float64 {
	xn := math.Pow(x, n)
	return xn / (math.Pow(km, n) + xn)
}

// Rates holds the instantaneous reaction rates at one state. V is indexed
// by reaction number (V[0] unused, V[1]..V[36] the elementary reactions).
// The power-law substitutes V29p and V33p replace V29 and V33 for the
// shadow species; the sV* fields are the mass-action reactions of the
// AS160 and S6K modules re-evaluated at the shadow concentrations so the
// shadows see the same conservation structure as the originals.
type Rates struct {
	V    [37]float64
	V29p float64
	V33p float64
	SV28 float64
	SV30 float64
	SV34 float64
}

// Rates evaluates all reaction rates at the given state.
func (m *Model) Rates(s StateVector) Rates {
	p := &m.params
	var r Rates
	v := &r.V

	// Module 1: receptor binding, activation, internalization, recycling
	v[1] = p.K1a * p.Insulin * s[IR]
	v[2] = p.K1Basal * s[IR]
	v[3] = p.K1c * s[IRins]
	v[4] = p.K1d * s[IRp]
	v[5] = p.K1e * s[IRip]
	v[6] = p.K1f * s[Xp] * s[IRip]
	v[7] = p.K1g * s[IRp]
	v[8] = p.K1r * s[IRi]

	// Module 2: IRS1 tyrosine and Ser307 phosphorylation
	v[9] = p.K2a * s[IRip] * s[IRS1]
	v[10] = p.K2b * s[IRS1p]
	v[11] = p.K2c * s[IRS1p] * s[Xp]
	v[12] = p.K2d * s[IRS1p307]
	v[13] = p.K2f * s[IRS1p307]
	v[14] = p.K2g * s[IRS1307]

	// Module 3: feedback intermediate
	v[15] = p.K3a * s[X] * s[IRS1p]
	v[16] = p.K3b * s[Xp]

	// Module 4: PKB phosphorylation states
	v[17] = p.K4a * s[PKB] * s[IRS1p]
	v[18] = p.K4b * s[PKB308p]
	v[19] = p.K4c * s[PKB308p] * s[MTORC2a]
	v[20] = p.K4e * s[PKB473p] * s[IRS1p307]
	v[21] = p.K4f * s[PKB308p473p]
	v[22] = p.K4h * s[PKB473p]

	// Module 5: mTOR complexes
	v[23] = p.K5a1 * s[MTORC1] * s[PKB308p473p]
	v[24] = p.K5a2 * s[MTORC1] * s[PKB308p]
	v[25] = p.K5b * s[MTORC1a]
	v[26] = p.K5c * s[MTORC2] * s[IRip]
	v[27] = p.K5d * s[MTORC2a]

	// Module 6: AS160, with the Hill-type reaction v29
	v[28] = p.K6f1 * s[AS160] * s[PKB308p473p]
	v[29] = p.K29 * hill(s[PKB473p], p.N6, p.Km6) * s[AS160]
	v[30] = p.K6b1 * s[AS160p]

	// Module 7: GLUT4 translocation
	v[31] = p.K7f * s[GLUT4] * s[AS160p]
	v[32] = p.K7b * s[GLUT4m]

	// Module 9: S6K/S6, with the Hill-type reaction v33
	v[33] = p.K33 * s[S6K] * hill(s[MTORC1a], p.N9, p.Km9)
	v[34] = p.K9b1 * s[S6Kp]
	v[35] = p.K9f1 * s[S6] * s[S6Kp]
	v[36] = p.K9b2 * s[S6p]

	// Shadow copies: v29 and v33 swapped for their power-law forms, the
	// surrounding mass-action reactions evaluated at shadow concentrations.
	pl := &p.PowerLaw
	r.SV28 = p.K6f1 * s[ShadowAS160] * s[PKB308p473p]
	r.V29p = pl.K29p * math.Pow(s[PKB473p], pl.P29) * math.Pow(s[ShadowAS160], pl.Q29)
	r.SV30 = p.K6b1 * s[ShadowAS160p]
	r.V33p = pl.K33p * math.Pow(s[ShadowS6K], pl.P33) * math.Pow(s[MTORC1a], pl.Q33)
	r.SV34 = p.K9b1 * s[ShadowS6Kp]

	return r
}
