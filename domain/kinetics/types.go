package kinetics

import (
	"math"

	"gokinet/domain/core"
)

// Species indices into the state vector. Indices 0-26 are the model
// species of the insulin-resistance signaling cascade; the last four are
// shadow copies of AS160, AS160p, S6K and S6Kp driven by the power-law
// substituted rates for direct comparison against the Hill-based originals.
const (
	IR = iota
	IRp
	IRins
	IRip
	IRi
	IRS1
	IRS1p
	IRS1p307
	IRS1307
	X
	Xp
	PKB
	PKB308p
	PKB473p
	PKB308p473p
	MTORC1
	MTORC1a
	MTORC2
	MTORC2a
	AS160
	AS160p
	GLUT4
	GLUT4m
	S6K
	S6Kp
	S6
	S6p
	ShadowAS160
	ShadowAS160p
	ShadowS6K
	ShadowS6Kp
	NumSpecies
)

// NumModelSpecies counts the original model species, excluding shadows.
const NumModelSpecies = 27

// speciesNames is indexed by the species constants above.
var speciesNames = [NumSpecies]string{
	"IR", "IRp", "IRins", "IRip", "IRi",
	"IRS1", "IRS1p", "IRS1p307", "IRS1307",
	"X", "Xp",
	"PKB", "PKB308p", "PKB473p", "PKB308p473p",
	"mTORC1", "mTORC1a", "mTORC2", "mTORC2a",
	"AS160", "AS160p",
	"GLUT4", "GLUT4m",
	"S6K", "S6Kp",
	"S6", "S6p",
	"AS160_pl", "AS160p_pl", "S6K_pl", "S6Kp_pl",
}

// SpeciesName returns the display name for a species index.
func SpeciesName(i int) string {
	if i < 0 || i >= NumSpecies {
		return "?"
	}
	return speciesNames[i]
}

// SpeciesIndex resolves a display name back to its index.
func SpeciesIndex(name string) (int, error) {
	for i, n := range speciesNames {
		if n == name {
			return i, nil
		}
	}
	return 0, core.ErrSpeciesNotFound
}

// ShadowPairs maps each shadow species to the original it approximates.
var ShadowPairs = [4][2]int{
	{ShadowAS160, AS160},
	{ShadowAS160p, AS160p},
	{ShadowS6K, S6K},
	{ShadowS6Kp, S6Kp},
}

// StateVector holds the 31 species concentrations (mol/L).
type StateVector []float64

// NewStateVector allocates a zeroed state of the model dimension.
func NewStateVector() StateVector {
	return make(StateVector, NumSpecies)
}

// Clone returns an independent copy.
func (s StateVector) Clone() StateVector {
	c := make(StateVector, len(s))
	copy(c, s)
	return c
}

// IsFinite reports whether every entry is a finite number.
func (s StateVector) IsFinite() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// IsNonNegative reports whether every concentration is >= 0.
func (s StateVector) IsNonNegative() bool {
	for _, v := range s {
		if v < 0 {
			return false
		}
	}
	return true
}
