package kinetics

// Params is the immutable rate-constant set for one simulation run.
//
// Naming follows the published model: kNx constants belong to module N of
// the cascade (1 receptor, 2 IRS1, 3 feedback X, 4 PKB, 5 mTOR, 6 AS160,
// 7 GLUT4, 9 S6K/S6). The two Hill reactions carry their own rate
// constants K29 and K33 after their reaction numbers.
type Params struct {
	// Insulin input (held constant over a run)
	Insulin float64

	// Module 1: insulin receptor
	K1a     float64
	K1Basal float64
	K1c     float64
	K1d     float64
	K1e     float64
	K1f     float64
	K1g     float64
	K1r     float64

	// Module 2: IRS1
	K2a float64
	K2b float64
	K2c float64
	K2d float64
	K2f float64
	K2g float64

	// Module 3: feedback intermediate X
	K3a float64
	K3b float64

	// Module 4: PKB
	K4a float64
	K4b float64
	K4c float64
	K4e float64
	K4f float64
	K4h float64

	// Module 5: mTORC1/mTORC2
	K5a1 float64
	K5a2 float64
	K5b  float64
	K5c  float64
	K5d  float64

	// Module 6: AS160 (v29 is Hill-type in PKB473p)
	K6f1 float64
	K29  float64
	N6   float64
	Km6  float64
	K6b1 float64

	// Module 7: GLUT4 translocation
	K7f float64
	K7b float64

	// Module 9: S6K/S6 (v33 is Hill-type in mTORC1a)
	K33  float64
	N9   float64
	Km9  float64
	K9b1 float64
	K9f1 float64
	K9b2 float64

	// Power-law substitutes for v29 and v33, matched at the operating point
	PowerLaw PowerLawParams
}

// PowerLawParams carries the fitted power-law rate constants and exponents.
type PowerLawParams struct {
	K29p float64 // rate constant of v29p
	P29  float64 // exponent on PKB473p
	Q29  float64 // exponent on AS160
	K33p float64 // rate constant of v33p
	P33  float64 // exponent on S6K
	Q33  float64 // exponent on mTORC1a
}

// DefaultParams returns the documented parameter set. The Hill constants
// and the operating point follow BIOMD0000000448; the mass-action
// constants are balanced so that OperatingPoint() is a steady state of
// the full network under the default insulin input.
func DefaultParams() Params {
	return Params{
		Insulin: 10.0,

		K1a:     0.031578947368421054,
		K1Basal: 0.05263157894736842,
		K1c:     5.0,
		K1d:     1.4705882352941178,
		K1e:     2.5,
		K1f:     0.17857142857142858,
		K1g:     0.5882352941176471,
		K1r:     0.02847380410022779,

		K2a: 0.2439024390243902,
		K2b: 6.166666666666667,
		K2c: 0.05952380952380953,
		K2d: 3.0,
		K2f: 2.0,
		K2g: 0.03636363636363636,

		K3a: 0.02109704641350211,
		K3b: 0.09523809523809523,

		K4a: 0.2631578947368421,
		K4b: 0.7608695652173914,
		K4c: 0.006175889328063242,
		K4e: 0.26369221844263374,
		K4f: 0.5377428244941856,
		K4h: 0.13184610922131687,

		K5a1: 0.012677231941491481,
		K5a2: 0.010249955412693955,
		K5b:  0.07615082940945032,
		K5c:  0.6249999999999999,
		K5d:  0.03409090909090909,

		K6f1: 2.0,
		K29:  36.93,
		N6:   2.137,
		Km6:  30.54,
		K6b1: 22.013297033372034,

		K7f: 0.05,
		K7b: 3.122573584905661,

		K33:  0.1298,
		N9:   0.9855,
		Km9:  5873.0,
		K9b1: 0.044405775276989204,
		K9f1: 0.005,
		K9b2: 0.14494333333333334,

		PowerLaw: DocumentedPowerLaw(),
	}
}

// DocumentedPowerLaw returns the fitted values recorded from the
// approximation at the documented operating point. The simulation service
// recomputes these at run time; the literals remain the regression anchor.
func DocumentedPowerLaw() PowerLawParams {
	return PowerLawParams{
		K29p: 1.1265051862101148,
		P29:  0.8256181729885118,
		Q29:  1.0,
		K33p: 2.625549928419103e-05,
		P33:  1.0,
		Q33:  0.9716239964294154,
	}
}

// OperatingPoint returns the steady-state concentrations the power-law
// fit is linearized around, with the shadow species initialized to their
// originals. Obtained from a long-horizon equilibrium run of the model.
func OperatingPoint() StateVector {
	s := StateVector{
		9.5,    // IR
		1.7,    // IRp
		0.6,    // IRins
		0.4,    // IRip
		87.8,   // IRi
		82.0,   // IRS1
		1.2,    // IRS1p
		0.3,    // IRS1p307
		16.5,   // IRS1307
		79.0,   // X
		21.0,   // Xp
		38.0,   // PKB
		9.2,    // PKB308p
		37.923, // PKB473p
		14.877, // PKB308p473p
		21.209, // mTORC1
		78.791, // mTORC1a
		12.0,   // mTORC2
		88.0,   // mTORC2a
		29.576, // AS160
		70.424, // AS160p
		47.0,   // GLUT4
		53.0,   // GLUT4m
		96.047, // S6K
		3.953,  // S6Kp
		88.0,   // S6
		12.0,   // S6p
		0, 0, 0, 0,
	}
	for _, pair := range ShadowPairs {
		s[pair[0]] = s[pair[1]]
	}
	return s
}
