// Package solve provides the ODE integrators driving the kinetic model:
// a fixed-step classic Runge-Kutta scheme and an adaptive Dormand-Prince
// 5(4) scheme with absolute-error step control for the stiffer regions of
// the rate-constant range.
package solve

import (
	"math"

	"gokinet/domain/core"

	"gonum.org/v1/gonum/floats"
)

// Func is the ODE right-hand side: it writes d/dt of y at (t, y) into dst.
// It must be a pure function of (t, y).
type Func func(t float64, y []float64, dst []float64) error

// Settings controls one integration run.
type Settings struct {
	// AbsTolerance bounds the per-step local error estimate (adaptive only).
	AbsTolerance float64
	// StepSize is the fixed step for RK4 and the sampling interval for
	// the adaptive scheme.
	StepSize float64
	// MinStep aborts the adaptive scheme when step control pushes below it.
	MinStep float64
	// MaxSteps aborts runaway integrations.
	MaxSteps int
}

func (s Settings) withDefaults() Settings {
	if s.AbsTolerance <= 0 {
		s.AbsTolerance = 1e-3
	}
	if s.StepSize <= 0 {
		s.StepSize = 0.01
	}
	if s.MinStep <= 0 {
		s.MinStep = 1e-12
	}
	if s.MaxSteps <= 0 {
		s.MaxSteps = 10_000_000
	}
	return s
}

// Sample is one (time, state) point of a trajectory.
type Sample struct {
	T float64
	Y []float64
}

// Solution is the sampled trajectory of one integration run.
type Solution struct {
	Samples     []Sample
	Steps       int
	Rejected    int
	Evaluations int
}

// Final returns the last sample of the trajectory.
func (s *Solution) Final() Sample {
	return s.Samples[len(s.Samples)-1]
}

// Column extracts the time series of one state entry.
func (s *Solution) Column(i int) (ts, ys []float64) {
	ts = make([]float64, len(s.Samples))
	ys = make([]float64, len(s.Samples))
	for j, sm := range s.Samples {
		ts[j] = sm.T
		ys[j] = sm.Y[i]
	}
	return ts, ys
}

// Integrator advances an ODE system from t0 to t1.
type Integrator interface {
	Name() string
	Integrate(f Func, t0, t1 float64, y0 []float64, s Settings) (*Solution, error)
}

func checkFinite(t float64, y []float64) error {
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return core.NewDivergedError(t, i)
		}
	}
	return nil
}

// ============================================================
// RK4 (fixed step)
// ============================================================

// RK4 is the classic fourth-order Runge-Kutta scheme with a fixed step.
type RK4 struct{}

func (RK4) Name() string { return "rk4" }

func (RK4) Integrate(f Func, t0, t1 float64, y0 []float64, s Settings) (*Solution, error) {
	s = s.withDefaults()
	n := len(y0)
	h := s.StepSize

	y := append([]float64(nil), y0...)
	k1 := make([]float64, n)
	k2 := make([]float64, n)
	k3 := make([]float64, n)
	k4 := make([]float64, n)
	tmp := make([]float64, n)

	sol := &Solution{}
	sol.Samples = append(sol.Samples, Sample{T: t0, Y: append([]float64(nil), y...)})

	t := t0
	for t < t1-1e-12 {
		if sol.Steps >= s.MaxSteps {
			return nil, core.ErrMaxSteps
		}
		hh := math.Min(h, t1-t)

		if err := f(t, y, k1); err != nil {
			return nil, err
		}
		floats.AddScaledTo(tmp, y, hh/2, k1)
		if err := f(t+hh/2, tmp, k2); err != nil {
			return nil, err
		}
		floats.AddScaledTo(tmp, y, hh/2, k2)
		if err := f(t+hh/2, tmp, k3); err != nil {
			return nil, err
		}
		floats.AddScaledTo(tmp, y, hh, k3)
		if err := f(t+hh, tmp, k4); err != nil {
			return nil, err
		}
		sol.Evaluations += 4

		for i := 0; i < n; i++ {
			y[i] += hh / 6 * (k1[i] + 2*k2[i] + 2*k3[i] + k4[i])
		}
		t += hh
		sol.Steps++

		if err := checkFinite(t, y); err != nil {
			return nil, err
		}
		sol.Samples = append(sol.Samples, Sample{T: t, Y: append([]float64(nil), y...)})
	}
	return sol, nil
}

// ============================================================
// Dormand-Prince 5(4) (adaptive)
// ============================================================

// DormandPrince is an adaptive embedded Runge-Kutta 5(4) scheme. The
// fifth-order solution propagates; the fourth-order one supplies the
// local error estimate held below Settings.AbsTolerance. Samples are
// emitted on the fixed StepSize grid.
type DormandPrince struct{}

func (DormandPrince) Name() string { return "dopri" }

var (
	dpC = [7]float64{0, 1. / 5, 3. / 10, 4. / 5, 8. / 9, 1, 1}
	dpA = [7][6]float64{
		{},
		{1. / 5},
		{3. / 40, 9. / 40},
		{44. / 45, -56. / 15, 32. / 9},
		{19372. / 6561, -25360. / 2187, 64448. / 6561, -212. / 729},
		{9017. / 3168, -355. / 33, 46732. / 5247, 49. / 176, -5103. / 18656},
		{35. / 384, 0, 500. / 1113, 125. / 192, -2187. / 6784, 11. / 84},
	}
	dpB5 = [7]float64{35. / 384, 0, 500. / 1113, 125. / 192, -2187. / 6784, 11. / 84, 0}
	dpB4 = [7]float64{5179. / 57600, 0, 7571. / 16695, 393. / 640, -92097. / 339200, 187. / 2100, 1. / 40}
)

func (DormandPrince) Integrate(f Func, t0, t1 float64, y0 []float64, s Settings) (*Solution, error) {
	s = s.withDefaults()
	n := len(y0)

	y := append([]float64(nil), y0...)
	var k [7][]float64
	for i := range k {
		k[i] = make([]float64, n)
	}
	tmp := make([]float64, n)
	ynew := make([]float64, n)

	sol := &Solution{}
	sol.Samples = append(sol.Samples, Sample{T: t0, Y: append([]float64(nil), y...)})

	t := t0
	h := s.StepSize

	// The sample grid is computed by index, not by accumulation: summing
	// StepSize thousands of times drifts the last grid point past t1 and
	// the horizon-end sample would never be emitted.
	gridIdx := 1
	nextSample := math.Min(t0+s.StepSize, t1)

	for t < t1-1e-12 {
		if sol.Steps+sol.Rejected >= s.MaxSteps {
			return nil, core.ErrMaxSteps
		}
		// Never step past the next sample point or the horizon end.
		hh := math.Min(h, math.Min(nextSample-t, t1-t))
		if hh < s.MinStep {
			hh = math.Min(s.MinStep, t1-t)
		}

		for i := 0; i < 7; i++ {
			copy(tmp, y)
			for j := 0; j < i; j++ {
				if dpA[i][j] != 0 {
					floats.AddScaled(tmp, hh*dpA[i][j], k[j])
				}
			}
			if err := f(t+dpC[i]*hh, tmp, k[i]); err != nil {
				return nil, err
			}
		}
		sol.Evaluations += 7

		errMax := 0.0
		for i := 0; i < n; i++ {
			y5 := y[i]
			e := 0.0
			for j := 0; j < 7; j++ {
				y5 += hh * dpB5[j] * k[j][i]
				e += hh * (dpB5[j] - dpB4[j]) * k[j][i]
			}
			ynew[i] = y5
			errMax = math.Max(errMax, math.Abs(e))
		}

		if errMax <= s.AbsTolerance {
			t += hh
			copy(y, ynew)
			sol.Steps++
			if err := checkFinite(t, y); err != nil {
				return nil, err
			}
			if t >= nextSample-1e-12 {
				sol.Samples = append(sol.Samples, Sample{T: t, Y: append([]float64(nil), y...)})
				gridIdx++
				nextSample = math.Min(t0+float64(gridIdx)*s.StepSize, t1)
			}
		} else {
			sol.Rejected++
		}

		// Standard step-size controller for an order-4 error estimate.
		factor := 0.9 * math.Pow(s.AbsTolerance/math.Max(errMax, 1e-16), 0.2)
		h = hh * math.Min(5.0, math.Max(0.2, factor))
		if h < s.MinStep {
			return nil, core.ErrStepTooSmall
		}
	}
	return sol, nil
}

// ForMethod returns the integrator registered under the given name.
func ForMethod(name string) Integrator {
	if name == "rk4" {
		return RK4{}
	}
	return DormandPrince{}
}
