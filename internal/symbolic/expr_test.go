package symbolic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func evalAt(t *testing.T, e Expr, env map[string]float64) float64 {
	t.Helper()
	v, err := e.Eval(env)
	assert.NoError(t, err)
	return v
}

func TestConstantDerivativeIsZero(t *testing.T) {
	d := Const(3.5).Diff("x")
	assert.Equal(t, 0.0, evalAt(t, d, nil))
}

func TestVariableDerivative(t *testing.T) {
	x := Var("x")
	assert.Equal(t, 1.0, evalAt(t, x.Diff("x"), map[string]float64{"x": 7}))
	assert.Equal(t, 0.0, evalAt(t, x.Diff("y"), map[string]float64{"x": 7}))
}

func TestProductRule(t *testing.T) {
	// f = 3*x*y
	f := Mul(Const(3), Var("x"), Var("y"))
	env := map[string]float64{"x": 2, "y": 5}

	assert.InDelta(t, 30.0, evalAt(t, f, env), 1e-12)
	assert.InDelta(t, 15.0, evalAt(t, f.Diff("x"), env), 1e-12)
	assert.InDelta(t, 6.0, evalAt(t, f.Diff("y"), env), 1e-12)
}

func TestPowerRule(t *testing.T) {
	// f = x^2.5, df/dx = 2.5*x^1.5
	f := Pow(Var("x"), 2.5)
	env := map[string]float64{"x": 4}

	assert.InDelta(t, 32.0, evalAt(t, f, env), 1e-12)
	assert.InDelta(t, 20.0, evalAt(t, f.Diff("x"), env), 1e-12)
}

func TestQuotientRule(t *testing.T) {
	// f = x/(1+x), df/dx = 1/(1+x)^2
	f := Div(Var("x"), Add(Const(1), Var("x")))
	env := map[string]float64{"x": 3}

	assert.InDelta(t, 0.75, evalAt(t, f, env), 1e-12)
	assert.InDelta(t, 1.0/16.0, evalAt(t, f.Diff("x"), env), 1e-12)
}

func TestHillDerivativeMatchesAnalytic(t *testing.T) {
	// d/dx [x^n/(km^n + x^n)] = n*km^n*x^(n-1)/(km^n + x^n)^2
	n, km, x := 2.137, 30.54, 37.923
	f := Hill("x", n, km)
	env := map[string]float64{"x": x}

	kmn := math.Pow(km, n)
	xn := math.Pow(x, n)
	want := n * kmn * math.Pow(x, n-1) / math.Pow(kmn+xn, 2)

	assert.InEpsilon(t, want, evalAt(t, f.Diff("x"), env), 1e-9)
}

func TestEvalUnboundVariable(t *testing.T) {
	_, err := Var("missing").Eval(map[string]float64{"x": 1})
	assert.Error(t, err)
}

func TestEvalDivisionByZero(t *testing.T) {
	_, err := Div(Const(1), Var("x")).Eval(map[string]float64{"x": 0})
	assert.Error(t, err)
}

func TestDerivativeIsDeterministic(t *testing.T) {
	f := Mul(Const(36.93), Hill("x", 2.137, 30.54), Var("y"))
	env := map[string]float64{"x": 37.923, "y": 29.576}

	first := evalAt(t, f.Diff("x"), env)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, evalAt(t, f.Diff("x"), env))
	}
}
