// Package symbolic provides exact rule-based differentiation for the
// rate-law expressions used by the kinetic model.
//
// The node set (constants, variables, sums, products, quotients and
// real-exponent powers) is deliberately small: it is closed under
// differentiation and covers every mass-action and Hill-type rate law in
// the model, so elasticities are computed from exact partial derivatives
// with no finite-difference step error.
package symbolic

import (
	"fmt"
	"math"
	"strings"
)

// Expr is a differentiable scalar expression over named variables.
type Expr interface {
	// Diff returns the exact partial derivative with respect to name.
	Diff(name string) Expr
	// Eval substitutes the environment and reduces to a number.
	Eval(env map[string]float64) (float64, error)
	String() string
}

// ============================================================
// Const
// ============================================================

type constant struct{ val float64 }

// Const builds a constant expression.
func Const(v float64) Expr { return constant{val: v} }

func (c constant) Diff(string) Expr { return constant{val: 0} }

func (c constant) Eval(map[string]float64) (float64, error) { return c.val, nil }

func (c constant) String() string { return trimFloat(c.val) }

// ============================================================
// Var
// ============================================================

type variable struct{ name string }

// Var builds a named variable.
func Var(name string) Expr { return variable{name: name} }

func (v variable) Diff(name string) Expr {
	if v.name == name {
		return constant{val: 1}
	}
	return constant{val: 0}
}

func (v variable) Eval(env map[string]float64) (float64, error) {
	val, ok := env[v.name]
	if !ok {
		return 0, fmt.Errorf("unbound variable %q", v.name)
	}
	return val, nil
}

func (v variable) String() string { return v.name }

// ============================================================
// Add
// ============================================================

type sum struct{ terms []Expr }

// Add builds the sum of the given terms.
func Add(terms ...Expr) Expr { return sum{terms: terms} }

func (s sum) Diff(name string) Expr {
	d := make([]Expr, len(s.terms))
	for i, t := range s.terms {
		d[i] = t.Diff(name)
	}
	return sum{terms: d}
}

func (s sum) Eval(env map[string]float64) (float64, error) {
	total := 0.0
	for _, t := range s.terms {
		v, err := t.Eval(env)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

func (s sum) String() string {
	parts := make([]string, len(s.terms))
	for i, t := range s.terms {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

// ============================================================
// Mul
// ============================================================

type product struct{ factors []Expr }

// Mul builds the product of the given factors.
func Mul(factors ...Expr) Expr { return product{factors: factors} }

// Diff applies the generalized product rule: sum over factors of the
// product with that factor replaced by its derivative.
func (p product) Diff(name string) Expr {
	terms := make([]Expr, 0, len(p.factors))
	for i := range p.factors {
		factors := make([]Expr, len(p.factors))
		copy(factors, p.factors)
		factors[i] = p.factors[i].Diff(name)
		terms = append(terms, product{factors: factors})
	}
	return sum{terms: terms}
}

func (p product) Eval(env map[string]float64) (float64, error) {
	total := 1.0
	for _, f := range p.factors {
		v, err := f.Eval(env)
		if err != nil {
			return 0, err
		}
		total *= v
	}
	return total, nil
}

func (p product) String() string {
	parts := make([]string, len(p.factors))
	for i, f := range p.factors {
		parts[i] = f.String()
	}
	return strings.Join(parts, "*")
}

// ============================================================
// Pow
// ============================================================

type power struct {
	base Expr
	exp  float64
}

// Pow builds base raised to a fixed real exponent.
func Pow(base Expr, exp float64) Expr { return power{base: base, exp: exp} }

func (p power) Diff(name string) Expr {
	// d(u^k) = k * u^(k-1) * du
	return product{factors: []Expr{
		constant{val: p.exp},
		power{base: p.base, exp: p.exp - 1},
		p.base.Diff(name),
	}}
}

func (p power) Eval(env map[string]float64) (float64, error) {
	b, err := p.base.Eval(env)
	if err != nil {
		return 0, err
	}
	v := math.Pow(b, p.exp)
	if math.IsNaN(v) {
		return 0, fmt.Errorf("pow(%g, %g) is undefined", b, p.exp)
	}
	return v, nil
}

func (p power) String() string {
	return fmt.Sprintf("%s^%s", p.base.String(), trimFloat(p.exp))
}

// ============================================================
// Div
// ============================================================

type quotient struct{ num, den Expr }

// Div builds the quotient num/den.
func Div(num, den Expr) Expr { return quotient{num: num, den: den} }

func (q quotient) Diff(name string) Expr {
	// d(u/v) = (du*v - u*dv) / v^2
	return quotient{
		num: sum{terms: []Expr{
			product{factors: []Expr{q.num.Diff(name), q.den}},
			product{factors: []Expr{constant{val: -1}, q.num, q.den.Diff(name)}},
		}},
		den: power{base: q.den, exp: 2},
	}
}

func (q quotient) Eval(env map[string]float64) (float64, error) {
	n, err := q.num.Eval(env)
	if err != nil {
		return 0, err
	}
	d, err := q.den.Eval(env)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, fmt.Errorf("division by zero evaluating %s", q.String())
	}
	return n / d, nil
}

func (q quotient) String() string {
	return fmt.Sprintf("%s/(%s)", q.num.String(), q.den.String())
}

// ============================================================
// Rate-law helpers
// ============================================================

// Hill builds the saturating Hill term x^n/(km^n + x^n) in the named variable.
func Hill(name string, n, km float64) Expr {
	return Div(
		Pow(Var(name), n),
		Add(Const(math.Pow(km, n)), Pow(Var(name), n)),
	)
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%g", v)
	return s
}
