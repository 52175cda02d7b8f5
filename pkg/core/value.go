package core

import (
	"fmt"
	"math"
)

// Value is a measurement with a standard deviation. All abundances and
// conversion rates are carried as Values; the combinators below are the
// only place the first-order error-propagation formulas live.
// Propagation assumes independent errors throughout.
type Value struct {
	Nominal float64
	StdDev  float64
}

// NewValue creates a value with the given nominal value and standard
// deviation.
func NewValue(nominal, stddev float64) Value {
	return Value{Nominal: nominal, StdDev: stddev}
}

// Add returns v + other with errors added in quadrature.
func (v Value) Add(other Value) Value {
	return Value{
		Nominal: v.Nominal + other.Nominal,
		StdDev:  math.Hypot(v.StdDev, other.StdDev),
	}
}

// Sub returns v - other with errors added in quadrature.
func (v Value) Sub(other Value) Value {
	return Value{
		Nominal: v.Nominal - other.Nominal,
		StdDev:  math.Hypot(v.StdDev, other.StdDev),
	}
}

// Neg returns -v. The standard deviation is unchanged.
func (v Value) Neg() Value {
	return Value{Nominal: -v.Nominal, StdDev: v.StdDev}
}

// MulScalar returns v scaled by an exact factor k.
func (v Value) MulScalar(k float64) Value {
	return Value{Nominal: v.Nominal * k, StdDev: math.Abs(k) * v.StdDev}
}

// Mul returns the product of two independent values:
// a·b ± sqrt((da·b)² + (a·db)²).
func (v Value) Mul(other Value) Value {
	return Value{
		Nominal: v.Nominal * other.Nominal,
		StdDev:  math.Hypot(v.StdDev*other.Nominal, v.Nominal*other.StdDev),
	}
}

// Div returns the quotient of two independent values:
// a/b ± sqrt((da/b)² + (a·db/b²)²).
func (v Value) Div(other Value) Value {
	return Value{
		Nominal: v.Nominal / other.Nominal,
		StdDev: math.Hypot(v.StdDev/other.Nominal,
			v.Nominal*other.StdDev/(other.Nominal*other.Nominal)),
	}
}

// String renders the value like "12.3400 ± 0.5600".
func (v Value) String() string {
	return fmt.Sprintf("%.4f ± %.4f", v.Nominal, v.StdDev)
}
