package core

import (
	"math"
	"testing"
)

const valueTolerance = 1e-9

func valueNear(got, want Value) bool {
	return math.Abs(got.Nominal-want.Nominal) < valueTolerance &&
		math.Abs(got.StdDev-want.StdDev) < valueTolerance
}

func TestValueAddSub(t *testing.T) {
	a := NewValue(10, 3)
	b := NewValue(4, 4)

	if got := a.Add(b); !valueNear(got, NewValue(14, 5)) {
		t.Errorf("Add() = %v, want 14 ± 5", got)
	}
	if got := a.Sub(b); !valueNear(got, NewValue(6, 5)) {
		t.Errorf("Sub() = %v, want 6 ± 5", got)
	}
}

func TestValueNeg(t *testing.T) {
	if got := NewValue(10, 3).Neg(); !valueNear(got, NewValue(-10, 3)) {
		t.Errorf("Neg() = %v, want -10 ± 3", got)
	}
}

func TestValueMulScalar(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		k    float64
		want Value
	}{
		{"positive factor", NewValue(10, 3), 2, NewValue(20, 6)},
		{"negative factor keeps error positive", NewValue(10, 3), -2, NewValue(-20, 6)},
		{"zero factor", NewValue(10, 3), 0, NewValue(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.MulScalar(tt.k); !valueNear(got, tt.want) {
				t.Errorf("MulScalar(%v) = %v, want %v", tt.k, got, tt.want)
			}
		})
	}
}

func TestValueMul(t *testing.T) {
	a := NewValue(10, 1)
	b := NewValue(5, 2)
	want := NewValue(50, math.Hypot(1*5, 10*2))
	if got := a.Mul(b); !valueNear(got, want) {
		t.Errorf("Mul() = %v, want %v", got, want)
	}

	// Multiplying by an exact value matches MulScalar.
	exact := NewValue(3, 0)
	if got := a.Mul(exact); !valueNear(got, a.MulScalar(3)) {
		t.Errorf("Mul(exact) = %v, want %v", got, a.MulScalar(3))
	}
}

func TestValueDiv(t *testing.T) {
	a := NewValue(10, 1)
	b := NewValue(4, 0.5)
	want := NewValue(2.5, math.Hypot(1.0/4, 10*0.5/16))
	if got := a.Div(b); !valueNear(got, want) {
		t.Errorf("Div() = %v, want %v", got, want)
	}

	// Dividing by an exact value scales the error linearly.
	if got := a.Div(NewValue(2, 0)); !valueNear(got, NewValue(5, 0.5)) {
		t.Errorf("Div(exact) = %v, want 5 ± 0.5", got)
	}
}
