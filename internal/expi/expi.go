package expi

import (
	"math"
	"math/cmplx"
)

type trigEvaluator struct{}

// New creates an Evaluator that works straight from the identity cos(x) - i*sin(x).
func New() Evaluator {
	return &trigEvaluator{}
}

func (e *trigEvaluator) ExpNegI(x float64) complex128 {
	return ExpNegI(x)
}

type genericEvaluator struct{}

// NewGeneric creates an Evaluator backed by the general complex exponential.
func NewGeneric() Evaluator {
	return &genericEvaluator{}
}

func (e *genericEvaluator) ExpNegI(x float64) complex128 {
	return cmplx.Exp(complex(0, -x))
}

// ExpNegI returns e^(-ix) for an angle in radians.
func ExpNegI(x float64) complex128 {
	return complex(math.Cos(x), -math.Sin(x))
}
