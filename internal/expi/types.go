package expi

// Evaluator describes the behaviour required from an e^(-ix) evaluator.
type Evaluator interface {
	ExpNegI(x float64) complex128
}
