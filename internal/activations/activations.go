// Package activations provides the logistic activation used by the network.
package activations

import "math"

// PreActLimit bounds the pre-activation sum before exponentiation.
// exp(-30) is ~9.4e-14, comfortably above float64 epsilon, so the
// sigmoid of a clamped sum stays strictly inside (0, 1) instead of
// rounding to exactly 0 or 1.
const PreActLimit = 30.0

// Sigmoid is the logistic activation function.
type Sigmoid struct{}

// Activate computes 1 / (1 + exp(-x)).
func (s Sigmoid) Activate(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Derivative computes sigmoid(x) * (1 - sigmoid(x)).
func (s Sigmoid) Derivative(x float64) float64 {
	sigma := s.Activate(x)
	return sigma * (1 - sigma)
}

// DerivativeFromOutput computes the derivative from an already-activated
// value: y * (1 - y). Backpropagation keeps the activations around, so
// this avoids recomputing the sigmoid.
func (s Sigmoid) DerivativeFromOutput(y float64) float64 {
	return y * (1 - y)
}

// Clamp restricts a pre-activation sum to [-PreActLimit, PreActLimit].
// The second return reports whether clamping was applied.
func Clamp(x float64) (float64, bool) {
	if x > PreActLimit {
		return PreActLimit, true
	}
	if x < -PreActLimit {
		return -PreActLimit, true
	}
	return x, false
}
