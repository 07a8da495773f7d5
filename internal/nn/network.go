// Package nn implements the feedforward network at the heart of the
// goalkeeper simulator: one input layer, one sigmoid hidden layer and
// one sigmoid output layer.
package nn

import (
	"math/rand"

	"github.com/irodriguez/neurogoalkeeper/internal/activations"
)

// Network owns the weight matrices and bias vectors of the two trained
// layers. Weights are stored as row-major contiguous slices in the
// layout weights[neuron*inSize+input], which keeps the inner training
// loops cache friendly without a matrix library.
type Network struct {
	inSize     int
	hiddenSize int
	outSize    int

	w1 []float64 // hiddenSize x inSize
	b1 []float64 // hiddenSize
	w2 []float64 // outSize x hiddenSize
	b2 []float64 // outSize

	act activations.Sigmoid

	// Reusable activation buffers so Forward allocates nothing.
	hiddenBuf []float64
	outputBuf []float64

	// Count of pre-activation sums that needed clamping. Advisory:
	// a high count suggests the learning rate or the input
	// normalization needs adjustment.
	clampEvents int
}

// New creates a network with the given layer sizes and populates the
// weights with random values drawn from a seeded source, so the same
// seed always yields the same initial parameters.
func New(inputSize, hiddenSize, outputSize int, seed int64) (*Network, error) {
	if inputSize <= 0 {
		return nil, Configf("nn: input size must be > 0, got %d", inputSize)
	}
	if hiddenSize <= 0 {
		return nil, Configf("nn: hidden size must be > 0, got %d", hiddenSize)
	}
	if outputSize <= 0 {
		return nil, Configf("nn: output size must be > 0, got %d", outputSize)
	}

	n := &Network{
		inSize:     inputSize,
		hiddenSize: hiddenSize,
		outSize:    outputSize,
		w1:         make([]float64, hiddenSize*inputSize),
		b1:         make([]float64, hiddenSize),
		w2:         make([]float64, outputSize*hiddenSize),
		b2:         make([]float64, outputSize),
		hiddenBuf:  make([]float64, hiddenSize),
		outputBuf:  make([]float64, outputSize),
	}

	rng := rand.New(rand.NewSource(seed))
	initUniform(rng, n.w1)
	initUniform(rng, n.b1)
	initUniform(rng, n.w2)
	initUniform(rng, n.b2)

	return n, nil
}

// initUniform draws weights uniformly from [0, 1). Zero-centered
// draws start the network too close to symmetric for small datasets
// to break; the asymmetric start separates samples within the epoch
// budgets this trainer is used with.
func initUniform(rng *rand.Rand, dst []float64) {
	for i := range dst {
		dst[i] = rng.Float64()
	}
}

// Forward computes the hidden and output activations for one input
// vector. The returned slices are internal buffers, valid until the
// next call; the trainer reads them immediately to form its deltas.
func (n *Network) Forward(x []float64) (hidden, output []float64) {
	for h := 0; h < n.hiddenSize; h++ {
		sum := n.b1[h]
		wBase := h * n.inSize
		for i := 0; i < n.inSize; i++ {
			sum += n.w1[wBase+i] * x[i]
		}
		sum, clamped := activations.Clamp(sum)
		if clamped {
			n.clampEvents++
		}
		n.hiddenBuf[h] = n.act.Activate(sum)
	}

	for o := 0; o < n.outSize; o++ {
		sum := n.b2[o]
		wBase := o * n.hiddenSize
		for h := 0; h < n.hiddenSize; h++ {
			sum += n.w2[wBase+h] * n.hiddenBuf[h]
		}
		sum, clamped := activations.Clamp(sum)
		if clamped {
			n.clampEvents++
		}
		n.outputBuf[o] = n.act.Activate(sum)
	}

	return n.hiddenBuf[:n.hiddenSize], n.outputBuf[:n.outSize]
}

// InSize returns the input layer width.
func (n *Network) InSize() int { return n.inSize }

// HiddenSize returns the hidden layer width.
func (n *Network) HiddenSize() int { return n.hiddenSize }

// OutSize returns the output layer width.
func (n *Network) OutSize() int { return n.outSize }

// HiddenWeights returns the hidden layer weight slice directly.
// Only the trainer mutates it.
func (n *Network) HiddenWeights() []float64 { return n.w1 }

// HiddenBiases returns the hidden layer bias slice directly.
func (n *Network) HiddenBiases() []float64 { return n.b1 }

// OutputWeights returns the output layer weight slice directly.
func (n *Network) OutputWeights() []float64 { return n.w2 }

// OutputBiases returns the output layer bias slice directly.
func (n *Network) OutputBiases() []float64 { return n.b2 }

// Params returns all parameters flattened (copy), in the order
// w1, b1, w2, b2.
func (n *Network) Params() []float64 {
	params := make([]float64, 0, len(n.w1)+len(n.b1)+len(n.w2)+len(n.b2))
	params = append(params, n.w1...)
	params = append(params, n.b1...)
	params = append(params, n.w2...)
	params = append(params, n.b2...)
	return params
}

// SetParams restores parameters from a slice produced by Params.
func (n *Network) SetParams(params []float64) error {
	want := len(n.w1) + len(n.b1) + len(n.w2) + len(n.b2)
	if len(params) != want {
		return Configf("nn: parameter count mismatch: got %d, want %d", len(params), want)
	}
	off := 0
	for _, dst := range [][]float64{n.w1, n.b1, n.w2, n.b2} {
		copy(dst, params[off:off+len(dst)])
		off += len(dst)
	}
	return nil
}

// ClampEvents reports how many pre-activation sums required clamping
// since construction or the last reset.
func (n *Network) ClampEvents() int { return n.clampEvents }

// ResetClampEvents zeroes the clamp counter.
func (n *Network) ResetClampEvents() { n.clampEvents = 0 }
