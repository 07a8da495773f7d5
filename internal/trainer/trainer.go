// Package trainer drives the epoch loop: per-sample forward
// propagation, backpropagated deltas and immediate online weight
// updates, with per-epoch mean squared error diagnostics.
package trainer

import (
	"github.com/irodriguez/neurogoalkeeper/internal/activations"
	"github.com/irodriguez/neurogoalkeeper/internal/dataset"
	"github.com/irodriguez/neurogoalkeeper/internal/nn"
	"github.com/irodriguez/neurogoalkeeper/internal/normalize"
)

// OutputSize is the output layer width: a single save/goal activation.
const OutputSize = 1

// Hyperparameters configures one training run. Supplied once, immutable
// for the duration of the run.
type Hyperparameters struct {
	// LearningRate scales every weight update. Must be in (0, 1].
	LearningRate float64

	// Epochs is the number of full passes over the dataset.
	Epochs int

	// HiddenSize is the hidden layer width.
	HiddenSize int

	// Seed controls weight initialization reproducibility.
	Seed int64

	// ConvergenceThreshold, when > 0, stops training after the first
	// epoch whose mean error falls below it. Zero keeps the default
	// behavior: every epoch runs to completion.
	ConvergenceThreshold float64
}

// Validate checks the hyperparameters, returning a ConfigError on the
// first violation.
func (h Hyperparameters) Validate() error {
	if h.LearningRate <= 0 || h.LearningRate > 1 {
		return nn.Configf("trainer: learning rate must be in (0, 1], got %v", h.LearningRate)
	}
	if h.Epochs <= 0 {
		return nn.Configf("trainer: epoch count must be > 0, got %d", h.Epochs)
	}
	if h.HiddenSize <= 0 {
		return nn.Configf("trainer: hidden size must be > 0, got %d", h.HiddenSize)
	}
	if h.ConvergenceThreshold < 0 {
		return nn.Configf("trainer: convergence threshold must be >= 0, got %v", h.ConvergenceThreshold)
	}
	return nil
}

// Prediction pairs a sample with the trained network's output for it.
type Prediction struct {
	Sample    dataset.Sample
	Output    float64 // raw activation in (0, 1)
	Predicted int     // 1 if Output >= 0.5, else 0
	Correct   bool
}

// Report is the result of one completed training run.
type Report struct {
	InputSize  int
	HiddenSize int
	OutputSize int

	// InitialParams and FinalParams are flattened w1, b1, w2, b2.
	InitialParams []float64
	FinalParams   []float64

	// ErrorHistory holds one mean squared error per completed epoch.
	ErrorHistory []float64

	// Predictions are recomputed with a final forward pass, so they
	// reflect the fully trained network.
	Predictions []Prediction

	// ClampEvents counts pre-activation sums that needed clamping.
	// Non-zero values suggest the learning rate or the input
	// normalization needs adjustment; training still completed.
	ClampEvents int

	EpochsRun    int
	StoppedEarly bool
}

// Trainer owns one network for the duration of a run. Single-threaded:
// Run returns only when every epoch has completed or validation fails.
type Trainer struct {
	hp        Hyperparameters
	norm      *normalize.Normalizer
	callbacks []Callback
	act       activations.Sigmoid
}

// New validates the hyperparameters once and builds a Trainer.
func New(hp Hyperparameters, norm *normalize.Normalizer, callbacks ...Callback) (*Trainer, error) {
	if err := hp.Validate(); err != nil {
		return nil, err
	}
	if norm == nil {
		return nil, nn.Configf("trainer: normalizer is required")
	}
	return &Trainer{hp: hp, norm: norm, callbacks: callbacks}, nil
}

// Run trains a fresh network on the dataset. Samples are visited in
// insertion order and every weight update is applied immediately, one
// update per sample; the epoch error curve depends on that order, so
// nothing here shuffles or batches.
func (t *Trainer) Run(ds dataset.Dataset) (*Report, error) {
	if len(ds) == 0 {
		return nil, nn.Configf("trainer: dataset is empty")
	}
	if err := ds.Validate(dataset.NumFeatures); err != nil {
		return nil, err
	}

	net, err := nn.New(dataset.NumFeatures, t.hp.HiddenSize, OutputSize, t.hp.Seed)
	if err != nil {
		return nil, err
	}

	// Normalize once up front; the bounds are fixed so the vectors
	// never change between epochs.
	inputs := make([][]float64, len(ds))
	for i, s := range ds {
		inputs[i] = t.norm.Vector(s.Features, nil)
	}

	initial := net.Params()
	history := make([]float64, 0, t.hp.Epochs)
	outputDelta := make([]float64, OutputSize)
	hiddenDelta := make([]float64, t.hp.HiddenSize)
	lr := t.hp.LearningRate

	for _, cb := range t.callbacks {
		cb.OnTrainBegin(len(ds))
	}

	stopped := false
	for epoch := 0; epoch < t.hp.Epochs; epoch++ {
		sumErr := 0.0
		for i := range ds {
			hidden, output := net.Forward(inputs[i])

			for o := range output {
				e := ds[i].Expected - output[o]
				sumErr += e * e
				outputDelta[o] = e * t.act.DerivativeFromOutput(output[o])
			}

			// Hidden deltas read the output weights before they
			// are updated below.
			w2 := net.OutputWeights()
			for h := range hidden {
				var back float64
				for o := range output {
					back += w2[o*len(hidden)+h] * outputDelta[o]
				}
				hiddenDelta[h] = back * t.act.DerivativeFromOutput(hidden[h])
			}

			b2 := net.OutputBiases()
			for o := range output {
				wBase := o * len(hidden)
				for h := range hidden {
					w2[wBase+h] += lr * outputDelta[o] * hidden[h]
				}
				b2[o] += lr * outputDelta[o]
			}

			w1, b1 := net.HiddenWeights(), net.HiddenBiases()
			in := inputs[i]
			for h := range hidden {
				wBase := h * len(in)
				for j := range in {
					w1[wBase+j] += lr * hiddenDelta[h] * in[j]
				}
				b1[h] += lr * hiddenDelta[h]
			}
		}

		meanErr := sumErr / float64(len(ds))
		history = append(history, meanErr)
		for _, cb := range t.callbacks {
			cb.OnEpochEnd(epoch, meanErr)
		}

		if t.hp.ConvergenceThreshold > 0 && meanErr < t.hp.ConvergenceThreshold {
			stopped = true
			break
		}
	}

	preds := make([]Prediction, len(ds))
	for i, s := range ds {
		_, out := net.Forward(inputs[i])
		label := 0
		if out[0] >= 0.5 {
			label = 1
		}
		preds[i] = Prediction{
			Sample:    s,
			Output:    out[0],
			Predicted: label,
			Correct:   float64(label) == s.Expected,
		}
	}

	rep := &Report{
		InputSize:     dataset.NumFeatures,
		HiddenSize:    t.hp.HiddenSize,
		OutputSize:    OutputSize,
		InitialParams: initial,
		FinalParams:   net.Params(),
		ErrorHistory:  history,
		Predictions:   preds,
		ClampEvents:   net.ClampEvents(),
		EpochsRun:     len(history),
		StoppedEarly:  stopped,
	}

	for _, cb := range t.callbacks {
		cb.OnTrainEnd(rep)
	}

	return rep, nil
}
