// Package dataset defines the labeled shot samples the trainer
// consumes, plus the CSV loader and the synthetic zone generator that
// produce them.
package dataset

import (
	"fmt"
	"math"
)

// NumFeatures is the width of a shot feature vector:
// distance, speed, x, y.
const NumFeatures = 4

// Sample is one labeled shot: four input features and the observed
// outcome (1 = goal, 0 = save). Treated as immutable once built.
type Sample struct {
	// Features holds distance (m), speed (km/h), x (m), y (m),
	// in that order.
	Features []float64

	// Expected is the desired network output: 0 or 1.
	Expected float64
}

// Shot builds a Sample from named shot parameters.
func Shot(distance, speed, x, y, expected float64) Sample {
	return Sample{
		Features: []float64{distance, speed, x, y},
		Expected: expected,
	}
}

// Distance returns the shot distance in meters.
func (s Sample) Distance() float64 { return s.Features[0] }

// Speed returns the shot speed in km/h.
func (s Sample) Speed() float64 { return s.Features[1] }

// X returns the horizontal impact coordinate on the goal mouth.
func (s Sample) X() float64 { return s.Features[2] }

// Y returns the vertical impact coordinate on the goal mouth.
func (s Sample) Y() float64 { return s.Features[3] }

// Validate checks the sample against the declared input width.
// A wrong feature count, a non-finite value or a non-binary label
// yields a *SampleError.
func (s Sample) Validate(inputSize int) error {
	if len(s.Features) != inputSize {
		return &SampleError{Reason: fmt.Sprintf("feature count %d, want %d", len(s.Features), inputSize)}
	}
	for i, v := range s.Features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &SampleError{Reason: fmt.Sprintf("feature %d is not a finite number", i)}
		}
	}
	if s.Expected != 0 && s.Expected != 1 {
		return &SampleError{Reason: fmt.Sprintf("expected output %v, want 0 or 1", s.Expected)}
	}
	return nil
}

// Dataset is an ordered sequence of samples. Insertion order defines
// the training iteration order within an epoch; nothing here shuffles.
type Dataset []Sample

// Validate checks every sample, annotating failures with their index.
func (d Dataset) Validate(inputSize int) error {
	for i, s := range d {
		if err := s.Validate(inputSize); err != nil {
			if serr, ok := err.(*SampleError); ok {
				serr.Index = i
			}
			return err
		}
	}
	return nil
}

// SampleError reports a sample the network cannot be fed: wrong arity,
// a value that is not numeric, or a label outside {0, 1}. The caller
// decides whether to filter and retry; nothing is skipped silently.
type SampleError struct {
	Index  int
	Reason string
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("dataset: sample %d: %s", e.Index, e.Reason)
}
