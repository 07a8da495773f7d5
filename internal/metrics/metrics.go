// Package metrics accumulates per-epoch errors and final predictions
// during a run and derives the session statistics shown in reports.
package metrics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/irodriguez/neurogoalkeeper/internal/trainer"
)

// Collector records error-history entries and final predictions as a
// training callback. Once the run ends the collector freezes; the
// accessors hand out copies so consumers cannot mutate the history.
type Collector struct {
	trainer.BaseCallback

	errors      []float64
	predictions []trainer.Prediction
	frozen      bool
}

// NewCollector returns an empty Collector ready to attach to a Trainer.
func NewCollector() *Collector {
	return &Collector{}
}

// OnEpochEnd appends one error-history entry. Entries arriving after
// the collector froze are dropped.
func (c *Collector) OnEpochEnd(epoch int, meanError float64) {
	if c.frozen {
		return
	}
	c.errors = append(c.errors, meanError)
}

// OnTrainEnd captures the final predictions and freezes the collector.
func (c *Collector) OnTrainEnd(report *trainer.Report) {
	if c.frozen {
		return
	}
	c.predictions = append(c.predictions, report.Predictions...)
	c.frozen = true
}

// ErrorHistory returns the recorded per-epoch errors, oldest first.
func (c *Collector) ErrorHistory() []float64 {
	out := make([]float64, len(c.errors))
	copy(out, c.errors)
	return out
}

// Predictions returns the recorded final predictions.
func (c *Collector) Predictions() []trainer.Prediction {
	out := make([]trainer.Prediction, len(c.predictions))
	copy(out, c.predictions)
	return out
}

// Frozen reports whether training has completed.
func (c *Collector) Frozen() bool { return c.frozen }

// SessionStats summarizes one training session the way the results
// screen presents it: shot averages, prediction quality and the shape
// of the error curve.
type SessionStats struct {
	TotalShots int

	MeanDistance   float64
	StdDevDistance float64
	MeanSpeed      float64
	StdDevSpeed    float64

	Correct   int
	Incorrect int
	Accuracy  float64 // percent
	ErrorRate float64 // percent

	FirstEpochError float64
	FinalEpochError float64
	BestEpochError  float64
	WorstEpochError float64
}

// Summarize derives session statistics from final predictions and the
// error history. Empty inputs yield zero-valued fields.
func Summarize(preds []trainer.Prediction, history []float64) SessionStats {
	s := SessionStats{TotalShots: len(preds)}

	if len(preds) > 0 {
		distances := make([]float64, len(preds))
		speeds := make([]float64, len(preds))
		for i, p := range preds {
			distances[i] = p.Sample.Distance()
			speeds[i] = p.Sample.Speed()
			if p.Correct {
				s.Correct++
			} else {
				s.Incorrect++
			}
		}
		s.MeanDistance = stat.Mean(distances, nil)
		s.MeanSpeed = stat.Mean(speeds, nil)
		if len(preds) > 1 {
			s.StdDevDistance = stat.StdDev(distances, nil)
			s.StdDevSpeed = stat.StdDev(speeds, nil)
		}
		s.Accuracy = 100 * float64(s.Correct) / float64(len(preds))
		s.ErrorRate = 100 * float64(s.Incorrect) / float64(len(preds))
	}

	if len(history) > 0 {
		s.FirstEpochError = history[0]
		s.FinalEpochError = history[len(history)-1]
		s.BestEpochError = floats.Min(history)
		s.WorstEpochError = floats.Max(history)
	}

	return s
}
