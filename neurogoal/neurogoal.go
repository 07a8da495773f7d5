// Package neurogoal re-exports the public surface of the goalkeeper
// training core for easier access.
package neurogoal

import (
	"github.com/irodriguez/neurogoalkeeper/internal/dataset"
	"github.com/irodriguez/neurogoalkeeper/internal/metrics"
	"github.com/irodriguez/neurogoalkeeper/internal/nn"
	"github.com/irodriguez/neurogoalkeeper/internal/normalize"
	"github.com/irodriguez/neurogoalkeeper/internal/report"
	"github.com/irodriguez/neurogoalkeeper/internal/trainer"
)

// Re-export common types for easier access.
type (
	Sample          = dataset.Sample
	Dataset         = dataset.Dataset
	SampleError     = dataset.SampleError
	Zone            = dataset.Zone
	ConfigError     = nn.ConfigError
	Network         = nn.Network
	Bounds          = normalize.Bounds
	Normalizer      = normalize.Normalizer
	Hyperparameters = trainer.Hyperparameters
	Report          = trainer.Report
	Prediction      = trainer.Prediction
	Callback        = trainer.Callback
	Collector       = metrics.Collector
	SessionStats    = metrics.SessionStats
	Session         = report.Session
)

// Goal zones, top-left to bottom-right.
const (
	TopLeft      = dataset.TopLeft
	TopCenter    = dataset.TopCenter
	TopRight     = dataset.TopRight
	Left         = dataset.Left
	Center       = dataset.Center
	Right        = dataset.Right
	BottomLeft   = dataset.BottomLeft
	BottomCenter = dataset.BottomCenter
	BottomRight  = dataset.BottomRight
)

// Shot builds a labeled sample from raw shot parameters.
func Shot(distance, speed, x, y, expected float64) Sample {
	return dataset.Shot(distance, speed, x, y, expected)
}

// LoadCSV loads a five-column shot dataset from a file.
func LoadCSV(path string) (Dataset, error) {
	return dataset.LoadFile(path)
}

// GenerateShots produces one seeded random shot per zone given.
func GenerateShots(seed int64, zones []Zone) Dataset {
	return dataset.GenerateShots(seed, zones)
}

// AllZones lists the nine goal zones.
func AllZones() []Zone {
	return dataset.AllZones()
}

// GoalBounds returns the default handball normalization bounds.
func GoalBounds() Bounds {
	return normalize.GoalDefaults()
}

// Train runs one full training session over ds using the default goal
// normalization bounds.
func Train(ds Dataset, hp Hyperparameters, callbacks ...Callback) (*Report, error) {
	norm, err := normalize.New(normalize.GoalDefaults())
	if err != nil {
		return nil, err
	}
	t, err := trainer.New(hp, norm, callbacks...)
	if err != nil {
		return nil, err
	}
	return t.Run(ds)
}

// Logger returns a callback that logs the mean error every interval
// epochs.
func Logger(interval int) Callback {
	return trainer.Logger{Interval: interval}
}

// NewCollector returns a metrics collector callback.
func NewCollector() *Collector {
	return metrics.NewCollector()
}

// Summarize derives session statistics from a finished run.
func Summarize(preds []Prediction, history []float64) SessionStats {
	return metrics.Summarize(preds, history)
}
