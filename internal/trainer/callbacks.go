package trainer

import "log"

// Callback receives training progress notifications. Callbacks run on
// the training goroutine; anything slow belongs to the caller.
type Callback interface {
	OnTrainBegin(samples int)
	OnEpochEnd(epoch int, meanError float64)
	OnTrainEnd(report *Report)
}

// BaseCallback provides empty implementations for Callback.
type BaseCallback struct{}

func (BaseCallback) OnTrainBegin(samples int)                {}
func (BaseCallback) OnEpochEnd(epoch int, meanError float64) {}
func (BaseCallback) OnTrainEnd(report *Report)               {}

// Logger logs per-epoch error at a fixed interval.
type Logger struct {
	BaseCallback
	Interval int
}

func (l Logger) OnTrainBegin(samples int) {
	log.Printf("training on %d samples", samples)
}

func (l Logger) OnEpochEnd(epoch int, meanError float64) {
	if l.Interval > 0 && (epoch+1)%l.Interval == 0 {
		log.Printf("epoch=%d mean_error=%.6f", epoch+1, meanError)
	}
}

func (l Logger) OnTrainEnd(report *Report) {
	if report.ClampEvents > 0 {
		log.Printf("warning: %d pre-activation sums required clamping; consider lowering the learning rate or tightening normalization bounds", report.ClampEvents)
	}
	log.Printf("training finished after %d epochs, final error=%.6f",
		report.EpochsRun, report.ErrorHistory[len(report.ErrorHistory)-1])
}
