package neurogoal

import (
	"testing"
)

func TestTrainOnGeneratedShots(t *testing.T) {
	ds := GenerateShots(7, AllZones())
	if len(ds) != 9 {
		t.Fatalf("generated %d shots, want 9", len(ds))
	}

	collector := NewCollector()
	hp := Hyperparameters{LearningRate: 0.3, Epochs: 25, HiddenSize: 4, Seed: 7}

	rep, err := Train(ds, hp, collector)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}

	if len(rep.ErrorHistory) != 25 {
		t.Errorf("history length = %d, want 25", len(rep.ErrorHistory))
	}
	if len(rep.Predictions) != len(ds) {
		t.Errorf("predictions = %d, want %d", len(rep.Predictions), len(ds))
	}
	for i, p := range rep.Predictions {
		if p.Output <= 0 || p.Output >= 1 {
			t.Errorf("prediction %d output %v outside (0,1)", i, p.Output)
		}
	}

	if !collector.Frozen() {
		t.Error("collector should freeze when training ends")
	}
	if len(collector.ErrorHistory()) != 25 {
		t.Errorf("collector history = %d, want 25", len(collector.ErrorHistory()))
	}

	stats := Summarize(collector.Predictions(), collector.ErrorHistory())
	if stats.TotalShots != 9 {
		t.Errorf("TotalShots = %d, want 9", stats.TotalShots)
	}
	if stats.Correct+stats.Incorrect != 9 {
		t.Errorf("correct+incorrect = %d, want 9", stats.Correct+stats.Incorrect)
	}
}

func TestTrainValidatesConfig(t *testing.T) {
	ds := GenerateShots(1, AllZones())

	_, err := Train(ds, Hyperparameters{LearningRate: 0, Epochs: 10, HiddenSize: 3})
	if err == nil {
		t.Fatal("expected config error for zero learning rate")
	}
	if _, ok := err.(ConfigError); !ok {
		t.Errorf("error type = %T, want ConfigError", err)
	}
}
