package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/irodriguez/neurogoalkeeper/internal/dataset"
	"github.com/irodriguez/neurogoalkeeper/internal/metrics"
	"github.com/irodriguez/neurogoalkeeper/internal/trainer"
)

func testSession() Session {
	// 4 inputs, 2 hidden, 1 output: 8 + 2 + 2 + 1 = 13 parameters.
	params := []float64{
		0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8,
		0.01, 0.02,
		1.1, 1.2,
		0.05,
	}

	ds := dataset.Dataset{
		dataset.Shot(10.0, 95.0, 0.5, 0.5, 1),
		dataset.Shot(2.0, 88.0, 2.8, 0.9, 0),
	}

	rep := &trainer.Report{
		InputSize:     4,
		HiddenSize:    2,
		OutputSize:    1,
		InitialParams: params,
		FinalParams:   params,
		ErrorHistory:  []float64{0.41, 0.32, 0.25},
		Predictions: []trainer.Prediction{
			{Sample: ds[0], Output: 0.81, Predicted: 1, Correct: true},
			{Sample: ds[1], Output: 0.62, Predicted: 1, Correct: false},
		},
		EpochsRun: 3,
	}

	return Session{
		DatasetName: "shots.csv",
		Timestamp:   time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Params:      trainer.Hyperparameters{LearningRate: 0.3, Epochs: 3, HiddenSize: 2, Seed: 42},
		Dataset:     ds,
		Report:      rep,
		Stats:       metrics.Summarize(rep.Predictions, rep.ErrorHistory),
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := testSession().WriteSummary(&buf); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"ARTIFICIAL NEURAL NETWORK FOR HANDBALL GOALKEEPER TRAINING",
		"RAW INPUT PATTERNS",
		"SPECIFIED PARAMETERS:",
		" - Hidden neurons: 2",
		" - Learning rate: 0.3",
		"INITIAL WEIGHTS",
		">>epoch=1, error=0.410000",
		">>epoch=3, error=0.250000",
		"FINAL WEIGHTS",
		"PREDICTIONS MADE BY THE NETWORK:",
		"<-- WRONG",
		"FINAL RESULTS:",
		" ~ TOTAL SHOTS: 2",
		" ~ ACCURACY: 50.00%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := testSession().WriteMarkdown(&buf); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# NeuroGoalkeeper - Training Report",
		"- **Hidden neurons**: 2",
		"- **Training dataset**: `shots.csv`",
		"- **Timestamp**: 2026-03-14 10:30:00",
		"| Epoch | Mean Squared Error |",
		"| 3 | 0.250000 |",
		"## Predictions",
		"## Final Evaluation Metrics",
		"- **Accuracy**: 50.00%",
		"_End of report._",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestRenderingIsDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	s := testSession()
	if err := s.WriteSummary(&a); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteSummary(&b); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("summary rendering is not deterministic")
	}
}
