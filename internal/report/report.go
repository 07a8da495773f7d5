// Package report renders a completed training session as the two
// artifacts the application produces: a plain-text training summary
// and a Markdown report.
package report

import (
	"fmt"
	"io"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/irodriguez/neurogoalkeeper/internal/dataset"
	"github.com/irodriguez/neurogoalkeeper/internal/metrics"
	"github.com/irodriguez/neurogoalkeeper/internal/trainer"
)

const rule = "----------------------------------------------------------------------------------------------------"

// Session bundles everything one rendered report needs. Timestamp is
// injected so rendering stays reproducible.
type Session struct {
	DatasetName string
	Timestamp   time.Time
	Params      trainer.Hyperparameters
	Dataset     dataset.Dataset
	Report      *trainer.Report
	Stats       metrics.SessionStats
}

// WriteSummary renders the plain-text training summary: raw patterns,
// configured parameters, initial and final weights, the per-epoch
// error evolution and the prediction listing.
func (s Session) WriteSummary(w io.Writer) error {
	rep := s.Report

	pf := func(format string, args ...interface{}) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}

	if err := pf("%s\nARTIFICIAL NEURAL NETWORK FOR HANDBALL GOALKEEPER TRAINING\n%s\n\n", rule, rule); err != nil {
		return err
	}

	pf("RAW INPUT PATTERNS [DISTANCE(m), SPEED(km/h), x(m), y(m), DESIRED OUTPUT]:\n")
	for _, smp := range s.Dataset {
		pf("[%.2f, %.2f, %.2f, %.2f, %.0f]\n",
			smp.Distance(), smp.Speed(), smp.X(), smp.Y(), smp.Expected)
	}

	pf("\n%s\n\nSPECIFIED PARAMETERS:\n", rule)
	pf(" - Input neurons: %d\n", rep.InputSize)
	pf(" - Hidden neurons: %d\n", rep.HiddenSize)
	pf(" - Output neurons: %d\n", rep.OutputSize)
	pf(" - Learning rate: %g\n", s.Params.LearningRate)
	pf(" - Epochs: %d\n", s.Params.Epochs)
	pf(" - Seed: %d\n", s.Params.Seed)

	pf("\n%s\n\nINITIAL WEIGHTS - HIDDEN LAYER (Wij) & OUTPUT LAYER (Wjk):\n", rule)
	writeWeights(w, rep, rep.InitialParams)

	pf("\nERROR EVOLUTION PER EPOCH:\n")
	for i, e := range rep.ErrorHistory {
		pf(">>epoch=%d, error=%.6f\n", i+1, e)
	}
	if rep.StoppedEarly {
		pf("(converged below threshold after %d epochs)\n", rep.EpochsRun)
	}
	if rep.ClampEvents > 0 {
		pf("WARNING: %d pre-activation sums required clamping\n", rep.ClampEvents)
	}

	pf("\n%s\n\nFINAL WEIGHTS - HIDDEN LAYER (Wij) & OUTPUT LAYER (Wjk):\n", rule)
	writeWeights(w, rep, rep.FinalParams)

	pf("\nPREDICTIONS MADE BY THE NETWORK:\n")
	for i, p := range rep.Predictions {
		mark := ""
		if !p.Correct {
			mark = "  <-- WRONG"
		}
		pf("(%d)--[x,y]: %.2f,%.2f  |  Distance: %.2f  |  Speed: %.2f  |  Expected: %.0f  |  Output: %.4f  |  Predicted: %d%s\n",
			i+1, p.Sample.X(), p.Sample.Y(), p.Sample.Distance(), p.Sample.Speed(),
			p.Sample.Expected, p.Output, p.Predicted, mark)
	}

	st := s.Stats
	pf("\n%s\n\nFINAL RESULTS:\n", rule)
	pf(" ~ TOTAL SHOTS: %d\n", st.TotalShots)
	pf("    ~ MEAN DISTANCE: %.2f meters\n", st.MeanDistance)
	pf("    ~ MEAN SPEED: %.2f km/h\n", st.MeanSpeed)
	pf(" ~ TOTAL PREDICTIONS: %d\n", st.TotalShots)
	pf("    ~ CORRECT: %d\n", st.Correct)
	pf("    ~ INCORRECT: %d\n", st.Incorrect)
	pf(" ~ ACCURACY: %.2f%%\n", st.Accuracy)
	pf(" ~ ERROR RATE: %.2f%%\n", st.ErrorRate)
	return pf("\n%s\n", rule)
}

// WriteMarkdown renders the Markdown training report.
func (s Session) WriteMarkdown(w io.Writer) error {
	pf := func(format string, args ...interface{}) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}

	pf("# NeuroGoalkeeper - Training Report\n\n")
	pf("This document summarizes the results of a goalkeeper training session using an artificial neural network.\n\n")
	pf("---\n\n## Configuration\n\n")
	pf("- **Hidden neurons**: %d\n", s.Params.HiddenSize)
	pf("- **Learning rate**: %g\n", s.Params.LearningRate)
	pf("- **Epochs**: %d\n", s.Params.Epochs)
	pf("- **Seed**: %d\n", s.Params.Seed)
	pf("- **Training dataset**: `%s`\n", s.DatasetName)
	pf("- **Timestamp**: %s\n\n", s.Timestamp.Format("2006-01-02 15:04:05"))

	pf("---\n\n## Error Evolution\n\n")
	pf("| Epoch | Mean Squared Error |\n|---|---|\n")
	for i, e := range s.Report.ErrorHistory {
		pf("| %d | %.6f |\n", i+1, e)
	}

	pf("\n---\n\n## Predictions\n\n")
	pf("| # | x | y | Distance | Speed | Expected | Output | Predicted |\n")
	pf("|---|---|---|---|---|---|---|---|\n")
	for i, p := range s.Report.Predictions {
		pf("| %d | %.2f | %.2f | %.2f | %.2f | %.0f | %.4f | %d |\n",
			i+1, p.Sample.X(), p.Sample.Y(), p.Sample.Distance(),
			p.Sample.Speed(), p.Sample.Expected, p.Output, p.Predicted)
	}

	st := s.Stats
	pf("\n---\n\n## Final Evaluation Metrics\n\n")
	pf("- **Total shots**: %d\n", st.TotalShots)
	pf("- **Mean distance**: %.2f m\n", st.MeanDistance)
	pf("- **Mean speed**: %.2f km/h\n", st.MeanSpeed)
	pf("- **Correct**: %d\n", st.Correct)
	pf("- **Incorrect**: %d\n", st.Incorrect)
	pf("- **Accuracy**: %.2f%%\n", st.Accuracy)
	pf("- **Error rate**: %.2f%%\n\n", st.ErrorRate)

	return pf("---\n_End of report._\n")
}

// writeWeights formats the two weight matrices and bias vectors from a
// flattened parameter slice.
func writeWeights(w io.Writer, rep *trainer.Report, params []float64) {
	w1, b1, w2, b2 := splitParams(rep, params)

	fmt.Fprintf(w, "W1 (%dx%d):\n%v\n", rep.HiddenSize, rep.InputSize,
		mat.Formatted(w1, mat.Prefix(""), mat.Squeeze()))
	fmt.Fprintf(w, "b1: %v\n", mat.Formatted(b1.T(), mat.Squeeze()))
	fmt.Fprintf(w, "W2 (%dx%d):\n%v\n", rep.OutputSize, rep.HiddenSize,
		mat.Formatted(w2, mat.Prefix(""), mat.Squeeze()))
	fmt.Fprintf(w, "b2: %v\n", mat.Formatted(b2.T(), mat.Squeeze()))
}

// splitParams reconstructs w1, b1, w2, b2 from the flattened layout
// the network exports.
func splitParams(rep *trainer.Report, params []float64) (w1 *mat.Dense, b1 *mat.VecDense, w2 *mat.Dense, b2 *mat.VecDense) {
	in, hid, out := rep.InputSize, rep.HiddenSize, rep.OutputSize
	off := 0
	w1 = mat.NewDense(hid, in, append([]float64(nil), params[off:off+hid*in]...))
	off += hid * in
	b1 = mat.NewVecDense(hid, append([]float64(nil), params[off:off+hid]...))
	off += hid
	w2 = mat.NewDense(out, hid, append([]float64(nil), params[off:off+out*hid]...))
	off += out * hid
	b2 = mat.NewVecDense(out, append([]float64(nil), params[off:off+out]...))
	return w1, b1, w2, b2
}
