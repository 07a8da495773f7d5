// Command neurogoalkeeper trains the goalkeeper network on a CSV shot
// dataset (or a synthetic zone-generated one) and writes the training
// summary and Markdown report.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/irodriguez/neurogoalkeeper/internal/dataset"
	"github.com/irodriguez/neurogoalkeeper/internal/metrics"
	"github.com/irodriguez/neurogoalkeeper/internal/normalize"
	"github.com/irodriguez/neurogoalkeeper/internal/report"
	"github.com/irodriguez/neurogoalkeeper/internal/trainer"
)

func main() {
	var (
		csvPath   = flag.String("csv", "", "path to a five-column shot CSV (Distance, Speed, X, Y, Expected)")
		rounds    = flag.Int("rounds", 0, "generate this many synthetic shots per goal zone instead of loading a CSV")
		hidden    = flag.Int("hidden", 4, "hidden layer width")
		rate      = flag.Float64("rate", 0.3, "learning rate in (0, 1]")
		epochs    = flag.Int("epochs", 500, "number of training epochs")
		seed      = flag.Int64("seed", 1, "seed for weight initialization and synthetic shots")
		threshold = flag.Float64("threshold", 0, "optional convergence threshold; 0 runs every epoch")
		outDir    = flag.String("out", "outputs", "directory for the summary and report files")
		logEvery  = flag.Int("log-every", 50, "log the mean error every N epochs")
	)
	flag.Parse()

	if err := run(*csvPath, *rounds, *hidden, *rate, *epochs, *seed, *threshold, *outDir, *logEvery); err != nil {
		log.Fatalf("neurogoalkeeper: %v", err)
	}
}

func run(csvPath string, rounds, hidden int, rate float64, epochs int, seed int64, threshold float64, outDir string, logEvery int) error {
	ds, name, err := loadDataset(csvPath, rounds, seed)
	if err != nil {
		return err
	}
	if len(ds) < 2 {
		return fmt.Errorf("need at least two shots to train, got %d", len(ds))
	}

	hp := trainer.Hyperparameters{
		LearningRate:         rate,
		Epochs:               epochs,
		HiddenSize:           hidden,
		Seed:                 seed,
		ConvergenceThreshold: threshold,
	}

	norm, err := normalize.New(normalize.GoalDefaults())
	if err != nil {
		return err
	}

	collector := metrics.NewCollector()
	t, err := trainer.New(hp, norm, trainer.Logger{Interval: logEvery}, collector)
	if err != nil {
		return err
	}

	rep, err := t.Run(ds)
	if err != nil {
		return err
	}

	session := report.Session{
		DatasetName: name,
		Timestamp:   time.Now(),
		Params:      hp,
		Dataset:     ds,
		Report:      rep,
		Stats:       metrics.Summarize(collector.Predictions(), collector.ErrorHistory()),
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	summaryPath := filepath.Join(outDir, "training_summary.txt")
	if err := writeFile(summaryPath, session.WriteSummary); err != nil {
		return err
	}

	slug := session.Timestamp.Format("20060102_150405")
	mdPath := filepath.Join(outDir, fmt.Sprintf("training_report_%s.md", slug))
	if err := writeFile(mdPath, session.WriteMarkdown); err != nil {
		return err
	}

	log.Printf("summary written to %s", summaryPath)
	log.Printf("report written to %s", mdPath)
	return nil
}

func loadDataset(csvPath string, rounds int, seed int64) (dataset.Dataset, string, error) {
	switch {
	case csvPath != "" && rounds > 0:
		return nil, "", fmt.Errorf("-csv and -rounds are mutually exclusive")
	case csvPath != "":
		ds, err := dataset.LoadFile(csvPath)
		if err != nil {
			return nil, "", err
		}
		return ds, filepath.Base(csvPath), nil
	case rounds > 0:
		var zones []dataset.Zone
		for i := 0; i < rounds; i++ {
			zones = append(zones, dataset.AllZones()...)
		}
		return dataset.GenerateShots(seed, zones), "zone_generated", nil
	default:
		return nil, "", fmt.Errorf("either -csv or -rounds is required")
	}
}

func writeFile(path string, render func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
