package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSampleValidate(t *testing.T) {
	good := Shot(9.2, 95, 1.5, 1.0, 1)
	if err := good.Validate(NumFeatures); err != nil {
		t.Errorf("valid sample rejected: %v", err)
	}

	tests := []struct {
		name   string
		sample Sample
	}{
		{"wrong arity", Sample{Features: []float64{1, 2, 3}, Expected: 0}},
		{"nan feature", Shot(math.NaN(), 95, 1.5, 1.0, 1)},
		{"inf feature", Shot(9.2, math.Inf(1), 1.5, 1.0, 0)},
		{"non-binary label", Shot(9.2, 95, 1.5, 1.0, 0.5)},
	}
	for _, tt := range tests {
		err := tt.sample.Validate(NumFeatures)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		var serr *SampleError
		if !errors.As(err, &serr) {
			t.Errorf("%s: error type = %T, want *SampleError", tt.name, err)
		}
	}
}

func TestDatasetValidateReportsIndex(t *testing.T) {
	ds := Dataset{
		Shot(9.2, 95, 1.5, 1.0, 1),
		{Features: []float64{1, 2}, Expected: 0},
	}
	err := ds.Validate(NumFeatures)
	var serr *SampleError
	if !errors.As(err, &serr) {
		t.Fatalf("error type = %T, want *SampleError", err)
	}
	if serr.Index != 1 {
		t.Errorf("Index = %d, want 1", serr.Index)
	}
}

func TestLoadCSV(t *testing.T) {
	csv := "10.0,95.5,0.5,0.5,1\n2.0,88.0,2.8,0.9,0\n"
	ds, err := Load(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds) != 2 {
		t.Fatalf("len = %d, want 2", len(ds))
	}
	if ds[0].Distance() != 10.0 || ds[0].Speed() != 95.5 || ds[0].Expected != 1 {
		t.Errorf("first sample = %+v", ds[0])
	}
	if ds[1].X() != 2.8 || ds[1].Expected != 0 {
		t.Errorf("second sample = %+v", ds[1])
	}
}

func TestLoadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"wrong column count", "10.0,95.5,0.5,1\n"},
		{"non-numeric field", "10.0,fast,0.5,0.5,1\n"},
	}
	for _, tt := range tests {
		_, err := Load(strings.NewReader(tt.csv))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		var serr *SampleError
		if !errors.As(err, &serr) {
			t.Errorf("%s: error type = %T, want *SampleError", tt.name, err)
		}
	}

	if _, err := Load(strings.NewReader("")); err == nil {
		t.Error("empty csv: expected error")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shots.csv")
	if err := os.WriteFile(path, []byte("9.1,100,1.2,0.4,0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(ds) != 1 {
		t.Errorf("len = %d, want 1", len(ds))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("missing file: expected error")
	}
}

func TestZoneBounds(t *testing.T) {
	x, y := TopLeft.Bounds()
	if x.Min != 0 || x.Max != 1.05 || y.Min != 1.39 || y.Max != 2.08 {
		t.Errorf("TopLeft bounds = %v, %v", x, y)
	}

	x, y = BottomRight.Bounds()
	if x.Min != 2.11 || x.Max != 3.16 || y.Min != 0 || y.Max != 0.70 {
		t.Errorf("BottomRight bounds = %v, %v", x, y)
	}

	if Center.String() != "CENTER" {
		t.Errorf("Center.String() = %q", Center.String())
	}
}

func TestZoneBoundsOutOfRange(t *testing.T) {
	for _, z := range []Zone{Zone(-1), Zone(9), Zone(42)} {
		x, y := z.Bounds()
		if x.Min != 0 || x.Max != 3.16 || y.Min != 0 || y.Max != 2.08 {
			t.Errorf("Zone(%d).Bounds() = %v, %v, want full goal mouth", z, x, y)
		}
		if z.String() != "UNKNOWN" {
			t.Errorf("Zone(%d).String() = %q, want UNKNOWN", z, z.String())
		}
	}
}

func TestGenerateShots(t *testing.T) {
	zones := AllZones()
	ds := GenerateShots(42, zones)
	if len(ds) != len(zones) {
		t.Fatalf("len = %d, want %d", len(ds), len(zones))
	}

	for i, s := range ds {
		if err := s.Validate(NumFeatures); err != nil {
			t.Errorf("shot %d invalid: %v", i, err)
		}
		if s.Distance() < minShotDistance || s.Distance() > maxShotDistance {
			t.Errorf("shot %d distance %v outside [%v, %v]", i, s.Distance(), minShotDistance, maxShotDistance)
		}
		if s.Speed() < minShotSpeed || s.Speed() > maxShotSpeed {
			t.Errorf("shot %d speed %v outside range", i, s.Speed())
		}
		xr, yr := zones[i].Bounds()
		if s.X() < xr.Min || s.X() > xr.Max {
			t.Errorf("shot %d x=%v outside zone %v", i, s.X(), zones[i])
		}
		if s.Y() < yr.Min || s.Y() > yr.Max {
			t.Errorf("shot %d y=%v outside zone %v", i, s.Y(), zones[i])
		}
	}

	// Deterministic under a fixed seed.
	again := GenerateShots(42, zones)
	for i := range ds {
		for j := range ds[i].Features {
			if ds[i].Features[j] != again[i].Features[j] {
				t.Fatalf("shot %d feature %d differs between runs", i, j)
			}
		}
	}
}
