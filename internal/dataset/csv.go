package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// numColumns is the expected CSV width:
// Distance, Speed, X, Y, Expected Output.
const numColumns = NumFeatures + 1

// Load reads a shot dataset from CSV. Each record must contain five
// numeric columns. Malformed records surface as *SampleError; nothing
// is skipped silently.
func Load(r io.Reader) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Column-count checking is done per record below so short rows
	// surface as *SampleError rather than a bare csv.ErrFieldCount.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "dataset: reading csv")
	}
	if len(records) == 0 {
		return nil, errors.New("dataset: csv contains no records")
	}

	ds := make(Dataset, 0, len(records))
	for i, record := range records {
		if len(record) != numColumns {
			return nil, &SampleError{
				Index:  i,
				Reason: fmt.Sprintf("column count %d, want %d", len(record), numColumns),
			}
		}

		values := make([]float64, numColumns)
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, &SampleError{
					Index:  i,
					Reason: fmt.Sprintf("column %d value %q is not numeric", j, field),
				}
			}
			values[j] = v
		}

		ds = append(ds, Sample{
			Features: values[:NumFeatures],
			Expected: values[NumFeatures],
		})
	}

	return ds, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: opening %s", path)
	}
	defer f.Close()

	ds, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: loading %s", path)
	}
	return ds, nil
}
