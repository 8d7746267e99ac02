package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/astroget/nasa-explorer/internal/model"
)

// NeoCSVFileName is the fixed name of the asteroid data file.
const NeoCSVFileName = "near_earth_object_data.csv"

var neoHeader = []string{
	"date",
	"name",
	"estimated_diameter_min_meters",
	"estimated_diameter_max_meters",
	"estimated_diameter_min_feet",
	"estimated_diameter_max_feet",
}

// WriteNeoCSV writes the flattened feed records to path and returns the
// number of data rows written.
func (e *Exporter) WriteNeoCSV(path string, records []model.NeoRecord) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating csv file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(neoHeader); err != nil {
		return 0, fmt.Errorf("writing csv header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Date,
			r.Name,
			formatDiameter(r.MinMeters),
			formatDiameter(r.MaxMeters),
			formatDiameter(r.MinFeet),
			formatDiameter(r.MaxFeet),
		}
		if err := w.Write(row); err != nil {
			return 0, fmt.Errorf("writing csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("flushing csv: %w", err)
	}

	e.log.Info().Str("file", path).Int("rows", len(records)).Msg("wrote near earth object data")
	return len(records), nil
}

func formatDiameter(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
