package export

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Exporter writes result files. It carries the logger so writers can report
// what they produced.
type Exporter struct {
	log zerolog.Logger
}

// NewExporter creates a new exporter.
func NewExporter(log zerolog.Logger) *Exporter {
	return &Exporter{log: log}
}

// WriteURLList writes one URL per line to path and returns the number of
// lines written. An empty list still produces the (empty) file.
func (e *Exporter) WriteURLList(path string, urls []string) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating url file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, u := range urls {
		if _, err := fmt.Fprintln(w, u); err != nil {
			return 0, fmt.Errorf("writing url: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("flushing url file: %w", err)
	}

	e.log.Info().Str("file", path).Int("urls", len(urls)).Msg("wrote image urls")
	return len(urls), nil
}
