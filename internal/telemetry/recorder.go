package telemetry

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"grayscott/internal/core"
	"grayscott/internal/sim"
)

// Recorder appends interval-sampled records to telemetry.csv inside the
// output directory. A nil Recorder is valid and records nothing.
type Recorder struct {
	file          *os.File
	interval      uint64
	headerWritten bool

	scratchU []float64
	scratchV []float64
}

// NewRecorder creates the output directory and telemetry file. An empty dir
// disables recording and returns nil.
func NewRecorder(dir string, interval uint64) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if interval == 0 {
		interval = 1
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating telemetry directory: %w", err)
	}
	path := filepath.Join(dir, "telemetry.csv")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	slog.Info("telemetry enabled", "path", path, "interval", interval)
	return &Recorder{file: f, interval: interval}, nil
}

// Observe samples the committed buffer when the step counter lands on the
// recording interval.
func (r *Recorder) Observe(cells []core.Cell, status sim.Status) error {
	if r == nil || status.Steps%r.interval != 0 {
		return nil
	}

	if cap(r.scratchU) < len(cells) {
		r.scratchU = make([]float64, len(cells))
		r.scratchV = make([]float64, len(cells))
	}
	rec := Collect(cells, status, r.scratchU, r.scratchV)
	records := []Record{rec}

	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.file); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.file); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// Close flushes and closes the telemetry file.
func (r *Recorder) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}
