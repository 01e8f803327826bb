// Package sink writes generation output (edges, weights, positions,
// degrees, and the degree distribution) to files, mirroring the
// --output-* flags of original_source/girg_generator/src/main.rs.
//
// No CSV library appears anywhere in the retrieved example pack (the
// reference implementation uses the Rust "csv" crate, which has no
// analogue among the teacher or the rest of the pack's dependencies),
// so these writers are the justified standard-library exception:
// encoding/csv. Every other ambient concern still follows the teacher.
package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/girgraph/girg/tiling"
)

// EdgeWriter writes the directed edge stream to a CSV file with an
// (edge_i, edge_j) header, matching --output-edges-csv.
type EdgeWriter struct {
	f *os.File
	w *csv.Writer
}

// NewEdgeWriter creates (or truncates) path and writes the header row.
func NewEdgeWriter(path string) (*EdgeWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("sink: creating edge file: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write([]string{"edge_i", "edge_j"}); err != nil {
		f.Close()
		return nil, fmt.Errorf("sink: writing edge header: %w", err)
	}
	return &EdgeWriter{f: f, w: w}, nil
}

// WriteBatch appends every edge in batch as a row.
func (ew *EdgeWriter) WriteBatch(batch []tiling.Edge) error {
	for _, e := range batch {
		if err := ew.w.Write([]string{
			strconv.FormatUint(e.I, 10),
			strconv.FormatUint(e.J, 10),
		}); err != nil {
			return fmt.Errorf("sink: writing edge row: %w", err)
		}
	}
	return nil
}

// Close flushes buffered rows and closes the underlying file.
func (ew *EdgeWriter) Close() error {
	ew.w.Flush()
	if err := ew.w.Error(); err != nil {
		ew.f.Close()
		return fmt.Errorf("sink: flushing edges: %w", err)
	}
	return ew.f.Close()
}
