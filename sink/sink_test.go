package sink

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/girgraph/girg/tiling"
)

func TestEdgeWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.csv")
	w, err := NewEdgeWriter(path)
	if err != nil {
		t.Fatalf("NewEdgeWriter: %v", err)
	}
	if err := w.WriteBatch([]tiling.Edge{{I: 1, J: 2}, {I: 3, J: 4}}); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (header + 2 rows)", len(lines))
	}
	if lines[0] != "edge_i,edge_j" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "1,2" || lines[2] != "3,4" {
		t.Fatalf("rows = %v", lines[1:])
	}
}

func TestWriteWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.txt")
	if err := WriteWeights(path, []float32{1.5, 2.25}); err != nil {
		t.Fatalf("WriteWeights: %v", err)
	}
	data, _ := os.ReadFile(path)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 || lines[0] != "1.5" || lines[1] != "2.25" {
		t.Fatalf("got %v", lines)
	}
}

func TestWritePositions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.csv")
	if err := WritePositions(path, [][]float32{{0.1, 0.2}, {0.3, 0.4}}); err != nil {
		t.Fatalf("WritePositions: %v", err)
	}
	data, _ := os.ReadFile(path)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 || lines[0] != "0.1,0.2" || lines[1] != "0.3,0.4" {
		t.Fatalf("got %v", lines)
	}
}

func TestWriteDegreesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "degrees.csv")
	if err := WriteDegreesCSV(path, []uint64{3, 0, 5}); err != nil {
		t.Fatalf("WriteDegreesCSV: %v", err)
	}
	data, _ := os.ReadFile(path)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 || lines[0] != "node_id,degree" || lines[1] != "0,3" {
		t.Fatalf("got %v", lines)
	}
}

func TestNewEdgeParquetWriterUnsupported(t *testing.T) {
	_, err := NewEdgeParquetWriter(filepath.Join(t.TempDir(), "edges.parquet"))
	if err != ErrParquetUnsupported {
		t.Fatalf("got %v, want ErrParquetUnsupported", err)
	}
}
