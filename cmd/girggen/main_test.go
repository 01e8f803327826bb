package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunRejectsMissingGenerator(t *testing.T) {
	if got := run([]string{"--generator", ""}); got != exitConfig {
		t.Fatalf("run() = %d, want exitConfig", got)
	}
}

func TestRunRejectsOnDemandGPUOverMaxDims(t *testing.T) {
	got := run([]string{
		"--generator", "gpu",
		"--random-mode", "on_demand",
		"--dimensions", "5",
		"--vertices", "10",
	})
	if got != exitDevice {
		t.Fatalf("run() = %d, want exitDevice", got)
	}
}

func TestRunRejectsParquetOutput(t *testing.T) {
	got := run([]string{"--output-edges-parquet", "out.parquet", "--vertices", "10"})
	if got != exitConfig {
		t.Fatalf("run() = %d, want exitConfig", got)
	}
}

func TestRunRejectsMalformedSeeds(t *testing.T) {
	got := run([]string{"--seeds", "1,2,notanumber,4", "--vertices", "10"})
	if got != exitConfig {
		t.Fatalf("run() = %d, want exitConfig", got)
	}
}

func TestRunEndToEndWritesCSVOutputs(t *testing.T) {
	dir := t.TempDir()
	edgesPath := filepath.Join(dir, "edges.csv")
	weightsPath := filepath.Join(dir, "weights.txt")
	degreesPath := filepath.Join(dir, "degrees.csv")

	got := run([]string{
		"--vertices", "200",
		"--tile-size", "50",
		"--dimensions", "2",
		"--alpha", "1.2",
		"--workers", "2",
		"--seeds", "1,2,3,4",
		"--output-edges-csv", edgesPath,
		"--output-weights", weightsPath,
		"--output-degrees-csv", degreesPath,
	})
	if got != exitSuccess {
		t.Fatalf("run() = %d, want exitSuccess", got)
	}

	for _, p := range []string{edgesPath, weightsPath, degreesPath} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("expected %s to exist: %v", p, err)
		}
	}
}
