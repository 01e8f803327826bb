package sink

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// WriteWeights writes one vertex weight per line, matching
// --output-weights.
func WriteWeights(path string, weights []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sink: creating weights file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, weight := range weights {
		if _, err := w.WriteString(strconv.FormatFloat(float64(weight), 'g', -1, 32) + "\n"); err != nil {
			return fmt.Errorf("sink: writing weight: %w", err)
		}
	}
	return w.Flush()
}

// WritePositions writes one vertex position per line, each a
// comma-separated list of coordinates, matching --output-positions.
func WritePositions(path string, positions [][]float32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sink: creating positions file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, pos := range positions {
		row := make([]string, len(pos))
		for d, c := range pos {
			row[d] = strconv.FormatFloat(float64(c), 'g', -1, 32)
		}
		if _, err := w.WriteString(strings.Join(row, ",") + "\n"); err != nil {
			return fmt.Errorf("sink: writing position row: %w", err)
		}
	}
	return w.Flush()
}
