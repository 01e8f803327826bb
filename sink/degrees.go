package sink

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteDegreesCSV writes one (node_id, degree) row per vertex,
// matching --output-degrees-csv.
func WriteDegreesCSV(path string, counts []uint64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sink: creating degrees csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"node_id", "degree"}); err != nil {
		return fmt.Errorf("sink: writing degrees csv header: %w", err)
	}
	for i, d := range counts {
		if err := w.Write([]string{strconv.Itoa(i), strconv.FormatUint(d, 10)}); err != nil {
			return fmt.Errorf("sink: writing degrees csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteDegreesText writes one degree per line, matching
// --output-degrees-txt.
func WriteDegreesText(path string, counts []uint64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sink: creating degrees txt file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, d := range counts {
		if _, err := w.WriteString(strconv.FormatUint(d, 10) + "\n"); err != nil {
			return fmt.Errorf("sink: writing degree: %w", err)
		}
	}
	return w.Flush()
}

// WriteDegreeDistribution writes the complementary degree-distribution
// curve as (x, fraction-of-vertices-with-degree-greater-than-x) rows,
// matching --output-degrees-distribution.
func WriteDegreeDistribution(path string, distribution []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sink: creating degree distribution file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"x", "number of nodes with degree > x / number of nodes"}); err != nil {
		return fmt.Errorf("sink: writing degree distribution header: %w", err)
	}
	for x, v := range distribution {
		if err := w.Write([]string{strconv.Itoa(x), strconv.FormatFloat(v, 'g', -1, 64)}); err != nil {
			return fmt.Errorf("sink: writing degree distribution row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
