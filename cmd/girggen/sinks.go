package main

import (
	"fmt"

	"github.com/girgraph/girg/config"
	"github.com/girgraph/girg/degree"
	"github.com/girgraph/girg/driver"
	"github.com/girgraph/girg/sink"
	"github.com/girgraph/girg/tiling"
)

// multiSink fans every edge batch out to each configured edge writer,
// since a single run may ask for CSV output (Parquet is rejected at
// config validation, so at most one real writer exists today, but the
// fan-out is kept general so a second sink slots in without touching
// the driver).
type multiSink struct {
	writers []driver.EdgeSink
}

func (m *multiSink) WriteBatch(batch []tiling.Edge) error {
	for _, w := range m.writers {
		if err := w.WriteBatch(batch); err != nil {
			return err
		}
	}
	return nil
}

// buildSinks opens every --output-edges-* writer requested by cfg and
// returns a single driver.EdgeSink fanning out to all of them, plus a
// close func that flushes and closes whatever was opened. When no edge
// output was requested, the returned sink is nil (edges are still
// counted by the driver, just not persisted).
func buildSinks(cfg config.Config) (driver.EdgeSink, func(), error) {
	var writers []driver.EdgeSink
	var closers []func() error

	if cfg.OutputEdgesCSV != "" {
		w, err := sink.NewEdgeWriter(cfg.OutputEdgesCSV)
		if err != nil {
			return nil, nil, fmt.Errorf("opening --output-edges-csv: %w", err)
		}
		writers = append(writers, w)
		closers = append(closers, w.Close)
	}

	closeAll := func() {
		for _, c := range closers {
			_ = c()
		}
	}

	if len(writers) == 0 {
		return nil, closeAll, nil
	}
	return &multiSink{writers: writers}, closeAll, nil
}

// writeParamOutputs writes the vertex-level outputs that don't flow
// through the edge pipeline: weights and positions, recomputed
// directly from the driver's Params rather than captured during the
// run. execute calls it after the run has finished; since Params is
// immutable, the values are the same as they would be before it.
func writeParamOutputs(cfg config.Config, d *driver.Driver) error {
	if cfg.OutputWeights != "" {
		if err := sink.WriteWeights(cfg.OutputWeights, d.Params.ComputeWeights()); err != nil {
			return fmt.Errorf("writing --output-weights: %w", err)
		}
	}
	if cfg.OutputPositions != "" {
		if err := sink.WritePositions(cfg.OutputPositions, d.Params.ComputePositions()); err != nil {
			return fmt.Errorf("writing --output-positions: %w", err)
		}
	}
	return nil
}

func writeDegreeOutputs(cfg config.Config, acc *degree.Accumulator) error {
	if cfg.OutputDegreesCSV != "" {
		if err := sink.WriteDegreesCSV(cfg.OutputDegreesCSV, acc.Counts()); err != nil {
			return fmt.Errorf("writing --output-degrees-csv: %w", err)
		}
	}
	if cfg.OutputDegreesTxt != "" {
		if err := sink.WriteDegreesText(cfg.OutputDegreesTxt, acc.Counts()); err != nil {
			return fmt.Errorf("writing --output-degrees-txt: %w", err)
		}
	}
	if cfg.OutputDegreesDistribution != "" {
		if err := sink.WriteDegreeDistribution(cfg.OutputDegreesDistribution, acc.Distribution()); err != nil {
			return fmt.Errorf("writing --output-degrees-distribution: %w", err)
		}
	}
	return nil
}
