package sink

import "errors"

// ErrParquetUnsupported is returned by NewEdgeParquetWriter: no
// Parquet library appears anywhere in the retrieved example pack, so
// the CLI accepts --output-edges-parquet as a flag (it matches a real
// flag in original_source/girg_generator/src/args.rs) but
// config.Config.Validate rejects it, and this writer constructor always
// fails, rather than the output being silently ignored or backed by a
// fabricated dependency.
var ErrParquetUnsupported = errors.New("sink: edge output in Parquet format is not supported in this build")

// NewEdgeParquetWriter is the extension point a future build can fill
// in with a real Parquet writer (e.g. github.com/apache/arrow-go) once
// one is wired into the dependency stack.
func NewEdgeParquetWriter(path string) (*EdgeWriter, error) {
	return nil, ErrParquetUnsupported
}
