package pirdb

import (
	"path/filepath"
	"strings"
)

// Format identifies the tabular file formats the pipeline understands.
type Format int

const (
	FormatUnknown Format = iota
	FormatCSV
	FormatParquet
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatParquet:
		return "parquet"
	default:
		return "unknown"
	}
}

// DetectFormat maps a file path to a Format using only its lowercased
// extension.  It never reads file content.  FormatUnknown is not itself an
// error, but callers must not attempt ingestion with it.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".parquet":
		return FormatParquet
	}
	return FormatUnknown
}
