package ingest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veripir/pirdb"
)

func TestCountRows(t *testing.T) {
	cases := []struct {
		name string
		data string
		want uint64
	}{
		{"simple", "h\n1\n2\n3\n", 3},
		{"blank lines skipped", "h\n1\n\n2\n", 2},
		{"whitespace-only lines skipped", "h\n1\n \t \n2\n", 2},
		{"no trailing newline", "h\n1\n2", 2},
		{"header only", "h\n", 0},
		{"empty file", "", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			src := writeCSV(t, c.data)
			require.Equal(t, c.want, CountRows(src))
		})
	}
}

func TestCountRowsNoHeader(t *testing.T) {
	src := writeCSV(t, "1\n2\n")
	src.Header = false
	require.Equal(t, uint64(2), CountRows(src))
}

func TestCountRowsIdempotent(t *testing.T) {
	src := writeCSV(t, "h\n1\n\n2\n3\n")
	require.Equal(t, CountRows(src), CountRows(src))
}

func TestCountRowsUnreadable(t *testing.T) {
	src := Source{
		Path:   filepath.Join(t.TempDir(), "missing.csv"),
		Format: pirdb.FormatCSV,
		Header: true,
	}
	require.Equal(t, uint64(0), CountRows(src))
}

func TestCountRowsParquetMetadata(t *testing.T) {
	src := writeParquet(t, int64Schema("value", false),
		[]interface{}{int64(1), int64(0), int64(3), int64(2)})
	require.Equal(t, uint64(4), CountRows(src))
}
