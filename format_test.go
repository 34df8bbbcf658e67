package pirdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		path string
		want Format
	}{
		{"data.csv", FormatCSV},
		{"DATA.CSV", FormatCSV},
		{"dir.parquet/data.Csv", FormatCSV},
		{"data.parquet", FormatParquet},
		{"data.PARQUET", FormatParquet},
		{"data.txt", FormatUnknown},
		{"data", FormatUnknown},
		{"data.csv.gz", FormatUnknown},
		{"", FormatUnknown},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DetectFormat(c.path), "path %q", c.path)
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "csv", FormatCSV.String())
	assert.Equal(t, "parquet", FormatParquet.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}
