package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veripir/pirdb/cellio"
)

func TestValidateColumnValid(t *testing.T) {
	src := writeCSV(t, "value\n0\n3\n\n1\n")
	require.NoError(t, ValidateColumn(src, 2))
}

func TestValidateColumnEmptyCellsValid(t *testing.T) {
	src := writeCSV(t, "value\n1\n\n,\n2\n")
	require.NoError(t, ValidateColumn(src, 2))
}

func TestValidateColumnTooLarge(t *testing.T) {
	src := writeCSV(t, "value\n0\n7\n")
	err := ValidateColumn(src, 2)
	var verr *ValueError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, uint64(2), verr.Row)
	require.Equal(t, "7", verr.Text)
	require.ErrorIs(t, err, ErrTooLarge)
	require.ErrorContains(t, err, "maximum for d=2")
}

func TestValidateColumnParseFailure(t *testing.T) {
	src := writeCSV(t, "value\n2\nabc\n")
	err := ValidateColumn(src, 2)
	var verr *ValueError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, uint64(2), verr.Row)
	require.Equal(t, "abc", verr.Text)
	require.ErrorIs(t, err, cellio.ErrNotInteger)
}

func TestValidateColumnShortCircuits(t *testing.T) {
	// Both rows violate; only the first is reported.
	src := writeCSV(t, "value\n9\n8\n")
	err := ValidateColumn(src, 2)
	var verr *ValueError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, uint64(1), verr.Row)
}

func TestValidateColumnParquetNegative(t *testing.T) {
	src := writeParquet(t, int64Schema("value", false),
		[]interface{}{int64(1), int64(-4)})
	err := ValidateColumn(src, 8)
	var verr *ValueError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, uint64(2), verr.Row)
	require.ErrorIs(t, err, cellio.ErrNegative)
}

func TestValidateColumnParquetRange(t *testing.T) {
	src := writeParquet(t, int64Schema("value", false),
		[]interface{}{int64(3), int64(4)})
	require.NoError(t, ValidateColumn(src, 3))
	err := ValidateColumn(src, 2)
	require.ErrorIs(t, err, ErrTooLarge)
}
