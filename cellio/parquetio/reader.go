// Package parquetio reads one column of a Parquet file as a cell stream.
package parquetio

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	goparquet "github.com/fraugster/parquet-go"
	"github.com/fraugster/parquet-go/parquet"
	"github.com/fraugster/parquet-go/parquetschema"

	"github.com/veripir/pirdb/cellio"
)

// ColumnError describes a schema problem with the selected column.
type ColumnError struct {
	Column string
	Err    error
}

func (e *ColumnError) Error() string { return fmt.Sprintf("column %q: %s", e.Column, e.Err) }
func (e *ColumnError) Unwrap() error { return e.Err }

var errUnsupportedType = errors.New("physical storage type must be 64-bit integer")

type Reader struct {
	fr       *goparquet.FileReader
	column   string
	unsigned bool
	row      uint64
}

// NewReader returns a Reader over the named column, or over the first
// column when column is empty.  The column's physical storage type must be
// 64-bit integer (signed or unsigned); anything else is a schema error
// regardless of content.
func NewReader(r io.Reader, column string) (*Reader, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		return nil, errors.New("reader cannot seek")
	}
	fr, err := goparquet.NewFileReader(rs)
	if err != nil {
		return nil, err
	}
	cd, err := lookupColumn(fr.GetSchemaDefinition(), column)
	if err != nil {
		return nil, err
	}
	se := cd.SchemaElement
	if se.Type == nil || *se.Type != parquet.Type_INT64 {
		return nil, &ColumnError{Column: se.Name, Err: errUnsupportedType}
	}
	return &Reader{fr: fr, column: se.Name, unsigned: isUnsigned(se)}, nil
}

func lookupColumn(sd *parquetschema.SchemaDefinition, column string) (*parquetschema.ColumnDefinition, error) {
	children := sd.RootColumn.Children
	if len(children) == 0 {
		return nil, errors.New("schema has no columns")
	}
	if column == "" {
		return children[0], nil
	}
	for _, c := range children {
		if c.SchemaElement.Name == column {
			return c, nil
		}
	}
	return nil, &ColumnError{Column: column, Err: errors.New("not found")}
}

func isUnsigned(se *parquet.SchemaElement) bool {
	if se.IsSetLogicalType() && se.LogicalType.IsSetINTEGER() {
		return !se.LogicalType.INTEGER.IsSigned
	}
	return se.IsSetConvertedType() && *se.ConvertedType == parquet.ConvertedType_UINT_64
}

func (r *Reader) Read() (*cellio.Cell, error) {
	data, err := r.fr.NextRow()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	r.row++
	cell := &cellio.Cell{Row: r.row}
	raw, ok := data[r.column]
	if !ok || raw == nil {
		cell.Null = true
		return cell, nil
	}
	v, ok := raw.(int64)
	if !ok {
		return nil, &ColumnError{Column: r.column, Err: fmt.Errorf("unexpected value of type %T", raw)}
	}
	if r.unsigned {
		cell.Value = uint64(v)
		cell.Text = strconv.FormatUint(uint64(v), 10)
		return cell, nil
	}
	cell.Text = strconv.FormatInt(v, 10)
	if v < 0 {
		cell.Err = cellio.ErrNegative
		return cell, nil
	}
	cell.Value = uint64(v)
	return cell, nil
}

// NumRows reports the file's total row count from its metadata.
func (r *Reader) NumRows() uint64 {
	return uint64(r.fr.NumRows())
}
