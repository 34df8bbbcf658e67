// Package csvio reads one column of comma-delimited text as a cell stream.
//
// Its row discipline is shared by every pass of the ingestion pipeline: an
// optional header line is discarded unconditionally, a line without a
// single non-whitespace rune is not a data row, and every other line yields
// exactly one cell.
package csvio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/veripir/pirdb/cellio"
	"golang.org/x/exp/slices"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

type ReaderOpts struct {
	// Header indicates the first line is a heading and must be skipped,
	// even when no data lines follow it.
	Header bool
	// Column selects a column by its heading; empty selects the first
	// column.  A named column requires Header.
	Column string
}

type Reader struct {
	scanner *bufio.Scanner
	opts    ReaderOpts
	col     int
	row     uint64
	started bool
	err     error
}

func NewReader(r io.Reader, opts ReaderOpts) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{scanner: scanner, opts: opts}
}

func (r *Reader) Read() (*cellio.Cell, error) {
	if !r.started {
		r.started = true
		r.err = r.init()
	}
	if r.err != nil {
		return nil, r.err
	}
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		r.row++
		cell := &cellio.Cell{Row: r.row}
		fields := strings.Split(line, ",")
		if r.col >= len(fields) {
			cell.Null = true
			return cell, nil
		}
		text := strings.TrimSpace(fields[r.col])
		if text == "" {
			cell.Null = true
			return cell, nil
		}
		cell.Text = text
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			cell.Err = cellio.ErrNotInteger
			return cell, nil
		}
		cell.Value = v
		return cell, nil
	}
	r.err = r.scanner.Err()
	return nil, r.err
}

// init consumes the header line, if any, and resolves the column index.
func (r *Reader) init() error {
	if r.opts.Column != "" && !r.opts.Header {
		return fmt.Errorf("column %q: named column requires a header line", r.opts.Column)
	}
	if !r.opts.Header {
		return nil
	}
	if !r.scanner.Scan() {
		return r.scanner.Err()
	}
	if r.opts.Column == "" {
		return nil
	}
	fields := strings.Split(r.scanner.Text(), ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	col := slices.Index(fields, r.opts.Column)
	if col < 0 {
		return fmt.Errorf("column %q not found in header", r.opts.Column)
	}
	r.col = col
	return nil
}
