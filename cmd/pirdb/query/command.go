package query

import (
	"errors"
	"flag"
	"fmt"

	"github.com/veripir/pirdb/cmd/pirdb/root"
	"github.com/veripir/pirdb/ingest"
	"github.com/veripir/pirdb/pkg/charm"
)

var Cmd = &charm.Spec{
	Name:  "query",
	Usage: "query [ -d bits ] [ -index k ] [ -column name ] [ -noheader ] [ -maxrows n ] file",
	Short: "ingest a source and retrieve one entry by row index",
	New:   New,
}

type Command struct {
	parent   *root.Command
	d        uint
	index    uint64
	column   string
	noHeader bool
	maxRows  uint64
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{}
	if parent != nil {
		c.parent = parent.(*root.Command)
	}
	f.UintVar(&c.d, "d", 2, "bit width of each entry")
	f.Uint64Var(&c.index, "index", 0, "row index of the entry to retrieve")
	f.StringVar(&c.column, "column", "", "column to ingest (default: first column)")
	f.BoolVar(&c.noHeader, "noheader", false, "delimited-text source has no header line")
	f.Uint64Var(&c.maxRows, "maxrows", 0, "cap on loaded rows (0: no cap)")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if len(args) != 1 {
		return errors.New("query requires a single file argument")
	}
	logger, err := c.parent.Logger()
	if err != nil {
		return err
	}
	defer logger.Sync()
	db, err := ingest.Ingest(logger, args[0], c.d, ingest.Options{
		Column:  c.column,
		Header:  !c.noHeader,
		MaxRows: c.maxRows,
	})
	if err != nil {
		return err
	}
	v, err := db.At(c.index)
	if err != nil {
		return err
	}
	fmt.Printf("db[%d] = %d\n", c.index, v)
	return nil
}
