package stats

import (
	"errors"
	"flag"
	"fmt"

	"github.com/veripir/pirdb"
	"github.com/veripir/pirdb/cmd/pirdb/root"
	"github.com/veripir/pirdb/ingest"
	"github.com/veripir/pirdb/pkg/charm"
)

var Cmd = &charm.Spec{
	Name:  "stats",
	Usage: "stats [ -d bits ] [ -column name ] [ -noheader ] file",
	Short: "describe a source column without ingesting it",
	New:   New,
}

type Command struct {
	parent   *root.Command
	d        uint
	column   string
	noHeader bool
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{}
	if parent != nil {
		c.parent = parent.(*root.Command)
	}
	f.UintVar(&c.d, "d", 2, "bit width of each entry")
	f.StringVar(&c.column, "column", "", "column to read (default: first column)")
	f.BoolVar(&c.noHeader, "noheader", false, "delimited-text source has no header line")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if len(args) != 1 {
		return errors.New("stats requires a single file argument")
	}
	path := args[0]
	format := pirdb.DetectFormat(path)
	if format == pirdb.FormatUnknown {
		return fmt.Errorf("%s: %w", path, ingest.ErrUnknownFormat)
	}
	src := ingest.Source{
		Path:   path,
		Format: format,
		Column: c.column,
		Header: !c.noHeader,
	}
	stats, err := ingest.CollectStats(src, c.d)
	if err != nil {
		return err
	}
	fmt.Printf("file: %s (%s)\n", path, format)
	fmt.Printf("rows (N): %d\n", stats.Rows)
	fmt.Printf("bit width (d): %d\n", stats.BitWidth)
	fmt.Printf("maximum allowed value: %d\n", stats.MaxAllowed)
	if stats.Observed {
		fmt.Printf("observed values: [%d, %d]\n", stats.Min, stats.Max)
		fmt.Printf("minimum bit width for observed maximum: %d\n", pirdb.MinBitWidth(stats.Max))
	}
	fmt.Printf("database size: %.3f MiB\n",
		float64(stats.Rows)*float64(stats.BitWidth)/(8*float64(1<<20)))
	return nil
}
