package root

import (
	"flag"

	"github.com/veripir/pirdb/cli/logflags"
	"github.com/veripir/pirdb/pkg/charm"
	"go.uber.org/zap"
)

var Cmd = &charm.Spec{
	Name:  "pirdb",
	Usage: "pirdb [ options ] command [ options ] file",
	Short: "ingest a numeric column for private information retrieval",
	Long: `
pirdb turns one numeric column of a CSV or Parquet file into the dense,
bounded-width entry buffer consumed by the PIR engine.  The "stats"
command inspects a source without ingesting it; the "query" command
ingests the source and retrieves a single entry by row index.
`,
	New: New,
}

type Command struct {
	logFlags logflags.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{}
	c.logFlags.SetFlags(f)
	return c, nil
}

func (c *Command) Run(args []string) error {
	return charm.NeedHelp
}

// Logger opens the logger configured by the root flags.
func (c *Command) Logger() (*zap.Logger, error) {
	return c.logFlags.Open()
}
