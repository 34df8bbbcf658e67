package main

import (
	"fmt"
	"os"

	"github.com/veripir/pirdb/cmd/pirdb/query"
	"github.com/veripir/pirdb/cmd/pirdb/root"
	"github.com/veripir/pirdb/cmd/pirdb/stats"
)

func main() {
	root.Cmd.Add(stats.Cmd)
	root.Cmd.Add(query.Cmd)
	if err := root.Cmd.ExecRoot(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
