package charm

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// displayHelp prints usage for the spec named by path relative to s, or
// for s itself when path is empty.
func (s *Spec) displayHelp(path []string) {
	target := s
	for _, name := range path {
		child := target.lookup(name)
		if child == nil {
			fmt.Fprintf(os.Stderr, "no such command: %s\n", name)
			return
		}
		target = child
	}
	fmt.Printf("usage: %s\n", target.Usage)
	if long := strings.TrimSpace(target.Long); long != "" {
		fmt.Printf("\n%s\n", long)
	} else if target.Short != "" {
		fmt.Printf("\n%s\n", target.Short)
	}
	if f := target.defaults(); f != nil {
		fmt.Println("\noptions:")
		f.SetOutput(os.Stdout)
		f.PrintDefaults()
	}
	if len(target.children) > 0 {
		fmt.Println("\ncommands:")
		for _, child := range target.children {
			fmt.Printf("  %-10s %s\n", child.Name, child.Short)
		}
	}
}

// defaults rebuilds the spec's flag set so help can show default values.
func (s *Spec) defaults() *flag.FlagSet {
	if s.New == nil {
		return nil
	}
	f := flag.NewFlagSet(s.Name, flag.ContinueOnError)
	if _, err := s.New(nil, f); err != nil {
		return nil
	}
	return f
}
