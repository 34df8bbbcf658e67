// Package charm is a minimalist command-line framework in the spirit of
// cobra and urfave/cli: a tree of command specs, each binding its own
// flags, executed by walking the argument list.
package charm

import (
	"errors"
	"flag"
	"fmt"
)

// NeedHelp may be returned by a command's Run method to print its usage
// instead of failing.
var NeedHelp = errors.New("help")

type Command interface {
	Run(args []string) error
}

// A Constructor binds a spec's flags to a new command.  It must not touch
// anything but the flag set; parent may be nil when the framework only
// needs the flag defaults (e.g. for help output).
type Constructor func(parent Command, f *flag.FlagSet) (Command, error)

type Spec struct {
	Name  string
	Usage string
	Short string
	Long  string
	New   Constructor

	children []*Spec
	parent   *Spec
}

func (s *Spec) Add(child *Spec) {
	child.parent = s
	s.children = append(s.children, child)
}

func (s *Spec) lookup(name string) *Spec {
	for _, child := range s.children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// ExecRoot runs the command tree rooted at s over args, descending into
// subcommands as they are named.  A NeedHelp error from any command turns
// into usage output and a nil return.
func (s *Spec) ExecRoot(args []string) error {
	err := s.Exec(nil, args)
	if errors.Is(err, NeedHelp) {
		return nil
	}
	return err
}

// Exec constructs s's command with the given parent, parses its flags,
// and either descends into the named subcommand or runs the command on
// the remaining arguments.
func (s *Spec) Exec(parent Command, args []string) error {
	if s.New == nil {
		return fmt.Errorf("command %q: no constructor", s.Name)
	}
	f := flag.NewFlagSet(s.Name, flag.ContinueOnError)
	cmd, err := s.New(parent, f)
	if err != nil {
		return err
	}
	if err := f.Parse(args); err != nil {
		return err
	}
	rest := f.Args()
	if len(rest) > 0 {
		if rest[0] == "help" {
			s.displayHelp(rest[1:])
			return NeedHelp
		}
		if child := s.lookup(rest[0]); child != nil {
			return child.Exec(cmd, rest[1:])
		}
	}
	err = cmd.Run(rest)
	if errors.Is(err, NeedHelp) {
		s.displayHelp(nil)
	}
	return err
}
