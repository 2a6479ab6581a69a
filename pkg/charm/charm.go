// Package charm is a minimalist CLI framework inspired by cobra and urfave/cli.
package charm

import (
	"errors"
	"flag"
)

var (
	NeedHelp = errors.New("help")
	ErrNoRun = errors.New("no run method")
)

type Constructor func(Command, *flag.FlagSet) (Command, error)

type Command interface {
	Run([]string) error
}

type Spec struct {
	Name  string
	Usage string
	Short string
	Long  string
	New   Constructor
	// Hidden hides this command from help.
	Hidden bool
	// Hidden flags (comma-separated) marks these flags as hidden.
	HiddenFlags string
	// Redacted flags (comma-separated) marks these flags as redacted,
	// where a flag is shown (if not hidden) but its default value is hidden,
	// e.g., as is useful for a password flag.
	RedactedFlags string
	children      []*Spec
	parent        *Spec
}

func (s *Spec) Add(child *Spec) {
	s.children = append(s.children, child)
	child.parent = s
}

func (s *Spec) Root() *Spec {
	for s.parent != nil {
		s = s.parent
	}
	return s
}

func (s *Spec) lookupSub(name string) *Spec {
	for _, child := range s.children {
		if name == child.Name {
			return child
		}
	}
	return nil
}

// ExecRoot parses args against the command tree rooted at s and runs the
// command they select.  A -h or -help flag anywhere along the path
// displays help for the selected command instead.
func (s *Spec) ExecRoot(args []string) error {
	p, rest, err := parse(s, args, nil)
	if err == nil {
		err = p.run(rest)
	}
	if err == NeedHelp {
		var names []string
		for _, inst := range p[1:] {
			names = append(names, inst.spec.Name)
		}
		return (&HelpCommand{}).Run(names)
	}
	return err
}
