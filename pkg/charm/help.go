package charm

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brimdata/columnar/pkg/terminal"
	"github.com/kr/text"
)

var Help = &Spec{
	Name:  "help",
	Usage: "help [command]",
	Short: "display help for a command",
	Long: `
For help on the top-level command just type "help".
For help on a subcommand, type "help command" where command is the name of
the command.  For help on command nested further, type "help cmd1 cmd2" and
so forth.`,
	HiddenFlags: "v",
	New: func(parent Command, f *flag.FlagSet) (Command, error) {
		c := &HelpCommand{}
		f.BoolVar(&c.vflag, "v", false, "show hidden commands and flags")
		return c, nil
	},
}

type HelpCommand struct {
	vflag bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// flagMap creates a map that maps a name to a boolean based on the existence
// of that name in the comma-separated string of flags.  Whitespace is removed
// from each name in the flags list.
func flagMap(flags string) map[string]bool {
	m := make(map[string]bool)
	for _, flag := range strings.Split(flags, ",") {
		if flag = strings.TrimSpace(flag); flag != "" {
			m[flag] = true
		}
	}
	return m
}

func (c *HelpCommand) search(args []string) (path, error) {
	parent, err := newInstance(nil, Help.Root())
	if err != nil {
		return nil, err
	}
	p := path{parent}
	for k, arg := range args {
		subcmd := parent.spec.lookupSub(arg)
		if subcmd == nil {
			return nil, fmt.Errorf("no such command: %s", strings.Join(args[:k+1], " "))
		}
		child, err := newInstance(parent.command, subcmd)
		if err != nil {
			return nil, err
		}
		p = append(p, child)
		parent = child
	}
	return p, nil
}

func (c *HelpCommand) Run(args []string) error {
	p, err := c.search(args)
	if err != nil {
		return err
	}
	w := c.Output
	if w == nil {
		w = os.Stderr
	}
	c.help(w, p)
	return nil
}

const tab = "    "

func formatParagraph(body string, lineWidth int) string {
	var chunks []string
	for _, paragraph := range strings.Split(strings.TrimSpace(body), "\n\n") {
		paragraph = text.Wrap(strings.TrimSpace(paragraph), lineWidth)
		chunks = append(chunks, strings.ReplaceAll(paragraph, "\n", "\n"+tab))
	}
	return tab + strings.Join(chunks, "\n\n"+tab) + "\n\n"
}

func header(heading string) string {
	return "\033[1m" + heading + "\033[0m"
}

func helpItem(w io.Writer, heading, body string) {
	fmt.Fprint(w, header(heading)+"\n"+tab+body+"\n\n")
}

func helpDesc(w io.Writer, heading, body string) {
	lineWidth := terminal.Width() - len(tab) - 5
	fmt.Fprint(w, header(heading)+"\n"+formatParagraph(body, lineWidth))
}

func helpList(w io.Writer, heading string, lines []string) {
	fmt.Fprint(w, header(heading)+"\n"+tab+strings.Join(lines, "\n"+tab)+"\n\n")
}

func (c *HelpCommand) commands(target *Spec) []string {
	var lines []string
	for _, cmd := range target.children {
		name := cmd.Name
		if cmd.Hidden {
			if !c.vflag {
				continue
			}
			name = "[" + name + "]"
		}
		lines = append(lines, name+" - "+cmd.Short)
	}
	return lines
}

// options lists the flags of the last command followed by those of each
// of its ancestors, nearest first, since flags of a parent command apply
// to all of its sub-commands.
func (c *HelpCommand) options(p path) []string {
	options := p.last().options(c.vflag)
	if len(options) == 0 {
		options = []string{"no flags for this command"}
	}
	for k := len(p) - 2; k >= 0; k-- {
		parent := p[k].options(c.vflag)
		if len(parent) == 0 {
			continue
		}
		options = append(options, "", "["+path(p[:k+1]).pathname()+" flags]")
		options = append(options, parent...)
	}
	return options
}

func (c *HelpCommand) help(w io.Writer, p path) {
	spec := p.last().spec
	helpItem(w, "NAME", spec.Name+" - "+spec.Short)
	helpDesc(w, "USAGE", spec.Usage)
	helpList(w, "OPTIONS", c.options(p))
	if len(spec.children) > 0 {
		helpList(w, "COMMANDS", c.commands(spec))
	}
	helpDesc(w, "DESCRIPTION", spec.Long)
}
