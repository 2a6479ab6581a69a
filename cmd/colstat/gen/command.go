package gen

import (
	"bufio"
	"errors"
	"flag"
	"os"

	"github.com/brimdata/columnar/cmd/colstat/root"
	"github.com/brimdata/columnar/internal/event"
	"github.com/brimdata/columnar/pkg/charm"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var Spec = &charm.Spec{
	Name:  "gen",
	Usage: "gen [-n count] [-seed seed]",
	Short: "write synthetic events to standard output",
	Long: `
The gen command writes a deterministic sequence of synthetic events as JSON
lines on standard output.  The same seed always produces the same events.`,
	New: New,
}

func init() {
	root.Colstat.Add(Spec)
}

type Command struct {
	*root.Command
	n    int
	seed int64
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.IntVar(&c.n, "n", 1000, "number of events")
	f.Int64Var(&c.seed, "seed", 1, "random seed")
	return c, nil
}

func (c *Command) Run(args []string) (err error) {
	ctx, cleanup, err := c.Init()
	if err != nil {
		return err
	}
	defer cleanup()
	if len(args) != 0 {
		return errors.New("gen takes no arguments")
	}
	out := bufio.NewWriter(os.Stdout)
	defer func() {
		err = multierr.Append(err, out.Flush())
	}()
	g := event.NewGenerator(c.seed)
	w := event.NewWriter(out)
	for k := 0; k < c.n; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		e, err := g.Next()
		if err != nil {
			return err
		}
		if err := w.Write(e); err != nil {
			return err
		}
	}
	c.Logger.Debug("Generated events", zap.Int("count", c.n), zap.Int64("seed", c.seed))
	return nil
}
