package verify

import (
	"errors"
	"flag"
	"fmt"

	"github.com/brimdata/columnar/cmd/colstat/root"
	"github.com/brimdata/columnar/internal/loader"
	"github.com/brimdata/columnar/pkg/charm"
	"github.com/brimdata/columnar/pkg/plural"
	"github.com/brimdata/columnar/pkg/terminal/color"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var Spec = &charm.Spec{
	Name:  "verify",
	Usage: "verify [-stride n] file|- ...",
	Short: "check that column stores reproduce the events loaded into them",
	Long: `
The verify command loads each file like the load command, then checks the
store against the decoded events: it compares the view of every n'th row
(see -stride), pops every row comparing it with the event loaded in that
position, and checks that the emptied store is no larger than a new one.`,
	New: New,
}

func init() {
	root.Colstat.Add(Spec)
}

type Command struct {
	*root.Command
	stride int
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.IntVar(&c.stride, "stride", 1, "compare the view of every n'th row")
	return c, nil
}

func (c *Command) Run(args []string) error {
	ctx, cleanup, err := c.Init()
	if err != nil {
		return err
	}
	defer cleanup()
	if len(args) == 0 {
		return errors.New("verify: at least one input file must be specified (- for stdin)")
	}
	results, err := loader.Load(ctx, args, c.LoaderOptions(true))
	if err != nil {
		return err
	}
	var errs error
	for _, res := range results {
		n := res.Rows()
		if err := loader.Verify(res, c.stride); err != nil {
			c.Logger.Error("Verification failed", zap.String("path", res.Path), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", res.Path, err))
			continue
		}
		c.Logger.Info("Verified file", zap.String("path", res.Path), zap.Int("rows", n))
		fmt.Printf("%s: %s %s\n", res.Path, plural.Count(n, "row"), color.Green.Colorize("ok"))
	}
	return errs
}
