package load

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/alecthomas/units"
	"github.com/brimdata/columnar/cmd/colstat/root"
	"github.com/brimdata/columnar/internal/loader"
	"github.com/brimdata/columnar/pkg/charm"
	"github.com/brimdata/columnar/pkg/display"
	"github.com/brimdata/columnar/pkg/plural"
	"github.com/brimdata/columnar/pkg/terminal"
	"github.com/paulbellamy/ratecounter"
	"github.com/pbnjay/memory"
	"go.uber.org/zap"
)

var Spec = &charm.Spec{
	Name:  "load",
	Usage: "load [-limit size] [-q] file|- ...",
	Short: "load event files into column stores and report their size",
	Long: `
The load command decodes each file of JSON events (- for standard input) into
its own column store and prints the number of rows and the bytes used and
allocated by each store, followed by a total and its share of system memory.

The -limit flag sets a size, as '512MiB' or '2GB', above which the total
allocation is reported as a warning.  It defaults to half of system memory.

While loading, the number of rows loaded and the load rate are displayed on
standard error if it is a terminal, unless -q is given.`,
	New: New,
}

func init() {
	root.Colstat.Add(Spec)
}

type Command struct {
	*root.Command
	limit string
	quiet bool
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.StringVar(&c.limit, "limit", "", "allocation above which a warning is logged")
	f.BoolVar(&c.quiet, "q", false, "do not display progress")
	return c, nil
}

func (c *Command) Run(args []string) error {
	ctx, cleanup, err := c.Init()
	if err != nil {
		return err
	}
	defer cleanup()
	if len(args) == 0 {
		return errors.New("load: at least one input file must be specified (- for stdin)")
	}
	total := memory.TotalMemory()
	limit := units.Base2Bytes(total / 2)
	if c.limit != "" {
		n, err := units.ParseStrictBytes(c.limit)
		if err != nil {
			return fmt.Errorf("load: bad -limit: %w", err)
		}
		limit = units.Base2Bytes(n)
	}
	opts := c.LoaderOptions(false)
	var d *display.Display
	if !c.quiet && terminal.IsTerminal(os.Stderr) {
		p := &progress{ctx: ctx, rate: ratecounter.NewRateCounter(time.Second)}
		opts.Progress = p.add
		d = display.New(p, time.Second/2, os.Stderr)
		go d.Run()
	}
	results, err := loader.Load(ctx, args, opts)
	if d != nil {
		d.Close()
	}
	if err != nil {
		return err
	}
	var rows, used, allocated int
	for _, res := range results {
		fmt.Printf("%s: %s, %s used, %s allocated\n", res.Path, plural.Count(res.Rows(), "row"),
			units.Base2Bytes(res.Used), units.Base2Bytes(res.Allocated))
		rows += res.Rows()
		used += res.Used
		allocated += res.Allocated
	}
	fmt.Printf("total: %s in %s, %s used, %s allocated", plural.Count(rows, "row"),
		plural.Count(len(results), "file"), units.Base2Bytes(used), units.Base2Bytes(allocated))
	if total > 0 {
		fmt.Printf(" (%.4f%% of system memory)", 100*float64(allocated)/float64(total))
	}
	fmt.Println()
	if units.Base2Bytes(allocated) > limit {
		c.Logger.Warn("Allocation exceeds limit",
			zap.Stringer("allocated", units.Base2Bytes(allocated)),
			zap.Stringer("limit", limit))
	}
	return nil
}

type progress struct {
	ctx  context.Context
	rate *ratecounter.RateCounter
	rows atomic.Int64
}

func (p *progress) add(rows int) {
	p.rows.Add(int64(rows))
	p.rate.Incr(int64(rows))
}

// Display writes the rows loaded so far and the current load rate, as in
// "12000 rows 4000 rows/s".
func (p *progress) Display(w io.Writer) bool {
	fmt.Fprintf(w, "%s %d rows/s\n", plural.Count(int(p.rows.Load()), "row"), p.rate.Rate())
	return p.ctx.Err() == nil
}
