package root

import (
	"context"
	"flag"

	"github.com/brimdata/columnar/cli"
	"github.com/brimdata/columnar/cli/logflags"
	"github.com/brimdata/columnar/internal/loader"
	"github.com/brimdata/columnar/pkg/charm"
	"github.com/brimdata/columnar/pkg/config"
	"go.uber.org/zap"
)

var Colstat = &charm.Spec{
	Name:  "colstat",
	Usage: "colstat <command> [options] [arguments...]",
	Short: "load event records into column stores",
	Long: `
colstat generates, loads, and verifies streams of JSON event records held in
columnar stores, reporting how much memory the stores occupy.

Settings may be given in a YAML file named with -config.  Flags given on the
command line override the file.`,
	New: New,
}

func init() {
	Colstat.Add(charm.Help)
}

type Command struct {
	cli.Flags
	LogFlags logflags.Flags
	// Logger is valid after Init.
	Logger *zap.Logger

	flags    *flag.FlagSet
	tags     string
	batch    int
	parallel int
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{flags: f}
	c.Flags.SetFlags(f)
	c.LogFlags.SetFlags(f)
	f.StringVar(&c.tags, "tags", "word", "tag encoding of optional and union columns (values: word, bitmap)")
	f.IntVar(&c.batch, "batch", config.DefaultBatch, "number of rows appended per batch")
	f.IntVar(&c.parallel, "parallel", config.DefaultParallel, "maximum number of files loaded at once")
	return c, nil
}

func (c *Command) Run(args []string) error {
	_, cleanup, err := c.Init()
	if err != nil {
		return err
	}
	defer cleanup()
	if len(args) == 0 {
		return charm.NeedHelp
	}
	return charm.ErrNoRun
}

// Init merges the configuration file with the command-line flags and
// opens the logger.
func (c *Command) Init(all ...cli.Initializer) (context.Context, func(), error) {
	ctx, cleanup, err := c.Flags.Init(all...)
	if err != nil {
		return nil, nil, err
	}
	set := make(map[string]bool)
	c.flags.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	conf := &c.Flags.Config
	if set["tags"] {
		conf.Tags = c.tags
	}
	if set["batch"] {
		conf.Batch = c.batch
	}
	if set["parallel"] {
		conf.Parallel = c.parallel
	}
	if err := conf.Validate(); err != nil {
		cleanup()
		return nil, nil, err
	}
	c.LogFlags.Merge(conf.Log, func(name string) bool { return set[name] })
	logger, err := c.LogFlags.Open()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	c.Logger = logger
	return ctx, func() {
		// Sync fails on terminals, so its error is ignored.
		_ = logger.Sync()
		cleanup()
	}, nil
}

// LoaderOptions returns the loader settings in effect after Init.
func (c *Command) LoaderOptions(keep bool) loader.Options {
	// Init has validated the tag encoding.
	enc, _ := c.Config.TagEncoding()
	return loader.Options{
		Batch:    c.Config.Batch,
		Parallel: c.Config.Parallel,
		Tags:     enc,
		Keep:     keep,
		Logger:   c.Logger,
	}
}
