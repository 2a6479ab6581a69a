// Package loader decodes event files into column stores, one store per
// file, loading several files at once.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/brimdata/columnar/colerr"
	"github.com/brimdata/columnar/internal/event"
	"github.com/brimdata/columnar/vector"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	// Batch is the number of rows appended with each CopySlice.
	Batch int
	// Parallel bounds the number of files loaded at once.
	Parallel int
	Tags     vector.TagEncoding
	// Keep retains the decoded rows in Result.Input.
	Keep bool
	// Progress, if not nil, is called with the size of each batch after
	// it is appended.  It may be called from several goroutines at once.
	Progress func(rows int)
	Logger   *zap.Logger
}

type Result struct {
	Path      string
	Store     vector.Store[event.Row, event.View]
	Tags      vector.TagEncoding
	Input     []event.Row
	Used      int
	Allocated int
}

func (r *Result) Rows() int {
	return r.Store.Len()
}

// Load loads each of paths into its own store.  The path "-" denotes
// standard input.  Results are returned in the order of paths.
func Load(ctx context.Context, paths []string, opts Options) ([]*Result, error) {
	if opts.Batch <= 0 || opts.Parallel <= 0 {
		return nil, colerr.E(colerr.Invalid, "batch and parallel must be positive")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	results := make([]*Result, len(paths))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(opts.Parallel)
	for k, path := range paths {
		k, path := k, path
		group.Go(func() error {
			res, err := loadFile(ctx, path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[k] = res
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func loadFile(ctx context.Context, path string, opts Options) (res *Result, err error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, openErr := os.Open(path)
		if openErr != nil {
			return nil, openErr
		}
		defer func() {
			err = multierr.Append(err, f.Close())
		}()
		r = f
	}
	res, err = LoadReader(ctx, r, opts)
	if err != nil {
		return nil, err
	}
	res.Path = path
	opts.Logger.Info("Loaded file",
		zap.String("path", path),
		zap.Int("rows", res.Rows()),
		zap.Int("used", res.Used),
		zap.Int("allocated", res.Allocated),
	)
	return res, nil
}

// LoadReader decodes the events of r into a new store.
func LoadReader(ctx context.Context, r io.Reader, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	res := &Result{Store: event.Shape(opts.Tags).New(), Tags: opts.Tags}
	reader := event.NewReader(r)
	batch := make([]event.Row, 0, opts.Batch)
	flush := func() {
		res.Store.CopySlice(batch)
		if opts.Keep {
			res.Input = append(res.Input, batch...)
		}
		if opts.Progress != nil {
			opts.Progress(len(batch))
		}
		logger.Debug("Appended batch", zap.Int("rows", len(batch)), zap.Int("total", res.Store.Len()))
		batch = batch[:0]
	}
	for {
		e, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, colerr.E(colerr.Invalid, err)
		}
		batch = append(batch, event.ToRow(e))
		if len(batch) == cap(batch) {
			flush()
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}
	if len(batch) > 0 {
		flush()
	}
	res.Used, res.Allocated = res.Store.HeapSize()
	return res, nil
}
