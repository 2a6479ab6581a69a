// Package display redraws a status report on a terminal at a fixed
// interval.
package display

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/gosuri/uilive"
)

type Displayer interface {
	// Display writes the current status to w and reports whether the
	// display should continue.
	Display(w io.Writer) bool
}

type Display struct {
	live     *uilive.Writer
	interval time.Duration
	updater  Displayer
	buffer   bytes.Buffer
	close    chan struct{}
	once     sync.Once
	done     chan struct{}
}

func New(updater Displayer, interval time.Duration, w io.Writer) *Display {
	live := uilive.New()
	live.Out = w
	return &Display{
		live:     live,
		interval: interval,
		updater:  updater,
		close:    make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (d *Display) update() bool {
	d.buffer.Reset()
	cont := d.updater.Display(&d.buffer)
	// Ignore any errors.
	_, _ = io.Copy(d.live, &d.buffer)
	_ = d.live.Flush()
	return cont
}

// Run updates the display until the Displayer declines to continue or
// Close is called.
func (d *Display) Run() {
	defer close(d.done)
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	for d.update() {
		select {
		case <-d.close:
			return
		case <-ticker.C:
		}
	}
}

// Close stops a running display and draws the final status.
func (d *Display) Close() {
	d.once.Do(func() { close(d.close) })
	<-d.done
	d.update()
}
