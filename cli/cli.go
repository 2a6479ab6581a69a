// Package cli holds the flags and setup shared by the commands of the
// colstat tool.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"runtime/pprof"
	"syscall"

	"github.com/brimdata/columnar/pkg/config"
	"go.uber.org/multierr"
)

// version can be set by the linker.
var version string

// Version returns a version string.  If the version variable in this package
// was set to a non-empty string by the linker, Version returns that.
// Otherwise, if build information is available via [debug.ReadBuildInfo],
// Version returns [debug.Buildinfo].Main.Version.  Otherwise, Version returns
// "unknown".
func Version() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		// This will be "(devel)" for binaries not built by
		// "go install PACKAGE@VERSION".
		return info.Main.Version
	}
	return "unknown"
}

type Flags struct {
	// Config holds the contents of the -config file, or the defaults
	// when no file was given, once Init has run.
	Config config.Config

	showVersion    bool
	configPath     string
	cpuprofile     string
	memprofile     string
	cpuProfileFile *os.File
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&f.showVersion, "version", false, "print version and exit")
	fs.StringVar(&f.configPath, "config", "", "path of YAML configuration file")
	fs.StringVar(&f.cpuprofile, "cpuprofile", "", "write cpu profile to given file name")
	fs.StringVar(&f.memprofile, "memprofile", "", "write memory profile to given file name")
}

type Initializer interface {
	Init() error
}

// Init loads the configuration file, runs each initializer, and starts
// any requested profiling.  The returned cleanup function stops
// profiling and must be called when the command is done.
func (f *Flags) Init(all ...Initializer) (context.Context, func(), error) {
	if f.showVersion {
		fmt.Printf("Version: %s\n", Version())
		os.Exit(0)
	}
	f.Config = config.Default()
	if f.configPath != "" {
		conf, err := config.Load(f.configPath)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", f.configPath, err)
		}
		f.Config = conf
	}
	var err error
	for _, flags := range all {
		err = multierr.Append(err, flags.Init())
	}
	if err != nil {
		return nil, nil, err
	}
	if f.cpuprofile != "" {
		if err := f.runCPUProfile(f.cpuprofile); err != nil {
			return nil, nil, err
		}
	}
	ctx, cancel := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGPIPE, syscall.SIGTERM)
	cleanup := func() {
		cancel()
		if err := f.cleanup(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return &interruptedContext{ctx}, cleanup, nil
}

type interruptedContext struct{ context.Context }

func (i *interruptedContext) Err() error {
	err := i.Context.Err()
	if errors.Is(err, context.Canceled) {
		return errors.New("interrupted")
	}
	return err
}

func (f *Flags) cleanup() error {
	var err error
	if f.cpuProfileFile != nil {
		pprof.StopCPUProfile()
		err = f.cpuProfileFile.Close()
	}
	if f.memprofile != "" {
		err = multierr.Append(err, runMemProfile(f.memprofile))
	}
	return err
}

func (f *Flags) runCPUProfile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		return multierr.Append(err, file.Close())
	}
	f.cpuProfileFile = file
	return nil
}

func runMemProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	runtime.GC()
	err = pprof.Lookup("allocs").WriteTo(f, 0)
	return multierr.Append(err, f.Close())
}

func FileExists(path string) bool {
	if path == "-" {
		return true
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
