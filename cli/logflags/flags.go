package logflags

import (
	"flag"

	"github.com/brimdata/columnar/pkg/logger"
	"go.uber.org/zap"
)

type Flags struct {
	Config logger.Config
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&f.Config.DevMode, "log.devmode", false, "development mode (if enabled dpanic level logs will cause a panic)")
	f.Config.Level = zap.InfoLevel
	fs.Var(&f.Config.Level, "log.level", "logging level")
	fs.StringVar(&f.Config.Path, "log.path", "stderr", "path to send logs (values: stderr, stdout, path in file system)")
	f.Config.Mode = logger.FileModeAppend
	fs.Var(&f.Config.Mode, "log.filemode", "logger file write mode (values: append, truncate, rotate)")
}

// Merge replaces any setting not given on the command line with the
// corresponding setting from conf.  Set reports whether a flag was given.
func (f *Flags) Merge(conf logger.Config, set func(name string) bool) {
	if !set("log.devmode") {
		f.Config.DevMode = f.Config.DevMode || conf.DevMode
	}
	if !set("log.level") && conf.Level != zap.InfoLevel {
		f.Config.Level = conf.Level
	}
	if !set("log.path") && conf.Path != "" {
		f.Config.Path = conf.Path
	}
	if !set("log.filemode") && conf.Mode != "" {
		f.Config.Mode = conf.Mode
	}
}

func (f *Flags) Open() (*zap.Logger, error) {
	return logger.New(f.Config)
}
