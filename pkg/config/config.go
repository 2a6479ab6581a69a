// Package config reads the YAML configuration file of the colstat command.
package config

import (
	"errors"
	"io"
	"os"

	"github.com/brimdata/columnar/colerr"
	"github.com/brimdata/columnar/pkg/logger"
	"github.com/brimdata/columnar/vector"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBatch    = 1024
	DefaultParallel = 4
)

type Config struct {
	// Tags is the tag encoding of optional and union columns, "word"
	// or "bitmap".
	Tags string `yaml:"tags"`
	// Batch is the number of rows appended with each CopySlice.
	Batch int `yaml:"batch"`
	// Parallel bounds the number of files loaded at once.
	Parallel int           `yaml:"parallel"`
	Log      logger.Config `yaml:"log"`
}

func Default() Config {
	return Config{
		Tags:     vector.WordTags.String(),
		Batch:    DefaultBatch,
		Parallel: DefaultParallel,
	}
}

// Load reads a configuration file.  Settings absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return Read(f)
}

func Read(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, colerr.E(colerr.Invalid, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if _, err := c.TagEncoding(); err != nil {
		return err
	}
	if c.Batch <= 0 {
		return colerr.E(colerr.Invalid, "batch must be positive: %d", c.Batch)
	}
	if c.Parallel <= 0 {
		return colerr.E(colerr.Invalid, "parallel must be positive: %d", c.Parallel)
	}
	return nil
}

func (c Config) TagEncoding() (vector.TagEncoding, error) {
	return vector.ParseTagEncoding(c.Tags)
}
