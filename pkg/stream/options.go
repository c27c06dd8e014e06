package stream

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const DefaultChunkSize = 4096

type Options struct {
	// ChunkSize is the size of the reused read buffer.
	ChunkSize int `yaml:"chunk_size"`
	// MaxSize caps the total number of bytes drained; 0 means unlimited.
	MaxSize  int64  `yaml:"max_size"`
	LogLevel string `yaml:"log_level"`

	Logger *logrus.Entry `yaml:"-"`
}

func DefaultOptions() Options {
	return Options{ChunkSize: DefaultChunkSize}
}

// ParseOptions reads YAML on top of DefaultOptions.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("stream: parse options: %w", err)
	}
	if opts.ChunkSize <= 0 {
		return Options{}, fmt.Errorf("stream: chunk_size must be positive, got %d", opts.ChunkSize)
	}
	if opts.MaxSize < 0 {
		return Options{}, fmt.Errorf("stream: max_size must not be negative, got %d", opts.MaxSize)
	}
	if _, err := opts.Level(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("stream: load options: %w", err)
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// Level returns the configured log level, logrus.InfoLevel when unset.
func (o Options) Level() (logrus.Level, error) {
	if o.LogLevel == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(o.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("stream: %w", err)
	}
	return lvl, nil
}
