package types

import (
	"errors"
	"strings"
)

// Config holds the parameters for loading and reconciling a vocabulary
// directory.
type Config struct {
	// Directory holds the vocabulary data files. Only files directly in it
	// are read.
	Directory string `json:"directory" yaml:"directory" mapstructure:"directory"`

	// Extension selects data files by suffix, including the leading dot.
	Extension string `json:"extension" yaml:"extension" mapstructure:"extension"`

	// ReadOnly disables every disk write, including legacy migrations.
	ReadOnly bool `json:"read_only" yaml:"read_only" mapstructure:"read_only"`
}

// Defaults applied by the CLI when nothing else is configured.
const (
	DefaultDirectory = "./vocab/"
	DefaultExtension = ".csv"
)

// Config validation errors.
var (
	ErrDirectoryEmpty   = errors.New("directory must not be empty")
	ErrExtensionInvalid = errors.New("extension must start with a dot")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Directory) == "" {
		return ErrDirectoryEmpty
	}
	if len(c.Extension) < 2 || !strings.HasPrefix(c.Extension, ".") {
		return ErrExtensionInvalid
	}
	return nil
}

// WithDefaults returns a copy of c with empty fields filled in.
func (c Config) WithDefaults() Config {
	if c.Directory == "" {
		c.Directory = DefaultDirectory
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	return c
}
