package sitefile

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/rust-site-config/internal/domain/site"
)

const (
	// DefaultFileMode keeps the generated configuration readable by the site build.
	DefaultFileMode os.FileMode = 0o644

	// yamlIndent is the indentation of the generated document.
	yamlIndent = 2
)

// ConfigFile writes the site configuration to disk.
type ConfigFile struct {
	// path is the filesystem location of the output document.
	path string
}

// NewConfigFile creates a writer for the YAML document at path.
func NewConfigFile(path string) *ConfigFile {
	return &ConfigFile{
		path: filepath.Clean(path),
	}
}

// Path returns the output location.
func (f *ConfigFile) Path() string {
	return f.path
}

// Save encodes cfg and replaces the file contents with it.
func (f *ConfigFile) Save(_ context.Context, cfg *site.Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}

	if err = os.WriteFile(f.path, data, DefaultFileMode); err != nil {
		return fmt.Errorf("%w: write %s: %w", site.ErrIO, f.path, err)
	}

	return nil
}

// Encode renders cfg as a YAML document.
func Encode(cfg *site.Config) ([]byte, error) {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(cfg); err != nil {
		return nil, fmt.Errorf("%w: encode site config: %w", site.ErrSerialization, err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("%w: encode site config: %w", site.ErrSerialization, err)
	}

	return buf.Bytes(), nil
}
