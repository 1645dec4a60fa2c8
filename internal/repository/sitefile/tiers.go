package sitefile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/rust-site-config/internal/domain/site"
)

// TierFile reads tiers from a YAML file on disk.
type TierFile struct {
	// path is the filesystem location of the tier description.
	path string
}

// NewTierFile creates a reader for the YAML document at path.
func NewTierFile(path string) *TierFile {
	return &TierFile{
		path: filepath.Clean(path),
	}
}

// Load reads and decodes the tier description.
func (f *TierFile) Load(_ context.Context) (site.Tiers, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open tiers file: %w", site.ErrIO, err)
	}

	defer func() {
		_ = file.Close()
	}()

	var tiers site.Tiers

	if err = yaml.NewDecoder(file).Decode(&tiers); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: decode %s: empty document", site.ErrParse, f.path)
		}

		return nil, fmt.Errorf("%w: decode %s: %w", site.ErrParse, f.path, err)
	}

	// A null document decodes without calling the tiers decoder.
	if tiers == nil {
		return nil, fmt.Errorf("%w: decode %s: tiers must be a mapping", site.ErrParse, f.path)
	}

	return tiers, nil
}
