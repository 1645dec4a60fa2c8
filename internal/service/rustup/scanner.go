package rustup

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/oshokin/rust-site-config/internal/domain/site"
	"github.com/oshokin/rust-site-config/internal/logger"
)

// initPathPattern matches rustup/dist/<target>/rustup-init[.exe].
var initPathPattern = regexp.MustCompile(`^rustup/dist/([^/]+)/rustup-init(?:\.exe)?$`)

// Fetcher retrieves a remote resource body.
type Fetcher interface {
	Get(ctx context.Context, url string) (io.ReadCloser, error)
}

// Scanner lists rustup targets from a remote path list.
type Scanner struct {
	fetcher Fetcher
	url     string
}

// NewScanner returns a Scanner reading the path list at url.
func NewScanner(fetcher Fetcher, url string) *Scanner {
	return &Scanner{
		fetcher: fetcher,
		url:     url,
	}
}

// Targets fetches the path list and returns the targets it names.
func (s *Scanner) Targets(ctx context.Context) ([]string, error) {
	ctx = logger.WithName(ctx, "rustup")

	logger.DebugKV(ctx, "Fetching rustup path list", "url", s.url)

	body, err := s.fetcher.Get(ctx, s.url)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = body.Close()
	}()

	targets, err := ScanTargets(body)
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "Found %d targets for rustup", len(targets))

	return targets, nil
}

// ScanTargets returns the target of every line shaped like
// rustup/dist/<target>/rustup-init or rustup/dist/<target>/rustup-init.exe,
// in line order. A target listed twice is returned twice.
func ScanTargets(r io.Reader) ([]string, error) {
	targets := make([]string, 0)
	reader := bufio.NewReader(r)

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: read rustup path list: %w", site.ErrIO, err)
		}

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if match := initPathPattern.FindStringSubmatch(line); match != nil {
			targets = append(targets, match[1])
		}

		if err != nil {
			return targets, nil
		}
	}
}
