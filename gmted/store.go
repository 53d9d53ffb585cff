package gmted

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"demget/config"
	"demget/download"
	"demget/fileutil"
)

// Store downloads GMTED tiles into a local storage directory.
type Store struct {
	dir  string // constant
	base string // remote base URL

	hc      *http.Client
	timeout time.Duration
}

// NewStore returns a store rooted at the configured GMTED directory, creating
// the directory if absent.
func NewStore(cfg config.Config) (*Store, error) {
	if err := fileutil.EnsureDir(cfg.GMTEDDir); err != nil {
		return nil, fmt.Errorf("create storage dir: %v", err)
	}
	return &Store{
		dir:     cfg.GMTEDDir,
		base:    cfg.GMTEDBaseURL,
		hc:      &http.Client{},
		timeout: cfg.Timeout,
	}, nil
}

// Exists returns true if the tile is already in the storage directory.
func (s *Store) Exists(t Tile) bool {
	return fileutil.FileExists(s.path(t))
}

func (s *Store) path(t Tile) string {
	return filepath.Join(s.dir, t.Name())
}

// Fetch ensures the given tile has been downloaded, updating the session
// counters. The response body is written directly to the storage path; a
// failed write fails the fetch the same way a failed request does.
func (s *Store) Fetch(ctx context.Context, t Tile, c *download.Counters) error {
	c.Requested++

	if s.Exists(t) {
		log.Debugf("skipping %s: file already exists", t.Name())
		c.Existing++
		return nil
	}

	log.Infof("downloading %s", t.Name())

	b, err := download.Get(ctx, s.hc, t.URL(s.base), s.timeout)
	if err != nil {
		log.WithError(err).Errorf("failed to retrieve %s", t.Name())
		return fmt.Errorf("retrieve %s: %w", t.Name(), err)
	}

	if err := os.WriteFile(s.path(t), b, 0644); err != nil {
		log.WithError(err).Errorf("failed to save %s", t.Name())
		return fmt.Errorf("save %s: %v", t.Name(), err)
	}

	c.Downloaded++
	return nil
}

// DownloadAll fetches the full 12x8 grid, continuing past individual
// failures, and returns the session summary.
func (s *Store) DownloadAll(ctx context.Context) download.Summary {
	var sum download.Summary
	for _, t := range Tiles() {
		if err := s.Fetch(ctx, t, &sum.Counters); err != nil {
			sum.Failures = append(sum.Failures, download.Failure{Name: t.Name(), Err: err})
		}
	}
	return sum
}
