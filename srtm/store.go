package srtm

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"demget/config"
	"demget/download"
	"demget/fileutil"
)

var (
	// ErrInvalidTile indicates a coordinate outside the coverage grid.
	ErrInvalidTile = errors.New("tile outside the srtm coverage grid")

	// ErrBadArchive indicates a remote archive without the expected GeoTIFF.
	ErrBadArchive = errors.New("archive missing expected tile")
)

// Store downloads SRTM tiles into a local storage directory.
type Store struct {
	dir  string // constant
	base string // remote base URL

	hc      *http.Client
	timeout time.Duration
}

// NewStore returns a store rooted at the configured SRTM directory, creating
// the directory if absent.
func NewStore(cfg config.Config) (*Store, error) {
	if err := fileutil.EnsureDir(cfg.SRTMDir); err != nil {
		return nil, fmt.Errorf("create storage dir: %v", err)
	}
	return &Store{
		dir:     cfg.SRTMDir,
		base:    cfg.SRTMBaseURL,
		hc:      &http.Client{},
		timeout: cfg.Timeout,
	}, nil
}

// Exists returns true if the tile's GeoTIFF is already in the storage
// directory. Presence of the file is the sole idempotence mechanism.
func (s *Store) Exists(t Tile) bool {
	return fileutil.FileExists(s.path(t))
}

func (s *Store) path(t Tile) string {
	return filepath.Join(s.dir, t.TifName())
}

// Fetch ensures the given tile has been downloaded, updating the session
// counters. A tile already on disk counts as existing and causes no network
// call. The remote archive is fetched with a single GET and exactly the
// expected GeoTIFF member is extracted into the storage directory.
func (s *Store) Fetch(ctx context.Context, t Tile, c *download.Counters) error {
	c.Requested++

	if !Valid(t.X, t.Y) {
		log.Errorf("invalid srtm tile: %s", t.Name())
		return fmt.Errorf("%s: %w", t.Name(), ErrInvalidTile)
	}

	if s.Exists(t) {
		log.Debugf("skipping %s: file already exists", t.TifName())
		c.Existing++
		return nil
	}

	log.Infof("downloading %s", t.TifName())

	b, err := download.Get(ctx, s.hc, t.URL(s.base), s.timeout)
	if err != nil {
		log.WithError(err).Errorf("failed to retrieve %s", t.ZipName())
		return fmt.Errorf("retrieve %s: %w", t.ZipName(), err)
	}

	if err := s.extract(t, b); err != nil {
		log.WithError(err).Errorf("failed to extract %s", t.TifName())
		return err
	}

	c.Downloaded++
	return nil
}

// extract writes the expected GeoTIFF member of the zipped response body into
// the storage directory.
func (s *Store) extract(t Tile, b []byte) error {
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return fmt.Errorf("%s: %w: %v", t.ZipName(), ErrBadArchive, err)
	}

	for _, f := range zr.File {
		if f.Name != t.TifName() {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("open %s in %s: %v", f.Name, t.ZipName(), err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return fmt.Errorf("read %s from %s: %v", f.Name, t.ZipName(), err)
		}

		if err := os.WriteFile(s.path(t), data, 0644); err != nil {
			return fmt.Errorf("save %s: %v", t.TifName(), err)
		}
		return nil
	}

	return fmt.Errorf("%s has no member %s: %w", t.ZipName(), t.TifName(), ErrBadArchive)
}

// DownloadAll fetches every tile in the coverage grid, continuing past
// individual failures, and returns the session summary.
func (s *Store) DownloadAll(ctx context.Context) download.Summary {
	var sum download.Summary
	for _, t := range Tiles() {
		if err := s.Fetch(ctx, t, &sum.Counters); err != nil {
			sum.Failures = append(sum.Failures, download.Failure{Name: t.Name(), Err: err})
		}
	}
	return sum
}
