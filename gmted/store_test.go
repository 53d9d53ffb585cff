package gmted

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"demget/config"
	"demget/download"
)

func testConfig(dir, base string) config.Config {
	cfg := config.Default()
	cfg.GMTEDDir = dir
	cfg.GMTEDBaseURL = base
	cfg.Timeout = 5 * time.Second
	return cfg
}

func TestFetchDownloadsMissingTile(t *testing.T) {
	tile := Tile{LngIndex: 6, LatIndex: 4}
	payload := []byte("elevation data")

	var hits int
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		gotPath = r.URL.Path
		w.Write(payload)
	}))
	defer srv.Close()

	dir := t.TempDir()
	s, err := NewStore(testConfig(dir, srv.URL))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	var c download.Counters
	if err := s.Fetch(context.Background(), tile, &c); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	want := download.Counters{Requested: 1, Existing: 0, Downloaded: 1}
	if c != want {
		t.Errorf("counters = %+v, want %+v", c, want)
	}
	if hits != 1 {
		t.Errorf("network calls = %d, want 1", hits)
	}
	if wantPath := "/E000/" + tile.Name(); gotPath != wantPath {
		t.Errorf("request path = %q, want %q", gotPath, wantPath)
	}

	got, err := os.ReadFile(filepath.Join(dir, tile.Name()))
	if err != nil {
		t.Fatalf("read downloaded tile: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("tile content = %q, want %q", got, payload)
	}
}

func TestFetchIsIdempotent(t *testing.T) {
	tile := Tile{LngIndex: 0, LatIndex: 0}

	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("data"))
	}))
	defer srv.Close()

	s, err := NewStore(testConfig(t.TempDir(), srv.URL))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	var first download.Counters
	if err := s.Fetch(context.Background(), tile, &first); err != nil {
		t.Fatalf("first Fetch: %v", err)
	}

	var second download.Counters
	if err := s.Fetch(context.Background(), tile, &second); err != nil {
		t.Fatalf("second Fetch: %v", err)
	}

	want := download.Counters{Requested: 1, Existing: 1, Downloaded: 0}
	if second != want {
		t.Errorf("second counters = %+v, want %+v", second, want)
	}
	if hits != 1 {
		t.Errorf("network calls = %d, want exactly 1", hits)
	}
}

func TestFetchReportsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	dir := t.TempDir()
	s, err := NewStore(testConfig(dir, srv.URL))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	tile := Tile{LngIndex: 0, LatIndex: 0}
	var c download.Counters
	if err := s.Fetch(context.Background(), tile, &c); err == nil {
		t.Fatal("Fetch succeeded, want error for 500 response")
	}
	if c.Downloaded != 0 {
		t.Errorf("downloaded = %d, want 0", c.Downloaded)
	}
	if _, err := os.Stat(filepath.Join(dir, tile.Name())); !os.IsNotExist(err) {
		t.Errorf("tile file written despite failed fetch")
	}
}

func TestDownloadAllSweepsFullGrid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("data"))
	}))
	defer srv.Close()

	s, err := NewStore(testConfig(t.TempDir(), srv.URL))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	sum := s.DownloadAll(context.Background())

	if sum.Requested != 96 {
		t.Errorf("requested = %d, want 96", sum.Requested)
	}
	if sum.Downloaded+sum.Existing != 96 {
		t.Errorf("downloaded+existing = %d, want 96", sum.Downloaded+sum.Existing)
	}
	if len(sum.Failures) != 0 {
		t.Errorf("failures = %+v, want none", sum.Failures)
	}

	// Second sweep: everything already present.
	sum = s.DownloadAll(context.Background())
	if sum.Existing != 96 || sum.Downloaded != 0 {
		t.Errorf("second sweep: existing = %d downloaded = %d, want 96 and 0",
			sum.Existing, sum.Downloaded)
	}
}
