package download

import (
	"fmt"
)

// Counters tallies the outcome of one download session.
type Counters struct {
	Requested  int // Tiles asked for.
	Existing   int // Tiles already present locally; no network call made.
	Downloaded int // Tiles fetched and written during this session.
}

// Failure records one tile that could not be fetched.
type Failure struct {
	Name string
	Err  error
}

// Summary is the result of a batch run: the session counters plus the tiles
// that failed along the way.
type Summary struct {
	Counters
	Failures []Failure
}

func (s Summary) String() string {
	return fmt.Sprintf("%d files downloaded of %d (%d files already present)",
		s.Downloaded, s.Requested, s.Existing)
}
