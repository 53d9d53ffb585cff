// Package srtm fetches CGIAR SRTM 5x5 degree elevation tiles.
//
// Tiles are addressed by a (column, row) pair: column 1 starts at 180W and
// advances east in 5 degree bands, row 1 starts at 60N and advances south.
// The CGIAR mirror serves each tile as a zip archive containing a single
// GeoTIFF.
package srtm

import (
	"fmt"
)

// Tile identifies one 5x5 degree cell of the CGIAR SRTM grid.
type Tile struct {
	X int // Column, 1-based, west to east from 180W.
	Y int // Row, 1-based, north to south from 60N.
}

// Name returns the canonical tile name, e.g. "srtm_01_02".
func (t Tile) Name() string {
	return fmt.Sprintf("srtm_%02d_%02d", t.X, t.Y)
}

// TifName returns the name of the GeoTIFF inside the remote archive, which is
// also the local artifact name.
func (t Tile) TifName() string {
	return t.Name() + ".tif"
}

// ZipName returns the name of the remote archive.
func (t Tile) ZipName() string {
	return t.Name() + ".zip"
}

// URL returns the remote archive URL under the given base.
func (t Tile) URL(base string) string {
	return base + "/" + t.ZipName()
}

// Bounds returns the degree boundaries of the tile.
func (t Tile) Bounds() (minLng, maxLng, minLat, maxLat int) {
	minLng = -180 + 5*(t.X-1)
	maxLat = 60 - 5*(t.Y-1)
	return minLng, minLng + 5, maxLat - 5, maxLat
}

// ParseName recovers the tile coordinate from a name of the form produced by
// Name.
func ParseName(name string) (Tile, error) {
	var x, y int
	if _, err := fmt.Sscanf(name, "srtm_%2d_%2d", &x, &y); err != nil {
		return Tile{}, fmt.Errorf("malformed srtm tile name %q: %v", name, err)
	}
	return Tile{X: x, Y: y}, nil
}
