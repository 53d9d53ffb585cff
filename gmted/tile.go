// Package gmted fetches USGS GMTED2010 30x20 degree elevation tiles.
//
// The grid is a dense rectangle: 12 longitude bands starting at 180W and 8
// latitude bands starting at 70S. Every cell is requestable; there is no
// coverage table. Tiles are plain GeoTIFFs served without compression.
package gmted

import (
	"fmt"
	"strings"
)

const (
	// LngBands is the number of 30 degree longitude bands.
	LngBands = 12

	// LatBands is the number of 20 degree latitude bands.
	LatBands = 8
)

const nameSuffix = "_20101117_gmted_mea075.tif"

// Tile identifies one 30x20 degree cell of the GMTED grid.
type Tile struct {
	LngIndex int // 0-based, west to east from 180W.
	LatIndex int // 0-based, south to north from 70S.
}

// InRange reports whether the indices address a cell of the 12x8 grid.
func InRange(lngIndex, latIndex int) bool {
	return lngIndex >= 0 && lngIndex < LngBands && latIndex >= 0 && latIndex < LatBands
}

// Bounds returns the degree boundaries of the tile.
func (t Tile) Bounds() (minLng, maxLng, minLat, maxLat int) {
	minLng = -180 + 30*t.LngIndex
	minLat = -70 + 20*t.LatIndex
	return minLng, minLng + 30, minLat, minLat + 20
}

// Name returns the canonical tile filename, e.g.
// "70S180W_20101117_gmted_mea075.tif". The compass letters encode the sign of
// the band minimum.
func (t Tile) Name() string {
	minLng, _, minLat, _ := t.Bounds()
	return fmt.Sprintf("%02d%c%03d%c%s", abs(minLat), latPrefix(minLat), abs(minLng), lngPrefix(minLng), nameSuffix)
}

// Folder returns the longitude band folder of the remote layout, e.g. "W180".
func (t Tile) Folder() string {
	minLng, _, _, _ := t.Bounds()
	return fmt.Sprintf("%c%03d", lngPrefix(minLng), abs(minLng))
}

// URL returns the remote tile URL under the given base.
func (t Tile) URL(base string) string {
	return base + "/" + t.Folder() + "/" + t.Name()
}

// ParseName recovers the tile coordinate from a canonical filename.
func ParseName(name string) (Tile, error) {
	if !strings.HasSuffix(name, nameSuffix) {
		return Tile{}, fmt.Errorf("malformed gmted tile name %q", name)
	}

	var lat, lng int
	var latPre, lngPre string
	if _, err := fmt.Sscanf(name, "%2d%1s%3d%1s", &lat, &latPre, &lng, &lngPre); err != nil {
		return Tile{}, fmt.Errorf("malformed gmted tile name %q: %v", name, err)
	}
	if latPre == "S" {
		lat = -lat
	} else if latPre != "N" {
		return Tile{}, fmt.Errorf("malformed gmted tile name %q: bad latitude prefix", name)
	}
	if lngPre == "W" {
		lng = -lng
	} else if lngPre != "E" {
		return Tile{}, fmt.Errorf("malformed gmted tile name %q: bad longitude prefix", name)
	}

	t := Tile{
		LngIndex: (lng + 180) / 30,
		LatIndex: (lat + 70) / 20,
	}
	if !InRange(t.LngIndex, t.LatIndex) || t.Name() != name {
		return Tile{}, fmt.Errorf("gmted tile name %q not on the grid", name)
	}
	return t, nil
}

// Tiles returns every tile of the grid in (longitude, latitude) band order.
func Tiles() []Tile {
	all := make([]Tile, 0, LngBands*LatBands)
	for lng := 0; lng < LngBands; lng++ {
		for lat := 0; lat < LatBands; lat++ {
			all = append(all, Tile{LngIndex: lng, LatIndex: lat})
		}
	}
	return all
}

func lngPrefix(minLng int) byte {
	if minLng < 0 {
		return 'W'
	}
	return 'E'
}

func latPrefix(minLat int) byte {
	if minLat < 0 {
		return 'S'
	}
	return 'N'
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
