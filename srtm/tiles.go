package srtm

// tiles maps each column of the CGIAR SRTM grid to the rows that have
// coverage. SRTM only covers land between 60N and 60S, so most ocean cells
// are absent. The table mirrors the mirror's published 5x5 tile manifest and
// is never mutated.
var tiles = map[int][]int{
	1:  {2, 7, 12, 15, 16, 17, 18, 21},
	2:  {2, 13, 14, 15, 17},
	3:  {2, 9, 16, 17},
	4:  {1, 2, 11},
	5:  {1, 8, 9, 12, 14, 16, 17},
	6:  {1, 9, 17},
	7:  {1, 16, 17},
	8:  {1, 16, 17, 18},
	9:  {1, 14, 16, 17},
	10: {1, 2, 17},
	11: {1, 2, 3, 17},
	12: {1, 2, 3, 4, 5},
	13: {1, 2, 3, 4, 5, 6, 7},
	14: {1, 2, 3, 4, 5, 6, 7, 8, 9},
	15: {1, 2, 3, 4, 5, 6, 7, 8, 10, 18},
	16: {1, 2, 3, 4, 5, 6, 7, 8, 9},
	17: {1, 2, 3, 4, 5, 6, 7, 8, 9},
	18: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 13},
	19: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	20: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 18},
	21: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 19},
	22: {1, 2, 3, 4, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24},
	23: {1, 2, 3, 4, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24},
	24: {1, 2, 3, 6, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23},
	25: {1, 2, 3, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 23},
	26: {3, 12, 13, 14, 15, 16, 17, 18, 19},
	27: {13, 14, 15, 16, 17, 18},
	28: {1, 13, 14, 15, 16, 17},
	29: {13, 14, 15, 16, 23},
	30: {5, 13, 14},
	31: {5, 9, 17, 24},
	32: {9},
	33: {6, 7, 8, 9, 10},
	34: {7, 8, 9, 10, 11, 14, 20},
	35: {1, 2, 4, 5, 6, 7, 8, 9, 10, 11, 12, 16, 21},
	36: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	37: {2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 23},
	38: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13},
	39: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18},
	40: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19},
	41: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19},
	42: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19},
	43: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19},
	44: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 22},
	45: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 15, 16, 17},
	46: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 15, 16, 17, 18},
	47: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 22},
	48: {1, 2, 3, 4, 5, 6, 7, 8, 9, 13, 17},
	49: {1, 2, 3, 4, 5, 6, 7},
	50: {1, 2, 3, 4, 5, 6, 7, 8, 22},
	51: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 23},
	52: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 20},
	53: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	54: {1, 2, 3, 4, 5, 6, 7, 8},
	55: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	56: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 15},
	57: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
	58: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 13, 14, 15},
	59: {1, 2, 3, 4, 5, 6, 7, 8, 9, 12, 13, 14},
	60: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
	61: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	62: {1, 2, 3, 4, 5, 6, 7, 11, 12, 13, 14, 15, 16, 17, 18, 19},
	63: {1, 2, 3, 4, 5, 6, 11, 13, 14, 15, 16, 17, 18, 19},
	64: {1, 2, 3, 4, 5, 6, 11, 13, 14, 15, 16, 17, 18, 19, 20},
	65: {1, 2, 3, 4, 5, 7, 8, 10, 13, 14, 15, 16, 17, 18, 19, 20, 21},
	66: {2, 3, 4, 9, 13, 14, 16, 17, 18, 19, 20, 21},
	67: {1, 2, 3, 11, 13, 14, 17, 18, 19, 20},
	68: {1, 2, 11, 14, 19, 23},
	69: {1, 2, 15, 16, 17},
	70: {1, 2, 9, 11, 13, 15, 16, 17, 18, 21, 22, 23},
	71: {2, 11, 12, 19, 20, 21, 22},
	72: {2, 14, 15, 16, 19, 20, 21},
}

// Valid reports whether (x, y) addresses a tile with SRTM coverage.
func Valid(x, y int) bool {
	for _, row := range tiles[x] {
		if row == y {
			return true
		}
	}
	return false
}

// Tiles returns every covered tile in (column, row) order.
func Tiles() []Tile {
	var all []Tile
	for x := 1; x <= 72; x++ {
		for _, y := range tiles[x] {
			all = append(all, Tile{X: x, Y: y})
		}
	}
	return all
}
