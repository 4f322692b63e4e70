package fractal

// Grid is the intensity raster of one frame. Values lie in [0, 1]: 0 renders
// as diverged background, 1 as bounded set interior. Cells are stored in
// row-major order (index v*Width + u). Every frame gets a fresh grid and
// nothing aliases it once the generator returns, so consumers may keep or
// mutate it freely.
type Grid struct {
	Width  int
	Height int
	Values []float64
}

// NewGrid allocates a zeroed grid for the given resolution.
func NewGrid(res Resolution) *Grid {
	return &Grid{
		Width:  res.Width,
		Height: res.Height,
		Values: make([]float64, res.Width*res.Height),
	}
}

// At returns the intensity of the pixel at column u, row v.
func (g *Grid) At(u, v int) float64 {
	return g.Values[v*g.Width+u]
}

// set stores the intensity of the pixel at column u, row v.
func (g *Grid) set(u, v int, val float64) {
	g.Values[v*g.Width+u] = val
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	values := make([]float64, len(g.Values))
	copy(values, g.Values)
	return &Grid{
		Width:  g.Width,
		Height: g.Height,
		Values: values,
	}
}

// Equal reports whether two grids have identical dimensions and cell values.
// The comparison is exact, which is what determinism checks need.
func (g *Grid) Equal(other *Grid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i, val := range g.Values {
		if val != other.Values[i] {
			return false
		}
	}
	return true
}
