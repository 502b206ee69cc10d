package model

// Grid is a dense board of cells stored row-major in a single buffer
type Grid struct {
	width  int
	height int
	cells  []bool
}

// Bounds is the inclusive bounding box of the living cells of a grid
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
}

// Width returns the number of columns of the bounding box
func (b Bounds) Width() int { return b.MaxX - b.MinX + 1 }

// Height returns the number of rows of the bounding box
func (b Bounds) Height() int { return b.MaxY - b.MinY + 1 }

// NewGrid creates a new grid with the specified dimensions, all cells dead
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Reset(width, height)
	return g
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// IsEmpty reports whether the grid has no cells at all
func (g *Grid) IsEmpty() bool {
	return g.width == 0 || g.height == 0
}

// Reset resizes the grid and kills every cell, reusing the buffer when it is big enough
func (g *Grid) Reset(width, height int) {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	g.width = width
	g.height = height

	size := width * height
	if cap(g.cells) < size {
		g.cells = make([]bool, size)
		return
	}
	g.cells = g.cells[:size]
	clear(g.cells)
}

// Clear kills every cell without changing the dimensions
func (g *Grid) Clear() {
	clear(g.cells)
}

// Set sets a cell to alive (true) or dead (false), positions outside the grid are ignored
func (g *Grid) Set(x, y int, alive bool) {
	if g.contains(x, y) {
		g.cells[y*g.width+x] = alive
	}
}

// Get returns the state of a cell, positions outside the grid are dead
func (g *Grid) Get(x, y int) bool {
	if !g.contains(x, y) {
		return false
	}
	return g.cells[y*g.width+x]
}

func (g *Grid) contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// row returns the cells of row y as a sub-slice of the buffer
func (g *Grid) row(y int) []bool {
	return g.cells[y*g.width : (y+1)*g.width]
}

// CountNeighbors counts the living cells of the Moore neighbourhood of (x, y).
// The position may lie outside the grid; only in-range cells are read.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[ny*g.width+nx] {
				count++
			}
		}
	}

	return count
}

// Bounds returns the bounding box of the living cells, ok is false when none is alive
func (g *Grid) Bounds() (b Bounds, ok bool) {
	for y := range g.height {
		first, last := -1, -1
		for x, alive := range g.row(y) {
			if alive {
				if first < 0 {
					first = x
				}
				last = x
			}
		}
		if first < 0 {
			continue
		}

		if !ok {
			b = Bounds{MinX: first, MaxX: last, MinY: y, MaxY: y}
			ok = true
			continue
		}
		b.MinX = min(b.MinX, first)
		b.MaxX = max(b.MaxX, last)
		b.MaxY = y
	}
	return b, ok
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// CopyRegion copies the w*h block of src starting at (srcX, srcY) into g at (dstX, dstY).
// The block must fit inside both grids.
func (g *Grid) CopyRegion(src *Grid, srcX, srcY, dstX, dstY, w, h int) {
	for y := range h {
		from := src.row(srcY + y)[srcX : srcX+w]
		to := g.row(dstY + y)[dstX : dstX+w]
		copy(to, from)
	}
}
