package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles the cell buffers the board allocates on every generation
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid from the pool, sized and cleared
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(width, height)
	return g
}

// Put returns a grid to the pool
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}

// getGrid takes a grid from pool, or allocates one when pool is nil
func getGrid(pool *GridPool, width, height int) *Grid {
	if pool == nil {
		return NewGrid(width, height)
	}
	return pool.Get(width, height)
}
