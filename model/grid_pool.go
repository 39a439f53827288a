package model

import "sync"

// CellPool recycles generation buffers between ticks
type CellPool struct {
	pool sync.Pool
}

func NewCellPool() *CellPool {
	return &CellPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]Cell)
			},
		},
	}
}

// Get returns a buffer of length n. Its contents are unspecified.
// A nil pool allocates a fresh buffer.
func (p *CellPool) Get(n int) []Cell {
	if p == nil {
		return make([]Cell, n)
	}
	buf := p.pool.Get().(*[]Cell)
	if cap(*buf) < n {
		return make([]Cell, n)
	}
	return (*buf)[:n]
}

// Put hands a buffer back for reuse
func (p *CellPool) Put(buf []Cell) {
	if p == nil || buf == nil {
		return
	}
	p.pool.Put(&buf)
}
