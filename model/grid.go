package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-gol/rules"
	"github.com/sheikhrachel/torus-gol/utils"
)

const (
	DefaultWidth  = 64
	DefaultHeight = 64

	historySize = 5
)

// ErrInvalidDimensions is returned when a grid is built with a non-positive width or height
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// Grid is a toroidal game board stored as a flat row-major slice
type Grid struct {
	width   int
	height  int
	cells   []Cell
	history []string // Store recent grid states for cycle detection
}

// NewGrid creates a width x height grid seeded with DefaultSeed
func NewGrid(width, height int) (*Grid, error) {
	return NewGridWithSeed(width, height, DefaultSeed)
}

// NewGridWithSeed creates a grid whose cell at linear index i is seed(i)
func NewGridWithSeed(width, height int, seed SeedFunc) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] got %dx%d", width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	g.Reseed(seed)
	return g, nil
}

// NewDefaultGrid creates the standard 64x64 grid
func NewDefaultGrid() *Grid {
	g, _ := NewGrid(DefaultWidth, DefaultHeight)
	return g
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// Cells returns a copy of the current generation in row-major order
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

func (g *Grid) index(row, col int) int {
	return row*g.width + col
}

func wrap(v, n int) int {
	return (v%n + n) % n
}

// Get returns the cell at (row, col), wrapping around the edges
func (g *Grid) Get(row, col int) Cell {
	return g.cells[g.index(wrap(row, g.height), wrap(col, g.width))]
}

// Set stores a cell at (row, col), wrapping around the edges
func (g *Grid) Set(row, col int, c Cell) {
	g.cells[g.index(wrap(row, g.height), wrap(col, g.width))] = c
}

// Clear kills every cell
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
	g.history = nil
}

// LiveNeighborCount counts live cells among the eight neighbors of (row, col).
// Adding height-1 (width-1) modulo height (width) steps back one row (column)
// without going negative.
func (g *Grid) LiveNeighborCount(row, col int) uint8 {
	row, col = wrap(row, g.height), wrap(col, g.width)

	var count uint8
	for _, dr := range [3]int{g.height - 1, 0, 1} {
		for _, dc := range [3]int{g.width - 1, 0, 1} {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr) % g.height
			c := (col + dc) % g.width
			count += g.cells[g.index(r, c)].Count()
		}
	}
	return count
}

func (g *Grid) nextCell(row, col int) Cell {
	alive := g.cells[g.index(row, col)].IsAlive()
	return cellFromBool(rules.ApplyConwayRules(int(g.LiveNeighborCount(row, col)), alive))
}

// fillRows writes the next state of rows [startRow, endRow) into next
func (g *Grid) fillRows(next []Cell, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := 0; col < g.width; col++ {
			next[g.index(row, col)] = g.nextCell(row, col)
		}
	}
}

// Tick advances the grid by one generation
func (g *Grid) Tick() {
	g.step(1, nil)
}

// TickParallel advances the grid by one generation, splitting rows across workers.
// workers <= 0 uses one worker per CPU.
func (g *Grid) TickParallel(workers int) {
	g.step(workers, nil)
}

// NextGeneration advances the grid according to configuration, recycling buffers through pool
func (g *Grid) NextGeneration(config utils.Config, pool *CellPool) {
	workers := 1
	if config.UseParallel {
		workers = config.Workers
	}
	g.step(workers, pool)
}

// step computes the whole next generation before replacing the current one
func (g *Grid) step(workers int, pool *CellPool) {
	next := pool.Get(len(g.cells))

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers == 1 || g.height == 1 {
		g.fillRows(next, 0, g.height)
	} else {
		var (
			eg            errgroup.Group
			rowsPerWorker = (g.height + workers - 1) / workers // Ceiling division
		)
		for i := range workers {
			var (
				startRow = i * rowsPerWorker
				endRow   = min(startRow+rowsPerWorker, g.height)
			)
			if startRow >= g.height {
				break
			}
			eg.Go(func() error {
				g.fillRows(next, startRow, endRow)
				return nil
			})
		}
		// row workers never fail
		_ = eg.Wait()
	}

	prev := g.cells
	g.cells = next
	pool.Put(prev)
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		count += int(c.Count())
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.GetGridHash())

	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant checks if the grid is stuck in a still life or a cycle of period up to 3.
// The current state must already have been recorded with UpdateHistory.
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.history[len(g.history)-1]
	recent := g.history[:len(g.history)-1]
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	for _, past := range recent {
		if past == currentHash {
			return true
		}
	}
	return false
}

// InjectRandomLife brings count random cells to life
func (g *Grid) InjectRandomLife(count int, rng *rand.Rand) {
	for range count {
		g.Set(rng.IntN(g.height), rng.IntN(g.width), Alive)
	}
}
