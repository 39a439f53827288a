package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/utils"
)

const (
	PatternDefault = "default"
	PatternBlank   = "blank"
	PatternRandom  = "random"
	PatternGliders = "gliders"
)

// ErrUnknownPattern is returned for a pattern name with no generator
var ErrUnknownPattern = errors.New("unknown pattern")

// SeedFunc decides the initial state of the cell at a linear index
type SeedFunc func(index int) Cell

// DefaultSeed marks every index divisible by 2 or by 7 alive
func DefaultSeed(index int) Cell {
	return cellFromBool(index%2 == 0 || index%7 == 0)
}

// BlankSeed leaves every cell dead
func BlankSeed(int) Cell {
	return Dead
}

// RandomSeed makes each cell alive with probability density
func RandomSeed(density float64, rng *rand.Rand) SeedFunc {
	return func(int) Cell {
		return cellFromBool(rng.Float64() < density)
	}
}

// NewRand returns a deterministic generator for the given seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Reseed overwrites every cell using seed and clears the history
func (g *Grid) Reseed(seed SeedFunc) {
	for i := range g.cells {
		g.cells[i] = seed(i)
	}
	g.history = nil
}

func (g *Grid) stamp(row, col int, pattern [][]Cell) {
	for dr, line := range pattern {
		for dc, c := range line {
			g.Set(row+dr, col+dc, c)
		}
	}
}

// AddGlider adds a glider with its bounding box's top-left corner at (row, col)
func (g *Grid) AddGlider(row, col int) {
	g.stamp(row, col, [][]Cell{
		{Dead, Alive, Dead},
		{Dead, Dead, Alive},
		{Alive, Alive, Alive},
	})
}

// AddBlinker adds a horizontal period-2 blinker starting at (row, col)
func (g *Grid) AddBlinker(row, col int) {
	g.stamp(row, col, [][]Cell{{Alive, Alive, Alive}})
}

// AddBlock adds a 2x2 still life with its top-left corner at (row, col)
func (g *Grid) AddBlock(row, col int) {
	g.stamp(row, col, [][]Cell{
		{Alive, Alive},
		{Alive, Alive},
	})
}

// ResetWithPattern reseeds the grid with the configured pattern.
// restart offsets the random seed so successive restarts differ.
func (g *Grid) ResetWithPattern(config utils.Config, restart int) error {
	switch config.Pattern {
	case "", PatternDefault:
		g.Reseed(DefaultSeed)
	case PatternBlank:
		g.Reseed(BlankSeed)
	case PatternRandom:
		g.Reseed(RandomSeed(config.RandomDensity, NewRand(config.Seed+int64(restart))))
	case PatternGliders:
		g.Reseed(BlankSeed)
		g.AddGlider(1, 1)
		if g.width >= 20 && g.height >= 15 {
			g.AddGlider(1, g.width-8)
		}
		g.AddBlinker(g.height/4, g.width/4)
		if g.width >= 30 {
			g.AddBlinker(3*g.height/4, 3*g.width/4)
		}
		g.AddBlock(g.height/2, g.width/2)
	default:
		return errors.Wrapf(ErrUnknownPattern, "[ResetWithPattern] %q", config.Pattern)
	}
	return nil
}
