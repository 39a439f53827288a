package model

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/utils"
)

func TestResetWithPattern(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 32, 20

	tests := []struct {
		pattern string
		check   func(g *WithT, grid *Grid)
	}{
		{PatternDefault, func(g *WithT, grid *Grid) {
			g.Expect(grid.Get(0, 0)).To(Equal(Alive))
			g.Expect(grid.Get(0, 1)).To(Equal(Dead))
		}},
		{PatternBlank, func(g *WithT, grid *Grid) {
			g.Expect(grid.CountLivingCells()).To(BeZero())
		}},
		{PatternRandom, func(g *WithT, grid *Grid) {
			g.Expect(grid.CountLivingCells()).To(BeNumerically(">", 0))
			g.Expect(grid.CountLivingCells()).To(BeNumerically("<", 32*20))
		}},
		{PatternGliders, func(g *WithT, grid *Grid) {
			// two gliders, two blinkers and a block
			g.Expect(grid.CountLivingCells()).To(Equal(5 + 5 + 3 + 3 + 4))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			g := NewWithT(t)

			grid, err := NewGrid(config.Width, config.Height)
			g.Expect(err).NotTo(HaveOccurred())

			cfg := config
			cfg.Pattern = tt.pattern
			g.Expect(grid.ResetWithPattern(cfg, 0)).To(Succeed())
			tt.check(g, grid)
		})
	}
}

func TestResetWithUnknownPattern(t *testing.T) {
	g := NewWithT(t)

	grid := NewDefaultGrid()
	config := utils.DefaultConfig()
	config.Pattern = "spaceship"

	err := grid.ResetWithPattern(config, 0)
	g.Expect(errors.Is(err, ErrUnknownPattern)).To(BeTrue())
}

func TestRandomPatternIsReproducible(t *testing.T) {
	g := NewWithT(t)

	config := utils.DefaultConfig()
	config.Width, config.Height = 16, 16
	config.Pattern = PatternRandom
	config.Seed = 42

	a := blankGrid(t, 16, 16)
	b := blankGrid(t, 16, 16)
	g.Expect(a.ResetWithPattern(config, 0)).To(Succeed())
	g.Expect(b.ResetWithPattern(config, 0)).To(Succeed())
	g.Expect(a.Cells()).To(Equal(b.Cells()))

	g.Expect(b.ResetWithPattern(config, 1)).To(Succeed())
	g.Expect(a.Cells()).NotTo(Equal(b.Cells()))
}

func TestReseedClearsHistory(t *testing.T) {
	g := NewWithT(t)

	grid := blankGrid(t, 4, 4)
	for range 3 {
		grid.UpdateHistory()
	}
	g.Expect(grid.IsStagnant()).To(BeTrue())

	grid.Reseed(DefaultSeed)
	g.Expect(grid.IsStagnant()).To(BeFalse())
}

func TestCellPool(t *testing.T) {
	g := NewWithT(t)

	pool := NewCellPool()
	buf := pool.Get(10)
	g.Expect(buf).To(HaveLen(10))
	pool.Put(buf)
	g.Expect(pool.Get(4)).To(HaveLen(4))
	g.Expect(pool.Get(64)).To(HaveLen(64))

	var nilPool *CellPool
	g.Expect(nilPool.Get(3)).To(HaveLen(3))
	nilPool.Put(buf)
}
