package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/utils"
)

// game bundles the state of one terminal session
type game struct {
	grid     *model.Grid
	pool     *model.CellPool
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	rng      *rand.Rand
}

// resolveConfig loads the config file and applies explicitly set flags on top of it
func resolveConfig(cmd *cobra.Command) (utils.Config, error) {
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) || cmd.Flags().Changed("config") {
			return config, err
		}
		config = utils.DefaultConfig()
	}

	applyFlagOverrides(cmd, &config)

	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func applyFlagOverrides(cmd *cobra.Command, config *utils.Config) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		config.Width = width
	}
	if flags.Changed("height") {
		config.Height = height
	}
	if flags.Changed("pattern") {
		config.Pattern = pattern
	}
	if flags.Changed("seed") {
		config.Seed = seed
	}
	if flags.Changed("parallel") {
		config.UseParallel = parallel
	}
	if flags.Changed("workers") {
		config.Workers = workers
	}
	if flags.Changed("generations") {
		config.MaxGenerations = generations
	}
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (*game, error) {
	var pool *model.CellPool
	if config.UseCellPool {
		pool = model.NewCellPool()
	}

	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to create grid")
	}
	if err = grid.ResetWithPattern(config, 0); err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to seed grid")
	}

	return &game{
		grid:     grid,
		pool:     pool,
		renderer: &model.TerminalRenderer{Out: out},
		stats:    utils.NewStats(),
		rng:      model.NewRand(config.Seed),
	}, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, g *game) {
	g.renderer.Status("Pattern: %s | Cell pool: %v | Parallel: %v",
		config.Pattern, config.UseCellPool, config.UseParallel)
	g.renderer.Status("Grid: %dx%d | Initial living cells: %d",
		g.grid.Width(), g.grid.Height(), g.grid.CountLivingCells())
	fmt.Fprintln(g.renderer.Out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(g.renderer.Out)
}

// updateGameState records the current generation and returns status information
func updateGameState(g *game, generation int, lastFrameTime time.Time) (int, float64, string, bool) {
	livingCells := g.grid.CountLivingCells()
	density := float64(livingCells) / float64(g.grid.Width()*g.grid.Height()) * 100

	g.stats.Update(generation, livingCells, time.Since(lastFrameTime))

	g.grid.UpdateHistory()
	isStagnant := g.grid.IsStagnant()

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	g *game,
	lastRestartGen int,
) {
	g.renderer.Status("Gen: %d | Living: %d | Density: %.1f%% | Status: %s",
		generation, livingCells, density, status)
	fmt.Fprintf(g.renderer.Out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())

	if generation > lastRestartGen {
		fmt.Fprintf(g.renderer.Out, "Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Fprintln(g.renderer.Out)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame reseeds the grid, offsetting the random seed by the restart count
func restartGame(g *game, config utils.Config, restarts int) error {
	if err := g.grid.ResetWithPattern(config, restarts); err != nil {
		return errors.Wrap(err, "[restartGame] failed to reseed grid")
	}
	g.renderer.Status("New patterns loaded! Living cells: %d", g.grid.CountLivingCells())
	return nil
}

// displayFinalStats prints the summary and, if enabled, the population chart
func displayFinalStats(out io.Writer, config utils.Config, g *game, generation int) {
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
		generation, g.stats.Runtime().Seconds())
	fmt.Fprintf(out, "Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
	if config.Chart {
		if chart := g.stats.PopulationChart(60, 10); chart != "" {
			fmt.Fprintln(out, chart)
		}
	}
}
