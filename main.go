package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/ui"
	"github.com/sheikhrachel/torus-gol/utils"
)

const defaultConfigFile = "config.json"

var (
	configFile  string
	width       int
	height      int
	pattern     string
	seed        int64
	parallel    bool
	workers     int
	generations int
	writePath   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "torus-gol",
		Short:        "Conway's Game of Life on a toroidal grid",
		SilenceUsage: true,
		RunE:         runGame,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", defaultConfigFile, "config file (json or yaml)")
	flags.IntVar(&width, "width", model.DefaultWidth, "grid width")
	flags.IntVar(&height, "height", model.DefaultHeight, "grid height")
	flags.StringVar(&pattern, "pattern", model.PatternDefault, "initial pattern: default, blank, random, gliders")
	flags.Int64Var(&seed, "seed", 1, "random pattern seed")
	flags.BoolVar(&parallel, "parallel", false, "compute generations across CPUs")
	flags.IntVar(&workers, "workers", 0, "parallel workers (0 = one per CPU)")
	flags.IntVar(&generations, "generations", 0, "generations to simulate")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "animate the simulation in the terminal",
		RunE:  runGame,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "print the grid after a number of generations",
		RunE:  renderGrid,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view",
		RunE:  runLive,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print or write the effective configuration",
		RunE:  showConfig,
	}
	configCmd.Flags().StringVar(&writePath, "write", "", "write the configuration to this yaml file")

	rootCmd.AddCommand(runCmd, renderCmd, liveCmd, configCmd)
	return rootCmd
}

func runGame(cmd *cobra.Command, _ []string) error {
	config, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return playGame(ctx, cmd.OutOrStdout(), config)
}

func playGame(ctx context.Context, out io.Writer, config utils.Config) error {
	game, err := initializeGame(config, out)
	if err != nil {
		return err
	}
	displayGameInfo(config, game)

	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		restarts       = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\nShutting down gracefully...")
			displayFinalStats(out, config, game, generation)
			return nil
		default:
		}

		frameStart := time.Now()
		game.renderer.Clear()

		livingCells, density, status, isStagnant := updateGameState(game, generation, lastFrameTime)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(generation, livingCells, density, status, game, lastRestartGen)
		game.renderer.Display(game.grid)

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Fprintf(out, "\nReached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, config)

		if shouldRestart && config.AutoRestart {
			fmt.Fprintf(out, "Restarting due to %s...\n", restartReason)
			restarts++
			if err = restartGame(game, config, restarts); err != nil {
				return err
			}
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			game.grid.InjectRandomLife(config.InjectionCount, game.rng)
		}

		game.grid.NextGeneration(config, game.pool)
		generation++

		select {
		case <-ctx.Done():
		case <-time.After(config.FrameRate):
		}
	}

	displayFinalStats(out, config, game, generation)
	return nil
}

func renderGrid(cmd *cobra.Command, _ []string) error {
	config, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("generations") {
		config.MaxGenerations = 0
	}

	out := cmd.OutOrStdout()
	game, err := initializeGame(config, out)
	if err != nil {
		return err
	}

	for generation := 1; generation <= config.MaxGenerations; generation++ {
		game.grid.NextGeneration(config, game.pool)
		game.stats.Update(generation, game.grid.CountLivingCells(), 0)
	}

	game.renderer.Display(game.grid)
	if config.Chart {
		if chart := game.stats.PopulationChart(60, 8); chart != "" {
			fmt.Fprintln(out, chart)
		}
	}
	return nil
}

func runLive(cmd *cobra.Command, _ []string) error {
	config, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return ui.Run(config)
}

func showConfig(cmd *cobra.Command, _ []string) error {
	config, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if writePath != "" {
		return utils.SaveConfig(writePath, config)
	}
	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "[showConfig] failed to marshal config")
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
