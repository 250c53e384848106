package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/beka-birhanu/vinom-ballmaze/config"
	"github.com/beka-birhanu/vinom-ballmaze/game/layout"
	"github.com/beka-birhanu/vinom-ballmaze/game/maze"
	"github.com/beka-birhanu/vinom-ballmaze/infrastruture/input"
	logger "github.com/beka-birhanu/vinom-ballmaze/infrastruture/log"
	"github.com/beka-birhanu/vinom-ballmaze/infrastruture/rng"
	"github.com/beka-birhanu/vinom-ballmaze/infrastruture/world"
	"github.com/beka-birhanu/vinom-ballmaze/service"
	"golang.org/x/sync/errgroup"
)

const contactBuffer = 16

// Global variables for dependencies
var (
	cfg          *config.Config
	appLogger    *logger.Logger
	roundLogger  *logger.Logger
	inputLogger  *logger.Logger
	physicsWorld *world.MemoryWorld
	lineReader   *input.LineReader
	roundManager *service.RoundManager

	printOnly = flag.Bool("print", false, "generate one maze, print it and exit")
	printJSON = flag.Bool("json", false, "print the bodies of each round as JSON")
	showPath  = flag.Bool("solve", false, "print the path from the ball to the goal")
)

func initConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "setting log level: %v\n", err)
		os.Exit(1)
	}
}

func initLoggers() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating app logger: %v\n", err)
		os.Exit(1)
	}

	roundLogger, err = logger.New("ROUND", config.ColorCyan, os.Stderr)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating round logger: %v", err))
		os.Exit(1)
	}

	inputLogger, err = logger.New("INPUT", config.ColorMagenta, os.Stderr)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating input logger: %v", err))
		os.Exit(1)
	}

	if !cfg.DotEnv {
		appLogger.Info(".env file not found or could not be loaded")
	}
	if cfg.ConfigFile != "" {
		appLogger.Info(fmt.Sprintf("Applied config file %s", cfg.ConfigFile))
	}
}

func initWorld() {
	physicsWorld = world.NewMemoryWorld(contactBuffer)
	appLogger.Info("Headless physics world initialized")
}

func initInput() {
	lineReader = input.NewLineReader(os.Stdin, inputLogger)
	appLogger.Info("Line input initialized")
}

func rngFactory() func() maze.RNG {
	if cfg.Seed == 0 {
		return func() maze.RNG { return rng.NewFresh() }
	}

	seed := cfg.Seed
	appLogger.Warn(fmt.Sprintf("Using fixed seed %d; every restart replays the same maze", seed))
	return func() maze.RNG { return rng.NewSeeded(seed) }
}

func initRoundManager() {
	var err error
	roundManager, err = service.NewRoundManager(&service.Config{
		World:      physicsWorld,
		Input:      lineReader,
		RNGFactory: rngFactory(),
		Rows:       cfg.Rows,
		Cols:       cfg.Cols,
		Layout:     cfg.Layout,
		Impulse:    cfg.Impulse,
		OnStart:    printRound,
		OnWin: func(r *service.Round) {
			appLogger.Info(fmt.Sprintf("Ball reached the goal in round %s, type restart for a new maze", r.ID))
		},
		Logger: roundLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating round manager: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Round manager initialized")
}

func printRound(r *service.Round) {
	fmt.Print(r.Maze.String())

	if *showPath {
		goal := maze.CellPosition{Row: r.Maze.Rows - 1, Col: r.Maze.Cols - 1}
		path, err := r.Maze.Solve(maze.CellPosition{}, goal)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Solving maze: %v", err))
		} else {
			fmt.Printf("path (%d cells): %v\n", len(path), path)
		}
	}

	if *printJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(struct {
			Round     string            `json:"round"`
			Obstacles []layout.Obstacle `json:"obstacles"`
		}{Round: r.ID.String(), Obstacles: r.Scene.Obstacles}); err != nil {
			appLogger.Error(fmt.Sprintf("Encoding bodies: %v", err))
		}
	}
}

func main() {
	flag.Parse()

	initConfig()
	initLoggers()
	initWorld()
	initInput()
	initRoundManager()

	if _, err := roundManager.Start(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting round: %v", err))
		os.Exit(1)
	}
	if *printOnly {
		return
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return lineReader.Run(ctx)
	})
	g.Go(func() error {
		defer cancel()
		return roundManager.Run(ctx)
	})
	g.Go(func() error {
		// Restore default signal handling so a second interrupt kills the process.
		<-ctx.Done()
		stop()
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error(fmt.Sprintf("Running round: %v", err))
		os.Exit(1)
	}

	physicsWorld.Close()
	if cur := roundManager.Current(); cur != nil {
		appLogger.Info(fmt.Sprintf("Finished on round %s", cur.ID))
	}
	_ = appLogger.Sync()
}
