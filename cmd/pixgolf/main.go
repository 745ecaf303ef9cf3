package main

import (
	"fmt"
	"os"

	"github.com/diegok/pixgolf/internal/app"
	"github.com/diegok/pixgolf/internal/config"
	"github.com/diegok/pixgolf/internal/logging"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	logger, closer, err := logging.Setup(cfg.LogFile, cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if cfg.PhysicsFile != "" {
		logger.Info("physics loaded", "file", cfg.PhysicsFile, "gravity", cfg.Physics.Gravity, "time_step", cfg.Physics.TimeStep)
	}

	application := app.NewApp(cfg, logger)
	if err := application.Run(); err != nil {
		logger.Error("exiting", "err", err)
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pixgolf [options]                 Play a round")
	fmt.Fprintln(os.Stderr, "  pixgolf --replay <file>           Play back a recorded trace")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --strength <n>      Swing strength preset 0-8 (default: 6)")
	fmt.Fprintln(os.Stderr, "  --drag <n>          Air resistance preset 0-25 (default: 7)")
	fmt.Fprintln(os.Stderr, "  --speed <n>         Simulation speed preset 0-5 (default: 3)")
	fmt.Fprintln(os.Stderr, "  --physics <file>    TOML file with physics overrides")
	fmt.Fprintln(os.Stderr, "  --log <file>        Write logs to file")
	fmt.Fprintln(os.Stderr, "  --debug             Log every flight frame")
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound")
	fmt.Fprintln(os.Stderr, "  --record <file>     Record a trace of the session")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Every option except --record and --replay can also be set with a")
	fmt.Fprintln(os.Stderr, "PIXGOLF_* environment variable or a .env file.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pixgolf --strength 8 --drag 0")
	fmt.Fprintln(os.Stderr, "  pixgolf --log pixgolf.log --debug --record round.trace")
	fmt.Fprintln(os.Stderr, "  pixgolf --replay round.trace")
}
