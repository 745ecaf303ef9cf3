package config

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/diegok/pixgolf/internal/game"
)

// Environment variable names. Each one supplies the default of its flag.
const (
	EnvStrength = "PIXGOLF_STRENGTH"
	EnvDrag     = "PIXGOLF_DRAG"
	EnvSpeed    = "PIXGOLF_SPEED"
	EnvPhysics  = "PIXGOLF_PHYSICS"
	EnvLog      = "PIXGOLF_LOG"
	EnvDebug    = "PIXGOLF_DEBUG"
	EnvMute     = "PIXGOLF_MUTE"
)

// Config holds the application configuration
type Config struct {
	Env         game.Environment
	Physics     game.Physics
	PhysicsFile string
	LogFile     string
	Debug       bool
	Mute        bool
	RecordFile  string
	ReplayFile  string
}

// LoadDotEnv reads KEY=value pairs from the given files (default ".env")
// into the process environment. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "load %s", f)
		}
	}
	return nil
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pixgolf", flag.ContinueOnError)

	strength := fs.Int("strength", getEnvInt(EnvStrength, game.DefaultStrengthIndex), "initial swing strength preset (0-8)")
	drag := fs.Int("drag", getEnvInt(EnvDrag, game.DefaultDragIndex), "initial air resistance preset (0-25)")
	speed := fs.Int("speed", getEnvInt(EnvSpeed, game.DefaultSpeedIndex), "initial simulation speed preset (0-5)")
	physics := fs.String("physics", getEnv(EnvPhysics, ""), "TOML file overriding physics constants")
	logFile := fs.String("log", getEnv(EnvLog, ""), "write logs to this file")
	debug := fs.Bool("debug", getEnvBool(EnvDebug, false), "log every flight update frame")
	mute := fs.Bool("mute", getEnvBool(EnvMute, false), "disable sound")
	record := fs.String("record", "", "record a trace of the session to this file")
	replay := fs.String("replay", "", "play back a recorded trace instead of playing")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	env, err := game.NewEnvironment(*strength, *drag, *speed)
	if err != nil {
		return nil, err
	}

	if *record != "" && *replay != "" {
		return nil, errors.New("cannot specify both --record and --replay")
	}

	phys := game.DefaultPhysics()
	if *physics != "" {
		phys, err = LoadPhysics(*physics)
		if err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Env:         env,
		Physics:     phys,
		PhysicsFile: *physics,
		LogFile:     *logFile,
		Debug:       *debug,
		Mute:        *mute,
		RecordFile:  *record,
		ReplayFile:  *replay,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
