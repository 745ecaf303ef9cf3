package config

import (
	"math"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/diegok/pixgolf/internal/game"
)

// physicsFile mirrors game.Physics; unset keys keep their defaults
type physicsFile struct {
	Gravity        *float64 `toml:"gravity"`
	TimeStep       *float64 `toml:"time_step"`
	Radius         *float64 `toml:"radius"`
	Restitution    *float64 `toml:"restitution"`
	RestFuzz       *float64 `toml:"rest_fuzz"`
	PenaltySeconds *float64 `toml:"penalty_seconds"`
}

// LoadPhysics reads a TOML physics override file
func LoadPhysics(path string) (game.Physics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.Physics{}, errors.Wrap(err, "read physics file")
	}
	phys, err := ParsePhysics(string(data))
	if err != nil {
		return game.Physics{}, errors.Wrapf(err, "physics file %s", path)
	}
	return phys, nil
}

// ParsePhysics applies a TOML document on top of game.DefaultPhysics
func ParsePhysics(doc string) (game.Physics, error) {
	var pf physicsFile
	md, err := toml.Decode(doc, &pf)
	if err != nil {
		return game.Physics{}, errors.Wrap(err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return game.Physics{}, errors.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	phys := game.DefaultPhysics()
	if pf.Gravity != nil {
		phys.Gravity = *pf.Gravity
	}
	if pf.TimeStep != nil {
		phys.TimeStep = *pf.TimeStep
	}
	if pf.Radius != nil {
		phys.Radius = *pf.Radius
	}
	if pf.Restitution != nil {
		phys.Restitution = *pf.Restitution
	}
	if pf.RestFuzz != nil {
		phys.RestFuzz = *pf.RestFuzz
	}
	if pf.PenaltySeconds != nil {
		phys.Penalty = time.Duration(*pf.PenaltySeconds * float64(time.Second))
	}

	if err := validatePhysics(phys); err != nil {
		return game.Physics{}, err
	}
	return phys, nil
}

func validatePhysics(p game.Physics) error {
	switch {
	case math.IsNaN(p.Gravity) || math.IsInf(p.Gravity, 0):
		return errors.Errorf("gravity must be finite, got %v", p.Gravity)
	case !(p.TimeStep > 0):
		return errors.Errorf("time_step must be positive, got %v", p.TimeStep)
	case !(p.Radius > 0):
		return errors.Errorf("radius must be positive, got %v", p.Radius)
	case p.Restitution < 0 || p.Restitution > 1:
		return errors.Errorf("restitution must be between 0 and 1, got %v", p.Restitution)
	case p.RestFuzz < 0:
		return errors.Errorf("rest_fuzz must not be negative, got %v", p.RestFuzz)
	case p.Penalty < 0:
		return errors.Errorf("penalty_seconds must not be negative, got %v", p.Penalty.Seconds())
	}
	return nil
}
