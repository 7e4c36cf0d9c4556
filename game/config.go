package game

import (
	"errors"
	"fmt"

	"elastic-snake/game/types"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Squares     int     // grid is Squares x Squares
	StartSpeed  float64 // seconds per tick when a round starts
	QuitEnabled bool    // whether the quit key ends the process
}

func DefaultConfig() Config {
	return Config{
		Squares:     types.Squares,
		StartSpeed:  types.StartSpeed,
		QuitEnabled: quitSupported,
	}
}

func (c Config) Validate() error {
	if c.Squares < 8 || c.Squares > 128 {
		return fmt.Errorf("%w: squares %d outside [8, 128]", ErrInvalidConfig, c.Squares)
	}
	if c.StartSpeed < types.MinSpeed || c.StartSpeed > 2 {
		return fmt.Errorf("%w: start speed %.3f outside [%.2f, 2]", ErrInvalidConfig, c.StartSpeed, types.MinSpeed)
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.Square(c.Squares)
}
