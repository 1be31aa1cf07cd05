package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		TickRate: 64,
		Physics: PhysicsConfig{
			Gravity: -1024,
			Flap:    256,
		},
		Scroll: ScrollConfig{
			PipeSpeed:        -100,
			BackgroundFactor: 0.2,
		},
		Pipes: PipesConfig{
			Count:       3,
			Distance:    150,
			Gap:         100,
			SpawnBand:   Band{Center: 56, Spread: 100},
			RecycleBand: Band{Center: 56, Spread: 100},
		},
		Sprites: SpritesConfig{
			Background: Size{W: 288, H: 512},
			Pipe:       Size{W: 52, H: 320},
			Ground:     Size{W: 336, H: 112},
			Bird:       Size{W: 34, H: 24},
		},
		Animation: AnimationConfig{
			Frames: 3,
			Period: 0.2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
