// Package config provides YAML/TOML configuration loading and validation for
// the flappy simulation. Configuration is read once at startup and never
// changes during a run.
package config

// FlappyConfig contains all tunables of the simulation.
// Lengths are world units (the background sprite is 288x512 of them) and times are seconds.
type FlappyConfig struct {
	TickRate  int             `yaml:"tick_rate" toml:"tick_rate"` // Fixed simulation ticks per second
	Physics   PhysicsConfig   `yaml:"physics" toml:"physics"`
	Scroll    ScrollConfig    `yaml:"scroll" toml:"scroll"`
	Pipes     PipesConfig     `yaml:"pipes" toml:"pipes"`
	Sprites   SpritesConfig   `yaml:"sprites" toml:"sprites"`
	Animation AnimationConfig `yaml:"animation" toml:"animation"`
}

// PhysicsConfig defines the bird's vertical motion.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity" toml:"gravity"` // Vertical acceleration, negative = down
	Flap    float64 `yaml:"flap" toml:"flap"`       // Vertical velocity set by a flap
}

// ScrollConfig defines horizontal scroll velocities.
type ScrollConfig struct {
	PipeSpeed        float64 `yaml:"pipe_speed" toml:"pipe_speed"`               // Pipes and ground, negative = leftward
	BackgroundFactor float64 `yaml:"background_factor" toml:"background_factor"` // Background speed as a fraction of PipeSpeed
}

// Band describes a uniform integer draw: Center + Spread - rand[0, 2*Spread).
type Band struct {
	Center float64 `yaml:"center" toml:"center"`
	Spread int     `yaml:"spread" toml:"spread"`
}

// Min returns the lowest value the band can produce.
func (b Band) Min() float64 {
	return b.Center + float64(b.Spread) - float64(max(2*b.Spread-1, 0))
}

// Max returns the highest value the band can produce.
func (b Band) Max() float64 {
	return b.Center + float64(b.Spread)
}

// PipesConfig defines the obstacle pool.
type PipesConfig struct {
	Count    int     `yaml:"count" toml:"count"`       // Pool size, fixed for the process lifetime
	Distance float64 `yaml:"distance" toml:"distance"` // Horizontal distance between consecutive pipes
	Gap      float64 `yaml:"gap" toml:"gap"`           // Vertical gap between upper and lower pipe

	// SpawnBand places pipes at startup and on every round reset.
	SpawnBand Band `yaml:"spawn_band" toml:"spawn_band"`
	// RecycleBand places a pipe when it wraps around to the back of the queue.
	RecycleBand Band `yaml:"recycle_band" toml:"recycle_band"`
}

// Size is a sprite extent.
type Size struct {
	W float64 `yaml:"w" toml:"w"`
	H float64 `yaml:"h" toml:"h"`
}

// SpritesConfig holds the extents used for layout and collision math.
type SpritesConfig struct {
	Background Size `yaml:"background" toml:"background"` // Also the playfield size
	Pipe       Size `yaml:"pipe" toml:"pipe"`
	Ground     Size `yaml:"ground" toml:"ground"`
	Bird       Size `yaml:"bird" toml:"bird"`
}

// AnimationConfig defines the bird's wing-flap frame cycle.
type AnimationConfig struct {
	Frames int     `yaml:"frames" toml:"frames"`
	Period float64 `yaml:"period" toml:"period"` // Seconds per frame
}
