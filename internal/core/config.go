package core

// RuntimeConfig contains settings passed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed, 0 means time based
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks/s.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the externally visible status of a game.
type GameState struct {
	Score     int
	Combo     int
	BestCombo int
	Started   bool // A round has been started at least once
	GameOver  bool
	Paused    bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
