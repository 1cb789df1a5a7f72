// Package colorcascade hosts the color matching session as a tick-driven
// arcade game. It owns the fall and grace timers and turns key presses into
// taps; all scoring decisions are made by the cascade session.
package colorcascade

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/color-cascade/internal/cascade"
	"github.com/vovakirdan/color-cascade/internal/config"
	"github.com/vovakirdan/color-cascade/internal/core"
	"github.com/vovakirdan/color-cascade/internal/registry"
)

// GameID is the registry and score storage identifier.
const GameID = "cascade"

// configPath and difficultyPreset are set via CLI before the game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// tapColors maps tap actions to the color they report.
var tapColors = map[core.Action]cascade.Color{
	core.ActionTapRed:    cascade.ColorRed,
	core.ActionTapYellow: cascade.ColorYellow,
	core.ActionTapBlue:   cascade.ColorBlue,
	core.ActionTapPurple: cascade.ColorPurple,
	core.ActionTapOrange: cascade.ColorOrange,
	core.ActionTapGreen:  cascade.ColorGreen,
}

// timer is a single-shot deadline bound to the drop it was armed for.
type timer struct {
	armed    bool
	deadline uint64
	drop     cascade.DropID
}

func (t *timer) arm(now, ticks uint64, drop cascade.DropID) {
	t.armed = true
	t.deadline = now + ticks
	t.drop = drop
}

// fire reports whether the timer expires at tick now and disarms it.
func (t *timer) fire(now uint64) bool {
	if !t.armed || now < t.deadline {
		return false
	}
	t.armed = false
	return true
}

// Game implements registry.Game for Color Cascade.
type Game struct {
	runtime    core.RuntimeConfig
	configPath string
	preset     config.DifficultyPreset
	cfg        config.CascadeConfig
	difficulty *config.DifficultyManager
	session    *cascade.Session
	observers  cascade.Observers

	tick       uint64
	roundStart uint64 // Tick the current round began
	dropStart  uint64 // Tick the live drop started falling
	fallTicks  uint64 // Fall duration of the live drop
	grace      timer
	fall       timer

	score      int
	combo      int
	bestCombo  int
	finalScore int
	started    bool
	gameOver   bool
	paused     bool
	lastResult cascade.Outcome
}

// New creates a new Color Cascade game instance using the CLI config path
// and difficulty preset.
func New() *Game {
	return &Game{configPath: configPath, preset: difficultyPreset}
}

// SetDifficulty overrides the preset for this instance. It takes effect on
// the next Reset.
func (g *Game) SetDifficulty(preset config.DifficultyPreset) {
	g.preset = preset
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Color Cascade"
}

// AddObserver attaches an extra session observer (audio, logging).
// Observers survive Reset.
func (g *Game) AddObserver(obs cascade.Observer) {
	g.observers = append(g.observers, obs)
}

// Reset loads configuration and returns to the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	cfg, err := config.LoadCascade(g.configPath)
	if err != nil {
		cfg = config.DefaultCascadeConfig()
	}
	config.ApplyPreset(&cfg, g.preset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rules := cascade.Rules{ExpandAfter: cfg.Rules.ExpandAfter}
	g.session = cascade.NewSession(rules, rand.New(rand.NewSource(seed)), cascade.ObserverFuncs{
		Update: g.onUpdate,
		Ended:  g.onGameEnded,
	})

	g.tick = 0
	g.roundStart = 0
	g.dropStart = 0
	g.fallTicks = 0
	g.grace = timer{}
	g.fall = timer{}
	g.score = 0
	g.combo = 0
	g.bestCombo = 0
	g.finalScore = 0
	g.started = false
	g.gameOver = false
	g.paused = false
	g.lastResult = cascade.OutcomeIgnored
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionPause) && g.session.Active() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if !g.session.Active() {
		if in.Has(core.ActionStart) || (g.gameOver && in.Has(core.ActionRestart)) {
			g.startRound()
		}
		return core.StepResult{State: g.State()}
	}

	for _, a := range core.TapActions() {
		if in.Has(a) {
			g.tap(tapColors[a])
		}
	}

	// The grace window is checked first so a window closing on the same
	// tick the shape lands still counts.
	if g.grace.fire(g.tick) {
		g.apply(g.session.ResolveDrop(g.grace.drop))
	}
	if g.fall.fire(g.tick) {
		g.apply(g.session.MissDrop(g.fall.drop))
	}

	return core.StepResult{State: g.State()}
}

// tap forwards a tap to the session and opens the grace window on the
// first tap of a drop. Colors not on offer are ignored.
func (g *Game) tap(c cascade.Color) {
	if !g.session.Palette().Has(c) {
		return
	}
	g.session.RegisterTap(c)
	if !g.grace.armed {
		g.grace.arm(g.tick, g.ticksFor(g.cfg.Timing.GracePeriod), g.session.Drop())
	}
}

// apply reacts to a session outcome.
func (g *Game) apply(out cascade.Outcome) {
	if out == cascade.OutcomeStale || out == cascade.OutcomeIgnored {
		return
	}
	g.lastResult = out
	switch out {
	case cascade.OutcomeMatch:
		g.beginDrop()
	case cascade.OutcomeMiss:
		g.grace = timer{}
		g.fall = timer{}
	}
}

// Abandon ends a running round without a miss so observers hear the game
// end. It does nothing when no round is running.
func (g *Game) Abandon() {
	if g.session != nil && g.session.Active() {
		g.session.End()
	}
}

func (g *Game) startRound() {
	g.started = true
	g.gameOver = false
	g.bestCombo = 0
	g.lastResult = cascade.OutcomeIgnored
	g.roundStart = g.tick
	g.session.Start()
	g.beginDrop()
}

// beginDrop arms the fall timer for the session's live drop.
func (g *Game) beginDrop() {
	elapsed := int(g.tick - g.roundStart)
	fall := g.difficulty.FallTime(g.cfg.Timing.FallTime, g.cfg.Timing.MinFallTime, g.score, elapsed)
	g.dropStart = g.tick
	g.fallTicks = g.ticksFor(fall)
	g.grace = timer{}
	g.fall.arm(g.tick, g.fallTicks, g.session.Drop())
}

// ticksFor converts a duration to a tick count, at least one.
func (g *Game) ticksFor(d time.Duration) uint64 {
	ticks := math.Round(d.Seconds() * float64(g.runtime.TickRate))
	if ticks < 1 {
		return 1
	}
	return uint64(ticks)
}

func (g *Game) onUpdate(score, combo int) {
	g.score = score
	g.combo = combo
	if combo > g.bestCombo {
		g.bestCombo = combo
	}
	g.observers.OnUpdate(score, combo)
}

func (g *Game) onGameEnded(finalScore int) {
	g.finalScore = finalScore
	g.score = 0
	g.combo = 0
	g.gameOver = true
	g.paused = false
	g.observers.OnGameEnded(finalScore)
}

// progress returns how far the live shape has fallen, in [0, 1].
func (g *Game) progress() float64 {
	if g.fallTicks == 0 {
		return 0
	}
	p := float64(g.tick-g.dropStart) / float64(g.fallTicks)
	return math.Min(1, math.Max(0, p))
}

// State returns the current game state. After game over Score holds the
// final score.
func (g *Game) State() core.GameState {
	score := g.score
	if g.gameOver {
		score = g.finalScore
	}
	return core.GameState{
		Score:     score,
		Combo:     g.combo,
		BestCombo: g.bestCombo,
		Started:   g.started,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
