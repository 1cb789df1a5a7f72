package cascade

import (
	"math/rand"
	"time"
)

// DefaultExpandAfter is the score that must be exceeded before the palette
// grows to include the composite colors.
const DefaultExpandAfter = 5

// Rules holds the tunable parts of the matching game.
type Rules struct {
	// ExpandAfter is the score threshold for palette growth. Once the score
	// goes above it, composite colors join the palette.
	ExpandAfter int
}

// DefaultRules returns the standard rules.
func DefaultRules() Rules {
	return Rules{ExpandAfter: DefaultExpandAfter}
}

// DropID identifies one falling shape. A new id is issued every time a
// color is drawn.
type DropID uint64

// Outcome describes what a resolution or miss did.
type Outcome int

const (
	// OutcomeIgnored means the session was idle.
	OutcomeIgnored Outcome = iota
	// OutcomeStale means the call referred to a drop that is no longer live.
	OutcomeStale
	// OutcomeMatch means the shape was cleared and a new drop started.
	OutcomeMatch
	// OutcomeMiss means the shape was not cleared and the game ended.
	OutcomeMiss
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeStale:
		return "stale"
	case OutcomeMatch:
		return "match"
	case OutcomeMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Session owns the score, combo, palette and current shape of one player.
// It is not safe for concurrent use; the host calls it from a single
// goroutine.
type Session struct {
	rules    Rules
	rng      RandomSource
	observer Observer

	palette   Palette
	selected  ColorSet
	current   Color
	drop      DropID
	score     int
	combo     int
	bestCombo int
	active    bool
}

// NewSession creates an idle session. A nil rng falls back to a time-seeded
// source and a nil observer discards notifications.
func NewSession(rules Rules, rng RandomSource, observer Observer) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if observer == nil {
		observer = nopObserver{}
	}
	if rules.ExpandAfter < 0 {
		rules.ExpandAfter = 0
	}
	return &Session{
		rules:    rules,
		rng:      rng,
		observer: observer,
		palette:  BasePalette(),
		selected: NewColorSet(),
	}
}

// Start begins a new game, restarting if one is already running.
func (s *Session) Start() {
	s.score = 0
	s.combo = 0
	s.bestCombo = 0
	s.palette = BasePalette()
	s.active = true
	s.nextDrop()
	s.observer.OnUpdate(s.score, s.combo)
}

// RegisterTap records a tapped color for the current grace window.
func (s *Session) RegisterTap(c Color) {
	if !s.active {
		return
	}
	s.selected.Add(c)
}

// Resolve checks the taps of the current window against the falling shape.
func (s *Session) Resolve() Outcome {
	if !s.active {
		return OutcomeIgnored
	}

	if !Satisfied(s.selected, RequiredColors(s.current)) {
		s.fail()
		return OutcomeMiss
	}

	s.score++
	s.combo++
	if s.combo > s.bestCombo {
		s.bestCombo = s.combo
	}
	if s.score > s.rules.ExpandAfter && !s.palette.Expanded() {
		s.palette = FullPalette()
	}
	s.nextDrop()
	s.observer.OnUpdate(s.score, s.combo)
	return OutcomeMatch
}

// ShapeMissed ends the game because the shape reached the bottom uncleared.
func (s *Session) ShapeMissed() Outcome {
	if !s.active {
		return OutcomeIgnored
	}
	s.fail()
	return OutcomeMiss
}

// ResolveDrop is Resolve guarded by a drop id. Timers armed for an earlier
// drop are reported as stale and change nothing.
func (s *Session) ResolveDrop(id DropID) Outcome {
	if !s.active {
		return OutcomeIgnored
	}
	if id != s.drop {
		return OutcomeStale
	}
	return s.Resolve()
}

// MissDrop is ShapeMissed guarded by a drop id.
func (s *Session) MissDrop(id DropID) Outcome {
	if !s.active {
		return OutcomeIgnored
	}
	if id != s.drop {
		return OutcomeStale
	}
	return s.ShapeMissed()
}

// End stops the game and reports the final score. Ending an idle session
// does nothing.
func (s *Session) End() {
	if !s.active {
		return
	}
	s.active = false
	final := s.score
	s.observer.OnGameEnded(final)
	s.score = 0
	s.combo = 0
}

// fail resets the combo and palette, clears taps and ends the game.
func (s *Session) fail() {
	s.combo = 0
	s.palette = BasePalette()
	s.clearSelected()
	s.End()
}

// nextDrop clears taps and draws a new shape color.
func (s *Session) nextDrop() {
	s.clearSelected()
	s.current = s.palette.Pick(s.rng)
	s.drop++
}

func (s *Session) clearSelected() {
	clear(s.selected)
}

// Active reports whether a game is running.
func (s *Session) Active() bool { return s.active }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Combo returns the current combo.
func (s *Session) Combo() int { return s.combo }

// Current returns the color of the falling shape.
func (s *Session) Current() Color { return s.current }

// Drop returns the id of the live drop.
func (s *Session) Drop() DropID { return s.drop }

// Palette returns a copy of the current palette.
func (s *Session) Palette() Palette {
	return append(Palette(nil), s.palette...)
}

// Snapshot captures the session state for rendering and determinism tests.
type Snapshot struct {
	Score     int
	Combo     int
	BestCombo int
	Current   Color
	Required  []Color
	Selected  []Color
	Palette   Palette
	Drop      DropID
	Active    bool
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Score:     s.score,
		Combo:     s.combo,
		BestCombo: s.bestCombo,
		Current:   s.current,
		Required:  RequiredColors(s.current).Sorted(),
		Selected:  s.selected.Sorted(),
		Palette:   s.Palette(),
		Drop:      s.drop,
		Active:    s.active,
	}
}
