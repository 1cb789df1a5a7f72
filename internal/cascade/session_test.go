package cascade

import (
	"slices"
	"testing"
)

// scriptedRand returns the FullPalette index of each scripted color in turn.
// Once the script runs out it keeps returning index 0 (red).
type scriptedRand struct {
	colors []Color
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.colors) == 0 {
		return 0
	}
	c := r.colors[0]
	r.colors = r.colors[1:]
	idx := slices.Index(FullPalette(), c)
	if idx < 0 || idx >= n {
		return 0
	}
	return idx
}

// recorder captures observer notifications.
type recorder struct {
	updates [][2]int
	ended   []int
}

func (r *recorder) OnUpdate(score, combo int) {
	r.updates = append(r.updates, [2]int{score, combo})
}

func (r *recorder) OnGameEnded(finalScore int) {
	r.ended = append(r.ended, finalScore)
}

func newTestSession(colors ...Color) (*Session, *recorder) {
	rec := &recorder{}
	s := NewSession(DefaultRules(), &scriptedRand{colors: colors}, rec)
	return s, rec
}

func TestStartNotifiesAndActivates(t *testing.T) {
	s, rec := newTestSession(ColorBlue)
	s.Start()

	if !s.Active() {
		t.Fatal("session should be active after Start")
	}
	if s.Current() != ColorBlue {
		t.Errorf("Current() = %s, expected blue", s.Current())
	}
	if len(rec.updates) != 1 || rec.updates[0] != [2]int{0, 0} {
		t.Errorf("expected one update (0, 0), got %v", rec.updates)
	}
}

func TestPrimaryMatch(t *testing.T) {
	for _, p := range Primaries() {
		t.Run(p.String(), func(t *testing.T) {
			s, rec := newTestSession(p)
			s.Start()
			s.RegisterTap(p)

			if out := s.Resolve(); out != OutcomeMatch {
				t.Fatalf("Resolve() = %s, expected match", out)
			}
			if s.Score() != 1 || s.Combo() != 1 {
				t.Errorf("score/combo = %d/%d, expected 1/1", s.Score(), s.Combo())
			}
			if got := rec.updates[len(rec.updates)-1]; got != [2]int{1, 1} {
				t.Errorf("last update = %v, expected (1, 1)", got)
			}
		})
	}
}

func TestPrimaryMismatchEndsGame(t *testing.T) {
	for _, p := range Primaries() {
		for _, q := range Primaries() {
			if p == q {
				continue
			}
			s, rec := newTestSession(p)
			s.Start()
			s.RegisterTap(q)

			if out := s.Resolve(); out != OutcomeMiss {
				t.Errorf("tap %s on %s: Resolve() = %s, expected miss", q, p, out)
			}
			if s.Active() {
				t.Errorf("tap %s on %s: session should be idle", q, p)
			}
			if len(rec.ended) != 1 {
				t.Errorf("tap %s on %s: expected one game end, got %d", q, p, len(rec.ended))
			}
		}
	}
}

func TestCompositeNeedsBothPrimaries(t *testing.T) {
	// Six reds (start plus five matches), then purple once the palette grows.
	script := make([]Color, 0, 8)
	for i := 0; i < 6; i++ {
		script = append(script, ColorRed)
	}
	script = append(script, ColorPurple, ColorPurple)

	t.Run("half", func(t *testing.T) {
		s, rec := newTestSession(script...)
		s.Start()
		playMatches(t, s, 6)
		if s.Current() != ColorPurple {
			t.Fatalf("expected purple shape, got %s", s.Current())
		}

		s.RegisterTap(ColorRed)
		if out := s.Resolve(); out != OutcomeMiss {
			t.Fatalf("Resolve() = %s, expected miss", out)
		}
		if s.Combo() != 0 {
			t.Errorf("combo should reset, got %d", s.Combo())
		}
		if len(rec.ended) != 1 || rec.ended[0] != 6 {
			t.Errorf("expected game end with score 6, got %v", rec.ended)
		}
	})

	t.Run("both", func(t *testing.T) {
		s, _ := newTestSession(script...)
		s.Start()
		playMatches(t, s, 6)

		s.RegisterTap(ColorRed)
		s.RegisterTap(ColorBlue)
		if out := s.Resolve(); out != OutcomeMatch {
			t.Fatalf("Resolve() = %s, expected match", out)
		}
		if s.Score() != 7 {
			t.Errorf("score = %d, expected 7", s.Score())
		}
	})
}

func TestExtraTapsTolerated(t *testing.T) {
	s, _ := newTestSession(ColorRed)
	s.Start()
	s.RegisterTap(ColorRed)
	s.RegisterTap(ColorYellow)

	if out := s.Resolve(); out != OutcomeMatch {
		t.Errorf("Resolve() = %s, expected match", out)
	}
}

func TestRepeatedTapsAreSetSemantics(t *testing.T) {
	s, _ := newTestSession(ColorRed)
	s.Start()
	s.RegisterTap(ColorRed)
	s.RegisterTap(ColorRed)

	if got := s.Snapshot().Selected; len(got) != 1 {
		t.Errorf("selected = %v, expected one color", got)
	}
}

func TestPaletteGrowsAfterThreshold(t *testing.T) {
	s, _ := newTestSession()
	s.Start()

	playMatches(t, s, 5)
	if s.Palette().Expanded() {
		t.Fatal("palette should not grow at score 5")
	}

	playMatches(t, s, 1)
	if s.Score() != 6 {
		t.Fatalf("score = %d, expected 6", s.Score())
	}
	if !slices.Equal(s.Palette(), FullPalette()) {
		t.Errorf("palette = %v, expected all six colors", s.Palette())
	}

	// A miss puts the palette back to the primaries.
	s.RegisterTap(ColorBlue)
	if out := s.Resolve(); out != OutcomeMiss {
		t.Fatalf("Resolve() = %s, expected miss", out)
	}
	if !slices.Equal(s.Palette(), BasePalette()) {
		t.Errorf("palette = %v, expected primaries", s.Palette())
	}
}

func TestEndGameIsIdempotent(t *testing.T) {
	s, rec := newTestSession()
	s.Start()
	playMatches(t, s, 3)

	s.End()
	s.End()

	if len(rec.ended) != 1 {
		t.Fatalf("expected one game end notification, got %d", len(rec.ended))
	}
	if rec.ended[0] != 3 {
		t.Errorf("final score = %d, expected 3", rec.ended[0])
	}
	if s.Score() != 0 || s.Combo() != 0 {
		t.Errorf("score/combo = %d/%d after end, expected 0/0", s.Score(), s.Combo())
	}
}

func TestOperationsBeforeStartAreNoOps(t *testing.T) {
	s, rec := newTestSession()

	s.RegisterTap(ColorRed)
	if out := s.Resolve(); out != OutcomeIgnored {
		t.Errorf("Resolve() = %s, expected ignored", out)
	}
	if out := s.ShapeMissed(); out != OutcomeIgnored {
		t.Errorf("ShapeMissed() = %s, expected ignored", out)
	}
	s.End()

	if len(rec.updates) != 0 || len(rec.ended) != 0 {
		t.Errorf("observer should not be called, got updates=%v ended=%v", rec.updates, rec.ended)
	}
}

func TestShapeMissedEndsGame(t *testing.T) {
	s, rec := newTestSession()
	s.Start()
	playMatches(t, s, 2)

	if out := s.ShapeMissed(); out != OutcomeMiss {
		t.Fatalf("ShapeMissed() = %s, expected miss", out)
	}
	if s.Active() {
		t.Error("session should be idle after a miss")
	}
	if len(rec.ended) != 1 || rec.ended[0] != 2 {
		t.Errorf("expected game end with score 2, got %v", rec.ended)
	}
}

func TestStaleDropIgnored(t *testing.T) {
	s, rec := newTestSession()
	s.Start()
	first := s.Drop()

	playMatches(t, s, 1)
	if s.Drop() == first {
		t.Fatal("a match should start a new drop")
	}

	// The fall timer of the cleared drop fires late.
	if out := s.MissDrop(first); out != OutcomeStale {
		t.Errorf("MissDrop(stale) = %s, expected stale", out)
	}
	if out := s.ResolveDrop(first); out != OutcomeStale {
		t.Errorf("ResolveDrop(stale) = %s, expected stale", out)
	}
	if !s.Active() || len(rec.ended) != 0 {
		t.Error("stale timers must not end the game")
	}

	if out := s.MissDrop(s.Drop()); out != OutcomeMiss {
		t.Errorf("MissDrop(live) = %s, expected miss", out)
	}
}

func TestRestartWhileActive(t *testing.T) {
	s, rec := newTestSession()
	s.Start()
	playMatches(t, s, 4)

	s.Start()
	if s.Score() != 0 || s.Combo() != 0 {
		t.Errorf("restart should reset score/combo, got %d/%d", s.Score(), s.Combo())
	}
	if len(rec.ended) != 0 {
		t.Error("restart should not report a game end")
	}
}

func TestBestComboTracked(t *testing.T) {
	s, _ := newTestSession()
	s.Start()
	playMatches(t, s, 4)

	if got := s.Snapshot().BestCombo; got != 4 {
		t.Errorf("BestCombo = %d, expected 4", got)
	}
}

// playMatches clears n shapes by tapping exactly the required colors.
func playMatches(t *testing.T, s *Session, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		for _, c := range RequiredColors(s.Current()).Sorted() {
			s.RegisterTap(c)
		}
		if out := s.Resolve(); out != OutcomeMatch {
			t.Fatalf("match %d: Resolve() = %s, expected match", i+1, out)
		}
	}
}
