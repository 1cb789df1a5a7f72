package colorcascade

import "github.com/vovakirdan/color-cascade/internal/cascade"

// Snapshot captures the host and session state for determinism testing.
type Snapshot struct {
	Tick          uint64
	DropStart     uint64
	FallTicks     uint64
	GraceArmed    bool
	GraceDeadline uint64
	LastResult    cascade.Outcome
	Session       cascade.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          g.tick,
		DropStart:     g.dropStart,
		FallTicks:     g.fallTicks,
		GraceArmed:    g.grace.armed,
		GraceDeadline: g.grace.deadline,
		LastResult:    g.lastResult,
	}
	if g.session != nil {
		snap.Session = g.session.Snapshot()
	}
	return snap
}
