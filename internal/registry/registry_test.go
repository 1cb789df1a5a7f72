package registry

import (
	"testing"

	"github.com/vovakirdan/color-cascade/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func register(id string) {
	Register(id, func() Game { return stubGame{id: id} })
}

func TestRegisterAndCreate(t *testing.T) {
	register("test_zeta")
	register("test_alpha")

	if !Exists("test_alpha") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("test_zeta")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_zeta" {
		t.Errorf("ID() = %q", g.ID())
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	alpha, zeta := -1, -1
	for i, id := range ids {
		switch id {
		case "test_alpha":
			alpha = i
		case "test_zeta":
			zeta = i
		}
	}
	if alpha < 0 || zeta < 0 || alpha > zeta {
		t.Errorf("List() should be sorted by ID, got %v", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() should fail for an unknown ID")
	}
	if Exists("no_such_game") {
		t.Error("Exists() should be false for an unknown ID")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register("test_dup")
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	register("test_dup")
}
