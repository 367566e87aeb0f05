package frogger

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

func TestRenderHUDAndPlayer(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	hud := scr.Row(0)
	for _, want := range []string{"FROGGER", "Score: 0", "Level: 1"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if !strings.ContainsRune(scr.String(), FrogChar) {
		t.Error("player not drawn")
	}
}

func TestRenderObstacles(t *testing.T) {
	g := newTestGame(t)
	g.obstacles = []Obstacle{
		{Kind: KindVehicle, X: 100, Y: 300, W: 60, H: 30, Speed: 2, WrapMargin: 100},
		{Kind: KindLog, X: 500, Y: 100, W: 120, H: 30, Speed: -1, WrapMargin: 150},
	}
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	out := scr.String()
	if !strings.ContainsRune(out, VehicleChar) {
		t.Error("vehicle not drawn")
	}
	if !strings.ContainsRune(out, LogChar) {
		t.Error("log not drawn")
	}
	if !strings.ContainsRune(out, WaterChar) {
		t.Error("river not drawn")
	}
}

func TestRenderMessages(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(80, 24)

	g.Step(input(core.ActionPause))
	g.Render(scr)
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("pause message not drawn")
	}

	g.Step(input(core.ActionPause))
	g.obstacles = nil
	for i := 0; i < 3; i++ {
		placePlayer(g, 380, 150)
		g.Step(core.NewInputFrame())
	}
	g.Render(scr)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("game over message not drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(30, 5)
	g.Render(scr)

	out := scr.String()
	if !strings.Contains(out, "Window too small") {
		t.Errorf("expected size warning, got:\n%s", out)
	}
	if strings.ContainsRune(out, FrogChar) {
		t.Error("field should not be drawn on a tiny screen")
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	before := g.Snapshot()
	for _, size := range [][2]int{{20, 8}, {80, 24}, {300, 100}} {
		g.Render(core.NewScreen(size[0], size[1]))
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("Render changed simulation state")
	}
}
