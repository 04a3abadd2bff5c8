package tray

import (
	"testing"

	"studytimer/internal/core/model"
	"studytimer/internal/core/timer"

	"fyne.io/fyne/v2"
)

type fakeTrayApp struct {
	menu  *fyne.Menu
	icon  fyne.Resource
	icons int
}

func (app *fakeTrayApp) SetSystemTrayMenu(menu *fyne.Menu) { app.menu = menu }

func (app *fakeTrayApp) SetSystemTrayIcon(icon fyne.Resource) {
	app.icon = icon
	app.icons++
}

var (
	runningIcon = fyne.NewStaticResource("running.svg", []byte("<svg/>"))
	pausedIcon  = fyne.NewStaticResource("paused.svg", []byte("<svg/>"))
)

func TestStatusLine(t *testing.T) {
	cases := []struct {
		snapshot timer.Snapshot
		want     string
	}{
		{timer.Snapshot{Mode: model.ModeFocus}, "idle"},
		{timer.Snapshot{Mode: model.ModeFocus, RemainingSeconds: 61, TotalSeconds: 90, Running: true}, "focus 00:01:01"},
		{timer.Snapshot{Mode: model.ModeRest, RemainingSeconds: 5, TotalSeconds: 300}, "rest 00:00:05 (paused)"},
	}
	for _, tc := range cases {
		if got := StatusLine(tc.snapshot); got != tc.want {
			t.Errorf("StatusLine(%+v) = %q, want %q", tc.snapshot, got, tc.want)
		}
	}
}

func TestRenderUpdatesMenuAndIcon(t *testing.T) {
	app := &fakeTrayApp{}
	manager := New(app, Icons{Running: runningIcon, Paused: pausedIcon}, Callbacks{})

	if app.menu == nil || app.icon != pausedIcon {
		t.Fatal("expected menu and paused icon on creation")
	}

	manager.Render(timer.Snapshot{Mode: model.ModeFocus, RemainingSeconds: 10, TotalSeconds: 10, Running: true})
	if manager.statusItem.Label != "Status: focus 00:00:10" || manager.runItem.Label != "Stop" {
		t.Fatalf("unexpected labels %q %q", manager.statusItem.Label, manager.runItem.Label)
	}
	if app.icon != runningIcon {
		t.Fatal("expected running icon")
	}

	icons := app.icons
	manager.Render(timer.Snapshot{Mode: model.ModeFocus, RemainingSeconds: 9, TotalSeconds: 10, Running: true})
	if app.icons != icons {
		t.Fatal("expected icon unchanged while running")
	}

	manager.Render(timer.Snapshot{Mode: model.ModeFocus, RemainingSeconds: 9, TotalSeconds: 10})
	if manager.runItem.Label != "Start" || app.icon != pausedIcon {
		t.Fatal("expected start label and paused icon after stop")
	}
}

func TestMenuCallbacks(t *testing.T) {
	app := &fakeTrayApp{}
	var toggled, reset, shown, quit int
	New(app, Icons{}, Callbacks{
		OnShow:      func() { shown++ },
		OnToggleRun: func() { toggled++ },
		OnReset:     func() { reset++ },
		OnQuit:      func() { quit++ },
	})

	for _, item := range app.menu.Items {
		if item.Action != nil {
			item.Action()
		}
	}
	if toggled != 1 || reset != 1 || shown != 1 || quit != 1 {
		t.Fatalf("unexpected callback counts %d %d %d %d", toggled, reset, shown, quit)
	}
}
