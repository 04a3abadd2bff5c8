package tray

import (
	"fmt"

	"studytimer/internal/core/model"
	"studytimer/internal/core/timer"

	"fyne.io/fyne/v2"
)

const menuTitle = "StudyTimer"

// App is the part of desktop.App the tray needs.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow      func()
	OnToggleRun func()
	OnReset     func()
	OnQuit      func()
}

// Icons are swapped on the tray as the timer starts and stops.
type Icons struct {
	Running fyne.Resource
	Paused  fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app        App
	icons      Icons
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	runItem    *fyne.MenuItem
	menu       *fyne.Menu
	running    bool
	status     string
}

// New creates a tray manager with the provided callbacks.
func New(app App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		icons:     icons,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true
	manager.runItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggleRun != nil {
			manager.callbacks.OnToggleRun()
		}
	})

	show := fyne.NewMenuItem("Show window", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})
	reset := fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true

	manager.menu = fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.runItem,
		reset,
		show,
		fyne.NewMenuItemSeparator(),
		quit,
	)
	app.SetSystemTrayMenu(manager.menu)
	manager.applyIcon()

	return manager
}

// Render updates the status line and the Start/Stop item from snapshot.
func (manager *Manager) Render(snapshot timer.Snapshot) {
	status := StatusLine(snapshot)
	if status == manager.status && snapshot.Running == manager.running {
		return
	}

	iconChanged := snapshot.Running != manager.running
	manager.status = status
	manager.running = snapshot.Running
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	if snapshot.Running {
		manager.runItem.Label = "Stop"
	} else {
		manager.runItem.Label = "Start"
	}
	manager.app.SetSystemTrayMenu(manager.menu)
	if iconChanged {
		manager.applyIcon()
	}
}

// StatusLine renders "<mode> HH:MM:SS", or "idle" when no interval is loaded.
func StatusLine(snapshot timer.Snapshot) string {
	if snapshot.Idle() {
		return "idle"
	}
	line := fmt.Sprintf("%s %s", snapshot.Mode, model.FormatClock(snapshot.RemainingSeconds))
	if !snapshot.Running {
		line += " (paused)"
	}
	return line
}

func (manager *Manager) applyIcon() {
	icon := manager.icons.Paused
	if manager.running && manager.icons.Running != nil {
		icon = manager.icons.Running
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}
