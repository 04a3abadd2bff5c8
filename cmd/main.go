package main

import (
	"log"
	"time"

	"studytimer/internal/core/history"
	"studytimer/internal/core/timer"
	"studytimer/internal/core/todo"
	"studytimer/internal/platform"
	"studytimer/internal/storage"
	"studytimer/internal/ui/preferences"
	"studytimer/internal/ui/recordscreen"
	"studytimer/internal/ui/timerscreen"
	"studytimer/internal/ui/todoscreen"
	"studytimer/internal/ui/tray"
	"studytimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const (
	appName = "StudyTimer"
	appID   = "com.studytimer.app"
)

func main() {
	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon("app.svg"))

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("settings: %v", err)
	}

	records := history.New()
	todos := todo.New()
	engine := timer.New(settings.TimerConfig(), timer.Config{TickInterval: time.Second})
	engine.SetRecorder(records)

	alerts := platform.NewAlerts(platform.NewChime(), platform.NewNotifier(fyneApp))
	alerts.Configure(settings.ChimeEnabled, settings.NotificationsEnabled)

	saveSettings := func(updated preferences.Settings) {
		settings = updated
		alerts.Configure(settings.ChimeEnabled, settings.NotificationsEnabled)
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
	}

	window := fyneApp.NewWindow(appName)
	timerScreen := timerscreen.New(engine, settings, saveSettings)
	recordScreen := recordscreen.New(records, window)
	todoScreen := todoscreen.New(todos, window)

	tabs := container.NewAppTabs(
		container.NewTabItemWithIcon("Timer", theme.MediaPlayIcon(), timerScreen.Content()),
		container.NewTabItemWithIcon("Records", theme.ListIcon(), recordScreen.Content()),
		container.NewTabItemWithIcon("To-do", theme.ConfirmIcon(), todoScreen.Content()),
	)
	tabs.SetTabLocation(container.TabLocationBottom)
	window.SetContent(tabs)
	window.Resize(fyne.NewSize(420, 640))
	window.SetMaster()

	if fyne.CurrentDevice().IsMobile() {
		platform.WatchLifecycle(fyneApp.Lifecycle(), engine)
	}
	fyneApp.Lifecycle().SetOnStopped(func() {
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
		engine.Close()
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Icons{
			Running: resources.MustIcon("app.svg"),
			Paused:  resources.MustIcon("app_paused.svg"),
		}, tray.Callbacks{
			OnShow: func() {
				window.Show()
				window.RequestFocus()
			},
			OnToggleRun: func() {
				if engine.Snapshot().Running {
					engine.Stop()
				} else {
					engine.Start()
				}
			},
			OnReset: func() {
				engine.Reset()
			},
			OnQuit: func() {
				fyneApp.Quit()
			},
		})
		window.SetCloseIntercept(func() {
			window.Hide()
		})
	}

	timerScreen.Watch(engine.Subscribe(16))
	events := engine.Subscribe(16)
	go func() {
		for event := range events {
			handleEvent(event, alerts, trayManager)
		}
	}()

	window.ShowAndRun()
}

func handleEvent(event timer.Event, alerts *platform.Alerts, trayManager *tray.Manager) {
	switch event.Type {
	case timer.EventIntervalComplete:
		alerts.Handle(event)
	case timer.EventRecorded:
		if event.Record != nil {
			log.Printf("recorded %s", event.Record)
		}
	}

	if trayManager == nil {
		return
	}
	snapshot := event.Snapshot
	fyne.Do(func() {
		trayManager.Render(snapshot)
	})
}
