package timerscreen

import (
	"fmt"
	"strconv"

	"studytimer/internal/core/model"
	"studytimer/internal/core/timer"
	"studytimer/internal/ui/preferences"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const clockTextSize = 48

// Screen is the timer tab: mode selection, clock, duration inputs and controls.
type Screen struct {
	engine     *timer.Engine
	settings   preferences.Settings
	onSettings func(preferences.Settings)

	focusButton *widget.Button
	restButton  *widget.Button

	clock    *canvas.Text
	progress *widget.ProgressBar
	status   *widget.Label

	hours   *widget.Entry
	minutes *widget.Entry
	seconds *widget.Entry
	inputs  *fyne.Container
	prompt  *widget.Label

	repeatEntry *widget.Entry

	startButton  *widget.Button
	stopButton   *widget.Button
	repeatButton *widget.Button
	resetButton  *widget.Button

	chimeCheck  *widget.Check
	notifyCheck *widget.Check

	content  fyne.CanvasObject
	mode     model.Mode
	filling  bool
	rendered bool
}

// New builds the timer screen. onSettings receives the edited settings when
// an edit is committed so the caller can persist it.
func New(engine *timer.Engine, settings preferences.Settings, onSettings func(preferences.Settings)) *Screen {
	screen := &Screen{
		engine:     engine,
		settings:   settings,
		onSettings: onSettings,
		mode:       model.ModeFocus,
	}

	screen.focusButton = widget.NewButton("Focus", func() { screen.selectMode(model.ModeFocus) })
	screen.restButton = widget.NewButton("Rest", func() { screen.selectMode(model.ModeRest) })

	screen.clock = canvas.NewText(model.FormatClock(0), theme.Color(theme.ColorNameForeground))
	screen.clock.TextSize = clockTextSize
	screen.clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	screen.clock.Alignment = fyne.TextAlignCenter

	screen.progress = widget.NewProgressBar()
	screen.progress.TextFormatter = func() string { return "" }
	screen.status = widget.NewLabel("")
	screen.status.Alignment = fyne.TextAlignCenter

	screen.hours = screen.newNumberEntry("hh")
	screen.minutes = screen.newNumberEntry("mm")
	screen.seconds = screen.newNumberEntry("ss")
	screen.prompt = widget.NewLabel("")
	screen.prompt.Alignment = fyne.TextAlignCenter
	screen.inputs = container.NewVBox(
		screen.prompt,
		container.NewGridWithColumns(3, screen.hours, screen.minutes, screen.seconds),
	)

	screen.repeatEntry = widget.NewEntry()
	screen.repeatEntry.SetPlaceHolder("rounds")
	screen.repeatEntry.SetText(strconv.Itoa(settings.RepeatRounds))
	screen.repeatEntry.OnChanged = func(text string) {
		if digits := model.Digits(text); digits != text {
			screen.repeatEntry.SetText(digits)
			return
		}
		screen.settings.RepeatRounds = model.ParseComponent(text)
	}
	screen.repeatEntry.OnSubmitted = func(string) { screen.saveSettings() }

	screen.startButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), screen.start)
	screen.stopButton = widget.NewButtonWithIcon("Stop", theme.MediaPauseIcon(), func() { screen.engine.Stop() })
	screen.repeatButton = widget.NewButtonWithIcon("Repeat", theme.MediaReplayIcon(), screen.startRepeat)
	screen.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaStopIcon(), func() { screen.engine.Reset() })

	screen.chimeCheck = widget.NewCheck("Chime", nil)
	screen.chimeCheck.SetChecked(settings.ChimeEnabled)
	screen.chimeCheck.OnChanged = func(checked bool) {
		screen.settings.ChimeEnabled = checked
		screen.saveSettings()
	}
	screen.notifyCheck = widget.NewCheck("Notifications", nil)
	screen.notifyCheck.SetChecked(settings.NotificationsEnabled)
	screen.notifyCheck.OnChanged = func(checked bool) {
		screen.settings.NotificationsEnabled = checked
		screen.saveSettings()
	}

	screen.content = container.NewVBox(
		container.NewGridWithColumns(2, screen.focusButton, screen.restButton),
		widget.NewSeparator(),
		container.NewStack(screen.clock, screen.inputs),
		screen.progress,
		screen.status,
		container.NewGridWithColumns(4, screen.startButton, screen.stopButton, screen.repeatButton, screen.resetButton),
		widget.NewForm(widget.NewFormItem("Repeat rounds", screen.repeatEntry)),
		container.NewHBox(screen.chimeCheck, screen.notifyCheck),
	)

	screen.Render(engine.Snapshot())
	return screen
}

// Content returns the root canvas object of the screen.
func (screen *Screen) Content() fyne.CanvasObject {
	return screen.content
}

// Settings returns the settings as last edited on this screen.
func (screen *Screen) Settings() preferences.Settings {
	return screen.settings
}

// Watch renders every engine event on the UI goroutine until events closes.
func (screen *Screen) Watch(events <-chan timer.Event) {
	go func() {
		for event := range events {
			snapshot := event.Snapshot
			fyne.Do(func() {
				screen.Render(snapshot)
			})
		}
	}()
}

// Render updates every widget from snapshot. It must run on the UI goroutine.
func (screen *Screen) Render(snapshot timer.Snapshot) {
	if !screen.rendered || snapshot.Mode != screen.mode {
		screen.rendered = true
		screen.mode = snapshot.Mode
		screen.fillInputs(snapshot.Mode)
	}

	screen.renderModeButtons(snapshot.Mode)

	if snapshot.Idle() {
		screen.clock.Hide()
		screen.inputs.Show()
	} else {
		screen.inputs.Hide()
		screen.clock.Text = model.FormatClock(snapshot.RemainingSeconds)
		screen.clock.Show()
		screen.clock.Refresh()
	}
	screen.progress.SetValue(snapshot.Progress())

	switch {
	case snapshot.RepeatMode:
		screen.status.SetText(fmt.Sprintf("Repeat: %d interval(s) left", snapshot.RoundsRemaining))
	case snapshot.Running:
		screen.status.SetText(fmt.Sprintf("%s in progress", modeTitle(snapshot.Mode)))
	case snapshot.RemainingSeconds > 0:
		screen.status.SetText("Paused")
	default:
		screen.status.SetText("")
	}

	if snapshot.Running {
		screen.startButton.Disable()
	} else {
		screen.startButton.Enable()
	}
	if snapshot.Running || snapshot.RemainingSeconds > 0 {
		screen.stopButton.Enable()
	} else {
		screen.stopButton.Disable()
	}
}

func (screen *Screen) newNumberEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	entry.OnChanged = func(text string) {
		if digits := model.Digits(text); digits != text {
			entry.SetText(digits)
			return
		}
		if screen.filling {
			return
		}
		screen.applyInputs()
	}
	entry.OnSubmitted = func(string) { screen.saveSettings() }
	return entry
}

func (screen *Screen) selectMode(mode model.Mode) {
	screen.saveSettings()
	screen.engine.SetMode(mode)
	screen.Render(screen.engine.Snapshot())
}

func (screen *Screen) start() {
	if screen.engine.Snapshot().Idle() {
		screen.applyInputs()
	}
	screen.saveSettings()
	screen.engine.Start()
	screen.Render(screen.engine.Snapshot())
}

func (screen *Screen) startRepeat() {
	screen.applyInputs()
	rounds := model.ParseComponent(screen.repeatEntry.Text)
	screen.settings.RepeatRounds = rounds
	screen.saveSettings()
	screen.engine.StartRepeat(rounds)
	screen.Render(screen.engine.Snapshot())
}

// applyInputs pushes the h/m/s entries into the engine as the duration of
// the current mode. Settings are saved separately, on submit, mode switch,
// Start and Repeat.
func (screen *Screen) applyInputs() {
	total := model.SecondsFromParts(
		model.ParseComponent(screen.hours.Text),
		model.ParseComponent(screen.minutes.Text),
		model.ParseComponent(screen.seconds.Text),
	)
	screen.settings = screen.settings.WithDuration(screen.mode, total)
	if screen.mode == model.ModeRest {
		screen.engine.SetRestDuration(total)
	} else {
		screen.engine.SetFocusDuration(total)
	}
}

func (screen *Screen) fillInputs(mode model.Mode) {
	total := screen.settings.FocusSeconds
	if mode == model.ModeRest {
		total = screen.settings.RestSeconds
	}
	hours, minutes, seconds := model.SplitSeconds(total)

	screen.filling = true
	screen.hours.SetText(strconv.Itoa(hours))
	screen.minutes.SetText(strconv.Itoa(minutes))
	screen.seconds.SetText(strconv.Itoa(seconds))
	screen.filling = false

	screen.prompt.SetText(fmt.Sprintf("Set %s time", mode))
}

func (screen *Screen) renderModeButtons(mode model.Mode) {
	focus, rest := widget.MediumImportance, widget.MediumImportance
	if mode == model.ModeRest {
		rest = widget.HighImportance
	} else {
		focus = widget.HighImportance
	}
	if screen.focusButton.Importance != focus {
		screen.focusButton.Importance = focus
		screen.focusButton.Refresh()
	}
	if screen.restButton.Importance != rest {
		screen.restButton.Importance = rest
		screen.restButton.Refresh()
	}
}

func (screen *Screen) saveSettings() {
	if screen.onSettings != nil {
		screen.onSettings(screen.settings)
	}
}

func modeTitle(mode model.Mode) string {
	if mode == model.ModeRest {
		return "Rest"
	}
	return "Focus"
}
