package platform

import (
	"fmt"

	"studytimer/internal/core/model"
	"studytimer/internal/core/timer"

	"fyne.io/fyne/v2"
)

// Notifier posts a system notification when an interval finishes.
type Notifier struct {
	app fyne.App
}

// NewNotifier creates a notifier bound to the Fyne app.
func NewNotifier(app fyne.App) *Notifier {
	return &Notifier{app: app}
}

// IntervalComplete notifies about a finished interval.
func (notifier *Notifier) IntervalComplete(event timer.Event) {
	if notifier == nil || notifier.app == nil {
		return
	}
	title, content := CompletionMessage(event)
	notifier.app.SendNotification(fyne.NewNotification(title, content))
}

// CompletionMessage builds the notification text for an interval-complete event.
func CompletionMessage(event timer.Event) (string, string) {
	title := "Focus finished"
	if event.Finished == model.ModeRest {
		title = "Rest finished"
	}

	snapshot := event.Snapshot
	if !snapshot.Running {
		if event.Finished == model.ModeFocus {
			return title, fmt.Sprintf("Well done, %s of focus.", model.FormatClock(event.Elapsed))
		}
		return title, "Ready for the next session."
	}

	left := (snapshot.RoundsRemaining + 1) / 2
	return title, fmt.Sprintf("%s %s started, %d round(s) left.",
		snapshot.Mode, model.FormatClock(snapshot.TotalSeconds), left)
}
