package platform

import (
	"log"
	"sync"

	"studytimer/internal/core/model"
	"studytimer/internal/core/timer"
)

// Player sounds a tone for a finished interval.
type Player interface {
	Play(finished model.Mode) error
}

// IntervalNotifier reports a finished interval to the user.
type IntervalNotifier interface {
	IntervalComplete(event timer.Event)
}

// Alerts routes interval-complete events to the chime and the notifier.
type Alerts struct {
	mu            sync.Mutex
	player        Player
	notifier      IntervalNotifier
	chimeOn       bool
	notifyOn      bool
	chimeDisabled bool
}

// NewAlerts creates a dispatcher with both alerts enabled.
func NewAlerts(player Player, notifier IntervalNotifier) *Alerts {
	return &Alerts{
		player:   player,
		notifier: notifier,
		chimeOn:  true,
		notifyOn: true,
	}
}

// Configure enables or disables each alert.
func (alerts *Alerts) Configure(chime, notifications bool) {
	alerts.mu.Lock()
	defer alerts.mu.Unlock()
	alerts.chimeOn = chime
	alerts.notifyOn = notifications
}

// Handle reacts to an engine event. Only EventIntervalComplete is used.
func (alerts *Alerts) Handle(event timer.Event) {
	if event.Type != timer.EventIntervalComplete {
		return
	}

	alerts.mu.Lock()
	playChime := alerts.chimeOn && !alerts.chimeDisabled && alerts.player != nil
	notify := alerts.notifyOn && alerts.notifier != nil
	alerts.mu.Unlock()

	if playChime {
		if err := alerts.player.Play(event.Finished); err != nil {
			log.Printf("chime: %v", err)
			alerts.mu.Lock()
			alerts.chimeDisabled = true
			alerts.mu.Unlock()
		}
	}
	if notify {
		alerts.notifier.IntervalComplete(event)
	}
}
