package platform

import (
	"math"
	"strings"
	"testing"
	"time"

	"studytimer/internal/core/model"
	"studytimer/internal/core/timer"

	"github.com/faiface/beep"
)

type fakeLifecycle struct {
	exited func()
}

func (lifecycle *fakeLifecycle) SetOnExitedForeground(callback func()) {
	lifecycle.exited = callback
}

type countingBackgrounder struct {
	calls int
}

func (target *countingBackgrounder) Background() {
	target.calls++
}

func TestWatchLifecyclePausesOnExit(t *testing.T) {
	lifecycle := &fakeLifecycle{}
	target := &countingBackgrounder{}
	WatchLifecycle(lifecycle, target)

	if lifecycle.exited == nil {
		t.Fatal("expected exit hook to be registered")
	}
	lifecycle.exited()
	lifecycle.exited()
	if target.calls != 2 {
		t.Fatalf("expected 2 background calls, got %d", target.calls)
	}
}

func TestWatchLifecyclePausesRunningEngine(t *testing.T) {
	lifecycle := &fakeLifecycle{}
	engine := timer.New(model.TimerConfig{FocusSeconds: 30}, timer.Config{TickInterval: time.Hour})
	t.Cleanup(engine.Close)
	WatchLifecycle(lifecycle, engine)

	engine.Start()
	engine.Tick()
	lifecycle.exited()

	snapshot := engine.Snapshot()
	if snapshot.Running || snapshot.RemainingSeconds != 29 {
		t.Fatalf("expected paused engine with 29s left, got %+v", snapshot)
	}
}

func TestCompletionMessage(t *testing.T) {
	cases := []struct {
		name    string
		event   timer.Event
		title   string
		content string
	}{
		{
			name: "focus done",
			event: timer.Event{
				Finished: model.ModeFocus,
				Elapsed:  1500,
				Snapshot: timer.Snapshot{Mode: model.ModeFocus, FocusSeconds: 600},
			},
			title:   "Focus finished",
			content: "00:25:00",
		},
		{
			name: "rest done",
			event: timer.Event{
				Finished: model.ModeRest,
				Snapshot: timer.Snapshot{Mode: model.ModeRest},
			},
			title:   "Rest finished",
			content: "Ready",
		},
		{
			name: "repeat continues",
			event: timer.Event{
				Finished: model.ModeFocus,
				Snapshot: timer.Snapshot{Mode: model.ModeRest, Running: true, RepeatMode: true, RoundsRemaining: 3, TotalSeconds: 300},
			},
			title:   "Focus finished",
			content: "rest 00:05:00 started, 2 round(s) left.",
		},
	}
	for _, tc := range cases {
		title, content := CompletionMessage(tc.event)
		if title != tc.title {
			t.Errorf("%s: expected title %q, got %q", tc.name, tc.title, title)
		}
		if !strings.Contains(content, tc.content) {
			t.Errorf("%s: expected content containing %q, got %q", tc.name, tc.content, content)
		}
	}
}

func TestSineToneStaysInRange(t *testing.T) {
	tone := beep.Take(300, sineTone(chimeSampleRate, focusToneHz))
	buffer := make([][2]float64, 128)
	total := 0
	for {
		n, ok := tone.Stream(buffer)
		for _, sample := range buffer[:n] {
			if math.Abs(sample[0]) > chimeAmplitude+1e-9 || sample[0] != sample[1] {
				t.Fatalf("unexpected sample %v", sample)
			}
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	if total != 300 {
		t.Fatalf("expected 300 samples, got %d", total)
	}
}

type recordingPlayer struct {
	played []model.Mode
	err    error
}

func (player *recordingPlayer) Play(finished model.Mode) error {
	player.played = append(player.played, finished)
	return player.err
}

type recordingNotifier struct {
	events []timer.Event
}

func (notifier *recordingNotifier) IntervalComplete(event timer.Event) {
	notifier.events = append(notifier.events, event)
}

func TestAlertsHandleIntervalComplete(t *testing.T) {
	player := &recordingPlayer{}
	notifier := &recordingNotifier{}
	alerts := NewAlerts(player, notifier)

	alerts.Handle(timer.Event{Type: timer.EventTick})
	alerts.Handle(timer.Event{Type: timer.EventIntervalComplete, Finished: model.ModeRest})

	if len(player.played) != 1 || player.played[0] != model.ModeRest {
		t.Fatalf("unexpected chimes %v", player.played)
	}
	if len(notifier.events) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.events))
	}

	alerts.Configure(false, false)
	alerts.Handle(timer.Event{Type: timer.EventIntervalComplete, Finished: model.ModeFocus})
	if len(player.played) != 1 || len(notifier.events) != 1 {
		t.Fatal("expected disabled alerts to stay silent")
	}
}

func TestAlertsDisableChimeAfterFailure(t *testing.T) {
	player := &recordingPlayer{err: ErrAudioUnavailable}
	notifier := &recordingNotifier{}
	alerts := NewAlerts(player, notifier)

	complete := timer.Event{Type: timer.EventIntervalComplete, Finished: model.ModeFocus}
	alerts.Handle(complete)
	alerts.Handle(complete)

	if len(player.played) != 1 {
		t.Fatalf("expected chime to be tried once, got %d", len(player.played))
	}
	if len(notifier.events) != 2 {
		t.Fatalf("expected notifications to continue, got %d", len(notifier.events))
	}
}
