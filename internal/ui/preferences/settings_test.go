package preferences

import (
	"testing"

	"studytimer/internal/core/model"
)

func TestTimerConfig(t *testing.T) {
	config := Settings{FocusSeconds: 90, RestSeconds: -3}.TimerConfig()
	if config.FocusSeconds != 90 || config.RestSeconds != 0 {
		t.Fatalf("unexpected config %+v", config)
	}
}

func TestWithDuration(t *testing.T) {
	settings := DefaultSettings().WithDuration(model.ModeRest, 42)
	if settings.RestSeconds != 42 || settings.FocusSeconds != 25*60 {
		t.Fatalf("unexpected settings %+v", settings)
	}
	settings = settings.WithDuration(model.ModeFocus, -1)
	if settings.FocusSeconds != 0 {
		t.Fatalf("expected clamped focus, got %d", settings.FocusSeconds)
	}
}
