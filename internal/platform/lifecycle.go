package platform

import "log"

// Backgrounder is paused when the host leaves the foreground.
type Backgrounder interface {
	Background()
}

// LifecycleHooks is the part of fyne.Lifecycle the bridge needs.
type LifecycleHooks interface {
	SetOnExitedForeground(func())
}

// WatchLifecycle pauses target whenever the app leaves the foreground.
// Returning to the foreground does not resume it.
func WatchLifecycle(lifecycle LifecycleHooks, target Backgrounder) {
	if lifecycle == nil || target == nil {
		return
	}
	lifecycle.SetOnExitedForeground(func() {
		log.Printf("lifecycle: left foreground, pausing timer")
		target.Background()
	})
}
