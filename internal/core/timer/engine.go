package timer

import (
	"context"
	"sync"
	"time"

	"studytimer/internal/core/model"
)

// Recorder receives the session records the engine produces.
type Recorder interface {
	Append(record model.SessionRecord)
}

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Config contains runtime options for Engine.
type Config struct {
	TickInterval time.Duration
	Now          func() time.Time
	NewTicker    func(time.Duration) Ticker
}

type systemTicker struct {
	ticker *time.Ticker
}

func newSystemTicker(interval time.Duration) Ticker {
	return systemTicker{ticker: time.NewTicker(interval)}
}

func (t systemTicker) C() <-chan time.Time { return t.ticker.C }

func (t systemTicker) Stop() { t.ticker.Stop() }

// Engine is the focus/rest state machine. It advances one second per tick
// while running and reports finished focus time to its Recorder.
type Engine struct {
	mu        sync.Mutex
	config    model.TimerConfig
	options   Config
	mode      model.Mode
	remaining int
	total     int
	running   bool
	repeat    bool
	rounds    int
	recorder  Recorder
	events    []chan Event
	cancel    context.CancelFunc
	closed    bool
}

// New creates an idle Engine in focus mode.
func New(config model.TimerConfig, options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.NewTicker == nil {
		options.NewTicker = newSystemTicker
	}

	return &Engine{
		config:  config.Normalized(),
		options: options,
		mode:    model.ModeFocus,
	}
}

// SetRecorder injects the record sink.
func (engine *Engine) SetRecorder(recorder Recorder) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.recorder = recorder
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	return ch
}

// Snapshot returns the current state.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked()
}

// Start runs the current interval, loading a fresh one when nothing is
// left of the previous interval.
func (engine *Engine) Start() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	if engine.remaining <= 0 {
		engine.loadIntervalLocked()
		engine.rounds = 0
		engine.repeat = false
	}
	engine.setRunningLocked(true)
	engine.emitStateLocked()
	engine.mu.Unlock()
}

// Stop pauses the current interval. Focus time spent so far in the
// interval is recorded, also when it was already paused; the interval itself
// is kept so Start resumes it.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	now := engine.options.Now()
	var pending []model.SessionRecord
	if engine.mode == model.ModeFocus && engine.remaining > 0 && engine.remaining < engine.total {
		pending = append(pending, model.NewSessionRecord(model.ModeFocus, engine.total-engine.remaining, now))
	}
	engine.setRunningLocked(false)
	engine.emitStateLocked()
	recorder := engine.recorder
	engine.mu.Unlock()

	engine.deliver(recorder, pending, now)
}

// StartRepeat restarts the current interval and alternates focus and rest
// until rounds focus intervals and rounds rest intervals have elapsed.
func (engine *Engine) StartRepeat(rounds int) {
	if rounds <= 0 {
		return
	}

	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.rounds = rounds * 2
	engine.repeat = true
	engine.loadIntervalLocked()
	engine.setRunningLocked(true)
	engine.emitStateLocked()
	engine.mu.Unlock()
}

// Reset clears the interval and any repeat sequence.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	engine.setRunningLocked(false)
	engine.remaining = 0
	engine.total = 0
	engine.rounds = 0
	engine.repeat = false
	engine.emitStateLocked()
	engine.mu.Unlock()
}

// Background pauses the engine because the host left the foreground.
// Nothing is recorded and the engine stays paused until Start is called.
func (engine *Engine) Background() {
	engine.mu.Lock()
	if !engine.running {
		engine.mu.Unlock()
		return
	}
	engine.setRunningLocked(false)
	engine.emitStateLocked()
	engine.mu.Unlock()
}

// SetMode selects the interval mode used by the next interval load.
func (engine *Engine) SetMode(mode model.Mode) {
	if !mode.Valid() {
		return
	}

	engine.mu.Lock()
	engine.mode = mode
	engine.emitStateLocked()
	engine.mu.Unlock()
}

// SetFocusDuration updates the configured focus length.
func (engine *Engine) SetFocusDuration(seconds int) {
	engine.mu.Lock()
	config := engine.config
	config.FocusSeconds = seconds
	engine.config = config.Normalized()
	engine.emitStateLocked()
	engine.mu.Unlock()
}

// SetRestDuration updates the configured rest length.
func (engine *Engine) SetRestDuration(seconds int) {
	engine.mu.Lock()
	config := engine.config
	config.RestSeconds = seconds
	engine.config = config.Normalized()
	engine.emitStateLocked()
	engine.mu.Unlock()
}

// UpdateConfig replaces both configured durations.
func (engine *Engine) UpdateConfig(config model.TimerConfig) {
	engine.mu.Lock()
	engine.config = config.Normalized()
	engine.emitStateLocked()
	engine.mu.Unlock()
}

// Tick advances the running interval by one second. The engine's own loop
// calls it once per TickInterval.
func (engine *Engine) Tick() {
	engine.step(context.Background())
}

// Close stops the ticking loop and closes observers.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.setRunningLocked(false)
	engine.closed = true
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (engine *Engine) run(ctx context.Context, ticker Ticker) {
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			engine.step(ctx)
		}
	}
}

// step is one tick. ctx belongs to the loop that fired it; once cancelled,
// its ticks are dropped.
func (engine *Engine) step(ctx context.Context) {
	engine.mu.Lock()
	if ctx.Err() != nil || !engine.running {
		engine.mu.Unlock()
		return
	}

	now := engine.options.Now()
	if engine.remaining > 0 {
		engine.remaining--
		engine.emitLocked(Event{
			Type:     EventTick,
			Snapshot: engine.snapshotLocked(),
			At:       now,
		})
		engine.mu.Unlock()
		return
	}

	finished := engine.mode
	elapsed := engine.total
	var pending []model.SessionRecord
	if finished == model.ModeFocus {
		if elapsed == 0 {
			elapsed = engine.config.FocusSeconds
		}
		pending = append(pending, model.NewSessionRecord(model.ModeFocus, elapsed, now))
	}

	if engine.repeat {
		engine.rounds--
		if engine.rounds > 0 {
			engine.mode = engine.mode.Toggle()
			engine.loadIntervalLocked()
		} else {
			engine.rounds = 0
			engine.repeat = false
			engine.setRunningLocked(false)
		}
	} else {
		engine.setRunningLocked(false)
	}

	engine.emitLocked(Event{
		Type:     EventIntervalComplete,
		Snapshot: engine.snapshotLocked(),
		Finished: finished,
		Elapsed:  elapsed,
		At:       now,
	})
	recorder := engine.recorder
	engine.mu.Unlock()

	engine.deliver(recorder, pending, now)
}

func (engine *Engine) loadIntervalLocked() {
	engine.total = engine.config.DurationFor(engine.mode)
	engine.remaining = engine.total
}

// setRunningLocked starts a fresh loop on the transition to running and
// cancels it on any transition away.
func (engine *Engine) setRunningLocked(running bool) {
	engine.running = running
	if running {
		if engine.cancel == nil && !engine.closed {
			ctx, cancel := context.WithCancel(context.Background())
			engine.cancel = cancel
			go engine.run(ctx, engine.options.NewTicker(engine.options.TickInterval))
		}
		return
	}
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Mode:             engine.mode,
		RemainingSeconds: engine.remaining,
		TotalSeconds:     engine.total,
		Running:          engine.running,
		RepeatMode:       engine.repeat,
		RoundsRemaining:  engine.rounds,
		FocusSeconds:     engine.config.FocusSeconds,
		RestSeconds:      engine.config.RestSeconds,
	}
}

func (engine *Engine) deliver(recorder Recorder, records []model.SessionRecord, now time.Time) {
	for i := range records {
		if recorder != nil {
			recorder.Append(records[i])
		}
		record := records[i]
		engine.emit(Event{
			Type:     EventRecorded,
			Snapshot: engine.Snapshot(),
			Record:   &record,
			At:       now,
		})
	}
}

func (engine *Engine) emitStateLocked() {
	engine.emitLocked(Event{
		Type:     EventStateChange,
		Snapshot: engine.snapshotLocked(),
		At:       engine.options.Now(),
	})
}

func (engine *Engine) emit(event Event) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.emitLocked(event)
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
