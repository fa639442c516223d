package timekeeper

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tomato/internal/core/model"
	"tomato/internal/logging"
)

// Config contains runtime options and collaborators for TimeKeeper.
// Nil collaborators are replaced with no-ops.
type Config struct {
	TickInterval time.Duration
	Clock        Clock
	Display      Display
	Audio        AudioNotifier
	Notifier     DesktopNotifier
	Messages     Messages
	Logger       *slog.Logger
}

// Snapshot is a read-only copy of the timer state.
type Snapshot struct {
	Phase            Phase
	RemainingSeconds int
	Running          bool
	Paused           bool
	CompletedCycles  int
	Config           model.TimerConfig
}

// TimeKeeper is the Pomodoro state machine: a Work/Break countdown driven by
// a one-second ticker and by user commands.
type TimeKeeper struct {
	mu sync.Mutex
	// effectsMu keeps collaborator calls in the order their state changes happened.
	effectsMu sync.Mutex

	config  model.TimerConfig
	options Config

	phase     Phase
	remaining int
	running   bool
	paused    bool
	completed int

	ticker Ticker
	stopCh chan struct{}
	events []chan Event
	closed bool
}

// effects are collaborator calls collected under mu and run after it is released.
type effects struct {
	view         *View
	cue          Cue
	notification *Notification
}

// New creates a TimeKeeper in the Work phase with a full countdown, not running.
func New(config model.TimerConfig, options Config) (*TimeKeeper, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("timer config: %w", err)
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = SystemClock
	}
	if options.Display == nil {
		options.Display = nopDisplay{}
	}
	if options.Audio == nil {
		options.Audio = nopAudio{}
	}
	if options.Notifier == nil {
		options.Notifier = nopNotifier{}
	}
	if options.Messages == (Messages{}) {
		options.Messages = DefaultMessages()
	}
	if options.Logger == nil {
		options.Logger = logging.Discard()
	}

	return &TimeKeeper{
		config:    config,
		options:   options,
		phase:     PhaseWork,
		remaining: config.WorkSeconds(),
	}, nil
}

// Subscribe registers a new observer channel. Events are dropped for
// observers whose buffer is full.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Snapshot returns the current state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked()
}

// View returns what the display currently shows.
func (keeper *TimeKeeper) View() View {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.viewLocked()
}

// RequestNotificationPermission asks for desktop notification permission if
// it has been neither granted nor denied yet.
func (keeper *TimeKeeper) RequestNotificationPermission() Permission {
	notifier := keeper.options.Notifier
	permission := notifier.Permission()
	if permission != PermissionDefault {
		return permission
	}
	permission = notifier.RequestPermission()
	keeper.options.Logger.Debug("notification permission requested", slog.String("permission", permission.String()))
	return permission
}

// Start begins ticking. A paused timer resumes from where it stopped.
// Calling Start on a running timer does nothing.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	if keeper.closed || (keeper.running && !keeper.paused) {
		keeper.mu.Unlock()
		return
	}
	if keeper.paused {
		keeper.paused = false
	} else {
		keeper.running = true
	}
	keeper.startTickerLocked()
	keeper.options.Logger.Info("timer started",
		logging.Phase(string(keeper.phase)),
		logging.Remaining(keeper.remainingLocked()))

	keeper.emitLocked(keeper.eventLocked(EventStateChange))
	view := keeper.viewLocked()
	keeper.flush(effects{view: &view})
}

// Pause stops ticking and keeps the remaining time. It does nothing if the
// timer is not running.
func (keeper *TimeKeeper) Pause() {
	keeper.mu.Lock()
	if !keeper.running || keeper.paused {
		keeper.mu.Unlock()
		return
	}
	keeper.stopTickerLocked()
	keeper.paused = true
	keeper.options.Logger.Info("timer paused", logging.Remaining(keeper.remainingLocked()))

	keeper.emitLocked(keeper.eventLocked(EventStateChange))
	view := keeper.viewLocked()
	keeper.flush(effects{view: &view})
}

// Reset stops ticking and returns to the start of a Work phase.
// Completed cycles are kept.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	keeper.stopTickerLocked()
	keeper.phase = PhaseWork
	keeper.remaining = keeper.config.WorkSeconds()
	keeper.running = false
	keeper.paused = false
	keeper.options.Logger.Info("timer reset", logging.Remaining(keeper.remainingLocked()))

	keeper.emitLocked(keeper.eventLocked(EventStateChange))
	view := keeper.viewLocked()
	keeper.flush(effects{view: &view})
}

// UpdateSettings validates and stores new phase lengths. A stopped timer
// picks up the new work length immediately; a running one uses the new
// lengths from its next transition. Invalid values leave the state untouched.
func (keeper *TimeKeeper) UpdateSettings(workMinutes, breakMinutes int) error {
	config := model.TimerConfig{WorkMinutes: workMinutes, BreakMinutes: breakMinutes}
	if err := config.Validate(); err != nil {
		return err
	}

	keeper.mu.Lock()
	keeper.config = config
	keeper.options.Logger.Info("settings updated",
		slog.Int("work_minutes", workMinutes),
		slog.Int("break_minutes", breakMinutes))
	if keeper.running {
		keeper.mu.Unlock()
		return nil
	}
	keeper.remaining = config.WorkSeconds()
	keeper.emitLocked(keeper.eventLocked(EventStateChange))
	view := keeper.viewLocked()
	keeper.flush(effects{view: &view})
	return nil
}

// Tick advances the countdown by one second. When the countdown reaches zero
// the phase changes within the same tick and counting continues. Ticks are
// ignored while the timer is stopped or paused.
func (keeper *TimeKeeper) Tick() {
	keeper.mu.Lock()
	keeper.tickLocked()
}

// Close stops ticking and closes all observer channels.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}
	keeper.closed = true
	keeper.stopTickerLocked()
	keeper.running = false
	keeper.paused = false
	events := keeper.events
	keeper.events = nil
	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) run(ticker Ticker, stopCh chan struct{}) {
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C():
			keeper.mu.Lock()
			// A tick received just before Pause/Reset belongs to a stale run.
			if keeper.stopCh != stopCh {
				keeper.mu.Unlock()
				return
			}
			keeper.tickLocked()
		}
	}
}

// tickLocked expects mu held and releases it.
func (keeper *TimeKeeper) tickLocked() {
	if !keeper.running || keeper.paused {
		keeper.mu.Unlock()
		return
	}

	if keeper.remaining > 0 {
		keeper.remaining--
	}

	var out effects
	if keeper.remaining == 0 {
		out = keeper.transitionLocked()
	}

	keeper.emitLocked(keeper.eventLocked(EventProgress))
	view := keeper.viewLocked()
	out.view = &view
	keeper.flush(out)
}

func (keeper *TimeKeeper) transitionLocked() effects {
	var out effects
	switch keeper.phase {
	case PhaseWork:
		keeper.completed++
		keeper.phase = PhaseBreak
		keeper.remaining = keeper.config.BreakSeconds()
		out.cue = CueWorkComplete
		notification := keeper.options.Messages.WorkComplete
		out.notification = &notification
	default:
		keeper.phase = PhaseWork
		keeper.remaining = keeper.config.WorkSeconds()
		out.cue = CueBreakComplete
		notification := keeper.options.Messages.BreakComplete
		out.notification = &notification
	}

	keeper.options.Logger.Info("phase changed",
		logging.Phase(string(keeper.phase)),
		logging.Remaining(keeper.remainingLocked()),
		logging.Cycles(keeper.completed))
	keeper.emitLocked(keeper.eventLocked(EventStateChange))
	return out
}

func (keeper *TimeKeeper) startTickerLocked() {
	keeper.stopTickerLocked()
	ticker := keeper.options.Clock.NewTicker(keeper.options.TickInterval)
	stopCh := make(chan struct{})
	keeper.ticker = ticker
	keeper.stopCh = stopCh
	go keeper.run(ticker, stopCh)
}

func (keeper *TimeKeeper) stopTickerLocked() {
	if keeper.ticker == nil {
		return
	}
	keeper.ticker.Stop()
	close(keeper.stopCh)
	keeper.ticker = nil
	keeper.stopCh = nil
}

// flush expects mu held. It releases mu and runs the collaborator calls.
func (keeper *TimeKeeper) flush(out effects) {
	keeper.effectsMu.Lock()
	keeper.mu.Unlock()
	defer keeper.effectsMu.Unlock()

	if out.view != nil {
		keeper.options.Display.Render(*out.view)
	}
	if out.cue != "" {
		if err := keeper.options.Audio.Play(out.cue); err != nil {
			keeper.options.Logger.Debug("play cue failed", logging.Cue(string(out.cue)), logging.Error(err))
		}
	}
	if out.notification != nil {
		keeper.notify(*out.notification)
	}
}

func (keeper *TimeKeeper) notify(notification Notification) {
	notifier := keeper.options.Notifier
	if notifier.Permission() != PermissionGranted {
		return
	}
	if err := notifier.Notify(notification); err != nil {
		keeper.options.Logger.Debug("desktop notification failed", logging.Error(err))
	}
}

func (keeper *TimeKeeper) snapshotLocked() Snapshot {
	return Snapshot{
		Phase:            keeper.phase,
		RemainingSeconds: keeper.remaining,
		Running:          keeper.running,
		Paused:           keeper.paused,
		CompletedCycles:  keeper.completed,
		Config:           keeper.config,
	}
}

func (keeper *TimeKeeper) remainingLocked() time.Duration {
	return time.Duration(keeper.remaining) * time.Second
}

func (keeper *TimeKeeper) viewLocked() View {
	clock := FormatClock(keeper.remaining)
	return View{
		Clock:           clock,
		Phase:           keeper.phase,
		PhaseLabel:      keeper.phase.Label(),
		CompletedCycles: keeper.completed,
		Running:         keeper.running,
		Paused:          keeper.paused,
		Title:           clock + " - " + AppTitle,
	}
}

func (keeper *TimeKeeper) eventLocked(eventType EventType) Event {
	return Event{
		Type:      eventType,
		Phase:     keeper.phase,
		Remaining: keeper.remainingLocked(),
		Completed: keeper.completed,
		Running:   keeper.running,
		Paused:    keeper.paused,
		At:        keeper.options.Clock.Now(),
	}
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
