package tracker

import (
	"errors"
	"sync"
	"time"

	"price-tracker/src/logger"
	"price-tracker/src/models"
)

// ErrImportRunning is returned by Begin when a job already holds the tracker.
var ErrImportRunning = errors.New("an import is already running")

// subscriberBuffer bounds how many status events a slow consumer can lag
// behind before old events are replaced by newer ones.
const subscriberBuffer = 8

// -----------------------------------------------------------------------------
// StatusTracker owns the shared import status. All reads go through Snapshot
// and all writes go through Begin/Update/Finish/Fail, so handlers and the
// import worker never touch the struct directly.
// -----------------------------------------------------------------------------

type StatusTracker struct {
	mu          sync.Mutex
	status      models.MImportStatus
	subscribers map[chan models.MImportStatus]struct{}
	staleAfter  time.Duration
	staleTimer  *time.Timer
	jobGen      uint64
	Logger      *logger.Logger
}

// MStatusUpdate is a partial update. Nil fields leave the current value
// untouched. A non-nil Message is also appended to the log.
type MStatusUpdate struct {
	Message     *string
	CurrentTask *string
	Progress    *int
}

// -----------------------------------------------------------------------------

func NewStatusTracker(staleAfter time.Duration, log *logger.Logger) *StatusTracker {
	t := &StatusTracker{
		subscribers: make(map[chan models.MImportStatus]struct{}),
		staleAfter:  staleAfter,
		Logger:      log,
	}
	t.status = idleStatus()
	return t
}

func idleStatus() models.MImportStatus {
	return models.MImportStatus{
		Running:     false,
		Message:     "Idle",
		CurrentTask: "N/A",
		Progress:    0,
		Error:       false,
		Log:         []string{},
	}
}

// -----------------------------------------------------------------------------

// Reset puts the tracker back to the idle baseline regardless of current state.
func (t *StatusTracker) Reset() {
	t.mu.Lock()
	t.stopWatchdogLocked()
	t.status = idleStatus()
	snap := t.snapshotLocked()
	t.mu.Unlock()

	t.publish(snap)
}

// -----------------------------------------------------------------------------

// Begin claims the tracker for a new job. It fails without touching the
// current state if a job is already running.
func (t *StatusTracker) Begin(task string) error {
	t.mu.Lock()
	if t.status.Running {
		t.mu.Unlock()
		return ErrImportRunning
	}

	msg := "Import started"
	t.status = models.MImportStatus{
		Running:     true,
		Message:     msg,
		CurrentTask: task,
		Progress:    0,
		Error:       false,
		Log:         []string{msg},
	}
	t.jobGen++
	t.startWatchdogLocked()
	snap := t.snapshotLocked()
	t.mu.Unlock()

	t.publish(snap)
	return nil
}

// -----------------------------------------------------------------------------

// Update applies a partial update and broadcasts the result. An update that
// changes nothing at the value level publishes nothing.
func (t *StatusTracker) Update(u MStatusUpdate) {
	t.mu.Lock()
	before := t.status
	if u.Message != nil {
		t.status.Message = *u.Message
		t.status.Log = append(t.status.Log, *u.Message)
	}
	if u.CurrentTask != nil {
		t.status.CurrentTask = *u.CurrentTask
	}
	if u.Progress != nil {
		t.status.Progress = *u.Progress
	}
	changed := !t.status.Equal(before)
	if changed && t.status.Running {
		// A reporting job is a live job; push the stale deadline out
		t.startWatchdogLocked()
	}
	snap := t.snapshotLocked()
	t.mu.Unlock()

	if changed {
		t.publish(snap)
	}
}

// Progress is a shorthand for the common message+progress update.
func (t *StatusTracker) Progress(progress int, message string) {
	t.Update(MStatusUpdate{Progress: &progress, Message: &message})
}

// Task is a shorthand for switching the current task with a log entry.
func (t *StatusTracker) Task(task string, message string) {
	t.Update(MStatusUpdate{CurrentTask: &task, Message: &message})
}

// -----------------------------------------------------------------------------

// Finish marks the job complete.
func (t *StatusTracker) Finish(message string) {
	t.terminate(message, false)
}

// Fail marks the job failed.
func (t *StatusTracker) Fail(message string) {
	t.terminate(message, true)
}

func (t *StatusTracker) terminate(message string, failed bool) {
	t.mu.Lock()
	t.stopWatchdogLocked()
	t.status.Running = false
	t.status.Error = failed
	t.status.Message = message
	t.status.CurrentTask = "N/A"
	// Terminal state always carries progress 100; the error flag alone
	// distinguishes failure from success.
	t.status.Progress = 100
	t.status.Log = append(t.status.Log, message)
	snap := t.snapshotLocked()
	t.mu.Unlock()

	t.publish(snap)
}

// -----------------------------------------------------------------------------

// Snapshot returns a deep copy. Mutating the returned value never affects
// the tracker.
func (t *StatusTracker) Snapshot() models.MImportStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *StatusTracker) snapshotLocked() models.MImportStatus {
	snap := t.status
	snap.Log = make([]string, len(t.status.Log))
	copy(snap.Log, t.status.Log)
	return snap
}

// -----------------------------------------------------------------------------
// Subscriptions
// -----------------------------------------------------------------------------

// Subscribe registers a status listener. The current snapshot is delivered
// immediately, followed by every subsequent change.
func (t *StatusTracker) Subscribe() chan models.MImportStatus {
	ch := make(chan models.MImportStatus, subscriberBuffer)

	t.mu.Lock()
	t.subscribers[ch] = struct{}{}
	snap := t.snapshotLocked()
	t.mu.Unlock()

	ch <- snap
	return ch
}

// Unsubscribe removes the listener and closes its channel.
func (t *StatusTracker) Unsubscribe(ch chan models.MImportStatus) {
	t.mu.Lock()
	_, ok := t.subscribers[ch]
	if ok {
		delete(t.subscribers, ch)
	}
	t.mu.Unlock()

	if ok {
		close(ch)
	}
}

// publish fans out a snapshot without ever blocking the caller. When a
// subscriber's buffer is full, the oldest queued event is dropped so the
// consumer always ends up with the freshest state.
func (t *StatusTracker) publish(snap models.MImportStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for ch := range t.subscribers {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

// -----------------------------------------------------------------------------
// Watchdog
// -----------------------------------------------------------------------------

// The watchdog recovers from workers that die without reporting. A job that
// goes staleAfter without any update is force-failed so new imports are not
// locked out forever; each update re-arms the timer. The generation check
// keeps a late timer from a previous job away from its successor.
func (t *StatusTracker) startWatchdogLocked() {
	if t.staleAfter <= 0 {
		return
	}
	t.stopWatchdogLocked()
	gen := t.jobGen
	t.staleTimer = time.AfterFunc(t.staleAfter, func() { t.expireStale(gen) })
}

func (t *StatusTracker) stopWatchdogLocked() {
	if t.staleTimer != nil {
		t.staleTimer.Stop()
		t.staleTimer = nil
	}
}

func (t *StatusTracker) expireStale(gen uint64) {
	t.mu.Lock()
	stale := t.status.Running && t.jobGen == gen
	t.mu.Unlock()

	if !stale {
		return
	}
	if t.Logger != nil {
		t.Logger.Warning("Import exceeded %v without completing. Marking as failed.", t.staleAfter)
	}
	t.Fail("Import timed out")
}
