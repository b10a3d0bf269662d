// Package watcher polls the clipboard for text that classifies as a git
// repository URL and notifies a caller-supplied pair of callbacks on
// detected / no-repository transitions.
package watcher

import (
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/NicabarNimble/go-gitgrab/internal/urlutils"
)

// DefaultInterval is the poll cadence used when none is configured.
const DefaultInterval = time.Second

// ReadFunc returns the current clipboard text. Read failures are treated
// as "no text", never propagated.
type ReadFunc func() (string, error)

// Callbacks receive watcher state transitions. OnRepositoryDetected
// fires on every tick where a URL is recognized, including repeated
// identical samples; callers must be idempotent. OnNoRepository fires
// once when a previously detected repository disappears from the
// clipboard.
type Callbacks struct {
	OnRepositoryDetected func(urlutils.RepositoryReference)
	OnNoRepository       func()
}

// Watcher is the Idle/Detected state machine over a sequential poll
// loop. Each tick's read and classification completes before the next
// tick is scheduled, so clipboard reads never overlap.
type Watcher struct {
	interval  time.Duration
	read      ReadFunc
	callbacks Callbacks

	mu      sync.Mutex
	current *urlutils.RepositoryReference

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
	started  bool
}

// New creates a Watcher. A non-positive interval falls back to
// DefaultInterval; a nil read function falls back to the system
// clipboard.
func New(interval time.Duration, read ReadFunc, callbacks Callbacks) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if read == nil {
		read = clipboard.ReadAll
	}
	return &Watcher{
		interval:  interval,
		read:      read,
		callbacks: callbacks,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start runs one immediate check and then begins the periodic cadence in
// a background goroutine. Starting an already started watcher is a
// no-op.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.mu.Unlock()

	go w.run()
}

// Stop cancels the periodic tick and waits for the loop to exit. An
// in-flight tick completes; no further ticks are scheduled after Stop
// returns. Stopping a watcher that never started is safe.
func (w *Watcher) Stop() {
	w.mu.Lock()
	started := w.started
	w.mu.Unlock()

	w.stopOnce.Do(func() { close(w.stop) })
	if started {
		<-w.done
	}
}

// Current returns the currently detected repository, if any.
func (w *Watcher) Current() (urlutils.RepositoryReference, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.current == nil {
		return urlutils.RepositoryReference{}, false
	}
	return *w.current, true
}

func (w *Watcher) run() {
	defer close(w.done)

	w.tick()

	timer := time.NewTimer(w.interval)
	defer timer.Stop()
	for {
		select {
		case <-w.stop:
			return
		case <-timer.C:
			w.tick()
			// Schedule the next tick only after this one finished.
			timer.Reset(w.interval)
		}
	}
}

func (w *Watcher) tick() {
	text, err := w.read()
	if err != nil {
		text = ""
	}

	repo, ok := urlutils.Parse(text)
	if ok {
		w.mu.Lock()
		w.current = &repo
		w.mu.Unlock()
		if w.callbacks.OnRepositoryDetected != nil {
			w.callbacks.OnRepositoryDetected(repo)
		}
		return
	}

	w.mu.Lock()
	hadRepo := w.current != nil
	w.current = nil
	w.mu.Unlock()
	if hadRepo && w.callbacks.OnNoRepository != nil {
		w.callbacks.OnNoRepository()
	}
}
