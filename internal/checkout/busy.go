package checkout

import "sync"

// busyFlag is the in-flight guard: a second submit while one is running is
// rejected outright rather than queued or cancelled.
type busyFlag struct {
	mu   sync.Mutex
	busy bool
}

func (f *busyFlag) acquire() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return false
	}
	f.busy = true
	return true
}

func (f *busyFlag) release() {
	f.mu.Lock()
	f.busy = false
	f.mu.Unlock()
}
