package mines

import (
	"sync"
	"time"

	"github.com/coder/quartz"
)

const DefaultTransitionDelay = 3 * time.Second

// Deferred is a task scheduled to run once after a delay. Cancel guarantees
// the task has not run and will not run once it returns true.
type Deferred struct {
	mu       sync.Mutex
	timer    *quartz.Timer
	canceled bool
	fired    bool
}

// Schedule runs fn on its own goroutine after delay unless the returned
// task is canceled first.
func Schedule(clock quartz.Clock, delay time.Duration, fn func(), tags ...string) *Deferred {
	d := &Deferred{}
	d.timer = clock.AfterFunc(delay, func() {
		d.mu.Lock()
		if d.canceled {
			d.mu.Unlock()
			return
		}
		d.fired = true
		d.mu.Unlock()
		fn()
	}, tags...)
	return d
}

// Cancel stops the task. It returns false when the task already fired.
func (d *Deferred) Cancel() bool {
	if d == nil {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fired {
		return false
	}
	d.canceled = true
	d.timer.Stop()
	return true
}

func (d *Deferred) Fired() bool {
	if d == nil {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fired
}
