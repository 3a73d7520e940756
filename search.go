package flog

import (
	"sync"
	"time"
)

// DefaultSearchDelay is the debounce window for live search-as-you-type.
const DefaultSearchDelay = 500 * time.Millisecond

// SearchDebouncer coalesces rapid query edits into a single callback. The
// callback fires on a timer goroutine after the delay elapses, and only if
// the submitted text is still the most recent one. A superseded query is
// dropped so its result cannot overwrite a newer one.
type SearchDebouncer struct {
	delay time.Duration
	fire  func(query string)

	mu      sync.Mutex
	timer   *time.Timer
	current string
}

// NewSearchDebouncer constructs a debouncer invoking fire for queries that
// survive the delay window. A non-positive delay uses DefaultSearchDelay.
func NewSearchDebouncer(delay time.Duration, fire func(query string)) *SearchDebouncer {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &SearchDebouncer{delay: delay, fire: fire}
}

// Update records the latest query text and (re)starts the delay window.
func (d *SearchDebouncer) Update(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current = query
	if d.timer != nil {
		d.timer.Stop()
	}
	q := query
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		still := d.current == q
		d.mu.Unlock()
		if still {
			d.fire(q)
		}
	})
}

// Stop cancels any pending callback.
func (d *SearchDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}
