package flog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchDebouncerCoalescesEdits(t *testing.T) {
	fired := make(chan string, 8)
	d := NewSearchDebouncer(20*time.Millisecond, func(q string) { fired <- q })
	defer d.Stop()

	d.Update("o")
	d.Update("oa")
	d.Update("oats")

	select {
	case q := <-fired:
		assert.Equal(t, "oats", q)
	case <-time.After(time.Second):
		t.Fatal("debounced callback never fired")
	}

	select {
	case q := <-fired:
		t.Fatalf("superseded query %q must not fire", q)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSearchDebouncerFiresAgainAfterQuiet(t *testing.T) {
	fired := make(chan string, 8)
	d := NewSearchDebouncer(10*time.Millisecond, func(q string) { fired <- q })
	defer d.Stop()

	d.Update("first")
	require.Equal(t, "first", <-fired)

	d.Update("second")
	require.Equal(t, "second", <-fired)
}

func TestSearchDebouncerStop(t *testing.T) {
	fired := make(chan string, 1)
	d := NewSearchDebouncer(20*time.Millisecond, func(q string) { fired <- q })

	d.Update("never")
	d.Stop()

	select {
	case q := <-fired:
		t.Fatalf("stopped debouncer fired %q", q)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSearchDebouncerDefaultDelay(t *testing.T) {
	d := NewSearchDebouncer(0, func(string) {})
	defer d.Stop()
	assert.Equal(t, DefaultSearchDelay, d.delay)
}
