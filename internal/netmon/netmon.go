// Package netmon tracks network reachability. The monitor is purely
// passive: it reports OS-visible interface state and never probes remote
// hosts.
package netmon

import (
	"net"
	"sync"
	"sync/atomic"
	"time"
)

// Monitor reports whether the device currently has network connectivity.
// The request layer reads it synchronously before every call.
type Monitor interface {
	Online() bool
}

// Static is a fixed-answer Monitor for tests and for callers that manage
// connectivity themselves.
type Static bool

func (s Static) Online() bool { return bool(s) }

// InterfaceMonitor samples the OS interface table on a ticker and caches a
// single boolean. It starts observing on construction and stops on Close.
type InterfaceMonitor struct {
	interval time.Duration
	online   atomic.Bool
	done     chan struct{}
	once     sync.Once
}

// NewInterfaceMonitor constructs a monitor sampling every interval
// (default 5s) and takes an initial sample synchronously.
func NewInterfaceMonitor(interval time.Duration) *InterfaceMonitor {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	m := &InterfaceMonitor{
		interval: interval,
		done:     make(chan struct{}),
	}
	m.online.Store(probe())
	go m.loop()
	return m
}

// Online returns the most recent sample.
func (m *InterfaceMonitor) Online() bool { return m.online.Load() }

// Close stops the sampling goroutine. Safe to call multiple times.
func (m *InterfaceMonitor) Close() error {
	m.once.Do(func() { close(m.done) })
	return nil
}

func (m *InterfaceMonitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.online.Store(probe())
		case <-m.done:
			return
		}
	}
}

// probe reports whether any non-loopback interface is up and addressed.
func probe() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false
	}
	return hasUsable(ifaces)
}

func hasUsable(ifaces []net.Interface) bool {
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil || len(addrs) == 0 {
			continue
		}
		return true
	}
	return false
}
