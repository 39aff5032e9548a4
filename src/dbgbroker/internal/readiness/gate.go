// Package readiness provides the one-shot gate a debug session waits on until CMake listens on its pipe.
package readiness

import (
	"sync"
)

// Signal marks a Gate satisfied. Only the first call has an effect.
type Signal func()

// Gate is pending until its Signal is called, then satisfied for good.
type Gate struct {
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a pending gate and the signal that satisfies it.
func New() (*Gate, Signal) {
	g := &Gate{done: make(chan struct{})}
	return g, g.signal
}

func (g *Gate) signal() {
	g.closeOnce.Do(func() {
		close(g.done)
	})
}

// Done returns a channel that is closed once the gate is satisfied.
func (g *Gate) Done() <-chan struct{} {
	return g.done
}

// Satisfied reports whether the signal has fired.
func (g *Gate) Satisfied() bool {
	select {
	case <-g.done:
		return true
	default:
		return false
	}
}
