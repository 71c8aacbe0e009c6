// registry.go
package shmcell

import "sync"

// Handle is an opaque identifier for a registered Cell.
// The zero handle is invalid.
type Handle uint32

var (
	regMu   sync.RWMutex
	reg            = map[Handle]*Cell{}
	nextHdl Handle = 1
)

// New allocates a Cell, registers it, and returns the Handle and *Cell.
func New() (Handle, *Cell) {
	c := &Cell{}
	regMu.Lock()
	h := nextHdl
	nextHdl++
	reg[h] = c
	regMu.Unlock()
	return h, c
}

// Get returns the *Cell for a Handle, or nil if the handle is zero or unknown.
func Get(h Handle) *Cell {
	if h == 0 {
		return nil
	}
	regMu.RLock()
	c := reg[h]
	regMu.RUnlock()
	return c
}

// Close removes a Handle from the registry. It does not invalidate the
// underlying Cell; any existing pointers remain usable.
func Close(h Handle) {
	regMu.Lock()
	delete(reg, h)
	regMu.Unlock()
}
