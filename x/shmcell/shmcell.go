// Package shmcell provides a single-writer, single-reader publication cell
// for the latest converted temperature pair. The sampling context is the sole
// writer; the display-refresh context is the sole reader. Both deci values are
// packed into one 32-bit word, so a snapshot can never mix values from two
// different publish calls: the reader is at worst one cycle behind.
package shmcell

import (
	"sync/atomic"

	"tempdisplay-go/types"
)

// Cell is the publication point. The zero value is ready to use and reads as
// a 0.0°/0.0° pair until the first publish.
type Cell struct {
	v   atomic.Uint32 // DeciC in the high half, DeciF in the low half
	pub atomic.Uint32 // publish counter, for tracing
}

// Publish stores a new pair. Wait-free; callable from a timer callback.
func (c *Cell) Publish(r types.TemperatureReading) {
	c.v.Store(uint32(uint16(r.DeciC))<<16 | uint32(uint16(r.DeciF)))
	c.pub.Add(1)
}

// Snapshot returns the latest fully published pair. Wait-free; never torn.
func (c *Cell) Snapshot() types.TemperatureReading {
	w := c.v.Load()
	return types.TemperatureReading{
		DeciC: int16(uint16(w >> 16)),
		DeciF: int16(uint16(w)),
	}
}

// Publishes returns the number of publish calls so far.
func (c *Cell) Publishes() uint32 { return c.pub.Load() }
