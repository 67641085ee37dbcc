// Package io provides the I/O channels for the Little Man Computer.
// The inbox is read by INP and the outbox is written by OUT, one
// integer value per instruction. Tape connects a channel to line
// oriented text streams, Queue holds values in memory.
package io

// Channel defines the interface for all I/O channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive reads the next value from the channel.
	Receive() (value int, err error)
	// Send writes a single value to the channel.
	Send(value int) error
}
