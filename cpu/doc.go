// Package cpu implements the Little Man Computer.
//
// The machine has 100 mailboxes of 3 decimal digits each, a program counter
// and an accumulator. A sign flag is latched by SUB for inspection only.
// Machine code is a string of 3 digit words loaded into the mailboxes
// starting at mailbox 0.
package cpu
