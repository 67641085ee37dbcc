package cpu

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted         = errors.New(f("halted"))
	ErrFaulted        = errors.New(f("faulted"))
	ErrPcOverflow     = errors.New(f("program counter past last mailbox"))
	ErrChannelInvalid = errors.New(f("channel invalid"))

	// Load errors
	ErrLoadOverflow = errors.New(f("machine code exceeds %d mailboxes", MAILBOX_COUNT))
)

// ErrOpcode is an unrecognized instruction word.
type ErrOpcode Word

func (eo ErrOpcode) Error() string {
	return f("unknown opcode '%03d'", int(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrLoadCharacter is a non-numeric character in machine code text.
type ErrLoadCharacter struct {
	Char byte
	Pos  int
}

func (err ErrLoadCharacter) Error() string {
	return f("non-numeric character '%c' given at position %d", err.Char, err.Pos)
}
