// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ezrec/lmc/asm"
	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/io"
)

// Emulator state. CPU + IO channels + optional source listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *asm.Program // Source listing of the running program, if any.
	Code     string       // Machine code loaded on Reset.

	Tape io.Tape // Default inbox and outbox.

	// Trace, if set, is called before every instruction cycle.
	// An error from Trace stops the emulator.
	Trace func(emu *Emulator) error
}

// NewEmulator creates a new emulator with the tape on both mailbox channels.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	emu.Cpu.SetChannel(cpu.CHANNEL_ID_INBOX, &emu.Tape)
	emu.Cpu.SetChannel(cpu.CHANNEL_ID_OUTBOX, &emu.Tape)

	return
}

// SetInbox replaces the channel read by INP.
func (emu *Emulator) SetInbox(ch io.Channel) {
	emu.Cpu.SetChannel(cpu.CHANNEL_ID_INBOX, ch)
}

// SetOutbox replaces the channel written by OUT.
func (emu *Emulator) SetOutbox(ch io.Channel) {
	emu.Cpu.SetChannel(cpu.CHANNEL_ID_OUTBOX, ch)
}

// Reset loads the machine code and resets the CPU.
// If Code is empty the machine code of Program is used.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	if len(emu.Code) == 0 && emu.Program != nil {
		emu.Cpu.LoadWords(emu.Program.Codes())
	} else {
		err = emu.Cpu.Load(emu.Code)
		if err != nil {
			return
		}
	}

	emu.Cpu.Reset()

	return
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the source line number for the executing mailbox,
// or 0 if there is no listing.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	op := emu.Program.Debug(emu.Cpu.Pc)
	if op == nil {
		return 0
	}

	return op.LineNo
}

// Tick performs a single instruction cycle of the emulator.
// Returns done once the machine has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Pc: pc, Err: err}
		}
	}()

	if emu.Trace != nil && emu.Cpu.State == cpu.STATE_RUNNING {
		err = emu.Trace(emu)
		if err != nil {
			return
		}
	}

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	done = emu.Cpu.State == cpu.STATE_HALTED

	if done && emu.Verbose {
		log.Printf("emulator: halted after %d ticks", emu.Ticks())
	}

	return
}

// Run ticks the emulator until it halts or fails.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// String returns the machine state, with the source of the current
// instruction if a listing is present.
func (emu *Emulator) String() string {
	var sb strings.Builder

	sb.WriteString(emu.Cpu.String())

	if emu.Program != nil {
		op := emu.Program.Debug(emu.Cpu.Pc)
		if op != nil {
			fmt.Fprintf(&sb, "line %d: %v\n", op.LineNo, strings.Join(op.Words, " "))
		}
	}

	return sb.String()
}
