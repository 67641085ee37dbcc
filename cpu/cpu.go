package cpu

import (
	"fmt"
	"log"
	"strings"

	"github.com/ezrec/lmc/io"
)

// Channel is an I/O channel interface.
type Channel io.Channel

// State is the execution state of the machine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
	STATE_FAULTED = State(2) // faulted
)

// Cpu is the simulation context of a single machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Mailbox     [MAILBOX_COUNT]Word // Memory.
	Pc          int                 // Program counter.
	Accumulator int                 // Accumulator, wider than a mailbox.
	Negative    bool                // Sign flag, latched by SUB.
	State       State               // Execution state.

	Ticks int // Executed instruction counter.

	channel [3]Channel // IO channels.
}

// NewCpu creates a new machine with empty mailboxes.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// String returns the registers and all mailboxes as a string.
func (cpu *Cpu) String() string {
	var sb strings.Builder

	sign := '+'
	if cpu.Negative {
		sign = '-'
	}

	fmt.Fprintf(&sb, "acc: %4d  flag: %c  pc: %02d  %v\n", cpu.Accumulator, sign, cpu.Pc, cpu.State)
	for n, word := range cpu.Mailbox {
		mark := ' '
		if n == cpu.Pc {
			mark = '>'
		}
		fmt.Fprintf(&sb, "%c%02d:%04d", mark, n, int(word))
		if n%10 == 9 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}

	return sb.String()
}

// Reset the machine registers.
// - Clears the accumulator and sign flag.
// - Sets the program counter to mailbox 0.
// - Zeros statistics counters.
// - Rewinds all IO channels.
// Mailboxes are not modified.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Pc = 0
	cpu.Accumulator = 0
	cpu.Negative = false
	cpu.State = STATE_RUNNING
	cpu.Ticks = 0

	for _, channel := range cpu.channel {
		if channel == nil {
			continue
		}
		channel.Rewind()
	}
}

// SetChannel sets a channel index to a channel simulation model.
func (cpu *Cpu) SetChannel(index CodeChannel, channel Channel) {
	if int(index) < 0 || int(index) >= len(cpu.channel) {
		return
	}
	cpu.channel[int(index)] = channel
}

// GetChannel gets the channel simulation model by index.
func (cpu *Cpu) GetChannel(ch CodeChannel) (channel Channel, err error) {
	index := int(ch)
	if index < 0 || index >= len(cpu.channel) || cpu.channel[index] == nil {
		err = ErrChannelInvalid
		return
	}

	channel = cpu.channel[index]
	return
}

// Tick executes a single instruction cycle.
//
// Any error faults the machine. Ticking a halted or faulted
// machine returns ErrHalted or ErrFaulted.
func (cpu *Cpu) Tick() (err error) {
	switch cpu.State {
	case STATE_HALTED:
		err = ErrHalted
		return
	case STATE_FAULTED:
		err = ErrFaulted
		return
	}

	defer func() {
		if err != nil {
			cpu.State = STATE_FAULTED
		}
	}()

	if cpu.Pc < 0 || cpu.Pc >= MAILBOX_COUNT {
		err = ErrPcOverflow
		return
	}

	err = cpu.Execute(cpu.Mailbox[cpu.Pc])
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}

// Execute executes a single instruction word at the program counter.
func (cpu *Cpu) Execute(word Word) (err error) {
	if cpu.Verbose {
		log.Printf("%02d: %03d %v", cpu.Pc, int(word), word)
	}

	next := cpu.Pc + 1
	op, operand := word.Decode()

	switch {
	case word == WORD_HLT:
		cpu.State = STATE_HALTED
		return
	case word == WORD_INP:
		var ch Channel
		ch, err = cpu.GetChannel(CHANNEL_ID_INBOX)
		if err != nil {
			return
		}
		var value int
		value, err = ch.Receive()
		if err != nil {
			return
		}
		cpu.Accumulator = value
	case word == WORD_OUT:
		var ch Channel
		ch, err = cpu.GetChannel(CHANNEL_ID_OUTBOX)
		if err != nil {
			return
		}
		err = ch.Send(cpu.Accumulator)
		if err != nil {
			return
		}
	case op == OP_ADD:
		cpu.Accumulator += int(cpu.Mailbox[operand])
	case op == OP_SUB:
		cpu.Accumulator -= int(cpu.Mailbox[operand])
		cpu.Negative = cpu.Accumulator < 0
	case op == OP_STA:
		cpu.Mailbox[operand] = Word(cpu.Accumulator)
	case op == OP_LDA:
		cpu.Accumulator = int(cpu.Mailbox[operand])
	case op == OP_BRA:
		next = operand
	case op == OP_BRZ:
		if cpu.Accumulator == 0 {
			next = operand
		}
	case op == OP_BRP:
		if cpu.Accumulator >= 0 {
			next = operand
		}
	default:
		err = ErrOpcode(word)
		return
	}

	if next >= MAILBOX_COUNT {
		err = ErrPcOverflow
		return
	}

	cpu.Pc = next

	return
}
