package cpu

import (
	"fmt"
)

// MAILBOX_COUNT is the number of addressable mailboxes in the machine.
const MAILBOX_COUNT = 100

// Word is the content of a single mailbox.
//
// As an instruction it is a 3 digit decimal value, the hundreds digit
// selecting the operation and the lower two digits the operand mailbox.
// As data it holds any value the accumulator can hold.
type Word int

// Operation classes, as the hundreds digit of a word.
// Digit 4 is unassigned.
const (
	OP_HLT = Word(000) // hlt
	OP_ADD = Word(100) // add
	OP_SUB = Word(200) // sub
	OP_STA = Word(300) // sta
	OP_LDA = Word(500) // lda
	OP_BRA = Word(600) // bra
	OP_BRZ = Word(700) // brz
	OP_BRP = Word(800) // brp
	OP_IO  = Word(900) // io
)

// CodeChannel is an IO channel index, the operand of an OP_IO word.
type CodeChannel int

//go:generate go tool stringer -linecomment -type=CodeChannel
const (
	CHANNEL_ID_INBOX  = CodeChannel(1) // inbox
	CHANNEL_ID_OUTBOX = CodeChannel(2) // outbox
)

// Fixed words.
const (
	WORD_HLT = OP_HLT
	WORD_INP = OP_IO + Word(CHANNEL_ID_INBOX)
	WORD_OUT = OP_IO + Word(CHANNEL_ID_OUTBOX)
)

// MakeWord creates an instruction word from an operation and operand mailbox.
func MakeWord(op Word, operand int) Word {
	return op + Word(operand)
}

// Decode splits the word into its operation class and operand.
func (w Word) Decode() (op Word, operand int) {
	op = (w / 100) * 100
	operand = int(w - op)
	return
}

// HasOperand returns true if the operation addresses a mailbox.
func (w Word) HasOperand() bool {
	op, _ := w.Decode()
	switch op {
	case OP_ADD, OP_SUB, OP_STA, OP_LDA, OP_BRA, OP_BRZ, OP_BRP:
		return true
	}
	return false
}

// Mnemonic returns the assembly mnemonic of an instruction word,
// or the empty string if the word is not a valid instruction.
func (w Word) Mnemonic() string {
	switch w {
	case WORD_HLT:
		return "HLT"
	case WORD_INP:
		return "INP"
	case WORD_OUT:
		return "OUT"
	}

	if w < 0 || w > 999 {
		return ""
	}

	op, _ := w.Decode()
	switch op {
	case OP_ADD:
		return "ADD"
	case OP_SUB:
		return "SUB"
	case OP_STA:
		return "STA"
	case OP_LDA:
		return "LDA"
	case OP_BRA:
		return "BRA"
	case OP_BRZ:
		return "BRZ"
	case OP_BRP:
		return "BRP"
	}

	return ""
}

// String returns the assembly language representation of the word.
// Words that do not decode to an instruction are shown as data.
func (w Word) String() string {
	mnemonic := w.Mnemonic()
	switch {
	case mnemonic == "":
		return fmt.Sprintf("DAT %d", int(w))
	case w.HasOperand():
		_, operand := w.Decode()
		return fmt.Sprintf("%v %02d", mnemonic, operand)
	}
	return mnemonic
}
