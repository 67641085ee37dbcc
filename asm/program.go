package asm

import (
	"fmt"
	"strings"

	"github.com/ezrec/lmc/cpu"
)

// Opcode is one emitted machine word with its source location.
type Opcode struct {
	LineNo  int      // Source line of the instruction.
	Column  int      // Source column of the instruction.
	Mailbox int      // Mailbox the word is loaded into.
	Words   []string // Source words, mnemonic and operand.
	Code    cpu.Word // Generated machine word.
}

// Program is the assembled listing.
type Program struct {
	Opcodes []Opcode
}

// Debug returns the opcode loaded into a mailbox, or nil.
func (prog *Program) Debug(mailbox int) (op *Opcode) {
	for n := range prog.Opcodes {
		if prog.Opcodes[n].Mailbox == mailbox {
			op = &prog.Opcodes[n]
			break
		}
	}

	return
}

// Codes returns the machine words, in mailbox order.
func (prog *Program) Codes() (codes []cpu.Word) {
	for _, op := range prog.Opcodes {
		codes = append(codes, op.Code)
	}

	return
}

// MachineCode returns the program as a string of 3 digit words.
func (prog *Program) MachineCode() string {
	var sb strings.Builder

	for _, op := range prog.Opcodes {
		fmt.Fprintf(&sb, "%03d", int(op.Code))
	}

	return sb.String()
}

// String returns a listing of the program, one mailbox per line.
func (prog *Program) String() string {
	var sb strings.Builder

	for _, op := range prog.Opcodes {
		fmt.Fprintf(&sb, "%02d: %03d  %4d:%-3d %v\n", op.Mailbox, int(op.Code), op.LineNo, op.Column, strings.Join(op.Words, " "))
	}

	return sb.String()
}
