package asm

import (
	"fmt"

	"github.com/ezrec/lmc/cpu"
)

// TokenKind is the lexical class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_INSTRUCTION = TokenKind(1) // instruction
	TOKEN_NUMBER      = TokenKind(2) // number
	TOKEN_LABEL       = TokenKind(3) // label
	TOKEN_EXPRESSION  = TokenKind(4) // expression
)

// ADDRESS_UNDEFINED is the address of a label with no definition.
const ADDRESS_UNDEFINED = -1

// TOKEN_TEXT_LIMIT is the maximum length of an identifier.
const TOKEN_TEXT_LIMIT = 16

// Token is a single lexical unit of the source.
type Token struct {
	Kind    TokenKind
	Text    string // Uppercase identifier, or expression body.
	Address int    // Mailbox, number value, or ADDRESS_UNDEFINED.
	Line    int
	Column  int
}

func (tok Token) String() string {
	switch tok.Kind {
	case TOKEN_NUMBER:
		return fmt.Sprintf("%d", tok.Address)
	case TOKEN_EXPRESSION:
		return "$(" + tok.Text + ")"
	}
	return tok.Text
}

// DAT is the data directive.
const DAT = "DAT"

// mnemonicMap maps instruction mnemonics to their operation class.
var mnemonicMap = map[string]cpu.Word{
	"HLT": cpu.WORD_HLT,
	"COB": cpu.WORD_HLT,
	"ADD": cpu.OP_ADD,
	"SUB": cpu.OP_SUB,
	"STA": cpu.OP_STA,
	"LDA": cpu.OP_LDA,
	"BRA": cpu.OP_BRA,
	"BRZ": cpu.OP_BRZ,
	"BRP": cpu.OP_BRP,
	"INP": cpu.WORD_INP,
	"OUT": cpu.WORD_OUT,
}

// IsMnemonic returns true if text is an instruction or the DAT directive.
func IsMnemonic(text string) bool {
	if text == DAT {
		return true
	}
	_, ok := mnemonicMap[text]
	return ok
}

// takesOperand returns true if the token is an instruction that
// requires a mailbox operand.
func (tok Token) takesOperand() bool {
	if tok.Kind != TOKEN_INSTRUCTION {
		return false
	}
	op, ok := mnemonicMap[tok.Text]
	return ok && op.HasOperand()
}
