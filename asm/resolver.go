package asm

import (
	"maps"
	"slices"

	"github.com/ezrec/lmc/cpu"
)

// Resolved is a token sequence with every instruction placed in a mailbox
// and every label bound to the mailbox of its definition.
// A Resolved is not modified after Resolve returns it.
type Resolved struct {
	tokens []Token        // Tokens, in source order.
	label  map[string]int // Map of defined labels to mailboxes.
}

// Resolve assigns mailboxes and binds labels.
//
// Each instruction, DAT included, takes the next mailbox starting at 0.
// A label right after an operand-taking instruction is a reference;
// any other label is a definition of the next free mailbox. When a label
// is defined more than once the last definition wins. References to a
// label that is never defined keep ADDRESS_UNDEFINED.
//
// The input tokens are not modified.
func Resolve(tokens []Token) (res *Resolved, err error) {
	label := make(map[string]int)
	resolved := slices.Clone(tokens)

	// Pass 1: mailbox assignment and label definitions.
	mailbox := 0
	for n := range resolved {
		tok := &resolved[n]
		switch tok.Kind {
		case TOKEN_INSTRUCTION:
			if mailbox >= cpu.MAILBOX_COUNT {
				err = syntaxError(*tok, ErrProgramTooLarge)
				return
			}
			tok.Address = mailbox
			mailbox++
		case TOKEN_LABEL:
			if n > 0 && resolved[n-1].takesOperand() {
				continue
			}
			label[tok.Text] = mailbox
		}
	}

	// Pass 2: bind every label, definition or reference.
	for n := range resolved {
		tok := &resolved[n]
		if tok.Kind != TOKEN_LABEL {
			continue
		}
		address, ok := label[tok.Text]
		if !ok {
			address = ADDRESS_UNDEFINED
		}
		tok.Address = address
	}

	res = &Resolved{
		tokens: resolved,
		label:  label,
	}

	return
}

// Tokens returns a copy of the resolved tokens.
func (res *Resolved) Tokens() []Token {
	return slices.Clone(res.tokens)
}

// Labels returns a copy of the label definitions.
func (res *Resolved) Labels() map[string]int {
	return maps.Clone(res.label)
}
