// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"
	"io"
	"log"
	"strings"
)

// Assembler is a two pass assembler for the Little Man Computer.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	File    string // Source name used in diagnostics.

	Tokens []Token        // Tokens of the last assembly, resolved.
	Label  map[string]int // Map of labels to mailboxes of the last assembly.
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var sb strings.Builder
	_, err = io.Copy(&sb, input)
	if err != nil {
		return
	}

	prog, err = asm.Assemble(sb.String())

	return
}

// Assemble translates source text into a Program.
// On error no program is returned, and the error is an *ErrSyntax
// carrying the source position.
func (asm *Assembler) Assemble(source string) (prog *Program, err error) {
	defer func() {
		var syntax *ErrSyntax
		if err != nil && errors.As(err, &syntax) {
			syntax.File = asm.File
		}
	}()

	asm.Tokens = nil
	clear(asm.Label)

	tokens, err := Lex(source)
	if err != nil {
		return
	}

	if asm.Verbose {
		for _, tok := range tokens {
			log.Printf("%v:%v: %v %v", tok.Line, tok.Column, tok.Kind, tok)
		}
	}

	res, err := Resolve(tokens)
	if err != nil {
		return
	}

	asm.Tokens = res.Tokens()
	asm.Label = res.Labels()

	if asm.Verbose {
		for label, mailbox := range asm.Label {
			log.Printf("label %v: %02d", label, mailbox)
		}
	}

	prog, err = Generate(res)
	if err != nil {
		prog = nil
		return
	}

	if asm.Verbose {
		log.Printf("%v: %d mailboxes", asm.File, len(prog.Opcodes))
	}

	return
}
