package asm

import (
	"github.com/ezrec/lmc/cpu"
)

// Limits of operand values.
const (
	OPERAND_LIMIT = cpu.MAILBOX_COUNT - 1 // Mailbox operand.
	DATA_LIMIT    = 999                   // DAT value.
)

// generator walks resolved tokens emitting opcodes.
type generator struct {
	res     *Resolved
	index   int
	opcodes []Opcode
}

// Generate emits one machine word for every instruction in the resolved
// tokens. It stops at the first error, which is located by an ErrSyntax.
func Generate(res *Resolved) (prog *Program, err error) {
	gen := &generator{res: res}

	tokens := res.tokens
	for gen.index = 0; gen.index < len(tokens); gen.index++ {
		tok := tokens[gen.index]
		switch tok.Kind {
		case TOKEN_NUMBER, TOKEN_EXPRESSION:
			err = syntaxError(tok, ErrNumberUnexpected)
			return
		case TOKEN_LABEL:
			// Definitions emit nothing.
			continue
		case TOKEN_INSTRUCTION:
			err = gen.instruction(tok)
			if err != nil {
				return
			}
		}
	}

	prog = &Program{
		Opcodes: gen.opcodes,
	}

	return
}

// next returns the token following the current one, if any.
func (gen *generator) next() (tok Token, ok bool) {
	if gen.index+1 >= len(gen.res.tokens) {
		return
	}
	return gen.res.tokens[gen.index+1], true
}

// value returns the numeric value of an operand token.
func (gen *generator) value(tok Token, limit int) (value int, err error) {
	switch tok.Kind {
	case TOKEN_LABEL:
		if tok.Address == ADDRESS_UNDEFINED {
			err = ErrLabelUndefined(tok.Text)
			return
		}
		value = tok.Address
	case TOKEN_EXPRESSION:
		value, err = evaluate(tok.Text, gen.res.label)
		if err != nil {
			return
		}
	default:
		value = tok.Address
	}

	if value < 0 || value > limit {
		err = ErrOperandRange{Value: value, Limit: limit}
		return
	}

	return
}

func (gen *generator) instruction(tok Token) (err error) {
	op := Opcode{
		LineNo:  tok.Line,
		Column:  tok.Column,
		Mailbox: tok.Address,
		Words:   []string{tok.Text},
	}

	switch {
	case tok.Text == DAT:
		arg, ok := gen.next()
		if ok && (arg.Kind == TOKEN_NUMBER || arg.Kind == TOKEN_EXPRESSION) {
			var value int
			value, err = gen.value(arg, DATA_LIMIT)
			if err != nil {
				err = syntaxError(arg, err)
				return
			}
			op.Code = cpu.Word(value)
			op.Words = append(op.Words, arg.String())
			gen.index++
		}
	case tok.takesOperand():
		arg, ok := gen.next()
		if !ok {
			err = syntaxError(tok, ErrOperandMissing(tok.Text))
			return
		}
		if arg.Kind == TOKEN_INSTRUCTION {
			err = syntaxError(arg, ErrOperandMissing(tok.Text))
			return
		}
		var value int
		value, err = gen.value(arg, OPERAND_LIMIT)
		if err != nil {
			err = syntaxError(arg, err)
			return
		}
		op.Code = cpu.MakeWord(mnemonicMap[tok.Text], value)
		op.Words = append(op.Words, arg.String())
		gen.index++
	default:
		op.Code = mnemonicMap[tok.Text]
	}

	gen.opcodes = append(gen.opcodes, op)

	return
}
