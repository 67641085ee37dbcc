package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func generate(program []string) (prog *Program, err error) {
	tokens, err := Lex(strings.Join(program, "\n"))
	if err != nil {
		return
	}
	res, err := Resolve(tokens)
	if err != nil {
		return
	}
	return Generate(res)
}

func TestGenerate_Opcodes(t *testing.T) {
	table := []struct {
		source string
		code   string
	}{
		{"HLT", "000"},
		{"COB", "000"},
		{"ADD 5", "105"},
		{"SUB 99", "299"},
		{"STA 10", "310"},
		{"LDA 0", "500"},
		{"BRA 1", "601"},
		{"BRZ 42", "742"},
		{"BRP 7", "807"},
		{"INP", "901"},
		{"OUT", "902"},
		{"DAT 5", "005"},
		{"DAT 999", "999"},
		{"DAT", "000"},
	}

	for _, entry := range table {
		assert := assert.New(t)

		prog, err := generate([]string{entry.source})
		assert.NoError(err, entry.source)
		if err != nil {
			continue
		}
		assert.Equal(entry.code, prog.MachineCode(), entry.source)
	}
}

func TestGenerate_Difference(t *testing.T) {
	assert := assert.New(t)

	prog, err := generate([]string{
		"INP",
		"STA 99",
		"INP",
		"SUB 99",
		"BRP POS",
		"LDA 99",
		"OUT",
		"HLT",
		"POS OUT",
		"HLT",
	})
	assert.NoError(err)
	assert.Equal("901399901299808599902000902000", prog.MachineCode())

	expected := []Opcode{
		{1, 1, 0, []string{"INP"}, 901},
		{2, 1, 1, []string{"STA", "99"}, 399},
		{3, 1, 2, []string{"INP"}, 901},
		{4, 1, 3, []string{"SUB", "99"}, 299},
		{5, 1, 4, []string{"BRP", "POS"}, 808},
		{6, 1, 5, []string{"LDA", "99"}, 599},
		{7, 1, 6, []string{"OUT"}, 902},
		{8, 1, 7, []string{"HLT"}, 0},
		{9, 5, 8, []string{"OUT"}, 902},
		{10, 1, 9, []string{"HLT"}, 0},
	}
	assert.Equal(expected, prog.Opcodes)
}

func TestGenerate_DatBare(t *testing.T) {
	assert := assert.New(t)

	// A bare DAT does not consume the following instruction.
	prog, err := generate([]string{"DAT", "DAT 5", "DAT OUT"})
	assert.NoError(err)
	assert.Equal("000005000902", prog.MachineCode())
}

func TestGenerate_Expression(t *testing.T) {
	assert := assert.New(t)

	prog, err := generate([]string{
		"LDA $(TABLE+1)",
		"HLT",
		"TABLE DAT 1",
		"DAT $(6*7)",
	})
	assert.NoError(err)
	assert.Equal("503000001042", prog.MachineCode())
	assert.Equal([]string{"LDA", "$(TABLE+1)"}, prog.Opcodes[0].Words)
}

func TestGenerate_Errors(t *testing.T) {
	table := []struct {
		name   string
		source []string
		err    error
		line   int
		column int
	}{
		{"number", []string{"5"}, ErrNumberUnexpected, 1, 1},
		{"extra_number", []string{"ADD 5 6"}, ErrNumberUnexpected, 1, 7},
		{"expression", []string{"$(1)"}, ErrNumberUnexpected, 1, 1},
		{"undefined", []string{"OUT", "BRA NOWHERE"}, ErrLabelUndefined("NOWHERE"), 2, 5},
		{"missing_end", []string{"LDA"}, ErrOperandMissing("LDA"), 1, 1},
		{"missing_instruction", []string{"BRZ", "HLT"}, ErrOperandMissing("BRZ"), 2, 1},
		{"operand_range", []string{"ADD 150"}, ErrOperandRange{Value: 150, Limit: 99}, 1, 5},
		{"data_range", []string{"DAT $(500*3)"}, ErrOperandRange{Value: 1500, Limit: 999}, 1, 5},
		{"negative", []string{"DAT $(-1)"}, ErrOperandRange{Value: -1, Limit: 999}, 1, 5},
	}

	for _, entry := range table {
		assert := assert.New(t)

		prog, err := generate(entry.source)
		assert.Nil(prog, entry.name)

		var syntax *ErrSyntax
		if !assert.True(errors.As(err, &syntax), entry.name) {
			continue
		}
		assert.Equal(entry.err, syntax.Err, entry.name)
		assert.Equal(entry.line, syntax.Line, entry.name)
		assert.Equal(entry.column, syntax.Column, entry.name)
	}
}

func TestGenerate_BadExpression(t *testing.T) {
	assert := assert.New(t)

	for _, expr := range []string{"NOWHERE", "1/2", "'x'", "1+"} {
		_, err := generate([]string{"DAT $(" + expr + ")"})

		var bad ErrExpression
		assert.True(errors.As(err, &bad), expr)
		assert.Equal(expr, bad.Expr)
	}
}

func TestGenerate_UndefinedMessage(t *testing.T) {
	assert := assert.New(t)

	_, err := generate([]string{"BRA NOWHERE"})
	assert.Error(err)
	assert.Equal("1:5: label 'NOWHERE' is not defined", err.Error())
}
