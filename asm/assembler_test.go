package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))
	assert.Equal("", prog.MachineCode())
}

func TestAssembler_Parse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"; add two numbers",
		"        INP",
		"        STA FIRST",
		"        INP",
		"        ADD FIRST",
		"        OUT",
		"        HLT",
		"FIRST   DAT",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal("901306901106902000000", prog.MachineCode())
	assert.Equal(map[string]int{"FIRST": 6}, asm.Label)
	assert.Len(asm.Tokens, 10)

	op := prog.Debug(4)
	assert.NotNil(op)
	assert.Equal(6, op.LineNo)
	assert.Equal([]string{"OUT"}, op.Words)

	assert.Nil(prog.Debug(7))
}

func TestAssembler_Reuse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := asm.Assemble("A HLT\nBRA A")
	assert.NoError(err)
	assert.Equal(map[string]int{"A": 0}, asm.Label)

	_, err = asm.Assemble("B HLT\nBRA B")
	assert.NoError(err)
	assert.Equal(map[string]int{"B": 0}, asm.Label)
}

func TestAssembler_Error(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{File: "sum.txt"}

	prog, err := asm.Assemble("INP\nADD TOTAL\nOUT")
	assert.Nil(prog)
	assert.True(errors.Is(err, ErrLabelUndefined("TOTAL")))

	var syntax *ErrSyntax
	assert.True(errors.As(err, &syntax))
	assert.Equal("sum.txt", syntax.File)
	assert.Equal("sum.txt:2:5: label 'TOTAL' is not defined", err.Error())

	_, err = asm.Assemble("DAT $(1")
	assert.Equal("sum.txt:1:5: expression not terminated", err.Error())
}

func TestProgram_String(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Assemble("INP\nLOOP OUT\nBRA LOOP")
	assert.NoError(err)

	expected := strings.Join([]string{
		"00: 901     1:1   INP",
		"01: 902     2:6   OUT",
		"02: 601     3:1   BRA LOOP",
		"",
	}, "\n")
	assert.Equal(expected, prog.String())
	assert.Equal([]int{901, 902, 601}, func() (codes []int) {
		for _, code := range prog.Codes() {
			codes = append(codes, int(code))
		}
		return
	}())
}
