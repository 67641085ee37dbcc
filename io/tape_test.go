package io

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Receive(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("7\n-3\r\n\n  42  \n")}
	tape.Rewind()

	for _, expected := range []int{7, -3, 42} {
		value, err := tape.Receive()
		assert.NoError(err)
		assert.Equal(expected, value)
	}

	_, err := tape.Receive()
	assert.Equal(ErrInputEmpty, err)
}

func TestTape_Receive_NoNewline(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("12")}

	value, err := tape.Receive()
	assert.NoError(err)
	assert.Equal(12, value)

	_, err = tape.Receive()
	assert.Equal(ErrInputEmpty, err)
}

func TestTape_Receive_Invalid(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("twelve\n")}

	_, err := tape.Receive()
	var invalid ErrInputInvalid
	assert.True(errors.As(err, &invalid))
	assert.Equal(ErrInputInvalid("twelve"), invalid)
}

func TestTape_Receive_NoInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}

	_, err := tape.Receive()
	assert.Equal(ErrInputEmpty, err)
}

func TestTape_Receive_ReadError(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: &errorReader{}}

	_, err := tape.Receive()
	assert.Equal(io.ErrUnexpectedEOF, err)
}

type errorReader struct{}

func (er *errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	assert.NoError(tape.Send(4))
	assert.NoError(tape.Send(-12))
	assert.NoError(tape.Send(1500))

	assert.Equal("4\n-12\n1500\n", output.String())
}

func TestTape_Prompt(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Input: strings.NewReader("5\n"), Output: output, Prompt: true}

	value, err := tape.Receive()
	assert.NoError(err)
	assert.Equal(5, value)

	assert.NoError(tape.Send(value))

	assert.Equal("INPUT: OUTPUT: 5\n", output.String())
}

func TestTape_Preset(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	preset := NewQueue(3, -8)
	tape := &Tape{Input: strings.NewReader("99\n"), Output: output, Preset: preset}

	value, err := tape.Receive()
	assert.NoError(err)
	assert.Equal(3, value)
	assert.Equal(1, preset.Len())

	value, err = tape.Receive()
	assert.NoError(err)
	assert.Equal(-8, value)

	_, err = tape.Receive()
	assert.Equal(ErrInputEmpty, err)
	assert.Empty(output.String())

	tape.Rewind()
	assert.Equal(2, preset.Len())
}

func TestTape_Preset_Prompt(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output, Prompt: true, Preset: NewQueue(7)}

	value, err := tape.Receive()
	assert.NoError(err)
	assert.NoError(tape.Send(value))

	_, err = tape.Receive()
	assert.Equal(ErrInputEmpty, err)

	assert.Equal("INPUT: 7\nOUTPUT: 7\n", output.String())
}

func TestTape_ReadLine_Shared(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("\n9\n")}

	line, err := tape.ReadLine()
	assert.NoError(err)
	assert.Equal("", line)

	value, err := tape.Receive()
	assert.NoError(err)
	assert.Equal(9, value)
}

func TestQueue(t *testing.T) {
	assert := assert.New(t)

	queue := NewQueue(1, 2)
	assert.Equal(2, queue.Len())

	value, err := queue.Receive()
	assert.NoError(err)
	assert.Equal(1, value)

	assert.NoError(queue.Send(3))
	assert.Equal(2, queue.Len())

	value, _ = queue.Receive()
	assert.Equal(2, value)
	value, _ = queue.Receive()
	assert.Equal(3, value)

	_, err = queue.Receive()
	assert.Equal(ErrInputEmpty, err)

	queue.Rewind()
	assert.Equal(3, queue.Len())
}
