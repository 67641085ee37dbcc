package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Tape connects the machine to text streams.
// Each value read from Input is one line holding a signed decimal integer,
// blank lines are skipped. Each value sent is written to Output as one line.
// If Prompt is set, reads and writes are prefixed with "INPUT: " and "OUTPUT: ".
//
// If Preset is set, values are received from it instead of Input. With
// Prompt set each preset value is echoed to Output after "INPUT: ".
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Prompt bool
	Preset Channel

	reader *bufio.Reader
}

var _ Channel = (*Tape)(nil)

// Rewind rewinds the Preset values. Input can not be rewound.
func (tc *Tape) Rewind() {
	if tc.Preset != nil {
		tc.Preset.Rewind()
	}
}

// ReadLine reads the next line of Input, without the line terminator.
// Returns io.EOF at the end of input.
func (tc *Tape) ReadLine() (line string, err error) {
	if tc.Input == nil {
		err = io.EOF
		return
	}

	if tc.reader == nil {
		reader, ok := tc.Input.(*bufio.Reader)
		if !ok {
			reader = bufio.NewReader(tc.Input)
		}
		tc.reader = reader
	}

	line, err = tc.reader.ReadString('\n')
	if err == io.EOF && len(line) > 0 {
		err = nil
	}
	line = strings.TrimRight(line, "\r\n")

	return
}

// Receive reads the next integer from the input stream.
// Returns ErrInputEmpty at the end of input and ErrInputInvalid
// for a line that is not an integer.
func (tc *Tape) Receive() (value int, err error) {
	if tc.Preset != nil {
		value, err = tc.Preset.Receive()
		if err == nil && tc.Prompt && tc.Output != nil {
			fmt.Fprintf(tc.Output, "INPUT: %d\n", value)
		}
		return
	}

	if tc.Prompt && tc.Output != nil {
		fmt.Fprint(tc.Output, "INPUT: ")
	}

	for {
		var line string
		line, err = tc.ReadLine()
		if err == io.EOF {
			err = ErrInputEmpty
			return
		}
		if err != nil {
			return
		}

		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		value, err = strconv.Atoi(line)
		if err != nil {
			err = ErrInputInvalid(line)
		}
		return
	}
}

// Send writes a value to the output stream.
func (tc *Tape) Send(value int) (err error) {
	if tc.Output == nil {
		return
	}

	if tc.Prompt {
		_, err = fmt.Fprintf(tc.Output, "OUTPUT: %d\n", value)
	} else {
		_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	}

	return
}
