package io

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrInputEmpty = errors.New(f("input empty"))
)

// ErrInputInvalid is an input line that is not an integer.
type ErrInputInvalid string

func (err ErrInputInvalid) Error() string {
	return f("'%v' is not a number", string(err))
}
