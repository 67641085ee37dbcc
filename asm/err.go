package asm

import (
	"errors"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Lexer errors
	ErrExpressionUnterminated = errors.New(f("expression not terminated"))

	// Resolver errors
	ErrProgramTooLarge = errors.New(f("program exceeds %d mailboxes", cpu.MAILBOX_COUNT))

	// Code generator errors
	ErrNumberUnexpected = errors.New(f("instruction or label expected, number given"))
)

// ErrLabelUndefined is an operand label without a definition.
type ErrLabelUndefined string

func (err ErrLabelUndefined) Error() string {
	return f("label '%v' is not defined", string(err))
}

// ErrOperandMissing is an instruction without its operand.
type ErrOperandMissing string

func (err ErrOperandMissing) Error() string {
	return f("expected number or label after %v instruction", string(err))
}

// ErrOperandRange is an operand value that does not fit its field.
type ErrOperandRange struct {
	Value int
	Limit int
}

func (err ErrOperandRange) Error() string {
	return f("operand %d out of range 0..%d", err.Value, err.Limit)
}

// ErrExpression is a constant expression that failed to evaluate.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err ErrExpression) Error() string {
	if err.Err == nil {
		return f("$(%v) is not a valid expression", err.Expr)
	}
	return f("$(%v) is not a valid expression: %v", err.Expr, err.Err)
}

func (err ErrExpression) Unwrap() error {
	return err.Err
}

// ErrSyntax locates an assembly error in the source.
type ErrSyntax struct {
	File   string
	Line   int
	Column int
	Err    error
}

func (err ErrSyntax) Error() string {
	if len(err.File) == 0 {
		return f("%d:%d: %v", err.Line, err.Column, err.Err)
	}
	return f("%v:%d:%d: %v", err.File, err.Line, err.Column, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// syntaxError wraps err with the position of tok.
func syntaxError(tok Token, err error) error {
	return &ErrSyntax{Line: tok.Line, Column: tok.Column, Err: err}
}
