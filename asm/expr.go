// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// evaluate does compile-time $(...) evaluations, with every defined
// label available as an integer.
func evaluate(expr string, label map[string]int) (value int, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, mailbox := range label {
		pred[key] = starlark.MakeInt(mailbox)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrExpression{Expr: expr, Err: err}
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression{Expr: expr}
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression{Expr: expr}
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrExpression{Expr: expr}
		return
	}

	value = int(st_int64)
	return
}
