// Package asm implements the assembler for the Little Man Computer.
//
// Assembly runs in three stages. Lex splits source text into tokens,
// Resolve assigns a mailbox to every instruction and binds labels, and
// Generate emits one 3 digit machine word per instruction.
//
// Source is case insensitive. A ';' or '/' starts a comment that runs to
// the end of the line. A label before an instruction defines it, a label
// after ADD, SUB, STA, LDA, BRA, BRZ or BRP references it. An operand may
// also be a constant expression such as $(TABLE+1), evaluated once labels
// are resolved.
package asm
