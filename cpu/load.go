package cpu

import (
	"log"
)

// Parse converts machine code text into words.
//
// Digits are grouped in runs of up to 3. Whitespace (any character
// at or below ASCII space) ends the current group early, so partial
// groups of 1 or 2 digits are allowed. Any other character is an error.
func Parse(code string) (words []Word, err error) {
	var value, digits int

	flush := func() {
		if digits == 0 {
			return
		}
		words = append(words, Word(value))
		value = 0
		digits = 0
	}

	for pos := 0; pos < len(code); pos++ {
		c := code[pos]
		switch {
		case c <= ' ':
			flush()
		case c >= '0' && c <= '9':
			value = value*10 + int(c-'0')
			digits++
			if digits == 3 {
				flush()
			}
		default:
			err = ErrLoadCharacter{Char: c, Pos: pos}
			return
		}
	}
	flush()

	if len(words) > MAILBOX_COUNT {
		err = ErrLoadOverflow
		return
	}

	return
}

// Load replaces the mailbox contents with the machine code, starting at
// mailbox 0. Mailboxes past the end of the code are zeroed.
func (cpu *Cpu) Load(code string) (err error) {
	words, err := Parse(code)
	if err != nil {
		return
	}

	cpu.LoadWords(words)

	return
}

// LoadWords replaces the mailbox contents with the words, starting at
// mailbox 0. Words past the last mailbox are ignored.
func (cpu *Cpu) LoadWords(words []Word) {
	clear(cpu.Mailbox[:])
	n := copy(cpu.Mailbox[:], words)

	if cpu.Verbose {
		log.Printf("cpu: loaded %d mailboxes", n)
	}
}
