package asm

// lexer scans source text into tokens.
type lexer struct {
	src    string
	pos    int
	line   int
	column int
	tokens []Token
}

// isSpace returns true for any character at or below ASCII space.
func isSpace(c byte) bool {
	return c <= ' '
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isComment(c byte) bool {
	return c == ';' || c == '/'
}

// Lex converts source text into tokens.
//
// Numbers keep at most 3 digits and identifiers at most TOKEN_TEXT_LIMIT
// characters; the rest of an over-long run is dropped. Identifiers are
// folded to uppercase. The only error is an unterminated $(...) expression.
func Lex(source string) (tokens []Token, err error) {
	lx := &lexer{
		src:    source,
		line:   1,
		column: 1,
	}

	err = lx.run()
	tokens = lx.tokens

	return
}

// peek returns the character at offset n from the current position, or 0.
func (lx *lexer) peek(n int) byte {
	if lx.pos+n >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+n]
}

// advance consumes one character on the current line.
func (lx *lexer) advance() {
	lx.pos++
	lx.column++
}

func (lx *lexer) run() (err error) {
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		switch {
		case c == '\n':
			lx.pos++
			lx.line++
			lx.column = 1
		case c == '\r' && lx.peek(1) == '\n':
			lx.pos++
		case isComment(c):
			for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
				lx.advance()
			}
		case isSpace(c):
			lx.advance()
		case isDigit(c):
			lx.number()
		case c == '$' && lx.peek(1) == '(':
			err = lx.expression()
			if err != nil {
				return
			}
		default:
			lx.identifier()
		}
	}

	return
}

func (lx *lexer) number() {
	tok := Token{Kind: TOKEN_NUMBER, Line: lx.line, Column: lx.column}

	for digits := 0; lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]); digits++ {
		if digits < 3 {
			tok.Address = tok.Address*10 + int(lx.src[lx.pos]-'0')
		}
		lx.advance()
	}

	lx.tokens = append(lx.tokens, tok)
}

func (lx *lexer) identifier() {
	tok := Token{Kind: TOKEN_LABEL, Address: ADDRESS_UNDEFINED, Line: lx.line, Column: lx.column}

	var text []byte
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		if isSpace(c) || isComment(c) {
			break
		}
		if len(text) < TOKEN_TEXT_LIMIT {
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			text = append(text, c)
		}
		lx.advance()
	}

	tok.Text = string(text)
	if IsMnemonic(tok.Text) {
		tok.Kind = TOKEN_INSTRUCTION
		tok.Address = 0
	}

	lx.tokens = append(lx.tokens, tok)
}

// expression scans $(...) up to the matching parenthesis.
// Comment characters are literal inside, whitespace is not allowed.
func (lx *lexer) expression() (err error) {
	tok := Token{Kind: TOKEN_EXPRESSION, Line: lx.line, Column: lx.column}

	lx.advance()
	lx.advance()

	start := lx.pos
	depth := 1
	for depth > 0 {
		if lx.pos >= len(lx.src) || isSpace(lx.src[lx.pos]) {
			err = syntaxError(tok, ErrExpressionUnterminated)
			return
		}
		switch lx.src[lx.pos] {
		case '(':
			depth++
		case ')':
			depth--
		}
		lx.advance()
	}

	tok.Text = lx.src[start : lx.pos-1]
	lx.tokens = append(lx.tokens, tok)

	return
}
