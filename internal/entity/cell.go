package entity

// Cell is one board position holding a stack of tokens, bottom first.
// Every token covers the one right beneath it.
type Cell struct {
	tokens []Token
}

// Top returns the exposed token without touching the stack.
func (that *Cell) Top() (Token, bool) {
	if len(that.tokens) == 0 {
		return Token{}, false
	}

	return that.tokens[len(that.tokens)-1], true
}

// CanAccept reports whether token may be pushed onto the cell.
func (that *Cell) CanAccept(token Token) bool {
	top, ok := that.Top()
	if !ok {
		return true
	}

	return token.Covers(top)
}

// Push stacks token on the cell. A rejected token leaves the cell as it was.
func (that *Cell) Push(token Token) bool {
	if !that.CanAccept(token) {
		return false
	}

	that.tokens = append(that.tokens, token)

	return true
}

// PopTop removes the exposed token, uncovering the one beneath.
func (that *Cell) PopTop() (Token, bool) {
	top, ok := that.Top()
	if !ok {
		return Token{}, false
	}

	that.tokens = that.tokens[:len(that.tokens)-1]

	return top, true
}

func (that *Cell) Len() int {
	return len(that.tokens)
}

func (that *Cell) IsEmpty() bool {
	return len(that.tokens) == 0
}

// Tokens returns a copy of the stack, bottom first.
func (that *Cell) Tokens() []Token {
	tokens := make([]Token, len(that.tokens))
	copy(tokens, that.tokens)

	return tokens
}
