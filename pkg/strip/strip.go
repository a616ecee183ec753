// Package strip removes comments and string/character literal contents from
// C-family source text so that a plain word search cannot match inside them.
package strip

import "strings"

// state is a state of the stripping automaton.
type state int

const (
	stateNormal state = iota
	// stateSlash is entered on '/' in normal text, waiting for '/' or '*'.
	stateSlash
	stateLineComment
	stateBlockComment
	// stateBlockStar is entered on '*' inside a block comment, waiting for '/'.
	stateBlockStar
	stateString
	stateStringEscape
	stateChar
	stateCharEscape
)

// Strip returns text with every comment and every string or character
// literal removed, delimiters included. Line comments keep their
// terminating newline; newlines inside block comments and literals are
// dropped. Unterminated constructs swallow the rest of the input.
func Strip(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	st := stateNormal
	for _, r := range text {
		st = step(&b, st, r)
	}

	// A lone '/' at the end was division, not a comment opener.
	if st == stateSlash {
		b.WriteByte('/')
	}

	return b.String()
}

func step(b *strings.Builder, st state, r rune) state {
	switch st {
	case stateSlash:
		switch r {
		case '/':
			return stateLineComment
		case '*':
			return stateBlockComment
		}
		b.WriteByte('/')
		return step(b, stateNormal, r)

	case stateLineComment:
		if r == '\n' {
			b.WriteByte('\n')
			return stateNormal
		}
		return stateLineComment

	case stateBlockComment:
		if r == '*' {
			return stateBlockStar
		}
		return stateBlockComment

	case stateBlockStar:
		switch r {
		case '/':
			return stateNormal
		case '*':
			return stateBlockStar
		}
		return stateBlockComment

	case stateString:
		switch r {
		case '\\':
			return stateStringEscape
		case '"':
			return stateNormal
		}
		return stateString

	case stateStringEscape:
		return stateString

	case stateChar:
		switch r {
		case '\\':
			return stateCharEscape
		case '\'':
			return stateNormal
		}
		return stateChar

	case stateCharEscape:
		return stateChar
	}

	switch r {
	case '/':
		return stateSlash
	case '"':
		return stateString
	case '\'':
		return stateChar
	}
	b.WriteRune(r)
	return stateNormal
}
