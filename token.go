package slides

import (
	"fmt"
	"strconv"
)

// Token is a single lexical unit of a presentation source.
type Token struct {
	Kind  TokenKind
	Text  string
	Depth uint8
	Line  int
}

// TokenKind classifies a Token.
type TokenKind uint8

const (
	// TokenInvalid is emitted once when no lexical rule matches. Lexing stops after it.
	TokenInvalid TokenKind = iota
	// TokenLinefeed ends a logical line.
	TokenLinefeed
	// TokenBracketOpen opens an image description.
	TokenBracketOpen
	// TokenBracketClose closes an image description.
	TokenBracketClose
	// TokenIdentifier carries a slide kind in Text.
	TokenIdentifier
	// TokenText carries a run of prose in Text.
	TokenText
	// TokenPath carries the contents of a quoted path literal in Text.
	TokenPath
	// TokenListMarker is a list bullet; Depth holds its indentation.
	TokenListMarker
)

var kindNames = [...]string{
	TokenInvalid:      "invalid token",
	TokenLinefeed:     "linefeed",
	TokenBracketOpen:  "'['",
	TokenBracketClose: "']'",
	TokenIdentifier:   "identifier",
	TokenText:         "text",
	TokenPath:         "path",
	TokenListMarker:   "list marker",
}

func (k TokenKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "token(" + strconv.Itoa(int(k)) + ")"
}

// String describes the token the way parse errors report it.
func (t Token) String() string {
	switch t.Kind {
	case TokenIdentifier, TokenText, TokenPath:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	case TokenListMarker:
		return fmt.Sprintf("%s (depth %d)", t.Kind, t.Depth)
	default:
		return t.Kind.String()
	}
}

// SourceLine reports the line the token starts on.
func (t Token) SourceLine() int { return t.Line }
