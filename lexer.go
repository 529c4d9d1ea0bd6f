package slides

import (
	"iter"
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// tokenBuilder turns the submatches of a capturing rule into a token.
// skipped is the number of inline whitespace runes in front of the match.
type tokenBuilder func(skipped int, match []string) Token

type literalRule struct {
	re   *regexp.Regexp
	kind TokenKind
}

type captureRule struct {
	re    *regexp.Regexp
	build tokenBuilder
}

type lexRules struct {
	whitespace *regexp.Regexp
	comment    *regexp.Regexp
	literals   []literalRule
	captures   []captureRule
}

// Capturing rules are tried in order and the text rule must stay last:
// it matches almost anything and would shadow the others.
var defaultRules = sync.OnceValue(func() *lexRules {
	return &lexRules{
		whitespace: regexp.MustCompile(`^[^\S\n]+`),
		comment:    regexp.MustCompile(`^;[^\n]*`),
		literals: []literalRule{
			{re: regexp.MustCompile(`^\[`), kind: TokenBracketOpen},
			{re: regexp.MustCompile(`^\]`), kind: TokenBracketClose},
			{re: regexp.MustCompile(`^\n`), kind: TokenLinefeed},
		},
		captures: []captureRule{
			{re: regexp.MustCompile(`^---([^\s\d]\S*)`), build: buildIdentifier},
			{re: regexp.MustCompile(`^[-*]`), build: buildListMarker},
			{re: regexp.MustCompile(`^"([^"\n]*)"`), build: buildPath},
			{re: regexp.MustCompile(`^(?:\\[^\n]?|[^\n\[\]"\\])+`), build: buildText},
		},
	}
})

func buildIdentifier(_ int, m []string) Token {
	return Token{Kind: TokenIdentifier, Text: m[1]}
}

func buildListMarker(skipped int, _ []string) Token {
	depth := skipped
	if depth > 255 {
		depth = 255
	}
	return Token{Kind: TokenListMarker, Depth: uint8(depth)}
}

func buildPath(_ int, m []string) Token {
	return Token{Kind: TokenPath, Text: m[1]}
}

func buildText(_ int, m []string) Token {
	return Token{Kind: TokenText, Text: decodeText(m[0])}
}

// decodeText drops escaping backslashes and trailing unescaped whitespace.
// Runs without a backslash are returned as a substring of raw.
func decodeText(raw string) string {
	if strings.IndexByte(raw, '\\') == -1 {
		return strings.TrimRightFunc(raw, unicode.IsSpace)
	}
	var b strings.Builder
	b.Grow(len(raw))
	keep := 0
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRuneInString(raw[i:])
		if r == '\\' && i+size < len(raw) {
			next, nsize := utf8.DecodeRuneInString(raw[i+size:])
			b.WriteRune(next)
			keep = b.Len()
			i += size + nsize
			continue
		}
		b.WriteRune(r)
		if !unicode.IsSpace(r) {
			keep = b.Len()
		}
		i += size
	}
	return b.String()[:keep]
}

// Lexer pulls tokens from a source string one at a time.
type Lexer struct {
	rules  *lexRules
	source string
	line   int
}

// NewLexer returns a lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{rules: defaultRules(), source: src, line: 1}
}

// Next returns the next token, or false once the source is exhausted.
func (l *Lexer) Next() (Token, bool) {
	if l.source == "" {
		return Token{}, false
	}
	var skipped int
	for {
		skipped = 0
		if loc := l.rules.whitespace.FindStringIndex(l.source); loc != nil {
			skipped = utf8.RuneCountInString(l.source[:loc[1]])
			l.advance(loc[1])
		}
		loc := l.rules.comment.FindStringIndex(l.source)
		if loc == nil {
			break
		}
		l.advance(loc[1])
	}
	if l.source == "" {
		return Token{}, false
	}
	line := l.line

	for _, rule := range l.rules.literals {
		if loc := rule.re.FindStringIndex(l.source); loc != nil {
			l.advance(loc[1])
			return Token{Kind: rule.kind, Line: line}, true
		}
	}

	for _, rule := range l.rules.captures {
		loc := rule.re.FindStringSubmatchIndex(l.source)
		if loc == nil {
			continue
		}
		match := make([]string, len(loc)/2)
		for i := range match {
			if loc[2*i] >= 0 {
				match[i] = l.source[loc[2*i]:loc[2*i+1]]
			}
		}
		tok := rule.build(skipped, match)
		tok.Line = line
		l.advance(loc[1])
		return tok, true
	}

	l.source = ""
	return Token{Kind: TokenInvalid, Line: line}, true
}

// All returns the remaining tokens as a sequence.
func (l *Lexer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := l.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

func (l *Lexer) advance(n int) {
	l.line += strings.Count(l.source[:n], "\n")
	l.source = l.source[n:]
}

// Tokenize lexes the whole of src.
func Tokenize(src string) []Token {
	var out []Token
	for tok := range NewLexer(src).All() {
		out = append(out, tok)
	}
	return out
}
