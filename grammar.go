package slides

import (
	"strings"
	"sync"

	"pkt.systems/slides/parsec"
)

type unit = struct{}

func tokenOf[O any](kind TokenKind, value func(Token) O) parsec.Parser[Token, O] {
	return parsec.Token(kind.String(), func(t Token) (O, bool) {
		if t.Kind != kind {
			var zero O
			return zero, false
		}
		return value(t), true
	}, Token.String)
}

func tokenValue(t Token) string { return t.Text }
func tokenDepth(t Token) uint8 { return t.Depth }
func tokenUnit(Token) unit     { return unit{} }

var (
	identifier    = tokenOf(TokenIdentifier, tokenValue)
	text          = tokenOf(TokenText, tokenValue)
	path          = tokenOf(TokenPath, tokenValue)
	listMarker    = tokenOf(TokenListMarker, tokenDepth)
	bracketOpen   = tokenOf(TokenBracketOpen, tokenUnit)
	bracketClose  = tokenOf(TokenBracketClose, tokenUnit)
	linefeed      = tokenOf(TokenLinefeed, tokenUnit)
	endOfInput    = parsec.End[Token]()
	lineEnd       = parsec.Or(linefeed, endOfInput)
	nextSlideMark = parsec.Map(identifier, func(string) unit { return unit{} })
)

// softBreak matches a linefeed that is directly followed by a token on the
// next source line. A blank or comment-only line in between makes it fail.
func softBreak(input []Token, offset int) (int, unit, error) {
	next, _, err := linefeed(input, offset)
	if err != nil {
		return offset, unit{}, err
	}
	if next >= len(input) || input[next].Line != input[offset].Line+1 {
		return offset, unit{}, parsec.Fail("continuation line", input, next, Token.String)
	}
	return next, unit{}, nil
}

func many0[O any](p parsec.Parser[Token, O]) parsec.Parser[Token, []O] {
	return parsec.Or(parsec.Many(p), parsec.Pure[Token, []O](nil))
}

func newSlideParser() parsec.Parser[Token, Slide] {
	textBlock := parsec.Map(
		parsec.And(text, many0(parsec.Prefixed(text, parsec.Parser[Token, unit](softBreak)))),
		func(p parsec.Pair[string, []string]) string {
			if len(p.Second) == 0 {
				return p.First
			}
			return p.First + " " + strings.Join(p.Second, " ")
		},
	)

	listEntry := parsec.Map(parsec.And(listMarker, textBlock), func(p parsec.Pair[uint8, string]) ListEntry {
		return ListEntry{Depth: p.First, Text: p.Second}
	})
	listContent := parsec.Map(
		parsec.And(listEntry, many0(parsec.Prefixed(listEntry, parsec.Parser[Token, unit](softBreak)))),
		func(p parsec.Pair[ListEntry, []ListEntry]) Content {
			entries := make([]ListEntry, 0, 1+len(p.Second))
			entries = append(entries, p.First)
			return List{Entries: append(entries, p.Second...)}
		},
	)

	imageContent := parsec.Map(
		parsec.And(
			parsec.Suffixed(parsec.Prefixed(textBlock, bracketOpen), parsec.Optional(bracketClose)),
			path,
		),
		func(p parsec.Pair[string, string]) Content {
			return Image{Description: p.First, Path: p.Second}
		},
	)

	configContent := parsec.Map(path, func(p string) Content { return ConfigDirective{Path: p} })
	textContent := parsec.Map(textBlock, func(s string) Content { return Text{Value: s} })

	content := parsec.Suffixed(
		parsec.Or(configContent, imageContent, listContent, textContent),
		lineEnd,
	)

	header := parsec.Suffixed(identifier, lineEnd)
	body := parsec.And(header, many0(content))
	slide := parsec.Suffixed(body, parsec.Peek(parsec.Or(nextSlideMark, endOfInput)))

	return parsec.Map(slide, func(p parsec.Pair[string, []Content]) Slide {
		return Slide{Kind: p.First, Contents: p.Second}
	})
}

var slideGrammar = sync.OnceValue(newSlideParser)

// collapseLinefeeds folds runs of linefeeds into one and drops a leading
// linefeed. It filters in place.
func collapseLinefeeds(tokens []Token) []Token {
	out := tokens[:0]
	for _, tok := range tokens {
		if tok.Kind == TokenLinefeed {
			if len(out) == 0 || out[len(out)-1].Kind == TokenLinefeed {
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}
