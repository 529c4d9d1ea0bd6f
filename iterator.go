package slides

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"pkt.systems/slides/parsec"
)

// Iterator yields the slides of a token sequence one at a time. It is not
// restartable and not safe for concurrent use.
type Iterator struct {
	tokens []Token
	offset int
	done   bool
	slide  parsec.Parser[Token, Slide]
}

// NewIterator collapses blank lines in tokens and prepares to parse them.
// The slice is filtered in place and must not be reused by the caller.
func NewIterator(tokens []Token) *Iterator {
	return &Iterator{
		tokens: collapseLinefeeds(tokens),
		slide:  slideGrammar(),
	}
}

// Parse lexes src and returns an iterator over its slides.
func Parse(src string) *Iterator {
	return NewIterator(Tokenize(src))
}

// ParseAll parses every slide of src, stopping at the first error.
func ParseAll(src string) ([]Slide, error) {
	var out []Slide
	for slide, err := range Parse(src).All() {
		if err != nil {
			return out, err
		}
		out = append(out, slide)
	}
	return out, nil
}

// Next returns the next slide. It returns io.EOF once the tokens are used up
// or after a parse error has been returned; the error itself is a
// *ParseError.
func (it *Iterator) Next() (Slide, error) {
	if it.done || it.offset >= len(it.tokens) {
		it.done = true
		return Slide{}, io.EOF
	}
	next, slide, err := it.slide(it.tokens, it.offset)
	if err != nil {
		it.done = true
		var perr *ParseError
		if errors.As(err, &perr) {
			return Slide{}, perr
		}
		return Slide{}, fmt.Errorf("parse slide: %w", err)
	}
	it.offset = next
	return slide, nil
}

// All returns the remaining slides as a sequence. A parse error is yielded
// once as the last element.
func (it *Iterator) All() iter.Seq2[Slide, error] {
	return func(yield func(Slide, error) bool) {
		for {
			slide, err := it.Next()
			if err == io.EOF {
				return
			}
			if !yield(slide, err) || err != nil {
				return
			}
		}
	}
}

// Offset returns the number of tokens consumed so far.
func (it *Iterator) Offset() int { return it.offset }

// Done reports whether Next will only return io.EOF from now on.
func (it *Iterator) Done() bool { return it.done || it.offset >= len(it.tokens) }
