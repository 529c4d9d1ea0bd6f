package slides

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

const byteOrderMark = "\ufeff"

// Source is a validated presentation with its front matter cut out.
type Source struct {
	Meta    FrontMatter
	HasMeta bool
	// Body is the markup handed to the lexer. Front matter lines are blanked
	// so token line numbers match the original file.
	Body string
}

// ReadSource reads, validates and splits a presentation.
func ReadSource(r io.Reader) (Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Source{}, fmt.Errorf("read: %w", err)
	}
	return NewSource(data)
}

// NewSource validates and splits a presentation held in memory.
func NewSource(data []byte) (Source, error) {
	if err := ValidateInput(data); err != nil {
		return Source{}, err
	}
	meta, body, found, err := SplitFrontMatter(strings.TrimPrefix(string(data), byteOrderMark))
	if err != nil {
		return Source{}, err
	}
	return Source{Meta: meta, HasMeta: found, Body: body}, nil
}

// Slides parses the body lazily.
func (s Source) Slides() iter.Seq2[Slide, error] {
	return Parse(s.Body).All()
}
