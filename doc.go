// Package slides compiles a line-oriented presentation markup into slides.
//
// A source is a sequence of slides. Each slide starts with a marker line
// naming its kind, followed by content lines:
//
//	---Title
//	A talk about parsers
//
//	---Head_Cont
//	Agenda
//
//	- lexing
//	  - regex rules
//	- parsing
//	[the pipeline] "img/pipeline.png"
//	"styles/dark.yaml"            ; a bare path is a config directive
//
// Consecutive prose lines fold into one Text item joined by spaces; a blank
// line starts a new item. Lines starting with "-" or "*" are list entries
// whose depth is the indentation in front of the marker. "[description]
// "path"" is an image. A line holding only a quoted path is a
// ConfigDirective. ";" starts a comment at a token boundary and "\" escapes
// the next character inside prose.
//
// The front end has three layers: a regex-rule Lexer producing Tokens, the
// generic combinators of package parsec, and the slide grammar driving an
// Iterator:
//
//	it := slides.Parse(src)
//	for slide, err := range it.All() {
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(slide.Kind, len(slide.Contents))
//	}
//
// The parser never looks at the filesystem and does not know which slide
// kinds exist; package catalog and package pdf do. Render writes an ANSI
// preview of a source to a terminal.
package slides
