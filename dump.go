package slides

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

// Dump writes a plain outline of every slide in seq, one line per content
// item and list entry. It stops at the first parse error, writes it as the
// last line and returns it.
func Dump(w io.Writer, seq iter.Seq2[Slide, error]) error {
	bw := bufio.NewWriter(w)
	var failed error
	for slide, err := range seq {
		if err != nil {
			fmt.Fprintf(bw, "error: %v\n", err)
			failed = err
			break
		}
		fmt.Fprintf(bw, "slide %s\n", slide.Kind)
		for _, c := range slide.Contents {
			switch c := c.(type) {
			case Text:
				fmt.Fprintf(bw, "  text %q\n", c.Value)
			case ConfigDirective:
				fmt.Fprintf(bw, "  config %q\n", c.Path)
			case Image:
				fmt.Fprintf(bw, "  image %q -> %q\n", c.Description, c.Path)
			case List:
				bw.WriteString("  list\n")
				for _, e := range c.Entries {
					fmt.Fprintf(bw, "    %d %q\n", e.Depth, e.Text)
				}
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return failed
}
