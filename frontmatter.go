package slides

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the optional YAML block at the top of a source file.
type FrontMatter struct {
	Title     string   `yaml:"title"`
	Author    string   `yaml:"author"`
	Style     string   `yaml:"style"`
	Templates []string `yaml:"templates"`
}

// SplitFrontMatter cuts a leading front matter block delimited by "---"
// lines off src. The block is replaced by as many newlines as it spanned so
// token line numbers still match the file. found is false when src has no
// front matter; body is then src unchanged.
//
// A slide marker such as "---Title" is never taken for a delimiter because
// the delimiter line must hold nothing but the three dashes.
func SplitFrontMatter(src string) (meta FrontMatter, body string, found bool, err error) {
	first, rest, ok := cutLine(strings.TrimPrefix(src, byteOrderMark))
	if !ok || strings.TrimSpace(first) != "---" {
		return FrontMatter{}, src, false, nil
	}
	lines := 1
	var block strings.Builder
	for {
		line, next, more := cutLine(rest)
		lines++
		if strings.TrimSpace(line) == "---" || strings.TrimSpace(line) == "..." {
			if err := yaml.Unmarshal([]byte(block.String()), &meta); err != nil {
				return FrontMatter{}, src, false, fmt.Errorf("front matter: %w", err)
			}
			return meta, strings.Repeat("\n", lines) + next, true, nil
		}
		if !more {
			// unterminated: treat the whole input as slides
			return FrontMatter{}, src, false, nil
		}
		block.WriteString(line)
		block.WriteByte('\n')
		rest = next
	}
}

// cutLine splits off the first line of s without its line ending.
// more is false when s had no newline left.
func cutLine(s string) (line, rest string, more bool) {
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return strings.TrimSuffix(s, "\r"), "", false
	}
	return strings.TrimSuffix(s[:i], "\r"), s[i+1:], true
}
