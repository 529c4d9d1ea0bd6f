package slides

import (
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	osc8Start = "\x1b]8;;"
	osc8End   = "\x1b]8;;\x1b\\"
)

var osc8TermPrograms = map[string]bool{
	"iTerm.app": true,
	"WezTerm":   true,
	"vscode":    true,
	"ghostty":   true,
}

// DetectOSC8Support returns true if the current environment likely supports OSC 8 hyperlinks.
func DetectOSC8Support() bool {
	if os.Getenv("OSC8") == "0" {
		return false
	}
	if os.Getenv("DOMTERM") != "" || os.Getenv("WT_SESSION") != "" {
		return true
	}
	if osc8TermPrograms[os.Getenv("TERM_PROGRAM")] {
		return true
	}
	if strings.Contains(strings.ToLower(os.Getenv("TERM")), "kitty") {
		return true
	}
	if vte, err := strconv.Atoi(os.Getenv("VTE_VERSION")); err == nil && vte >= 5000 {
		return true
	}
	return false
}

// hyperlink wraps text in an OSC 8 link to target.
func hyperlink(target, text string) string {
	return osc8Start + target + "\x1b\\" + text + osc8End
}

// linkURL turns a source-relative path into a link target. base is either
// a directory, giving a file:// URL, or an http(s) URL the path is resolved
// against. Paths that already carry a scheme are returned as they are.
func linkURL(base, p string) string {
	ref, err := url.Parse(p)
	if err == nil && len(ref.Scheme) > 1 {
		return p
	}
	if b, berr := url.Parse(base); berr == nil && err == nil && (b.Scheme == "http" || b.Scheme == "https") {
		return b.ResolveReference(ref).String()
	}
	if !filepath.IsAbs(p) && base != "" {
		p = filepath.Join(base, p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(p)}).String()
}
