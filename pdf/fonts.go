package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// face is a registered font family and the text encoding it expects.
type face struct {
	family string
	utf8   bool
	tr     func(string) string
}

type fontSet struct {
	pdf     *gofpdf.Fpdf
	baseDir string
	loaded  map[string]face
	cp1252  func(string) string
}

func newFontSet(pdf *gofpdf.Fpdf, baseDir string) *fontSet {
	return &fontSet{
		pdf:     pdf,
		baseDir: baseDir,
		loaded:  make(map[string]face),
		cp1252:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// face returns the face for a style font name, registering TrueType files on
// first use.
func (fs *fontSet) face(name string) (face, error) {
	if f, ok := fs.loaded[name]; ok {
		return f, nil
	}
	var f face
	if core, ok := coreFont(name); ok {
		f = face{family: core, tr: fs.cp1252}
	} else {
		path := resolvePath(fs.baseDir, name)
		if err := checkFontPath(path); err != nil {
			return face{}, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return face{}, fmt.Errorf("font: %w", err)
		}
		family := "StyleFont" + strconv.Itoa(len(fs.loaded))
		fs.pdf.AddUTF8FontFromBytes(family, "", data)
		if err := fs.pdf.Error(); err != nil {
			return face{}, fmt.Errorf("font %s: %w", path, err)
		}
		f = face{family: family, utf8: true, tr: basicPlane}
	}
	fs.loaded[name] = f
	return f, nil
}

// split wraps already translated text to width using the current font.
func (f face) split(pdf *gofpdf.Fpdf, text string, width float64) []string {
	if text == "" {
		return nil
	}
	if f.utf8 {
		return pdf.SplitText(text, width)
	}
	raw := pdf.SplitLines([]byte(text), width)
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = string(l)
	}
	return lines
}

// basicPlane replaces runes outside the basic multilingual plane, which the
// TrueType width tables do not cover.
func basicPlane(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xFFFF {
			return '?'
		}
		return r
	}, s)
}

func coreFont(name string) (string, bool) {
	switch strings.ToLower(name) {
	case "helvetica", "arial":
		return "Helvetica", true
	case "times", "times new roman":
		return "Times", true
	case "courier":
		return "Courier", true
	default:
		return "", false
	}
}

func checkFontPath(path string) error {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".ttf" {
		return fmt.Errorf("font %q: expected a core font name or a .ttf file", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("font missing: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("font path %s is a directory", path)
	}
	return nil
}

func resolvePath(baseDir, p string) string {
	if baseDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}
