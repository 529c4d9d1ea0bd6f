package catalog

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
)

// Loader reads style and template files. fstest.MapFS and any fs.ReadFileFS
// satisfy it.
type Loader interface {
	ReadFile(name string) ([]byte, error)
}

type osLoader struct{}

func (osLoader) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// OSLoader reads paths from the host filesystem as given.
func OSLoader() Loader { return osLoader{} }

// Catalog is the active style plus the templates for every known kind.
type Catalog struct {
	loader    Loader
	logger    *slog.Logger
	style     Style
	margin    Rect
	templates map[string]SlideTemplate
}

// Default returns a catalog with the built-in style and templates that reads
// style changes from the host filesystem.
func Default() *Catalog {
	c, err := NewBuilder(OSLoader()).Build()
	if err != nil {
		panic(err)
	}
	return c
}

// Style returns the active style.
func (c *Catalog) Style() Style { return c.style }

// Margin returns the drawable page region as a fraction of the page.
func (c *Catalog) Margin() Rect { return c.margin }

// Kinds lists the defined slide kinds in sorted order.
func (c *Catalog) Kinds() []string {
	return slices.Sorted(maps.Keys(c.templates))
}

// Lookup returns the template for kind.
func (c *Catalog) Lookup(kind string) (SlideTemplate, error) {
	tmpl, ok := c.templates[kind]
	if !ok {
		return SlideTemplate{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return tmpl, nil
}

// ChangeStyle replaces the active style with the one stored at path. The
// active style is left untouched on error.
func (c *Catalog) ChangeStyle(path string) error {
	style, err := loadStyle(c.loader, path)
	if err != nil {
		return err
	}
	c.style = style
	c.logger.Debug("style changed", "path", path, "font", style.Font, "colors", len(style.Colors))
	return nil
}

func loadStyle(l Loader, path string) (Style, error) {
	data, err := l.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("read style: %w", err)
	}
	style, err := ParseStyle(data)
	if err != nil {
		return Style{}, fmt.Errorf("%s: %w", path, err)
	}
	return style, nil
}

// Builder assembles a Catalog from optional style and template files.
type Builder struct {
	loader    Loader
	logger    *slog.Logger
	style     string
	templates []string
}

// NewBuilder returns a builder that reads files through l.
func NewBuilder(l Loader) *Builder {
	if l == nil {
		l = OSLoader()
	}
	return &Builder{loader: l}
}

// WithStyle sets the initial style file.
func (b *Builder) WithStyle(path string) *Builder {
	b.style = path
	return b
}

// WithTemplates adds template files. Later files override kinds defined by
// earlier ones and by the defaults.
func (b *Builder) WithTemplates(paths ...string) *Builder {
	b.templates = append(b.templates, paths...)
	return b
}

// WithLogger sets the logger style changes are reported to.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// Build loads every configured file.
func (b *Builder) Build() (*Catalog, error) {
	defaults := DefaultTemplates()
	c := &Catalog{
		loader:    b.loader,
		logger:    b.logger,
		style:     DefaultStyle(),
		margin:    defaults.Margin,
		templates: defaults.Slides,
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if b.style != "" {
		style, err := loadStyle(b.loader, b.style)
		if err != nil {
			return nil, err
		}
		c.style = style
	}
	for _, path := range b.templates {
		data, err := b.loader.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read templates: %w", err)
		}
		slides, margin, err := ParseTemplates(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if margin != nil {
			c.margin = *margin
		}
		for kind, tmpl := range slides {
			c.templates[kind] = tmpl
		}
		c.logger.Debug("templates loaded", "path", path, "kinds", len(slides))
	}
	return c, nil
}
