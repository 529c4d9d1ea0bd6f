package slides

// Slide is one parsed unit of a presentation source.
type Slide struct {
	Kind     string
	Contents []Content
}

// Content is one item of a slide body: Text, ConfigDirective, Image or List.
type Content interface {
	isContent()
}

// Text is free-form prose. Consecutive source lines are joined by one space.
type Text struct {
	Value string
}

// ConfigDirective is a line holding nothing but a quoted path. Renderers use
// it to override their active style.
type ConfigDirective struct {
	Path string
}

// Image is a bracketed description followed by a quoted path.
type Image struct {
	Description string
	Path        string
}

// List holds one or more entries in source order.
type List struct {
	Entries []ListEntry
}

// ListEntry is a single bullet. Depth is the count of whitespace runes in
// front of the marker.
type ListEntry struct {
	Depth uint8
	Text  string
}

func (Text) isContent()            {}
func (ConfigDirective) isContent() {}
func (Image) isContent()           {}
func (List) isContent()            {}
