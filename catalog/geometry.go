package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const epsilon = 1e-9

// Point is a pair of coordinates measured from the top-left corner.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Rect is an origin and a size.
type Rect struct {
	Orig Point `yaml:"orig"`
	Size Point `yaml:"size"`
}

// Scale maps a fractional rectangle into the outer rectangle.
func (r Rect) Scale(outer Rect) Rect {
	return Rect{
		Orig: Point{
			X: outer.Orig.X + r.Orig.X*outer.Size.X,
			Y: outer.Orig.Y + r.Orig.Y*outer.Size.Y,
		},
		Size: Point{X: r.Size.X * outer.Size.X, Y: r.Size.Y * outer.Size.Y},
	}
}

// Contains reports whether p lies inside r, borders included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Orig.X && p.Y >= r.Orig.Y &&
		p.X <= r.Orig.X+r.Size.X && p.Y <= r.Orig.Y+r.Size.Y
}

func (r Rect) validFraction() error {
	if r.Size.X <= 0 || r.Size.Y <= 0 {
		return fmt.Errorf("size %gx%g must be positive", r.Size.X, r.Size.Y)
	}
	unit := Rect{Size: Point{X: 1, Y: 1}}
	far := Point{X: r.Orig.X + r.Size.X - epsilon, Y: r.Orig.Y + r.Size.Y - epsilon}
	if !unit.Contains(r.Orig) || !unit.Contains(far) {
		return fmt.Errorf("rectangle %+v leaves the unit square", r)
	}
	return nil
}

// Vertical is the vertical placement of text inside an area.
type Vertical uint8

// Horizontal is the horizontal alignment of text inside an area.
type Horizontal uint8

const (
	Top Vertical = iota
	Middle
	Bottom
)

const (
	Left Horizontal = iota
	Center
	Right
)

// Orientation places text inside an area. The zero value is top left.
type Orientation struct {
	Vertical   Vertical
	Horizontal Horizontal
}

// ParseOrientation reads "<vertical> <horizontal>" such as "bottom middle"
// or "top-left". A single word sets one axis; "middle" alone centers both.
func ParseOrientation(s string) (Orientation, error) {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == ','
	})
	var o Orientation
	switch len(fields) {
	case 0:
		return o, nil
	case 1:
		switch fields[0] {
		case "top":
			o.Vertical = Top
		case "bottom":
			o.Vertical = Bottom
		case "left":
			o.Horizontal = Left
		case "right":
			o.Horizontal = Right
		case "center":
			o.Horizontal = Center
		case "middle":
			o = Orientation{Vertical: Middle, Horizontal: Center}
		default:
			return o, fmt.Errorf("orientation %q: unknown placement", s)
		}
		return o, nil
	case 2:
		switch fields[0] {
		case "top":
			o.Vertical = Top
		case "middle", "center":
			o.Vertical = Middle
		case "bottom":
			o.Vertical = Bottom
		default:
			return o, fmt.Errorf("orientation %q: unknown vertical placement %q", s, fields[0])
		}
		switch fields[1] {
		case "left":
			o.Horizontal = Left
		case "middle", "center":
			o.Horizontal = Center
		case "right":
			o.Horizontal = Right
		default:
			return o, fmt.Errorf("orientation %q: unknown horizontal placement %q", s, fields[1])
		}
		return o, nil
	default:
		return o, fmt.Errorf("orientation %q: expected at most two words", s)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Orientation) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseOrientation(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Align returns the gofpdf-style alignment letter for the horizontal axis.
func (h Horizontal) Align() string {
	switch h {
	case Center:
		return "C"
	case Right:
		return "R"
	default:
		return "L"
	}
}
