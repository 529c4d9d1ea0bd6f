package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned by Lookup for a kind no template defines.
var ErrUnknownKind = errors.New("catalog: unknown slide kind")

// DefaultFontSize is used for areas that omit fontSize.
const DefaultFontSize = 18

// Decoration is a filled rectangle drawn under the contents.
type Decoration struct {
	Rect  `yaml:",inline"`
	Color int `yaml:"color"`
}

// Area receives one content item of a slide.
type Area struct {
	Rect        `yaml:",inline"`
	Orientation Orientation `yaml:"orientation"`
	FontSize    float64     `yaml:"fontSize"`
}

// SlideTemplate lays out one slide kind. Contents are matched to Areas in
// order.
type SlideTemplate struct {
	Decorations []Decoration `yaml:"decoration"`
	Areas       []Area       `yaml:"template"`
}

// Templates is a set of slide templates sharing a page margin.
type Templates struct {
	Margin Rect
	Slides map[string]SlideTemplate
}

type templatesFile struct {
	Margin *Rect                    `yaml:"margin"`
	Slides map[string]SlideTemplate `yaml:"slides"`
}

// DefaultMargin leaves five percent of the page on every side.
var DefaultMargin = Rect{Orig: Point{X: 0.05, Y: 0.05}, Size: Point{X: 0.9, Y: 0.9}}

func area(x, y, w, h, size float64, o Orientation) Area {
	return Area{Rect: Rect{Orig: Point{X: x, Y: y}, Size: Point{X: w, Y: h}}, FontSize: size, Orientation: o}
}

// DefaultTemplates returns the built-in kinds.
func DefaultTemplates() Templates {
	header := Orientation{Vertical: Bottom, Horizontal: Center}
	body := Orientation{}
	return Templates{
		Margin: DefaultMargin,
		Slides: map[string]SlideTemplate{
			"Title": {Areas: []Area{
				area(0, 0, 1, 0.8, 36, header),
				area(0, 0.8, 1, 0.2, 18, body),
			}},
			"Head_Cont": {Areas: []Area{
				area(0, 0, 1, 0.3, 24, header),
				area(0, 0.3, 1, 0.7, 18, body),
			}},
			"Vert_Split": {Areas: []Area{
				area(0, 0, 0.5, 0.3, 24, header),
				area(0, 0.3, 0.5, 0.7, 18, body),
				area(0.5, 0, 0.5, 0.3, 24, header),
				area(0.5, 0.3, 0.5, 0.7, 18, body),
			}},
			"Two_Hor": {Areas: []Area{
				area(0, 0, 1, 0.5, 20, body),
				area(0, 0.5, 1, 0.5, 20, body),
			}},
		},
	}
}

// ParseTemplates decodes a template document. A missing margin is reported
// as nil so callers merging several files keep the earlier one.
func ParseTemplates(data []byte) (map[string]SlideTemplate, *Rect, error) {
	var raw templatesFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("parse templates: %w", err)
	}
	if raw.Margin != nil {
		if err := raw.Margin.validFraction(); err != nil {
			return nil, nil, fmt.Errorf("parse templates: margin: %w", err)
		}
	}
	for _, kind := range slices.Sorted(maps.Keys(raw.Slides)) {
		tmpl := raw.Slides[kind]
		for i := range tmpl.Areas {
			if err := tmpl.Areas[i].validFraction(); err != nil {
				return nil, nil, fmt.Errorf("parse templates: %s area %d: %w", kind, i, err)
			}
			if tmpl.Areas[i].FontSize == 0 {
				tmpl.Areas[i].FontSize = DefaultFontSize
			}
			if tmpl.Areas[i].FontSize < 0 {
				return nil, nil, fmt.Errorf("parse templates: %s area %d: negative font size", kind, i)
			}
		}
		for i, d := range tmpl.Decorations {
			if err := d.validFraction(); err != nil {
				return nil, nil, fmt.Errorf("parse templates: %s decoration %d: %w", kind, i, err)
			}
		}
		raw.Slides[kind] = tmpl
	}
	return raw.Slides, raw.Margin, nil
}
