// Package palette holds the ANSI color sets behind the built-in themes.
package palette

// SGR attributes shared by all palettes.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Faint     = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
)

// Palette maps each preview element to an ANSI color prefix.
type Palette struct {
	Text       string
	Kind       string
	Rule       string
	ListMarker string
	Image      string
	Path       string
	Directive  string
}

func fg(n string) string { return "\x1b[38;5;" + n + "m" }

var (
	PaletteDefault = Palette{
		Text:       fg("252"),
		Kind:       fg("81"),
		Rule:       fg("240"),
		ListMarker: fg("214"),
		Image:      fg("141"),
		Path:       fg("109"),
		Directive:  fg("244"),
	}
	PaletteGruvbox = Palette{
		Text:       fg("223"),
		Kind:       fg("214"),
		Rule:       fg("239"),
		ListMarker: fg("142"),
		Image:      fg("175"),
		Path:       fg("109"),
		Directive:  fg("245"),
	}
	PaletteDracula = Palette{
		Text:       fg("255"),
		Kind:       fg("212"),
		Rule:       fg("61"),
		ListMarker: fg("84"),
		Image:      fg("141"),
		Path:       fg("117"),
		Directive:  fg("103"),
	}
	PaletteNord = Palette{
		Text:       fg("254"),
		Kind:       fg("110"),
		Rule:       fg("59"),
		ListMarker: fg("108"),
		Image:      fg("139"),
		Path:       fg("116"),
		Directive:  fg("246"),
	}
	PaletteSolarizedDark = Palette{
		Text:       fg("246"),
		Kind:       fg("33"),
		Rule:       fg("23"),
		ListMarker: fg("136"),
		Image:      fg("125"),
		Path:       fg("37"),
		Directive:  fg("240"),
	}
	PaletteGithubLight = Palette{
		Text:       fg("235"),
		Kind:       fg("25"),
		Rule:       fg("250"),
		ListMarker: fg("130"),
		Image:      fg("91"),
		Path:       fg("24"),
		Directive:  fg("243"),
	}
)
