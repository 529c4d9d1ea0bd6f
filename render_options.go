package slides

// RenderOption configures preview rendering.
type RenderOption func(*renderConfig)

type renderConfig struct {
	osc8    bool
	baseDir string
	numbers bool
}

// WithOSC8 enables or disables OSC 8 hyperlinks on image and style paths.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}

// WithBaseDir sets the directory or http(s) URL relative paths are linked
// against when OSC 8 hyperlinks are enabled.
func WithBaseDir(dir string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.baseDir = dir
	}
}

// WithSlideNumbers prefixes every slide header with its 1-based position.
func WithSlideNumbers(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.numbers = enabled
	}
}
