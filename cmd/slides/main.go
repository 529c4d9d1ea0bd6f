package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/slides"
	"pkt.systems/slides/catalog"
	"pkt.systems/slides/internal/watch"
	"pkt.systems/slides/pdf"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
	defaultOutput    = "out.pdf"
)

func init() {
	version.SetDefaultModule("pkt.systems/slides")
}

type options struct {
	style           string
	templates       []string
	output          string
	preview         bool
	themeName       string
	width           int
	osc8            string
	boring          bool
	decorationLayer bool
	watch           bool
	logLevel        string
}

// errUsage marks errors that exit with status 2.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		opts        options
		listThemes  bool
		showVersion bool
	)
	flags := pflag.NewFlagSet("slides", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.style, "style", "s", "", "Style file (YAML or JSON)")
	flags.StringArrayVarP(&opts.templates, "templates", "t", nil, "Template file, may be repeated; later files win")
	flags.StringVarP(&opts.output, "output", "o", defaultOutput, "Output PDF path, - for stdout")
	flags.BoolVar(&opts.preview, "preview", false, "Write an ANSI preview to stdout instead of a PDF")
	flags.StringVar(&opts.themeName, "theme", defaultThemeName, "Preview theme name")
	flags.BoolVar(&listThemes, "list-themes", false, "List available preview themes")
	flags.IntVarP(&opts.width, "width", "w", 0, "Preview width override (0 uses terminal width if available)")
	flags.StringVar(&opts.osc8, "osc8", "auto", "OSC8 hyperlinks in the preview: auto|on|off")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Plain preview, or a PDF without colors")
	flags.BoolVar(&opts.decorationLayer, "decoration-layer", false, "Put template decorations on a PDF layer viewers can hide")
	flags.BoolVar(&opts.watch, "watch", false, "Rebuild whenever the source, style or template files change")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: slides [flags] FILE\n")
		fmt.Fprintln(stderr, "\nFILE may be a path, a file:// URL or an http(s) URL.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if listThemes {
		printThemes(stdout)
		return 0
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}
	logger, err := newLogger(stderr, opts.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --log-level %q: %v\n", opts.logLevel, err)
		return 2
	}

	b := &builder{opts: opts, input: flags.Arg(0), stdout: stdout, logger: logger}
	if err := b.prepare(); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitCode(err)
	}
	if !opts.watch {
		if err := b.build(); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return exitCode(err)
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := b.watch(ctx); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	if errors.Is(err, errUsage) {
		return 2
	}
	return 1
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// builder turns one input into a PDF or a preview. It is rerun on every
// change in watch mode.
type builder struct {
	opts   options
	input  string
	stdout io.Writer
	logger *slog.Logger

	theme slides.Theme
	osc8  bool
	width int
}

func (b *builder) prepare() error {
	if b.opts.watch && (isRemote(b.input) || b.input == "-") {
		return fmt.Errorf("%w: --watch needs a local file", errUsage)
	}
	theme, ok := slides.ThemeByName(b.opts.themeName)
	if !ok {
		return fmt.Errorf("%w: unknown theme %q (see --list-themes)", errUsage, b.opts.themeName)
	}
	if b.opts.boring {
		theme = slides.BoringTheme()
	}
	b.theme = theme
	osc8, err := resolveOSC8(b.opts.osc8)
	if err != nil {
		return fmt.Errorf("%w: invalid --osc8 %q: %v", errUsage, b.opts.osc8, err)
	}
	b.osc8 = osc8
	b.width = resolveWidth(b.opts.width)
	if !b.opts.preview && b.opts.output == "-" && isTerminal(b.stdout) {
		return fmt.Errorf("%w: refusing to write PDF to terminal; use -o/--output", errUsage)
	}
	return nil
}

// catalogFiles picks the style and template files: flags win over front
// matter, and front matter paths are relative to the input file.
func (b *builder) catalogFiles(meta slides.FrontMatter) (string, []string) {
	baseDir := b.baseDir()
	style := b.opts.style
	if style != "" {
		style = normalizePath(style)
	} else if meta.Style != "" {
		style = resolveRelative(baseDir, meta.Style)
	}
	var templates []string
	if len(b.opts.templates) > 0 {
		for _, t := range b.opts.templates {
			templates = append(templates, normalizePath(t))
		}
	} else {
		for _, t := range meta.Templates {
			templates = append(templates, resolveRelative(baseDir, t))
		}
	}
	return style, templates
}

func (b *builder) baseDir() string {
	if isRemote(b.input) {
		wd, err := os.Getwd()
		if err != nil {
			return "."
		}
		return wd
	}
	return filepath.Dir(normalizePath(localPath(b.input)))
}

func (b *builder) read() (slides.Source, error) {
	if isRemote(b.input) {
		src, _, err := slides.FetchSource(context.Background(), nil, strings.TrimSpace(b.input))
		if err != nil {
			return slides.Source{}, fmt.Errorf("open input: %w", err)
		}
		return src, nil
	}
	r, closer, err := openInput(b.input)
	if err != nil {
		return slides.Source{}, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = closer.Close() }()
	src, err := slides.ReadSource(r)
	if err != nil {
		return slides.Source{}, fmt.Errorf("%s: %w", b.input, err)
	}
	return src, nil
}

func (b *builder) build() error {
	if b.opts.preview && isRemote(b.input) {
		return slides.HTTPRender(context.Background(), slides.HTTPRenderRequest{
			URL:     strings.TrimSpace(b.input),
			Writer:  b.stdout,
			Width:   b.width,
			Theme:   b.theme,
			Options: []slides.RenderOption{slides.WithOSC8(b.osc8)},
		})
	}
	src, err := b.read()
	if err != nil {
		return err
	}
	if b.opts.preview {
		return slides.RenderSlides(b.stdout, src.Slides(), b.width, b.theme,
			slides.WithOSC8(b.osc8), slides.WithBaseDir(b.baseDir()))
	}

	style, templates := b.catalogFiles(src.Meta)
	cat, err := catalog.NewBuilder(catalog.OSLoader()).
		WithStyle(style).
		WithTemplates(templates...).
		WithLogger(b.logger).
		Build()
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	var out bytes.Buffer
	err = pdf.Render(pdf.RenderRequest{
		Slides:  src.Slides(),
		Writer:  &out,
		Catalog: cat,
		Config: pdf.Config{
			DecorationLayer: b.opts.decorationLayer,
			Boring:          b.opts.boring,
			Title:           src.Meta.Title,
			Author:          src.Meta.Author,
		},
		BaseDir: b.baseDir(),
		Logger:  b.logger,
	})
	if err != nil {
		return err
	}
	if err := writeOutput(b.opts.output, b.stdout, out.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	b.logger.Info("pdf written", "path", b.opts.output, "bytes", out.Len())
	return nil
}

// watchedFiles lists the input and the catalogue files it currently uses.
func (b *builder) watchedFiles() []string {
	files := []string{normalizePath(localPath(b.input))}
	var meta slides.FrontMatter
	if src, err := b.read(); err == nil {
		meta = src.Meta
	}
	style, templates := b.catalogFiles(meta)
	if style != "" {
		files = append(files, style)
	}
	return append(files, templates...)
}

func (b *builder) watch(ctx context.Context) error {
	if err := b.build(); err != nil {
		b.logger.Error("build failed", "error", err)
	}
	fw, err := watch.NewFileWatcher(b.watchedFiles(), watch.DefaultDebounce, b.logger)
	if err != nil {
		return err
	}
	return fw.Watch(ctx, b.build)
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(clean)+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), clean)
}

func printThemes(w io.Writer) {
	for _, name := range slides.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return slides.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func isRemote(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}

// localPath strips a file:// scheme.
func localPath(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || !strings.EqualFold(u.Scheme, "file") {
		return raw
	}
	path := u.Path
	if path == "" {
		path = u.Host
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	return path
}

func openInput(raw string) (io.Reader, io.Closer, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil, fmt.Errorf("empty input argument")
	}
	if raw == "-" {
		return os.Stdin, io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(normalizePath(localPath(raw)))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveRelative(baseDir, p string) string {
	if strings.HasPrefix(p, "~") || filepath.IsAbs(p) {
		return normalizePath(p)
	}
	return filepath.Join(baseDir, p)
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
