package slides

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// MaxRemoteSource caps the bytes HTTPRender reads from a response body.
const MaxRemoteSource = 8 << 20

// HTTPRenderRequest configures HTTPRender.
type HTTPRenderRequest struct {
	URL     string
	Client  *http.Client
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []RenderOption
}

// HTTPRender previews a deck served over HTTP(S). Relative image and style
// paths are linked against the final response URL, so a deck at
// https://host/talks/deck.slides links "img/a.png" to
// https://host/talks/img/a.png. A WithBaseDir option in req.Options wins.
func HTTPRender(ctx context.Context, req HTTPRenderRequest) error {
	if req.URL == "" {
		return fmt.Errorf("render http: URL is required")
	}
	if req.Writer == nil {
		return fmt.Errorf("render http: writer is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	src, base, err := FetchSource(ctx, req.Client, req.URL)
	if err != nil {
		return fmt.Errorf("render http: %w", err)
	}
	opts := append([]RenderOption{WithBaseDir(base.String())}, req.Options...)
	return RenderSlides(req.Writer, src.Slides(), req.Width, req.Theme, opts...)
}

// FetchSource downloads and validates a deck. It returns the URL the body
// was served from after redirects.
func FetchSource(ctx context.Context, client *http.Client, rawURL string) (Source, *url.URL, error) {
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Source{}, nil, fmt.Errorf("build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return Source{}, nil, fmt.Errorf("unsupported scheme %q", httpReq.URL.Scheme)
	}
	httpReq.Header.Set("Accept", "text/plain, */*;q=0.5")
	resp, err := client.Do(httpReq)
	if err != nil {
		return Source{}, nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Source{}, nil, fmt.Errorf("%s: status %s", rawURL, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxRemoteSource+1))
	if err != nil {
		return Source{}, nil, fmt.Errorf("read body: %w", err)
	}
	if len(data) > MaxRemoteSource {
		return Source{}, nil, fmt.Errorf("%s: source exceeds %d bytes", rawURL, MaxRemoteSource)
	}
	src, err := NewSource(data)
	if err != nil {
		return Source{}, nil, err
	}
	return src, resp.Request.URL, nil
}
