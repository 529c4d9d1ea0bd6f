package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/slides"
)

func TestOpenInputFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.slides")
	if err := os.WriteFile(path, []byte("---Title\n"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	for _, raw := range []string{path, "file://" + path} {
		reader, closer, err := openInput(raw)
		if err != nil {
			t.Fatalf("openInput %s: %v", raw, err)
		}
		buf, _ := io.ReadAll(reader)
		_ = closer.Close()
		if string(buf) != "---Title\n" {
			t.Fatalf("unexpected content from %s: %q", raw, buf)
		}
	}
}

func TestRunRemoteInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/talks/deck.slides" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("---Title\nRemote deck\n\n[diagram] \"img/a.png\"\n"))
	}))
	defer srv.Close()
	deck := srv.URL + "/talks/deck.slides"

	var stdout, stderr bytes.Buffer
	if code := run([]string{"--preview", "--boring", "--osc8", "on", "-w", "60", deck}, &stdout, &stderr); code != 0 {
		t.Fatalf("preview exit %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Remote deck") {
		t.Fatalf("unexpected preview: %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), srv.URL+"/talks/img/a.png") {
		t.Fatalf("image not linked against the deck URL: %q", stdout.String())
	}

	out := filepath.Join(t.TempDir(), "remote.pdf")
	stdout.Reset()
	if code := run([]string{"-o", out, deck}, &stdout, &stderr); code != 0 {
		t.Fatalf("pdf exit %d: %s", code, stderr.String())
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("pdf not written: %v", err)
	}

	stderr.Reset()
	if code := run([]string{"--preview", srv.URL + "/missing"}, &stdout, &stderr); code != 1 {
		t.Fatalf("missing remote deck exit %d", code)
	}
	if !strings.Contains(stderr.String(), "404") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestResolveOSC8(t *testing.T) {
	cases := map[string]bool{
		"on":  true,
		"off": false,
		"1":   true,
		"0":   false,
	}
	for input, want := range cases {
		got, err := resolveOSC8(input)
		if err != nil {
			t.Fatalf("resolveOSC8(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("resolveOSC8(%q)=%v want %v", input, got, want)
		}
	}
	if _, err := resolveOSC8("nope"); err == nil {
		t.Fatalf("expected error for invalid osc8 value")
	}
}

func TestCatalogFilesPrecedence(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "talk", "deck.slides")
	meta := slides.FrontMatter{Style: "dark.yaml", Templates: []string{"t1.yaml", "/abs/t2.yaml"}}

	b := &builder{input: input}
	style, templates := b.catalogFiles(meta)
	if want := filepath.Join(dir, "talk", "dark.yaml"); style != want {
		t.Fatalf("front matter style = %q, want %q", style, want)
	}
	if len(templates) != 2 || templates[0] != filepath.Join(dir, "talk", "t1.yaml") || templates[1] != "/abs/t2.yaml" {
		t.Fatalf("front matter templates = %v", templates)
	}

	b.opts = options{style: "/etc/style.yaml", templates: []string{"/etc/a.yaml"}}
	style, templates = b.catalogFiles(meta)
	if style != "/etc/style.yaml" || len(templates) != 1 || templates[0] != "/etc/a.yaml" {
		t.Fatalf("flags did not win: %q %v", style, templates)
	}
}

func TestRunWritesPDF(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "deck.slides")
	src := "---\ntitle: Demo\n---\n---Title\nHello\n\n---Head_Cont\nList\n- one\n  - two\n"
	if err := os.WriteFile(input, []byte(src), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	out := filepath.Join(dir, "build", "deck.pdf")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-o", out, input}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestRunPreview(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "deck.slides")
	if err := os.WriteFile(input, []byte("---Title\nHello preview\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--preview", "--boring", "-w", "40", input}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "Title") || !strings.Contains(out, "Hello preview") {
		t.Fatalf("unexpected preview: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("boring preview contains ANSI escapes: %q", out)
	}
}

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.slides")
	if err := os.WriteFile(bad, []byte("---Nope\nx\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-o", filepath.Join(dir, "x.pdf"), bad}, &stdout, &stderr); code != 1 {
		t.Fatalf("unknown kind exit = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "unknown slide kind") {
		t.Fatalf("stderr = %q", stderr.String())
	}
	if code := run(nil, &stdout, &stderr); code != 2 {
		t.Fatalf("missing input exit = %d, want 2", code)
	}
	if code := run([]string{"--theme", "nope", bad}, &stdout, &stderr); code != 2 {
		t.Fatalf("unknown theme exit = %d, want 2", code)
	}
	if code := run([]string{"--log-level", "loud", bad}, &stdout, &stderr); code != 2 {
		t.Fatalf("bad log level exit = %d, want 2", code)
	}
	if code := run([]string{"-s", filepath.Join(dir, "missing.yaml"), "-o", filepath.Join(dir, "y.pdf"), bad}, &stdout, &stderr); code != 1 {
		t.Fatalf("missing style exit = %d, want 1", code)
	}
}

func TestRunListThemes(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--list-themes"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout.String(), "gruvbox") {
		t.Fatalf("theme list = %q", stdout.String())
	}
}
