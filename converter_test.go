package htmlpdf_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	htmlpdf "github.com/bytescrumDev35/fluffy-spoon-html-to-pdf"
)

// newTextConverter builds a Converter on the deterministic text backend
// so tests run without a browser.
func newTextConverter(t *testing.T, opts ...htmlpdf.Option) *htmlpdf.Converter {
	t.Helper()
	opts = append([]htmlpdf.Option{
		htmlpdf.WithBackend(htmlpdf.NewTextBackend()),
		htmlpdf.WithOutputDir(t.TempDir()),
	}, opts...)
	c, err := htmlpdf.New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

// isPDF checks whether data starts with the PDF magic number.
func isPDF(data []byte) bool {
	return len(data) > 4 && string(data[:5]) == "%PDF-"
}

func writeHTML(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertFile_DerivedOutputPath(t *testing.T) {
	outDir := t.TempDir()
	c, err := htmlpdf.New(
		htmlpdf.WithBackend(htmlpdf.NewTextBackend()),
		htmlpdf.WithOutputDir(outDir),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	in := writeHTML(t, t.TempDir(), "report.html", "<h1>Report</h1>")

	got, err := c.ConvertFile(context.Background(), in, "")
	if err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}
	want := filepath.Join(outDir, "report.pdf")
	if got != want {
		t.Errorf("derived path = %q, want %q", got, want)
	}

	data, err := os.ReadFile(got)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !isPDF(data) {
		t.Error("output is not a valid PDF")
	}
}

func TestConvertFile_ExplicitOutputPath(t *testing.T) {
	c := newTextConverter(t)
	in := writeHTML(t, t.TempDir(), "page.html", "<p>hello</p>")

	out := filepath.Join(t.TempDir(), "custom.pdf")
	got, err := c.ConvertFile(context.Background(), in, out)
	if err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}
	if got != out {
		t.Errorf("output path = %q, want %q", got, out)
	}
}

func TestConvertFile_CreatesParentDirectory(t *testing.T) {
	c := newTextConverter(t)
	in := writeHTML(t, t.TempDir(), "page.html", "<p>hello</p>")

	out := filepath.Join(t.TempDir(), "nested", "deeper", "page.pdf")
	if _, err := c.ConvertFile(context.Background(), in, out); err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestConvertFile_NotFound(t *testing.T) {
	c := newTextConverter(t)

	_, err := c.ConvertFile(context.Background(), "/nonexistent/missing.html", "")
	if !errors.Is(err, htmlpdf.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if errors.Is(err, htmlpdf.ErrConversionFailed) {
		t.Error("missing input must never report ErrConversionFailed")
	}
}

func TestConvertString(t *testing.T) {
	c := newTextConverter(t)

	out := filepath.Join(t.TempDir(), "inline.pdf")
	got, err := c.ConvertString(context.Background(), "<title>Inline</title><p>body</p>", out)
	if err != nil {
		t.Fatalf("ConvertString: %v", err)
	}
	if got != out {
		t.Errorf("output path = %q, want %q", got, out)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !isPDF(data) {
		t.Error("output is not a valid PDF")
	}
}

func TestConvertString_RequiresOutputPath(t *testing.T) {
	c := newTextConverter(t)

	if _, err := c.ConvertString(context.Background(), "<p>x</p>", ""); err == nil {
		t.Fatal("expected error for empty output path")
	}
}

func TestConvert_Unavailable(t *testing.T) {
	// An explicit bad Chrome path plus a disabled fallback leaves the
	// converter with no backend at all.
	c, err := htmlpdf.New(
		htmlpdf.WithoutFallback(),
		htmlpdf.WithChromePath(filepath.Join(t.TempDir(), "no-such-chrome")),
		htmlpdf.WithOutputDir(t.TempDir()),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	in := writeHTML(t, t.TempDir(), "page.html", "<p>hello</p>")

	if _, err := c.ConvertFile(context.Background(), in, ""); !errors.Is(err, htmlpdf.ErrUnavailable) {
		t.Errorf("ConvertFile error = %v, want ErrUnavailable", err)
	}
	if _, err := c.ConvertString(context.Background(), "<p>x</p>", "out.pdf"); !errors.Is(err, htmlpdf.ErrUnavailable) {
		t.Errorf("ConvertString error = %v, want ErrUnavailable", err)
	}
}

func TestConverter_CloseIdempotent(t *testing.T) {
	c, err := htmlpdf.New(
		htmlpdf.WithBackend(htmlpdf.NewTextBackend()),
		htmlpdf.WithOutputDir(t.TempDir()),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestConverter_UsedAfterClose(t *testing.T) {
	c, err := htmlpdf.New(
		htmlpdf.WithBackend(htmlpdf.NewTextBackend()),
		htmlpdf.WithOutputDir(t.TempDir()),
	)
	if err != nil {
		t.Fatal(err)
	}
	c.Close()

	if _, err := c.ConvertString(context.Background(), "<p>x</p>", "out.pdf"); err != htmlpdf.ErrClosed {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if _, err := c.ConvertDirectory(context.Background(), ".", ""); err != htmlpdf.ErrClosed {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestNew_CreatesOutputDirectory(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "pdf_outputs")
	c, err := htmlpdf.New(
		htmlpdf.WithBackend(htmlpdf.NewTextBackend()),
		htmlpdf.WithOutputDir(outDir),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	info, err := os.Stat(outDir)
	if err != nil || !info.IsDir() {
		t.Errorf("output directory not created: %v", err)
	}
}
