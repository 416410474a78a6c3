package htmlpdf_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	htmlpdf "github.com/bytescrumDev35/fluffy-spoon-html-to-pdf"
)

func TestConvertDirectory_CountsOnlyHTML(t *testing.T) {
	c := newTextConverter(t)

	dir := t.TempDir()
	writeHTML(t, dir, "a.html", "<p>a</p>")
	writeHTML(t, dir, "b.HTML", "<p>b</p>")
	writeHTML(t, dir, "c.Html", "<p>c</p>")
	writeHTML(t, dir, "notes.txt", "not html")
	writeHTML(t, dir, "partial.htm", "<p>wrong extension</p>")

	report, err := c.ConvertDirectory(context.Background(), dir, t.TempDir())
	if err != nil {
		t.Fatalf("ConvertDirectory: %v", err)
	}
	if report.Len() != 3 {
		t.Fatalf("report has %d entries, want 3", report.Len())
	}
	if report.Succeeded() != 3 {
		t.Errorf("Succeeded() = %d, want 3", report.Succeeded())
	}
	for _, e := range report.Entries {
		if e.Err != nil {
			t.Errorf("%s: unexpected error: %v", e.Input, e.Err)
			continue
		}
		if filepath.Ext(e.Output) != ".pdf" {
			t.Errorf("%s: output %q is not a .pdf", e.Input, e.Output)
		}
		if _, err := os.Stat(e.Output); err != nil {
			t.Errorf("%s: output missing: %v", e.Input, err)
		}
	}
}

func TestConvertDirectory_EmptyReportNotError(t *testing.T) {
	c := newTextConverter(t)

	dir := t.TempDir()
	writeHTML(t, dir, "readme.md", "# not html")

	report, err := c.ConvertDirectory(context.Background(), dir, t.TempDir())
	if err != nil {
		t.Fatalf("ConvertDirectory: %v", err)
	}
	if report.Len() != 0 {
		t.Errorf("report has %d entries, want 0", report.Len())
	}
}

func TestConvertDirectory_MissingDir(t *testing.T) {
	c := newTextConverter(t)

	_, err := c.ConvertDirectory(context.Background(), "/nonexistent/htmldir", "")
	if !errors.Is(err, htmlpdf.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestConvertDirectory_FailureDoesNotAbortBatch(t *testing.T) {
	c := newTextConverter(t)

	dir := t.TempDir()
	writeHTML(t, dir, "good1.html", "<p>one</p>")
	writeHTML(t, dir, "good2.html", "<p>two</p>")
	// A directory with an .html name passes the extension filter but
	// cannot be read as a file, so its entry must fail.
	if err := os.Mkdir(filepath.Join(dir, "broken.html"), 0o755); err != nil {
		t.Fatal(err)
	}

	report, err := c.ConvertDirectory(context.Background(), dir, t.TempDir())
	if err != nil {
		t.Fatalf("ConvertDirectory: %v", err)
	}
	if report.Len() != 3 {
		t.Fatalf("report has %d entries, want 3", report.Len())
	}
	if report.Succeeded() != 2 {
		t.Errorf("Succeeded() = %d, want 2", report.Succeeded())
	}
	if report.Failed() != 1 {
		t.Errorf("Failed() = %d, want 1", report.Failed())
	}
	for _, e := range report.Entries {
		if filepath.Base(e.Input) == "broken.html" {
			if e.Err == nil {
				t.Error("broken.html should have failed")
			}
			continue
		}
		if e.Err != nil {
			t.Errorf("%s: unexpected error: %v", e.Input, e.Err)
		}
	}
}

func TestConvertDirectory_DefaultOutputDir(t *testing.T) {
	outDir := t.TempDir()
	c, err := htmlpdf.New(
		htmlpdf.WithBackend(htmlpdf.NewTextBackend()),
		htmlpdf.WithOutputDir(outDir),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	dir := t.TempDir()
	writeHTML(t, dir, "page.html", "<p>x</p>")

	report, err := c.ConvertDirectory(context.Background(), dir, "")
	if err != nil {
		t.Fatalf("ConvertDirectory: %v", err)
	}
	if report.Len() != 1 {
		t.Fatalf("report has %d entries, want 1", report.Len())
	}
	want := filepath.Join(outDir, "page.pdf")
	if report.Entries[0].Output != want {
		t.Errorf("output = %q, want %q", report.Entries[0].Output, want)
	}
}
