// Package htmlpdf converts HTML documents (files or inline strings) into
// PDF files, optionally in batch over a directory.
//
// The package selects a rendering backend once, when a [Converter] is
// created, and never re-probes afterwards:
//
//   - If a Chrome/Chromium executable is available, HTML and CSS are
//     rendered with full fidelity through the DevTools protocol.
//   - Otherwise a pure-Go fallback strips markup, extracts the document
//     text, and lays it out as flowed paragraphs — a deliberately
//     degraded rendering with no CSS, images, or tables.
//   - If the fallback is disabled too (see [WithoutFallback]), every
//     conversion fails with [ErrUnavailable].
//
// Basic usage:
//
//	c, err := htmlpdf.New(htmlpdf.WithOutputDir("./pdf_outputs"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	out, err := c.ConvertFile(ctx, "report.html", "")
//	out, err  = c.ConvertString(ctx, "<h1>Hello</h1>", "hello.pdf")
//
// When the explicit output path is empty, ConvertFile derives
// <outputDir>/<stem>.pdf from the input file name and creates the output
// directory if needed.
//
// Whole directories convert with [Converter.ConvertDirectory], which
// returns a [BatchReport] with one entry per discovered .html file. A
// file that fails to convert degrades only its own entry; the rest of
// the batch proceeds:
//
//	report, err := c.ConvertDirectory(ctx, "./pages", "")
//	for _, e := range report.Entries {
//	    if e.Err != nil {
//	        fmt.Printf("%s: %v\n", e.Input, e.Err)
//	    }
//	}
//
// Page geometry for the Chrome backend is controlled with [PageConfig]
// (paper size, orientation, margins, scale), applied via
// [WithPageConfig]. Chrome or Chromium must be in PATH, or use
// [WithAutoDownload] to fetch a pinned Chromium build on first use.
package htmlpdf
