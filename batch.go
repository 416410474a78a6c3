package htmlpdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BatchEntry records the outcome of one file in a directory conversion:
// either the generated PDF's path or the error that stopped it.
type BatchEntry struct {
	Input  string
	Output string
	Err    error
}

// BatchReport holds per-file outcomes of [Converter.ConvertDirectory],
// one entry per discovered HTML file, in directory listing order.
type BatchReport struct {
	Entries []BatchEntry
}

// Len returns the number of files the batch attempted.
func (r *BatchReport) Len() int {
	return len(r.Entries)
}

// Succeeded returns the number of files converted without error.
func (r *BatchReport) Succeeded() int {
	n := 0
	for _, e := range r.Entries {
		if e.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of files whose conversion errored.
func (r *BatchReport) Failed() int {
	return r.Len() - r.Succeeded()
}

// ConvertDirectory converts every file in inputDir whose name ends in
// .html (case-insensitive), writing PDFs named <stem>.pdf into
// outputDir (the Converter's output directory when empty).
//
// A missing inputDir fails with an error wrapping [ErrNotFound]. A
// directory with no HTML files yields an empty report, not an error.
// Files convert strictly sequentially and independently: one file's
// failure is recorded in its entry and never aborts the rest.
func (c *Converter) ConvertDirectory(ctx context.Context, inputDir, outputDir string) (*BatchReport, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if outputDir == "" {
		outputDir = c.cfg.outputDir
	}

	info, err := os.Stat(inputDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: html directory %s", ErrNotFound, inputDir)
	}
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("htmlpdf: listing %s: %w", inputDir, err)
	}

	report := &BatchReport{}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ".html") {
			continue
		}
		input := filepath.Join(inputDir, name)
		output := filepath.Join(outputDir, stem(name)+".pdf")

		got, err := c.ConvertFile(ctx, input, output)
		if err != nil {
			c.log.Error().Err(err).Str("input", input).Msg("batch entry failed")
			report.Entries = append(report.Entries, BatchEntry{Input: input, Err: err})
			continue
		}
		report.Entries = append(report.Entries, BatchEntry{Input: input, Output: got})
	}

	if report.Len() == 0 {
		c.log.Warn().Str("dir", inputDir).Msg("no html files found")
	} else {
		c.log.Info().
			Int("succeeded", report.Succeeded()).
			Int("total", report.Len()).
			Msg("batch conversion finished")
	}
	return report, nil
}
