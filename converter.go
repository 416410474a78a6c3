package htmlpdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Converter converts HTML documents to PDF files on disk.
//
// A Converter selects its rendering [Backend] once, at construction,
// and keeps it for its whole lifetime. It is safe for concurrent use,
// though batch conversion itself is strictly sequential.
//
// Call [Converter.Close] when the Converter is no longer needed to
// release backend resources (for the Chrome backend, the browser
// process).
type Converter struct {
	cfg     converterConfig
	backend Backend
	log     zerolog.Logger

	mu     sync.Mutex
	closed bool
}

// New creates a Converter with the given options and performs backend
// selection: Chrome if a browser executable can be resolved, otherwise
// the text fallback, otherwise no backend at all (conversions then fail
// with [ErrUnavailable]). The output directory is created if missing.
func New(opts ...Option) (*Converter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if err := os.MkdirAll(cfg.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("htmlpdf: creating output directory %s: %w", cfg.outputDir, err)
	}
	log := cfg.logger
	log.Debug().Str("output_dir", cfg.outputDir).Msg("output directory ready")

	backend := cfg.backend
	if backend == nil {
		chrome, err := newChromeBackend(cfg)
		switch {
		case err == nil:
			backend = chrome
		case cfg.noFallback:
			log.Warn().Err(err).Msg("no rendering backend available; conversions will fail")
		default:
			log.Debug().Err(err).Msg("chrome unavailable, using text fallback")
			backend = NewTextBackend()
		}
	}
	if backend != nil {
		log.Info().Str("backend", backend.Name()).Msg("selected PDF backend")
	}

	return &Converter{cfg: cfg, backend: backend, log: log}, nil
}

// Close releases the selected backend. Close is idempotent.
func (c *Converter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	if c.backend != nil {
		return c.backend.Close()
	}
	return nil
}

// ConvertFile converts the HTML file at htmlPath and writes the PDF to
// outputPath. An empty outputPath derives <outputDir>/<stem>.pdf from
// the input file name. The parent directory of the output is created if
// needed. The generated PDF's path is returned.
//
// A missing input fails with an error wrapping [ErrNotFound]; backend
// rendering errors wrap [ErrConversionFailed] and carry the backend's
// message.
func (c *Converter) ConvertFile(ctx context.Context, htmlPath, outputPath string) (string, error) {
	if err := c.checkClosed(); err != nil {
		return "", err
	}
	if c.backend == nil {
		return "", ErrUnavailable
	}
	if _, err := os.Stat(htmlPath); err != nil {
		return "", fmt.Errorf("%w: html file %s", ErrNotFound, htmlPath)
	}
	if outputPath == "" {
		outputPath = filepath.Join(c.cfg.outputDir, stem(htmlPath)+".pdf")
	}

	c.log.Info().Str("input", htmlPath).Str("output", outputPath).Msg("converting html file")

	res, err := c.backend.RenderFile(ctx, htmlPath, c.cfg.page)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}
	if err := res.WriteToFile(outputPath, 0o644); err != nil {
		return "", fmt.Errorf("htmlpdf: writing %s: %w", outputPath, err)
	}

	c.log.Info().Str("output", outputPath).Int("bytes", res.Len()).Msg("pdf generated")
	return outputPath, nil
}

// ConvertString converts in-memory HTML content and writes the PDF to
// outputPath, which must be non-empty since there is no input file name
// to derive one from. The contract otherwise matches [Converter.ConvertFile].
func (c *Converter) ConvertString(ctx context.Context, htmlContent, outputPath string) (string, error) {
	if err := c.checkClosed(); err != nil {
		return "", err
	}
	if c.backend == nil {
		return "", ErrUnavailable
	}
	if outputPath == "" {
		return "", errors.New("htmlpdf: output path required for string conversion")
	}

	c.log.Info().Int("chars", len(htmlContent)).Str("output", outputPath).Msg("converting html content")

	res, err := c.backend.RenderHTML(ctx, htmlContent, c.cfg.page)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}
	if err := res.WriteToFile(outputPath, 0o644); err != nil {
		return "", fmt.Errorf("htmlpdf: writing %s: %w", outputPath, err)
	}

	c.log.Info().Str("output", outputPath).Int("bytes", res.Len()).Msg("pdf generated")
	return outputPath, nil
}

func (c *Converter) checkClosed() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	return nil
}

// stem returns the base name of path without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
