package htmlpdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// chromeCandidates are the executable names probed in PATH, in order.
var chromeCandidates = []string{
	"chromium-browser", "chromium", "google-chrome",
	"google-chrome-stable", "chrome",
}

// findChrome resolves the browser executable according to cfg: an
// explicit path wins, then PATH candidates, then an auto-downloaded
// Chromium build if enabled.
func findChrome(cfg converterConfig) (string, error) {
	if cfg.chromePath != "" {
		if _, err := os.Stat(cfg.chromePath); err != nil {
			return "", fmt.Errorf("htmlpdf: chrome executable: %w", err)
		}
		return cfg.chromePath, nil
	}
	for _, name := range chromeCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	if cfg.autoDownload {
		return resolveBrowser()
	}
	return "", errors.New("htmlpdf: no Chrome or Chromium executable found in PATH")
}

// chromeBackend renders HTML with full CSS fidelity through a headless
// browser. The browser process is started once and reused; each
// conversion runs in a fresh tab.
type chromeBackend struct {
	timeout       time.Duration
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

// NewChromeBackend starts a headless browser and returns a [Backend]
// driving it. It fails when no browser executable can be resolved or
// the browser does not start. The caller owns the returned backend and
// must Close it.
func NewChromeBackend(opts ...Option) (Backend, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return newChromeBackend(cfg)
}

func newChromeBackend(cfg converterConfig) (*chromeBackend, error) {
	execPath, err := findChrome(cfg)
	if err != nil {
		return nil, err
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(execPath),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-translate", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("headless", cfg.headless),
	)
	if cfg.noSandbox {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so errors surface at selection time.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("htmlpdf: starting browser: %w", err)
	}

	return &chromeBackend{
		timeout:       cfg.timeout,
		allocCtx:      allocCtx,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

func (b *chromeBackend) Name() string { return "chrome" }

// Close shuts down the browser process. It is safe to call twice.
func (b *chromeBackend) Close() error {
	b.browserCancel()
	b.allocCancel()
	return nil
}

// RenderHTML renders an in-memory HTML document. The content is staged
// in a temporary file so that Chrome resolves it like any local page.
func (b *chromeBackend) RenderHTML(ctx context.Context, html string, pg *PageConfig) (*Result, error) {
	f, err := os.CreateTemp("", "htmlpdf-*.html")
	if err != nil {
		return nil, fmt.Errorf("htmlpdf: creating temp file: %w", err)
	}
	name := f.Name()
	defer os.Remove(name)

	if _, err := f.WriteString(html); err != nil {
		f.Close()
		return nil, fmt.Errorf("htmlpdf: writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("htmlpdf: closing temp file: %w", err)
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, fmt.Errorf("htmlpdf: resolving path: %w", err)
	}
	return b.render(ctx, "file://"+abs, pg)
}

// RenderFile renders a local HTML file. Relative resources referenced by
// the document resolve against the file's directory.
func (b *chromeBackend) RenderFile(ctx context.Context, path string, pg *PageConfig) (*Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("htmlpdf: resolving path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("htmlpdf: %w", err)
	}
	return b.render(ctx, "file://"+abs, pg)
}

// render navigates a fresh tab to targetURL and prints it to PDF.
func (b *chromeBackend) render(ctx context.Context, targetURL string, pg *PageConfig) (*Result, error) {
	resolved := pg.resolved()

	tabCtx, tabCancel := chromedp.NewContext(b.browserCtx)
	defer tabCancel()

	if b.timeout > 0 {
		var cancel context.CancelFunc
		tabCtx, cancel = context.WithTimeout(tabCtx, b.timeout)
		defer cancel()
	}

	// Caller cancellation tears down the tab; the browser survives.
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	width, height := resolved.paperInches()
	marginTop, marginRight, marginBottom, marginLeft := resolved.marginInches()

	var buf []byte
	if err := chromedp.Run(tabCtx,
		chromedp.Navigate(targetURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			params := page.PrintToPDF().
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(marginTop).
				WithMarginRight(marginRight).
				WithMarginBottom(marginBottom).
				WithMarginLeft(marginLeft).
				WithScale(resolved.Scale).
				WithPrintBackground(resolved.PrintBackground).
				WithLandscape(resolved.Orientation == Landscape)

			var err error
			buf, _, err = params.Do(ctx)
			return err
		}),
	); err != nil {
		return nil, fmt.Errorf("htmlpdf: rendering %s: %w", targetURL, err)
	}

	return &Result{data: buf}, nil
}
