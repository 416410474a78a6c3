package htmlpdf

import (
	"time"

	"github.com/rs/zerolog"
)

// converterConfig holds internal configuration for a Converter.
type converterConfig struct {
	outputDir    string
	chromePath   string
	timeout      time.Duration
	noSandbox    bool
	headless     string
	autoDownload bool
	noFallback   bool
	page         *PageConfig
	backend      Backend
	logger       zerolog.Logger
}

func defaultConfig() converterConfig {
	return converterConfig{
		outputDir: "./pdf_outputs",
		timeout:   30 * time.Second,
		headless:  "new",
		logger:    zerolog.Nop(),
	}
}

// Option configures a [Converter].
type Option func(*converterConfig)

// WithOutputDir sets the directory used for derived output paths.
// Defaults to "./pdf_outputs". The directory is created at construction
// time if it does not exist.
func WithOutputDir(dir string) Option {
	return func(c *converterConfig) {
		if dir != "" {
			c.outputDir = dir
		}
	}
}

// WithChromePath sets the path to the Chrome or Chromium executable.
// By default the library searches standard locations automatically.
func WithChromePath(path string) Option {
	return func(c *converterConfig) {
		c.chromePath = path
	}
}

// WithTimeout sets the maximum duration for a single conversion.
// Defaults to 30 seconds. A zero or negative value disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *converterConfig) {
		c.timeout = d
	}
}

// WithNoSandbox disables the Chrome sandbox. This is required when
// running as root, for example inside Docker containers.
func WithNoSandbox() Option {
	return func(c *converterConfig) {
		c.noSandbox = true
	}
}

// WithAutoDownload downloads a pinned Chromium build when no browser
// executable is found in PATH. The binary is cached between runs.
func WithAutoDownload() Option {
	return func(c *converterConfig) {
		c.autoDownload = true
	}
}

// WithoutFallback disables the degraded text-only fallback. When Chrome
// is also unavailable, every conversion fails with [ErrUnavailable].
// Use this when an unstyled text rendering is worse than no output.
func WithoutFallback() Option {
	return func(c *converterConfig) {
		c.noFallback = true
	}
}

// WithPageConfig sets the page geometry applied to every conversion.
// A nil value keeps the defaults (A4, portrait, 1 cm margins).
func WithPageConfig(pg *PageConfig) Option {
	return func(c *converterConfig) {
		c.page = pg
	}
}

// WithBackend injects a specific rendering backend, skipping the
// startup probe entirely.
func WithBackend(b Backend) Option {
	return func(c *converterConfig) {
		c.backend = b
	}
}

// WithLogger sets the logger used for progress and diagnostics.
// Logging is disabled by default.
func WithLogger(l zerolog.Logger) Option {
	return func(c *converterConfig) {
		c.logger = l
	}
}
