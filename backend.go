package htmlpdf

import "context"

// Backend renders HTML into PDF bytes. A backend is selected once when
// the [Converter] is created and reused for every conversion; the
// selection never changes for the lifetime of the Converter.
//
// Two implementations ship with the package: the Chrome backend (full
// HTML+CSS fidelity through the DevTools protocol) and the text fallback
// (see [NewTextBackend]). Custom backends can be injected with
// [WithBackend].
type Backend interface {
	// Name identifies the backend in logs ("chrome" or "text").
	Name() string

	// RenderHTML renders an in-memory HTML document.
	RenderHTML(ctx context.Context, html string, pg *PageConfig) (*Result, error)

	// RenderFile renders an HTML file from disk. Relative resources
	// (images, stylesheets) resolve against the file's directory when
	// the backend supports them.
	RenderFile(ctx context.Context, path string, pg *PageConfig) (*Result, error)

	// Close releases any resources held by the backend.
	Close() error
}
