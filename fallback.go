package htmlpdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/net/html"
)

// textBackend is the degraded rendering path used when no browser is
// available. It strips <script> and <style> subtrees, extracts the
// document text, and lays it out as flowed paragraphs with a core font.
// No CSS, no images, no tables.
type textBackend struct{}

// NewTextBackend returns the pure-Go text-extraction backend. It is
// always constructible and needs no external processes, which makes it
// the fallback of last resort — and a convenient deterministic backend
// for tests.
func NewTextBackend() Backend {
	return &textBackend{}
}

func (t *textBackend) Name() string { return "text" }

func (t *textBackend) Close() error { return nil }

func (t *textBackend) RenderFile(ctx context.Context, path string, pg *PageConfig) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("htmlpdf: reading %s: %w", path, err)
	}
	return t.RenderHTML(ctx, string(data), pg)
}

func (t *textBackend) RenderHTML(ctx context.Context, src string, pg *PageConfig) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := extractDoc(src)
	if err != nil {
		return nil, fmt.Errorf("htmlpdf: parsing html: %w", err)
	}
	return layoutText(doc, pg)
}

// textDoc is the intermediate form between HTML parsing and layout.
type textDoc struct {
	title      string
	paragraphs []string
}

// blockTags are elements whose end forces a paragraph boundary in the
// extracted text.
var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"header": true, "footer": true, "main": true, "aside": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true, "table": true, "tr": true,
	"blockquote": true, "pre": true, "figure": true,
}

// extractDoc parses src and reduces it to a title plus plain-text
// paragraphs. Script and style subtrees are dropped entirely; the
// <title> element becomes the title block and does not reappear in the
// body text.
func extractDoc(src string) (textDoc, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return textDoc{}, err
	}

	var d textDoc
	var sb strings.Builder

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript":
				return
			case "title":
				if d.title == "" {
					d.title = strings.Join(strings.Fields(textContent(n)), " ")
				}
				return
			case "br":
				sb.WriteByte('\n')
			}
		case html.TextNode:
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockTags[n.Data] {
			sb.WriteString("\n\n")
		}
	}
	walk(root)

	d.paragraphs = splitParagraphs(sb.String())
	return d, nil
}

// textContent returns the concatenated text of n's subtree.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// splitParagraphs splits extracted text on blank-line boundaries and
// normalizes intra-line whitespace. Empty paragraphs are dropped.
func splitParagraphs(text string) []string {
	var paras []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			paras = append(paras, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return paras
}

// layoutText flows the document onto pages: the title in a large bold
// face, then each paragraph in sequence with a small gap. Page geometry
// comes from pg; everything else is fixed.
func layoutText(doc textDoc, pg *PageConfig) (*Result, error) {
	width, height := pg.paperPoints()
	top, right, bottom, left := pg.marginPoints()

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(left, top, right)
	pdf.SetAutoPageBreak(true, bottom)
	if doc.title != "" {
		pdf.SetTitle(doc.title, true)
	}
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if doc.title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 22, tr(doc.title), "", "L", false)
		pdf.Ln(12)
	}

	pdf.SetFont("Helvetica", "", 11)
	for _, para := range doc.paragraphs {
		pdf.MultiCell(0, 14, tr(para), "", "L", false)
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("htmlpdf: building pdf: %w", err)
	}
	return &Result{data: buf.Bytes()}, nil
}
