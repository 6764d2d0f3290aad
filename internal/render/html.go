// Package render turns a parsed document into HTML.
package render

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/gubarz/mdparse/internal/ast"
)

// DefaultBlockquoteStyle is the inline style applied to <blockquote>.
const DefaultBlockquoteStyle = "background-color:#f9f9f9;border-left: 10px solid #ccc;margin: 1.5em 10px;padding: 1em 10px .1em;"

// Options controls the generated markup.
type Options struct {
	// Wrap emits <!DOCTYPE html><html>...</html> around the document.
	Wrap bool
	// BlockquoteStyle is the style attribute of blockquotes. Empty omits it.
	BlockquoteStyle string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Wrap: true, BlockquoteStyle: DefaultBlockquoteStyle}
}

// Renderer writes documents as HTML.
type Renderer struct {
	opts Options
}

// New creates a renderer with the given options.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Write renders doc to w.
func (r *Renderer) Write(w io.Writer, doc ast.Document) error {
	return doc.Accept(&htmlWriter{w: w, opts: r.opts})
}

// HTML renders doc to a string.
func HTML(doc ast.Document, opts Options) (string, error) {
	var b strings.Builder
	if err := New(opts).Write(&b, doc); err != nil {
		return "", err
	}
	return b.String(), nil
}

// htmlWriter emits markup as it visits. The first write error sticks and
// every later write is skipped.
type htmlWriter struct {
	w    io.Writer
	opts Options
	err  error
}

var _ ast.Visitor = (*htmlWriter)(nil)

func (h *htmlWriter) write(parts ...string) error {
	for _, s := range parts {
		if h.err != nil {
			break
		}
		_, h.err = io.WriteString(h.w, s)
	}
	return h.err
}

// element writes open, the children and end.
func element[T ast.Node](h *htmlWriter, open string, children []T, end string) error {
	if err := h.write(open); err != nil {
		return err
	}
	for _, c := range children {
		if err := c.Accept(h); err != nil {
			return err
		}
	}
	return h.write(end)
}

func (h *htmlWriter) VisitDocument(n ast.Document) error {
	if !h.opts.Wrap {
		return element(h, "", n.Blocks, "")
	}
	return element(h, "<!DOCTYPE html><html>", n.Blocks, "</html>")
}

func (h *htmlWriter) VisitHeading(n ast.Heading) error {
	tag := "h" + strconv.Itoa(n.Level)
	return element(h, "<"+tag+">", []ast.Node{n.Content}, "</"+tag+">")
}

func (h *htmlWriter) VisitParagraph(n ast.Paragraph) error {
	return element(h, "<p>", n.Lines, "</p>")
}

func (h *htmlWriter) VisitLine(n ast.Line) error {
	return element(h, "", n.Content, "<br/>")
}

func (h *htmlWriter) VisitText(n ast.Text) error {
	return h.write(html.EscapeString(n.Value))
}

func (h *htmlWriter) VisitItalic(n ast.Italic) error {
	return element(h, "<em>", []ast.Node{n.Content}, "</em>")
}

func (h *htmlWriter) VisitBold(n ast.Bold) error {
	return element(h, "<strong>", n.Content, "</strong>")
}

func (h *htmlWriter) VisitLink(n ast.Link) error {
	return element(h, `<a href="`+html.EscapeString(n.URL)+`">`, []ast.Node{n.Content}, "</a>")
}

// VisitImage flattens the alt content to text; markup is not allowed in an
// attribute value.
func (h *htmlWriter) VisitImage(n ast.Image) error {
	return h.write(`<img src="`, html.EscapeString(n.Source), `" alt="`, html.EscapeString(plainText(n.Alt)), `"></img>`)
}

func (h *htmlWriter) VisitUnorderedList(n ast.UnorderedList) error {
	return element(h, "<ul>", n.Items, "</ul>")
}

func (h *htmlWriter) VisitUnorderedListItem(n ast.UnorderedListItem) error {
	return element(h, "<li>", n.Body.Lines, "</li>")
}

func (h *htmlWriter) VisitOrderedList(n ast.OrderedList) error {
	return element(h, "<ol>", n.Items, "</ol>")
}

func (h *htmlWriter) VisitOrderedListItem(n ast.OrderedListItem) error {
	return element(h, "<li>", n.Body.Lines, "</li>")
}

func (h *htmlWriter) VisitBlockQuote(n ast.BlockQuote) error {
	open := "<blockquote>"
	if h.opts.BlockquoteStyle != "" {
		open = `<blockquote style="` + html.EscapeString(h.opts.BlockquoteStyle) + `">`
	}
	return element(h, open, n.Blocks, "</blockquote>")
}

func (h *htmlWriter) VisitSpareBreakLine(ast.SpareBreakLine) error { return h.err }
func (h *htmlWriter) VisitSpareSpace(ast.SpareSpace) error         { return h.err }

// plainText concatenates every Text below n.
func plainText(n ast.Node) string {
	var b strings.Builder
	ast.Walk(n, func(n ast.Node, _ int) bool {
		if t, ok := n.(ast.Text); ok {
			b.WriteString(t.Value)
		}
		return true
	})
	return b.String()
}
