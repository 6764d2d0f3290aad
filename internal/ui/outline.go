package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/mdparse/internal/ast"
)

// ============================================================================
// Outline - styled terminal rendering of a document
// ============================================================================

// outliner renders nodes as styled terminal text. It never fails; the error
// results only satisfy ast.Visitor.
type outliner struct {
	s       *StyleManager
	b       strings.Builder
	ordinal int // position of the ordered list item being rendered
}

var _ ast.Visitor = (*outliner)(nil)

// Outline renders doc for the terminal.
func Outline(doc ast.Document, s *StyleManager) string {
	o := &outliner{s: s}
	_ = doc.Accept(o)
	return strings.TrimRight(o.b.String(), "\n")
}

// sub renders n on its own and returns the text.
func (o *outliner) sub(n ast.Node) string {
	c := &outliner{s: o.s}
	_ = n.Accept(c)
	return c.b.String()
}

// item writes a list entry, indenting continuation lines under the marker.
func (o *outliner) item(marker, body string) {
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	pad := strings.Repeat(" ", lipgloss.Width(marker))
	for i, line := range lines {
		if i == 0 {
			o.b.WriteString("  " + o.s.Dim.Render(marker) + line + "\n")
		} else {
			o.b.WriteString("  " + pad + line + "\n")
		}
	}
}

func (o *outliner) VisitDocument(n ast.Document) error {
	for _, b := range n.Blocks {
		_ = b.Accept(o)
	}
	return nil
}

func (o *outliner) VisitHeading(n ast.Heading) error {
	o.b.WriteString(o.s.Heading.Render(strings.Repeat("#", n.Level)+" "+n.Content.Value) + "\n\n")
	return nil
}

func (o *outliner) VisitParagraph(n ast.Paragraph) error {
	for _, l := range n.Lines {
		_ = l.Accept(o)
	}
	o.b.WriteString("\n")
	return nil
}

func (o *outliner) VisitLine(n ast.Line) error {
	for _, in := range n.Content {
		_ = in.Accept(o)
	}
	o.b.WriteString("\n")
	return nil
}

func (o *outliner) VisitText(n ast.Text) error {
	o.b.WriteString(n.Value)
	return nil
}

func (o *outliner) VisitItalic(n ast.Italic) error {
	o.b.WriteString(o.s.Italic.Render(n.Content.Value))
	return nil
}

func (o *outliner) VisitBold(n ast.Bold) error {
	var parts strings.Builder
	for _, e := range n.Content {
		parts.WriteString(o.sub(e))
	}
	o.b.WriteString(o.s.Bold.Render(parts.String()))
	return nil
}

func (o *outliner) VisitLink(n ast.Link) error {
	o.b.WriteString(o.s.Link.Render(o.sub(n.Content)) + " " + o.s.Dim.Render("("+n.URL+")"))
	return nil
}

func (o *outliner) VisitImage(n ast.Image) error {
	o.b.WriteString(o.s.Link.Render("[image: "+o.sub(n.Alt)+"]") + " " + o.s.Dim.Render(n.Source) + "\n\n")
	return nil
}

func (o *outliner) VisitUnorderedList(n ast.UnorderedList) error {
	for _, item := range n.Items {
		_ = item.Accept(o)
	}
	o.b.WriteString("\n")
	return nil
}

func (o *outliner) VisitUnorderedListItem(n ast.UnorderedListItem) error {
	o.item("• ", o.sub(n.Body))
	return nil
}

func (o *outliner) VisitOrderedList(n ast.OrderedList) error {
	for i, item := range n.Items {
		o.ordinal = i + 1
		_ = item.Accept(o)
	}
	o.ordinal = 0
	o.b.WriteString("\n")
	return nil
}

func (o *outliner) VisitOrderedListItem(n ast.OrderedListItem) error {
	o.item(strconv.Itoa(max(o.ordinal, 1))+". ", o.sub(n.Body))
	return nil
}

func (o *outliner) VisitBlockQuote(n ast.BlockQuote) error {
	var inner strings.Builder
	for _, b := range n.Blocks {
		inner.WriteString(o.sub(b))
	}
	bar := o.s.QuoteBar.Render("│ ")
	for _, line := range strings.Split(strings.TrimRight(inner.String(), "\n"), "\n") {
		o.b.WriteString(bar + line + "\n")
	}
	o.b.WriteString("\n")
	return nil
}

func (o *outliner) VisitSpareBreakLine(ast.SpareBreakLine) error { return nil }
func (o *outliner) VisitSpareSpace(ast.SpareSpace) error         { return nil }

// ============================================================================
// Tree - node kinds by depth
// ============================================================================

// Tree lists every node of doc, one per line, indented by depth.
func Tree(doc ast.Document, s *StyleManager) string {
	var b strings.Builder
	ast.Walk(doc, func(n ast.Node, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(n.Kind())
		if detail := nodeDetail(n); detail != "" {
			b.WriteString(" " + s.Dim.Render(detail))
		}
		b.WriteString("\n")
		return true
	})
	return strings.TrimRight(b.String(), "\n")
}

// nodeDetail is the payload worth showing next to a node kind.
func nodeDetail(n ast.Node) string {
	switch n := n.(type) {
	case ast.Text:
		return strconv.Quote(n.Value)
	case ast.Heading:
		return fmt.Sprintf("level=%d", n.Level)
	case ast.Link:
		return "url=" + n.URL
	case ast.Image:
		return "src=" + n.Source
	case ast.UnorderedList:
		return fmt.Sprintf("items=%d", len(n.Items))
	case ast.OrderedList:
		return fmt.Sprintf("items=%d", len(n.Items))
	}
	return ""
}
