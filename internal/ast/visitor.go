package ast

// Visitor has one method per node kind. Adding a node kind adds a method, so
// every implementation stops compiling until it handles the new kind.
type Visitor interface {
	VisitDocument(n Document) error
	VisitHeading(n Heading) error
	VisitParagraph(n Paragraph) error
	VisitLine(n Line) error
	VisitText(n Text) error
	VisitItalic(n Italic) error
	VisitBold(n Bold) error
	VisitLink(n Link) error
	VisitImage(n Image) error
	VisitUnorderedList(n UnorderedList) error
	VisitUnorderedListItem(n UnorderedListItem) error
	VisitOrderedList(n OrderedList) error
	VisitOrderedListItem(n OrderedListItem) error
	VisitBlockQuote(n BlockQuote) error
	VisitSpareBreakLine(n SpareBreakLine) error
	VisitSpareSpace(n SpareSpace) error
}

func (n Document) Accept(v Visitor) error          { return v.VisitDocument(n) }
func (n Heading) Accept(v Visitor) error           { return v.VisitHeading(n) }
func (n Paragraph) Accept(v Visitor) error         { return v.VisitParagraph(n) }
func (n Line) Accept(v Visitor) error              { return v.VisitLine(n) }
func (n Text) Accept(v Visitor) error              { return v.VisitText(n) }
func (n Italic) Accept(v Visitor) error            { return v.VisitItalic(n) }
func (n Bold) Accept(v Visitor) error              { return v.VisitBold(n) }
func (n Link) Accept(v Visitor) error              { return v.VisitLink(n) }
func (n Image) Accept(v Visitor) error             { return v.VisitImage(n) }
func (n UnorderedList) Accept(v Visitor) error     { return v.VisitUnorderedList(n) }
func (n UnorderedListItem) Accept(v Visitor) error { return v.VisitUnorderedListItem(n) }
func (n OrderedList) Accept(v Visitor) error       { return v.VisitOrderedList(n) }
func (n OrderedListItem) Accept(v Visitor) error   { return v.VisitOrderedListItem(n) }
func (n BlockQuote) Accept(v Visitor) error        { return v.VisitBlockQuote(n) }
func (n SpareBreakLine) Accept(v Visitor) error    { return v.VisitSpareBreakLine(n) }
func (n SpareSpace) Accept(v Visitor) error        { return v.VisitSpareSpace(n) }

// Children returns the direct children of n in document order.
func Children(n Node) []Node {
	var out []Node
	switch n := n.(type) {
	case Document:
		for _, b := range n.Blocks {
			out = append(out, b)
		}
	case Heading:
		out = append(out, n.Content)
	case Paragraph:
		for _, l := range n.Lines {
			out = append(out, l)
		}
	case Line:
		for _, in := range n.Content {
			out = append(out, in)
		}
	case Italic:
		out = append(out, n.Content)
	case Bold:
		for _, e := range n.Content {
			out = append(out, e)
		}
	case Link:
		out = append(out, n.Content)
	case Image:
		out = append(out, n.Alt)
	case UnorderedList:
		for _, item := range n.Items {
			out = append(out, item)
		}
	case UnorderedListItem:
		out = append(out, n.Body)
	case OrderedList:
		for _, item := range n.Items {
			out = append(out, item)
		}
	case OrderedListItem:
		out = append(out, n.Body)
	case BlockQuote:
		for _, b := range n.Blocks {
			out = append(out, b)
		}
	}
	return out
}

// Walk calls fn for n and its descendants depth-first. Returning false from
// fn skips the children of that node.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range Children(n) {
		walk(c, depth+1, fn)
	}
}
