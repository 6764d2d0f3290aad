// Package ast defines the document tree produced by the markdown parser.
//
// Every node is an immutable value built bottom-up by a successful parse.
// The membership interfaces are sealed with unexported marker methods, so the
// set of node kinds is closed and a renderer implementing Visitor has to
// handle every one of them.
package ast

// Node is any element of the document tree.
type Node interface {
	// Kind returns the stable lowercase name of the node kind.
	Kind() string
	// Accept dispatches the node to the matching Visitor method.
	Accept(v Visitor) error
}

// Inline is a node that can appear in a Line.
type Inline interface {
	Node
	inline()
}

// Emphasis is a node that can appear inside Bold.
type Emphasis interface {
	Inline
	emphasis()
}

// Block is a node that can appear at the top level of a Document.
type Block interface {
	Node
	block()
}

// QuotedBlock is a node that can appear inside a BlockQuote.
type QuotedBlock interface {
	Block
	quoted()
}

// ============================================================================
// Inline nodes
// ============================================================================

// Text is a literal run of characters with escapes already resolved.
type Text struct {
	Value string
}

// Italic is text delimited by single asterisks.
type Italic struct {
	Content Text
}

// Bold is a sequence of Text and Italic delimited by double asterisks.
type Bold struct {
	Content []Emphasis
}

// Link is [content](url).
type Link struct {
	Content Inline // Text, Italic or Bold
	URL     string
}

// Line is the inline content up to a hard break or paragraph break.
type Line struct {
	Content []Inline
}

// ============================================================================
// Block nodes
// ============================================================================

// Image is ![alt](source).
type Image struct {
	Alt    Inline // Text, Italic or Bold
	Source string
}

// Heading is 1 to 6 hashes followed by text.
type Heading struct {
	Level   int
	Content Text
}

// Paragraph is one or more lines.
type Paragraph struct {
	Lines []Line
}

// UnorderedListItem is a "-" item whose body is a paragraph.
type UnorderedListItem struct {
	Body Paragraph
}

// OrderedListItem is a "N." item whose body is a paragraph.
type OrderedListItem struct {
	Body Paragraph
}

// UnorderedList is one or more unordered items.
type UnorderedList struct {
	Items []UnorderedListItem
}

// OrderedList is one or more ordered items.
type OrderedList struct {
	Items []OrderedListItem
}

// BlockQuote holds the headings, lists and paragraphs of ">" lines.
type BlockQuote struct {
	Blocks []QuotedBlock
}

// SpareBreakLine is a stray line break between blocks.
type SpareBreakLine struct{}

// SpareSpace is a stray space or tab between blocks.
type SpareSpace struct{}

// Document is the root of the tree.
type Document struct {
	Blocks []Block
}

// ============================================================================
// Kinds
// ============================================================================

func (Text) Kind() string              { return "text" }
func (Italic) Kind() string            { return "italic" }
func (Bold) Kind() string              { return "bold" }
func (Link) Kind() string              { return "link" }
func (Line) Kind() string              { return "line" }
func (Image) Kind() string             { return "image" }
func (Heading) Kind() string           { return "heading" }
func (Paragraph) Kind() string         { return "paragraph" }
func (UnorderedListItem) Kind() string { return "unordered_list_item" }
func (OrderedListItem) Kind() string   { return "ordered_list_item" }
func (UnorderedList) Kind() string     { return "unordered_list" }
func (OrderedList) Kind() string       { return "ordered_list" }
func (BlockQuote) Kind() string        { return "blockquote" }
func (SpareBreakLine) Kind() string    { return "spare_break_line" }
func (SpareSpace) Kind() string        { return "spare_space" }
func (Document) Kind() string          { return "document" }

// ============================================================================
// Membership markers
// ============================================================================

func (Text) inline()   {}
func (Italic) inline() {}
func (Bold) inline()   {}
func (Link) inline()   {}

func (Text) emphasis()   {}
func (Italic) emphasis() {}

func (Image) block()          {}
func (Heading) block()        {}
func (Paragraph) block()      {}
func (UnorderedList) block()  {}
func (OrderedList) block()    {}
func (BlockQuote) block()     {}
func (SpareBreakLine) block() {}
func (SpareSpace) block()     {}

func (Heading) quoted()       {}
func (Paragraph) quoted()     {}
func (UnorderedList) quoted() {}
func (OrderedList) quoted()   {}
