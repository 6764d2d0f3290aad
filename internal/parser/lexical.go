package parser

import "github.com/gubarz/mdparse/internal/comb"

// Reserved characters of the dialect.
const (
	space     = ' '
	tab       = '\t'
	lineBreak = '\n'
	asterisk  = '*'
	escape    = '/'
	hash      = '#'
	minus     = '-'
	point     = '.'
	greater   = '>'
	bang      = '!'
	lBracket  = '['
	rBracket  = ']'
	lParen    = '('
	rParen    = ')'
)

// notText lists the characters that always end a textChars run. The block
// markers (#, -, ., >, !) are ordinary inside a line and only rejected at
// the start of one by lineStarter.
const notText = " \t\n*/[]()"

// escapable lists the characters that "/" turns into literals.
const escapable = "\n\t*/>-#()[]!"

var (
	spaceChar     = comb.Char(space)
	tabChar       = comb.Char(tab)
	lineBreakChar = comb.Char(lineBreak)
	asteriskChar  = comb.Char(asterisk)
	hashChar      = comb.Char(hash)
	minusChar     = comb.Char(minus)
	pointChar     = comb.Char(point)
	greaterChar   = comb.Char(greater)
	bangChar      = comb.Char(bang)
	digitChar     = comb.OneOf("0123456789")

	spaceRun = comb.Concat(comb.Many1(spaceChar))
	tabRun   = comb.Concat(comb.Many1(tabChar))

	// inlineBlank is a single space or tab, the unit of list indentation.
	inlineBlank = comb.OneOf(" \t")

	// paragraphBreak is the blank line between blocks.
	paragraphBreak = comb.Literal("\n\n")

	// numericMarker is the ordered list marker: digits followed by a point.
	numericMarker = joinPair(comb.And(comb.Concat(comb.Many1(digitChar)), pointChar))

	// textChars is a run of characters that carry no markup.
	textChars = comb.Concat(comb.Many1(comb.NoneOf(notText)))

	// textSpace is one unit of soft inline whitespace. A line break only
	// counts when more text follows on the next line. It yields the
	// characters it matched.
	textSpace = comb.Or3(
		comb.AndNot3(spaceChar, spaceRun, lineBreakChar),
		comb.AndNot(tabRun, lineBreakChar),
		comb.AndNot(lineBreakChar, comb.Or(lineBreakChar, comb.EOF())),
	)

	// literalSpecialChars resolves "/" followed by a reserved character, or
	// by a numeric list marker, to the literal text.
	literalSpecialChars = comb.PrecededBy(comb.Char(escape), comb.Or(numericMarker, comb.OneOf(escapable)))

	// bareEscape is a "/" that does not start an escape sequence; it stands
	// for itself.
	bareEscape = comb.Char(escape)

	// charsWithoutSpace is an escaped literal or a plain text run.
	charsWithoutSpace = comb.Or3(literalSpecialChars, textChars, bareEscape)

	// charsPrecededBySpace is soft whitespace followed by one token, kept
	// verbatim.
	charsPrecededBySpace = joinPair(comb.And(comb.Concat(comb.Many1(textSpace)), charsWithoutSpace))

	// charsOptionallyPrecededBySpace allows the leading whitespace to be
	// absent.
	charsOptionallyPrecededBySpace = joinPair(comb.And(comb.Concat(comb.Many(textSpace)), charsWithoutSpace))

	// hardBreak ends a line inside a paragraph: two or more spaces, or a
	// tab run, right before a line break.
	hardBreak = comb.Or(
		joinPair(comb.And(comb.Concat(comb.ManyN(spaceChar, 2, comb.Unbounded)), lineBreakChar)),
		joinPair(comb.And(tabRun, lineBreakChar)),
	)

	// lineStarter matches what a text line may not begin with unless escaped.
	lineStarter = comb.Or(numericMarker, comb.OneOf("->[]()!#\n"))
)

func joinPair(p comb.Parser[comb.Pair[string, string]]) comb.Parser[string] {
	return comb.Map(p, func(v comb.Pair[string, string]) string { return v.First + v.Second })
}
