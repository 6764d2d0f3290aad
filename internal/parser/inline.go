package parser

import (
	"github.com/gubarz/mdparse/internal/ast"
	"github.com/gubarz/mdparse/internal/comb"
)

var (
	// rawText is the fallback run of plain characters and soft whitespace.
	rawText = comb.Map(comb.Concat(comb.Many1(comb.Or(charsWithoutSpace, textSpace))), newText)

	// italicText is *text*. The characters touching both asterisks must not
	// be whitespace.
	italicText = comb.Map(
		comb.DelimitedBy(asteriskChar, joinPair(comb.And(charsWithoutSpace, comb.Concat(comb.Many(charsOptionallyPrecededBySpace)))), asteriskChar),
		func(s string) ast.Italic { return ast.Italic{Content: newText(s)} },
	)

	// boldIndicator is matched as one unit so "***a***" binds bold outside
	// and italic inside.
	boldIndicator = comb.Literal("**")

	boldLead = comb.Or(emphasis(comb.Map(charsWithoutSpace, newText)), emphasis(italicText))

	// boldRun is a text run, possibly preceded by extra whitespace.
	boldRun = comb.Map(comb.Concat(comb.Many1(charsOptionallyPrecededBySpace)), newText)

	// boldSpacedItalic is a nested italic; the whitespace before it is kept
	// as part of the italic text.
	boldSpacedItalic = comb.Map(comb.And(comb.Concat(comb.Many(textSpace)), italicText),
		func(v comb.Pair[string, ast.Italic]) ast.Italic {
			return ast.Italic{Content: newText(v.First + v.Second.Content.Value)}
		})

	// boldText is **lead (run | italic)***.
	boldText = comb.Map(
		comb.DelimitedBy(boldIndicator, comb.And(boldLead, comb.Many(comb.Or(emphasis(boldRun), emphasis(boldSpacedItalic)))), boldIndicator),
		func(v comb.Pair[ast.Emphasis, []ast.Emphasis]) ast.Bold {
			return ast.Bold{Content: append([]ast.Emphasis{v.First}, v.Second...)}
		},
	)

	// linkDisplay is the bracketed part of links and images.
	linkDisplay = comb.DelimitedBy(comb.Char(lBracket), comb.Or3(inline(boldText), inline(italicText), inline(rawText)), comb.Char(rBracket))

	// linkTarget is the parenthesised url: escapes are resolved, spaces are
	// not allowed.
	linkTarget = comb.DelimitedBy(comb.Char(lParen), comb.Concat(comb.Many1(charsWithoutSpace)), comb.Char(rParen))

	linkShape = comb.And(linkDisplay, linkTarget)

	link = comb.Map(linkShape, func(v comb.Pair[ast.Inline, string]) ast.Link {
		return ast.Link{Content: v.First, URL: v.Second}
	})

	image = comb.Map(comb.PrecededBy(bangChar, linkShape), func(v comb.Pair[ast.Inline, string]) ast.Image {
		return ast.Image{Alt: v.First, Source: v.Second}
	})

	// lineHead is the first element of a line: a link, or text that does not
	// begin with block syntax.
	lineHead = comb.Or(
		inline(link),
		comb.PrecededBy(comb.Not(lineStarter), comb.Or3(inline(boldText), inline(italicText), inline(rawText))),
	)

	lineTail = comb.Many(comb.Or4(inline(boldText), inline(italicText), inline(link), inline(rawText)))

	// line is the inline content up to a hard break, a paragraph break or
	// the end of input. The hard break is consumed, the other two are not.
	line = comb.Map(
		comb.SucceededBy(comb.And(lineHead, lineTail), comb.Optional(hardBreak)),
		func(v comb.Pair[ast.Inline, []ast.Inline]) ast.Line {
			return ast.Line{Content: append([]ast.Inline{v.First}, v.Second...)}
		},
	)
)

func newText(s string) ast.Text {
	return ast.Text{Value: s}
}

// inline widens a parser of a concrete inline node.
func inline[T ast.Inline](p comb.Parser[T]) comb.Parser[ast.Inline] {
	return comb.Map(p, func(v T) ast.Inline { return v })
}

// emphasis widens a parser of a node allowed inside bold.
func emphasis[T ast.Emphasis](p comb.Parser[T]) comb.Parser[ast.Emphasis] {
	return comb.Map(p, func(v T) ast.Emphasis { return v })
}
