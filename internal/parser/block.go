package parser

import (
	"github.com/gubarz/mdparse/internal/ast"
	"github.com/gubarz/mdparse/internal/comb"
)

var (
	// headingHashes is one to six hashes not followed by a seventh.
	headingHashes = comb.AndNot(comb.Many1Max(hashChar, 6), hashChar)

	// headingContent keeps everything up to the line break verbatim, apart
	// from resolving escapes.
	headingContent = comb.Concat(comb.Many1(comb.Or3(charsWithoutSpace, comb.OneOf(" \t"), comb.AnyBut(lineBreak))))

	headingEnd = comb.Or3(paragraphBreak, lineBreakChar, comb.EOF())

	heading = comb.Map(
		comb.SucceededBy(comb.And(comb.SucceededBy(headingHashes, spaceRun), headingContent), headingEnd),
		func(v comb.Pair[[]string, string]) ast.Heading {
			return ast.Heading{Level: len(v.First), Content: newText(v.Second)}
		},
	)

	// paragraph is one or more lines and at most one trailing line break; a
	// second break is left to the document as a spacer.
	paragraph = comb.Map(
		comb.SucceededBy(comb.Many1(line), comb.Optional(lineBreakChar)),
		func(lines []ast.Line) ast.Paragraph { return ast.Paragraph{Lines: lines} },
	)

	// listItem is the indented body shared by both list kinds.
	listItem = comb.PrecededBy(comb.Many1(inlineBlank), paragraph)

	unorderedListItem = comb.Map(comb.PrecededBy(minusChar, listItem), func(p ast.Paragraph) ast.UnorderedListItem {
		return ast.UnorderedListItem{Body: p}
	})

	orderedListItem = comb.Map(comb.PrecededBy(numericMarker, listItem), func(p ast.Paragraph) ast.OrderedListItem {
		return ast.OrderedListItem{Body: p}
	})

	unorderedList = comb.Map(comb.SucceededBy(comb.Many1(unorderedListItem), comb.Optional(lineBreakChar)),
		func(items []ast.UnorderedListItem) ast.UnorderedList { return ast.UnorderedList{Items: items} })

	orderedList = comb.Map(comb.SucceededBy(comb.Many1(orderedListItem), comb.Optional(lineBreakChar)),
		func(items []ast.OrderedListItem) ast.OrderedList { return ast.OrderedList{Items: items} })

	// quotePrefix is ">" and any spaces after it.
	quotePrefix = comb.And(greaterChar, comb.Concat(comb.Many(spaceChar)))

	// quotedBlocks is what a ">" line may hold. Nested quotes are not part of
	// the dialect.
	quotedBlocks = comb.Lazy(func() comb.Parser[[]ast.QuotedBlock] {
		return comb.Many1(comb.Or4(quoted(heading), quoted(unorderedList), quoted(orderedList), quoted(paragraph)))
	})

	blockQuote = comb.Map(
		comb.SucceededBy(comb.Many1(comb.PrecededBy(quotePrefix, quotedBlocks)), comb.Optional(lineBreakChar)),
		func(groups [][]ast.QuotedBlock) ast.BlockQuote {
			var blocks []ast.QuotedBlock
			for _, g := range groups {
				blocks = append(blocks, g...)
			}
			return ast.BlockQuote{Blocks: blocks}
		},
	)

	spareBreakLine = comb.Map(lineBreakChar, func(string) ast.SpareBreakLine { return ast.SpareBreakLine{} })

	spareSpace = comb.Map(inlineBlank, func(string) ast.SpareSpace { return ast.SpareSpace{} })

	// looseLine takes the rest of a line that no other rule accepts, such as
	// "#tag" or "-x", as plain text so the document always makes progress.
	looseLine = comb.Map(comb.Concat(comb.Many1(comb.AnyBut(lineBreak))), func(s string) ast.Paragraph {
		return ast.Paragraph{Lines: []ast.Line{{Content: []ast.Inline{newText(s)}}}}
	})

	// documentBlock lists the top-level rules in priority order: image
	// before heading, list before paragraph, blockquote last of the
	// structural rules.
	documentBlock = comb.Or(
		comb.Or6(block(image), block(heading), block(unorderedList), block(orderedList), block(paragraph), block(blockQuote)),
		comb.Or3(block(spareBreakLine), block(spareSpace), block(looseLine)),
	)

	document = comb.Map(comb.Many1(documentBlock), func(blocks []ast.Block) ast.Document {
		return ast.Document{Blocks: blocks}
	})
)

// block widens a parser of a concrete block node.
func block[T ast.Block](p comb.Parser[T]) comb.Parser[ast.Block] {
	return comb.Map(p, func(v T) ast.Block { return v })
}

// quoted widens a parser of a node allowed inside a blockquote.
func quoted[T ast.QuotedBlock](p comb.Parser[T]) comb.Parser[ast.QuotedBlock] {
	return comb.Map(p, func(v T) ast.QuotedBlock { return v })
}
