package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gubarz/mdparse/internal/ast"
)

func para(lines ...ast.Line) ast.Paragraph {
	return ast.Paragraph{Lines: lines}
}

func plain(s string) ast.Line {
	return textLine(text(s))
}

func TestHeading(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  outcome[ast.Heading]
	}{
		{
			name:  "end of input",
			input: "### This is a heading",
			want:  match(ast.Heading{Level: 3, Content: text("This is a heading")}, ""),
		},
		{
			name:  "trailing spaces kept",
			input: "### This is a heading      \n",
			want:  match(ast.Heading{Level: 3, Content: text("This is a heading      ")}, ""),
		},
		{
			name:  "blank line consumed",
			input: "# Title\n\nBody",
			want:  match(ast.Heading{Level: 1, Content: text("Title")}, "Body"),
		},
		{
			name:  "six hashes",
			input: "###### Deep\nnext",
			want:  match(ast.Heading{Level: 6, Content: text("Deep")}, "next"),
		},
		{
			name:  "markup kept literally",
			input: "## A *b* [c] /#d",
			want:  match(ast.Heading{Level: 2, Content: text("A *b* [c] #d")}, ""),
		},
		{name: "missing space", input: "###This is not a heading", want: noMatch[ast.Heading]("###This is not a heading")},
		{name: "seven hashes", input: "####### This is not a heading", want: noMatch[ast.Heading]("####### This is not a heading")},
		{name: "no content", input: "# ", want: noMatch[ast.Heading]("# ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(heading, tt.input))
		})
	}
}

func TestParagraph(t *testing.T) {
	two := para(plain("This is a line."), plain("This is another line."))

	assert.Equal(t, match(two, ""), run(paragraph, "This is a line.  \nThis is another line.  \n\n"))
	assert.Equal(t, match(two, ""), run(paragraph, "This is a line.  \nThis is another line."))
	assert.Equal(t, match(para(plain("one")), "\nnext"), run(paragraph, "one\n\nnext"))
	assert.Equal(t, match(para(plain("soft\nwrap")), ""), run(paragraph, "soft\nwrap"))
	assert.Equal(t, match(para(plain("text")), "- item"), run(paragraph, "text  \n- item"))
	assert.Equal(t, noMatch[ast.Paragraph]("# x"), run(paragraph, "# x"))
}

func TestListItem(t *testing.T) {
	assert.Equal(t, match(para(plain("This is an item.")), ""), run(listItem, " This is an item.  \n"))
	assert.Equal(t,
		match(para(plain("This is an item."), plain("With multiple lines.")), ""),
		run(listItem, " This is an item.  \nWith multiple lines.  \n"))
	assert.Equal(t, match(para(plain("tabbed")), ""), run(listItem, "\ttabbed"))
	assert.Equal(t,
		noMatch[ast.Paragraph]("It needs to start with a space.  \n"),
		run(listItem, "It needs to start with a space.  \n"))
}

func TestUnorderedListItem(t *testing.T) {
	assert.Equal(t,
		match(ast.UnorderedListItem{Body: para(plain("This is an unordered item."))}, ""),
		run(unorderedListItem, "- This is an unordered item.  \n"))
	assert.Equal(t,
		match(ast.UnorderedListItem{Body: para(plain("item line one."), plain("with continuation."))}, ""),
		run(unorderedListItem, "- item line one.  \nwith continuation.  \n"))
	assert.Equal(t,
		noMatch[ast.UnorderedListItem]("-This is not an unordered item.  \n"),
		run(unorderedListItem, "-This is not an unordered item.  \n"))
	assert.Equal(t,
		noMatch[ast.UnorderedListItem]("This is not an unordered item.  \n"),
		run(unorderedListItem, "This is not an unordered item.  \n"))
}

func TestOrderedListItem(t *testing.T) {
	assert.Equal(t,
		match(ast.OrderedListItem{Body: para(plain("This is an ordered item."))}, ""),
		run(orderedListItem, "1. This is an ordered item.  \n"))
	assert.Equal(t,
		noMatch[ast.OrderedListItem]("1.This is not an ordered item.  \n"),
		run(orderedListItem, "1.This is not an ordered item.  \n"))
	assert.Equal(t,
		noMatch[ast.OrderedListItem]("This is not an ordered item.  \n"),
		run(orderedListItem, "This is not an ordered item.  \n"))
	assert.Equal(t,
		noMatch[ast.OrderedListItem]("> This is not an ordered item."),
		run(orderedListItem, "> This is not an ordered item."))
}

func TestUnorderedList(t *testing.T) {
	want := ast.UnorderedList{Items: []ast.UnorderedListItem{
		{Body: para(textLine(text("First "), bold(text("item."))))},
		{Body: para(plain("Second item."))},
	}}
	assert.Equal(t, match(want, ""), run(unorderedList, "- First **item.**  \n- Second item.  \n\n"))
	assert.Equal(t, noMatch[ast.UnorderedList]("1. ordered  \n"), run(unorderedList, "1. ordered  \n"))
}

func TestOrderedList(t *testing.T) {
	want := ast.OrderedList{Items: []ast.OrderedListItem{
		{Body: para(textLine(text("First "), italic("item.")))},
		{Body: para(plain("Second item."))},
	}}
	assert.Equal(t, match(want, ""), run(orderedList, "1. First *item.*  \n2. Second item.  \n\n"))
	assert.Equal(t, noMatch[ast.OrderedList]("- unordered  \n"), run(orderedList, "- unordered  \n"))
}

func TestBlockQuote(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  outcome[ast.BlockQuote]
	}{
		{
			name:  "lazy continuation",
			input: "> This is a line.  \nThis is another line.  \n\n",
			want: match(ast.BlockQuote{Blocks: []ast.QuotedBlock{
				para(plain("This is a line."), plain("This is another line.")),
			}}, ""),
		},
		{
			name:  "no space after marker",
			input: ">tight",
			want:  match(ast.BlockQuote{Blocks: []ast.QuotedBlock{para(plain("tight"))}}, ""),
		},
		{
			name:  "heading then list with lazy items",
			input: "> ## Notes\n> - one  \n- two  \n",
			want: match(ast.BlockQuote{Blocks: []ast.QuotedBlock{
				ast.Heading{Level: 2, Content: text("Notes")},
				ast.UnorderedList{Items: []ast.UnorderedListItem{
					{Body: para(plain("one"))},
					{Body: para(plain("two"))},
				}},
			}}, ""),
		},
		{
			name:  "quote marker only",
			input: "> ",
			want:  noMatch[ast.BlockQuote]("> "),
		},
		{
			name:  "not a quote",
			input: "plain",
			want:  noMatch[ast.BlockQuote]("plain"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(blockQuote, tt.input))
		})
	}
}
