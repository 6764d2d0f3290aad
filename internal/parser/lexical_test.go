package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gubarz/mdparse/internal/comb"
)

type outcome[T any] struct {
	Value T
	Rest  string
	OK    bool
}

func run[T any](p comb.Parser[T], input string) outcome[T] {
	v, rest, ok := p(input)
	return outcome[T]{Value: v, Rest: rest, OK: ok}
}

func match[T any](v T, rest string) outcome[T] {
	return outcome[T]{Value: v, Rest: rest, OK: true}
}

func noMatch[T any](input string) outcome[T] {
	var zero T
	return outcome[T]{Value: zero, Rest: input, OK: false}
}

func TestTextChars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  outcome[string]
	}{
		{name: "plain symbols", input: "azAZ09!@#$%&_-+={}.,:;|\\?'", want: match("azAZ09!@#$%&_-+={}.,:;|\\?'", "")},
		{name: "stops at space", input: "ab c", want: match("ab", " c")},
		{name: "stops at tab", input: "a\tbc", want: match("a", "\tbc")},
		{name: "stops at asterisk", input: "ab*c", want: match("ab", "*c")},
		{name: "stops at line break", input: "abc\n", want: match("abc", "\n")},
		{name: "stops at escape", input: "ab/*", want: match("ab", "/*")},
		{name: "stops at bracket", input: "ab[c", want: match("ab", "[c")},
		{name: "stops at paren", input: "ab)c", want: match("ab", ")c")},
		{name: "leading space", input: " abc", want: noMatch[string](" abc")},
		{name: "leading tab", input: "\tabc", want: noMatch[string]("\tabc")},
		{name: "leading asterisk", input: "*abc", want: noMatch[string]("*abc")},
		{name: "leading line break", input: "\nabc", want: noMatch[string]("\nabc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(textChars, tt.input))
		})
	}
}

func TestTextSpace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  outcome[string]
	}{
		{name: "single space", input: " abc", want: match(" ", "abc")},
		{name: "space before single line break", input: " \nabc", want: match(" ", "\nabc")},
		{name: "tab run", input: "\t\tabc", want: match("\t\t", "abc")},
		{name: "soft line break", input: "\nabc", want: match("\n", "abc")},
		{name: "hard break spaces", input: "  \nabc", want: noMatch[string]("  \nabc")},
		{name: "hard break tab", input: "\t\nabc", want: noMatch[string]("\t\nabc")},
		{name: "paragraph break", input: "\n\nabc", want: noMatch[string]("\n\nabc")},
		{name: "trailing line break", input: "\n", want: noMatch[string]("\n")},
		{name: "not whitespace", input: "abc", want: noMatch[string]("abc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(textSpace, tt.input))
		})
	}
}

func TestLiteralSpecialChars(t *testing.T) {
	escapes := map[string]string{
		"/\nabc":  "\n",
		"/\tabc":  "\t",
		"/*abc":   "*",
		"//abc":   "/",
		"/>abc":   ">",
		"/-abc":   "-",
		"/#abc":   "#",
		"/(abc":   "(",
		"/)abc":   ")",
		"/[abc":   "[",
		"/]abc":   "]",
		"/!abc":   "!",
		"/12.abc": "12.",
	}
	for input, want := range escapes {
		assert.Equal(t, match(want, "abc"), run(literalSpecialChars, input), "%q", input)
	}

	assert.Equal(t, noMatch[string]("\nabc"), run(literalSpecialChars, "\nabc"))
	assert.Equal(t, noMatch[string]("\tabc"), run(literalSpecialChars, "\tabc"))
	assert.Equal(t, noMatch[string]("/xabc"), run(literalSpecialChars, "/xabc"))
}

func TestCharsWithoutSpace(t *testing.T) {
	assert.Equal(t, match("*", "b"), run(charsWithoutSpace, "/*b"))
	assert.Equal(t, match("ab", "*"), run(charsWithoutSpace, "ab*"))
	assert.Equal(t, match("/", "x"), run(charsWithoutSpace, "/x"))
	assert.Equal(t, noMatch[string](" a"), run(charsWithoutSpace, " a"))
}

func TestCharsPrecededBySpace(t *testing.T) {
	assert.Equal(t, match("  b", "*"), run(charsPrecededBySpace, "  b*"))
	assert.Equal(t, match("\tb", ""), run(charsPrecededBySpace, "\tb"))
	assert.Equal(t, noMatch[string]("b"), run(charsPrecededBySpace, "b"))
	assert.Equal(t, noMatch[string](" *"), run(charsPrecededBySpace, " *"))

	assert.Equal(t, match("b", " c"), run(charsOptionallyPrecededBySpace, "b c"))
	assert.Equal(t, match(" b", ""), run(charsOptionallyPrecededBySpace, " b"))
}

func TestNumericMarker(t *testing.T) {
	assert.Equal(t, match("12.", " x"), run(numericMarker, "12. x"))
	assert.Equal(t, noMatch[string]("12 x"), run(numericMarker, "12 x"))
	assert.Equal(t, noMatch[string](".1"), run(numericMarker, ".1"))
}

func TestHardBreak(t *testing.T) {
	assert.Equal(t, match("  \n", "a"), run(hardBreak, "  \na"))
	assert.Equal(t, match("    \n", ""), run(hardBreak, "    \n"))
	assert.Equal(t, match("\t\n", ""), run(hardBreak, "\t\n"))
	assert.Equal(t, noMatch[string](" \n"), run(hardBreak, " \n"))
	assert.Equal(t, noMatch[string]("\n"), run(hardBreak, "\n"))
}

func TestLineStarter(t *testing.T) {
	for _, input := range []string{"- a", "1. a", "> a", "[a", "]a", "(a", ")a", "!a", "#a", "\na"} {
		_, _, ok := lineStarter(input)
		assert.True(t, ok, "%q", input)
	}
	for _, input := range []string{"a", "/-a", "1a", "*a", " -"} {
		_, _, ok := lineStarter(input)
		assert.False(t, ok, "%q", input)
	}
}
