// Package parser turns the markdown dialect into an ast.Document.
//
// The grammar is a set of package-level comb parsers built once at
// initialisation: lexical.go holds the character classes and escapes,
// inline.go emphasis, links and lines, block.go headings, paragraphs, lists,
// blockquotes and the document rule.
package parser

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gubarz/mdparse/internal/ast"
)

// ErrNoMatch is the only parse failure: the document rule did not cover
// the whole input.
var ErrNoMatch = errors.New("invalid markdown syntax, unable to build document")

// ParseError reports where the document rule stopped.
type ParseError struct {
	Offset    int // byte offset of the first unconsumed character
	Remaining int // number of unconsumed bytes
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v (stopped at byte %d, %d bytes left)", ErrNoMatch, e.Offset, e.Remaining)
}

// Unwrap lets errors.Is match ErrNoMatch.
func (e *ParseError) Unwrap() error {
	return ErrNoMatch
}

// Parse builds the document tree for input. Success is all-or-nothing: a
// partial tree is never returned.
func Parse(input string) (ast.Document, error) {
	if input == "" {
		return ast.Document{}, nil
	}

	doc, rest, ok := document(input)
	if !ok || rest != "" {
		return ast.Document{}, &ParseError{Offset: len(input) - len(rest), Remaining: len(rest)}
	}
	return doc, nil
}

// ParseReader reads r to the end and parses it.
func ParseReader(r io.Reader) (ast.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ast.Document{}, err
	}
	return Parse(string(data))
}

// ParseFile parses a single markdown file.
func ParseFile(path string) (ast.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ast.Document{}, err
	}
	return Parse(string(data))
}
