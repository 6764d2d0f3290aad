// Package comb is a small backtracking parser-combinator library over strings.
//
// A Parser consumes a prefix of its input and returns the value it built and
// the unconsumed rest. A failed parser returns ok == false and hands back the
// exact input it was given, so every composition below backtracks fully.
package comb

import (
	"math"
	"strings"
	"sync"
	"unicode/utf8"
)

// Parser is a pure function from input to (value, rest, ok).
type Parser[T any] func(input string) (value T, rest string, ok bool)

// Unbounded disables the upper limit of ManyN.
const Unbounded = math.MaxInt

// Pair holds the results of And.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds the results of And3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad holds the results of And4.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// fail is the single failure outcome: zero value, full input, not ok.
func fail[T any](input string) (T, string, bool) {
	var zero T
	return zero, input, false
}

// ============================================================================
// Primitives
// ============================================================================

// Satisfy consumes one character if pred holds for it.
func Satisfy(pred func(r rune) bool) Parser[string] {
	return func(input string) (string, string, bool) {
		if input == "" {
			return fail[string](input)
		}
		r, size := utf8.DecodeRuneInString(input)
		if !pred(r) {
			return fail[string](input)
		}
		return input[:size], input[size:], true
	}
}

// Char matches one specific character.
func Char(c rune) Parser[string] {
	return Satisfy(func(r rune) bool { return r == c })
}

// OneOf matches any single character contained in chars.
func OneOf(chars string) Parser[string] {
	return Satisfy(func(r rune) bool { return strings.ContainsRune(chars, r) })
}

// AnyBut matches any single character except c.
func AnyBut(c rune) Parser[string] {
	return Satisfy(func(r rune) bool { return r != c })
}

// NoneOf matches any single character not contained in chars.
func NoneOf(chars string) Parser[string] {
	return Satisfy(func(r rune) bool { return !strings.ContainsRune(chars, r) })
}

// Literal matches the exact character sequence s.
func Literal(s string) Parser[string] {
	return func(input string) (string, string, bool) {
		if !strings.HasPrefix(input, s) {
			return fail[string](input)
		}
		return s, input[len(s):], true
	}
}

// Empty always succeeds with "" and consumes nothing.
func Empty() Parser[string] {
	return func(input string) (string, string, bool) {
		return "", input, true
	}
}

// EOF succeeds with "" only at the end of input.
func EOF() Parser[string] {
	return func(input string) (string, string, bool) {
		if input != "" {
			return fail[string](input)
		}
		return "", input, true
	}
}

// Lazy defers building p until it is first run. Recursive rules use it to
// refer to parsers that are not constructed yet.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	get := sync.OnceValue(build)
	return func(input string) (T, string, bool) {
		return get()(input)
	}
}

// ============================================================================
// Transformation
// ============================================================================

// Map transforms the value of a successful parse.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input string) (B, string, bool) {
		a, rest, ok := p(input)
		if !ok {
			return fail[B](input)
		}
		return f(a), rest, true
	}
}

// Concat joins the strings produced by p.
func Concat(p Parser[[]string]) Parser[string] {
	return Map(p, func(parts []string) string { return strings.Join(parts, "") })
}

// ============================================================================
// Sequencing
// ============================================================================

// And runs a then b. Either failing restores the input from before a.
func And[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return func(input string) (Pair[A, B], string, bool) {
		va, restA, ok := a(input)
		if !ok {
			return fail[Pair[A, B]](input)
		}
		vb, restB, ok := b(restA)
		if !ok {
			return fail[Pair[A, B]](input)
		}
		return Pair[A, B]{First: va, Second: vb}, restB, true
	}
}

// And3 runs a, b and c in sequence.
func And3[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[Triple[A, B, C]] {
	return Map(And(And(a, b), c), func(v Pair[Pair[A, B], C]) Triple[A, B, C] {
		return Triple[A, B, C]{First: v.First.First, Second: v.First.Second, Third: v.Second}
	})
}

// And4 runs a, b, c and d in sequence.
func And4[A, B, C, D any](a Parser[A], b Parser[B], c Parser[C], d Parser[D]) Parser[Quad[A, B, C, D]] {
	return Map(And(And3(a, b, c), d), func(v Pair[Triple[A, B, C], D]) Quad[A, B, C, D] {
		return Quad[A, B, C, D]{First: v.First.First, Second: v.First.Second, Third: v.First.Third, Fourth: v.Second}
	})
}

// PrecededBy runs a then b and keeps b's value.
func PrecededBy[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Map(And(a, b), func(v Pair[A, B]) B { return v.Second })
}

// SucceededBy runs a then b and keeps a's value.
func SucceededBy[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return Map(And(a, b), func(v Pair[A, B]) A { return v.First })
}

// DelimitedBy runs a, b and c and keeps b's value.
func DelimitedBy[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[B] {
	return Map(And3(a, b, c), func(v Triple[A, B, C]) B { return v.Second })
}

// ============================================================================
// Alternation
// ============================================================================

// Or tries a, and b on the same input only when a fails.
func Or[T any](a, b Parser[T]) Parser[T] {
	return func(input string) (T, string, bool) {
		if v, rest, ok := a(input); ok {
			return v, rest, true
		}
		return b(input)
	}
}

// Or3 is Or over three alternatives.
func Or3[T any](a, b, c Parser[T]) Parser[T] {
	return Or(Or(a, b), c)
}

// Or4 is Or over four alternatives.
func Or4[T any](a, b, c, d Parser[T]) Parser[T] {
	return Or(Or3(a, b, c), d)
}

// Or5 is Or over five alternatives.
func Or5[T any](a, b, c, d, e Parser[T]) Parser[T] {
	return Or(Or4(a, b, c, d), e)
}

// Or6 is Or over six alternatives.
func Or6[T any](a, b, c, d, e, f Parser[T]) Parser[T] {
	return Or(Or5(a, b, c, d, e), f)
}

// Optional never fails; an absent p yields the zero value.
func Optional[T any](p Parser[T]) Parser[T] {
	return func(input string) (T, string, bool) {
		if v, rest, ok := p(input); ok {
			return v, rest, true
		}
		var zero T
		return zero, input, true
	}
}

// ============================================================================
// Repetition
// ============================================================================

// ManyN applies p greedily between atLeast and atMost times. A step that
// succeeds without shrinking the input ends the repetition.
func ManyN[T any](p Parser[T], atLeast, atMost int) Parser[[]T] {
	return func(input string) ([]T, string, bool) {
		values := make([]T, 0)
		rest := input
		for len(values) < atMost {
			v, next, ok := p(rest)
			if !ok || len(next) >= len(rest) {
				break
			}
			values = append(values, v)
			rest = next
		}
		if len(values) < atLeast {
			return fail[[]T](input)
		}
		return values, rest, true
	}
}

// Many applies p zero or more times.
func Many[T any](p Parser[T]) Parser[[]T] {
	return ManyN(p, 0, Unbounded)
}

// Many1 applies p one or more times.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return ManyN(p, 1, Unbounded)
}

// Many1Max applies p between one and atMost times.
func Many1Max[T any](p Parser[T], atMost int) Parser[[]T] {
	return ManyN(p, 1, atMost)
}

// ============================================================================
// Lookahead
// ============================================================================

// AndNot succeeds with a's value unless b matches right after a.
func AndNot[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return func(input string) (A, string, bool) {
		va, rest, ok := a(input)
		if !ok {
			return fail[A](input)
		}
		if _, _, ok := b(rest); ok {
			return fail[A](input)
		}
		return va, rest, true
	}
}

// AndNot3 succeeds with a's value unless b followed by c matches right
// after a.
func AndNot3[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[A] {
	return AndNot(a, And(b, c))
}

// Not is a zero-width negative lookahead: it succeeds with "" iff p fails.
func Not[T any](p Parser[T]) Parser[string] {
	return func(input string) (string, string, bool) {
		if _, _, ok := p(input); ok {
			return fail[string](input)
		}
		return "", input, true
	}
}
