package transform

import (
	"strings"
	"unicode"

	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/tables"
)

// SQLCommentInjection splices SQL comment tokens (--, /**/, #) in front of
// roughly a third of the words after the first. Output is an adversarial
// payload, not valid SQL.
func SQLCommentInjection(input string) string {
	return SQLCommentInjectionWith(rng.New(), input)
}

// SQLCommentInjectionWith is SQLCommentInjection with an explicit
// randomness source.
func SQLCommentInjectionWith(r *rng.Rng, input string) string {
	words := strings.Fields(input)
	for i, word := range words {
		if i > 0 && r.Chance(3) {
			words[i] = rng.Pick(r, tables.SQLComments) + word
		}
	}
	return strings.Join(words, " ")
}

// XSSTagVariations rewrites angle brackets into one of four encodings and
// case-mutates roughly a third of the letters, producing tag spellings
// that evade literal matching.
func XSSTagVariations(input string) string {
	return XSSTagVariationsWith(rng.New(), input)
}

// XSSTagVariationsWith is XSSTagVariations with an explicit randomness
// source.
func XSSTagVariationsWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 3)
	for _, c := range input {
		switch {
		case c == '<':
			b.WriteString(rng.Pick(r, []string{"<", "&#60;", "&#x3C;", "%3C"}))
		case c == '>':
			b.WriteString(rng.Pick(r, []string{">", "&#62;", "&#x3E;", "%3E"}))
		case unicode.IsLetter(c) && r.Chance(3):
			if r.Bool() {
				writeUpper(&b, c)
			} else {
				writeLower(&b, c)
			}
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// NullByteInjection inserts textual null-byte representations (%00, \0,
// \x00, &#00;) before roughly a quarter of the interior characters.
func NullByteInjection(input string) string {
	return NullByteInjectionWith(rng.New(), input)
}

// NullByteInjectionWith is NullByteInjection with an explicit randomness
// source.
func NullByteInjectionWith(r *rng.Rng, input string) string {
	runes := []rune(input)
	var b strings.Builder
	b.Grow(len(input) * 2)
	for i, c := range runes {
		if i > 0 && i < len(runes)-1 && r.Chance(4) {
			b.WriteString(rng.Pick(r, tables.NullBytes))
		}
		b.WriteRune(c)
	}
	return b.String()
}

// PathTraversal replaces roughly half of the path separators with
// directory-escape sequences (../, ..\, %2e%2e/, …).
func PathTraversal(input string) string {
	return PathTraversalWith(rng.New(), input)
}

// PathTraversalWith is PathTraversal with an explicit randomness source.
func PathTraversalWith(r *rng.Rng, input string) string {
	parts := strings.Split(input, "/")
	var b strings.Builder
	b.Grow(len(input) * 3)
	for i, part := range parts {
		if i > 0 {
			if r.Bool() {
				b.WriteString(rng.Pick(r, tables.Traversals))
			} else {
				b.WriteByte('/')
			}
		}
		b.WriteString(part)
	}
	return b.String()
}

// CommandInjection splices shell separators (;, |, &&, `, $()) in front of
// roughly a third of the words after the first.
func CommandInjection(input string) string {
	return CommandInjectionWith(rng.New(), input)
}

// CommandInjectionWith is CommandInjection with an explicit randomness
// source.
func CommandInjectionWith(r *rng.Rng, input string) string {
	words := strings.Fields(input)
	for i, word := range words {
		if i > 0 && r.Chance(3) {
			words[i] = rng.Pick(r, tables.ShellSeparators) + word
		}
	}
	return strings.Join(words, " ")
}
