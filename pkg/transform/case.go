// Package transform implements the text-transformation primitives: pure
// (or RNG-reading) functions mapping an input string to an output string.
// Every function accepts any valid UTF-8 input, including the empty
// string, and never fails. Functions that consume randomness come in
// pairs: Name(input) draws from a fresh entropy-seeded generator, while
// NameWith(r, input) threads an explicit rng.Rng for reproducible output.
package transform

import (
	"strings"
	"unicode"

	"github.com/manglekit/mangle/pkg/rng"
)

// writeUpper appends the uppercase form of c to b. Case folding may expand
// one rune into several (ß → SS), so callers pre-size for roughly twice
// the input byte length.
func writeUpper(b *strings.Builder, c rune) {
	b.WriteString(strings.ToUpper(string(c)))
}

func writeLower(b *strings.Builder, c rune) {
	b.WriteString(strings.ToLower(string(c)))
}

// RandomizeCapitalization flips a coin per alphabetic rune and emits its
// upper or lower form. Non-alphabetic runes pass through and consume no
// entropy.
func RandomizeCapitalization(input string) string {
	return RandomizeCapitalizationWith(rng.New(), input)
}

// RandomizeCapitalizationWith is RandomizeCapitalization with an explicit
// randomness source.
func RandomizeCapitalizationWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		if unicode.IsLetter(c) {
			if r.Bool() {
				writeUpper(&b, c)
			} else {
				writeLower(&b, c)
			}
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// AlternateCase upper-cases every other alphabetic rune, starting upper.
// Deterministic.
func AlternateCase(input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	upper := true
	for _, c := range input {
		if unicode.IsLetter(c) {
			if upper {
				writeUpper(&b, c)
			} else {
				writeLower(&b, c)
			}
			upper = !upper
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// InverseCase swaps the case of every alphabetic rune. Deterministic.
func InverseCase(input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		switch {
		case unicode.IsUpper(c):
			writeLower(&b, c)
		case unicode.IsLower(c):
			writeUpper(&b, c)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// CaseSwap randomly inverts the case of roughly half the alphabetic runes.
// Useful for WAF and filter case-sensitivity testing.
func CaseSwap(input string) string {
	return CaseSwapWith(rng.New(), input)
}

// CaseSwapWith is CaseSwap with an explicit randomness source.
func CaseSwapWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		if unicode.IsLetter(c) && r.Bool() {
			if unicode.IsUpper(c) {
				writeLower(&b, c)
			} else {
				writeUpper(&b, c)
			}
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// ToCamelCase converts space-, underscore- or hyphen-separated words to
// camelCase.
func ToCamelCase(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	capitalizeNext := false
	first := true
	for _, c := range input {
		switch {
		case unicode.IsSpace(c) || c == '_' || c == '-':
			capitalizeNext = true
		case unicode.IsLetter(c):
			switch {
			case first:
				writeLower(&b, c)
				first = false
			case capitalizeNext:
				writeUpper(&b, c)
				capitalizeNext = false
			default:
				writeLower(&b, c)
			}
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// ToSnakeCase converts CamelCase or separated words to snake_case.
func ToSnakeCase(input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	prevUpper := false
	for i, c := range input {
		switch {
		case unicode.IsSpace(c) || c == '-':
			b.WriteByte('_')
			prevUpper = false
		case unicode.IsUpper(c):
			if i > 0 && !prevUpper && !strings.HasSuffix(b.String(), "_") {
				b.WriteByte('_')
			}
			writeLower(&b, c)
			prevUpper = true
		default:
			b.WriteRune(c)
			prevUpper = false
		}
	}
	return b.String()
}

// ToKebabCase converts CamelCase or separated words to kebab-case.
func ToKebabCase(input string) string {
	return strings.ReplaceAll(ToSnakeCase(input), "_", "-")
}
