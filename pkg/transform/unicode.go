package transform

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/tables"
)

// HomoglyphSubstitution replaces roughly one in three eligible runes with
// a visually confusable codepoint from another script (Cyrillic а for
// Latin a, letter O for digit 0, and so on). Operates on Unicode scalar
// values, never raw bytes.
func HomoglyphSubstitution(input string) string {
	return HomoglyphSubstitutionWith(rng.New(), input)
}

// HomoglyphSubstitutionWith is HomoglyphSubstitution with an explicit
// randomness source.
func HomoglyphSubstitutionWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		subs, ok := tables.Homoglyphs[c]
		if !ok || !r.Chance(3) {
			b.WriteRune(c)
			continue
		}
		b.WriteRune(rng.Pick(r, subs))
	}
	return b.String()
}

// ZalgoText appends one to three combining diacritical marks, drawn from
// the above/mid/below pools, to each alphabetic grapheme. Iteration is
// grapheme-aware so marks stack onto the full cluster rather than being
// spliced into an existing base+mark sequence.
func ZalgoText(input string) string {
	return ZalgoTextWith(rng.New(), input)
}

// ZalgoTextWith is ZalgoText with an explicit randomness source.
func ZalgoTextWith(r *rng.Rng, input string) string {
	var b strings.Builder
	// Output grows by a variable number of marks; no fixed multiplier.
	b.Grow(len(input) * 4)
	gr := uniseg.NewGraphemes(input)
	for gr.Next() {
		b.WriteString(gr.Str())
		runes := gr.Runes()
		if len(runes) == 0 || !unicode.IsLetter(runes[0]) {
			continue
		}
		count := r.Intn(3) + 1
		for i := 0; i < count; i++ {
			switch r.Intn(3) {
			case 0:
				b.WriteRune(rng.Pick(r, tables.ZalgoAbove))
			case 1:
				b.WriteRune(rng.Pick(r, tables.ZalgoMid))
			default:
				b.WriteRune(rng.Pick(r, tables.ZalgoBelow))
			}
		}
	}
	return b.String()
}

// UnicodeVariations substitutes letters with randomly chosen accented
// Latin variants (a → à/á/â/…), preserving grapheme count.
func UnicodeVariations(input string) string {
	return UnicodeVariationsWith(rng.New(), input)
}

// UnicodeVariationsWith is UnicodeVariations with an explicit randomness
// source.
func UnicodeVariationsWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		variants, ok := tables.AccentVariants[unicode.ToLower(c)]
		if !ok {
			b.WriteRune(c)
			continue
		}
		b.WriteRune(rng.Pick(r, variants))
	}
	return b.String()
}

// UnicodeNormalizeVariants emits semantically-equivalent Unicode
// representations per character: composed vs decomposed forms, fullwidth
// forms, and cross-script confusables. Decomposed picks are NFD-stable;
// rendered meaning is unchanged.
func UnicodeNormalizeVariants(input string) string {
	return UnicodeNormalizeVariantsWith(rng.New(), input)
}

// UnicodeNormalizeVariantsWith is UnicodeNormalizeVariants with an
// explicit randomness source.
func UnicodeNormalizeVariantsWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 3)
	for _, c := range input {
		variants, ok := tables.NormalizeVariants[c]
		if !ok {
			b.WriteRune(c)
			continue
		}
		pick := rng.Pick(r, variants)
		if r.Bool() {
			// Alternate between composed and decomposed spellings of the
			// same text.
			pick = norm.NFC.String(pick)
		} else {
			pick = norm.NFD.String(pick)
		}
		b.WriteString(pick)
	}
	return b.String()
}

// SpaceVariants replaces each ASCII space with a randomly chosen Unicode
// space-category character from a fixed pool.
func SpaceVariants(input string) string {
	return SpaceVariantsWith(rng.New(), input)
}

// SpaceVariantsWith is SpaceVariants with an explicit randomness source.
func SpaceVariantsWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		if c == ' ' {
			b.WriteRune(rng.Pick(r, tables.UnicodeSpaces))
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}
