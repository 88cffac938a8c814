package transform

import (
	"strings"
	"unicode"

	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/tables"
)

// Leetspeak replaces letters with visually similar digits and symbols
// (a→4/@, e→3, s→5/$, …). Letters with multiple substitutes pick one at
// random; case of the source letter is ignored.
func Leetspeak(input string) string {
	return LeetspeakWith(rng.New(), input)
}

// LeetspeakWith is Leetspeak with an explicit randomness source.
func LeetspeakWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, c := range input {
		variants, ok := tables.LeetVariants[unicode.ToLower(c)]
		if !ok {
			b.WriteRune(c)
			continue
		}
		if len(variants) == 1 {
			b.WriteRune(variants[0])
		} else {
			b.WriteRune(rng.Pick(r, variants))
		}
	}
	return b.String()
}

// Rot13 rotates ASCII letters 13 positions. Self-inverse; everything else
// passes through.
func Rot13(input string) string {
	return strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z':
			return 'a' + (c-'a'+13)%26
		case c >= 'A' && c <= 'Z':
			return 'A' + (c-'A'+13)%26
		}
		return c
	}, input)
}

// VowelSwap replaces each vowel with a random vowel, preserving case.
func VowelSwap(input string) string {
	return VowelSwapWith(rng.New(), input)
}

// VowelSwapWith is VowelSwap with an explicit randomness source.
func VowelSwapWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		lower := unicode.ToLower(c)
		isVowel := false
		for _, v := range tables.Vowels {
			if lower == v {
				isVowel = true
				break
			}
		}
		if !isVowel {
			b.WriteRune(c)
			continue
		}
		pick := rng.Pick(r, tables.Vowels)
		if unicode.IsUpper(c) {
			pick = unicode.ToUpper(pick)
		}
		b.WriteRune(pick)
	}
	return b.String()
}

// DoubleCharacters doubles roughly one in three alphabetic runes.
func DoubleCharacters(input string) string {
	return DoubleCharactersWith(rng.New(), input)
}

// DoubleCharactersWith is DoubleCharacters with an explicit randomness
// source.
func DoubleCharactersWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		b.WriteRune(c)
		if unicode.IsLetter(c) && r.Chance(3) {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// ReverseString reverses the input rune-wise, keeping multi-byte
// sequences intact. Self-inverse.
func ReverseString(input string) string {
	runes := []rune(input)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// WhitespacePadding inserts one to three spaces after roughly a third of
// the alphanumeric runes, breaking up contiguous patterns.
func WhitespacePadding(input string) string {
	return WhitespacePaddingWith(rng.New(), input)
}

// WhitespacePaddingWith is WhitespacePadding with an explicit randomness
// source.
func WhitespacePaddingWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		b.WriteRune(c)
		if (unicode.IsLetter(c) || unicode.IsDigit(c)) && r.Chance(3) {
			spaces := r.Intn(3) + 1
			for i := 0; i < spaces; i++ {
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}

// JSStringConcat splits the input into single-quoted JavaScript string
// literals joined with +, in randomly sized chunks of one to three runes.
// The empty input becomes the empty literal ''.
func JSStringConcat(input string) string {
	return JSStringConcatWith(rng.New(), input)
}

// JSStringConcatWith is JSStringConcat with an explicit randomness source.
func JSStringConcatWith(r *rng.Rng, input string) string {
	runes := []rune(input)
	if len(runes) == 0 {
		return "''"
	}

	var b strings.Builder
	b.Grow(len(input) * 3)
	i := 0
	for i < len(runes) {
		chunk := 1
		if !r.Chance(3) || i == len(runes)-1 {
			chunk = r.Intn(3) + 1
			if remaining := len(runes) - i; chunk > remaining {
				chunk = remaining
			}
		}
		b.WriteByte('\'')
		for j := 0; j < chunk; j++ {
			b.WriteRune(runes[i+j])
		}
		b.WriteByte('\'')
		i += chunk
		if i < len(runes) {
			b.WriteString(" + ")
		}
	}
	return b.String()
}
