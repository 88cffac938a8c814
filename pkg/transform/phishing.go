package transform

import (
	"strings"
	"unicode"

	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/tables"
)

// DomainTyposquat applies one randomized single-edit typo operation to the
// domain label: confusable substitution, character deletion, character
// doubling, or keyboard-adjacent substitution. The edit lands at a random
// position inside the label; everything after the first dot is re-appended
// unchanged. TLD variants are AdvancedDomainSpoof's job, not here.
func DomainTyposquat(input string) string {
	return DomainTyposquatWith(rng.New(), input)
}

// DomainTyposquatWith is DomainTyposquat with an explicit randomness
// source.
func DomainTyposquatWith(r *rng.Rng, input string) string {
	label, rest, dotted := strings.Cut(input, ".")
	runes := []rune(label)
	if len(runes) == 0 {
		return input
	}

	var b strings.Builder
	b.Grow(len(input) + 4)
	target := r.Intn(len(runes))

	switch r.Intn(4) {
	case 0: // confusable substitution
		for i, c := range runes {
			if i == target && unicode.IsLetter(c) {
				if subs, ok := tables.TypoSubstitutes[unicode.ToLower(c)]; ok {
					b.WriteRune(rng.Pick(r, subs))
					continue
				}
			}
			b.WriteRune(c)
		}
	case 1: // deletion
		for i, c := range runes {
			if i != target {
				b.WriteRune(c)
			}
		}
	case 2: // doubling
		for i, c := range runes {
			b.WriteRune(c)
			if i == target {
				b.WriteRune(c)
			}
		}
	default: // keyboard-adjacent substitution
		for i, c := range runes {
			if i == target && unicode.IsLetter(c) {
				if adj, ok := tables.KeyboardAdjacent[unicode.ToLower(c)]; ok {
					b.WriteRune(rng.Pick(r, adj))
					continue
				}
			}
			b.WriteRune(c)
		}
	}
	if dotted {
		return b.String() + "." + rest
	}
	return b.String()
}

// AdvancedDomainSpoof composes spoofing techniques on the label portion of
// a dotted domain: homoglyph substitution, letter insertion, typosquat,
// TLD typo, or letter omission. The TLD stays intact except for the
// dedicated TLD-variant branch, keeping the output a plausible
// typo-domain.
func AdvancedDomainSpoof(input string) string {
	return AdvancedDomainSpoofWith(rng.New(), input)
}

// AdvancedDomainSpoofWith is AdvancedDomainSpoof with an explicit
// randomness source.
func AdvancedDomainSpoofWith(r *rng.Rng, input string) string {
	parts := strings.Split(input, ".")
	if len(parts) < 2 {
		return input
	}
	label := parts[0]
	tld := strings.Join(parts[1:], ".")

	var result string
	switch r.Intn(5) {
	case 0:
		result = HomoglyphSubstitutionWith(r, label)
	case 1: // duplicate-insertion of a lookalike letter
		runes := []rune(label)
		target := 0
		if len(runes) > 1 {
			target = r.Intn(len(runes))
		}
		var b strings.Builder
		for i, c := range runes {
			b.WriteRune(c)
			if i == target && len(runes) > 1 {
				switch unicode.ToLower(c) {
				case 'a':
					b.WriteRune(rng.Pick(r, []rune{'a', '4'}))
				case 'e':
					b.WriteRune(rng.Pick(r, []rune{'e', '3'}))
				case 'i':
					b.WriteRune(rng.Pick(r, []rune{'i', '1'}))
				case 'o':
					b.WriteRune(rng.Pick(r, []rune{'o', '0'}))
				}
			}
		}
		result = b.String()
	case 2:
		result = DomainTyposquatWith(r, label)
	case 3: // TLD typo
		if variants, ok := tables.TLDVariants[tld]; ok {
			return label + "." + rng.Pick(r, variants)
		}
		result = label
	default: // letter omission
		runes := []rune(label)
		if len(runes) > 1 {
			omit := r.Intn(len(runes))
			var b strings.Builder
			for i, c := range runes {
				if i != omit {
					b.WriteRune(c)
				}
			}
			result = b.String()
		} else {
			result = label
		}
	}
	return result + "." + tld
}

// EmailObfuscation obfuscates the local part with homoglyphs, leetspeak,
// or random capitalization, and the domain with a spoof or homoglyphs.
// Inputs without exactly one @ pass through unchanged.
func EmailObfuscation(input string) string {
	return EmailObfuscationWith(rng.New(), input)
}

// EmailObfuscationWith is EmailObfuscation with an explicit randomness
// source.
func EmailObfuscationWith(r *rng.Rng, input string) string {
	local, domain, found := strings.Cut(input, "@")
	if !found || strings.Contains(domain, "@") {
		return input
	}

	var b strings.Builder
	switch r.Intn(3) {
	case 0:
		b.WriteString(HomoglyphSubstitutionWith(r, local))
	case 1:
		b.WriteString(LeetspeakWith(r, local))
	default:
		b.WriteString(RandomizeCapitalizationWith(r, local))
	}
	b.WriteByte('@')
	if r.Bool() {
		b.WriteString(AdvancedDomainSpoofWith(r, domain))
	} else {
		b.WriteString(HomoglyphSubstitutionWith(r, domain))
	}
	return b.String()
}

// URLShorteningPattern emits a plausible shortened URL on a random
// shortener host with a random 5-9 character code. The input is ignored;
// the output mimics what a link shortener would hand back.
func URLShorteningPattern(input string) string {
	return URLShorteningPatternWith(rng.New(), input)
}

// URLShorteningPatternWith is URLShorteningPattern with an explicit
// randomness source.
func URLShorteningPatternWith(r *rng.Rng, _ string) string {
	host := rng.Pick(r, tables.URLShorteners)
	length := r.Intn(5) + 5
	var code strings.Builder
	for i := 0; i < length; i++ {
		code.WriteByte(tables.AlphaNum[r.Intn(len(tables.AlphaNum))])
	}
	return "https://" + host + "/" + code.String()
}
