package transform

import (
	"strings"
	"unicode"

	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/tables"
)

// The HTML-form family mutates markup fragments around input elements:
// attribute spellings, field names, type values, action URLs, and value
// attributes. Outputs are adversarial probes, not valid HTML.

// HTMLInputAttributeVariation mutates attribute syntax inside tags: quote
// style flips, added whitespace around =, and attribute-name case
// mutation.
func HTMLInputAttributeVariation(input string) string {
	return HTMLInputAttributeVariationWith(rng.New(), input)
}

// HTMLInputAttributeVariationWith is HTMLInputAttributeVariation with an
// explicit randomness source.
func HTMLInputAttributeVariationWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		switch c {
		case '=':
			switch r.Intn(3) {
			case 0:
				b.WriteByte('=')
			case 1:
				b.WriteString(" = ")
			default:
				b.WriteString("= ")
			}
		case '"':
			if r.Chance(3) {
				b.WriteByte('\'')
			} else {
				b.WriteByte('"')
			}
		default:
			if unicode.IsLetter(c) && r.Chance(4) {
				if unicode.IsUpper(c) {
					writeLower(&b, c)
				} else {
					writeUpper(&b, c)
				}
			} else {
				b.WriteRune(c)
			}
		}
	}
	return b.String()
}

// HTMLFormFieldObfuscate mutates a field name: underscore/hyphen swaps,
// array-suffix append, or doubled-bracket trick.
func HTMLFormFieldObfuscate(input string) string {
	return HTMLFormFieldObfuscateWith(rng.New(), input)
}

// HTMLFormFieldObfuscateWith is HTMLFormFieldObfuscate with an explicit
// randomness source.
func HTMLFormFieldObfuscateWith(r *rng.Rng, input string) string {
	if input == "" {
		return input
	}
	switch r.Intn(4) {
	case 0:
		return strings.ReplaceAll(input, "_", "-")
	case 1:
		return strings.ReplaceAll(input, "-", "_")
	case 2:
		return input + "[]"
	default:
		return input + "[0]"
	}
}

// HTMLInputTypeVariation replaces the value with a different but
// interchangeable input type from a fixed pool; non-type inputs get a
// random type appended as a probe.
func HTMLInputTypeVariation(input string) string {
	return HTMLInputTypeVariationWith(rng.New(), input)
}

// HTMLInputTypeVariationWith is HTMLInputTypeVariation with an explicit
// randomness source.
func HTMLInputTypeVariationWith(r *rng.Rng, input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))
	for _, t := range tables.HTMLInputTypes {
		if lower == t {
			next := rng.Pick(r, tables.HTMLInputTypes)
			for next == lower {
				next = rng.Pick(r, tables.HTMLInputTypes)
			}
			return next
		}
	}
	return rng.Pick(r, tables.HTMLInputTypes)
}

// HTMLFormActionVariation mutates an action URL: scheme-relative form,
// path-equivalence tweaks, or percent-encoded slashes.
func HTMLFormActionVariation(input string) string {
	return HTMLFormActionVariationWith(rng.New(), input)
}

// HTMLFormActionVariationWith is HTMLFormActionVariation with an explicit
// randomness source.
func HTMLFormActionVariationWith(r *rng.Rng, input string) string {
	if input == "" {
		return input
	}
	switch r.Intn(4) {
	case 0:
		if rest, ok := strings.CutPrefix(input, "https:"); ok {
			return rest
		}
		if rest, ok := strings.CutPrefix(input, "http:"); ok {
			return rest
		}
		return input
	case 1:
		return APIEndpointVariationWith(r, input)
	case 2:
		return strings.ReplaceAll(input, "/", "%2F")
	default:
		return input + "?" + randomSuffix(r) + "="
	}
}

// HTMLInputValueObfuscate encodes a value attribute with a randomly chosen
// entity or mixed encoding so it survives naive sanitizers.
func HTMLInputValueObfuscate(input string) string {
	return HTMLInputValueObfuscateWith(rng.New(), input)
}

// HTMLInputValueObfuscateWith is HTMLInputValueObfuscate with an explicit
// randomness source.
func HTMLInputValueObfuscateWith(r *rng.Rng, input string) string {
	switch r.Intn(3) {
	case 0:
		return HTMLEntityEncodeWith(r, input)
	case 1:
		return MixedEncodingWith(r, input)
	default:
		return XSSTagVariationsWith(r, input)
	}
}
