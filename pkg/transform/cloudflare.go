package transform

import (
	"strings"
	"unicode"

	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/tables"
)

func randomSuffix(r *rng.Rng) string {
	length := 8 + r.Intn(8)
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(tables.AlphaNum[r.Intn(len(tables.AlphaNum))])
	}
	return b.String()
}

// CloudflareTurnstileVariation wraps the input in one of four turnstile
// token shapes, most with a random 8-15 character suffix.
func CloudflareTurnstileVariation(input string) string {
	return CloudflareTurnstileVariationWith(rng.New(), input)
}

// CloudflareTurnstileVariationWith is CloudflareTurnstileVariation with an
// explicit randomness source.
func CloudflareTurnstileVariationWith(r *rng.Rng, input string) string {
	switch r.Intn(4) {
	case 0:
		return input + "-" + randomSuffix(r)
	case 1:
		return input + "_" + randomSuffix(r)
	case 2:
		return "cf-turnstile-" + input
	default:
		return "turnstile-" + input + "-" + randomSuffix(r)
	}
}

// CloudflareChallengeResponse mutates clearance-cookie text per character
// (spacing, separator swaps); challenge/turnstile text gets an optional
// suffix; anything else becomes input-suffix.
func CloudflareChallengeResponse(input string) string {
	return CloudflareChallengeResponseWith(rng.New(), input)
}

// CloudflareChallengeResponseWith is CloudflareChallengeResponse with an
// explicit randomness source.
func CloudflareChallengeResponseWith(r *rng.Rng, input string) string {
	switch {
	case strings.Contains(input, "cf_clearance") || strings.Contains(input, "__cf_bm"):
		var b strings.Builder
		b.Grow(len(input) * 2)
		for _, c := range input {
			switch r.Intn(10) {
			case 7:
				if c == '=' && r.Bool() {
					b.WriteString(" = ")
				} else {
					b.WriteRune(c)
				}
			case 8:
				switch {
				case c == '_' && r.Chance(3):
					b.WriteByte('-')
				case c == '-' && r.Chance(3):
					b.WriteByte('_')
				default:
					b.WriteRune(c)
				}
			default:
				b.WriteRune(c)
			}
		}
		return b.String()
	case strings.Contains(input, "turnstile") || strings.Contains(input, "challenge"):
		if r.Bool() {
			return input + "-" + randomSuffix(r)
		}
		return input
	default:
		return input + "-" + randomSuffix(r)
	}
}

// TLSHandshakePattern re-joins the input's segments with a single randomly
// chosen separator, normalizing whatever separator mix was there before.
func TLSHandshakePattern(input string) string {
	return TLSHandshakePatternWith(rng.New(), input)
}

// TLSHandshakePatternWith is TLSHandshakePattern with an explicit
// randomness source.
func TLSHandshakePatternWith(r *rng.Rng, input string) string {
	sep := rng.Pick(r, []string{":", ",", " ", "-"})
	parts := strings.FieldsFunc(input, func(c rune) bool {
		return c == ':' || c == ',' || c == ' ' || c == '-'
	})
	if len(parts) == 0 {
		return input
	}
	return strings.Join(parts, sep)
}

// CanvasFingerprintVariation introduces rare 0/O and 1/l confusions plus
// occasional doubled whitespace, mimicking canvas-hash jitter. Roughly
// four in five characters pass through untouched.
func CanvasFingerprintVariation(input string) string {
	return CanvasFingerprintVariationWith(rng.New(), input)
}

// CanvasFingerprintVariationWith is CanvasFingerprintVariation with an
// explicit randomness source.
func CanvasFingerprintVariationWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		switch r.Intn(15) {
		case 12:
			switch c {
			case '0':
				if r.Bool() {
					b.WriteByte('O')
				} else {
					b.WriteByte('0')
				}
			case '1':
				if r.Bool() {
					b.WriteByte('l')
				} else {
					b.WriteByte('1')
				}
			case 'O':
				if r.Bool() {
					b.WriteByte('0')
				} else {
					b.WriteByte('O')
				}
			case 'l':
				if r.Bool() {
					b.WriteByte('1')
				} else {
					b.WriteByte('l')
				}
			default:
				b.WriteRune(c)
			}
		case 13:
			if unicode.IsSpace(c) && r.Bool() {
				b.WriteString("  ")
			} else {
				b.WriteRune(c)
			}
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// WebGLFingerprintObfuscate nudges occasional digits by one and flips rare
// letter cases, producing a near-identical renderer string.
func WebGLFingerprintObfuscate(input string) string {
	return WebGLFingerprintObfuscateWith(rng.New(), input)
}

// WebGLFingerprintObfuscateWith is WebGLFingerprintObfuscate with an
// explicit randomness source.
func WebGLFingerprintObfuscateWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		switch r.Intn(12) {
		case 10:
			if c >= '0' && c <= '9' && r.Chance(4) {
				b.WriteRune('0' + (c-'0'+1)%10)
			} else {
				b.WriteRune(c)
			}
		case 11:
			if unicode.IsLetter(c) && r.Chance(5) {
				if unicode.IsUpper(c) {
					writeLower(&b, c)
				} else {
					writeUpper(&b, c)
				}
			} else {
				b.WriteRune(c)
			}
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// FontFingerprintConsistency re-joins a font list with one consistent
// separator style and occasionally quotes unquoted family names.
func FontFingerprintConsistency(input string) string {
	return FontFingerprintConsistencyWith(rng.New(), input)
}

// FontFingerprintConsistencyWith is FontFingerprintConsistency with an
// explicit randomness source.
func FontFingerprintConsistencyWith(r *rng.Rng, input string) string {
	if input == "" {
		return input
	}
	raw := strings.FieldsFunc(input, func(c rune) bool {
		return c == ',' || c == ';'
	})
	fonts := make([]string, 0, len(raw))
	for _, f := range raw {
		if t := strings.TrimSpace(f); t != "" {
			fonts = append(fonts, t)
		}
	}
	if len(fonts) == 0 {
		return input
	}
	sep := rng.Pick(r, []string{", ", ",", "; ", ";"})
	for i, f := range fonts {
		if r.Chance(4) && !strings.HasPrefix(f, `"`) {
			fonts[i] = `"` + f + `"`
		}
	}
	return strings.Join(fonts, sep)
}
