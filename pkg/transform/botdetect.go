package transform

import (
	"strings"
	"unicode"

	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/tables"
)

// RandomUserAgent returns a uniformly chosen entry from the user-agent
// corpus. The input is ignored; the CLI treats this as a no-input mode.
func RandomUserAgent(input string) string {
	return RandomUserAgentWith(rng.New(), input)
}

// RandomUserAgentWith is RandomUserAgent with an explicit randomness
// source.
func RandomUserAgentWith(r *rng.Rng, _ string) string {
	return rng.Pick(r, tables.UserAgents)
}

// HTTP2HeaderOrder reorders the first five header lines into one of
// several realistic client orderings, appending any remaining lines in
// their original order.
func HTTP2HeaderOrder(input string) string {
	return HTTP2HeaderOrderWith(rng.New(), input)
}

// HTTP2HeaderOrderWith is HTTP2HeaderOrder with an explicit randomness
// source.
func HTTP2HeaderOrderWith(r *rng.Rng, input string) string {
	lines := strings.Split(input, "\n")
	if len(lines) <= 1 {
		return input
	}

	orders := [][]int{
		{0, 1, 2, 3, 4},
		{1, 0, 2, 3, 4},
		{0, 2, 1, 3, 4},
		{2, 0, 1, 3, 4},
	}
	order := orders[r.Intn(len(orders))]

	var b strings.Builder
	b.Grow(len(input) + 8)
	written := 0
	used := make(map[int]bool, len(order))
	for _, idx := range order {
		if idx >= len(lines) {
			continue
		}
		if written > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(lines[idx])
		used[idx] = true
		written++
	}
	for i, line := range lines {
		if !used[i] {
			if written > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(line)
			written++
		}
	}
	return b.String()
}

// TLSFingerprintVariation lightly mutates a fingerprint string: occasional
// underscore-to-hyphen swaps and rare case flips, keeping the overall
// segment structure intact.
func TLSFingerprintVariation(input string) string {
	return TLSFingerprintVariationWith(rng.New(), input)
}

// TLSFingerprintVariationWith is TLSFingerprintVariation with an explicit
// randomness source.
func TLSFingerprintVariationWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		switch r.Intn(10) {
		case 8:
			if c == '_' && r.Bool() {
				b.WriteByte('-')
			} else {
				b.WriteRune(c)
			}
		case 9:
			if unicode.IsLetter(c) && r.Chance(3) {
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

// AcceptLanguageVariation either swaps the whole value for a realistic
// corpus entry (one in three) or tweaks comma spacing in place.
func AcceptLanguageVariation(input string) string {
	return AcceptLanguageVariationWith(rng.New(), input)
}

// AcceptLanguageVariationWith is AcceptLanguageVariation with an explicit
// randomness source.
func AcceptLanguageVariationWith(r *rng.Rng, input string) string {
	if r.Chance(3) {
		return rng.Pick(r, tables.AcceptLanguages)
	}
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		if c == ',' && r.Bool() {
			b.WriteString(", ")
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// CloudflareChallengeVariation mutates clearance-cookie text (spacing
// around =, underscore/hyphen swaps); anything without a cf_clearance or
// __cf_bm marker falls back to case swapping.
func CloudflareChallengeVariation(input string) string {
	return CloudflareChallengeVariationWith(rng.New(), input)
}

// CloudflareChallengeVariationWith is CloudflareChallengeVariation with an
// explicit randomness source.
func CloudflareChallengeVariationWith(r *rng.Rng, input string) string {
	if !strings.Contains(input, "cf_clearance") && !strings.Contains(input, "__cf_bm") {
		return CaseSwapWith(r, input)
	}
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		switch {
		case c == '=' && r.Chance(3):
			b.WriteString(" = ")
		case c == '_' && r.Chance(4):
			b.WriteByte('-')
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
