package transform

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/tables"
)

// Base64Encode encodes input with the RFC 4648 standard alphabet and `=`
// padding. Deterministic, bit-exact.
func Base64Encode(input string) string {
	return base64.StdEncoding.EncodeToString([]byte(input))
}

func isUnreserved(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c == '.' || c == '~'
}

// URLEncode percent-encodes every byte outside the RFC 3986 unreserved
// set. Multi-byte UTF-8 characters become multiple %XX triplets.
func URLEncode(input string) string {
	var b strings.Builder
	b.Grow(len(input) * 3)
	for i := 0; i < len(input); i++ {
		c := input[i]
		if isUnreserved(c) {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// HexEncode emits two lowercase hex digits per input byte.
func HexEncode(input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for i := 0; i < len(input); i++ {
		fmt.Fprintf(&b, "%02x", input[i])
	}
	return b.String()
}

// HexEncodeMixed encodes each byte in one of four hex styles chosen
// uniformly: C escape (\xHH), percent (%HH), literal (0xHH), or HTML
// entity (&#xHH;). Mixing styles evades detectors that pattern-match a
// single format.
func HexEncodeMixed(input string) string {
	return HexEncodeMixedWith(rng.New(), input)
}

// HexEncodeMixedWith is HexEncodeMixed with an explicit randomness source.
func HexEncodeMixedWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 8)
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch r.Intn(4) {
		case 0:
			fmt.Fprintf(&b, "\\x%02x", c)
		case 1:
			fmt.Fprintf(&b, "%%%02x", c)
		case 2:
			fmt.Fprintf(&b, "0x%02x", c)
		default:
			fmt.Fprintf(&b, "&#x%02x;", c)
		}
	}
	return b.String()
}

// HTMLEntityEncode encodes each character uniformly as plain text, a
// decimal entity, a hex entity, or a named entity where one exists.
func HTMLEntityEncode(input string) string {
	return HTMLEntityEncodeWith(rng.New(), input)
}

// HTMLEntityEncodeWith is HTMLEntityEncode with an explicit randomness
// source.
func HTMLEntityEncodeWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 8)
	for _, c := range input {
		switch r.Intn(4) {
		case 0:
			b.WriteRune(c)
		case 1:
			fmt.Fprintf(&b, "&#%d;", c)
		case 2:
			fmt.Fprintf(&b, "&#x%X;", c)
		default:
			if named, ok := tables.NamedEntities[c]; ok {
				b.WriteString(named)
			} else {
				fmt.Fprintf(&b, "&#%d;", c)
			}
		}
	}
	return b.String()
}

// MixedEncoding encodes each character uniformly as plain text, a hex HTML
// entity, a decimal HTML entity, or a \u{....} escape.
func MixedEncoding(input string) string {
	return MixedEncodingWith(rng.New(), input)
}

// MixedEncodingWith is MixedEncoding with an explicit randomness source.
func MixedEncodingWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 8)
	for _, c := range input {
		switch r.Intn(4) {
		case 0:
			b.WriteRune(c)
		case 1:
			fmt.Fprintf(&b, "&#x%x;", c)
		case 2:
			fmt.Fprintf(&b, "&#%d;", c)
		default:
			fmt.Fprintf(&b, "\\u{%04x}", c)
		}
	}
	return b.String()
}
