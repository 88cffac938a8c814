package transform

import (
	"sort"
	"strings"

	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/tables"
)

// HTTPHeaderVariation replaces known Content-Type values with an
// equivalent spelling from a variant pool; other header text gets random
// case mutation and separator-spacing tweaks.
func HTTPHeaderVariation(input string) string {
	return HTTPHeaderVariationWith(rng.New(), input)
}

// HTTPHeaderVariationWith is HTTPHeaderVariation with an explicit
// randomness source.
func HTTPHeaderVariationWith(r *rng.Rng, input string) string {
	// Fixed key order keeps seeded output stable when several known
	// values appear in the same input.
	keys := make([]string, 0, len(tables.ContentTypeVariants))
	for key := range tables.ContentTypeVariants {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.Contains(input, key) {
			return rng.Pick(r, tables.ContentTypeVariants[key])
		}
	}
	result := CaseSwapWith(r, input)
	if r.Bool() {
		result = strings.ReplaceAll(result, " ", "")
		result = strings.ReplaceAll(result, ";", "; ")
	}
	return result
}

// APIEndpointVariation applies one of four path-equivalence mutations:
// trailing slash added, trailing slash stripped, case swap, or slash
// doubling/collapse.
func APIEndpointVariation(input string) string {
	return APIEndpointVariationWith(rng.New(), input)
}

// APIEndpointVariationWith is APIEndpointVariation with an explicit
// randomness source.
func APIEndpointVariationWith(r *rng.Rng, input string) string {
	result := input
	switch r.Intn(4) {
	case 0:
		if !strings.HasSuffix(result, "/") {
			result += "/"
		}
	case 1:
		result = strings.TrimRight(result, "/")
	case 2:
		result = CaseSwapWith(r, result)
	default:
		result = strings.ReplaceAll(result, "/", "//")
		result = strings.ReplaceAll(result, "//", "/")
		result = strings.TrimPrefix(result, "/")
		result = "/" + result
	}
	return result
}

// SessionTokenVariation applies one of four token mutations: case swap,
// padding appended, URL encoding, or padding toggled off/on.
func SessionTokenVariation(input string) string {
	return SessionTokenVariationWith(rng.New(), input)
}

// SessionTokenVariationWith is SessionTokenVariation with an explicit
// randomness source.
func SessionTokenVariationWith(r *rng.Rng, input string) string {
	switch r.Intn(4) {
	case 0:
		return CaseSwapWith(r, input)
	case 1:
		return input + strings.Repeat("=", r.Intn(3))
	case 2:
		return URLEncode(input)
	default:
		if strings.HasSuffix(input, "=") {
			return strings.TrimRight(input, "=")
		}
		return input + "="
	}
}
