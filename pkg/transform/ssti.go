package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/tables"
)

// ErrUnknownFramework is returned by SSTIFrameworkVariation for a
// framework selector with no registered pattern pool. Selection never
// silently falls back to a default: picking the wrong payload family would
// mislead a tester.
var ErrUnknownFramework = fmt.Errorf("unknown template framework")

// SSTIInjection splices a generic template-evaluation probe ({{7*7}},
// ${7*7}, <%= 7*7 %>, …) before, after, or around the input.
func SSTIInjection(input string) string {
	return SSTIInjectionWith(rng.New(), input)
}

// SSTIInjectionWith is SSTIInjection with an explicit randomness source.
func SSTIInjectionWith(r *rng.Rng, input string) string {
	probe := rng.Pick(r, tables.SSTIProbes)
	switch r.Intn(3) {
	case 0:
		return probe + input
	case 1:
		return input + probe
	default:
		return probe + input + probe
	}
}

// SSTISyntaxObfuscate mutates template delimiters already present in the
// input, randomly inserting a space after {{, }} and ${. Text outside the
// delimiters is left alone; engines tolerate the spacing, naive filters
// often do not.
func SSTISyntaxObfuscate(input string) string {
	return SSTISyntaxObfuscateWith(rng.New(), input)
}

// SSTISyntaxObfuscateWith is SSTISyntaxObfuscate with an explicit
// randomness source.
func SSTISyntaxObfuscateWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		doubled := (c == '{' || c == '}') && i+1 < len(runes) && runes[i+1] == c
		dollar := c == '$' && i+1 < len(runes) && runes[i+1] == '{'
		if doubled || dollar {
			b.WriteRune(c)
			b.WriteRune(runes[i+1])
			if r.Bool() {
				b.WriteByte(' ')
			}
			i++
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// SSTIFrameworks lists the recognized framework selectors in stable order.
func SSTIFrameworks() []string {
	names := make([]string, 0, len(tables.SSTIFrameworks))
	for name := range tables.SSTIFrameworks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SSTIFrameworkVariation wraps the template in delimiters from the named
// framework's pattern pool. The framework selector is matched
// case-insensitively; an unrecognized name returns ErrUnknownFramework.
func SSTIFrameworkVariation(template, framework string) (string, error) {
	return SSTIFrameworkVariationWith(rng.New(), template, framework)
}

// SSTIFrameworkVariationWith is SSTIFrameworkVariation with an explicit
// randomness source.
func SSTIFrameworkVariationWith(r *rng.Rng, template, framework string) (string, error) {
	pool, ok := tables.SSTIFrameworks[strings.ToLower(framework)]
	if !ok {
		return "", fmt.Errorf("%w: %q (known: %s)", ErrUnknownFramework, framework,
			strings.Join(SSTIFrameworks(), ", "))
	}
	delims := pool[r.Intn(len(pool))]
	return delims[0] + template + delims[1], nil
}
