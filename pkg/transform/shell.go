package transform

import (
	"strings"
	"unicode"

	"github.com/manglekit/mangle/pkg/rng"
)

// PowershellObfuscate mutates a PowerShell command: quoted or dropped
// dashes, doubled spaces, and case flips on roughly a third of the
// letters (PowerShell is case-insensitive, detectors often are not).
func PowershellObfuscate(input string) string {
	return PowershellObfuscateWith(rng.New(), input)
}

// PowershellObfuscateWith is PowershellObfuscate with an explicit
// randomness source.
func PowershellObfuscateWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		switch c {
		case '-':
			switch r.Intn(3) {
			case 0:
				b.WriteByte('-')
			case 1:
				b.WriteString("'-'")
			default:
				b.WriteByte(' ')
			}
		case ' ':
			if r.Bool() {
				b.WriteByte(' ')
			} else {
				b.WriteString("  ")
			}
		default:
			if unicode.IsLetter(c) && r.Chance(3) {
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

// BashObfuscate substitutes spaces with bash-equivalent separators:
// ${IFS}, tab, or quoted space.
func BashObfuscate(input string) string {
	return BashObfuscateWith(rng.New(), input)
}

// BashObfuscateWith is BashObfuscate with an explicit randomness source.
func BashObfuscateWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		if c == ' ' {
			switch r.Intn(4) {
			case 0:
				b.WriteByte(' ')
			case 1:
				b.WriteString("${IFS}")
			case 2:
				b.WriteByte('\t')
			default:
				b.WriteString("$' '")
			}
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// EnvVarObfuscate rewrites $ sigils into brace-expansion or
// command-substitution openers and flips roughly a quarter of the letter
// cases. Inputs without a $ pass through unchanged.
func EnvVarObfuscate(input string) string {
	return EnvVarObfuscateWith(rng.New(), input)
}

// EnvVarObfuscateWith is EnvVarObfuscate with an explicit randomness
// source.
func EnvVarObfuscateWith(r *rng.Rng, input string) string {
	if !strings.Contains(input, "$") {
		return input
	}
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		switch {
		case c == '$':
			switch r.Intn(3) {
			case 0:
				b.WriteByte('$')
			case 1:
				b.WriteString("${")
			default:
				b.WriteString("$(")
			}
		case unicode.IsLetter(c) && r.Chance(4):
			if unicode.IsUpper(c) {
				writeLower(&b, c)
			} else {
				writeUpper(&b, c)
			}
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// FilePathObfuscate mutates a filesystem path: occasional ../ insertion or
// backslash swap at separators, %2e dot encoding, and rare case flips.
func FilePathObfuscate(input string) string {
	return FilePathObfuscateWith(rng.New(), input)
}

// FilePathObfuscateWith is FilePathObfuscate with an explicit randomness
// source.
func FilePathObfuscateWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		switch c {
		case '/':
			switch r.Intn(4) {
			case 1:
				if r.Bool() {
					b.WriteString("../")
				} else {
					b.WriteByte('/')
				}
			case 2:
				b.WriteByte('\\')
			default:
				b.WriteByte('/')
			}
		case '.':
			if r.Chance(3) {
				b.WriteString("%2e")
			} else {
				b.WriteByte('.')
			}
		default:
			if unicode.IsLetter(c) && r.Chance(5) {
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
