package transform

import (
	"strings"
	"unicode"

	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/tables"
)

// GraphQLObfuscate mutates query whitespace (spaces, doubled spaces,
// tabs), spacing around braces, and roughly a quarter of the letter cases.
func GraphQLObfuscate(input string) string {
	return GraphQLObfuscateWith(rng.New(), input)
}

// GraphQLObfuscateWith is GraphQLObfuscate with an explicit randomness
// source.
func GraphQLObfuscateWith(r *rng.Rng, input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for _, c := range input {
		switch {
		case c == ' ':
			switch r.Intn(3) {
			case 0:
				b.WriteByte(' ')
			case 1:
				b.WriteString("  ")
			default:
				b.WriteByte('\t')
			}
		case c == '{' || c == '}':
			b.WriteRune(c)
			if r.Bool() && r.Bool() {
				b.WriteByte(' ')
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

// GraphQLVariableInjection rewrites inline string arguments into variable
// references, appending a $injected variable definition. Inputs without an
// operation keyword get a variables JSON fragment appended instead.
func GraphQLVariableInjection(input string) string {
	return GraphQLVariableInjectionWith(rng.New(), input)
}

// GraphQLVariableInjectionWith is GraphQLVariableInjection with an
// explicit randomness source.
func GraphQLVariableInjectionWith(r *rng.Rng, input string) string {
	if input == "" {
		return input
	}
	varName := "$" + rng.Pick(r, []string{"injected", "v0", "arg", "input"})
	if strings.Contains(input, "query") || strings.Contains(input, "mutation") {
		// Splice a variable definition after the operation keyword.
		for _, kw := range []string{"mutation", "query"} {
			if idx := strings.Index(input, kw); idx >= 0 {
				insert := idx + len(kw)
				return input[:insert] + " (" + varName + ": String)" + input[insert:]
			}
		}
	}
	return input + ` {"variables": {"` + strings.TrimPrefix(varName, "$") + `": null}}`
}

// GraphQLIntrospectionBypass respells introspection field names with
// mutated case and doubled-underscore tricks to probe filters that block
// the canonical __schema spelling.
func GraphQLIntrospectionBypass(input string) string {
	return GraphQLIntrospectionBypassWith(rng.New(), input)
}

// GraphQLIntrospectionBypassWith is GraphQLIntrospectionBypass with an
// explicit randomness source.
func GraphQLIntrospectionBypassWith(r *rng.Rng, input string) string {
	result := input
	if strings.Contains(result, "__schema") {
		repl := rng.Pick(r, tables.GraphQLIntrospectionFields)
		for repl == "__schema" {
			repl = rng.Pick(r, tables.GraphQLIntrospectionFields)
		}
		return strings.Replace(result, "__schema", repl, 1)
	}
	// No introspection present: wrap the input in an introspection probe.
	field := rng.Pick(r, tables.GraphQLIntrospectionFields)
	return "{" + field + " {types {name}}} " + result
}
