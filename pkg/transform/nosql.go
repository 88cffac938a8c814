package transform

import (
	"fmt"
	"strings"

	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/tables"
)

// MongoDBInjection splices MongoDB operator fragments ($ne, $regex, $where
// clauses) into the input. If the input looks like a JSON object the
// fragment lands before the closing brace, otherwise the input is wrapped
// into an operator expression.
func MongoDBInjection(input string) string {
	return MongoDBInjectionWith(rng.New(), input)
}

// MongoDBInjectionWith is MongoDBInjection with an explicit randomness
// source.
func MongoDBInjectionWith(r *rng.Rng, input string) string {
	if input == "" {
		return input
	}
	op := rng.Pick(r, tables.MongoOperators)
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		body := strings.TrimSuffix(trimmed, "}")
		if strings.TrimSpace(strings.TrimPrefix(body, "{")) == "" {
			return "{" + op + "}"
		}
		return body + ", " + op + "}"
	}
	return fmt.Sprintf(`{"%s": {%s}}`, input, op)
}

// CouchDBInjection splices Mango selector fragments into the input,
// following the same JSON-aware insertion rule as MongoDBInjection.
func CouchDBInjection(input string) string {
	return CouchDBInjectionWith(rng.New(), input)
}

// CouchDBInjectionWith is CouchDBInjection with an explicit randomness
// source.
func CouchDBInjectionWith(r *rng.Rng, input string) string {
	if input == "" {
		return input
	}
	sel := rng.Pick(r, tables.CouchSelectors)
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		body := strings.TrimSuffix(trimmed, "}")
		if strings.TrimSpace(strings.TrimPrefix(body, "{")) == "" {
			return "{" + sel + "}"
		}
		return body + ", " + sel + "}"
	}
	return fmt.Sprintf(`{"%s", %s}`, input, sel)
}

// DynamoDBObfuscate rewrites the input as a DynamoDB condition expression
// using placeholder names, appending a random expression function.
func DynamoDBObfuscate(input string) string {
	return DynamoDBObfuscateWith(rng.New(), input)
}

// DynamoDBObfuscateWith is DynamoDBObfuscate with an explicit randomness
// source.
func DynamoDBObfuscateWith(r *rng.Rng, input string) string {
	if input == "" {
		return input
	}
	expr := rng.Pick(r, tables.DynamoExpressions)
	expr = strings.ReplaceAll(expr, "#k", "#"+sanitizePlaceholder(input))
	return fmt.Sprintf("%s AND %s", input, expr)
}

func sanitizePlaceholder(s string) string {
	var b strings.Builder
	for _, c := range s {
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	if b.Len() == 0 {
		return "k"
	}
	return b.String()
}

// NoSQLOperatorInjection appends a randomly chosen NoSQL comparison or
// logical operator keyed on the input value.
func NoSQLOperatorInjection(input string) string {
	return NoSQLOperatorInjectionWith(rng.New(), input)
}

// NoSQLOperatorInjectionWith is NoSQLOperatorInjection with an explicit
// randomness source.
func NoSQLOperatorInjectionWith(r *rng.Rng, input string) string {
	if input == "" {
		return input
	}
	op := rng.Pick(r, tables.NoSQLOperators)
	switch r.Intn(3) {
	case 0:
		return fmt.Sprintf(`{"%s": {"%s": null}}`, input, op)
	case 1:
		return fmt.Sprintf(`%s[%s]=`, input, op)
	default:
		return fmt.Sprintf(`{"%s": {"%s": ""}}`, input, op)
	}
}
