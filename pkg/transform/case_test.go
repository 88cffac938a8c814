package transform_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/transform"
)

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello world", "helloWorld"},
		{"hello_world", "helloWorld"},
		{"hello-big-world", "helloBigWorld"},
		{"already", "already"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, transform.ToCamelCase(tt.in), "input %q", tt.in)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello_world"},
		{"helloWorld", "hello_world"},
		{"hello-world", "hello_world"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, transform.ToSnakeCase(tt.in), "input %q", tt.in)
	}
}

func TestToKebabCase(t *testing.T) {
	assert.Equal(t, "hello-world", transform.ToKebabCase("Hello World"))
	assert.Equal(t, "hello-world", transform.ToKebabCase("helloWorld"))
	assert.Equal(t, "", transform.ToKebabCase(""))
}

func TestAlternateCase(t *testing.T) {
	assert.Equal(t, "HeLlO", transform.AlternateCase("hello"))
	assert.Equal(t, "He Ll O", transform.AlternateCase("he ll o"))
	assert.Equal(t, "", transform.AlternateCase(""))
}

func TestInverseCaseIsInvolution(t *testing.T) {
	inputs := []string{"Hello World", "SELECT * FROM users", "", "1234", "ÀbÇd"}
	for _, in := range inputs {
		assert.Equal(t, in, transform.InverseCase(transform.InverseCase(in)), "input %q", in)
	}
	assert.Equal(t, "hELLO", transform.InverseCase("Hello"))
}

func TestCaseSwapVariesAcrossCalls(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[transform.CaseSwap("Hello")] = true
	}
	assert.GreaterOrEqual(t, len(seen), 2, "50 unseeded calls should not collapse to one output")
}

func TestCaseSwapSeededDeterminism(t *testing.T) {
	a := transform.CaseSwapWith(rng.NewSeeded(42), "Hello World")
	b := transform.CaseSwapWith(rng.NewSeeded(42), "Hello World")
	assert.Equal(t, a, b)

	distinct := map[string]bool{}
	for seed := uint64(0); seed < 10; seed++ {
		distinct[transform.CaseSwapWith(rng.NewSeeded(seed), "Hello World")] = true
	}
	assert.GreaterOrEqual(t, len(distinct), 2, "seeds should not collapse to one output")
}

func TestRandomizeCapitalizationPreservesLetters(t *testing.T) {
	out := transform.RandomizeCapitalizationWith(rng.NewSeeded(7), "attack at dawn")
	assert.Equal(t, "attack at dawn", strings.ToLower(out))
}
