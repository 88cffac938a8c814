package transform_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/transform"
)

func TestSQLCommentInjectionKeepsEveryWord(t *testing.T) {
	in := "SELECT name FROM users WHERE id = 1"
	out := transform.SQLCommentInjectionWith(rng.NewSeeded(2), in)
	for _, word := range strings.Fields(in) {
		assert.Contains(t, out, word)
	}
	assert.True(t, strings.HasPrefix(out, "SELECT"), "first word is never prefixed")
}

func TestXSSTagVariationsPreservesPayloadShape(t *testing.T) {
	in := "<script>alert(1)</script>"
	out := transform.XSSTagVariationsWith(rng.NewSeeded(6), in)
	assert.Contains(t, strings.ToLower(out), "alert(1)")
	assert.NotContains(t, out, "\x00")
}

func TestNullByteInjection(t *testing.T) {
	in := "filename.php"
	got := false
	for seed := uint64(0); seed < 20 && !got; seed++ {
		out := transform.NullByteInjectionWith(rng.NewSeeded(seed), in)
		stripped := out
		for _, nb := range []string{"%00", "\\0", "\\x00", "&#00;"} {
			stripped = strings.ReplaceAll(stripped, nb, "")
		}
		assert.Equal(t, in, stripped, "seed %d: removing markers must restore input", seed)
		got = got || out != in
	}
	assert.True(t, got, "20 seeds should produce at least one injection")
}

func TestNullByteInjectionShortInputs(t *testing.T) {
	assert.Equal(t, "", transform.NullByteInjection(""))
	assert.Equal(t, "x", transform.NullByteInjection("x"))
	assert.Equal(t, "xy", transform.NullByteInjection("xy"), "no interior position in a 2-rune input")
}

func TestPathTraversalKeepsSegments(t *testing.T) {
	in := "etc/passwd"
	out := transform.PathTraversalWith(rng.NewSeeded(3), in)
	assert.Contains(t, out, "etc")
	assert.Contains(t, out, "passwd")
}

func TestCommandInjectionKeepsWords(t *testing.T) {
	in := "cat /etc/hosts now"
	out := transform.CommandInjectionWith(rng.NewSeeded(1), in)
	for _, word := range strings.Fields(in) {
		assert.Contains(t, out, word)
	}
}
