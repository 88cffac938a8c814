package transform_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/transform"
)

func TestBase64Encode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello", "aGVsbG8="},
		{"", ""},
		{"a", "YQ=="},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, transform.Base64Encode(tt.in), "input %q", tt.in)
	}
}

func TestHexEncode(t *testing.T) {
	assert.Equal(t, "6869", transform.HexEncode("hi"))
	assert.Equal(t, "", transform.HexEncode(""))
	assert.Equal(t, "00ff", transform.HexEncode("\x00\xff"))
}

func TestURLEncode(t *testing.T) {
	assert.Equal(t, "hello%20world", transform.URLEncode("hello world"))
	assert.Equal(t, "a-b_c.d~e", transform.URLEncode("a-b_c.d~e"), "unreserved set passes through")
	assert.Equal(t, "%27%3B%20DROP", transform.URLEncode("'; DROP"))
}

func TestURLEncodeNeverShrinks(t *testing.T) {
	inputs := []string{"", "plain", "with space", "ünïcode", "<script>"}
	for _, in := range inputs {
		assert.GreaterOrEqual(t, len(transform.URLEncode(in)), len(in), "input %q", in)
	}
}

func TestHexEncodeMixedCoversEveryByte(t *testing.T) {
	out := transform.HexEncodeMixedWith(rng.NewSeeded(9), "abc")
	chunks := regexp.MustCompile(`\\x[0-9a-f]{2}|%[0-9a-f]{2}|0x[0-9a-f]{2}|&#x[0-9a-f]{2};`).
		FindAllString(out, -1)
	assert.Len(t, chunks, 3, "one encoded chunk per input byte, got %q", out)
}

func TestHTMLEntityEncodeSeededDeterminism(t *testing.T) {
	a := transform.HTMLEntityEncodeWith(rng.NewSeeded(5), "<img src=x>")
	b := transform.HTMLEntityEncodeWith(rng.NewSeeded(5), "<img src=x>")
	assert.Equal(t, a, b)
}

func TestMixedEncodingEmpty(t *testing.T) {
	assert.Equal(t, "", transform.MixedEncoding(""))
	assert.Equal(t, "", transform.HexEncodeMixed(""))
	assert.Equal(t, "", transform.HTMLEntityEncode(""))
}

func TestMixedEncodingProducesKnownShapes(t *testing.T) {
	out := transform.MixedEncodingWith(rng.NewSeeded(11), "payload")
	legal := regexp.MustCompile(`^([a-z]|&#x[0-9a-f]+;|&#[0-9]+;|\\u\{[0-9a-f]{4,}\})+$`)
	assert.True(t, legal.MatchString(out), "unexpected escape shape in %q", out)
}
