package transform_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/tables"
	"github.com/manglekit/mangle/pkg/transform"
)

// The entire randomized surface shares one contract: explicit-source
// variants are reproducible per seed and always emit valid UTF-8.
func TestSeededVariantsAreReproducible(t *testing.T) {
	funcs := map[string]func(*rng.Rng, string) string{
		"randomize_capitalization": transform.RandomizeCapitalizationWith,
		"case_swap":                transform.CaseSwapWith,
		"leetspeak":                transform.LeetspeakWith,
		"vowel_swap":               transform.VowelSwapWith,
		"double_characters":        transform.DoubleCharactersWith,
		"whitespace_padding":       transform.WhitespacePaddingWith,
		"js_string_concat":         transform.JSStringConcatWith,
		"homoglyph":                transform.HomoglyphSubstitutionWith,
		"zalgo":                    transform.ZalgoTextWith,
		"unicode":                  transform.UnicodeVariationsWith,
		"unicode_normalize":        transform.UnicodeNormalizeVariantsWith,
		"space_variants":           transform.SpaceVariantsWith,
		"hex_mixed":                transform.HexEncodeMixedWith,
		"html_entity":              transform.HTMLEntityEncodeWith,
		"mixed_encoding":           transform.MixedEncodingWith,
		"sql_comment":              transform.SQLCommentInjectionWith,
		"xss_tags":                 transform.XSSTagVariationsWith,
		"null_byte":                transform.NullByteInjectionWith,
		"path_traversal":           transform.PathTraversalWith,
		"command_injection":        transform.CommandInjectionWith,
		"mongodb":                  transform.MongoDBInjectionWith,
		"couchdb":                  transform.CouchDBInjectionWith,
		"dynamodb":                 transform.DynamoDBObfuscateWith,
		"nosql_operator":           transform.NoSQLOperatorInjectionWith,
		"ssti":                     transform.SSTIInjectionWith,
		"ssti_syntax":              transform.SSTISyntaxObfuscateWith,
		"typosquat":                transform.DomainTyposquatWith,
		"domain_spoof":             transform.AdvancedDomainSpoofWith,
		"email":                    transform.EmailObfuscationWith,
		"url_shortening":           transform.URLShorteningPatternWith,
		"user_agent":               transform.RandomUserAgentWith,
		"http2_order":              transform.HTTP2HeaderOrderWith,
		"tls_fingerprint":          transform.TLSFingerprintVariationWith,
		"accept_language":          transform.AcceptLanguageVariationWith,
		"cf_challenge":             transform.CloudflareChallengeVariationWith,
		"cf_turnstile":             transform.CloudflareTurnstileVariationWith,
		"cf_response":              transform.CloudflareChallengeResponseWith,
		"tls_handshake":            transform.TLSHandshakePatternWith,
		"canvas":                   transform.CanvasFingerprintVariationWith,
		"webgl":                    transform.WebGLFingerprintObfuscateWith,
		"font":                     transform.FontFingerprintConsistencyWith,
		"http_header":              transform.HTTPHeaderVariationWith,
		"api_endpoint":             transform.APIEndpointVariationWith,
		"session_token":            transform.SessionTokenVariationWith,
		"html_attr":                transform.HTMLInputAttributeVariationWith,
		"html_field":               transform.HTMLFormFieldObfuscateWith,
		"html_type":                transform.HTMLInputTypeVariationWith,
		"html_action":              transform.HTMLFormActionVariationWith,
		"html_value":               transform.HTMLInputValueObfuscateWith,
		"powershell":               transform.PowershellObfuscateWith,
		"bash":                     transform.BashObfuscateWith,
		"env_var":                  transform.EnvVarObfuscateWith,
		"file_path":                transform.FilePathObfuscateWith,
		"graphql":                  transform.GraphQLObfuscateWith,
		"graphql_variable":         transform.GraphQLVariableInjectionWith,
		"graphql_introspection":    transform.GraphQLIntrospectionBypassWith,
	}
	inputs := []string{"", "admin.example.com/login?user=$USER word", "Invoke-WebRequest -Uri http://x"}
	for name, fn := range funcs {
		for _, in := range inputs {
			a := fn(rng.NewSeeded(1234), in)
			b := fn(rng.NewSeeded(1234), in)
			assert.Equal(t, a, b, "%s must be deterministic per seed on %q", name, in)
			assert.True(t, utf8.ValidString(a), "%s emitted invalid UTF-8 on %q", name, in)
		}
	}
}

func TestHomoglyphThenURLEncodeDiffers(t *testing.T) {
	in := "paypal.com"
	plain := transform.URLEncode(in)
	differed := false
	for seed := uint64(0); seed < 30 && !differed; seed++ {
		spoofed := transform.URLEncode(transform.HomoglyphSubstitutionWith(rng.NewSeeded(seed), in))
		differed = spoofed != plain
	}
	assert.True(t, differed, "substituted codepoints must survive percent-encoding")
}

func TestHomoglyphKeepsRuneCount(t *testing.T) {
	in := "paypal"
	changed := false
	for seed := uint64(0); seed < 30; seed++ {
		out := transform.HomoglyphSubstitutionWith(rng.NewSeeded(seed), in)
		assert.Equal(t, len([]rune(in)), len([]rune(out)), "seed %d", seed)
		changed = changed || out != in
	}
	assert.True(t, changed, "30 seeds should substitute at least once")
}

func TestZalgoTextAddsCombiningMarks(t *testing.T) {
	out := transform.ZalgoTextWith(rng.NewSeeded(1), "hi")
	assert.Greater(t, len([]rune(out)), 2)
	assert.Equal(t, "", transform.ZalgoText(""))
	assert.Equal(t, "123", transform.ZalgoText("123"), "non-letters stay unmarked")
}

func TestSpaceVariantsOnlyTouchesSpaces(t *testing.T) {
	out := transform.SpaceVariantsWith(rng.NewSeeded(2), "a b")
	runes := []rune(out)
	require.Len(t, runes, 3)
	assert.Equal(t, 'a', runes[0])
	assert.Equal(t, 'b', runes[2])
	assert.NotEqual(t, ' ', runes[1])
	assert.Contains(t, tables.UnicodeSpaces, runes[1])
}

func TestRandomUserAgentDrawsFromPool(t *testing.T) {
	out := transform.RandomUserAgent("ignored")
	assert.Contains(t, tables.UserAgents, out)
	assert.Equal(t,
		transform.RandomUserAgentWith(rng.NewSeeded(1), "a"),
		transform.RandomUserAgentWith(rng.NewSeeded(1), "b"),
		"input is ignored entirely")
}

func TestBashObfuscateOnlyRewritesSpaces(t *testing.T) {
	in := "cat /etc/passwd"
	for seed := uint64(0); seed < 8; seed++ {
		out := transform.BashObfuscateWith(rng.NewSeeded(seed), in)
		restored := out
		for _, sep := range []string{"${IFS}", "\t", "$' '"} {
			restored = strings.ReplaceAll(restored, sep, " ")
		}
		assert.Equal(t, in, restored, "seed %d", seed)
	}
}

func TestEnvVarObfuscatePassthroughWithoutSigil(t *testing.T) {
	assert.Equal(t, "plain text", transform.EnvVarObfuscate("plain text"))
	out := transform.EnvVarObfuscateWith(rng.NewSeeded(3), "$HOME")
	assert.True(t, strings.HasPrefix(out, "$"), "sigil variants all start with $: %q", out)
}

func TestEmailObfuscation(t *testing.T) {
	assert.Equal(t, "not-an-email", transform.EmailObfuscation("not-an-email"), "no @ means passthrough")
	assert.Equal(t, "a@b@c", transform.EmailObfuscation("a@b@c"), "multiple @ means passthrough")

	mutated := transform.EmailObfuscationWith(rng.NewSeeded(1), "alice@example.com")
	assert.Contains(t, mutated, "@")
}

func TestURLShorteningPatternIgnoresInput(t *testing.T) {
	a := transform.URLShorteningPatternWith(rng.NewSeeded(5), "anything")
	b := transform.URLShorteningPatternWith(rng.NewSeeded(5), "else")
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "https://"), "got %q", a)
}

func TestDomainTyposquatSingleEdit(t *testing.T) {
	in := "example.com"
	changed := false
	for seed := uint64(0); seed < 30; seed++ {
		out := transform.DomainTyposquatWith(rng.NewSeeded(seed), in)
		diff := len([]rune(out)) - len([]rune(in))
		assert.True(t, diff >= -1 && diff <= 1, "seed %d: one edit changes length by at most one: %q", seed, out)
		changed = changed || out != in
	}
	assert.True(t, changed, "30 seeds should produce at least one visible edit")
	assert.Equal(t, "", transform.DomainTyposquat(""))
}

func TestDomainTyposquatLeavesTLDIntact(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		out := transform.DomainTyposquatWith(rng.NewSeeded(seed), "example.com")
		assert.True(t, strings.HasSuffix(out, ".com"), "seed %d: tld must survive the edit: %q", seed, out)
	}
	// Multi-level suffixes stay whole too.
	for seed := uint64(0); seed < 20; seed++ {
		out := transform.DomainTyposquatWith(rng.NewSeeded(seed), "login.example.co.uk")
		assert.True(t, strings.HasSuffix(out, ".example.co.uk"), "seed %d: %q", seed, out)
	}
}

func TestHTTPHeaderVariationStableForMultipleMatches(t *testing.T) {
	in := "Accept: application/json, text/html"
	for seed := uint64(0); seed < 10; seed++ {
		out := transform.HTTPHeaderVariationWith(rng.NewSeeded(seed), in)
		assert.Contains(t, tables.ContentTypeVariants["application/json"], out, "seed %d: %q", seed, out)
	}
}

func TestHTMLInputTypeVariationSwapsWithinPool(t *testing.T) {
	out := transform.HTMLInputTypeVariationWith(rng.NewSeeded(1), "text")
	assert.NotEqual(t, "text", out)
	assert.Contains(t, tables.HTMLInputTypes, out)
}
