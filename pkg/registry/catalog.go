package registry

// =============================================================================
// TRANSFORMATION CATALOG BY FAMILY
// All transformations are registered here, once, at first Get().
// Canonical names and aliases are the stable public vocabulary of the CLI
// and the HTTP API.
// =============================================================================

import (
	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/transform"
)

func (r *Registry) registerCaseTransformations() {
	fam := FamilyCase

	r.register(&Transformation{
		Name: "random", Aliases: []string{"r"}, Family: fam,
		Description: "Randomize the capitalization of each letter",
		Apply:       transform.RandomizeCapitalizationWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "alternate", Aliases: []string{"a"}, Family: fam,
		Description: "Alternate letter case, starting upper",
		Apply:       deterministic(transform.AlternateCase), ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "inverse", Aliases: []string{"i"}, Family: fam,
		Description: "Swap the case of every letter",
		Apply:       deterministic(transform.InverseCase), ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "case-swap", Aliases: []string{"cs"}, Family: fam,
		Description: "Randomly invert the case of about half the letters",
		Apply:       transform.CaseSwapWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "camel", Aliases: []string{"c"}, Family: fam,
		Description: "Convert to camelCase",
		Apply:       deterministic(transform.ToCamelCase), ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "snake", Aliases: []string{"s"}, Family: fam,
		Description: "Convert to snake_case",
		Apply:       deterministic(transform.ToSnakeCase), ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "kebab", Aliases: []string{"k"}, Family: fam,
		Description: "Convert to kebab-case",
		Apply:       deterministic(transform.ToKebabCase), ReadsInput: true,
	})
}

func (r *Registry) registerEncodingTransformations() {
	fam := FamilyEncoding

	r.register(&Transformation{
		Name: "base64", Aliases: []string{"b64"}, Family: fam,
		Description: "Base64-encode with the standard alphabet",
		Apply:       deterministic(transform.Base64Encode), ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "url-encode", Aliases: []string{"url"}, Family: fam,
		Description: "Percent-encode every byte outside the unreserved set",
		Apply:       deterministic(transform.URLEncode), ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "hex-encode", Aliases: []string{"hex"}, Family: fam,
		Description: "Encode each byte as two lowercase hex digits",
		Apply:       deterministic(transform.HexEncode), ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "hex-mixed", Aliases: []string{"hm"}, Family: fam,
		Description: "Encode each byte in a randomly chosen hex style",
		Apply:       transform.HexEncodeMixedWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "html-entity", Aliases: []string{"html"}, Family: fam,
		Description: "Encode characters as decimal, hex or named HTML entities",
		Apply:       transform.HTMLEntityEncodeWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "mixed-encoding", Aliases: []string{"me"}, Family: fam,
		Description: "Mix plain text with entity and unicode escapes",
		Apply:       transform.MixedEncodingWith, ReadsInput: true,
	})
}

func (r *Registry) registerUnicodeTransformations() {
	fam := FamilyUnicode

	r.register(&Transformation{
		Name: "unicode", Aliases: []string{"u"}, Family: fam,
		Description: "Substitute letters with accented variants",
		Apply:       transform.UnicodeVariationsWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "unicode-normalize", Aliases: []string{"unorm"}, Family: fam,
		Description: "Emit equivalent composed/decomposed/fullwidth spellings",
		Apply:       transform.UnicodeNormalizeVariantsWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "zalgo", Aliases: []string{"z"}, Family: fam,
		Description: "Stack combining diacritical marks onto each letter",
		Apply:       transform.ZalgoTextWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "homoglyph", Aliases: []string{"h"}, Family: fam,
		Description: "Replace letters with cross-script confusables",
		Apply:       transform.HomoglyphSubstitutionWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "space-variants", Aliases: []string{"sv"}, Family: fam,
		Description: "Replace ASCII spaces with Unicode space characters",
		Apply:       transform.SpaceVariantsWith, ReadsInput: true,
	})
}

func (r *Registry) registerObfuscationTransformations() {
	fam := FamilyObfuscate

	r.register(&Transformation{
		Name: "leetspeak", Aliases: []string{"l"}, Family: fam,
		Description: "Replace letters with digits and symbols (a→4, e→3, …)",
		Apply:       transform.LeetspeakWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "rot13", Family: fam,
		Description: "Rotate ASCII letters 13 positions (self-inverse)",
		Apply:       deterministic(transform.Rot13), ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "reverse", Aliases: []string{"rv"}, Family: fam,
		Description: "Reverse the string rune-wise",
		Apply:       deterministic(transform.ReverseString), ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "vowel-swap", Aliases: []string{"vs"}, Family: fam,
		Description: "Replace each vowel with a random vowel",
		Apply:       transform.VowelSwapWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "double", Aliases: []string{"d"}, Family: fam,
		Description: "Double roughly a third of the letters",
		Apply:       transform.DoubleCharactersWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "whitespace-padding", Aliases: []string{"wp"}, Family: fam,
		Description: "Insert random spaces between characters",
		Apply:       transform.WhitespacePaddingWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "js-concat", Aliases: []string{"js"}, Family: fam,
		Description: "Split into concatenated JavaScript string literals",
		Apply:       transform.JSStringConcatWith, ReadsInput: true,
	})
}

func (r *Registry) registerInjectionTransformations() {
	fam := FamilyInjection

	r.register(&Transformation{
		Name: "sql-comment", Aliases: []string{"sql"}, Family: fam,
		Description: "Splice SQL comment tokens between words",
		Apply:       transform.SQLCommentInjectionWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "xss-tags", Aliases: []string{"xss"}, Family: fam,
		Description: "Rewrite angle brackets into mixed encodings",
		Apply:       transform.XSSTagVariationsWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "null-byte", Aliases: []string{"nb"}, Family: fam,
		Description: "Insert textual null-byte representations",
		Apply:       transform.NullByteInjectionWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "path-traversal", Aliases: []string{"pt"}, Family: fam,
		Description: "Replace path separators with directory-escape sequences",
		Apply:       transform.PathTraversalWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "command-injection", Aliases: []string{"ci"}, Family: fam,
		Description: "Splice shell separators between words",
		Apply:       transform.CommandInjectionWith, ReadsInput: true,
	})
}

func (r *Registry) registerNoSQLTransformations() {
	fam := FamilyNoSQL

	r.register(&Transformation{
		Name: "mongodb-injection", Aliases: []string{"mongo"}, Family: fam,
		Description: "Splice MongoDB operator fragments into the input",
		Apply:       transform.MongoDBInjectionWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "couchdb-injection", Aliases: []string{"couch"}, Family: fam,
		Description: "Splice CouchDB Mango selector fragments into the input",
		Apply:       transform.CouchDBInjectionWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "dynamodb-obfuscate", Aliases: []string{"dynamo"}, Family: fam,
		Description: "Rewrite as a DynamoDB expression with placeholders",
		Apply:       transform.DynamoDBObfuscateWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "nosql-operator", Aliases: []string{"nosql"}, Family: fam,
		Description: "Append a NoSQL comparison or logical operator",
		Apply:       transform.NoSQLOperatorInjectionWith, ReadsInput: true,
	})
}

func (r *Registry) registerSSTITransformations() {
	fam := FamilySSTI

	r.register(&Transformation{
		Name: "ssti-injection", Aliases: []string{"ssti"}, Family: fam,
		Description: "Splice a template-evaluation probe around the input",
		Apply:       transform.SSTIInjectionWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "ssti-syntax", Aliases: []string{"ssti-syntax-obf"}, Family: fam,
		Description: "Mutate template delimiter spacing and case",
		Apply:       transform.SSTISyntaxObfuscateWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "ssti-framework", Aliases: []string{"ssti-fw"}, Family: fam,
		Description: "Wrap the template in a named framework's delimiters",
		ApplyArg:    transform.SSTIFrameworkVariationWith,
		ArgName:     "framework", ReadsInput: true,
	})
}

func (r *Registry) registerJWTTransformations() {
	fam := FamilyJWT

	r.register(&Transformation{
		Name: "jwt-header", Aliases: []string{"jwt-h"}, Family: fam,
		Description: "Mutate the JWT header (typ respell, kid injection)",
		Apply:       transform.JWTHeaderManipulationWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "jwt-payload", Aliases: []string{"jwt-p"}, Family: fam,
		Description: "Re-encode the JWT claims with a mutated value",
		Apply:       transform.JWTPayloadObfuscateWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "jwt-alg-confusion", Aliases: []string{"jwt-alg"}, Family: fam,
		Description: "Rewrite the alg header to a confusion target",
		Apply:       transform.JWTAlgorithmConfusionWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "jwt-signature-bypass", Aliases: []string{"jwt-sig"}, Family: fam,
		Description: "Strip, truncate or randomize the signature segment",
		Apply:       transform.JWTSignatureBypassWith, ReadsInput: true,
	})
}

func (r *Registry) registerGraphQLTransformations() {
	fam := FamilyGraphQL

	r.register(&Transformation{
		Name: "graphql-obfuscate", Aliases: []string{"gql"}, Family: fam,
		Description: "Mutate query whitespace and letter case",
		Apply:       transform.GraphQLObfuscateWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "graphql-variable", Aliases: []string{"gql-var"}, Family: fam,
		Description: "Splice a variable definition into the operation",
		Apply:       transform.GraphQLVariableInjectionWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "graphql-introspection", Aliases: []string{"gql-intro"}, Family: fam,
		Description: "Respell or inject introspection probes",
		Apply:       transform.GraphQLIntrospectionBypassWith, ReadsInput: true,
	})
}

func (r *Registry) registerWebTransformations() {
	fam := FamilyWeb

	r.register(&Transformation{
		Name: "http-header", Aliases: []string{"hhv"}, Family: fam,
		Description: "Swap header values for equivalent spellings",
		Apply:       transform.HTTPHeaderVariationWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "api-endpoint", Aliases: []string{"api"}, Family: fam,
		Description: "Apply a path-equivalence mutation to an endpoint",
		Apply:       transform.APIEndpointVariationWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "session-token", Aliases: []string{"sess"}, Family: fam,
		Description: "Mutate token case, padding or encoding",
		Apply:       transform.SessionTokenVariationWith, ReadsInput: true,
	})
}

func (r *Registry) registerHTMLTransformations() {
	fam := FamilyHTML

	r.register(&Transformation{
		Name: "html-input-attr", Aliases: []string{"html-attr"}, Family: fam,
		Description: "Mutate attribute quoting, spacing and case",
		Apply:       transform.HTMLInputAttributeVariationWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "html-form-field", Aliases: []string{"html-field"}, Family: fam,
		Description: "Mutate a field name with separator and array tricks",
		Apply:       transform.HTMLFormFieldObfuscateWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "html-input-type", Aliases: []string{"html-type"}, Family: fam,
		Description: "Swap the input type for an interchangeable one",
		Apply:       transform.HTMLInputTypeVariationWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "html-form-action", Aliases: []string{"html-action"}, Family: fam,
		Description: "Mutate an action URL with equivalence tricks",
		Apply:       transform.HTMLFormActionVariationWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "html-input-value", Aliases: []string{"html-value"}, Family: fam,
		Description: "Encode a value attribute against naive sanitizers",
		Apply:       transform.HTMLInputValueObfuscateWith, ReadsInput: true,
	})
}

func (r *Registry) registerPhishingTransformations() {
	fam := FamilyPhishing

	r.register(&Transformation{
		Name: "domain-typosquat", Aliases: []string{"typo"}, Family: fam,
		Description: "Apply one single-edit typo to a domain label",
		Apply:       transform.DomainTyposquatWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "advanced-domain-spoof", Aliases: []string{"spoof"}, Family: fam,
		Description: "Compose spoofing techniques on a dotted domain",
		Apply:       transform.AdvancedDomainSpoofWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "email-obfuscation", Aliases: []string{"email-obf"}, Family: fam,
		Description: "Obfuscate the local part and domain of an address",
		Apply:       transform.EmailObfuscationWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "url-shortening", Aliases: []string{"short-url"}, Family: fam,
		Description: "Emit a plausible shortened URL (input ignored)",
		Apply:       transform.URLShorteningPatternWith,
	})
}

func (r *Registry) registerBotDetectTransformations() {
	fam := FamilyBotDetect

	r.register(&Transformation{
		Name: "random-user-agent", Aliases: []string{"rua", "ua"}, Family: fam,
		Description: "Emit a realistic User-Agent string (input ignored)",
		Apply:       transform.RandomUserAgentWith,
	})
	r.register(&Transformation{
		Name: "http2-header-order", Aliases: []string{"h2-order"}, Family: fam,
		Description: "Reorder header lines into a realistic client ordering",
		Apply:       transform.HTTP2HeaderOrderWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "tls-fingerprint", Aliases: []string{"tls-fp"}, Family: fam,
		Description: "Lightly mutate a TLS fingerprint string",
		Apply:       transform.TLSFingerprintVariationWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "accept-language", Aliases: []string{"alv"}, Family: fam,
		Description: "Swap or respace an Accept-Language value",
		Apply:       transform.AcceptLanguageVariationWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "cf-challenge-variation", Aliases: []string{"cfcv"}, Family: fam,
		Description: "Mutate clearance-cookie text",
		Apply:       transform.CloudflareChallengeVariationWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "cf-turnstile", Aliases: []string{"cft"}, Family: fam,
		Description: "Wrap the input in a turnstile token shape",
		Apply:       transform.CloudflareTurnstileVariationWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "cf-challenge-response", Aliases: []string{"cfr"}, Family: fam,
		Description: "Mutate a challenge response token",
		Apply:       transform.CloudflareChallengeResponseWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "tls-handshake", Aliases: []string{"tlsh"}, Family: fam,
		Description: "Re-join handshake segments with one separator",
		Apply:       transform.TLSHandshakePatternWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "canvas-fingerprint", Aliases: []string{"canvas"}, Family: fam,
		Description: "Introduce rare 0/O and 1/l confusions",
		Apply:       transform.CanvasFingerprintVariationWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "webgl-obfuscate", Aliases: []string{"webgl"}, Family: fam,
		Description: "Nudge digits and flip rare letter cases",
		Apply:       transform.WebGLFingerprintObfuscateWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "font-fingerprint", Aliases: []string{"fontfp"}, Family: fam,
		Description: "Normalize a font list to one separator style",
		Apply:       transform.FontFingerprintConsistencyWith, ReadsInput: true,
	})
}

func (r *Registry) registerShellTransformations() {
	fam := FamilyShell

	r.register(&Transformation{
		Name: "powershell-obfuscate", Aliases: []string{"psh"}, Family: fam,
		Description: "Quote dashes, double spaces and flip letter cases",
		Apply:       transform.PowershellObfuscateWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "bash-obfuscate", Aliases: []string{"bash"}, Family: fam,
		Description: "Substitute spaces with bash-equivalent separators",
		Apply:       transform.BashObfuscateWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "env-var-obfuscate", Aliases: []string{"env"}, Family: fam,
		Description: "Rewrite $ sigils into expansion variants",
		Apply:       transform.EnvVarObfuscateWith, ReadsInput: true,
	})
	r.register(&Transformation{
		Name: "file-path-obfuscate", Aliases: []string{"path-obf"}, Family: fam,
		Description: "Mutate separators, encode dots and flip cases",
		Apply:       transform.FilePathObfuscateWith, ReadsInput: true,
	})
}

// deterministic adapts a pure transformation to the registry signature.
// The source is accepted and ignored so callers never special-case.
func deterministic(fn func(string) string) ApplyFunc {
	return func(_ *rng.Rng, input string) string {
		return fn(input)
	}
}
