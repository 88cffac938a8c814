// Package builder provides a chainable handle for composing
// transformations into a pipeline. Each step folds over the current value;
// Build returns the accumulated result.
package builder

import (
	"github.com/manglekit/mangle/pkg/registry"
	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/transform"
)

// Builder accumulates transformation steps over an input string. The zero
// value is not usable; construct with New. A Builder owns its value and
// randomness source, so chains on separate builders never interfere.
type Builder struct {
	value string
	r     *rng.Rng
	err   error
}

// New returns a builder over input with an entropy-seeded source.
func New(input string) *Builder {
	return &Builder{value: input, r: rng.New()}
}

// NewSeeded returns a builder whose randomized steps are reproducible for
// the same seed and chain.
func NewSeeded(input string, seed uint64) *Builder {
	return &Builder{value: input, r: rng.NewSeeded(seed)}
}

// WithSeed replaces the randomness source, making all subsequent steps
// reproducible. Steps already applied keep their results.
func (b *Builder) WithSeed(seed uint64) *Builder {
	b.r = rng.NewSeeded(seed)
	return b
}

// Apply runs any registered transformation by name or alias. The first
// resolution or selector failure sticks: later steps are skipped and the
// error surfaces from Err. Use the named methods when the set of steps is
// known at compile time.
func (b *Builder) Apply(name string) *Builder {
	return b.ApplyArg(name, "")
}

// ApplyArg is Apply for selector-taking transformations such as
// ssti-framework.
func (b *Builder) ApplyArg(name, arg string) *Builder {
	if b.err != nil {
		return b
	}
	out, err := registry.Get().Apply(b.r, name, b.value, arg)
	if err != nil {
		b.err = err
		return b
	}
	b.value = out
	return b
}

func (b *Builder) step(fn func(*rng.Rng, string) string) *Builder {
	if b.err == nil {
		b.value = fn(b.r, b.value)
	}
	return b
}

// Leetspeak applies the leetspeak substitution.
func (b *Builder) Leetspeak() *Builder {
	return b.step(transform.LeetspeakWith)
}

// Base64 encodes the current value with the standard alphabet.
func (b *Builder) Base64() *Builder {
	if b.err == nil {
		b.value = transform.Base64Encode(b.value)
	}
	return b
}

// URLEncode percent-encodes the current value.
func (b *Builder) URLEncode() *Builder {
	if b.err == nil {
		b.value = transform.URLEncode(b.value)
	}
	return b
}

// HexEncode hex-encodes the current value.
func (b *Builder) HexEncode() *Builder {
	if b.err == nil {
		b.value = transform.HexEncode(b.value)
	}
	return b
}

// Rot13 rotates ASCII letters 13 positions.
func (b *Builder) Rot13() *Builder {
	if b.err == nil {
		b.value = transform.Rot13(b.value)
	}
	return b
}

// Reverse reverses the current value rune-wise.
func (b *Builder) Reverse() *Builder {
	if b.err == nil {
		b.value = transform.ReverseString(b.value)
	}
	return b
}

// RandomizeCapitalization randomizes the case of each letter.
func (b *Builder) RandomizeCapitalization() *Builder {
	return b.step(transform.RandomizeCapitalizationWith)
}

// CaseSwap randomly inverts the case of about half the letters.
func (b *Builder) CaseSwap() *Builder {
	return b.step(transform.CaseSwapWith)
}

// Homoglyphs substitutes cross-script confusables.
func (b *Builder) Homoglyphs() *Builder {
	return b.step(transform.HomoglyphSubstitutionWith)
}

// Zalgo stacks combining marks onto each letter.
func (b *Builder) Zalgo() *Builder {
	return b.step(transform.ZalgoTextWith)
}

// AdvancedDomainSpoof composes spoofing techniques on a dotted domain.
func (b *Builder) AdvancedDomainSpoof() *Builder {
	return b.step(transform.AdvancedDomainSpoofWith)
}

// EmailObfuscation obfuscates an email address.
func (b *Builder) EmailObfuscation() *Builder {
	return b.step(transform.EmailObfuscationWith)
}

// PowershellObfuscate mutates a PowerShell command.
func (b *Builder) PowershellObfuscate() *Builder {
	return b.step(transform.PowershellObfuscateWith)
}

// BashObfuscate substitutes bash-equivalent separators.
func (b *Builder) BashObfuscate() *Builder {
	return b.step(transform.BashObfuscateWith)
}

// CloudflareChallenge mutates clearance-cookie text.
func (b *Builder) CloudflareChallenge() *Builder {
	return b.step(transform.CloudflareChallengeVariationWith)
}

// CloudflareTurnstile wraps the value in a turnstile token shape.
func (b *Builder) CloudflareTurnstile() *Builder {
	return b.step(transform.CloudflareTurnstileVariationWith)
}

// CloudflareChallengeResponse mutates a challenge response token.
func (b *Builder) CloudflareChallengeResponse() *Builder {
	return b.step(transform.CloudflareChallengeResponseWith)
}

// GraphQLObfuscate mutates query whitespace and letter case.
func (b *Builder) GraphQLObfuscate() *Builder {
	return b.step(transform.GraphQLObfuscateWith)
}

// Build returns the accumulated value. An errored chain returns the value
// as of the last successful step; check Err when using Apply with
// runtime-chosen names.
func (b *Builder) Build() string {
	return b.value
}

// Err reports the first failure recorded by Apply or ApplyArg.
func (b *Builder) Err() error {
	return b.err
}

// Result returns the accumulated value and the first recorded error.
func (b *Builder) Result() (string, error) {
	return b.value, b.err
}
