package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manglekit/mangle/pkg/registry"
	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/transform"
)

func TestGetReturnsSameInstance(t *testing.T) {
	assert.Same(t, registry.Get(), registry.Get())
}

func TestResolveCanonicalAndAlias(t *testing.T) {
	reg := registry.Get()
	tests := []struct {
		lookup    string
		canonical string
	}{
		{"base64", "base64"},
		{"b64", "base64"},
		{"sql", "sql-comment"},
		{"sql-comment", "sql-comment"},
		{"leetspeak", "leetspeak"},
		{"l", "leetspeak"},
		{"rua", "random-user-agent"},
		{"ua", "random-user-agent"},
		{"ssti-fw", "ssti-framework"},
		{"psh", "powershell-obfuscate"},
	}
	for _, tt := range tests {
		tr, ok := reg.Resolve(tt.lookup)
		require.True(t, ok, "lookup %q", tt.lookup)
		assert.Equal(t, tt.canonical, tr.Name, "lookup %q", tt.lookup)
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	reg := registry.Get()
	a, ok := reg.Resolve("ROT13")
	require.True(t, ok)
	b, ok := reg.Resolve("rot13")
	require.True(t, ok)
	assert.Same(t, a, b)

	c, ok := reg.Resolve("  Base64 ")
	require.True(t, ok)
	assert.Equal(t, "base64", c.Name)
}

func TestResolveUnknown(t *testing.T) {
	_, ok := registry.Get().Resolve("definitely-not-a-mode")
	assert.False(t, ok)
}

func TestAliasAndCanonicalShareBehavior(t *testing.T) {
	reg := registry.Get()
	in := "SELECT id FROM users WHERE name = 'x'"
	viaAlias, err := reg.Apply(rng.NewSeeded(11), "sql", in, "")
	require.NoError(t, err)
	viaName, err := reg.Apply(rng.NewSeeded(11), "sql-comment", in, "")
	require.NoError(t, err)
	assert.Equal(t, viaName, viaAlias)
}

func TestApplyUnknownName(t *testing.T) {
	_, err := registry.Get().Apply(rng.NewSeeded(1), "nope", "input", "")
	assert.ErrorIs(t, err, registry.ErrUnknownTransformation)
}

func TestApplySelectorTransformation(t *testing.T) {
	reg := registry.Get()
	out, err := reg.Apply(rng.NewSeeded(2), "ssti-framework", "7*7", "jinja2")
	require.NoError(t, err)
	assert.Contains(t, out, "7*7")

	_, err = reg.Apply(rng.NewSeeded(2), "ssti-fw", "7*7", "no-such-engine")
	assert.ErrorIs(t, err, transform.ErrUnknownFramework)
}

func TestApplyMatchesDirectCall(t *testing.T) {
	reg := registry.Get()
	out, err := reg.Apply(rng.NewSeeded(5), "leetspeak", "password", "")
	require.NoError(t, err)
	assert.Equal(t, transform.LeetspeakWith(rng.NewSeeded(5), "password"), out)

	out, err = reg.Apply(nil, "base64", "hello", "")
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", out, "deterministic transformations never touch the source")
}

func TestNamesSortedAndComplete(t *testing.T) {
	reg := registry.Get()
	names := reg.Names()
	assert.Len(t, names, reg.Count())
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
	assert.Contains(t, names, "rot13")
	assert.Contains(t, names, "jwt-alg-confusion")
	assert.GreaterOrEqual(t, reg.Count(), 70)
}

func TestEveryTransformationIsRunnable(t *testing.T) {
	for _, tr := range registry.Get().All() {
		require.NotEmpty(t, tr.Name)
		require.NotEmpty(t, tr.Description, "%s needs a description", tr.Name)
		require.NotEmpty(t, tr.Family, "%s needs a family", tr.Name)
		if tr.ApplyArg != nil {
			assert.Nil(t, tr.Apply, "%s: selector transformations use ApplyArg only", tr.Name)
			assert.NotEmpty(t, tr.ArgName, "%s needs an ArgName", tr.Name)
			continue
		}
		require.NotNil(t, tr.Apply, "%s needs an Apply function", tr.Name)
		out := tr.Apply(rng.NewSeeded(1), "probe input")
		assert.NotNil(t, out)
	}
}

func TestByFamily(t *testing.T) {
	reg := registry.Get()
	jwt := reg.ByFamily(registry.FamilyJWT)
	assert.Len(t, jwt, 4)
	assert.Empty(t, reg.ByFamily(registry.Family("nonexistent")))

	total := 0
	for _, f := range reg.Families() {
		total += len(reg.ByFamily(f))
	}
	assert.Equal(t, reg.Count(), total)
}
