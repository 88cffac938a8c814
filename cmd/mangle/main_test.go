package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDeterministicMode(t *testing.T) {
	out, err := runCLI(t, "base64", "hello")
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=\n", out)
}

func TestSingleArgumentUsesDefaultMode(t *testing.T) {
	out, err := runCLI(t, "--seed", "7", "hello world")
	require.NoError(t, err)
	assert.Equal(t, "hello world", strings.ToLower(strings.TrimSuffix(out, "\n")))
}

func TestSingleArgumentGeneratorMode(t *testing.T) {
	for _, name := range []string{"random-user-agent", "rua", "ua"} {
		out, err := runCLI(t, "--seed", "3", name)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "Mozilla/"), "%s should emit a user agent, got %q", name, out)
	}

	out, err := runCLI(t, "--seed", "3", "url-shortening")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "https://"), "got %q", out)
}

func TestSeedReproduces(t *testing.T) {
	first, err := runCLI(t, "--seed", "42", "leetspeak", "password")
	require.NoError(t, err)
	second, err := runCLI(t, "--seed", "42", "leetspeak", "password")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestJSONOutput(t *testing.T) {
	out, err := runCLI(t, "--json", "rot13", "hello")
	require.NoError(t, err)
	var decoded cliOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "rot13", decoded.Mode)
	assert.Equal(t, "hello", decoded.Input)
	assert.Equal(t, "uryyb", decoded.Output)
}

func TestUnknownModeFails(t *testing.T) {
	_, err := runCLI(t, "definitely-not-a-mode", "input")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "definitely-not-a-mode")
}

func TestListModes(t *testing.T) {
	out, err := runCLI(t, "--list-modes")
	require.NoError(t, err)
	assert.Contains(t, out, "rot13")
	assert.Contains(t, out, "jwt-alg-confusion")
	assert.Contains(t, out, "transformations")
}

func TestSelectorMode(t *testing.T) {
	out, err := runCLI(t, "--seed", "1", "ssti-fw", "erb", "7*7")
	require.NoError(t, err)
	assert.Contains(t, out, "7*7")

	_, err = runCLI(t, "ssti-fw", "erb")
	require.Error(t, err, "selector modes need both a selector and an input")
}

func TestMultiWordInputJoins(t *testing.T) {
	out, err := runCLI(t, "rot13", "uryyb", "jbeyq")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out)
}
