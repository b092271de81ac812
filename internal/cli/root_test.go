// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree and returns stdout, stderr and the exit code.
func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "realdual", cmd.Use)
	assert.Contains(t, cmd.Long, "f'(x)ε")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"eval", "sample", "tangent", "check", "catalog"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err, "command %s should exist", name)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	for flag, def := range map[string]string{
		"format":    "text",
		"locale":    "en",
		"precision": "-1",
		"var":       "x",
		"config":    "",
		"catalog":   "",
	} {
		f := cmd.PersistentFlags().Lookup(flag)
		require.NotNil(t, f, flag)
		assert.Equal(t, def, f.DefValue, flag)
	}
}

func TestCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	cases := map[string][]string{
		"eval":    {"at", "dual"},
		"sample":  {"from", "to", "samples", "skip-undefined"},
		"tangent": {"at", "half-length"},
		"check":   {"from", "to", "samples", "skip-undefined", "tolerance", "step"},
	}
	for name, flags := range cases {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		for _, f := range flags {
			assert.NotNil(t, sub.Flags().Lookup(f), "%s --%s", name, f)
		}
	}

	sample, _, _ := cmd.Find([]string{"sample"})
	assert.Equal(t, "n", sample.Flags().Lookup("samples").Shorthand)
}

func TestExecute_InvalidConfiguration(t *testing.T) {
	cases := [][]string{
		{"eval", "x", "--format", "xml"},
		{"eval", "x", "--locale", "???"},
		{"eval", "x", "--precision", "-3"},
		{"eval", "x", "--var", "pi"},
		{"eval", "x", "--config", "testdata/missing.yaml"},
		{"eval", "x", "--catalog", "testdata/missing.yaml"},
	}
	for _, args := range cases {
		_, stderr, code := run(t, args...)
		assert.Equal(t, ExitCommandError, code, "%v", args)
		assert.Contains(t, stderr, "realdual:", "%v", args)
	}
}

func TestExecute_UsageErrors(t *testing.T) {
	_, _, code := run(t, "eval")
	assert.Equal(t, ExitCommandError, code)

	_, _, code = run(t, "nope")
	assert.Equal(t, ExitCommandError, code)

	_, _, code = run(t, "eval", "x", "--at", "two")
	assert.Equal(t, ExitCommandError, code)
}

func TestExecute_Verbose(t *testing.T) {
	_, stderr, code := run(t, "eval", "x", "-v")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stderr, "configuration resolved")
	assert.Contains(t, stderr, "compiled expression")
}

func TestExecute_Environment(t *testing.T) {
	t.Setenv("REALDUAL_FORMAT", "json")
	stdout, _, code := run(t, "eval", "x", "--at", "1")
	require.Equal(t, ExitSuccess, code)
	assert.True(t, bytes.HasPrefix([]byte(stdout), []byte("{")), stdout)

	// flags beat the environment
	stdout, _, code = run(t, "eval", "x", "--at", "1", "--format", "text")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "derivative  1")
}

func TestExecute_ConfigFile(t *testing.T) {
	stdout, _, code := run(t, "eval", "x/3", "--at", "1", "--config", "testdata/config.yaml")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "value,0.33\n")
	assert.Contains(t, stdout, "derivative,0.33\n")
}

func TestExecute_Variable(t *testing.T) {
	stdout, _, code := run(t, "eval", "t^2", "--var", "t", "--at", "3")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "dual        9 + 6ε")
}
