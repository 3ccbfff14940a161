package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/loggrep/internal/filter"
)

func TestRootCmdProperties(t *testing.T) {
	assert.Equal(t, "loggrep [flags] <namespace>", rootCmd.Use)
	assert.Equal(t, "Inspect container logs across a Kubernetes namespace", rootCmd.Short)
	assert.True(t, strings.Contains(rootCmd.Long, "namespace"))
	assert.True(t, strings.Contains(rootCmd.Long, "last"))
	assert.True(t, rootCmd.SilenceUsage)
}

func TestSetVersion(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() {
		rootCmd.Version = originalVersion
	}()

	testVersion := "v1.2.3-test"
	SetVersion(testVersion)

	assert.Equal(t, testVersion, rootCmd.Version)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	subcommands := rootCmd.Commands()

	var foundCommands []string
	for _, cmd := range subcommands {
		foundCommands = append(foundCommands, cmd.Use)
	}

	assert.Contains(t, foundCommands, "version")
	assert.Contains(t, foundCommands, "self-update")
}

func TestRootCmdFlagSurface(t *testing.T) {
	flags := rootCmd.Flags()

	// -h is the shorthand of --http, matching the original tool.
	httpFlag := flags.ShorthandLookup("h")
	require.NotNil(t, httpFlag)
	assert.Equal(t, "http", httpFlag.Name)

	// Help keeps its long form only.
	helpFlag := flags.Lookup("help")
	require.NotNil(t, helpFlag)
	assert.Empty(t, helpFlag.Shorthand)

	for shorthand, name := range map[string]string{
		"a": "all",
		"e": "error",
		"w": "warn",
		"s": "search",
		"f": "file",
	} {
		flag := flags.ShorthandLookup(shorthand)
		require.NotNil(t, flag, "shorthand -%s", shorthand)
		assert.Equal(t, name, flag.Name)
	}

	assert.NotNil(t, flags.Lookup("rg-args"))
	assert.NotNil(t, flags.Lookup("kubeconfig"))
	assert.NotNil(t, flags.Lookup("context"))
	assert.NotNil(t, flags.Lookup("in-cluster"))
}

func TestRunRoot_ArgumentValidation(t *testing.T) {
	t.Run("no arguments shows help without error", func(t *testing.T) {
		var buf bytes.Buffer
		rootCmd.SetOut(&buf)
		defer rootCmd.SetOut(nil)

		err := runRoot(rootCmd, nil)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})

	t.Run("flags without a namespace are a usage error", func(t *testing.T) {
		require.NoError(t, rootCmd.Flags().Set("debug", "true"))
		defer func() {
			_ = rootCmd.Flags().Set("debug", "false")
		}()

		err := runRoot(rootCmd, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "namespace is required")
	})

	t.Run("extra positional arguments are rejected", func(t *testing.T) {
		err := runRoot(rootCmd, []string{"demo", "extra"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), `unknown argument "extra"`)
	})
}

func TestModeSelections(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		expected []filter.Selection
	}{
		{
			name: "no mode flags",
			argv: []string{"demo"},
		},
		{
			name:     "single short flag",
			argv:     []string{"-e", "demo"},
			expected: []filter.Selection{{Mode: filter.ModeError}},
		},
		{
			name:     "http via its shorthand",
			argv:     []string{"-h", "demo"},
			expected: []filter.Selection{{Mode: filter.ModeHTTP}},
		},
		{
			name: "order is preserved across flags",
			argv: []string{"--error", "--warn", "demo"},
			expected: []filter.Selection{
				{Mode: filter.ModeError},
				{Mode: filter.ModeWarn},
			},
		},
		{
			name:     "search takes the following token",
			argv:     []string{"-s", "timeout", "demo"},
			expected: []filter.Selection{{Mode: filter.ModeCustom, Custom: "timeout"}},
		},
		{
			name:     "search equals form",
			argv:     []string{"--search=timeout", "demo"},
			expected: []filter.Selection{{Mode: filter.ModeCustom, Custom: "timeout"}},
		},
		{
			name: "mode after search wins the shared slot",
			argv: []string{"-s", "timeout", "-a", "demo"},
			expected: []filter.Selection{
				{Mode: filter.ModeCustom, Custom: "timeout"},
				{Mode: filter.ModeAll},
			},
		},
		{
			name:     "double dash stops the scan",
			argv:     []string{"-e", "--", "-w"},
			expected: []filter.Selection{{Mode: filter.ModeError}},
		},
		{
			name: "grouped boolean shorthands",
			argv: []string{"-ea", "demo"},
			expected: []filter.Selection{
				{Mode: filter.ModeError},
				{Mode: filter.ModeAll},
			},
		},
		{
			name:     "search value attached to the shorthand",
			argv:     []string{"-stimeout", "demo"},
			expected: []filter.Selection{{Mode: filter.ModeCustom, Custom: "timeout"}},
		},
		{
			name:     "search shorthand equals form",
			argv:     []string{"-s=timeout", "demo"},
			expected: []filter.Selection{{Mode: filter.ModeCustom, Custom: "timeout"}},
		},
		{
			name:     "explicit boolean value selects the mode",
			argv:     []string{"--error=true", "demo"},
			expected: []filter.Selection{{Mode: filter.ModeError}},
		},
		{
			name: "boolean flag set to false selects nothing",
			argv: []string{"--error=false", "demo"},
		},
		{
			name:     "value of another flag is not mistaken for a mode",
			argv: []string{"--file", "-e", "demo"},
		},
		{
			name: "file shorthand consumes its value token",
			argv: []string{"-f", "-w", "demo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, modeSelections(tt.argv))
		})
	}
}

func TestModeSelections_LastFlagWinsEndToEnd(t *testing.T) {
	// --error --warn demo resolves to "warn", not "error".
	spec := filter.Resolve(modeSelections([]string{"--error", "--warn", "demo"}), "")
	assert.Equal(t, filter.PatternWarn, spec.Pattern)
}

func TestModeSelections_PflagSpellingsResolve(t *testing.T) {
	// Every spelling pflag accepts for a mode flag must reach the resolver;
	// otherwise a run that parsed fine would dump full logs unfiltered.
	tests := []struct {
		name    string
		argv    []string
		pattern string
	}{
		{
			name:    "attached search value",
			argv:    []string{"-stimeout", "demo"},
			pattern: "timeout",
		},
		{
			name:    "grouped shorthands, last one wins",
			argv:    []string{"-ea", "demo"},
			pattern: filter.PatternAll,
		},
		{
			name:    "long form with explicit value",
			argv:    []string{"--warn=true", "demo"},
			pattern: filter.PatternWarn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := filter.Resolve(modeSelections(tt.argv), "")
			assert.Equal(t, tt.pattern, spec.Pattern)
		})
	}
}
