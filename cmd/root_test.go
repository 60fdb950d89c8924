package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"equipctl/internal/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainConfig returns the default configuration with colors disabled so
// output can be compared verbatim
func plainConfig() config.EquipctlConfig {
	cfg := config.GetDefaultConfig()
	off := false
	cfg.GlobalSettings.Color = &off
	return cfg
}

// executeCommand runs a fresh root command with a mocked configuration
func executeCommand(t *testing.T, cfg config.EquipctlConfig, args ...string) (string, string, error) {
	t.Helper()

	originalLoadConfig := loadConfig
	t.Cleanup(func() { loadConfig = originalLoadConfig })
	loadConfig = func(string) (config.EquipctlConfig, error) { return cfg, nil }

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSetVersion(t *testing.T) {
	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if rootCmd.Version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, rootCmd.Version)
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "equipctl" {
		t.Errorf("Expected Use to be 'equipctl', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if rootCmd.Long == "" {
		t.Error("Expected Long description to be set")
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}

	// Set the same version template as in Execute()
	testCmd.SetVersionTemplate(`{{printf "equipctl version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)

	testCmd.SetArgs([]string{"--version"})
	err := testCmd.Execute()
	if err != nil {
		t.Fatalf("Error executing version command: %v", err)
	}

	expected := "equipctl version 1.0.0\n"
	if buf.String() != expected {
		t.Errorf("Expected version output %q, got %q", expected, buf.String())
	}
}

func TestSubcommands(t *testing.T) {
	expectedCommands := []string{"adapter", "observer", "factory", "singleton", "version"}
	foundCommands := make(map[string]bool)

	for _, cmd := range rootCmd.Commands() {
		foundCommands[cmd.Name()] = true
	}

	for _, expected := range expectedCommands {
		if !foundCommands[expected] {
			t.Errorf("Expected subcommand %s to be registered", expected)
		}
	}
}

func TestPersistentFlags(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"config", "debug", "no-color", "output"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "flag --%s should exist", name)
	}

	output := root.PersistentFlags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
	assert.Equal(t, "table", output.DefValue)
}

func TestRootCommandHelp(t *testing.T) {
	stdout, _, err := executeCommand(t, plainConfig(), "--help")
	require.NoError(t, err)

	assert.Contains(t, stdout, "equipctl")
	assert.Contains(t, stdout, "four classic object-oriented design patterns")
}

func TestVersionCommand(t *testing.T) {
	var stdout bytes.Buffer
	root := newRootCmd()
	root.Version = "9.9.9"
	root.SetOut(&stdout)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "equipctl version 9.9.9\n", stdout.String())
}

func TestSetup_ConfigError(t *testing.T) {
	originalLoadConfig := loadConfig
	defer func() { loadConfig = originalLoadConfig }()
	loadConfig = func(string) (config.EquipctlConfig, error) {
		return config.EquipctlConfig{}, errors.New("broken yaml")
	}

	var stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&stderr)
	root.SetArgs([]string{"adapter"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.Contains(t, err.Error(), "broken yaml")
}

func TestSetup_PassesConfigPath(t *testing.T) {
	originalLoadConfig := loadConfig
	defer func() { loadConfig = originalLoadConfig }()

	var gotPath string
	loadConfig = func(path string) (config.EquipctlConfig, error) {
		gotPath = path
		return plainConfig(), nil
	}

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", "/tmp/equipctl.yaml", "factory"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "/tmp/equipctl.yaml", gotPath)
}

func TestSetup_DebugLogging(t *testing.T) {
	_, stderr, err := executeCommand(t, plainConfig(), "--debug", "adapter")
	require.NoError(t, err)

	assert.True(t, strings.Contains(stderr, "level=DEBUG"), "debug entries should reach stderr, got %q", stderr)
}

func TestSetup_UnknownLogLevelWarns(t *testing.T) {
	cfg := plainConfig()
	cfg.GlobalSettings.LogLevel = "chatty"

	_, stderr, err := executeCommand(t, cfg, "adapter")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Unknown log level")
}
