package config

import (
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestDefaultConfigEnv(t *testing.T) {
	t.Setenv("PATH_CLI_HISTORY", "/tmp/hist")
	t.Setenv("PATH_CLI_VERBOSE", "true")

	cfg := DefaultConfig()
	if cfg.HistoryFile != "/tmp/hist" {
		t.Errorf("HistoryFile = %q, want /tmp/hist", cfg.HistoryFile)
	}
	if !cfg.Verbose {
		t.Error("expected Verbose from PATH_CLI_VERBOSE")
	}
}

func TestDefaultConfigHistoryInHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("PATH_CLI_HISTORY", "")
	t.Setenv("PATH_CLI_VERBOSE", "not-a-bool")

	cfg := DefaultConfig()
	if want := filepath.Join(home, ".path-cli_history"); cfg.HistoryFile != want {
		t.Errorf("HistoryFile = %q, want %q", cfg.HistoryFile, want)
	}
	if cfg.Verbose {
		t.Error("expected unparsable PATH_CLI_VERBOSE to be ignored")
	}
}

func TestRegisterFlags(t *testing.T) {
	t.Setenv("PATH_CLI_VERBOSE", "")
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("path-cli", flag.ContinueOnError)
	fs.SetInterspersed(false)
	cfg.RegisterFlags(fs)

	if err := fs.Parse([]string{"-v", "--no-color", "--history", "h", "stem", "-x"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg.Args = fs.Args()

	if !cfg.Verbose || !cfg.NoColor || cfg.HistoryFile != "h" {
		t.Errorf("unexpected config after parse: %+v", cfg)
	}
	if len(cfg.Args) != 2 || cfg.Args[0] != "stem" || cfg.Args[1] != "-x" {
		t.Errorf("Args = %q, want [stem -x]", cfg.Args)
	}
}

func TestShouldColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	if (&Config{NoColor: true, Color: true}).ShouldColor() {
		t.Error("--no-color must win over --color")
	}
	if !(&Config{Color: true}).ShouldColor() {
		t.Error("--color must force colors")
	}

	t.Setenv("NO_COLOR", "1")
	if (&Config{}).ShouldColor() {
		t.Error("NO_COLOR must disable colors")
	}
}

func TestShouldPrompt(t *testing.T) {
	if !(&Config{Interactive: true, Args: []string{"stem", "x"}}).ShouldPrompt() {
		t.Error("--interactive must force the shell")
	}
	if (&Config{Args: []string{"stem", "x"}}).ShouldPrompt() {
		t.Error("a subcommand must not start the shell")
	}
}
