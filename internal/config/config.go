package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"
)

// Config holds all runtime configuration.
type Config struct {
	Verbose     bool
	NoColor     bool
	Color       bool
	Interactive bool

	HistoryFile string

	// Remaining args after flag parsing (subcommand and its operands)
	Args []string
}

// DefaultConfig returns a Config with defaults taken from the environment.
func DefaultConfig() *Config {
	histFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		histFile = filepath.Join(home, ".path-cli_history")
	}
	if env := os.Getenv("PATH_CLI_HISTORY"); env != "" {
		histFile = env
	}

	verbose := false
	if env := os.Getenv("PATH_CLI_VERBOSE"); env != "" {
		if v, err := strconv.ParseBool(env); err == nil {
			verbose = v
		}
	}

	return &Config{
		Verbose:     verbose,
		HistoryFile: histFile,
	}
}

// RegisterFlags registers CLI flags on the given flag set.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "Explain failures on stderr")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable colors")
	fs.BoolVar(&c.Color, "color", false, "Force colors")
	fs.BoolVarP(&c.Interactive, "interactive", "i", false, "Start the interactive shell")
	fs.StringVar(&c.HistoryFile, "history", c.HistoryFile, "Interactive history file")
}

// ShouldColor returns true if stderr output should be colored.
func (c *Config) ShouldColor() bool {
	if c.NoColor {
		return false
	}
	if c.Color {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(os.Stderr)
}

// ShouldPrompt returns true if the interactive shell should run instead of
// a single subcommand.
func (c *Config) ShouldPrompt() bool {
	if c.Interactive {
		return true
	}
	return len(c.Args) == 0 && isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
