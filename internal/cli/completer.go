package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rowantrollope/path-cli/internal/cmd"
)

var replCommands = []string{"exit", "quit"}

// NewCompleter creates a tab completer for the REPL.
func NewCompleter(router *cmd.Router) *Completer {
	return &Completer{
		router:  router,
		readDir: os.ReadDir,
	}
}

// Completer provides tab completion for the REPL: subcommand names first,
// then paths on the host filesystem.
type Completer struct {
	router  *cmd.Router
	readDir func(string) ([]os.DirEntry, error)
}

// Do implements readline.AutoCompleter.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	lineStr := string(line[:pos])
	parts := strings.Fields(lineStr)

	// Complete command name
	if len(parts) == 0 || (len(parts) == 1 && !strings.HasSuffix(lineStr, " ")) {
		prefix := ""
		if len(parts) == 1 {
			prefix = parts[0]
		}
		return c.completeCommand(prefix), len([]rune(prefix))
	}

	partial := ""
	if !strings.HasSuffix(lineStr, " ") {
		partial = parts[len(parts)-1]
	}

	// Skip flag-like args and operands of unknown commands
	if strings.HasPrefix(partial, "-") || !c.router.IsBuiltin(parts[0]) {
		return nil, 0
	}

	return c.completePath(partial), len([]rune(partial))
}

func (c *Completer) completeCommand(prefix string) [][]rune {
	var candidates []string
	lower := strings.ToLower(prefix)
	for _, name := range append(c.router.CommandNames(), replCommands...) {
		if strings.HasPrefix(name, lower) {
			candidates = append(candidates, name)
		}
	}
	sort.Strings(candidates)

	result := make([][]rune, len(candidates))
	for i, name := range candidates {
		result[i] = []rune(name[len(prefix):] + " ")
	}
	return result
}

func (c *Completer) completePath(partial string) [][]rune {
	dir := "."
	prefix := partial
	if i := strings.LastIndexFunc(partial, func(r rune) bool {
		return r < 0x80 && os.IsPathSeparator(uint8(r))
	}); i >= 0 {
		dir = partial[:i+1]
		prefix = partial[i+1:]
	}

	entries, err := c.readDir(dir)
	if err != nil {
		return nil
	}

	var candidates [][]rune
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		// Hidden entries only when asked for.
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}
		suffix := name[len(prefix):]
		if e.IsDir() {
			suffix += string(filepath.Separator)
		} else {
			suffix += " "
		}
		candidates = append(candidates, []rune(suffix))
	}
	return candidates
}

// Ensure Completer satisfies the readline.AutoCompleter interface.
var _ readline.AutoCompleter = (*Completer)(nil)
