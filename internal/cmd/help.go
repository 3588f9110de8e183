package cmd

import (
	"fmt"
	"strings"
)

var commandHelp = map[string]string{
	"stem":          "stem PATH                       Get the filename excluding the extension",
	"filename":      "filename PATH                   Get the filename",
	"extension":     "extension PATH                  Get the extension of the filename",
	"parent":        "parent PATH                     Return the parent of the input",
	"component":     "component PATH N                Get the Nth component (negative counts from the end)",
	"join":          "join PATH...                    Join paths; an absolute path restarts the result",
	"with-suffix":   "with-suffix PATH SUFFIX         Get the path with a different suffix",
	"with-filename": "with-filename PATH NAME         Get the path with a different filename",
	"is-absolute":   "is-absolute PATH                Whether the path is an absolute path",
	"is-relative":   "is-relative PATH                Whether the path is a relative path",
	"exists":        "exists PATH                     Whether the path exists",
	"is-dir":        "is-dir PATH                     Whether the path is a directory",
	"is-file":       "is-file PATH                    Whether the path is a regular file",
	"is-symlink":    "is-symlink PATH                 Whether the path is a symbolic link",
	"canonicalize":  "canonicalize PATH               Absolute path with all symlinks resolved",
	"resolve-link":  "resolve-link PATH               Read the target of a symbolic link",
	"help":          "help [SUBCOMMAND]               Show this help",
}

var helpSections = []struct {
	title    string
	commands []string
}{
	{"Path commands:", []string{"stem", "filename", "extension", "parent", "component", "join", "with-suffix", "with-filename"}},
	{"Checks (exit status only):", []string{"is-absolute", "is-relative", "exists", "is-dir", "is-file", "is-symlink"}},
	{"Filesystem commands:", []string{"canonicalize", "resolve-link"}},
	{"Other:", []string{"help"}},
}

// Usage returns the one-line usage of a subcommand, or "" if unknown.
func Usage(name string) string {
	return commandHelp[normalizeName(name)]
}

// HelpText returns usage for topic, or the full overview when topic is empty.
func HelpText(topic string) (string, error) {
	if topic != "" {
		help, ok := commandHelp[topic]
		if !ok {
			return "", &UsageError{Msg: fmt.Sprintf("no help available for %q", topic)}
		}
		return help, nil
	}

	var b strings.Builder
	b.WriteString("path-cli: filesystem path utilities\n")
	for _, section := range helpSections {
		b.WriteString("\n")
		b.WriteString(section.title)
		b.WriteString("\n")
		for _, name := range section.commands {
			fmt.Fprintf(&b, "  %s\n", commandHelp[name])
		}
	}
	b.WriteString("\nExit status is 0 on success, 1 on failure and 2 on a usage error.")
	return b.String(), nil
}
