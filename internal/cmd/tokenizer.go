package cmd

import (
	"fmt"
	"strings"
)

// Tokenize splits an interactive line into arguments, honoring single
// quotes, double quotes and backslash escapes outside single quotes.
// Quoted empty strings are kept, so "" is a valid empty path.
func Tokenize(line string) ([]string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	var tokens []string
	var current strings.Builder
	inToken := false
	inSingle := false
	inDouble := false
	escaped := false

	for i := 0; i < len(line); i++ {
		ch := line[i]

		if escaped {
			current.WriteByte(ch)
			escaped = false
			continue
		}

		if ch == '\\' && !inSingle {
			escaped = true
			inToken = true
			continue
		}

		if ch == '\'' && !inDouble {
			inSingle = !inSingle
			inToken = true
			continue
		}

		if ch == '"' && !inSingle {
			inDouble = !inDouble
			inToken = true
			continue
		}

		if inSingle || inDouble {
			current.WriteByte(ch)
			continue
		}

		if ch == ' ' || ch == '\t' {
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
			continue
		}

		current.WriteByte(ch)
		inToken = true
	}

	if inSingle || inDouble {
		return nil, fmt.Errorf("syntax error: unterminated quote")
	}
	if escaped {
		return nil, fmt.Errorf("syntax error: trailing backslash")
	}

	if inToken {
		tokens = append(tokens, current.String())
	}

	return tokens, nil
}
