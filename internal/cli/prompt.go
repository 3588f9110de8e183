package cli

import "github.com/fatih/color"

const promptText = "path-cli> "

// BuildPrompt generates the prompt string, green when color is on.
func BuildPrompt(colored bool) string {
	if !colored {
		return promptText
	}
	// The caller has already settled --color and NO_COLOR.
	c := color.New(color.FgGreen)
	c.EnableColor()
	return c.Sprint("path-cli>") + " "
}
