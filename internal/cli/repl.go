package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rowantrollope/path-cli/internal/cmd"
	"github.com/rowantrollope/path-cli/internal/config"
	"github.com/rowantrollope/path-cli/internal/output"
)

// REPL is the interactive read-eval-print loop.
type REPL struct {
	Router    *cmd.Router
	Config    *config.Config
	Formatter *output.Formatter
}

// NewREPL creates a new REPL instance.
func NewREPL(router *cmd.Router, cfg *config.Config, formatter *output.Formatter) *REPL {
	return &REPL{
		Router:    router,
		Config:    cfg,
		Formatter: formatter,
	}
}

// Run starts the interactive REPL loop.
func (r *REPL) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          BuildPrompt(r.Formatter.Color),
		HistoryFile:     r.Config.HistoryFile,
		HistoryLimit:    10000,
		AutoComplete:    NewCompleter(r.Router),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		if lower == "exit" || lower == "quit" {
			return nil
		}

		r.Eval(ctx, line)
	}
}

// Eval runs one interactive line. Unlike one-shot mode, predicates print
// true or false and failures print their reason.
func (r *REPL) Eval(ctx context.Context, line string) {
	tokens, err := cmd.Tokenize(line)
	if err != nil {
		r.Formatter.Errorf("%s\n", err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	c, err := r.Router.Parse(tokens)
	if err != nil {
		r.reportUsage(err, tokens[0])
		return
	}

	res, err := r.Router.Run(ctx, c)
	var pe *cmd.PredicateError
	switch {
	case errors.As(err, &pe):
		r.Formatter.Println(r.Formatter.FormatPredicate(false))
	case err != nil:
		if cmd.ExitCode(err) == 2 {
			r.reportUsage(err, tokens[0])
			return
		}
		r.Formatter.Errorf("%s\n", err)
	case res.HasValue:
		r.Formatter.PrintValue(res.Value)
	default:
		r.Formatter.Println(r.Formatter.FormatPredicate(true))
	}
}

func (r *REPL) reportUsage(err error, name string) {
	r.Formatter.Errorf("%s\n", err)
	if usage := cmd.Usage(name); usage != "" {
		r.Formatter.Errorf("usage: %s\n", usage)
	}
}
