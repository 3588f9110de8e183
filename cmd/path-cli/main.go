package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rowantrollope/path-cli/internal/cli"
	"github.com/rowantrollope/path-cli/internal/cmd"
	"github.com/rowantrollope/path-cli/internal/config"
	"github.com/rowantrollope/path-cli/internal/output"
	flag "github.com/spf13/pflag"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.DefaultConfig()

	// Custom flag set to avoid os.Exit on parse error
	flags := flag.NewFlagSet("path-cli", flag.ContinueOnError)
	flags.SetInterspersed(false) // Stop parsing at the subcommand
	cfg.RegisterFlags(flags)
	showVersion := flags.Bool("version", false, "Show version and exit")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: path-cli [flags] <subcommand> [operands]\n\nFlags:\n")
		flags.PrintDefaults()
		if text, err := cmd.HelpText(""); err == nil {
			fmt.Fprintf(os.Stderr, "\n%s\n", text)
		}
	}

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 2
	}
	cfg.Args = flags.Args()

	if *showVersion {
		fmt.Printf("path-cli %s\n", version)
		return 0
	}

	if !cfg.ShouldColor() {
		color.NoColor = true
	}

	formatter := output.NewFormatter(cfg.ShouldColor(), cfg.Verbose)
	router := cmd.NewRouter(formatter)
	ctx := context.Background()

	if cfg.ShouldPrompt() {
		repl := cli.NewREPL(router, cfg, formatter)
		if err := repl.Run(ctx); err != nil {
			formatter.Errorf("Error: %s\n", err)
			return 1
		}
		return 0
	}

	err := router.Execute(ctx, cfg.Args)
	code := cmd.ExitCode(err)
	switch code {
	case 0:
	case 2:
		formatter.Errorf("Error: %s\n", err)
		if len(cfg.Args) > 0 {
			if usage := cmd.Usage(cfg.Args[0]); usage != "" {
				formatter.Errorf("Usage: path-cli %s\n", usage)
			}
		}
	default:
		formatter.Diagnosef("%s\n", err)
	}
	return code
}
