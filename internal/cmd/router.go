package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rowantrollope/path-cli/internal/output"
	"github.com/rowantrollope/path-cli/internal/pathop"
)

// Result is the outcome of a successful command. Predicates succeed
// without a value.
type Result struct {
	Value    string
	HasValue bool
}

// PredicateError reports a boolean check that evaluated to false.
type PredicateError struct {
	Op   string
	Path string
}

func (e *PredicateError) Error() string {
	return fmt.Sprintf("%s: %s: false", e.Op, e.Path)
}

// UsageError reports a malformed invocation: unknown subcommand, wrong
// operand count or an operand of the wrong type.
type UsageError struct {
	Command string
	Msg     string
}

func (e *UsageError) Error() string {
	if e.Command == "" {
		return e.Msg
	}
	return e.Command + ": " + e.Msg
}

// ExitCode maps an Execute error onto the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue *UsageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

// parser turns the operands of one subcommand into a Command.
type parser struct {
	min, max int // max < 0 means unbounded
	build    func(ops []string) (Command, error)
}

func unary(build func(path string) Command) parser {
	return parser{min: 1, max: 1, build: func(ops []string) (Command, error) {
		return build(ops[0]), nil
	}}
}

// Router parses invocations and dispatches them to path operations.
type Router struct {
	Formatter *output.Formatter
	parsers   map[string]parser
}

// NewRouter creates a router with every subcommand registered.
func NewRouter(formatter *output.Formatter) *Router {
	r := &Router{
		Formatter: formatter,
		parsers:   make(map[string]parser),
	}
	r.registerParsers()
	return r
}

func (r *Router) registerParsers() {
	r.parsers["stem"] = unary(func(p string) Command { return Stem{Path: p} })
	r.parsers["filename"] = unary(func(p string) Command { return Filename{Path: p} })
	r.parsers["extension"] = unary(func(p string) Command { return Extension{Path: p} })
	r.parsers["parent"] = unary(func(p string) Command { return Parent{Path: p} })
	r.parsers["is-absolute"] = unary(func(p string) Command { return IsAbsolute{Path: p} })
	r.parsers["is-relative"] = unary(func(p string) Command { return IsRelative{Path: p} })
	r.parsers["is-dir"] = unary(func(p string) Command { return IsDir{Path: p} })
	r.parsers["is-file"] = unary(func(p string) Command { return IsFile{Path: p} })
	r.parsers["is-symlink"] = unary(func(p string) Command { return IsSymlink{Path: p} })
	r.parsers["exists"] = unary(func(p string) Command { return Exists{Path: p} })
	r.parsers["canonicalize"] = unary(func(p string) Command { return Canonicalize{Path: p} })
	r.parsers["resolve-link"] = unary(func(p string) Command { return ResolveLink{Path: p} })
	r.parsers["component"] = parser{min: 2, max: 2, build: parseComponent}
	r.parsers["join"] = parser{min: 0, max: -1, build: func(ops []string) (Command, error) {
		return Join{Paths: append([]string(nil), ops...)}, nil
	}}
	r.parsers["with-suffix"] = parser{min: 2, max: 2, build: func(ops []string) (Command, error) {
		return WithSuffix{Path: ops[0], Suffix: ops[1]}, nil
	}}
	r.parsers["with-filename"] = parser{min: 2, max: 2, build: func(ops []string) (Command, error) {
		return WithFilename{Path: ops[0], Filename: ops[1]}, nil
	}}
	r.parsers["help"] = parser{min: 0, max: 1, build: func(ops []string) (Command, error) {
		if len(ops) == 0 {
			return Help{}, nil
		}
		return Help{Topic: normalizeName(ops[0])}, nil
	}}
}

func parseComponent(ops []string) (Command, error) {
	n, err := strconv.ParseInt(ops[1], 10, 64)
	if err != nil {
		return nil, &UsageError{Command: "component", Msg: fmt.Sprintf("invalid index %q", ops[1])}
	}
	return Component{Path: ops[0], Index: n}, nil
}

// normalizeName accepts both is-absolute and is_absolute spellings.
func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "-")
}

// splitOperands separates operands from a help request. Anything after
// "--" is an operand; otherwise only -h and --help are treated as flags, so
// negative indices and paths starting with "-" pass through.
func splitOperands(args []string) (ops []string, help bool) {
	for i, a := range args {
		switch a {
		case "--":
			return append(ops, args[i+1:]...), false
		case "-h", "--help":
			return nil, true
		}
		ops = append(ops, a)
	}
	return ops, false
}

// Parse converts raw arguments, subcommand first, into a Command.
func (r *Router) Parse(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &UsageError{Msg: "missing subcommand"}
	}

	name := normalizeName(args[0])
	p, ok := r.parsers[name]
	if !ok {
		return nil, &UsageError{Msg: fmt.Sprintf("unknown subcommand %q", args[0])}
	}

	ops, help := splitOperands(args[1:])
	if help {
		return Help{Topic: name}, nil
	}
	if len(ops) < p.min || (p.max >= 0 && len(ops) > p.max) {
		return nil, &UsageError{Command: name, Msg: arityMessage(p, len(ops))}
	}
	return p.build(ops)
}

func arityMessage(p parser, got int) string {
	switch {
	case p.min == p.max:
		return fmt.Sprintf("expected %d operand(s), got %d", p.min, got)
	case p.max < 0:
		return fmt.Sprintf("expected at least %d operand(s), got %d", p.min, got)
	default:
		return fmt.Sprintf("expected %d to %d operands, got %d", p.min, p.max, got)
	}
}

// Run executes c against the host path library. Errors other than
// predicate failures are prefixed with the subcommand name.
func (r *Router) Run(ctx context.Context, c Command) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	res, err := run(c)
	if err != nil {
		var pe *PredicateError
		if !errors.As(err, &pe) {
			err = fmt.Errorf("%s: %w", c.Name(), err)
		}
		return Result{}, err
	}
	return res, nil
}

func value(v string, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{Value: v, HasValue: true}, nil
}

func check(c Command, path string, ok bool) (Result, error) {
	if !ok {
		return Result{}, &PredicateError{Op: c.Name(), Path: path}
	}
	return Result{}, nil
}

func run(c Command) (Result, error) {
	switch c := c.(type) {
	case Stem:
		return value(pathop.Stem(c.Path))
	case Filename:
		return value(pathop.Filename(c.Path))
	case Extension:
		return value(pathop.Extension(c.Path))
	case Parent:
		return value(pathop.Parent(c.Path))
	case IsAbsolute:
		return check(c, c.Path, pathop.IsAbsolute(c.Path))
	case IsRelative:
		return check(c, c.Path, pathop.IsRelative(c.Path))
	case IsDir:
		return check(c, c.Path, pathop.IsDir(c.Path))
	case IsFile:
		return check(c, c.Path, pathop.IsFile(c.Path))
	case IsSymlink:
		return check(c, c.Path, pathop.IsSymlink(c.Path))
	case Exists:
		return check(c, c.Path, pathop.Exists(c.Path))
	case Canonicalize:
		return value(pathop.Canonicalize(c.Path))
	case ResolveLink:
		return value(pathop.ResolveLink(c.Path))
	case Component:
		return value(pathop.Component(c.Path, c.Index))
	case Join:
		return value(pathop.Join(c.Paths...))
	case WithSuffix:
		return value(pathop.WithSuffix(c.Path, c.Suffix), nil)
	case WithFilename:
		return value(pathop.WithFilename(c.Path, c.Filename), nil)
	case Help:
		return value(HelpText(c.Topic))
	default:
		return Result{}, fmt.Errorf("unsupported command %T", c)
	}
}

// Execute parses and runs one invocation, printing a value if it produces
// one. Nothing is written to stdout on failure.
func (r *Router) Execute(ctx context.Context, args []string) error {
	c, err := r.Parse(args)
	if err != nil {
		return err
	}
	res, err := r.Run(ctx, c)
	if err != nil {
		return err
	}
	if res.HasValue {
		r.Formatter.PrintValue(res.Value)
	}
	return nil
}

// IsBuiltin returns true if name is a registered subcommand.
func (r *Router) IsBuiltin(name string) bool {
	_, ok := r.parsers[normalizeName(name)]
	return ok
}

// CommandNames returns all registered subcommand names, sorted.
func (r *Router) CommandNames() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
