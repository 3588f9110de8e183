package cmd

// Command is one parsed invocation. The set of implementations is closed:
// each variant carries only the operands its operation needs.
type Command interface {
	Name() string
	command()
}

type (
	Stem         struct{ Path string }
	Filename     struct{ Path string }
	Extension    struct{ Path string }
	Parent       struct{ Path string }
	IsAbsolute   struct{ Path string }
	IsRelative   struct{ Path string }
	IsDir        struct{ Path string }
	IsFile       struct{ Path string }
	IsSymlink    struct{ Path string }
	Exists       struct{ Path string }
	Canonicalize struct{ Path string }
	ResolveLink  struct{ Path string }

	// Component selects one component; negative indices count from the end.
	Component struct {
		Path  string
		Index int64
	}

	Join struct{ Paths []string }

	WithSuffix struct {
		Path   string
		Suffix string
	}

	WithFilename struct {
		Path     string
		Filename string
	}

	// Help shows usage for Topic, or for every subcommand when Topic is empty.
	Help struct{ Topic string }
)

func (Stem) Name() string         { return "stem" }
func (Filename) Name() string     { return "filename" }
func (Extension) Name() string    { return "extension" }
func (Parent) Name() string       { return "parent" }
func (IsAbsolute) Name() string   { return "is-absolute" }
func (IsRelative) Name() string   { return "is-relative" }
func (IsDir) Name() string        { return "is-dir" }
func (IsFile) Name() string       { return "is-file" }
func (IsSymlink) Name() string    { return "is-symlink" }
func (Exists) Name() string       { return "exists" }
func (Canonicalize) Name() string { return "canonicalize" }
func (ResolveLink) Name() string  { return "resolve-link" }
func (Component) Name() string    { return "component" }
func (Join) Name() string         { return "join" }
func (WithSuffix) Name() string   { return "with-suffix" }
func (WithFilename) Name() string { return "with-filename" }
func (Help) Name() string         { return "help" }

func (Stem) command()         {}
func (Filename) command()     {}
func (Extension) command()    {}
func (Parent) command()       {}
func (IsAbsolute) command()   {}
func (IsRelative) command()   {}
func (IsDir) command()        {}
func (IsFile) command()       {}
func (IsSymlink) command()    {}
func (Exists) command()       {}
func (Canonicalize) command() {}
func (ResolveLink) command()  {}
func (Component) command()    {}
func (Join) command()         {}
func (WithSuffix) command()   {}
func (WithFilename) command() {}
func (Help) command()         {}
