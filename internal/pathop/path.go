// Package pathop implements the path primitives behind each path-cli
// subcommand on top of path/filepath and os.
//
// Paths are plain strings and are never modified in place. Component
// enumeration follows the Unix convention: a leading root separator is its
// own component, and on Windows the volume name is one more component before
// it.
package pathop

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	ErrNoFilename   = errors.New("path has no file name")
	ErrNoExtension  = errors.New("file name has no extension")
	ErrNoParent     = errors.New("path has no parent")
	ErrNoComponents = errors.New("path has no components")
	ErrNoPaths      = errors.New("no paths to join")
)

const separator = string(filepath.Separator)

// parsed is a path broken into its volume, root marker and named segments.
type parsed struct {
	volume string
	rooted bool
	names  []string
}

func isSeparator(r rune) bool {
	return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
}

func parse(p string) parsed {
	vol := filepath.VolumeName(p)
	rest := p[len(vol):]
	out := parsed{
		volume: vol,
		rooted: rest != "" && os.IsPathSeparator(rest[0]),
	}
	for i, seg := range strings.FieldsFunc(rest, isSeparator) {
		// "." survives only as the first segment of a relative path.
		if seg == "." && (i > 0 || out.rooted || vol != "") {
			continue
		}
		out.names = append(out.names, seg)
	}
	return out
}

func (p parsed) String() string {
	s := p.volume
	if p.rooted {
		s += separator
	}
	return s + strings.Join(p.names, separator)
}

// Components returns the ordered segments of p. The root, when present, is
// returned as the separator string.
func Components(p string) []string {
	pp := parse(p)
	var comps []string
	if pp.volume != "" {
		comps = append(comps, pp.volume)
	}
	if pp.rooted {
		comps = append(comps, separator)
	}
	return append(comps, pp.names...)
}

// NormalizeIndex maps a signed index onto [0, length) using Euclidean
// modulo, so -1 is the last element and out-of-range indices wrap.
func NormalizeIndex(n, length int64) (int64, error) {
	if length <= 0 {
		return 0, ErrNoComponents
	}
	return ((n % length) + length) % length, nil
}

// Component returns the component of p at the normalized index n.
func Component(p string, n int64) (string, error) {
	comps := Components(p)
	i, err := NormalizeIndex(n, int64(len(comps)))
	if err != nil {
		return "", err
	}
	return comps[i], nil
}

// Filename returns the final component when it is a regular name.
func Filename(p string) (string, error) {
	pp := parse(p)
	if len(pp.names) == 0 {
		return "", ErrNoFilename
	}
	last := pp.names[len(pp.names)-1]
	if last == "." || last == ".." {
		return "", ErrNoFilename
	}
	return last, nil
}

// splitName splits a file name at its last dot. A leading dot does not
// start an extension, and ".." has none.
func splitName(name string) (stem, ext string, ok bool) {
	if name == ".." {
		return name, "", false
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, "", false
	}
	return name[:i], name[i+1:], true
}

// Stem returns the file name without its final extension.
func Stem(p string) (string, error) {
	name, err := Filename(p)
	if err != nil {
		return "", err
	}
	stem, _, _ := splitName(name)
	return stem, nil
}

// Extension returns the text after the last dot of the file name. A name
// ending in a dot has an empty extension.
func Extension(p string) (string, error) {
	name, err := Filename(p)
	if err != nil {
		return "", err
	}
	_, ext, ok := splitName(name)
	if !ok {
		return "", ErrNoExtension
	}
	return ext, nil
}

// Parent returns p without its last component. The root and the empty path
// have no parent; a single relative component has the empty path as parent.
func Parent(p string) (string, error) {
	pp := parse(p)
	if len(pp.names) == 0 {
		return "", ErrNoParent
	}
	pp.names = pp.names[:len(pp.names)-1]
	return pp.String(), nil
}

func joinTwo(base, p string) string {
	if base == "" || filepath.IsAbs(p) {
		return p
	}
	if os.IsPathSeparator(base[len(base)-1]) {
		return base + p
	}
	return base + separator + p
}

// Join folds paths left to right. An absolute element discards everything
// before it. Nothing is cleaned, so a single path comes back unchanged.
func Join(paths ...string) (string, error) {
	if len(paths) == 0 {
		return "", ErrNoPaths
	}
	out := paths[0]
	for _, p := range paths[1:] {
		out = joinTwo(out, p)
	}
	return out, nil
}

// WithFilename replaces the final component of p with name, or appends name
// when p has no file name.
func WithFilename(p, name string) string {
	base := p
	if _, err := Filename(p); err == nil {
		base, _ = Parent(p)
	}
	return joinTwo(base, name)
}

// WithSuffix replaces the extension of p's file name with suffix. An empty
// suffix removes the extension. A path without a file name is returned as
// is, and a name that already carries the suffix keeps it.
func WithSuffix(p, suffix string) string {
	name, err := Filename(p)
	if err != nil {
		return p
	}
	if suffix != "" && len(name) > len(suffix)+1 && strings.HasSuffix(name, "."+suffix) {
		return WithFilename(p, name)
	}
	stem, _, _ := splitName(name)
	if suffix != "" {
		stem += "." + suffix
	}
	return WithFilename(p, stem)
}

// IsAbsolute reports whether p is absolute on the host platform.
func IsAbsolute(p string) bool {
	return filepath.IsAbs(p)
}

// IsRelative is the negation of IsAbsolute.
func IsRelative(p string) bool {
	return !filepath.IsAbs(p)
}
