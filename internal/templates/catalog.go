package templates

import (
	"fmt"
	"path"
	"strings"
)

// Entry is a single generated file.
type Entry struct {
	Path    string // Slash-separated, relative to the project root (e.g., "src/wm.cpp")
	Content string // Written verbatim
}

// Catalog is an ordered list of entries. Order is the write order.
type Catalog []Entry

// entries is the declaration-ordered table behind Default.
var entries = [...]Entry{
	{Path: "CMakeLists.txt", Content: cmakeLists},
	{Path: "src/main.cpp", Content: mainSource},
	{Path: "src/wm.cpp", Content: wmSource},
	{Path: "include/wm.h", Content: wmHeader},
}

// Default returns the project template. Each call returns a fresh slice.
func Default() Catalog {
	c := make(Catalog, len(entries))
	copy(c, entries[:])
	return c
}

// Paths returns the relative paths of all entries in order.
func (c Catalog) Paths() []string {
	paths := make([]string, 0, len(c))
	for _, e := range c {
		paths = append(paths, e.Path)
	}
	return paths
}

// Lookup returns the entry for a relative path.
func (c Catalog) Lookup(p string) (Entry, bool) {
	for _, e := range c {
		if e.Path == p {
			return e, true
		}
	}
	return Entry{}, false
}

// InvalidEntryError reports a catalog entry whose path cannot be safely
// joined onto a destination root.
type InvalidEntryError struct {
	Path   string
	Reason string
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("invalid template path %q: %s", e.Path, e.Reason)
}

// Validate checks that every path is relative, stays inside the root, and is
// unique within the catalog.
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c))
	for _, e := range c {
		if err := validatePath(e.Path); err != nil {
			return err
		}
		if seen[e.Path] {
			return &InvalidEntryError{Path: e.Path, Reason: "duplicate path"}
		}
		seen[e.Path] = true
	}
	return nil
}

func validatePath(p string) error {
	switch {
	case p == "":
		return &InvalidEntryError{Path: p, Reason: "empty path"}
	case strings.Contains(p, `\`):
		return &InvalidEntryError{Path: p, Reason: "backslash in path; use forward slashes"}
	case path.IsAbs(p) || hasVolume(p):
		return &InvalidEntryError{Path: p, Reason: "absolute path"}
	}

	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "":
			return &InvalidEntryError{Path: p, Reason: "empty path segment"}
		case ".", "..":
			return &InvalidEntryError{Path: p, Reason: fmt.Sprintf("%q segment", seg)}
		}
	}
	return nil
}

// hasVolume reports a Windows drive prefix such as "C:". Checked on every
// platform so a catalog is valid or invalid regardless of the host.
func hasVolume(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
