package models

import (
	"sort"
)

// FileBundle maps POSIX-style relative paths to file contents.
type FileBundle map[string]string

// Paths returns the bundle's paths in lexical order.
func (b FileBundle) Paths() []string {
	paths := make([]string, 0, len(b))
	for p := range b {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
