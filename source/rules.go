// Package source — file filtering rules.
// Decides which directory entries hold markup documents during discovery.
package source

import (
	"path/filepath"
	"strings"
)

// treeExtensions are the file extensions read as markup documents.
var treeExtensions = map[string]bool{
	".yaml": true, ".yml": true, ".json": true,
}

// IsTreeFile reports whether name has a document extension.
func IsTreeFile(name string) bool {
	return treeExtensions[strings.ToLower(filepath.Ext(name))]
}

// IsHidden reports whether the base name of path starts with a dot or an
// underscore. Such entries are skipped along with everything below them.
func IsHidden(path string) bool {
	base := filepath.Base(path)
	if base == "." || base == ".." {
		return false
	}
	return strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_")
}
