// Package source — document discovery for directory conversions.
package source

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// maxDirs bounds a discovery walk.
const maxDirs = 10000

// DiscoverAll returns the paths of all documents below dir in lexical order.
// Hidden entries are skipped and symlinked directories are followed once.
func DiscoverAll(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("source: discover: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source: discover: %s is not a directory", dir)
	}

	queue := NewQueue()
	queue.Add(realPath(dir), dir)

	var files []string
	for queue.HasNext() {
		if queue.Visited() > maxDirs {
			return nil, fmt.Errorf("source: discover: more than %d directories below %s", maxDirs, dir)
		}
		current := queue.Next()

		entries, err := os.ReadDir(current)
		if err != nil {
			return nil, fmt.Errorf("source: discover: %w", err)
		}
		for _, e := range entries {
			path := filepath.Join(current, e.Name())
			if IsHidden(path) {
				continue
			}

			isDir := e.IsDir()
			if e.Type()&os.ModeSymlink != 0 {
				fi, err := os.Stat(path)
				if err != nil {
					slog.Warn("skipping broken link", "component", "source", "path", path, "error", err)
					continue
				}
				isDir = fi.IsDir()
			}

			switch {
			case isDir:
				queue.Add(realPath(path), path)
			case IsTreeFile(e.Name()):
				files = append(files, path)
			}
		}
	}

	sort.Strings(files)
	slog.Debug("documents discovered", "component", "source", "dir", dir, "count", len(files), "dirs", queue.Visited())
	return files, nil
}

func realPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		if abs, err := filepath.Abs(resolved); err == nil {
			return abs
		}
		return resolved
	}
	return path
}
