// Package output handles file naming and writing for rendered messages.
// A single conversion is named after the source file (welcome.yaml ->
// welcome.json). A directory conversion mirrors the source tree below the
// output directory.
package output

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data as <OutputDir>/<source base name><ext>.
func (w *Writer) Write(srcPath string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, stem(filepath.Base(srcPath))+ext)
	return path, w.write(path, data)
}

// WriteAll stores data at the path of srcPath relative to root, with the
// extension replaced. Example: root=docs, src=docs/menu/main.yaml ->
// <OutputDir>/menu/main.json
func (w *Writer) WriteAll(root, srcPath string, data []byte, ext string) (string, error) {
	rel, err := filepath.Rel(root, srcPath)
	if err != nil {
		return "", fmt.Errorf("relative path of %s: %w", srcPath, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside %s", srcPath, root)
	}

	path := filepath.Join(w.OutputDir, filepath.Dir(rel), stem(filepath.Base(rel))+ext)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", filepath.Dir(path), err)
	}
	return path, w.write(path, data)
}

func (w *Writer) write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	slog.Debug("output written", "component", "output", "path", path, "bytes", len(data))
	return nil
}

// stem drops the extension of name; dotfiles keep their full name.
func stem(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}
