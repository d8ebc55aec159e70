// Package language maps file paths to language identifiers. It is a small
// stand-in for a host editor's language manager: extension-based, no content
// sniffing.
package language

import (
	"path/filepath"
	"strings"
)

var byExtension = map[string]string{
	".md":       "markdown",
	".markdown": "markdown",
	".json":     "json",
	".yml":      "yaml",
	".yaml":     "yaml",
	".js":       "javascript",
	".mjs":      "javascript",
	".cjs":      "javascript",
	".ts":       "typescript",
	".css":      "css",
	".less":     "less",
	".scss":     "scss",
	".html":     "html",
	".htm":      "html",
	".py":       "python",
	".go":       "go",
	".sh":       "shell",
	".xml":      "xml",
	".txt":      "text",
}

// Detect returns the language id for path, or "" when the extension is
// unknown. Matching is case-insensitive.
func Detect(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	return byExtension[ext]
}

// Known reports whether the extension of path maps to a language id.
func Known(path string) bool {
	return Detect(path) != ""
}
