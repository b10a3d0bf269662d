// Package workspace inspects directories for existing project content and
// decides where a clone should be placed without clobbering work in
// progress.
package workspace

import "os"

// Default marker names. A directory containing any of these is treated as
// an existing project, so clones go into a fresh subfolder instead.
var (
	defaultMarkerFiles = []string{
		"package.json",
		"package-lock.json",
		"yarn.lock",
		"pnpm-lock.yaml",
		"go.mod",
		"go.sum",
		"Cargo.toml",
		"Cargo.lock",
		"pyproject.toml",
		"requirements.txt",
		"setup.py",
		"Gemfile",
		"Gemfile.lock",
		"pom.xml",
		"build.gradle",
		"composer.json",
		"tsconfig.json",
		"Makefile",
		"CMakeLists.txt",
		"README",
		"README.md",
		"LICENSE",
		"LICENSE.md",
		".gitignore",
		".env",
		"Dockerfile",
		"docker-compose.yml",
	}

	defaultMarkerDirs = []string{
		".git",
		"src",
		"lib",
		"app",
		"pkg",
		"cmd",
		"test",
		"tests",
		"node_modules",
		"vendor",
		"dist",
		"build",
		"target",
		".vscode",
		".idea",
	}
)

// DetectionResult reports whether a directory looks like an existing
// project. It is computed fresh per call and never cached; directory
// contents can change between calls.
type DetectionResult struct {
	HasMarkers bool
	Markers    []string
}

// Inspector detects project markers in a directory's immediate entries.
type Inspector struct {
	MarkerFiles []string
	MarkerDirs  []string
}

// NewInspector creates an Inspector with the default marker lists.
func NewInspector() *Inspector {
	return &Inspector{
		MarkerFiles: append([]string(nil), defaultMarkerFiles...),
		MarkerDirs:  append([]string(nil), defaultMarkerDirs...),
	}
}

// Inspect lists the immediate entries of dir and collects every marker
// file present as a file and marker directory present as a directory.
// On any I/O failure the result defaults to HasMarkers=true with no
// markers: the conservative, conflict-avoiding answer.
func (i *Inspector) Inspect(dir string) DetectionResult {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return DetectionResult{HasMarkers: true}
	}

	files := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() {
			dirs[entry.Name()] = true
		} else {
			files[entry.Name()] = true
		}
	}

	var markers []string
	for _, name := range i.MarkerFiles {
		if files[name] {
			markers = append(markers, name)
		}
	}
	for _, name := range i.MarkerDirs {
		if dirs[name] {
			markers = append(markers, name)
		}
	}

	return DetectionResult{HasMarkers: len(markers) > 0, Markers: markers}
}
