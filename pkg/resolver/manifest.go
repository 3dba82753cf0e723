package resolver

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

const (
	// WorkspaceManifestName sits at the workspace root and lists where
	// packages live.
	WorkspaceManifestName = "workspace.yaml"
	// PackageManifestName marks a directory as a package root.
	PackageManifestName = "package.yaml"
)

// WorkspaceManifest lists package locations as glob patterns relative to the
// workspace root, e.g. "pkgs/*" or "tools/**".
type WorkspaceManifest struct {
	Packages []string `yaml:"packages"`
}

// PackageManifest describes a single package root.
type PackageManifest struct {
	Name string `yaml:"name"`
}

// Package is a discovered package: its manifest name plus its directory as a
// slash separated path relative to the workspace root.
type Package struct {
	Name string `json:"name" yaml:"name"`
	Root string `json:"root" yaml:"root"`
}

// DiscoverPackages reads the workspace manifest at root and expands its glob
// patterns, keeping every matched directory that carries a package manifest.
// Directories without a manifest are silently skipped, a directory matched by
// several patterns is reported once.
func DiscoverPackages(root string) ([]*Package, error) {
	raw, err := os.ReadFile(filepath.Join(root, WorkspaceManifestName))
	if err != nil {
		return nil, fmt.Errorf("reading workspace manifest: %w", err)
	}
	var manifest WorkspaceManifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("parsing workspace manifest: %w", err)
	}

	fsys := os.DirFS(root)
	var packages []*Package
	seen := map[string]bool{}
	for _, pattern := range manifest.Packages {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("package pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			dir := path.Clean(match)
			if seen[dir] {
				continue
			}
			seen[dir] = true

			pkg, err := readPackage(root, dir)
			if err != nil {
				return nil, err
			}
			if pkg != nil {
				packages = append(packages, pkg)
			}
		}
	}
	return packages, nil
}

// readPackage loads the package manifest under dir, or nil if dir is not a
// package root. A manifest without a name falls back to the directory name.
func readPackage(root, dir string) (*Package, error) {
	info, err := os.Stat(filepath.Join(root, filepath.FromSlash(dir)))
	if err != nil || !info.IsDir() {
		return nil, nil // pattern matched a plain file
	}

	raw, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(dir), PackageManifestName))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading package manifest in %s: %w", dir, err)
	}

	var manifest PackageManifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("parsing package manifest in %s: %w", dir, err)
	}

	name := manifest.Name
	if name == "" {
		name = path.Base(dir)
	}
	return &Package{Name: name, Root: dir}, nil
}
