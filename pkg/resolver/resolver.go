package resolver

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/khalid-nowaf/pathtrie/pkg/trie"
)

// ErrNoPackageRoot means no stored package root is an ancestor of the query
// path. Fatal to that single resolution, never to the resolver.
var ErrNoPackageRoot = errors.New("no enclosing package root")

// Resolver answers nearest enclosing package queries over a set of package
// roots. Roots are held in a path segment trie, so every query is a single
// ancestor walk proportional to the query depth, independent of how many
// packages the workspace has.
type Resolver struct {
	roots  *trie.Map[string, *Package]
	logger *log.Logger
}

type Option func(*Resolver) *Resolver

// WithLogger routes resolver warnings to the given logger.
func WithLogger(logger *log.Logger) Option {
	return func(r *Resolver) *Resolver {
		r.logger = logger
		return r
	}
}

// New builds a resolver over the given packages, typically the output of
// DiscoverPackages. Two packages with the same root collapse, last one wins.
func New(packages []*Package, opts ...Option) *Resolver {
	r := &Resolver{
		roots:  trie.NewMap[string, *Package](),
		logger: log.Default(),
	}
	for _, opt := range opts {
		r = opt(r)
	}
	for _, pkg := range packages {
		r.roots.Put(SplitPath(pkg.Root), pkg)
	}
	return r
}

// Resolution is the outcome of locating a path inside a package.
type Resolution struct {
	Package   *Package
	Root      []string // segments of the matched package root
	Remainder []string // query segments below the root
}

// Resolve finds the package whose root encloses the given workspace relative
// path. With nested roots (a package inside a package) more than one ancestor
// can match; the outermost one wins and a warning is logged.
func (r *Resolver) Resolve(p string) (*Resolution, error) {
	segments := SplitPath(p)

	matches := r.roots.Prefixes(segments)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoPackageRoot, p)
	}
	if len(matches) > 1 {
		r.logger.Warn("path is enclosed by nested package roots, using the outermost",
			"path", p,
			"root", strings.Join(matches[0], "/"),
			"matches", len(matches))
	}

	root := matches[0]
	pkg, _ := r.roots.Get(root)
	return &Resolution{
		Package:   pkg,
		Root:      root,
		Remainder: segments[len(root):],
	}, nil
}

// RewriteImport resolves a relative import specifier against the directory of
// the importing file, then rewrites it against the nearest enclosing package
// root as "<package name>/<path below the root>". importerDir is workspace
// relative.
func (r *Resolver) RewriteImport(importerDir, spec string) (string, error) {
	target := path.Join(importerDir, spec)

	resolution, err := r.Resolve(target)
	if err != nil {
		return "", fmt.Errorf("import %q in %s: %w", spec, importerDir, err)
	}
	if len(resolution.Remainder) == 0 {
		return resolution.Package.Name, nil
	}
	return resolution.Package.Name + "/" + strings.Join(resolution.Remainder, "/"), nil
}

// Len returns the number of stored package roots.
func (r *Resolver) Len() int {
	return r.roots.Len()
}

// Snapshot exposes the root trie as a serializable view for diagnostics.
func (r *Resolver) Snapshot() *trie.Snapshot[string, *Package] {
	return r.roots.Snapshot()
}

// SplitPath splits a slash separated path into segments. "", "." and "/" all
// mean the workspace root and split to no segments.
func SplitPath(p string) []string {
	p = strings.Trim(path.Clean(p), "/")
	if p == "" || p == "." {
		return nil
	}
	return strings.Split(p, "/")
}
