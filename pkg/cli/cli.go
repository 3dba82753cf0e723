package cli

import (
	"github.com/charmbracelet/log"

	"github.com/khalid-nowaf/pathtrie/pkg/resolver"
)

// CLI is the kong command tree, parsed by cmd/pathtrie.
var CLI struct {
	Workspace string `help:"Workspace root directory" default:"." type:"existingdir"`
	Verbose   bool   `help:"Enable debug logging" short:"v"`

	Resolve  ResolveCmd  `cmd:"" help:"Resolve paths or rewrite import specifiers against the nearest package root"`
	Packages PackagesCmd `cmd:"" help:"List discovered package roots"`
	Dump     DumpCmd     `cmd:"" help:"Write the package root trie as a JSON snapshot"`
}

// Context carries what every command needs to run.
type Context struct {
	Root   string
	Logger *log.Logger
}

// NewContext builds the command context from the parsed global flags.
func NewContext() *Context {
	logger := log.Default()
	if CLI.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return &Context{Root: CLI.Workspace, Logger: logger}
}

// loadResolver discovers the workspace packages and builds a resolver over
// them. Shared by all commands.
func loadResolver(ctx *Context) (*resolver.Resolver, []*resolver.Package, error) {
	packages, err := resolver.DiscoverPackages(ctx.Root)
	if err != nil {
		return nil, nil, err
	}
	ctx.Logger.Debug("discovered packages", "workspace", ctx.Root, "count", len(packages))
	return resolver.New(packages, resolver.WithLogger(ctx.Logger)), packages, nil
}
