package cli

import (
	"fmt"
	"strings"
)

type ResolveCmd struct {
	Paths []string `arg:"" help:"Workspace relative paths, or import specifiers when --from is set"`
	From  string   `help:"Directory of the importing file, makes PATHS relative import specifiers"`
}

// Run resolves each path against the nearest enclosing package root.
func (cmd *ResolveCmd) Run(ctx *Context) error {
	r, _, err := loadResolver(ctx)
	if err != nil {
		return err
	}

	for _, p := range cmd.Paths {
		if cmd.From != "" {
			rewritten, err := r.RewriteImport(cmd.From, p)
			if err != nil {
				return err
			}
			fmt.Printf("%s -> %s\n", p, rewritten)
			continue
		}

		resolution, err := r.Resolve(p)
		if err != nil {
			return err
		}
		fmt.Printf("%s -> package %s (root %s)\n",
			p, resolution.Package.Name, strings.Join(resolution.Root, "/"))
	}
	return nil
}
