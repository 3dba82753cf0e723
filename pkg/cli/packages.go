package cli

import "fmt"

type PackagesCmd struct{}

// Run lists every discovered package root, one per line.
func (cmd *PackagesCmd) Run(ctx *Context) error {
	_, packages, err := loadResolver(ctx)
	if err != nil {
		return err
	}

	for _, pkg := range packages {
		fmt.Printf("%s\t%s\n", pkg.Name, pkg.Root)
	}
	return nil
}
