package cli

import (
	"encoding/json"
	"os"
)

type DumpCmd struct {
	Out string `help:"Output file, - for stdout" default:"-"`
}

// Run writes the package root trie as a JSON snapshot, the nested
// token-to-subtree mapping the resolver queries against. Mostly useful to
// eyeball why a path resolved the way it did.
func (cmd *DumpCmd) Run(ctx *Context) error {
	r, _, err := loadResolver(ctx)
	if err != nil {
		return err
	}

	out := os.Stdout
	if cmd.Out != "-" {
		file, err := os.Create(cmd.Out)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r.Snapshot())
}
