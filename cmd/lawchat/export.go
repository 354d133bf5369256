package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/lawchat"
	"github.com/fwojciec/lawchat/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	dir, err := filepath.Abs(c.Dir)
	if err != nil {
		return err
	}

	n, err := fs.NewExporter(filepath.Dir(dir), filepath.Base(dir)).Export(deps.Ctx, deps.Tree)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawchat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d articles to %s\n", n, dir)
	return nil
}
