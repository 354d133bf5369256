package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/lawchat"
	"golang.org/x/sync/errgroup"
)

// Run executes the import command. Files are parsed concurrently and merged
// in argument order; the result replaces the stored corpus.
func (c *ImportCmd) Run(deps *Dependencies) error {
	if len(c.Files) == 0 {
		return lawchat.Errorf(lawchat.EINVALID, "at least one file required")
	}

	trees := make([]*lawchat.DocumentTree, len(c.Files))
	g, ctx := errgroup.WithContext(deps.Ctx)
	for i, path := range c.Files {
		parser, ok := deps.Parsers[strings.ToLower(filepath.Ext(path))]
		if !ok {
			err := lawchat.Errorf(lawchat.EUNSUPPORTED, "unsupported corpus format %q", filepath.Ext(path))
			fmt.Fprintf(deps.Stderr, "error: %s\n", lawchat.ErrorMessage(err))
			return err
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			tree, err := parser.ParseTree(f)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			trees[i] = tree
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawchat.ErrorMessage(err))
		return err
	}

	merged := &lawchat.DocumentTree{}
	for _, t := range trees {
		merged.Merge(t)
	}
	if err := merged.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawchat.ErrorMessage(err))
		return err
	}

	if err := deps.Store.SaveTree(deps.Ctx, merged); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawchat.ErrorMessage(err))
		return err
	}

	count := 0
	for _, p := range merged.Parts {
		for _, ch := range p.Chapters {
			count += len(ch.Articles)
		}
	}
	fmt.Fprintf(deps.Stdout, "Imported %d articles from %d files.\n", count, len(c.Files))
	return nil
}
