package main

import (
	"fmt"
)

// Run executes the tree command.
func (c *TreeCmd) Run(deps *Dependencies) error {
	for _, p := range deps.Tree.Parts {
		fmt.Fprintln(deps.Stdout, p.Title)
		for _, ch := range p.Chapters {
			indent := "  "
			if ch.Title != "" {
				fmt.Fprintf(deps.Stdout, "  %s\n", ch.Title)
				indent = "    "
			}
			for _, a := range ch.Articles {
				fmt.Fprintf(deps.Stdout, "%sArticle %d  %s\n", indent, a.Number, a.Title)
			}
		}
	}
	return nil
}
