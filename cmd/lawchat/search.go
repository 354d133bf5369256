package main

import (
	"fmt"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	articles := deps.Searcher.Search(c.Term)
	if len(articles) == 0 {
		fmt.Fprintf(deps.Stdout, "No articles match %q.\n", c.Term)
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "Article %d  %s\n", a.Number, a.Title)
	}
	return nil
}
