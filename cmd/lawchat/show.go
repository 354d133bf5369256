package main

import (
	"fmt"

	"github.com/fwojciec/lawchat"
)

// maxRelated caps the related articles printed after an article.
const maxRelated = 4

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	a, err := deps.Index.FindArticleByNumber(c.Number)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawchat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Article %d: %s\n", a.Number, a.Title)
	if a.Part != "" {
		location := a.Part
		if a.Chapter != "" {
			location += " / " + a.Chapter
		}
		fmt.Fprintln(deps.Stdout, location)
	}
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, a.Body)

	related := deps.Index.Siblings(a)
	if len(related) == 0 {
		return nil
	}
	if len(related) > maxRelated {
		related = related[:maxRelated]
	}
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, "Related articles:")
	for _, r := range related {
		fmt.Fprintf(deps.Stdout, "  Article %d  %s\n", r.Number, r.Title)
	}
	return nil
}
