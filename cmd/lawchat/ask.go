package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/lawchat"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Responder.Resolve(deps.Ctx, lawchat.Query{
		Text:     c.Question,
		Language: deps.Language,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawchat.ErrorMessage(err))
		return err
	}

	printAnswer(deps.Stdout, answer.Text, answer.Citations)
	return nil
}

// printAnswer writes an answer followed by its sources.
func printAnswer(w io.Writer, text string, citations []lawchat.Citation) {
	fmt.Fprintln(w, text)
	if len(citations) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sources:")
	fmt.Fprintln(w, lawchat.FormatCitations(citations))
}
