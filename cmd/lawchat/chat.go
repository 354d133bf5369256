package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/lawchat"
	"github.com/fwojciec/lawchat/chat"
)

const chatHelp = `Commands: /lang en|ne  /voice  /send  /samples  /quit`

// Run executes the chat command. Lines read from stdin are submitted as
// questions until EOF or /quit.
func (c *ChatCmd) Run(deps *Dependencies) error {
	session := chat.NewSession(deps.Responder, deps.Language)
	if deps.Logger != nil {
		session.Logger = deps.Logger
	}
	defer session.Close()

	dictation := chat.NewDictation(deps.Voice, deps.Notifier, session)

	session.Greet()
	printLast(deps, session)
	fmt.Fprintln(deps.Stdout, chatHelp)

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line == "/quit" || line == "/exit":
			return nil
		case line == "/samples":
			for _, q := range chat.SampleQuestions() {
				fmt.Fprintf(deps.Stdout, "  %s\n", q)
			}
			continue
		case strings.HasPrefix(line, "/lang"):
			lang := lawchat.Language(strings.TrimSpace(strings.TrimPrefix(line, "/lang")))
			if !lang.Valid() {
				fmt.Fprintf(deps.Stderr, "error: unknown language %q\n", lang)
				continue
			}
			session.SetLanguage(lang)
			continue
		case line == "/voice":
			dictation.Listen(deps.Ctx)
			if input := session.State().Input(); input != "" {
				fmt.Fprintf(deps.Stdout, "Heard: %s\n(type /send to ask)\n", input)
			}
			continue
		case line == "/send":
			line = session.State().Input()
		}

		p := session.Submit(deps.Ctx, line)
		if p == nil {
			continue
		}
		if err := p.Wait(deps.Ctx); err != nil {
			return err
		}
		printLast(deps, session)
	}

	return scanner.Err()
}

func printLast(deps *Dependencies, session *chat.Session) {
	msgs := session.Messages()
	if len(msgs) == 0 {
		return
	}
	m := msgs[len(msgs)-1]
	printAnswer(deps.Stdout, m.Content, m.Citations)
}
