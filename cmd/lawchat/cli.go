package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/lawchat"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Language  lawchat.Language
	Tree      *lawchat.DocumentTree
	Index     lawchat.ArticleIndex
	Searcher  lawchat.Searcher
	Responder lawchat.Responder
	Store     lawchat.TreeStore
	Parsers   map[string]lawchat.TreeParser
	Voice     lawchat.VoiceInput
	Notifier  lawchat.Notifier
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB       string `name:"db" env:"LAWCHAT_DB" help:"SQLite database path"`
	Config   string `short:"C" type:"path" help:"YAML configuration file"`
	Backend  string `help:"Answer backend (gemini or openai)"`
	Model    string `help:"Model name for the answer backend"`
	Language string `short:"l" name:"lang" enum:"en,ne" default:"en" help:"Answer language (en or ne)"`
	Verbose  bool   `short:"v" help:"Enable debug logging"`

	Ask    AskCmd    `cmd:"" help:"Ask a question about the constitution"`
	Chat   ChatCmd   `cmd:"" help:"Start an interactive conversation"`
	Search SearchCmd `cmd:"" help:"Search articles by title, number or text"`
	Show   ShowCmd   `cmd:"" help:"Show an article and related articles"`
	Tree   TreeCmd   `cmd:"" help:"Print the parts, chapters and articles"`
	Import ImportCmd `cmd:"" help:"Import a corpus from JSON, XML or HTML files"`
	Export ExportCmd `cmd:"" help:"Write every article as a Markdown file"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Term string `arg:"" optional:"" help:"Search term; omit to list every article"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Number int `arg:"" help:"Article number"`
}

// TreeCmd is the "tree" subcommand.
type TreeCmd struct{}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Corpus files (.json, .xml, .html)"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" help:"Output directory"`
}
