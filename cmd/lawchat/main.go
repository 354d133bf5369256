package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/lawchat"
	"github.com/fwojciec/lawchat/chat"
	"github.com/fwojciec/lawchat/corpus"
	"github.com/fwojciec/lawchat/etree"
	"github.com/fwojciec/lawchat/gemini"
	"github.com/fwojciec/lawchat/goquery"
	"github.com/fwojciec/lawchat/htmltomarkdown"
	"github.com/fwojciec/lawchat/lexical"
	lcopenai "github.com/fwojciec/lawchat/openai"
	lcslog "github.com/fwojciec/lawchat/slog"
	"github.com/fwojciec/lawchat/sqlite"
	"github.com/fwojciec/lawchat/throttle"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// EnvFile is loaded into the environment before parsing. Empty skips it.
	EnvFile string

	// SQLite database used by the corpus store.
	DB *sqlite.DB

	// Answerer overrides the configured backend for end-to-end testing.
	Answerer lawchat.Answerer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:  defaultDBPath(),
		EnvFile: ".env",
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := loadEnv(m.EnvFile); err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lawchat"),
		kong.Description("Legal assistant for the Constitution of Nepal."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lawchat --help' to see available commands")
	}

	switch args[0] {
	case "help", "--help", "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Command()

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		return err
	}
	cfg.Apply(cli)
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger
	deps.Language = lawchat.Language(cli.Language)

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LAWCHAT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	store := sqlite.NewTreeStore(m.DB)
	deps.Store = store
	deps.Parsers = map[string]lawchat.TreeParser{
		".json": corpus.NewJSONParser(),
		".xml":  etree.NewParser(),
		".html": goquery.NewParser(htmltomarkdown.NewConverter()),
		".htm":  goquery.NewParser(htmltomarkdown.NewConverter()),
	}
	deps.Notifier = &textNotifier{w: stderr}

	tree, err := store.LoadTree(ctx)
	switch {
	case lawchat.ErrorCode(err) == lawchat.ENOTFOUND:
		tree = corpus.DefaultTree()
	case err != nil:
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	index, err := corpus.NewIndex(tree)
	if err != nil {
		return fmt.Errorf("failed to index corpus: %w", err)
	}
	logger.Debug("corpus loaded", "articles", index.Len(), "fingerprint", index.Fingerprint())

	deps.Tree = tree
	deps.Index = index
	deps.Searcher = lcslog.NewLoggingSearcher(index, logger)

	if cmd == "ask <question>" || cmd == "chat" {
		answerer, err := m.answerer(ctx, &cfg, stderr)
		if err != nil {
			return err
		}
		throttled := throttle.NewAnswerer(answerer, cfg.RateLimit)
		throttled.Logger = logger

		responder := chat.NewResponder(
			index,
			lcslog.NewLoggingRanker(lexical.NewRanker(), logger),
			lcslog.NewLoggingAnswerer(throttled, logger),
		)
		responder.Limit = cfg.CitationLimit
		responder.Timeout = cfg.Timeout
		deps.Responder = lcslog.NewLoggingResponder(responder, logger)
	}

	return kongCtx.Run(deps)
}

// answerer builds the configured answer backend.
func (m *Main) answerer(ctx context.Context, cfg *Config, stderr io.Writer) (lawchat.Answerer, error) {
	if m.Answerer != nil {
		return m.Answerer, nil
	}

	switch cfg.Backend {
	case BackendOpenAI:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set. Add it to .env or your shell.")
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		return lcopenai.NewAnswerer(lcopenai.NewClient(apiKey, cfg.BaseURL), cfg.DefaultModel()), nil

	default:
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		tokens, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create token counter: %w", err)
		}
		return gemini.NewAnswerer(client, cfg.DefaultModel(), tokens), nil
	}
}

// tokenizerModel is used for history token counting. The local tokenizer
// only knows a subset of models.
const tokenizerModel = "gemini-2.5-flash"

func defaultDBPath() string {
	if path := os.Getenv("LAWCHAT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "lawchat.db"
	}
	dir := filepath.Join(home, ".lawchat")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "lawchat.db")
}

// textNotifier prints notifications to a terminal.
type textNotifier struct {
	w io.Writer
}

func (n *textNotifier) Notify(note lawchat.Notification) {
	fmt.Fprintf(n.w, "%s: %s\n", note.Title, note.Description)
}
