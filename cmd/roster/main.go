package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/roster"
	"github.com/fwojciec/roster/chat"
	"github.com/fwojciec/roster/csv"
	"github.com/fwojciec/roster/edlib"
	"github.com/fwojciec/roster/gemini"
	"github.com/fwojciec/roster/goldmark"
	"github.com/fwojciec/roster/openai"
	rosterslog "github.com/fwojciec/roster/slog"
	"github.com/fwojciec/roster/sqlite"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// In-memory SQLite database holding the record table.
	DB *sqlite.DB

	// Getenv looks up API keys. Defaults to os.Getenv.
	Getenv func(string) string

	// Asker replaces the provider built from the environment when set.
	Asker roster.Asker
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("roster"),
		kong.Description("Answer questions about academic records, with a language model as fallback."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'roster --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m.DB = sqlite.NewDB(sqlite.MemoryDSN)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open record table: %w", err)
	}
	defer m.Close()

	deps.Records = rosterslog.NewLoggingRecordService(sqlite.NewRecordService(m.DB), deps.Logger)
	if err := m.loadRecords(ctx, cli.Data, deps); err != nil {
		return err
	}

	deps.Responder = &chat.Responder{
		Records: deps.Records,
		Scorer:  edlib.NewTokenSortScorer(),
	}

	if cmd == "serve" || cmd == "ask" || cmd == "chat" {
		asker, err := m.newAsker(ctx, cli, stderr)
		if err != nil {
			return err
		}
		deps.Responder.Asker = rosterslog.NewLoggingAsker(asker, deps.Logger)
		if cli.RateLimit > 0 {
			deps.Responder.Limiter = rate.NewLimiter(rate.Limit(cli.RateLimit), max(int(cli.RateLimit), 1))
		}
	}

	if cmd == "serve" {
		deps.Converter = goldmark.NewConverter()
	}

	return kongCtx.Run(deps)
}

// loadRecords fills the record table from the data file. A missing or
// malformed file, or a failed insert, leaves the table empty and answers
// come from the model.
func (m *Main) loadRecords(ctx context.Context, path string, deps *Dependencies) error {
	records, err := csv.Load(path)
	if err != nil {
		deps.Logger.Warn("record data unavailable", "path", path, "error", err)
		deps.DataUnavailable = true
		return nil
	}
	if len(records) == 0 {
		deps.Logger.Warn("record data file has no rows", "path", path)
		deps.DataUnavailable = true
		return nil
	}
	if err := deps.Records.CreateRecords(ctx, records); err != nil {
		deps.Logger.Warn("failed to fill record table", "path", path, "error", err)
		deps.DataUnavailable = true
	}
	return nil
}

// newAsker builds the configured model provider. It fails when the
// provider's API key is not set.
func (m *Main) newAsker(ctx context.Context, cli *CLI, stderr io.Writer) (roster.Asker, error) {
	if m.Asker != nil {
		return m.Asker, nil
	}

	switch cli.Provider {
	case "gemini":
		apiKey := m.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "Hint: Get an API key at https://aistudio.google.com/apikey")
			return nil, roster.Errorf(roster.EINVALID, "GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewAsker(client, cli.Model), nil

	default:
		apiKey := m.Getenv("XAI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "Hint: Get an API key at https://console.x.ai")
			return nil, roster.Errorf(roster.EINVALID, "XAI_API_KEY not set")
		}
		var opts []openai.Option
		if cli.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cli.BaseURL))
		}
		if cli.Model != "" {
			opts = append(opts, openai.WithModel(cli.Model))
		}
		return openai.NewAsker(apiKey, opts...), nil
	}
}
