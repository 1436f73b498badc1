package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/llmtxt"
	"github.com/fwojciec/llmtxt/fs"
	"github.com/fwojciec/llmtxt/goquery"
	"github.com/fwojciec/llmtxt/pipeline"
	llmslog "github.com/fwojciec/llmtxt/slog"
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
	// Runner assembled for the parsed command. Exposed for end-to-end
	// testing.
	Runner *pipeline.Runner
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("llmtxt"),
		kong.Description("Generate an LLM-ready text corpus from a directory of HTML files."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'llmtxt --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Generate.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var discoverer llmtxt.Discoverer = fs.NewDiscoverer()
	var extractor llmtxt.Extractor = goquery.NewExtractor()
	if cli.Generate.Verbose {
		discoverer = llmslog.NewLoggingDiscoverer(discoverer, logger)
		extractor = llmslog.NewLoggingExtractor(extractor, logger)
	}

	runner := &pipeline.Runner{
		Discoverer: discoverer,
		Extractor:  extractor,
		Corpus:     fs.NewCorpusWriter(cli.Generate.Output),
		Index:      fs.NewIndexWriter(cli.Generate.Index),
	}
	if cli.Generate.Report != "" {
		runner.Report = fs.NewReportWriter(cli.Generate.Report)
	}

	m.Runner = runner
	deps.Runner = runner

	return kongCtx.Run(deps)
}
