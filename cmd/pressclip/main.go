package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pressclip"
	"github.com/fwojciec/pressclip/goquery"
	presshttp "github.com/fwojciec/pressclip/http"
	"github.com/fwojciec/pressclip/htmltomarkdown"
	"github.com/fwojciec/pressclip/pdf"
	"github.com/fwojciec/pressclip/readability"
	"github.com/fwojciec/pressclip/rod"
	"github.com/fwojciec/pressclip/scrape"
	presslog "github.com/fwojciec/pressclip/slog"
	"github.com/fwojciec/pressclip/trafilatura"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pressclip"),
		kong.Description("Clip a web article to PDF, plain text, or Markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	static := presslog.NewLoggingFetcher(presshttp.NewFetcher(presshttp.WithTimeout(cli.Timeout)), logger)
	defer static.Close()

	rendered := presslog.NewLoggingFetcher(rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout)), logger)
	defer rendered.Close()

	var engine pressclip.Extractor
	switch cli.Engine {
	case "trafilatura":
		engine = trafilatura.NewExtractor()
	default:
		engine = readability.NewExtractor()
	}

	scraper := &scrape.Scraper{
		Static:      static,
		Rendered:    rendered,
		Engine:      engine,
		Parser:      goquery.NewParser(),
		ScriptHosts: append(scrape.DefaultScriptHosts, cli.ScriptHost...),
		Logger:      logger,
	}

	images := presshttp.NewImageDownloader(presshttp.WithImageWorkers(cli.Concurrency))
	renderer := pdf.NewRenderer(
		pdf.WithImageFetcher(images),
		pdf.WithLogger(logger),
	)

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Scraper:   scraper,
		Renderer:  renderer,
		Converter: htmltomarkdown.NewConverter(),
	}

	cmd := &ClipCmd{
		URL:      cli.URL,
		Out:      cli.Out,
		PDF:      cli.PDF,
		Text:     cli.Text,
		Markdown: cli.Markdown,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	PDF         bool          `help:"Write a PDF rendition"`
	Text        bool          `name:"txt" help:"Write a plain text rendition"`
	Markdown    bool          `name:"md" help:"Write a Markdown rendition"`
	Out         string        `short:"o" help:"Output basename (default: derived from the URL)"`
	Timeout     time.Duration `short:"t" default:"20s" help:"Fetch timeout per page"`
	Engine      string        `default:"readability" enum:"readability,trafilatura" help:"Content extraction engine"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent image download limit"`
	ScriptHost  []string      `help:"Extra hosts that always go through browser rendering"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
	URL         string        `arg:"" required:"" help:"Article URL to clip"`
}
