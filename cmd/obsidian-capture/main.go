// Command obsidian-capture saves web pages as Markdown notes in an
// Obsidian vault.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	capture "github.com/kublaios/obsidian-capture"
	"github.com/kublaios/obsidian-capture/batch"
	"github.com/kublaios/obsidian-capture/fs"
	"github.com/kublaios/obsidian-capture/goquery"
	"github.com/kublaios/obsidian-capture/htmltomarkdown"
	caphttp "github.com/kublaios/obsidian-capture/http"
	"github.com/kublaios/obsidian-capture/readability"
	capslog "github.com/kublaios/obsidian-capture/slog"
	"github.com/kublaios/obsidian-capture/trafilatura"
	"github.com/kublaios/obsidian-capture/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(capture.ExitCode(capture.ErrorCode(err)))
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
		kong.Name("obsidian-capture"),
		kong.Description("Capture web pages as Markdown notes in an Obsidian vault"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.LogLevel, cli.Format)

	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	vault, err := resolveVault(cli.Vault, cfg.Vault)
	if err != nil {
		return err
	}
	if err := fs.ValidateVault(vault); err != nil {
		return err
	}

	// Wire the pipeline.
	fetcher := capslog.NewLoggingFetcher(
		caphttp.NewFetcher(
			caphttp.WithTimeout(cli.Timeout),
			caphttp.WithMaxSize(cli.MaxSize),
		),
		logger,
	)
	excluder := capslog.NewLoggingExcluder(goquery.NewExcluder(), logger)

	var extractor capture.Extractor
	switch cli.Extractor {
	case "readability":
		extractor = readability.NewExtractor()
	case "trafilatura":
		extractor = trafilatura.NewExtractor()
	default:
		extractor = goquery.NewExtractor()
	}

	capturer := &capture.Capturer{
		Fetcher:   fetcher,
		Excluder:  excluder,
		Extractor: extractor,
		Metadata:  goquery.NewMetadataExtractor(),
		Converter: htmltomarkdown.NewConverter(),
		Writer:    fs.NewWriter(vault, yaml.NewMarshaler()),
	}

	reporter := NewReporter(stdout, cli.Format)

	if len(cli.URLs) == 1 {
		result, err := capturer.Capture(ctx, &capture.Request{
			URLOrPath: cli.URLs[0],
			Config:    cfg,
			DryRun:    cli.Dry,
		})
		if err != nil {
			_ = reporter.Failure(cli.URLs[0], err)
			return err
		}
		return reporter.Success(result)
	}

	runner := batch.NewRunner(capturer, batch.NewDomainLimiter(cli.RateLimit), cli.Concurrency)
	items, err := runner.Run(ctx, cli.URLs, cfg, cli.Dry)
	if err != nil {
		return err
	}

	var firstErr error
	for _, item := range items {
		if item.Err != nil {
			_ = reporter.Failure(item.URLOrPath, item.Err)
			if firstErr == nil {
				firstErr = item.Err
			}
			continue
		}
		if err := reporter.Success(item.Result); err != nil {
			return err
		}
	}
	return firstErr
}

// loadConfig resolves the effective config: the --config file, then
// ~/.obsidian-capture.yml if present, then built-in defaults, with CLI
// flags layered on top.
func loadConfig(cli *CLI) (*capture.Config, error) {
	var cfg *capture.Config

	switch {
	case cli.Config != "":
		loaded, err := yaml.LoadConfig(cli.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	default:
		home, err := os.UserHomeDir()
		if err == nil {
			path := filepath.Join(home, ".obsidian-capture.yml")
			if _, statErr := os.Stat(path); statErr == nil {
				loaded, err := yaml.LoadConfig(path)
				if err != nil {
					return nil, err
				}
				cfg = loaded
			}
		}
	}
	if cfg == nil {
		cfg = capture.DefaultConfig()
	}

	if cli.Subfolder != "" {
		cfg.Subfolder = cli.Subfolder
	}
	if cli.Overwrite {
		cfg.Overwrite = true
	}
	for _, tag := range cli.Tags {
		cfg.Tags = append(cfg.Tags, strings.TrimPrefix(tag, "#"))
	}
	cfg.ExclusionSelectors = append(cfg.ExclusionSelectors, cli.ExcludeSelector...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveVault picks the vault directory: the --vault flag, then the
// config file, then the current working directory.
func resolveVault(flagVault, cfgVault string) (string, error) {
	dir := flagVault
	if dir == "" {
		dir = cfgVault
	}
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", capture.Errorf(capture.ECONFIG, "determining working directory: %v", err)
		}
		return cwd, nil
	}

	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", capture.Errorf(capture.ECONFIG, "expanding %s: %v", dir, err)
		}
		dir = filepath.Join(home, dir[2:])
	}
	return dir, nil
}

// newLogger builds the stderr logger. The handler follows the report
// format so json mode emits machine-readable logs too.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: l}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
