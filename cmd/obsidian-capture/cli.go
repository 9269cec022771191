package main

import "time"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Vault           string        `short:"v" help:"Obsidian vault directory (default: current directory)"`
	Config          string        `short:"c" type:"path" help:"Config file path (default: ~/.obsidian-capture.yml)"`
	Subfolder       string        `short:"s" help:"Subfolder beneath the monthly bucket"`
	Overwrite       bool          `short:"o" help:"Overwrite an existing note instead of suffixing"`
	Timeout         time.Duration `default:"30s" help:"Fetch timeout per page"`
	MaxSize         int64         `default:"2000000" help:"Maximum page size in bytes"`
	ExcludeSelector []string      `short:"e" help:"CSS selector to remove before extraction (repeatable)"`
	Tags            []string      `short:"t" help:"Tags added to the note front matter"`
	Dry             bool          `help:"Preview the capture without writing a file"`
	Format          string        `enum:"text,json" default:"text" help:"Output format (text or json)"`
	Extractor       string        `enum:"selectors,readability,trafilatura" default:"selectors" help:"Content extraction strategy"`
	Concurrency     int           `default:"4" help:"Concurrent capture limit for multiple URLs"`
	RateLimit       float64       `default:"1" help:"Requests per second per domain for multiple URLs"`
	LogLevel        string        `enum:"debug,info,warn,error" default:"info" help:"Log verbosity"`
	URLs            []string      `arg:"" required:"" name:"url" help:"URLs or local HTML files to capture"`
}
