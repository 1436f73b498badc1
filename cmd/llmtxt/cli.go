package main

import (
	"context"
	"io"

	"github.com/fwojciec/llmtxt/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Runner *pipeline.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate corpus artifacts from a directory of HTML files"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Root        string `arg:"" help:"Directory containing HTML files"`
	Pattern     string `short:"g" default:"**/*.html" help:"Glob pattern relative to the root directory"`
	Output      string `short:"o" default:"llm.txt" help:"Corpus output path"`
	Index       string `default:"pages.json" help:"JSON index output path"`
	Report      string `help:"HTML report output path (omit to skip the report)"`
	Concurrency int    `short:"c" default:"8" help:"Concurrent extraction limit"`
	Verbose     bool   `short:"v" help:"Enable debug logging"`
}
