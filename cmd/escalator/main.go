// Package main provides the EscalatorNet CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const version = "v0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		verbose bool
		names   []string
	)
	for _, arg := range args {
		switch arg {
		case "-v", "--verbose":
			verbose = true
		case "-h", "--help", "help":
			usage()
			return 0
		default:
			names = append(names, arg)
		}
	}

	if len(names) == 0 {
		usage()
		return 2
	}
	if names[0] == "version" {
		fmt.Printf("EscalatorNet %s\n", version)
		return 0
	}

	if names[0] == "all" {
		names = names[:0]
		for _, d := range demos {
			names = append(names, d.name)
		}
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	for _, name := range names {
		d, ok := findDemo(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown demo %q\n\n", name)
			usage()
			return 2
		}
		if err := runDemo(os.Stdout, d, logger, verbose); err != nil {
			logger.Error("demo failed", "demo", name, "err", err)
			return 1
		}
	}
	return 0
}

func usage() {
	fmt.Println("EscalatorNet - feed-forward networks trained by backpropagation")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Usage: escalator [-v] <demo>...")
	fmt.Println("")
	fmt.Println("Demos:")
	for _, d := range demos {
		fmt.Printf("  %-14s %s\n", d.name, d.description)
	}
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Printf("  %-14s %s\n", "version", "Show version")
	fmt.Printf("  %-14s %s\n", "all", "Run every demo")
}

func findDemo(name string) (demo, bool) {
	for _, d := range demos {
		if strings.EqualFold(d.name, name) {
			return d, true
		}
	}
	return demo{}, false
}
