package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"trinket/internal/adapters/filesystem"
	mcpadapter "trinket/internal/adapters/mcp"
	"trinket/internal/config"
	"trinket/internal/logging"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "", "config file (default is $XDG_CONFIG_HOME/trinket/config.toml)")
	dirFlag := flag.String("dir", "", "snippets directory (overrides the config file)")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fatal(err)
	}
	if err := cfg.OverrideSnippetsDir(*dirFlag); err != nil {
		fatal(err)
	}

	// Stdout carries the protocol, so logs go to stderr
	log, _, err := logging.New(logging.Options{Level: cfg.LogLevel})
	if err != nil {
		fatal(err)
	}

	store := filesystem.NewStore(cfg.SnippetsDir, log)
	if err := store.Initialize(); err != nil {
		fatal(err)
	}

	log.WithField("dir", cfg.SnippetsDir).Info("serving snippets over stdio")
	if err := server.ServeStdio(mcpadapter.NewServer(store, version)); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "trinket-mcp: %v\n", err)
	os.Exit(1)
}
