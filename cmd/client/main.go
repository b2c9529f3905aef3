package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"BucketList/internal/cli/commands"
	"BucketList/internal/config"
)

// задаются через -ldflags "-X main.version=... -X main.buildDate=..."
var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// env + flags
	cfg := config.NewConfig()

	if cfg.Version {
		fmt.Printf("blcli %s (built %s)\nserver: %s\n", version, buildDate, cfg.ServerURL)
		return
	}

	// Ctrl+C прерывает текущий HTTP-запрос
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Dispatch(ctx, cfg, flag.Args())
	cancel()
	os.Exit(code)
}
