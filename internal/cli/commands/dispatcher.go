package commands

import (
	"BucketList/internal/cli/api"
	"BucketList/internal/config"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
	// сервер недоступен
	exitUnreachable = 3
)

// Dispatch выполняет команду из args и возвращает код выхода процесса.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	for _, a := range os.Args[1:] {
		if a == "--help" || a == "-h" {
			fmt.Fprint(Out, FormatGlobalUsage())
			return exitOK
		}
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	name := strings.ToLower(args[0])
	if name == "help" { // blcli help [command]
		if len(args) == 1 {
			fmt.Fprint(Out, FormatGlobalUsage())
			return exitOK
		}
		if c, ok := Get(args[1]); ok {
			fmt.Fprintf(Out, "Usage: %s\n  %s\n", c.Usage(), c.Description())
			return exitOK
		}
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[1])
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	return report(name, c, c.Run(ctx, cfg, args[1:]))
}

// report печатает результат команды. Ошибки API показываются текстом сервера.
func report(name string, c Command, err error) int {
	var apiErr *api.APIError
	var urlErr *url.Error
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return exitUsage
	case errors.As(err, &apiErr):
		fmt.Fprintf(Out, "%s: %s (HTTP %d)\n", name, apiErr.Message, apiErr.Status)
		return exitFailure
	case errors.As(err, &urlErr):
		fmt.Fprintf(Out, "%s: server unreachable: %v\n", name, urlErr.Err)
		return exitUnreachable
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return exitFailure
	}
}
