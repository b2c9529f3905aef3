package commands

import (
	"BucketList/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrUsage — аргументы неверны, диспетчер печатает Usage команды.
var ErrUsage = errors.New("usage")

// Command — подкоманда blcli.
type Command interface {
	Name() string
	Description() string
	// Usage — строка вида "item-rm <id>".
	Usage() string
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

var registry = map[string]Command{}

// Out — общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// RegisterCmd вызывается из init() каждой команды.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List возвращает команды, отсортированные по имени.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// section группирует команды в справке по префиксу имени.
func section(name string) string {
	switch {
	case strings.HasPrefix(name, "item"):
		return "Items"
	case strings.HasPrefix(name, "photo"):
		return "Photos"
	default:
		return "Other"
	}
}

var sectionOrder = []string{"Items", "Photos", "Other"}

// FormatGlobalUsage собирает общую справку по всем командам.
func FormatGlobalUsage() string {
	lines := []string{
		"BucketList CLI",
		"",
		"Usage:",
		"  blcli [--base-url <host:port>] [--server URL] <command> [args]",
		"",
		"Server address: --server, SERVER_URL or BASE_URL (default http://localhost:5000).",
	}
	groups := map[string][]Command{}
	for _, c := range List() {
		s := section(c.Name())
		groups[s] = append(groups[s], c)
	}
	for _, s := range sectionOrder {
		if len(groups[s]) == 0 {
			continue
		}
		lines = append(lines, "", s+":")
		for _, c := range groups[s] {
			lines = append(lines, fmt.Sprintf("  %-44s %s", c.Usage(), c.Description()))
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
