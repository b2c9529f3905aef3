package commands

import (
	"BucketList/internal/cli/api"
	"BucketList/internal/cli/model"
	"BucketList/internal/config"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

func newClient(cfg *config.Config) *api.Client {
	return api.New(cfg.ServerURL)
}

// parseID разбирает положительный числовой идентификатор.
func parseID(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil || v == 0 {
		return 0, ErrUsage
	}
	return uint(v), nil
}

func mark(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// printItem печатает запись подробно.
func printItem(c *api.Client, it *model.Item) {
	fmt.Fprintf(Out, "  id:          %d\n", it.ID)
	fmt.Fprintf(Out, "  description: %s\n", it.Description)
	fmt.Fprintf(Out, "  added by:    %s\n", it.AddedBy)
	fmt.Fprintf(Out, "  created:     %s\n", humanize.Time(it.CreatedAt))
	if it.CompletedAt != nil {
		fmt.Fprintf(Out, "  completed:   %s\n", humanize.Time(*it.CompletedAt))
	} else {
		fmt.Fprintln(Out, "  completed:   -")
	}
	if len(it.Photos) == 0 {
		return
	}
	fmt.Fprintf(Out, "  photos:      %d\n", len(it.Photos))
	for _, p := range it.Photos {
		fmt.Fprintf(Out, "    #%d %s\n", p.ID, c.PhotoURL(p))
	}
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
