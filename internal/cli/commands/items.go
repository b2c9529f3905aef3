package commands

import (
	"context"
	"fmt"

	"BucketList/internal/config"

	"github.com/dustin/go-humanize"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать все записи, новые первыми"
}
func (itemsCmd) Usage() string { return "items" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	list, err := newClient(cfg).ListItems(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, it := range list {
		photos := ""
		if n := len(it.Photos); n > 0 {
			photos = fmt.Sprintf("  photos=%d", n)
		}
		fmt.Fprintf(Out, "%s #%d %s  (by %s, %s)%s\n",
			mark(it.IsCompleted), it.ID, it.Description, it.AddedBy, humanize.Time(it.CreatedAt), photos)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
