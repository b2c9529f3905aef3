package commands

import (
	"context"
	"fmt"

	"BucketList/internal/config"
)

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "item-add" }
func (itemAddCmd) Description() string {
	return "Добавить запись"
}
func (itemAddCmd) Usage() string { return "item-add <added_by> <description...>" }

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || args[0] == "" {
		return ErrUsage
	}
	desc := joinArgs(args[1:])
	if desc == "" {
		return ErrUsage
	}
	c := newClient(cfg)
	it, err := c.CreateItem(ctx, desc, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	printItem(c, it)
	return nil
}

func init() { RegisterCmd(itemAddCmd{}) }
