package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"BucketList/internal/cli/model"
	"BucketList/internal/config"
)

type itemEditCmd struct{}

func (itemEditCmd) Name() string { return "item-edit" }
func (itemEditCmd) Description() string {
	return "Изменить описание и/или автора записи"
}
func (itemEditCmd) Usage() string {
	return "item-edit [--description=<text>] [--added-by=<name>] <id>"
}

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	// флаги только перед позиционным id
	fs := flag.NewFlagSet("item-edit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	desc := fs.String("description", "", "новое описание")
	addedBy := fs.String("added-by", "", "новый автор")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return ErrUsage
	}
	id, err := parseID(rest[0])
	if err != nil {
		return err
	}

	var patch model.ItemPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "description":
			patch.Description = desc
		case "added-by":
			patch.AddedBy = addedBy
		}
	})
	if patch.Description == nil && patch.AddedBy == nil {
		return ErrUsage
	}

	c := newClient(cfg)
	it, err := c.UpdateItem(ctx, id, patch)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Updated:")
	printItem(c, it)
	return nil
}

// itemDoneCmd отмечает запись выполненной (done=true) или снимает отметку.
type itemDoneCmd struct{ done bool }

func (c itemDoneCmd) Name() string {
	if c.done {
		return "item-done"
	}
	return "item-undone"
}
func (c itemDoneCmd) Description() string {
	if c.done {
		return "Отметить запись выполненной"
	}
	return "Снять отметку о выполнении"
}
func (c itemDoneCmd) Usage() string { return c.Name() + " <id>" }

func (c itemDoneCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	done := c.done
	cl := newClient(cfg)
	it, err := cl.UpdateItem(ctx, id, model.ItemPatch{IsCompleted: &done})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "%s #%d %s\n", mark(it.IsCompleted), it.ID, it.Description)
	return nil
}

type itemRmCmd struct{}

func (itemRmCmd) Name() string        { return "item-rm" }
func (itemRmCmd) Description() string { return "Удалить запись вместе с фото" }
func (itemRmCmd) Usage() string       { return "item-rm <id>" }

func (itemRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := newClient(cfg).DeleteItem(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted item #%d\n", id)
	return nil
}

func init() {
	RegisterCmd(itemEditCmd{})
	RegisterCmd(itemDoneCmd{done: true})
	RegisterCmd(itemDoneCmd{done: false})
	RegisterCmd(itemRmCmd{})
}
