package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"BucketList/internal/config"

	"github.com/dustin/go-humanize"
)

type photoAddCmd struct{}

func (photoAddCmd) Name() string        { return "photo-add" }
func (photoAddCmd) Description() string { return "Прикрепить фото к записи" }
func (photoAddCmd) Usage() string       { return "photo-add <item_id> <file>" }

func (photoAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	f, err := os.Open(args[1])
	if err != nil {
		return err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return err
	}

	c := newClient(cfg)
	it, err := c.UploadPhoto(ctx, id, filepath.Base(args[1]), f)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ Фото загружено (%s)\n", humanize.Bytes(uint64(fi.Size())))
	printItem(c, it)
	return nil
}

type photoRmCmd struct{}

func (photoRmCmd) Name() string        { return "photo-rm" }
func (photoRmCmd) Description() string { return "Удалить фото" }
func (photoRmCmd) Usage() string       { return "photo-rm <photo_id>" }

func (photoRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	c := newClient(cfg)
	it, err := c.DeletePhoto(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted photo #%d\n", id)
	printItem(c, it)
	return nil
}

func init() {
	RegisterCmd(photoAddCmd{})
	RegisterCmd(photoRmCmd{})
}
