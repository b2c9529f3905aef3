package commands

import (
	"context"
	"fmt"

	"BucketList/internal/config"
)

type statsCmd struct{}

func (statsCmd) Name() string        { return "stats" }
func (statsCmd) Description() string { return "Статистика по списку" }
func (statsCmd) Usage() string       { return "stats" }

func (statsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	st, err := newClient(cfg).Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Всего:      %d\n", st.Total)
	fmt.Fprintf(Out, "Выполнено:  %d\n", st.Completed)
	fmt.Fprintf(Out, "Осталось:   %d\n", st.Pending)
	fmt.Fprintf(Out, "Прогресс:   %.1f%%\n", st.CompletionPercentage)
	return nil
}

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Проверить доступность сервера" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := newClient(cfg).Health(ctx); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Status: ok", cfg.ServerURL)
	return nil
}

func init() {
	RegisterCmd(statsCmd{})
	RegisterCmd(statusCmd{})
}
