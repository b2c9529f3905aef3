package main

import (
	"BucketList/internal/config"
	"BucketList/internal/handlers"
	"BucketList/internal/middleware"
	"BucketList/internal/repo"
	"BucketList/internal/service"
	"BucketList/internal/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func newLogger(mode string) (*zap.Logger, error) {
	if mode == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	cfg := config.NewConfig()

	// создаём регистратор zap по режиму
	logger, err := newLogger(cfg.LogMode)
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	//context
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	defer func() {
		if err := repo.Close(gormDB); err != nil {
			sugar.Errorw("failed to close database", "error", err)
		}
	}()

	files, err := storage.NewDiskStore(cfg.UploadFolder)
	if err != nil {
		sugar.Fatalw("failed to prepare upload folder", "dir", cfg.UploadFolder, "error", err)
	}

	itemRepo := repo.NewItemRepository(gormDB)
	photoRepo := repo.NewPhotoRepository(gormDB)
	itemService := service.NewItemService(itemRepo, photoRepo, files, cfg.AllowedExtensions, sugar)

	h := handlers.NewHandler(itemService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"UploadFolder", cfg.UploadFolder,
		"StaticDir", cfg.StaticDir,
		"MaxContentLength", cfg.MaxContentLength,
		"AllowedExtensions", cfg.AllowedExtensions,
		"LogMode", cfg.LogMode,
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sugar.Infow("Shutting down server")
		shCtx, shCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shCancel()
		return srv.Shutdown(shCtx)
	})

	if err := g.Wait(); err != nil {
		sugar.Errorw("Server failed", "error", err)
		return
	}
	sugar.Infow("Server stopped")
}
