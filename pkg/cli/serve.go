package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/notify-lab/herald/pkg/cli/config"
	controller "github.com/notify-lab/herald/pkg/controller/http"
	"github.com/notify-lab/herald/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		storageCfg config.Storage
		discordCfg config.Discord
	)

	flags := slices.Concat(
		serverCfg.Flags(),
		storageCfg.Flags(),
		discordCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting herald server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("storage", storageCfg),
				slog.Any("discord", discordCfg),
			)

			// Create delivery log repository using config
			repo, err := storageCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			// Create Discord gateway client
			discordClient := discordCfg.Configure()

			// Create use cases
			sendUC := usecase.NewSend(discordClient, repo)
			directoryUC := usecase.NewDirectory(discordClient, repo)

			// Create HTTP server
			server, err := controller.NewServer(ctx, serverCfg.Addr, sendUC, directoryUC)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
