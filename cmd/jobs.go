package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coshare-scheduler/cmd/bootstrap"
	"coshare-scheduler/internal/usecase/commands"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var relayInterval time.Duration

var expireOffersCmd = &cobra.Command{
	Use:   "expire-offers",
	Short: "Force-expire counter-offers whose deadline has passed",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var uc commands.ConflictCommands
		return withCore(cmd.Context(), fx.Populate(&uc), func(ctx context.Context) error {
			n, err := uc.ExpireCounterOffers(ctx)
			if err != nil {
				return err
			}
			slog.Info("counter-offers expired", "count", n)
			return nil
		})
	},
}

var relayNotificationsCmd = &cobra.Command{
	Use:   "relay-notifications",
	Short: "Deliver queued notifications",
	Long:  `Delivers one batch of queued notifications, or keeps relaying every --interval until interrupted.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var uc commands.NotificationCommands
		return withCore(cmd.Context(), fx.Populate(&uc), func(ctx context.Context) error {
			for {
				sent, err := uc.Relay(ctx)
				if err != nil {
					return err
				}
				slog.Info("notifications relayed", "sent", sent)
				if relayInterval <= 0 {
					return nil
				}
				select {
				case <-ctx.Done():
					return nil
				case <-time.After(relayInterval):
				}
			}
		})
	},
}

func init() {
	relayNotificationsCmd.Flags().DurationVar(&relayInterval, "interval", 0, "Relay repeatedly at this interval (0 runs once)")
}

// withCore starts the core application, runs fn and stops the application again.
func withCore(parent context.Context, populate fx.Option, fn func(ctx context.Context) error) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := fx.New(bootstrap.CoreModule, populate, fx.NopLogger)
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Error("failed to stop application", "error", err)
		}
	}()

	return fn(ctx)
}
