package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/Badsnus/golf-stats/cmd/app"
	"github.com/Badsnus/golf-stats/internal/adapters/config"
	"github.com/Badsnus/golf-stats/internal/adapters/controller/web/setup"
	"github.com/Badsnus/golf-stats/internal/adapters/database/sqlstore"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "web",
		Short:         "Serve golf stats pages",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			return serve(cmd.Context(), a)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the config file")

	return cmd
}

func serve(ctx context.Context, a *app.App) error {
	if err := sqlstore.CheckSchema(ctx, a.DB); err != nil {
		return fmt.Errorf("%w (run golfdb --init)", err)
	}

	engine, err := setup.Setup(a)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         a.Config.Web.Addr,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		a.Logger.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err = <-serveErr:
		return err
	case sig := <-quit:
		a.Logger.Infof("received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
