package main

import (
	"context"
	"errors"
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/library-catalog/catalog/app"
	"github.com/Astemirdum/library-catalog/catalog/config"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", err)
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		driver string
		debug  bool
	)
	options := func() []config.Option {
		opts := []config.Option{config.WithWriteTimeout(time.Minute)}
		if debug {
			opts = append(opts, config.WithLogLevel(zapcore.DebugLevel))
		}
		if driver != "" {
			opts = append(opts, config.WithDriver(driver))
		}
		return opts
	}

	root := &cobra.Command{
		Use:          "catalog",
		Short:        "Library catalog and lending service",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&driver, "driver", "", "database driver: postgres or sqlite (overrides DB_DRIVER)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.Run(config.NewConfig(options()...))
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.NewConfig(options()...)
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			db, err := app.OpenDB(ctx, cfg.Database)
			if err != nil {
				return err
			}
			cmd.Println("migrations applied")
			return db.Close()
		},
	})
	return root
}
