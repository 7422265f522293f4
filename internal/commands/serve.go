package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/keepbook-dev/keepbook/internal/chart"
	"github.com/keepbook-dev/keepbook/internal/config"
	"github.com/keepbook-dev/keepbook/internal/model"
	"github.com/keepbook-dev/keepbook/internal/server"
	"github.com/keepbook-dev/keepbook/internal/store"
)

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the bookkeeping web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "keepbook.yaml", "path to keepbook.yaml")

	return cmd
}

func runServe(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SeedAccounts(chart.Default()); err != nil {
		return fmt.Errorf("seeding chart of accounts: %w", err)
	}
	if err := bootstrapAdmin(st, cfg, log); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(st, cfg, log).Start(ctx)
}

// bootstrapAdmin creates the configured admin user when the users table is
// empty. This is the only way a login user comes into existence; there is
// no registration flow.
func bootstrapAdmin(st *store.Store, cfg *config.Config, log *slog.Logger) error {
	n, err := st.CountUsers()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := server.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}
	if err := st.CreateUser(&model.User{Username: cfg.Admin.Username, PasswordHash: hash}); err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}
	log.Info("created bootstrap admin", "username", cfg.Admin.Username)
	return nil
}
