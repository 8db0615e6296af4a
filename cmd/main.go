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

	"SlackSandbox/api"
	"SlackSandbox/config"
	"SlackSandbox/db"
	"SlackSandbox/store"
	"SlackSandbox/utils"

	"github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:           "slack-sandbox",
		Short:         "Slack OAuth install flow and Web API proxy",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(envFiles)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := serve(ctx, cfg, log); err != nil {
				log.Crit("Server failed", "err", err)
				return err
			}
			return nil
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")

	root.AddCommand(&cobra.Command{
		Use:   "install-url",
		Short: "Print the Slack install link",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(envFiles)
			if err != nil {
				return err
			}
			h := api.NewHandler(cfg, store.NewFileStore(cfg.TokensFile), log)
			fmt.Fprintln(cmd.OutOrStdout(), h.InstallURL())
			return nil
		},
	})

	return root
}

func bootstrap(envFiles []string) (config.Config, log15.Logger, error) {
	config.LoadEnv(utils.NewLogger("info"), envFiles...)
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, utils.NewLogger(cfg.LogLevel), nil
}

func openStore(cfg config.Config, log log15.Logger) (store.Store, error) {
	if cfg.DatabaseURL == "" {
		log.Info("Using file token store", "path", cfg.TokensFile)
		return store.NewFileStore(cfg.TokensFile), nil
	}
	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	log.Info("Using database token store")
	return db.NewTokenStore(conn), nil
}

func serve(ctx context.Context, cfg config.Config, log log15.Logger) error {
	st, err := openStore(cfg, log)
	if err != nil {
		return err
	}

	ln, tunnelURL, err := listen(ctx, cfg.Addr(), cfg.NgrokToken)
	if err != nil {
		return err
	}
	if tunnelURL != "" && cfg.BaseURLDefaulted {
		cfg = cfg.WithBaseURL(tunnelURL)
	}

	srv := &http.Server{
		Handler:           SetupRouter(api.NewHandler(cfg, st, log), log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	log.Info("Slack sandbox demo running", "base_url", cfg.BaseURL, "port", cfg.Port, "tunnel", tunnelURL != "")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("Shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
