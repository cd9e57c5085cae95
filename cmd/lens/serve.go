package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lenahart/ledgerlens/internal/api"
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analytics pipelines over HTTP",
		Long: `Start the HTTP API exposing /health, /visualize, /budget, and
/insights. Runs until interrupted.`,
		RunE: runServe,
	}

	serveCmd.Flags().String("listen", "", "listen address (default :5001)")
	_ = viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	eng, err := buildEngine(ctx, cfg, store)
	if err != nil {
		return err
	}

	server := api.NewServer(cfg.ListenAddr, eng)
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
