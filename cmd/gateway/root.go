package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"brainball/api/internal/backend"
	"brainball/api/internal/config"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

// newRootCmd constructs the Cobra command tree. Bare `gateway` serves.
func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "gateway",
		Short:         "HTTP gateway for the word2animal inference backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to a YAML/JSON/TOML config file")
	root.PersistentFlags().String("addr", "", "HTTP listen address")
	root.PersistentFlags().String("backend", "", "word2animal gRPC address")
	root.PersistentFlags().Duration("deadline", 0, "Per-request budget, e.g. 2s")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	loadConfig := func(cmd *cobra.Command) (config.Config, error) {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return cfg, err
		}
		overlayFlags(cmd, &cfg)
		return cfg, nil
	}

	serveCmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the HTTP gateway",
		Example: "  gateway serve\n  gateway serve --config gateway.yaml --addr :9090\n  WORD2ANIMAL_GRPC_ADDR=backend:50051 gateway serve",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}

	checkCmd := &cobra.Command{
		Use:     "check",
		Short:   "Probe the word2animal backend once and exit",
		Example: "  gateway check\n  gateway check --backend backend:50051",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			if err := backend.Probe(ctx, cfg.BackendAddr); err != nil {
				return err
			}
			cmd.Printf("backend %s reachable\n", cfg.BackendAddr)
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the gateway version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version)
		},
	}

	root.AddCommand(serveCmd, checkCmd, versionCmd)
	root.RunE = serveCmd.RunE
	return root
}

// overlayFlags lays explicitly set flags over cfg, completing the
// precedence chain: defaults, then file, then env, then flags.
func overlayFlags(cmd *cobra.Command, cfg *config.Config) {
	if f := cmd.Flag("addr"); f != nil && f.Changed {
		cfg.Addr = f.Value.String()
	}
	if f := cmd.Flag("backend"); f != nil && f.Changed {
		cfg.BackendAddr = f.Value.String()
	}
	if f := cmd.Flag("deadline"); f != nil && f.Changed {
		if d, err := time.ParseDuration(f.Value.String()); err == nil {
			cfg.RequestDeadline = config.Duration(d)
		}
	}
	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		cfg.LogLevel = f.Value.String()
	}
}
