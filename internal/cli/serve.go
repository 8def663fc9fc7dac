package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"GoNLP/internal/nlp"
	"GoNLP/internal/server"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analyzers over HTTP",
		Long: `Start the HTTP module host. It serves until interrupted and then shuts
down gracefully, waiting up to server.shutdown_timeout for in-flight calls.`,
		Example: `  # Listen on the configured address
  gonlp serve

  # Override the port
  gonlp serve --port 8080`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}

	cmd.Flags().String("host", "", "Host to bind")
	cmd.Flags().Int("port", 0, "Port to listen on")
	return cmd
}

func runServe(cmd *cobra.Command) error {
	cfg, err := configFrom(cmd)
	if err != nil {
		return err
	}
	logger := loggerFrom(cmd)
	defer func() { _ = logger.Sync() }()

	registry, err := nlp.NewRegistry(cfg.Namespace)
	if err != nil {
		return err
	}

	logger.Info("starting GoNLP",
		zap.String("version", Version),
		zap.String("addr", cfg.Addr()),
		zap.String("namespace", cfg.Namespace),
		zap.Strings("modules", registry.Names()),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(registry, *cfg, Version, logger).Run(ctx)
}

