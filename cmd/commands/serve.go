package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/promptdeck/promptdeck-cli/internal/config"
	"github.com/promptdeck/promptdeck-cli/internal/logging"
	"github.com/promptdeck/promptdeck-cli/internal/server"
	"github.com/promptdeck/promptdeck-cli/internal/store"
)

var (
	serveAddr   string
	serveDBPath string
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the prompts API server",
		Long: `Starts the HTTP server the TUI and CLI commands talk to. Prompts are
stored in a local SQLite database.`,
		RunE: runServe,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
	cmd.Flags().StringVar(&serveDBPath, "db", "", "SQLite database path (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	dbPath := cfg.Server.DatabasePath
	if serveDBPath != "" {
		dbPath = serveDBPath
	}

	logger, err := logging.NewServerLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	logger.Info("starting prompts API server",
		zap.String("addr", addr), zap.String("db", dbPath))

	return server.New(st, logger).Run(addr)
}
