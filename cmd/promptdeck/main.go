package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck-cli/cmd/commands"
	"github.com/promptdeck/promptdeck-cli/internal/cli"
	"github.com/promptdeck/promptdeck-cli/internal/config"
	"github.com/promptdeck/promptdeck-cli/internal/logging"
	"github.com/promptdeck/promptdeck-cli/pkg/client"
	"github.com/promptdeck/promptdeck-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "promptdeck",
	Short: "Terminal-based manager for prompt snippets",
	Long: `Promptdeck is a terminal-based manager for reusable prompt snippets.
It shows your prompts as a grid with create, edit, delete, and
clipboard-copy actions, backed by the promptdeck API server
(run 'promptdeck serve' to start one locally).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger, err := logging.NewFileLogger(cfg.Log.File)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logger.Sync()

		app := tui.NewApp(client.New(cfg.API.BaseURL), logger)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Promptdeck",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Promptdeck version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewCopyCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("Error: %v", err)
		os.Exit(1)
	}
}
