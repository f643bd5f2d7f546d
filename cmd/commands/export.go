package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/promptdeck/promptdeck-cli/internal/cli"
	"github.com/promptdeck/promptdeck-cli/internal/config"
	"github.com/promptdeck/promptdeck-cli/pkg/client"
	"github.com/promptdeck/promptdeck-cli/pkg/models"
)

var exportOutput string

// ExportDocument is the top-level structure of an export file.
type ExportDocument struct {
	Prompts []models.Prompt `yaml:"prompts"`
	Count   int             `yaml:"count"`
}

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all prompts as YAML",
		Long:  `Dumps every prompt on the server to a YAML document, for backup or migration.`,
		RunE:  runExport,
	}
	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	c := client.New(cfg.API.BaseURL)
	prompts, err := c.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list prompts: %w", err)
	}

	doc := ExportDocument{Prompts: prompts, Count: len(prompts)}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode prompts: %w", err)
	}

	if exportOutput == "" {
		fmt.Print(string(data))
		return nil
	}

	if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	cli.PrintSuccess("✓ Exported %d prompt(s) to %s", len(prompts), exportOutput)
	return nil
}
