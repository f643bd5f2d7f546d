package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck-cli/internal/cli"
	"github.com/promptdeck/promptdeck-cli/internal/config"
	"github.com/promptdeck/promptdeck-cli/pkg/client"
)

var listFormat string

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all prompts",
		Long:  `Lists every prompt on the server, newest first.`,
		RunE:  runList,
	}
	cmd.Flags().StringVar(&listFormat, "format", "text", "Output format (text, json, yaml)")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	c := client.New(cfg.API.BaseURL)
	prompts, err := c.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list prompts: %w", err)
	}

	if cli.OutputFormat(listFormat) != cli.FormatText {
		return cli.OutputResults(os.Stdout, listFormat, prompts)
	}

	if len(prompts) == 0 {
		cli.PrintInfo("No prompts found. Create one with 'promptdeck' or POST to the API.")
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("ID", "NAME", "DESCRIPTION")
	for _, p := range prompts {
		table.Row(strconv.FormatInt(p.ID, 10), p.Name, cli.Truncate(p.Description, 50))
	}
	table.Flush()
	cli.PrintInfo("\n%d prompt(s)", len(prompts))
	return nil
}
