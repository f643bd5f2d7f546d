package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck-cli/internal/cli"
	"github.com/promptdeck/promptdeck-cli/internal/config"
	"github.com/promptdeck/promptdeck-cli/pkg/client"
	"github.com/promptdeck/promptdeck-cli/pkg/clipboard"
	"github.com/promptdeck/promptdeck-cli/pkg/models"
)

// NewCopyCommand creates the copy command
func NewCopyCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "copy <id|name>",
		Short:   "Copy a prompt's content to the clipboard",
		Long:    `Copies the content of the prompt with the given id or name to the system clipboard.`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"clip"},
		RunE:    runCopy,
	}
}

func runCopy(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	c := client.New(cfg.API.BaseURL)
	prompt, err := findPrompt(cmd, c, args[0])
	if err != nil {
		return err
	}

	if err := clipboard.Copy(prompt.Content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	cli.PrintSuccess("✓ Prompt '%s' copied to clipboard", prompt.Name)

	lines := strings.Split(prompt.Content, "\n")
	preview := lines[0]
	if len(lines) > 1 {
		preview += " ..."
	}
	cli.PrintInfo("Preview: %s", cli.Truncate(preview, 80))
	return nil
}

// findPrompt resolves a reference that is either a numeric id or a name.
func findPrompt(cmd *cobra.Command, c *client.Client, ref string) (*models.Prompt, error) {
	prompts, err := c.List(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}

	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		for i := range prompts {
			if prompts[i].ID == id {
				return &prompts[i], nil
			}
		}
		return nil, fmt.Errorf("prompt with id %d not found", id)
	}

	var matches []*models.Prompt
	for i := range prompts {
		if strings.EqualFold(prompts[i].Name, ref) {
			matches = append(matches, &prompts[i])
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("prompt '%s' not found. Run 'promptdeck list' to see available prompts", ref)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("multiple prompts named '%s'; use the id instead", ref)
	}
}
