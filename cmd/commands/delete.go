package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck-cli/internal/cli"
	"github.com/promptdeck/promptdeck-cli/internal/config"
	"github.com/promptdeck/promptdeck-cli/pkg/client"
)

var deleteForce bool

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id|name>",
		Short:   "Delete a prompt",
		Long:    `Deletes the prompt with the given id or name after confirmation.`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"rm"},
		RunE:    runDelete,
	}
	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	c := client.New(cfg.API.BaseURL)
	prompt, err := findPrompt(cmd, c, args[0])
	if err != nil {
		return err
	}

	if !deleteForce {
		fmt.Printf("Delete prompt '%s' (id %d)? This cannot be undone. [y/N]: ", prompt.Name, prompt.ID)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			cli.PrintInfo("Aborted.")
			return nil
		}
	}

	if err := c.Delete(cmd.Context(), prompt.ID); err != nil {
		return fmt.Errorf("failed to delete prompt: %w", err)
	}

	cli.PrintSuccess("✓ Deleted prompt: %s", prompt.Name)
	return nil
}
