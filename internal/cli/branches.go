package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/gitpublish/internal/config"
	"github.com/mmr-tortoise/gitpublish/internal/ui"
)

// NewBranchesCommand creates the "branches" subcommand: list the branches
// configured for tagging together with their tag patterns.
func NewBranchesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "branches",
		Short: "List the branches configured for tagging",

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			entries := make([]string, 0, len(cfg.Branches))
			for _, name := range cfg.BranchNames() {
				entries = append(entries, fmt.Sprintf("%s: %s", name, cfg.Branches[name]))
			}

			ui.New().Branches(entries)
			return nil
		},
	}
}
