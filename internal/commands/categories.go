package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/config"
)

func newCategoriesCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the expense categories a session starts with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, c := range newRegistry(cfg).All() {
				fmt.Fprintf(out, "%-15s %s\n", c.Key, c.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to spendlog.yaml")

	return cmd
}
