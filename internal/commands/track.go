package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/categories"
	"github.com/spendlog-dev/spendlog/internal/config"
	"github.com/spendlog-dev/spendlog/internal/console"
	"github.com/spendlog-dev/spendlog/internal/tracker"
)

func newTrackCommand() *cobra.Command {
	var sample bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "track",
		Short: "Start an interactive expense tracking session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrack(cmd, sample, configPath)
		},
	}

	cmd.Flags().BoolVar(&sample, "sample", false, "seed the session with sample expenses")
	cmd.Flags().StringVar(&configPath, "config", "", "path to spendlog.yaml")

	return cmd
}

func runTrack(cmd *cobra.Command, sample bool, configPath string) error {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	svc := tracker.NewService(newRegistry(cfg))

	if sample {
		if err := svc.Seed(); err != nil {
			return fmt.Errorf("seeding sample expenses: %w", err)
		}
	}

	c := console.New(svc, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	return c.Run()
}

// newRegistry builds the session registry: defaults plus any categories the
// config adds.
func newRegistry(cfg *config.Config) *categories.Registry {
	cats := categories.DefaultSet()
	for _, cc := range cfg.Categories {
		cats = append(cats, cc.Category())
	}
	return categories.NewRegistry(cats)
}
