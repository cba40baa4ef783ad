package cli

import (
	"github.com/spf13/cobra"

	"h2_simulator/internal/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Adjust plant parameters interactively in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadScenario(cmd)
			if err != nil {
				return err
			}
			return tui.Run(s)
		},
	}
}
