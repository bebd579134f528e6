package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"schoolbook/internal/app"
	"schoolbook/internal/shell"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the sample school's students, grades and ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Seed(registry); err != nil {
				return err
			}
			return shell.New(registry, strings.NewReader(""), cmd.OutOrStdout()).Report()
		},
	}
}
