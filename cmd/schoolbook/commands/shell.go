package commands

import (
	"github.com/spf13/cobra"
)

func shellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Run the interactive school menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, seed)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "preload the sample school")
	return cmd
}
