package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func hashCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "hash NAME...",
		Short: "Print the fingerprint of client names",
		Long:  `Prints the 16 bit fingerprint of each client name, one per line, followed by the name.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				if _, errWrite := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", state.pairing.Hash(name), name); errWrite != nil {
					return errWrite
				}
			}

			return nil
		},
	}
}
