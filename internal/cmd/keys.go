package cmd

import (
	"fmt"

	"github.com/leighmacdonald/pairhash/internal/keys"
	"github.com/spf13/cobra"
)

func keysCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "keys SERVER_ID...",
		Short: "Print the key pair registered for servers",
		Long:  `Prints the server and client key registered for each server id. Unknown ids are an error.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				serverID, errServerID := keys.ParseServerID(arg)
				if errServerID != nil {
					return errServerID
				}

				pair, errKeys := state.pairing.Keys(cmd.Context(), serverID)
				if errKeys != nil {
					return errKeys
				}

				if _, errWrite := fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", serverID, pair); errWrite != nil {
					return errWrite
				}
			}

			return nil
		},
	}
}
