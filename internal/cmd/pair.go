package cmd

import (
	"fmt"

	"github.com/leighmacdonald/pairhash/internal/domain"
	"github.com/leighmacdonald/pairhash/internal/keys"
	"github.com/spf13/cobra"
)

func pairCmd(state *cliState) *cobra.Command {
	var (
		name     string
		serverID int
	)

	command := &cobra.Command{
		Use:   "pair",
		Short: "Hash a client name and look up its server keys",
		Long: `Hashes the client name and looks up the key pair of the server it pairs with.
Without flags the name and server id from the pairing section of the config are used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientName := state.conf.Pairing.ClientName
			if cmd.Flags().Changed("name") {
				clientName = name
			}

			targetID := state.conf.Pairing.ServerID
			if cmd.Flags().Changed("server-id") {
				targetID = domain.ServerID(serverID)
				if errServerID := keys.CheckServerID(targetID); errServerID != nil {
					return errServerID
				}
			}

			result, errPair := state.pairing.Pair(cmd.Context(), clientName, targetID)
			if errPair != nil {
				return errPair
			}

			out := cmd.OutOrStdout()
			if _, errWrite := fmt.Fprintf(out, "Hash from the name is: %s\n", result.Hash); errWrite != nil {
				return errWrite
			}

			_, errWrite := fmt.Fprintf(out, "Server %d keys: %s\n", result.ServerID, result.Keys)

			return errWrite
		},
	}

	command.Flags().StringVarP(&name, "name", "n", "", "Client name to hash")
	command.Flags().IntVarP(&serverID, "server-id", "s", 0, "Server id to look up")

	return command
}
