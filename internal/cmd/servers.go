package cmd

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func serversCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "servers",
		Short: "List all registered servers",
		Long:  `List every server in the key registry along with its keys`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := tablewriter.NewTable(cmd.OutOrStdout())
			table.Header("server_id", "server_key", "client_key")

			for _, entry := range state.pairing.Servers() {
				if errAppend := table.Append([]string{
					strconv.Itoa(int(entry.ServerID)),
					strconv.Itoa(int(entry.Keys.ServerKey)),
					strconv.Itoa(int(entry.Keys.ClientKey)),
				}); errAppend != nil {
					return errAppend
				}
			}

			return table.Render()
		},
	}
}
