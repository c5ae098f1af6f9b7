package cmd

import (
	"github.com/spf13/cobra"
)

// playersCmd represents the players command
var playersCmd = &cobra.Command{
	Use:   "players <steamid>...",
	Short: "Show player summaries",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPlayers,
}

// namesCmd represents the names command
var namesCmd = &cobra.Command{
	Use:   "names <steamid>...",
	Short: "Resolve SteamIDs to persona names",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNames,
}

func init() {
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(namesCmd)

	addJSONFlag(playersCmd)
	addJSONFlag(namesCmd)
}

func runPlayers(cmd *cobra.Command, args []string) error {
	players, err := client.GetPlayerSummaries(cmd.Context(), args)
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(cmd.OutOrStdout(), players)
	}
	printPlayers(cmd.OutOrStdout(), players)
	return nil
}

func runNames(cmd *cobra.Command, args []string) error {
	names, err := client.GetPlayerNames(cmd.Context(), args)
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(cmd.OutOrStdout(), names)
	}
	printNames(cmd.OutOrStdout(), args, names)
	return nil
}
