package cmd

import (
	"github.com/spf13/cobra"
)

var collectionItems bool

// detailsCmd represents the details command
var detailsCmd = &cobra.Command{
	Use:   "details <published-file-id>...",
	Short: "Show details for published files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDetails,
}

// collectionCmd represents the collection command
var collectionCmd = &cobra.Command{
	Use:   "collection <collection-id>",
	Short: "List the children of a Workshop collection",
	Long: `List the items that belong to a Workshop collection, in collection order.

With --items the full details of every child are fetched as well.`,
	Args: cobra.ExactArgs(1),
	RunE: runCollection,
}

func init() {
	rootCmd.AddCommand(detailsCmd)
	rootCmd.AddCommand(collectionCmd)

	addJSONFlag(detailsCmd)

	collectionCmd.Flags().BoolVar(&collectionItems, "items", false, "fetch full details for every child")
	addJSONFlag(collectionCmd)
}

func runDetails(cmd *cobra.Command, args []string) error {
	items, err := client.GetPublishedFileDetails(cmd.Context(), args)
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(cmd.OutOrStdout(), items)
	}
	printItems(cmd.OutOrStdout(), items)
	return nil
}

func runCollection(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if collectionItems {
		items, err := client.GetCollectionItems(ctx, args[0])
		if err != nil {
			return err
		}
		if wantJSON(cmd) {
			return printJSON(cmd.OutOrStdout(), items)
		}
		printItems(cmd.OutOrStdout(), items)
		return nil
	}

	children, err := client.GetCollectionDetails(ctx, args[0])
	if err != nil {
		return err
	}
	if wantJSON(cmd) {
		return printJSON(cmd.OutOrStdout(), children)
	}
	printChildren(cmd.OutOrStdout(), children)
	return nil
}
