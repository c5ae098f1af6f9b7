package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/steamworkshop/filter"
	"github.com/s0up4200/steamworkshop/workshop"
)

var (
	searchAppID   uint64
	searchCount   int
	searchPage    int
	searchProxy   bool
	searchIDsOnly bool
	filterExpr    string
	preset        string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search Workshop items for an app",
	Long: `Search published Workshop files for an app by free text.

Results can be narrowed locally with a filter expression, for example:
  workshop search --app-id 550 tank --filter 'hasTag("Maps") and Subscriptions > 1000'`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().Uint64Var(&searchAppID, "app-id", 0, "Steam app id (default from search.app_id)")
	searchCmd.Flags().IntVarP(&searchCount, "count", "n", 0, "results per page (default from search.count)")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "results page, starting at 1")
	searchCmd.Flags().BoolVar(&searchProxy, "proxy", false, "route the search through the configured relay")
	searchCmd.Flags().BoolVar(&searchIDsOnly, "ids-only", false, "print only published file ids")
	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to results")
	searchCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	addJSONFlag(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	opts := workshop.SearchOptions{
		AppID: cfg.Search.AppID,
		Query: strings.Join(args, " "),
		Count: cfg.Search.Count,
		Page:  searchPage,
	}
	if cmd.Flags().Changed("app-id") {
		opts.AppID = searchAppID
	}
	if cmd.Flags().Changed("count") {
		opts.Count = searchCount
	}
	if opts.AppID == 0 {
		return fmt.Errorf("no app id specified: use --app-id or set search.app_id")
	}

	expression, err := getFilterExpression()
	if err != nil {
		return err
	}

	var f *filter.Filter
	if expression != "" {
		if f, err = filter.Compile(expression); err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	transport := workshop.TransportFor(searchProxy)
	asJSON := wantJSON(cmd)
	ctx := cmd.Context()

	logger.Info().
		Uint64("app_id", opts.AppID).
		Str("query", opts.Query).
		Stringer("transport", transport).
		Str("filter", expression).
		Msg("Searching workshop")

	// Without a filter the lighter id-only query is enough.
	if searchIDsOnly && f == nil {
		ids, err := client.SearchIDs(ctx, opts, transport)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(cmd.OutOrStdout(), ids)
		}
		printIDs(cmd.OutOrStdout(), ids)
		return nil
	}

	items, err := client.SearchFull(ctx, opts, transport)
	if err != nil {
		return err
	}

	if f != nil {
		total := len(items)
		if items, err = f.Apply(items); err != nil {
			return err
		}
		logger.Debug().Int("total", total).Int("matched", len(items)).Msg("Filter applied")
	}

	switch {
	case asJSON && searchIDsOnly:
		return printJSON(cmd.OutOrStdout(), itemIDs(items))
	case asJSON:
		return printJSON(cmd.OutOrStdout(), items)
	case searchIDsOnly:
		printIDs(cmd.OutOrStdout(), itemIDs(items))
	default:
		printItems(cmd.OutOrStdout(), items)
	}
	return nil
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if expression, ok := cfg.Preset(preset); ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", nil
}

func itemIDs(items []workshop.ContentItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.PublishedFileID)
	}
	return ids
}
