package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/steamworkshop/workshop"
)

const dateFormat = "2006-01-02"

var personaStates = map[int]string{
	0: "Offline",
	1: "Online",
	2: "Busy",
	3: "Away",
	4: "Snooze",
	5: "Looking to trade",
	6: "Looking to play",
}

// addJSONFlag registers the --json flag on cmd.
func addJSONFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "print results as JSON")
}

// wantJSON reports whether --json was given to cmd.
func wantJSON(cmd *cobra.Command) bool {
	asJSON, _ := cmd.Flags().GetBool("json")
	return asJSON
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printIDs(w io.Writer, ids []string) {
	for _, id := range ids {
		fmt.Fprintln(w, id)
	}
}

func printItems(w io.Writer, items []workshop.ContentItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No workshop items found.")
		return
	}

	fmt.Fprintf(w, "\nFound %d items:\n", len(items))
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, item := range items {
		fmt.Fprintf(w, "• %s [%s]", item.DisplayTitle(), item.PublishedFileID)
		if item.IsBanned() {
			fmt.Fprint(w, " [BANNED]")
		}
		fmt.Fprintln(w)

		if tags := item.TagNames(); len(tags) > 0 {
			fmt.Fprintf(w, "  Tags: %s\n", strings.Join(tags, ", "))
		}
		if item.Subscriptions != nil {
			fmt.Fprintf(w, "  Subscriptions: %d\n", *item.Subscriptions)
		}
		if updated := item.UpdatedAt(); !updated.IsZero() {
			fmt.Fprintf(w, "  Updated: %s\n", updated.Format(dateFormat))
		}
	}
}

func printChildren(w io.Writer, children []workshop.CollectionChild) {
	if len(children) == 0 {
		fmt.Fprintln(w, "Collection is empty.")
		return
	}

	fmt.Fprintf(w, "\nCollection has %d items:\n", len(children))
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, child := range children {
		fmt.Fprintf(w, "%4d  %s\n", child.SortOrder, child.PublishedFileID)
	}
}

func printPlayers(w io.Writer, players []workshop.Player) {
	if len(players) == 0 {
		fmt.Fprintln(w, "No players found.")
		return
	}

	for _, p := range players {
		fmt.Fprintf(w, "• %s (%s) %s\n", p.PersonaName, p.SteamID, personaState(p.PersonaState))
		if p.ProfileURL != "" {
			fmt.Fprintf(w, "  Profile: %s\n", p.ProfileURL)
		}
	}
}

// printNames prints names in the order the ids were given; unresolved ids are marked.
func printNames(w io.Writer, ids []string, names map[string]string) {
	for _, id := range ids {
		name, ok := names[id]
		if !ok {
			name = "(unknown)"
		}
		fmt.Fprintf(w, "%s\t%s\n", id, name)
	}
}

func personaState(state int) string {
	if s, ok := personaStates[state]; ok {
		return s
	}
	return fmt.Sprintf("State %d", state)
}
