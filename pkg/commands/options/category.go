// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"github.com/ryansoe/eventory/pkg/category"
)

// CategoryOptions captures the category selection for feed commands.
type CategoryOptions struct {
	Category    category.Category
	HasCategory bool
}

// SearchOptions captures the live-search and demo flags shared by the feed
// and calendar commands.
type SearchOptions struct {
	Search string
	Demo   bool
}

// AddSearchArgs wires search-related flags on the provided command.
func AddSearchArgs(cmd *cobra.Command, o *SearchOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Filter deadlines by a case-insensitive substring of title, date, or channel.")
	cmd.Flags().BoolVar(&o.Demo, "demo", false,
		"Use the bundled sample dataset instead of the API or cache.")
}
