package options

import (
	"github.com/spf13/cobra"
)

// MonthOptions
type MonthOptions struct {
	Month string
	Next  int
	Prev  int
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		`Specify a month, example: --month="2025-05" or --month="May 2025".`)
	cmd.Flags().IntVar(&o.Next, "next", 0,
		"Step forward this many months from the selected month.")
	cmd.Flags().IntVar(&o.Prev, "prev", 0,
		"Step back this many months from the selected month.")
}
