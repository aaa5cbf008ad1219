package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ryansoe/eventory/pkg/commands/options"
	"github.com/ryansoe/eventory/pkg/runner/cal"
)

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	so := &options.SearchOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "show a month of deadlines, one line per day",
		Example: `
eventory calendar
eventory cal --month="2025-05"
eventory cal --next=1 --search="lab"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			c := cal.Calendar{
				Month:    mo.Month,
				StepNext: mo.Next,
				StepPrev: mo.Prev,
				Search:   so.Search,
				Demo:     so.Demo,
				Service:  s,
			}
			err = c.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddSearchArgs(cmd, so)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
