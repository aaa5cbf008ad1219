package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ryansoe/eventory/pkg/commands/options"
	"github.com/ryansoe/eventory/pkg/runner/refresh"
)

func addRefresh(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "fetch every deadline from the API and rebuild the local cache",
		Example: `
eventory refresh
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := refresh.Refresh{Service: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
