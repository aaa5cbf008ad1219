package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/ryansoe/eventory/pkg/commands/options"
	"github.com/ryansoe/eventory/pkg/runner/detail"
)

func addDetail(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "detail <id>",
		Short: "show everything known about one deadline",
		Example: `
eventory detail 42
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("a deadline id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			d := detail.Detail{
				ID:      args[0],
				Service: s,
			}
			err = d.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
