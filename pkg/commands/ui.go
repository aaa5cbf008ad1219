package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ryansoe/eventory/pkg/commands/options"
	"github.com/ryansoe/eventory/pkg/runner/dash"
)

func addUI(topLevel *cobra.Command) {
	so := &options.SearchOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the full-screen deadline dashboard",
		Example: `
eventory ui
eventory ui --demo
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			d := dash.Dashboard{
				Demo:    so.Demo,
				Service: s,
			}
			return d.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&so.Demo, "demo", false,
		"Use the bundled sample dataset instead of the API or cache.")

	topLevel.AddCommand(cmd)
}
