package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ryansoe/eventory/pkg/category"
	"github.com/ryansoe/eventory/pkg/commands/options"
	"github.com/ryansoe/eventory/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	so := &options.SearchOptions{}
	io := &options.IDOptions{}
	wo := &options.WindowOptions{}

	long := strings.Builder{}
	long.WriteString("Get all or a filtered set of deadlines.\n\n")
	long.WriteString("Category and aliases:\n")

	validArgs := make([]string, 0, 0)

	for _, c := range category.All() {
		long.WriteString(fmt.Sprintf("%s: %s\n", c.Heading(), strings.Join(c.Aliases(), ", ")))
		if c.Noun() != "" {
			validArgs = append(validArgs, c.Noun())
		}
	}

	cmd := &cobra.Command{
		Use:   "get [category]",
		Short: "get deadlines, grouped by category",
		Long:  long.String(),
		Example: `
eventory get
eventory get clubs
eventory get academic --search internship
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				co.HasCategory = false
				return nil
			}
			if len(args) > 1 {
				return errors.New("too many categories set, confused")
			}
			var err error
			co.Category, err = category.ForAlias(args[0])
			co.HasCategory = err == nil
			return err
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			within, err := wo.GetWindow()
			if err != nil {
				return err
			}
			s, err := newService()
			if err != nil {
				return err
			}
			g := get.Get{
				ShowID:      io.ShowID,
				Search:      so.Search,
				Category:    co.Category,
				HasCategory: co.HasCategory,
				Within:      within,
				Demo:        so.Demo,
				Service:     s,
			}
			err = g.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSearchArgs(cmd, so)
	options.AddShowIDArgs(cmd, io)
	options.AddWindowArgs(cmd, wo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
