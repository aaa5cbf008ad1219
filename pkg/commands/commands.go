package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/ryansoe/eventory/pkg/api"
	"github.com/ryansoe/eventory/pkg/app"
	"github.com/ryansoe/eventory/pkg/commands/options"
	"github.com/ryansoe/eventory/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "eventory",
		Short: base.Wrap80("Deadline dashboards for busy students, on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGet(topLevel)
	addCalendar(topLevel)
	addDetail(topLevel)
	addRefresh(topLevel)
	addVersion(topLevel)
}

func newService() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return &app.Service{
		Persistence: p,
		Client:      api.New(cfg.APIURL(), cfg.APIToken()),
	}, nil
}
