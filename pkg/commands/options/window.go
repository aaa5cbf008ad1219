package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ryansoe/eventory/pkg/timeutil"
)

// WindowOptions
type WindowOptions struct {
	WithinString string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.WithinString, "within", "",
		`Only show deadlines due within a window, example: --within="1w" or --within="3d".`)
}

func (o *WindowOptions) GetWindow() (time.Duration, error) {
	d, _, err := timeutil.ParseWindow(o.WithinString)
	return d, err
}
