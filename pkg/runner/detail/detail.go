package detail

import (
	"context"
	"errors"
	"fmt"

	"github.com/ryansoe/eventory/pkg/app"
	"github.com/ryansoe/eventory/pkg/printers"
)

type Detail struct {
	ID      string
	Service *app.Service
}

func (n *Detail) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show detail, no service")
	}
	if n.ID == "" {
		return errors.New("a deadline id is required")
	}

	r, err := n.Service.Deadline(ctx, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Detail(r)
	return nil
}
