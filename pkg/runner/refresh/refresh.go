package refresh

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/ryansoe/eventory/pkg/app"
)

type Refresh struct {
	Service *app.Service
}

func (n *Refresh) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not refresh, no service")
	}

	count, err := n.Service.Refresh(ctx)
	if err != nil {
		return err
	}

	c := color.New(color.Faint)
	switch count {
	case 1:
		_, _ = c.Println("cached 1 deadline")
	default:
		_, _ = c.Println(fmt.Sprintf("cached %d deadlines", count))
	}
	return nil
}
