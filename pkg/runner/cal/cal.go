package cal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ryansoe/eventory/pkg/app"
	"github.com/ryansoe/eventory/pkg/calendar"
	"github.com/ryansoe/eventory/pkg/printers"
	"github.com/ryansoe/eventory/pkg/views"
)

type Calendar struct {
	Month    string
	StepNext int
	StepPrev int
	Search   string
	Demo     bool
	Service  *app.Service
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show calendar, no service")
	}

	m := calendar.MonthOf(time.Now())
	if n.Month != "" {
		var err error
		if m, err = calendar.ParseMonth(n.Month); err != nil {
			return err
		}
	}
	for i := 0; i < n.StepNext; i++ {
		m = m.Next()
	}
	for i := 0; i < n.StepPrev; i++ {
		m = m.Prev()
	}

	records, err := n.Service.Records(ctx, n.Demo)
	if err != nil {
		return err
	}

	v := views.Build(records, views.Filter{Search: n.Search, Sort: views.SortByDate})
	buckets := calendar.BucketByDay(v.Flat, m)
	undated := calendar.Undated(v.Flat)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Calendar(m, buckets, undated)
	return nil
}
