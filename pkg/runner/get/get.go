package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ryansoe/eventory/pkg/app"
	"github.com/ryansoe/eventory/pkg/category"
	"github.com/ryansoe/eventory/pkg/deadline"
	"github.com/ryansoe/eventory/pkg/printers"
	"github.com/ryansoe/eventory/pkg/views"
)

type Get struct {
	ShowID      bool
	Search      string
	Category    category.Category
	HasCategory bool
	Within      time.Duration
	Demo        bool
	Service     *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	records, err := n.Service.Records(ctx, n.Demo)
	if err != nil {
		return err
	}

	if n.Within > 0 {
		records = dueWithin(records, time.Now(), n.Within)
	}

	v := views.Build(records, views.Filter{Search: n.Search, Sort: views.SortByDate})

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.HasCategory {
		pp.TitleWithCount(n.Category.Heading(), len(v.ByCategory[n.Category]))
		pp.Feed(v.ByCategory[n.Category]...)
		return nil
	}

	pp.Sections(v)
	return nil
}

// dueWithin keeps records whose due date falls between today and the end of
// the window. Records with no parseable date are dropped; a window is a
// question about dates.
func dueWithin(records []deadline.Record, now time.Time, window time.Duration) []deadline.Record {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := today.Add(window)
	kept := make([]deadline.Record, 0, len(records))
	for _, r := range records {
		d, ok := r.Due()
		if !ok {
			continue
		}
		t := d.Time()
		if t.Before(today) || t.After(end) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
