// Package views turns a fetched deadline collection into the filtered,
// sorted, and partitioned forms the feed and calendar screens consume. Build
// is a pure function of its inputs so two screens can share one collection
// without coordination.
package views

import (
	"sort"
	"strings"

	"github.com/ryansoe/eventory/pkg/category"
	"github.com/ryansoe/eventory/pkg/deadline"
)

// SortKey selects the ordering applied to the flat list.
type SortKey int

const (
	// SortByDate orders records by canonical due date. Records whose date
	// text does not parse sort after everything else; ties keep their
	// original relative order.
	SortByDate SortKey = iota
)

// Filter carries the caller-owned view state. The engine itself holds none.
type Filter struct {
	Search string
	Sort   SortKey
}

// Views is the output consumed by the rendering layers.
type Views struct {
	ByCategory map[category.Category][]deadline.Record
	Flat       []deadline.Record
}

// Build applies the filter, sorts, then partitions. Every record in Flat appears
// in exactly one category bucket and bucket order matches Flat order.
func Build(records []deadline.Record, f Filter) Views {
	flat := make([]deadline.Record, 0, len(records))
	for _, r := range records {
		if matches(r, f.Search) {
			flat = append(flat, r)
		}
	}

	sortRecords(flat, f.Sort)

	byCategory := make(map[category.Category][]deadline.Record, len(category.All()))
	for _, r := range flat {
		c := category.Classify(r.Title, r.Description)
		byCategory[c] = append(byCategory[c], r)
	}

	return Views{ByCategory: byCategory, Flat: flat}
}

// matches reports whether the record passes the search filter. The search is
// a case-insensitive substring check against title, date text, and channel
// name; absent fields behave as empty strings.
func matches(r deadline.Record, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, field := range []string{r.Title, r.DateText, r.ChannelName} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func sortRecords(records []deadline.Record, key SortKey) {
	switch key {
	case SortByDate:
		sort.SliceStable(records, func(i, j int) bool {
			di, iOK := records[i].Due()
			dj, jOK := records[j].Due()
			switch {
			case iOK && jOK:
				return di.Before(dj)
			case iOK:
				return true
			default:
				return false
			}
		})
	}
}
