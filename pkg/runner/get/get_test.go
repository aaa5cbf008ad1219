package get

import (
	"testing"
	"time"

	"github.com/ryansoe/eventory/pkg/deadline"
)

func TestDueWithin(t *testing.T) {
	now := time.Date(2025, time.May, 10, 14, 0, 0, 0, time.UTC)
	records := []deadline.Record{
		{ID: "1", Title: "Past", DateText: "May 1st 2025"},
		{ID: "2", Title: "Today", DateText: "May 10th 2025"},
		{ID: "3", Title: "This week", DateText: "May 14th 2025"},
		{ID: "4", Title: "Next month", DateText: "June 20th 2025"},
		{ID: "5", Title: "Undated", DateText: "TBD"},
	}

	kept := dueWithin(records, now, 7*24*time.Hour)

	if len(kept) != 2 {
		t.Fatalf("expected 2 records, got %d", len(kept))
	}
	if kept[0].ID != "2" || kept[1].ID != "3" {
		t.Errorf("unexpected records kept: %q, %q", kept[0].ID, kept[1].ID)
	}
}

func TestDueWithinKeepsInputOrder(t *testing.T) {
	now := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	records := []deadline.Record{
		{ID: "b", Title: "Later", DateText: "May 12 2025"},
		{ID: "a", Title: "Sooner", DateText: "May 11 2025"},
	}

	kept := dueWithin(records, now, 7*24*time.Hour)

	if len(kept) != 2 || kept[0].ID != "b" || kept[1].ID != "a" {
		t.Fatalf("expected input order preserved, got %v", kept)
	}
}
