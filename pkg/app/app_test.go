package app

import (
	"context"
	"errors"
	"testing"

	"github.com/ryansoe/eventory/pkg/deadline"
	"github.com/ryansoe/eventory/pkg/store"
)

type fakePersistence struct {
	records []deadline.Record
}

func (f *fakePersistence) List(ctx context.Context) []deadline.Record {
	return f.records
}

func (f *fakePersistence) Get(ctx context.Context, id string) (deadline.Record, bool) {
	for _, r := range f.records {
		if r.ID == id {
			return r, true
		}
	}
	return deadline.Record{}, false
}

func (f *fakePersistence) Replace(records []deadline.Record) error {
	f.records = records
	return nil
}

func (f *fakePersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

type fakeFetcher struct {
	records []deadline.Record
	err     error
	calls   int
}

func (f *fakeFetcher) AllDeadlines(ctx context.Context) ([]deadline.Record, error) {
	f.calls++
	return f.records, f.err
}

func (f *fakeFetcher) Deadline(ctx context.Context, id string) (deadline.Record, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return deadline.Record{}, errors.New("not found")
}

func TestRefreshReplacesCache(t *testing.T) {
	p := &fakePersistence{records: []deadline.Record{{ID: "stale"}}}
	f := &fakeFetcher{records: []deadline.Record{{ID: "1"}, {ID: "2"}}}
	s := &Service{Persistence: p, Client: f}

	n, err := s.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 fetched, got %d", n)
	}
	if len(p.records) != 2 || p.records[0].ID != "1" {
		t.Fatalf("cache not replaced: %v", p.records)
	}
}

func TestRecordsPrefersCache(t *testing.T) {
	p := &fakePersistence{records: []deadline.Record{{ID: "cached"}}}
	f := &fakeFetcher{records: []deadline.Record{{ID: "live"}}}
	s := &Service{Persistence: p, Client: f}

	records, err := s.Records(context.Background(), false)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(records) != 1 || records[0].ID != "cached" {
		t.Fatalf("expected cached records, got %v", records)
	}
	if f.calls != 0 {
		t.Fatalf("API should not be hit when cache is warm")
	}
}

func TestRecordsFetchesWhenCacheEmpty(t *testing.T) {
	p := &fakePersistence{}
	f := &fakeFetcher{records: []deadline.Record{{ID: "live"}}}
	s := &Service{Persistence: p, Client: f}

	records, err := s.Records(context.Background(), false)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(records) != 1 || records[0].ID != "live" {
		t.Fatalf("expected live fetch, got %v", records)
	}
	if len(p.records) != 1 {
		t.Fatalf("live fetch should prime the cache")
	}
}

func TestRecordsDemo(t *testing.T) {
	s := &Service{}
	records, err := s.Records(context.Background(), true)
	if err != nil {
		t.Fatalf("Records demo: %v", err)
	}
	if len(records) == 0 {
		t.Fatalf("demo dataset should not be empty")
	}
}

func TestDeadlineFallsBackToAPI(t *testing.T) {
	p := &fakePersistence{}
	f := &fakeFetcher{records: []deadline.Record{{ID: "x", Title: "From API"}}}
	s := &Service{Persistence: p, Client: f}

	r, err := s.Deadline(context.Background(), "x")
	if err != nil {
		t.Fatalf("Deadline: %v", err)
	}
	if r.Title != "From API" {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestRefreshPropagatesError(t *testing.T) {
	s := &Service{Persistence: &fakePersistence{}, Client: &fakeFetcher{err: errors.New("down")}}
	if _, err := s.Refresh(context.Background()); err == nil {
		t.Fatalf("expected fetch error to propagate")
	}
}
