package app

import (
	"context"
	"errors"

	"github.com/ryansoe/eventory/pkg/api"
	"github.com/ryansoe/eventory/pkg/deadline"
	"github.com/ryansoe/eventory/pkg/store"
)

// Fetcher is the slice of the API client the service needs.
type Fetcher interface {
	AllDeadlines(ctx context.Context) ([]deadline.Record, error)
	Deadline(ctx context.Context, id string) (deadline.Record, error)
}

// Service provides high-level operations over the cache and the API so the
// CLI runners and the TUI share logic.
type Service struct {
	Persistence store.Persistence
	Client      Fetcher
}

// Refresh pulls the full collection from the API and replaces the cache.
// It returns the number of records fetched.
func (s *Service) Refresh(ctx context.Context) (int, error) {
	if s.Client == nil {
		return 0, errors.New("app: no API client configured")
	}
	records, err := s.Client.AllDeadlines(ctx)
	if err != nil {
		return 0, err
	}
	if s.Persistence != nil {
		if err := s.Persistence.Replace(records); err != nil {
			return 0, err
		}
	}
	return len(records), nil
}

// Records returns the collection to display. Demo mode uses the bundled
// sample dataset; otherwise the cache is served, falling back to a live fetch
// (which also primes the cache) when the cache is empty.
func (s *Service) Records(ctx context.Context, demo bool) ([]deadline.Record, error) {
	if demo {
		return api.Sample(), nil
	}
	if s.Persistence != nil {
		if cached := s.Persistence.List(ctx); len(cached) > 0 {
			return cached, nil
		}
	}
	if s.Client == nil {
		return nil, errors.New("app: cache is empty and no API client configured")
	}
	if _, err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	if s.Persistence != nil {
		return s.Persistence.List(ctx), nil
	}
	return s.Client.AllDeadlines(ctx)
}

// Deadline resolves a single record, preferring the cache.
func (s *Service) Deadline(ctx context.Context, id string) (deadline.Record, error) {
	if s.Persistence != nil {
		if r, ok := s.Persistence.Get(ctx, id); ok {
			return r, nil
		}
	}
	if s.Client == nil {
		return deadline.Record{}, errors.New("app: deadline not cached and no API client configured")
	}
	return s.Client.Deadline(ctx, id)
}

// Watch subscribes to cache change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}
