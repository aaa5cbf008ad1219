package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/ryansoe/eventory/pkg/deadline"
)

const bucket = "deadlines"

// Persistence is the offline cache of the last fetched deadline collection.
// Records are replaced wholesale on every refresh; no cross-fetch identity is
// kept.
type Persistence interface {
	List(ctx context.Context) []deadline.Record
	Get(ctx context.Context, id string) (deadline.Record, bool)
	Replace(records []deadline.Record) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (deadline.Record, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return deadline.Record{}, err
	}
	var r deadline.Record
	if err := json.Unmarshal(val, &r); err != nil {
		return deadline.Record{}, err
	}
	if r.ID == "" {
		r.ID = keyToPathTransform(key).FileName
	}
	return r, nil
}

func (p *persistence) List(ctx context.Context) []deadline.Record {
	all := make([]deadline.Record, 0)
	for key := range p.d.Keys(ctx.Done()) {
		r, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, r)
	}
	// Stable cache order; views re-sort for display.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})
	return all
}

func (p *persistence) Get(ctx context.Context, id string) (deadline.Record, bool) {
	r, err := p.read(toKey(id))
	if err != nil {
		return deadline.Record{}, false
	}
	return r, true
}

// Replace swaps the cached collection for the given records.
func (p *persistence) Replace(records []deadline.Record) error {
	stale := make([]string, 0)
	for key := range p.d.Keys(nil) {
		stale = append(stale, key)
	}
	for _, key := range stale {
		if err := p.d.Erase(key); err != nil {
			return fmt.Errorf("store: erase %s: %w", key, err)
		}
	}

	for _, r := range records {
		if r.ID == "" {
			continue
		}
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("store: marshal %s: %w", r.ID, err)
		}
		if err := p.d.Write(toKey(r.ID), data); err != nil {
			return fmt.Errorf("store: write %s: %w", r.ID, err)
		}
	}
	return nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s/%s", strings.Join(pathKey.Path, "/"), pathKey.FileName)
}

func toKey(id string) string {
	return fmt.Sprintf("%s/%s", bucket, id)
}
