package catalog

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// RefreshPolicy decides when a Store re-reads its catalog file.
type RefreshPolicy string

const (
	// RefreshNone loads the catalog once and serves it until Reload is called.
	RefreshNone RefreshPolicy = "none"
	// RefreshTTL reloads on access once the snapshot is older than the TTL.
	RefreshTTL RefreshPolicy = "ttl"
	// RefreshWatch reloads when the file changes on disk (see Store.Watch).
	RefreshWatch RefreshPolicy = "watch"
)

// ParseRefreshPolicy validates a policy name.
func ParseRefreshPolicy(s string) (RefreshPolicy, error) {
	switch p := RefreshPolicy(s); p {
	case RefreshNone, RefreshTTL, RefreshWatch:
		return p, nil
	case "":
		return RefreshNone, nil
	default:
		return "", fmt.Errorf("unknown refresh policy %q (want none, ttl or watch)", s)
	}
}

// StoreConfig describes where a Store reads from and how it refreshes.
type StoreConfig struct {
	Path    string
	Options Options
	Refresh RefreshPolicy
	TTL     time.Duration
}

// Store holds the current catalog snapshot. Published snapshots are never
// mutated, so any number of readers may use them concurrently; a reload
// swaps in a fresh *Catalog.
type Store struct {
	cfg     StoreConfig
	logger  *zap.Logger
	current atomic.Pointer[Catalog]
	group   singleflight.Group

	now  func() time.Time
	load func(path string, opts Options) (*Catalog, error)
}

// NewStore creates a store. Nothing is read until the first Snapshot or Reload.
func NewStore(cfg StoreConfig, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Refresh == "" {
		cfg.Refresh = RefreshNone
	}
	if cfg.Options.Logger == nil {
		cfg.Options.Logger = logger
	}
	return &Store{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
		load:   Load,
	}
}

// NewStaticStore wraps an already parsed catalog. Reload re-publishes it.
func NewStaticStore(cat *Catalog) *Store {
	s := NewStore(StoreConfig{Refresh: RefreshNone}, nil)
	s.load = func(string, Options) (*Catalog, error) { return cat, nil }
	s.current.Store(cat)
	return s
}

// Path returns the catalog file path.
func (s *Store) Path() string { return s.cfg.Path }

// Current returns the published snapshot without loading; nil before the first load.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Snapshot returns the current catalog, loading it on first use and, under
// RefreshTTL, reloading a stale one. If a refresh fails the previous
// snapshot is kept and returned.
func (s *Store) Snapshot() (*Catalog, error) {
	cat := s.current.Load()
	if cat == nil {
		return s.Reload()
	}
	if s.cfg.Refresh == RefreshTTL && s.cfg.TTL > 0 && s.now().Sub(cat.LoadedAt) >= s.cfg.TTL {
		fresh, err := s.Reload()
		if err != nil {
			s.logger.Warn("catalog refresh failed, serving previous snapshot",
				zap.String("path", s.cfg.Path), zap.Error(err))
			return cat, nil
		}
		return fresh, nil
	}
	return cat, nil
}

// Reload re-reads the catalog file and publishes the result. Concurrent
// callers share a single read.
func (s *Store) Reload() (*Catalog, error) {
	v, err, shared := s.group.Do("reload", func() (interface{}, error) {
		start := s.now()
		cat, err := s.load(s.cfg.Path, s.cfg.Options)
		if err != nil {
			return nil, err
		}
		if cat != s.current.Load() {
			cat.LoadedAt = start
		}
		s.current.Store(cat)
		s.logger.Info("catalog snapshot published",
			zap.String("path", s.cfg.Path),
			zap.Int("rows", cat.Len()),
			zap.Duration("took", s.now().Sub(start)))
		return cat, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("catalog reload shared with concurrent caller")
	}
	return v.(*Catalog), nil
}
