package cache

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"rompdb/internal/config"
)

// Service keeps the cached table current while the data directory is
// being edited: filesystem events are debounced, then the cache is
// re-checked and rebuilt when the fingerprint moved.
type Service struct {
	cache *Cache
	cfg   config.Config
}

func NewService(cache *Cache, cfg config.Config) *Service {
	return &Service{cache: cache, cfg: cfg}
}

func (s *Service) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(s.cfg.DataDir); err != nil {
		return err
	}

	if err := s.refresh(); err != nil {
		return err
	}

	debounce := time.Duration(s.cfg.WatchDebounceSec) * time.Second
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isWorkbook(event.Name) {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Printf("watch error: %v\n", err)
		case <-timer.C:
			if err := s.refresh(); err != nil {
				fmt.Printf("watch rebuild error: %v\n", err)
			}
		}
	}
}

func (s *Service) refresh() error {
	_, stats, rebuilt, err := s.cache.Get()
	if err != nil {
		return err
	}
	if rebuilt {
		fmt.Printf("watch rebuild done files=%d rows=%d dropped=%d\n", stats.Files, stats.Rows, stats.TotalDropped())
	}
	return nil
}

func isWorkbook(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".xlsx")
}
