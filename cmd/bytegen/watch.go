package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long a burst of events must be quiet before a reload
const settle = 200 * time.Millisecond

// protoPath finds a proto file relative to the first import path holding it
func protoPath(imports []string, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	for _, dir := range imports {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return filepath.Join(imports[0], name)
}

// watch rebuilds the pool whenever one of its sources or the config file
// changes, until ctx is done. Directories are watched rather than files so
// editors that replace files on save keep triggering events. The watched
// set follows the config: sources it gains after a reload are picked up.
func (s *session) watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	t := &tracker{w: w, dirs: make(map[string]bool)}
	s.refresh(ctx, t)
	if len(t.files) == 0 {
		log.Printf("no sources configured, nothing to watch")
		return nil
	}

	var timer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !t.files[ev.Name] || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debugf("%s: %s", ev.Op, ev.Name)
			timer = time.After(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		case <-timer:
			timer = nil
			s.refresh(ctx, t)
		}
	}
}

// tracker holds the files a watch reacts to and the directories
// registered with the watcher
type tracker struct {
	w     *fsnotify.Watcher
	files map[string]bool
	dirs  map[string]bool
}

// track makes the watched set match paths
func (t *tracker) track(paths []string) {
	t.files = make(map[string]bool, len(paths))
	for _, f := range paths {
		abs, err := filepath.Abs(f)
		if err != nil {
			log.Printf("%v", err)
			continue
		}
		t.files[abs] = true
		dir := filepath.Dir(abs)
		if t.dirs[dir] {
			continue
		}
		if err := t.w.Add(dir); err != nil {
			log.Printf("watching %s: %v", dir, err)
			continue
		}
		t.dirs[dir] = true
		debugf("watching %s", dir)
	}
}

// refresh reloads and re-registers the sources of the current config
func (s *session) refresh(ctx context.Context, t *tracker) {
	ok := s.reload(ctx)
	paths := sourcePaths(s.cfg)
	if s.cfgPath != "" {
		paths = append(paths, s.cfgPath)
	}
	t.track(paths)
	if ok && s.reloaded != nil {
		s.reloaded(s.pool)
	}
}

func (s *session) reload(ctx context.Context) bool {
	if s.cfgPath != "" {
		cfg, err := loadConfig(s.cfgPath)
		if err != nil {
			log.Printf("%v", err)
			return false
		}
		s.cfg = cfg
	}
	pool, err := buildPool(ctx, s.cfg)
	if err != nil {
		log.Printf("%v", err)
		return false
	}
	s.pool = pool
	log.Printf("type pool ready: %d types", pool.Len())
	return true
}
