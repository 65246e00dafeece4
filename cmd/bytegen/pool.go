package main

import (
	"context"
	"log"

	"github.com/pkg/errors"

	"github.com/funvibe/bytegen/internal/config"
	"github.com/funvibe/bytegen/internal/protosource"
	"github.com/funvibe/bytegen/internal/typepool"
)

// buildPool loads every source named by cfg. The SQLite database is read
// first so YAML and proto sources can refer to its types.
func buildPool(ctx context.Context, cfg *config.Config) (*typepool.Pool, error) {
	pool := typepool.New()

	if cfg.Sources.SQLite != "" {
		path := cfg.Resolve(cfg.Sources.SQLite)
		entries, err := typepool.LoadSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		if err := pool.Load(entries); err != nil {
			return nil, errors.Wrap(err, path)
		}
		debugf("loaded %d types from %s", len(entries), path)
	}

	for _, p := range cfg.Sources.Types {
		path := cfg.Resolve(p)
		entries, err := typepool.LoadYAML(path)
		if err != nil {
			return nil, err
		}
		if err := pool.Load(entries); err != nil {
			return nil, errors.Wrap(err, path)
		}
		debugf("loaded %d types from %s", len(entries), path)
	}

	if len(cfg.Sources.Proto) > 0 {
		entries, err := protosource.Load(cfg.ProtoImportPaths(), cfg.Sources.Proto, pool)
		if err != nil {
			return nil, err
		}
		if err := pool.Load(entries); err != nil {
			return nil, errors.Wrap(err, "proto sources")
		}
		debugf("loaded %d types from %d proto files", len(entries), len(cfg.Sources.Proto))
	}

	return pool, nil
}

// sourcePaths lists the files a pool built from cfg depends on
func sourcePaths(cfg *config.Config) []string {
	var paths []string
	if cfg.Sources.SQLite != "" {
		paths = append(paths, cfg.Resolve(cfg.Sources.SQLite))
	}
	for _, p := range cfg.Sources.Types {
		paths = append(paths, cfg.Resolve(p))
	}
	imports := cfg.ProtoImportPaths()
	for _, p := range cfg.Sources.Proto {
		paths = append(paths, protoPath(imports, p))
	}
	return paths
}

func debugf(format string, args ...any) {
	if config.IsDebugMode {
		log.Printf(format, args...)
	}
}
