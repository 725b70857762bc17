package db

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// Migrate applies migrations and seed files. It creates a `schema_migrations`
// table to track what has been applied and runs, in name order, every SQL file
// under `migrations/<dialect>/` in migrationFS and then every SQL file under
// `seed/` in seedFS that has not yet been recorded. Each file is applied at
// most once.
func Migrate(ctx context.Context, d *DB, migrationFS fs.FS, seedFS fs.FS) error {
	if _, err := d.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied BIGINT NOT NULL)`); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}

	migDir := path.Join("migrations", d.Dialect().Name)
	if err := applyDir(ctx, d, migrationFS, migDir, ""); err != nil {
		return err
	}

	if seedFS == nil {
		return nil
	}
	// seeds share the version table, prefixed so they cannot collide with
	// migration names
	return applyDir(ctx, d, seedFS, "seed", "seed/")
}

func applyDir(ctx context.Context, d *DB, fsys fs.FS, dir, prefix string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read %s dir: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(strings.ToLower(name), ".sql") {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	dialect := d.Dialect()
	for _, fname := range files {
		version := prefix + strings.TrimSuffix(fname, path.Ext(fname))

		var count int
		row := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations WHERE version = `+dialect.Bindvar(1), version)
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("scan applied count for %s: %w", version, err)
		}
		if count > 0 {
			continue
		}

		b, err := fs.ReadFile(fsys, path.Join(dir, fname))
		if err != nil {
			return fmt.Errorf("read %s: %w", fname, err)
		}
		if _, err := d.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("exec %s: %w", fname, err)
		}

		if _, err := d.Exec(ctx, `INSERT INTO schema_migrations (version, applied) VALUES (`+dialect.Bindvar(1)+`, `+dialect.Bindvar(2)+`)`, version, time.Now().UTC().Unix()); err != nil {
			return fmt.Errorf("record %s: %w", version, err)
		}
	}

	return nil
}
