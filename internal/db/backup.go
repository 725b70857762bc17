package db

import (
	"context"
	"errors"
	"fmt"
)

// ErrBackupUnsupported is returned by Backup for engines that are backed up
// with their own tooling (pg_dump for PostgreSQL).
var ErrBackupUnsupported = errors.New("backup not supported for this driver")

// Backup writes a consistent copy of a SQLite database to dst, which must
// not exist yet. It is safe to run while the server is serving requests.
func (db *DB) Backup(ctx context.Context, dst string) error {
	if db.dialect.Name != DriverSQLite {
		return fmt.Errorf("%w: %s", ErrBackupUnsupported, db.dialect.Name)
	}
	if _, err := db.Exec(ctx, `VACUUM INTO ?`, dst); err != nil {
		return fmt.Errorf("vacuum into %s: %w", dst, err)
	}
	return nil
}
