package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alii-alqassab/graphql/internal/client/migrations"
	"github.com/alii-alqassab/graphql/internal/client/repositories/session"
	"github.com/pressly/goose/v3"
)

// Repositories bundles the local stores backed by the client database.
type Repositories struct {
	DB      *sql.DB
	Session session.Repository
}

// gooseUpContext is a seam for testing RunMigrations.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return gooseUpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the local sqlite database at dsn,
// migrates it, and returns the repositories bound to it. The caller owns
// closing Repositories.DB.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		DB:      db,
		Session: session.NewSQLiteRepository(db),
	}, nil
}
