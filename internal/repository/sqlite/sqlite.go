// Package sqlite implements the domain repositories on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/msomdec/recipe-hub/internal/repository/sqlite/migrations"
)

// DB wraps the SQLite connection and hands out repositories bound to it.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// SQLite allows a single writer; serialize access through one connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies all unapplied schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.SqlDB)
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}

// Users returns a user repository bound to this database.
func (db *DB) Users() *UserRepository {
	return &UserRepository{db: db.SqlDB}
}

// Categories returns a category repository bound to this database.
func (db *DB) Categories() *CategoryRepository {
	return &CategoryRepository{db: db.SqlDB}
}

// Recipes returns a recipe repository bound to this database.
func (db *DB) Recipes() *RecipeRepository {
	return &RecipeRepository{db: db.SqlDB}
}

// Favorites returns a favorite repository bound to this database.
func (db *DB) Favorites() *FavoriteRepository {
	return &FavoriteRepository{db: db.SqlDB}
}

// Notes returns a note repository bound to this database.
func (db *DB) Notes() *NoteRepository {
	return &NoteRepository{db: db.SqlDB}
}
