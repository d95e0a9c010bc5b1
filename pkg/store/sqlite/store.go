// Package sqlite provides a food.Store on SQLite using the pure Go
// modernc.org/sqlite driver. Foods and their salads live in two tables;
// salad order is the insertion order.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	_ "modernc.org/sqlite"

	"github.com/mealtrack/food-api/pkg/food"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const schema = `
    PRAGMA foreign_keys = ON;

    CREATE TABLE IF NOT EXISTS foods (
        id TEXT PRIMARY KEY,
        name TEXT NOT NULL,
        meal TEXT NOT NULL,
        timestamp INTEGER NOT NULL
    );

    CREATE TABLE IF NOT EXISTS salads (
        seq INTEGER PRIMARY KEY AUTOINCREMENT,
        id TEXT NOT NULL,
        food_id TEXT NOT NULL,
        name TEXT NOT NULL,
        dressing TEXT NOT NULL DEFAULT '',
        timestamp INTEGER NOT NULL,
        FOREIGN KEY (food_id) REFERENCES foods(id) ON DELETE CASCADE
    );

    CREATE INDEX IF NOT EXISTS idx_salads_food_id ON salads(food_id);
    `

// Store is a SQLite backed food.Store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps :memory: databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *Store) Insert(ctx context.Context, f *food.Food) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
        INSERT INTO foods (id, name, meal, timestamp)
        VALUES (?, ?, ?, ?)
    `, f.ID.Hex(), f.Name, f.Meal, f.Timestamp.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert food: %w", err)
	}

	for _, salad := range f.Salads {
		if err := insertSalad(ctx, tx, f.ID, salad); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (*food.Food, error) {
	f := &food.Food{ID: id}
	var ts int64

	err := s.db.QueryRowContext(ctx, `
        SELECT name, meal, timestamp FROM foods WHERE id = ?
    `, id.Hex()).Scan(&f.Name, &f.Meal, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, food.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query food: %w", err)
	}
	f.Timestamp = time.UnixMilli(ts).UTC()

	rows, err := s.db.QueryContext(ctx, `
        SELECT id, name, dressing, timestamp FROM salads
        WHERE food_id = ?
        ORDER BY seq
    `, id.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to query salads: %w", err)
	}
	defer rows.Close()

	f.Salads = []food.Salad{}
	for rows.Next() {
		var (
			salad   food.Salad
			saladID string
			saladTS int64
		)
		if err := rows.Scan(&saladID, &salad.Name, &salad.Dressing, &saladTS); err != nil {
			return nil, fmt.Errorf("failed to scan salad: %w", err)
		}
		if salad.ID, err = primitive.ObjectIDFromHex(saladID); err != nil {
			return nil, fmt.Errorf("invalid salad id %q: %w", saladID, err)
		}
		salad.Timestamp = time.UnixMilli(saladTS).UTC()
		f.Salads = append(f.Salads, salad)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read salads: %w", err)
	}

	return f, nil
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, patch food.FoodPatch) (*food.Food, error) {
	res, err := s.db.ExecContext(ctx, `
        UPDATE foods
        SET name = COALESCE(?, name), meal = COALESCE(?, meal)
        WHERE id = ?
    `, nullable(patch.Name), nullable(patch.Meal), id.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to update food: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read update result: %w", err)
	}
	if n == 0 {
		return nil, food.ErrNotFound
	}

	return s.Get(ctx, id)
}

func (s *Store) AppendSalad(ctx context.Context, id primitive.ObjectID, salad food.Salad) error {
	return insertSalad(ctx, s.db, id, salad)
}

// nullable maps a nil pointer to SQL NULL.
func nullable(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// insertSalad inserts salad only if its parent food exists.
func insertSalad(ctx context.Context, db execer, foodID primitive.ObjectID, salad food.Salad) error {
	res, err := db.ExecContext(ctx, `
        INSERT INTO salads (id, food_id, name, dressing, timestamp)
        SELECT ?, id, ?, ?, ? FROM foods WHERE id = ?
    `, salad.ID.Hex(), salad.Name, salad.Dressing, salad.Timestamp.UnixMilli(), foodID.Hex())
	if err != nil {
		return fmt.Errorf("failed to insert salad: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read insert result: %w", err)
	}
	if n == 0 {
		return food.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM salads`); err != nil {
		return 0, fmt.Errorf("failed to delete salads: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM foods`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete foods: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read delete result: %w", err)
	}

	return n, tx.Commit()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close(context.Context) error {
	return s.db.Close()
}
