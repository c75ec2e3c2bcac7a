package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Default category catalog, seeded once on an empty database.
var seedCategories = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}

// CreateSchema creates the trivia tables if they do not exist and seeds the
// category catalog when it is empty.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id   SERIAL PRIMARY KEY,
			type TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			id         SERIAL PRIMARY KEY,
			question   TEXT NOT NULL,
			answer     TEXT NOT NULL,
			category   INTEGER REFERENCES categories(id),
			difficulty INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, category := range seedCategories {
		if _, err := pool.Exec(ctx, `INSERT INTO categories (type) VALUES ($1)`, category); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", category, err)
		}
	}

	return nil
}
