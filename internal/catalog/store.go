package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/industrialist/evemargin/internal/model"
)

// Store reads the recipe dataset from Postgres.
//
// Schema:
//
//	recipes(name text primary key, type_id int not null, pi_tier int)
//	recipe_ingredients(recipe_name text references recipes,
//	    name text, type_id int not null, amount bigint not null,
//	    pi_tier int)
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a Store over an existing connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Recipe looks up a recipe by name.
func (s *Store) Recipe(ctx context.Context, name string) (model.Recipe, error) {
	rec, err := s.load(ctx, name)
	if err != nil {
		return model.Recipe{}, err
	}
	return rec.toRecipe(), nil
}

// PIRecipe looks up a planetary recipe by name.
func (s *Store) PIRecipe(ctx context.Context, name string) (model.PIRecipe, error) {
	rec, err := s.load(ctx, name)
	if err != nil {
		return model.PIRecipe{}, err
	}
	return rec.toPIRecipe()
}

func (s *Store) load(ctx context.Context, name string) (record, error) {
	var rec record

	row := s.pool.QueryRow(ctx,
		`SELECT name, type_id, pi_tier FROM recipes WHERE name = $1`,
		name,
	)
	if err := row.Scan(&rec.Name, &rec.TypeID, &rec.PITier); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return record{}, fmt.Errorf("recipe %q: %w", name, ErrNotFound)
		}
		return record{}, fmt.Errorf("query recipe %q: %w", name, err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT COALESCE(name, ''), type_id, amount, pi_tier
		 FROM recipe_ingredients
		 WHERE recipe_name = $1
		 ORDER BY type_id`,
		name,
	)
	if err != nil {
		return record{}, fmt.Errorf("query ingredients of %q: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var ing ingredientRecord
		if err := rows.Scan(&ing.Name, &ing.TypeID, &ing.Amount, &ing.PITier); err != nil {
			return record{}, fmt.Errorf("scan ingredient of %q: %w", name, err)
		}
		rec.Ingredients = append(rec.Ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return record{}, fmt.Errorf("read ingredients of %q: %w", name, err)
	}

	return rec, nil
}
