// Package catalog resolves recipe names against the static dataset.
//
// Two sources implement the same lookup: FileSource reads a
// recipes.json file validated against an embedded JSON Schema, Store
// reads the recipes and recipe_ingredients tables from Postgres.
// Unknown names fail fast with ErrNotFound.
package catalog
