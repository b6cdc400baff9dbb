package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/industrialist/evemargin/internal/model"
)

//go:embed schema.json
var schemaJSON string

var recipeSchema = jsonschema.MustCompileString("recipes/schema.json", schemaJSON)

// FileSource serves recipes from a JSON dataset loaded once at
// construction. Safe for concurrent readers; never mutated after
// Load.
type FileSource struct {
	byName map[string]record
}

// LoadFile reads, validates, and indexes a recipes.json dataset.
// Validation failures carry the schema error so a malformed dataset
// is caught at startup rather than at first lookup.
func LoadFile(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipe dataset: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse recipe dataset: %w", err)
	}
	if err := recipeSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate recipe dataset %s: %w", path, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode recipe dataset: %w", err)
	}

	byName := make(map[string]record, len(records))
	for _, rec := range records {
		if _, exists := byName[rec.Name]; exists {
			// First entry wins, matching lookup-by-scan semantics.
			continue
		}
		byName[rec.Name] = rec
	}

	return &FileSource{byName: byName}, nil
}

// Recipe looks up a recipe by name.
func (s *FileSource) Recipe(ctx context.Context, name string) (model.Recipe, error) {
	rec, ok := s.byName[name]
	if !ok {
		return model.Recipe{}, fmt.Errorf("recipe %q: %w", name, ErrNotFound)
	}
	return rec.toRecipe(), nil
}

// PIRecipe looks up a planetary recipe by name. Fails with
// ErrUnknownItem when the entry carries no commodity tiers.
func (s *FileSource) PIRecipe(ctx context.Context, name string) (model.PIRecipe, error) {
	rec, ok := s.byName[name]
	if !ok {
		return model.PIRecipe{}, fmt.Errorf("recipe %q: %w", name, ErrNotFound)
	}
	return rec.toPIRecipe()
}

// Len returns the number of distinct recipes loaded.
func (s *FileSource) Len() int {
	return len(s.byName)
}
