package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/industrialist/evemargin/internal/model"
)

var (
	// ErrNotFound is returned when no recipe matches the requested
	// name. Not retried; surfaced to the caller.
	ErrNotFound = errors.New("recipe not found")

	// ErrUnknownItem is returned when a dataset entry lacks a field
	// the requested context needs, e.g. a planetary recipe whose
	// items carry no commodity tier.
	ErrUnknownItem = errors.New("unknown item")
)

// Source resolves recipe names against the static dataset.
type Source interface {
	Recipe(ctx context.Context, name string) (model.Recipe, error)
	PIRecipe(ctx context.Context, name string) (model.PIRecipe, error)
}

// record is one dataset entry, shared by the file and database
// sources.
type record struct {
	Name        string             `json:"name"`
	TypeID      int32              `json:"type_id"`
	PITier      *int               `json:"pi_tier,omitempty"`
	Ingredients []ingredientRecord `json:"ingredients"`
}

type ingredientRecord struct {
	Name   string `json:"name,omitempty"`
	TypeID int32  `json:"type_id"`
	Amount int64  `json:"amount"`
	PITier *int   `json:"pi_tier,omitempty"`
}

func (r record) toRecipe() model.Recipe {
	ingredients := make([]model.Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = model.Ingredient{
			Item:     model.Item{TypeID: ing.TypeID, Name: ing.Name},
			Quantity: ing.Amount,
		}
	}
	return model.Recipe{
		Product:     model.Item{TypeID: r.TypeID, Name: r.Name},
		Ingredients: ingredients,
	}
}

func (r record) toPIRecipe() (model.PIRecipe, error) {
	if r.PITier == nil {
		return model.PIRecipe{}, fmt.Errorf("recipe %q has no pi tier: %w", r.Name, ErrUnknownItem)
	}

	pi := model.PIRecipe{
		Product: model.PlanetaryItem{
			Item: model.Item{TypeID: r.TypeID, Name: r.Name},
			Tier: *r.PITier,
		},
		Ingredients: make([]model.PIIngredient, len(r.Ingredients)),
	}

	for i, ing := range r.Ingredients {
		if ing.PITier == nil {
			return model.PIRecipe{}, fmt.Errorf("ingredient %q of recipe %q has no pi tier: %w", ing.Name, r.Name, ErrUnknownItem)
		}
		pi.Ingredients[i] = model.PIIngredient{
			PlanetaryItem: model.PlanetaryItem{
				Item: model.Item{TypeID: ing.TypeID, Name: ing.Name},
				Tier: *ing.PITier,
			},
			Quantity: ing.Amount,
		}
	}

	return pi, nil
}
