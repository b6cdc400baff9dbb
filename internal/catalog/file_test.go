package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testDataset = `[
  {
    "name": "Wetware Mainframe",
    "type_id": 2876,
    "pi_tier": 4,
    "ingredients": [
      {"name": "Supercomputers", "type_id": 2872, "amount": 6, "pi_tier": 3},
      {"name": "Biotech Research Reports", "type_id": 2358, "amount": 6, "pi_tier": 3},
      {"name": "Cryoprotectant Solution", "type_id": 9838, "amount": 6, "pi_tier": 3}
    ]
  },
  {
    "name": "Antimatter Reactor Unit",
    "type_id": 11549,
    "ingredients": [
      {"name": "Morphite", "type_id": 11399, "amount": 4},
      {"name": "Fullerides", "type_id": 16679, "amount": 10}
    ]
  }
]`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	src, err := LoadFile(writeDataset(t, testDataset))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if src.Len() != 2 {
		t.Errorf("Len() = %d, want 2", src.Len())
	}

	r, err := src.Recipe(context.Background(), "Antimatter Reactor Unit")
	if err != nil {
		t.Fatalf("Recipe failed: %v", err)
	}
	if r.Product.TypeID != 11549 {
		t.Errorf("Product.TypeID = %d, want 11549", r.Product.TypeID)
	}
	if len(r.Ingredients) != 2 {
		t.Fatalf("len(Ingredients) = %d, want 2", len(r.Ingredients))
	}
	if r.Ingredients[1].Name != "Fullerides" || r.Ingredients[1].Quantity != 10 {
		t.Errorf("Ingredients[1] = %+v, want Fullerides x10", r.Ingredients[1])
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("LoadFile should fail for a missing file")
	}
}

func TestLoadFileSchemaViolation(t *testing.T) {
	tests := []struct {
		name    string
		dataset string
	}{
		{"missing type_id", `[{"name": "X", "ingredients": []}]`},
		{"zero amount", `[{"name": "X", "type_id": 1, "ingredients": [{"type_id": 2, "amount": 0}]}]`},
		{"tier out of range", `[{"name": "X", "type_id": 1, "pi_tier": 9, "ingredients": []}]`},
		{"not an array", `{"name": "X"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeDataset(t, tt.dataset))
			if err == nil {
				t.Fatal("LoadFile should reject an invalid dataset")
			}
			if !strings.Contains(err.Error(), "recipe dataset") {
				t.Errorf("error %q should identify the dataset", err)
			}
		})
	}
}

func TestRecipeNotFound(t *testing.T) {
	src, err := LoadFile(writeDataset(t, testDataset))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	_, err = src.Recipe(context.Background(), "Titan")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), "Titan") {
		t.Errorf("error %q should name the missing recipe", err)
	}
}

func TestPIRecipe(t *testing.T) {
	src, err := LoadFile(writeDataset(t, testDataset))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	t.Run("with tiers", func(t *testing.T) {
		pi, err := src.PIRecipe(context.Background(), "Wetware Mainframe")
		if err != nil {
			t.Fatalf("PIRecipe failed: %v", err)
		}
		if pi.Product.Tier != 4 {
			t.Errorf("Product.Tier = %d, want 4", pi.Product.Tier)
		}
		if pi.Product.BaseValue() != 1_200_000 {
			t.Errorf("Product.BaseValue() = %v, want 1200000", pi.Product.BaseValue())
		}
		if len(pi.Ingredients) != 3 {
			t.Fatalf("len(Ingredients) = %d, want 3", len(pi.Ingredients))
		}
		if pi.Ingredients[0].Tier != 3 {
			t.Errorf("Ingredients[0].Tier = %d, want 3", pi.Ingredients[0].Tier)
		}
	})

	t.Run("without tiers", func(t *testing.T) {
		_, err := src.PIRecipe(context.Background(), "Antimatter Reactor Unit")
		if !errors.Is(err, ErrUnknownItem) {
			t.Errorf("error = %v, want ErrUnknownItem for a recipe without tiers", err)
		}
	})
}

func TestLoadFileDuplicateNames(t *testing.T) {
	dataset := `[
	  {"name": "X", "type_id": 1, "ingredients": []},
	  {"name": "X", "type_id": 2, "ingredients": []}
	]`
	src, err := LoadFile(writeDataset(t, dataset))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	r, err := src.Recipe(context.Background(), "X")
	if err != nil {
		t.Fatalf("Recipe failed: %v", err)
	}
	if r.Product.TypeID != 1 {
		t.Errorf("Product.TypeID = %d, want 1 (first entry wins)", r.Product.TypeID)
	}
}
