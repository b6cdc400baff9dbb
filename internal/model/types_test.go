package model

import "testing"

func TestItemEqual(t *testing.T) {
	t.Run("same type id", func(t *testing.T) {
		a := Item{TypeID: 2876, Name: "Wetware Mainframe"}
		b := Item{TypeID: 2876, Name: "renamed"}
		if !a.Equal(b) {
			t.Error("items with equal TypeID should be equal regardless of name")
		}
	})

	t.Run("different type id", func(t *testing.T) {
		a := Item{TypeID: 2876, Name: "Wetware Mainframe"}
		b := Item{TypeID: 2867, Name: "Wetware Mainframe"}
		if a.Equal(b) {
			t.Error("items with different TypeID should not be equal")
		}
	})
}

func TestPlanetaryItemBaseValue(t *testing.T) {
	tests := []struct {
		tier int
		want float64
	}{
		{0, 5},
		{1, 400},
		{2, 7_200},
		{3, 60_000},
		{4, 1_200_000},
		{5, 0},  // unknown tier
		{-1, 0}, // unknown tier
	}

	for _, tt := range tests {
		p := PlanetaryItem{Item: Item{TypeID: 1}, Tier: tt.tier}
		if got := p.BaseValue(); got != tt.want {
			t.Errorf("tier %d: BaseValue() = %v, want %v", tt.tier, got, tt.want)
		}
	}
}

func TestPIRecipeRecipe(t *testing.T) {
	pi := PIRecipe{
		Product: PlanetaryItem{Item: Item{TypeID: 2876, Name: "Wetware Mainframe"}, Tier: 4},
		Ingredients: []PIIngredient{
			{PlanetaryItem: PlanetaryItem{Item: Item{TypeID: 2872, Name: "Supercomputers"}, Tier: 3}, Quantity: 6},
			{PlanetaryItem: PlanetaryItem{Item: Item{TypeID: 2358, Name: "Biotech Research Reports"}, Tier: 3}, Quantity: 6},
		},
	}

	r := pi.Recipe()

	if r.Product.TypeID != 2876 {
		t.Errorf("Product.TypeID = %d, want %d", r.Product.TypeID, 2876)
	}
	if len(r.Ingredients) != 2 {
		t.Fatalf("len(Ingredients) = %d, want %d", len(r.Ingredients), 2)
	}
	if r.Ingredients[0].TypeID != 2872 || r.Ingredients[0].Quantity != 6 {
		t.Errorf("Ingredients[0] = %+v, want TypeID 2872 qty 6", r.Ingredients[0])
	}
}
