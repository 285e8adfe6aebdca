package model

import "testing"

func TestDefaultCatalogInvariants(t *testing.T) {
	cat := DefaultCatalog()
	if cat.Empty() {
		t.Fatal("default catalog must not be empty")
	}

	seenCats := map[string]bool{}
	for _, c := range cat.Categories {
		if seenCats[c.ID] {
			t.Errorf("duplicate category id %q", c.ID)
		}
		seenCats[c.ID] = true

		if len(c.Items) == 0 {
			t.Errorf("category %q has no items", c.ID)
		}
		seenNames := map[string]bool{}
		for _, it := range c.Items {
			if seenNames[it.Name] {
				t.Errorf("duplicate item name %q in %q", it.Name, c.ID)
			}
			seenNames[it.Name] = true
			if it.ID == "" || it.Glyph == "" || it.NameES == "" {
				t.Errorf("item %q in %q is incomplete", it.Name, c.ID)
			}
		}
	}
}

func TestCategoryLookup(t *testing.T) {
	cat := DefaultCatalog()

	got, ok := cat.Category("fruits")
	if !ok {
		t.Fatal("expected fruits category")
	}
	if got.Name != "Fruits" {
		t.Errorf("expected Fruits, got %q", got.Name)
	}

	if _, ok := cat.Category("nope"); ok {
		t.Error("expected miss for unknown category")
	}
	if idx := cat.CategoryIndex("nope"); idx != -1 {
		t.Errorf("expected -1, got %d", idx)
	}
}

func TestItemNamesPreservesOrder(t *testing.T) {
	c := Category{Items: []Item{{Name: "Apple"}, {Name: "Banana"}, {Name: "Cherry"}}}
	names := c.ItemNames()
	want := []string{"Apple", "Banana", "Cherry"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], names[i])
		}
	}
}

func TestHasItemNameIsCaseSensitive(t *testing.T) {
	c := Category{Items: []Item{{Name: "Apple"}}}
	if !c.HasItemName("Apple") {
		t.Error("expected exact match")
	}
	if c.HasItemName("apple") {
		t.Error("display-name uniqueness is case-sensitive")
	}
}
