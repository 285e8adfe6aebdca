// Package model defines the vocabulary catalog data types.
package model

// Item is a single vocabulary entry. Items are immutable once created:
// they are appended to a category and never edited in place.
type Item struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameES string `json:"name_es"`
	Glyph  string `json:"glyph"`
	Color  string `json:"color"`
}

// Category groups items in insertion order. The order is meaningful for
// next/previous navigation and must survive merges.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
	Color string `json:"color"`
	Items []Item `json:"items"`
}

// ItemNames returns the display names of all items, in catalog order.
func (c Category) ItemNames() []string {
	names := make([]string, 0, len(c.Items))
	for _, it := range c.Items {
		names = append(names, it.Name)
	}
	return names
}

// HasItemName reports whether an item with the exact display name exists.
// Display-name uniqueness within a category is case-sensitive.
func (c Category) HasItemName(name string) bool {
	for _, it := range c.Items {
		if it.Name == name {
			return true
		}
	}
	return false
}

// Catalog is the top-level persisted aggregate: an ordered sequence of
// categories with unique identifiers.
type Catalog struct {
	Categories []Category `json:"categories"`
}

// Category returns the category with the given id.
func (c Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// CategoryIndex returns the position of the category with the given id,
// or -1 if it does not exist.
func (c Catalog) CategoryIndex(id string) int {
	for i, cat := range c.Categories {
		if cat.ID == id {
			return i
		}
	}
	return -1
}

// Empty reports whether the catalog has no categories. An empty catalog is
// treated the same as a missing record by the store.
func (c Catalog) Empty() bool {
	return len(c.Categories) == 0
}
