package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/wordgarden/wordgarden/internal/genai"
	"github.com/wordgarden/wordgarden/internal/model"
)

// ExpandCurrentCategory asks the content service for new items and merges
// them into the selected category. At most one expansion is in flight; a
// call while one is pending returns immediately with no items. An empty or
// malformed response leaves the catalog unchanged. Returns the items
// actually added.
func (c *Controller) ExpandCurrentCategory(ctx context.Context) ([]model.Item, error) {
	if c.session.Expanding {
		return nil, nil
	}
	c.update(func(s Session) Session {
		s.Expanding = true
		return s
	})
	defer c.update(func(s Session) Session {
		s.Expanding = false
		return s
	})

	cat, ok := c.CurrentCategory()
	if !ok {
		return nil, fmt.Errorf("no category selected")
	}

	candidates, err := c.text.ExpandCategory(ctx, cat.Name, cat.ItemNames())
	if err != nil {
		return nil, c.userError("expand category", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	added := c.merge(cat.ID, candidates)
	if len(added) == 0 {
		return nil, nil
	}

	if err := c.catalogs.Save(ctx, c.catalog); err != nil {
		// The in-memory merge stands; the next successful mutation rewrites
		// the full catalog anyway.
		c.log.Warn().Err(err).Msg("failed to persist catalog after expansion")
	}

	c.log.Info().Str("category", cat.ID).Int("added", len(added)).Msg("category expanded")
	return added, nil
}

// merge appends candidates to the category, preserving existing order and
// dropping exact display-name duplicates (against existing items and within
// the batch, case-sensitive).
func (c *Controller) merge(categoryID string, candidates []genai.Candidate) []model.Item {
	idx := c.catalog.CategoryIndex(categoryID)
	if idx < 0 {
		return nil
	}
	cat := c.catalog.Categories[idx]

	var added []model.Item
	seen := make(map[string]bool, len(candidates))
	for _, cand := range candidates {
		if cat.HasItemName(cand.Name) || seen[cand.Name] {
			c.log.Debug().Str("name", cand.Name).Msg("dropping duplicate candidate")
			continue
		}
		seen[cand.Name] = true
		added = append(added, model.Item{
			ID:     c.mintItemID(categoryID),
			Name:   cand.Name,
			NameES: cand.NameES,
			Glyph:  cand.Glyph,
			Color:  cat.Color,
		})
	}

	c.catalog.Categories[idx].Items = append(c.catalog.Categories[idx].Items, added...)
	return added
}

// mintItemID builds a fresh identifier for a generated item. The ULID
// carries the millisecond timestamp, and its monotonic entropy keeps ids
// distinct even when expansions complete within the same instant.
func (c *Controller) mintItemID(categoryID string) string {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), c.entropy)
	return categoryID + "-" + id.String()
}
