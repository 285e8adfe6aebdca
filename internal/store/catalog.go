package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wordgarden/wordgarden/internal/model"
)

// catalogKey is version-suffixed so a schema change gets a fresh record
// instead of colliding with an older layout.
const catalogKey = "catalog:v2"

// CatalogStore loads and saves the full catalog as one record. Callers
// always pass the complete catalog; there are no partial writes.
type CatalogStore struct {
	kv  *KV
	log zerolog.Logger
}

// NewCatalogStore wraps a KV store.
func NewCatalogStore(kv *KV, log zerolog.Logger) *CatalogStore {
	return &CatalogStore{kv: kv, log: log.With().Str("component", "catalog-store").Logger()}
}

// Load returns the persisted catalog. A missing, unreadable, or corrupt
// record falls back to the built-in default catalog; corruption never
// surfaces as an error.
func (s *CatalogStore) Load(ctx context.Context) model.Catalog {
	raw, ok, err := s.kv.Get(ctx, catalogKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("catalog record unreadable, using defaults")
		return model.DefaultCatalog()
	}
	if !ok {
		return model.DefaultCatalog()
	}

	var cat model.Catalog
	if err := json.Unmarshal([]byte(raw), &cat); err != nil {
		s.log.Warn().Err(err).Msg("catalog record corrupt, using defaults")
		return model.DefaultCatalog()
	}
	if cat.Empty() {
		return model.DefaultCatalog()
	}
	return cat
}

// Save rewrites the catalog record.
func (s *CatalogStore) Save(ctx context.Context, cat model.Catalog) error {
	raw, err := json.Marshal(cat)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	return s.kv.Set(ctx, catalogKey, string(raw))
}
