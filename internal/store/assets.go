package store

import (
	"context"

	"github.com/rs/zerolog"
)

// DefaultEpoch tags every asset key. Bumping it invalidates all previously
// cached assets at once: old rows remain but are never looked up again.
const DefaultEpoch = "e2"

// AssetCache maps item identifiers to generated image payloads. Reads never
// fail (any problem reads as a miss) and writes are best-effort: a failed
// write only means the next session regenerates.
type AssetCache struct {
	kv    *KV
	epoch string
	log   zerolog.Logger
}

// NewAssetCache wraps a KV store with the given cache epoch.
func NewAssetCache(kv *KV, epoch string, log zerolog.Logger) *AssetCache {
	return &AssetCache{
		kv:    kv,
		epoch: epoch,
		log:   log.With().Str("component", "asset-cache").Logger(),
	}
}

func (c *AssetCache) key(itemID string) string {
	return "asset:" + c.epoch + ":" + itemID
}

// Get returns the cached payload for an item, or absence.
func (c *AssetCache) Get(ctx context.Context, itemID string) (string, bool) {
	payload, ok, err := c.kv.Get(ctx, c.key(itemID))
	if err != nil {
		c.log.Warn().Err(err).Str("item", itemID).Msg("asset read failed, treating as miss")
		return "", false
	}
	return payload, ok
}

// Set stores the payload for an item under the current epoch.
func (c *AssetCache) Set(ctx context.Context, itemID, payload string) {
	if err := c.kv.Set(ctx, c.key(itemID), payload); err != nil {
		c.log.Warn().Err(err).Str("item", itemID).Msg("asset write failed")
	}
}
