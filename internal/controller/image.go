package controller

import (
	"context"
	"fmt"
)

// CachedImage returns the cached payload for the current item, if any. It
// never triggers generation; the presentation calls it whenever the
// displayed item changes.
func (c *Controller) CachedImage(ctx context.Context) (string, bool) {
	item, ok := c.CurrentItem()
	if !ok {
		return "", false
	}
	return c.assets.Get(ctx, item.ID)
}

// GenerateImageForCurrentItem returns the item's image, generating and
// caching it on a miss. Only an explicit user action reaches the remote
// adapter; failures are never cached, so every retry re-attempts. At most
// one generation is in flight; a call while one is pending returns empty.
func (c *Controller) GenerateImageForCurrentItem(ctx context.Context) (string, error) {
	if c.session.GeneratingImage {
		return "", nil
	}
	c.update(func(s Session) Session {
		s.GeneratingImage = true
		return s
	})
	defer c.update(func(s Session) Session {
		s.GeneratingImage = false
		return s
	})

	item, ok := c.CurrentItem()
	if !ok {
		return "", fmt.Errorf("no item selected")
	}

	if payload, hit := c.assets.Get(ctx, item.ID); hit {
		return payload, nil
	}

	cat, _ := c.CurrentCategory()
	payload, err := c.images.SynthesizeImage(ctx, item.Name, cat.Name)
	if err != nil {
		return "", c.userError("generate image", err)
	}

	c.assets.Set(ctx, item.ID, payload)
	return payload, nil
}
