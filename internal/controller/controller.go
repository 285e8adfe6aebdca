// Package controller owns the catalog and session state and drives the
// merge, caching, and speech-delivery flows behind the user intents.
package controller

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/wordgarden/wordgarden/internal/genai"
	"github.com/wordgarden/wordgarden/internal/model"
	"github.com/wordgarden/wordgarden/internal/store"
)

// TextCapability produces completions and category expansions.
type TextCapability interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	ExpandCategory(ctx context.Context, category string, existing []string) ([]genai.Candidate, error)
}

// ImageCapability generates an encoded image for an item.
type ImageCapability interface {
	SynthesizeImage(ctx context.Context, itemName, categoryName string) (string, error)
}

// SpeechDeliverer speaks text aloud with its own single-flight guarantee.
type SpeechDeliverer interface {
	Speak(ctx context.Context, text string)
}

// Controller is the exclusive owner of the catalog and session state. The
// stores and remote adapters are passive collaborators.
type Controller struct {
	catalog model.Catalog
	session Session

	catalogs *store.CatalogStore
	assets   *store.AssetCache
	text     TextCapability
	images   ImageCapability
	speech   SpeechDeliverer

	entropy *rand.Rand
	log     zerolog.Logger
}

// New loads the catalog and starts a fresh session.
func New(ctx context.Context, catalogs *store.CatalogStore, assets *store.AssetCache,
	text TextCapability, images ImageCapability, speech SpeechDeliverer, log zerolog.Logger) *Controller {

	catalog := catalogs.Load(ctx)
	return &Controller{
		catalog:  catalog,
		session:  NewSession(catalog),
		catalogs: catalogs,
		assets:   assets,
		text:     text,
		images:   images,
		speech:   speech,
		entropy:  rand.New(rand.NewSource(time.Now().UnixNano())),
		log:      log.With().Str("component", "controller").Logger(),
	}
}

// Catalog returns the current catalog.
func (c *Controller) Catalog() model.Catalog {
	return c.catalog
}

// Session returns the current session state.
func (c *Controller) Session() Session {
	return c.session
}

// update replaces the session wholesale with the result of fn.
func (c *Controller) update(fn func(Session) Session) {
	c.session = fn(c.session)
}

// CurrentCategory returns the selected category.
func (c *Controller) CurrentCategory() (model.Category, bool) {
	return c.catalog.Category(c.session.CategoryID)
}

// CurrentItem returns the item at the session's item index.
func (c *Controller) CurrentItem() (model.Item, bool) {
	cat, ok := c.CurrentCategory()
	if !ok || len(cat.Items) == 0 {
		return model.Item{}, false
	}
	idx := c.session.ItemIndex
	if idx < 0 || idx >= len(cat.Items) {
		return model.Item{}, false
	}
	return cat.Items[idx], true
}

// Navigate switches the top-level view.
func (c *Controller) Navigate(view View) {
	c.update(func(s Session) Session {
		s.View = view
		return s
	})
}

// SelectCategory switches the selected category, resetting the item index
// and the localized-name toggle. Unknown ids are rejected.
func (c *Controller) SelectCategory(id string) bool {
	if _, ok := c.catalog.Category(id); !ok {
		return false
	}
	c.update(func(s Session) Session {
		s.CategoryID = id
		s.ItemIndex = 0
		s.ShowLocalized = false
		return s
	})
	return true
}

// SelectItemNamed positions the item index on the named item within the
// current category.
func (c *Controller) SelectItemNamed(name string) bool {
	cat, ok := c.CurrentCategory()
	if !ok {
		return false
	}
	for i, it := range cat.Items {
		if it.Name == name {
			c.update(func(s Session) Session {
				s.ItemIndex = i
				return s
			})
			return true
		}
	}
	return false
}

// AdvanceItem moves the item selection, wrapping circularly in both
// directions.
func (c *Controller) AdvanceItem(dir Direction) {
	cat, ok := c.CurrentCategory()
	if !ok {
		return
	}
	c.update(func(s Session) Session {
		return s.advance(dir, len(cat.Items))
	})
}

// ToggleLocalizedView flips the reveal of the localized item name.
func (c *Controller) ToggleLocalizedView() {
	c.update(func(s Session) Session {
		s.ShowLocalized = !s.ShowLocalized
		return s
	})
}

// Speak delivers text aloud. A call while a delivery is in flight is a
// no-op; the flag is released on every path.
func (c *Controller) Speak(ctx context.Context, text string) {
	if c.session.Speaking {
		return
	}
	c.update(func(s Session) Session {
		s.Speaking = true
		return s
	})
	defer c.update(func(s Session) Session {
		s.Speaking = false
		return s
	})

	c.speech.Speak(ctx, text)
}

// FunFact fetches a short kid-friendly fact about the current item and
// speaks it.
func (c *Controller) FunFact(ctx context.Context) (string, error) {
	item, ok := c.CurrentItem()
	if !ok {
		return "", fmt.Errorf("no item selected")
	}

	prompt := fmt.Sprintf("Tell me one fun fact about %s (the %s) for a young child.",
		item.Name, item.NameES)
	fact, err := c.text.GenerateText(ctx, prompt)
	if err != nil {
		return "", c.userError("fun fact", err)
	}

	c.Speak(ctx, fact)
	return fact, nil
}
