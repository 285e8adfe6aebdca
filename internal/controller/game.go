package controller

import (
	"strings"

	"github.com/wordgarden/wordgarden/internal/model"
)

// GameModes lists the available game types in presentation order.
func (c *Controller) GameModes() []GameMode {
	return []GameMode{GameNaming, GameListening}
}

// SelectGameMode records the chosen game type and moves to category
// selection.
func (c *Controller) SelectGameMode(mode GameMode) {
	c.update(func(s Session) Session {
		s.GameMode = mode
		s.View = ViewGameCats
		return s
	})
}

// StartGame begins a game in the given category, resetting the score.
func (c *Controller) StartGame(categoryID string) bool {
	if !c.SelectCategory(categoryID) {
		return false
	}
	c.update(func(s Session) Session {
		s.View = ViewGameActive
		s.Score = 0
		return s
	})
	return true
}

// NextRound picks a random item from the game category.
func (c *Controller) NextRound() (model.Item, bool) {
	cat, ok := c.CurrentCategory()
	if !ok || len(cat.Items) == 0 {
		return model.Item{}, false
	}
	return cat.Items[c.entropy.Intn(len(cat.Items))], true
}

// CheckAnswer scores the learner's answer for a round. Matching is
// case-insensitive and ignores surrounding whitespace.
func (c *Controller) CheckAnswer(item model.Item, answer string) bool {
	correct := strings.EqualFold(strings.TrimSpace(answer), item.Name)
	if correct {
		c.update(func(s Session) Session {
			s.Score++
			return s
		})
	}
	return correct
}
