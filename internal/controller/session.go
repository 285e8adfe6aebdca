package controller

import "github.com/wordgarden/wordgarden/internal/model"

// View is a top-level, mutually exclusive screen state.
type View string

// Views the session can be in. ViewMain is the initial state and is always
// reachable; no view is terminal.
const (
	ViewMain           View = "main"
	ViewAlphabet       View = "alphabet"
	ViewLearningDetail View = "learning_detail"
	ViewGameTypes      View = "game_types"
	ViewGameCats       View = "game_cats"
	ViewGameActive     View = "game_active"
)

// Direction moves the learning-detail item selection.
type Direction int

const (
	// Next advances to the following item, wrapping past the end to 0.
	Next Direction = iota
	// Prev moves to the preceding item, wrapping before 0 to the end.
	Prev
)

// GameMode selects how a game round is presented.
type GameMode string

const (
	// GameNaming shows the glyph and Spanish name; the learner types the
	// English word.
	GameNaming GameMode = "naming"
	// GameListening speaks the word aloud; the learner types what they heard.
	GameListening GameMode = "listening"
)

// Session is the transient per-session state. It is an immutable value:
// every transition replaces it wholesale, never mutates it in place. It is
// never persisted.
type Session struct {
	View          View
	CategoryID    string
	ItemIndex     int
	ShowLocalized bool
	GameMode      GameMode
	Score         int

	// Busy flags gate re-entrant invocation of each operation kind.
	Speaking        bool
	Expanding       bool
	GeneratingImage bool
}

// NewSession builds the initial state from the catalog's first category.
func NewSession(cat model.Catalog) Session {
	s := Session{View: ViewMain}
	if len(cat.Categories) > 0 {
		s.CategoryID = cat.Categories[0].ID
	}
	return s
}

// advance returns the session with the item index moved one step in the
// given direction, wrapping circularly over count items.
func (s Session) advance(dir Direction, count int) Session {
	if count <= 0 {
		s.ItemIndex = 0
		return s
	}
	switch dir {
	case Next:
		s.ItemIndex = (s.ItemIndex + 1) % count
	case Prev:
		s.ItemIndex = (s.ItemIndex - 1 + count) % count
	}
	return s
}
