// Package model holds the session state shared by every screen: the two
// life totals, which one is selected, and the live copy of the preferences.
package model

import "github.com/antsy/Lifecounter/prefs"

// Player selects one of the two counters.
type Player uint8

const (
	PlayerOne Player = iota
	PlayerTwo
)

// Session is the single long-lived mutable record behind the whole UI.
// Dispatch is single-threaded, so it carries no locking; the navigation
// engine decides which screen handler touches it at any instant.
type Session struct {
	Life1 int
	Life2 int

	Selected Player

	// Prefs is the live copy: settings edits land here immediately and
	// drive behavior for the rest of the session, persisted or not.
	Prefs prefs.Record
}

// NewSession builds the startup state from loaded preferences: both
// counters at the starting life, player one selected.
func NewSession(rec prefs.Record) *Session {
	return &Session{
		Life1:    rec.DefaultLife,
		Life2:    rec.DefaultLife,
		Selected: PlayerOne,
		Prefs:    rec,
	}
}

// ActiveLife returns the selected player's life total.
func (s *Session) ActiveLife() int {
	if s.Selected == PlayerOne {
		return s.Life1
	}
	return s.Life2
}

// Increment adds one to the selected counter. There is no upper bound.
func (s *Session) Increment() {
	if s.Selected == PlayerOne {
		s.Life1++
	} else {
		s.Life2++
	}
}

// Decrement subtracts one from the selected counter. Negative totals are valid.
func (s *Session) Decrement() {
	if s.Selected == PlayerOne {
		s.Life1--
	} else {
		s.Life2--
	}
}

// TogglePlayer flips the selection to the other counter.
func (s *Session) TogglePlayer() {
	if s.Selected == PlayerOne {
		s.Selected = PlayerTwo
	} else {
		s.Selected = PlayerOne
	}
}

// Reset sets both counters to the current (possibly unsaved) starting life.
func (s *Session) Reset() {
	s.Life1 = s.Prefs.DefaultLife
	s.Life2 = s.Prefs.DefaultLife
}
