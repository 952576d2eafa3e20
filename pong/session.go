package pong

import (
	"fmt"
	"math/rand"
)

// Playfield is the rectangle every entity is confined to.
type Playfield struct {
	Width  float64
	Height float64
}

// Score holds the two point counters of a session.
type Score struct {
	Player int
	AI     int
}

func (s Score) String() string {
	return fmt.Sprintf("Player: %d; AI: %d", s.Player, s.AI)
}

// Session is the state shared by all entities for one match.
//
// It is created by the frame driver and passed by pointer into update calls.
// Only Ball.Update writes Score.
type Session struct {
	Field Playfield
	Score Score

	// Rand returns a uniform sample in [0, 1). Nil uses math/rand.
	Rand func() float64

	// OnScore, if set, is called after every point with the updated score.
	OnScore func(Score)
}

// NewSession returns a session with zeroed scores.
func NewSession(field Playfield, rnd func() float64) *Session {
	return &Session{Field: field, Rand: rnd}
}

func (s *Session) random() float64 {
	if s.Rand == nil {
		return rand.Float64()
	}
	return s.Rand()
}

func (s *Session) scored() {
	if s.OnScore != nil {
		s.OnScore(s.Score)
	}
}
