package component

import "github.com/milk9111/bonk/levels"

// GameState is the level/game state machine. Level is always a valid index
// into Stage.Levels while the game is being played.
type GameState struct {
	Level int
	Won   bool
	Lost  bool

	// Transitioning is set between the enemy's defeat and the level advance.
	Transitioning    bool
	TransitionFrames int
	TransitionDelay  int
}

var GameStateComponent = NewComponent[GameState]()

// Stage holds the immutable level geometry and the screen-wide rules.
type Stage struct {
	Width        float64
	Height       float64
	GroundHeight float64
	TrapDamage   int
	Levels       []levels.Level
}

var StageComponent = NewComponent[Stage]()

// FloorY is the y coordinate of the top of the ground bar.
func (s *Stage) FloorY() float64 {
	return s.Height - s.GroundHeight
}

// Current returns the level at index i, or false when i is out of range.
func (s *Stage) Current(i int) (*levels.Level, bool) {
	if s == nil || i < 0 || i >= len(s.Levels) {
		return nil, false
	}
	return &s.Levels[i], true
}
