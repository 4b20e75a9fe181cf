package prefabs

import (
	"fmt"

	"github.com/milk9111/bonk/levels"
)

const (
	PlayerFile = "player.yaml"
	GhostFile  = "ghost.yaml"
	RulesFile  = "rules.yaml"
)

// Config is everything needed to build a game world.
type Config struct {
	Player *PlayerSpec
	Ghost  *GhostSpec
	Rules  *RulesSpec
	Levels *levels.Set
}

type validator interface {
	Validate() error
}

func loadValidated[T any, P interface {
	*T
	validator
}](filename string) (*T, error) {
	spec, err := LoadSpec[T](filename)
	if err != nil {
		return nil, err
	}
	if err := P(&spec).Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: invalid %s: %w", filename, err)
	}
	return &spec, nil
}

// LoadConfig loads the player, ghost and rules prefabs plus the level set.
func LoadConfig(levelSet string) (*Config, error) {
	player, err := loadValidated[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	ghost, err := loadValidated[GhostSpec](GhostFile)
	if err != nil {
		return nil, err
	}
	rules, err := loadValidated[RulesSpec](RulesFile)
	if err != nil {
		return nil, err
	}
	set, err := levels.Load(levelSet)
	if err != nil {
		return nil, err
	}
	return &Config{Player: player, Ghost: ghost, Rules: rules, Levels: set}, nil
}
