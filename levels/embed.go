package levels

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// DefaultSet is the level set shipped with the game.
const DefaultSet = "levels.yaml"

var ErrNoLevels = errors.New("levels: set has no levels")

// Set is the ordered list of levels plus the screen they are laid out on.
type Set struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Levels []Level `yaml:"levels"`
}

type Level struct {
	Name       string     `yaml:"name"`
	Background string     `yaml:"background"`
	Platforms  []Rect     `yaml:"platforms"`
	Traps      []Rect     `yaml:"traps"`
	Ghost      GhostSpawn `yaml:"ghost"`
	// Ranged enables the ghost's bullets in this level.
	Ranged bool `yaml:"ranged"`
}

// GhostSpawn is where the ghost appears on level reset and which way it
// starts patrolling.
type GhostSpawn struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	DX float64 `yaml:"dx"`
}

type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Load reads a level set, preferring a copy on disk under levels/ so edits
// can be picked up without rebuilding.
func Load(name string) (*Set, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean)))
	if err != nil {
		data, err = LevelsFS.ReadFile(clean)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", clean, err)
		}
	}
	return Parse(data)
}

// Parse decodes and validates a level set.
func Parse(data []byte) (*Set, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("levels: invalid set: %w", err)
	}
	return &set, nil
}

func (s *Set) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid screen dimensions: %gx%g", s.Width, s.Height)
	}
	if len(s.Levels) == 0 {
		return ErrNoLevels
	}
	for i, lvl := range s.Levels {
		for j, p := range lvl.Platforms {
			if p.Width <= 0 || p.Height <= 0 {
				return fmt.Errorf("level %d platform %d: non-positive size %gx%g", i, j, p.Width, p.Height)
			}
		}
		for j, t := range lvl.Traps {
			if t.Width <= 0 || t.Height <= 0 {
				return fmt.Errorf("level %d trap %d: non-positive size %gx%g", i, j, t.Width, t.Height)
			}
		}
		if lvl.Ghost.DX == 0 {
			return fmt.Errorf("level %d: ghost dx must not be zero", i)
		}
	}
	return nil
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		return after
	}
	return s
}
