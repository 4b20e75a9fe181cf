package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name         string           `yaml:"name"`
	Spawn        PointSpec        `yaml:"spawn"`
	Collider     ColliderSpec     `yaml:"collider"`
	MoveSpeed    float64          `yaml:"move_speed"`
	Gravity      float64          `yaml:"gravity"`
	JumpSpeed    float64          `yaml:"jump_speed"`
	Health       int              `yaml:"health"`
	AttackRange  float64          `yaml:"attack_range"`
	Sprite       SpriteSpec       `yaml:"sprite"`
	AttackEffect AttackEffectSpec `yaml:"attack_effect"`
}

func (s *PlayerSpec) Validate() error {
	if s.Collider.Width <= 0 || s.Collider.Height <= 0 {
		return fmt.Errorf("player collider must be positive, got %gx%g", s.Collider.Width, s.Collider.Height)
	}
	if s.Health <= 0 {
		return fmt.Errorf("player health must be positive, got %d", s.Health)
	}
	if s.MoveSpeed <= 0 {
		return fmt.Errorf("player move_speed must be positive, got %g", s.MoveSpeed)
	}
	if s.JumpSpeed >= 0 {
		return fmt.Errorf("player jump_speed must be negative (upwards), got %g", s.JumpSpeed)
	}
	return nil
}

type GhostSpec struct {
	Name          string       `yaml:"name"`
	Collider      ColliderSpec `yaml:"collider"`
	ContactDamage int          `yaml:"contact_damage"`
	GraceFrames   int          `yaml:"grace_frames"`
	Patrol        PatrolSpec   `yaml:"patrol"`
	Bullet        BulletSpec   `yaml:"bullet"`
	Sprite        SpriteSpec   `yaml:"sprite"`
	// Script is the behavior script under prefabs/scripts.
	Script string `yaml:"script"`
}

func (s *GhostSpec) Validate() error {
	if s.Collider.Width <= 0 || s.Collider.Height <= 0 {
		return fmt.Errorf("ghost collider must be positive, got %gx%g", s.Collider.Width, s.Collider.Height)
	}
	if s.Patrol.MinX >= s.Patrol.MaxX {
		return fmt.Errorf("ghost patrol band invalid: min(%.1f) >= max(%.1f)", s.Patrol.MinX, s.Patrol.MaxX)
	}
	if s.Bullet.Period <= 0 {
		return fmt.Errorf("ghost bullet period must be positive, got %s", s.Bullet.Period)
	}
	if strings.TrimSpace(s.Script) == "" {
		return fmt.Errorf("ghost script is required")
	}
	return nil
}

type RulesSpec struct {
	GroundHeight    float64       `yaml:"ground_height"`
	TrapDamage      int           `yaml:"trap_damage"`
	TransitionDelay time.Duration `yaml:"transition_delay"`
	HealthBar       HealthBarSpec `yaml:"health_bar"`
	Palette         PaletteSpec   `yaml:"palette"`
	WinText         string        `yaml:"win_text"`
	LoseText        string        `yaml:"lose_text"`
}

func (s *RulesSpec) Validate() error {
	if s.GroundHeight < 0 {
		return fmt.Errorf("ground_height must not be negative, got %g", s.GroundHeight)
	}
	if s.TransitionDelay <= 0 {
		return fmt.Errorf("transition_delay must be positive, got %s", s.TransitionDelay)
	}
	return nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SpriteSpec struct {
	Image string `yaml:"image"`
}

type AttackEffectSpec struct {
	Image   string  `yaml:"image"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetY float64 `yaml:"offset_y"`
}

type PatrolSpec struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
}

type BulletSpec struct {
	Width  float64       `yaml:"width"`
	Height float64       `yaml:"height"`
	Speed  float64       `yaml:"speed"`
	Damage int           `yaml:"damage"`
	Period time.Duration `yaml:"period"`
}

type HealthBarSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaletteSpec overrides the flat colors used for level geometry and HUD.
// Unset entries keep the renderer's defaults.
type PaletteSpec struct {
	Platform   *YAMLColor `yaml:"platform"`
	Trap       *YAMLColor `yaml:"trap"`
	Bullet     *YAMLColor `yaml:"bullet"`
	Ground     *YAMLColor `yaml:"ground"`
	HealthBack *YAMLColor `yaml:"health_back"`
	HealthFill *YAMLColor `yaml:"health_fill"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the parsed color, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
