package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("levels.yaml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Player.Spawn != (PointSpec{X: 50, Y: 400}) {
		t.Errorf("expected player spawn 50,400, got %+v", cfg.Player.Spawn)
	}
	if cfg.Player.Collider != (ColliderSpec{Width: 80, Height: 110}) {
		t.Errorf("expected player collider 80x110, got %+v", cfg.Player.Collider)
	}
	if cfg.Player.JumpSpeed != -12 || cfg.Player.Gravity != 0.8 || cfg.Player.MoveSpeed != 3 {
		t.Errorf("unexpected player movement %+v", cfg.Player)
	}
	if cfg.Ghost.Bullet.Period != 2*time.Second {
		t.Errorf("expected bullet period 2s, got %s", cfg.Ghost.Bullet.Period)
	}
	if cfg.Ghost.Patrol != (PatrolSpec{MinX: 400, MaxX: 600}) {
		t.Errorf("expected patrol band 400..600, got %+v", cfg.Ghost.Patrol)
	}
	if cfg.Ghost.Script != "ghost.tengo" {
		t.Errorf("expected the ghost script, got %q", cfg.Ghost.Script)
	}
	if cfg.Ghost.GraceFrames != 60 || cfg.Ghost.ContactDamage != 10 {
		t.Errorf("unexpected ghost contact rules %+v", cfg.Ghost)
	}
	if cfg.Rules.TransitionDelay != time.Second {
		t.Errorf("expected transition delay 1s, got %s", cfg.Rules.TransitionDelay)
	}
	if cfg.Rules.GroundHeight != 20 || cfg.Rules.TrapDamage != 1 {
		t.Errorf("unexpected rules %+v", cfg.Rules)
	}
	if len(cfg.Levels.Levels) != 3 {
		t.Errorf("expected 3 levels, got %d", len(cfg.Levels.Levels))
	}
}

func TestSpecValidate(t *testing.T) {
	valid := func() (PlayerSpec, GhostSpec, RulesSpec) {
		return PlayerSpec{
				Collider:  ColliderSpec{Width: 10, Height: 10},
				Health:    100,
				MoveSpeed: 3,
				JumpSpeed: -12,
			}, GhostSpec{
				Collider: ColliderSpec{Width: 10, Height: 10},
				Patrol:   PatrolSpec{MinX: 1, MaxX: 2},
				Bullet:   BulletSpec{Period: time.Second},
				Script:   "ghost.tengo",
			}, RulesSpec{
				TransitionDelay: time.Second,
			}
	}

	tests := []struct {
		name        string
		mutate      func(p *PlayerSpec, g *GhostSpec, r *RulesSpec)
		errContains string
	}{
		{name: "valid", mutate: func(*PlayerSpec, *GhostSpec, *RulesSpec) {}},
		{name: "player without health", mutate: func(p *PlayerSpec, _ *GhostSpec, _ *RulesSpec) { p.Health = 0 }, errContains: "health"},
		{name: "downward jump", mutate: func(p *PlayerSpec, _ *GhostSpec, _ *RulesSpec) { p.JumpSpeed = 4 }, errContains: "jump_speed"},
		{name: "inverted patrol", mutate: func(_ *PlayerSpec, g *GhostSpec, _ *RulesSpec) { g.Patrol.MinX = 5 }, errContains: "patrol"},
		{name: "no bullet period", mutate: func(_ *PlayerSpec, g *GhostSpec, _ *RulesSpec) { g.Bullet.Period = 0 }, errContains: "period"},
		{name: "no script", mutate: func(_ *PlayerSpec, g *GhostSpec, _ *RulesSpec) { g.Script = " " }, errContains: "script"},
		{name: "no transition delay", mutate: func(_ *PlayerSpec, _ *GhostSpec, r *RulesSpec) { r.TransitionDelay = 0 }, errContains: "transition_delay"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, g, r := valid()
			tc.mutate(&p, &g, &r)
			var err error
			for _, v := range []validator{&p, &g, &r} {
				if err = v.Validate(); err != nil {
					break
				}
			}
			if tc.errContains == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.errContains) {
				t.Fatalf("expected error containing %q, got %v", tc.errContains, err)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{in: `"#8b4513"`, want: color.NRGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}},
		{in: `"00ff0080"`, want: color.NRGBA{G: 0xff, A: 0x80}},
		{in: `"#fff"`, wantErr: true},
		{in: `[1, 2]`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if c.Color != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, c.Color)
			}
		})
	}

	var unset *YAMLColor
	if got := unset.Or(color.Black); got != color.Black {
		t.Fatalf("expected fallback for unset color, got %v", got)
	}
}

func TestWatcherBatchesEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcherQuiet(20*time.Millisecond, dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	ghost := filepath.Join(dir, "ghost.yaml")
	script := filepath.Join(dir, "ghost.tengo")
	writes := []struct {
		path string
		body string
	}{
		{filepath.Join(dir, "notes.txt"), "ignored"},
		{ghost, "name: ghost\n"},
		{script, "patrol := func(engine, state) {}\n"},
		{ghost, "name: ghost\ncontact_damage: 5\n"},
	}
	for _, wr := range writes {
		if err := os.WriteFile(wr.path, []byte(wr.body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{script, ghost}
	var got []string
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		got = append(got, w.Poll()...)
		slices.Sort(got)
		got = slices.Compact(got)
		if len(got) >= len(want) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestWatcherPollIsEmptyWithoutEdits(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	if got := w.Poll(); len(got) != 0 {
		t.Fatalf("expected no changes, got %v", got)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestLoadScript(t *testing.T) {
	tests := []struct {
		name     string
		wantPath string
	}{
		{"ghost.tengo", "scripts/ghost.tengo"},
		{"scripts/ghost.tengo", "scripts/ghost.tengo"},
		{"prefabs/scripts/ghost.tengo", "scripts/ghost.tengo"},
		{" ghost.tengo ", "scripts/ghost.tengo"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cleanScriptPath(tc.name); got != tc.wantPath {
				t.Fatalf("expected %q, got %q", tc.wantPath, got)
			}
			src, err := LoadScript(tc.name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !strings.Contains(string(src), "patrol :=") || !strings.Contains(string(src), "aim :=") {
				t.Fatalf("ghost script is missing patrol or aim")
			}
		})
	}

	if _, err := LoadScript("missing.tengo"); err == nil {
		t.Fatalf("expected an error for a missing script")
	}
}
