package levels

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadDefaultSet(t *testing.T) {
	set, err := Load(DefaultSet)
	if err != nil {
		t.Fatalf("load default set: %v", err)
	}
	if len(set.Levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(set.Levels))
	}
	if set.Width != 800 || set.Height != 600 {
		t.Fatalf("expected 800x600 screen, got %gx%g", set.Width, set.Height)
	}

	crypt := set.Levels[1]
	if len(crypt.Platforms) != 1 || crypt.Platforms[0] != (Rect{X: 250, Y: 480, Width: 100, Height: 40}) {
		t.Fatalf("unexpected level 1 platforms: %+v", crypt.Platforms)
	}
	if got := set.Levels[2].Ghost; got != (GhostSpawn{X: 450, Y: 325, DX: -2}) {
		t.Fatalf("unexpected level 2 ghost spawn: %+v", got)
	}
	for i, lvl := range set.Levels {
		if lvl.Ranged != (i == 1) {
			t.Fatalf("level %d: ranged=%v", i, lvl.Ranged)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     error
		errContains string
	}{
		{
			name: "valid",
			yamlContent: `
width: 320
height: 240
levels:
  - name: one
    ghost: { x: 10, y: 10, dx: 1 }
`,
		},
		{
			name:        "no levels",
			yamlContent: "width: 320\nheight: 240\n",
			wantErr:     ErrNoLevels,
		},
		{
			name:        "bad screen",
			yamlContent: "width: 0\nheight: 240\nlevels: [{ghost: {dx: 1}}]\n",
			errContains: "invalid screen dimensions",
		},
		{
			name: "zero size trap",
			yamlContent: `
width: 320
height: 240
levels:
  - traps: [{ x: 1, y: 1, width: 0, height: 4 }]
    ghost: { dx: 1 }
`,
			errContains: "trap 0",
		},
		{
			name: "stationary ghost",
			yamlContent: `
width: 320
height: 240
levels:
  - ghost: { x: 1, y: 1 }
`,
			errContains: "ghost dx",
		},
		{
			name:        "malformed yaml",
			yamlContent: "width: [",
			errContains: "unmarshal",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yamlContent))
			switch {
			case tc.wantErr != nil:
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			case tc.errContains != "":
				if err == nil || !strings.Contains(err.Error(), tc.errContains) {
					t.Fatalf("expected error containing %q, got %v", tc.errContains, err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
		})
	}
}
