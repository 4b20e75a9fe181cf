package system

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/bonk/assets"
	"github.com/milk9111/bonk/common"
	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
	"github.com/milk9111/bonk/ecs/entity"
	"github.com/milk9111/bonk/levels"
	"github.com/milk9111/bonk/prefabs"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

type DrawKind int

const (
	DrawFill DrawKind = iota
	DrawStroke
	DrawImage
	DrawText
)

// DrawOp is one step of a rendered frame. Images are referenced by asset
// name and stretched to W x H.
type DrawOp struct {
	Kind  DrawKind
	X     float64
	Y     float64
	W     float64
	H     float64
	Color color.Color
	Image string
	FlipX bool
	Text  string
	// Size is the text height in pixels.
	Size float64
}

type Palette struct {
	Platform    color.Color
	Trap        color.Color
	Bullet      color.Color
	Ground      color.Color
	HealthBack  color.Color
	HealthFill  color.Color
	HealthFrame color.Color
	Overlay     color.Color
	Text        color.Color
	Debug       color.Color
}

func DefaultPalette() Palette {
	return Palette{
		Platform:    colornames.Saddlebrown,
		Trap:        colornames.Red,
		Bullet:      colornames.Purple,
		Ground:      color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		HealthBack:  colornames.Red,
		HealthFill:  colornames.Lime,
		HealthFrame: colornames.Black,
		Overlay:     colornames.Black,
		Text:        colornames.White,
		Debug:       colornames.Yellow,
	}
}

// RenderSystem projects the world onto the screen. Plan never mutates the
// world.
type RenderSystem struct {
	palette   Palette
	healthBar prefabs.HealthBarSpec
	winText   string
	loseText  string
	debug     bool

	face    text.Face
	missing map[string]bool
}

func NewRenderSystem(rules *prefabs.RulesSpec, debug bool) *RenderSystem {
	r := &RenderSystem{
		palette:   DefaultPalette(),
		healthBar: prefabs.HealthBarSpec{X: 20, Y: 20, Width: 100, Height: 10},
		winText:   "You Win!",
		loseText:  "Game Over!",
		debug:     debug,
		missing:   map[string]bool{},
	}
	if rules == nil {
		return r
	}

	pal := rules.Palette
	r.palette.Platform = pal.Platform.Or(r.palette.Platform)
	r.palette.Trap = pal.Trap.Or(r.palette.Trap)
	r.palette.Bullet = pal.Bullet.Or(r.palette.Bullet)
	r.palette.Ground = pal.Ground.Or(r.palette.Ground)
	r.palette.HealthBack = pal.HealthBack.Or(r.palette.HealthBack)
	r.palette.HealthFill = pal.HealthFill.Or(r.palette.HealthFill)
	if rules.HealthBar.Width > 0 && rules.HealthBar.Height > 0 {
		r.healthBar = rules.HealthBar
	}
	if rules.WinText != "" {
		r.winText = rules.WinText
	}
	if rules.LoseText != "" {
		r.loseText = rules.LoseText
	}
	return r
}

// Plan returns the frame's draw operations in paint order.
func (r *RenderSystem) Plan(w *ecs.World) []DrawOp {
	state, stage, ok := entity.State(w)
	if !ok {
		return nil
	}

	if state.Won {
		return []DrawOp{
			{Kind: DrawFill, W: stage.Width, H: stage.Height, Color: r.palette.Overlay},
			{Kind: DrawText, X: stage.Width/2 - 100, Y: stage.Height / 2, Text: r.winText, Size: 48, Color: r.palette.Text},
		}
	}

	lvl, ok := stage.Current(state.Level)
	if !ok {
		return nil
	}

	ops := make([]DrawOp, 0, 16)
	if lvl.Background != "" {
		ops = append(ops, DrawOp{Kind: DrawImage, W: stage.Width, H: stage.Height, Image: lvl.Background})
	}
	for _, p := range lvl.Platforms {
		ops = append(ops, DrawOp{Kind: DrawFill, X: p.X, Y: p.Y, W: p.Width, H: p.Height, Color: r.palette.Platform})
	}
	for _, t := range lvl.Traps {
		ops = append(ops, DrawOp{Kind: DrawFill, X: t.X, Y: t.Y, W: t.Width, H: t.Height, Color: r.palette.Trap})
	}
	ecs.ForEach(w, component.BulletComponent.Kind(), func(e ecs.Entity, _ *component.Bullet) {
		if box, ok := entityBox(w, e); ok {
			ops = append(ops, DrawOp{Kind: DrawFill, X: box.L, Y: box.B, W: box.R - box.L, H: box.T - box.B, Color: r.palette.Bullet})
		}
	})

	player, hasPlayer := entity.Player(w)
	var p *component.Player
	if hasPlayer {
		p, hasPlayer = ecs.Get(w, player, component.PlayerComponent.Kind())
	}
	if hasPlayer {
		ops = r.appendSprite(ops, w, player)
	}

	if ghost, ok := entity.Ghost(w); ok {
		if enemy, ok := ecs.Get(w, ghost, component.EnemyComponent.Kind()); ok && enemy.Alive {
			ops = r.appendSprite(ops, w, ghost)
		}
	}

	if hasPlayer && p.Attacking {
		fx, fxOK := ecs.Get(w, player, component.AttackEffectComponent.Kind())
		box, boxOK := entityBox(w, player)
		if fxOK && boxOK {
			x := box.R
			if !p.FacingRight {
				x = box.L - fx.Width
			}
			ops = append(ops, DrawOp{Kind: DrawImage, X: x, Y: box.B + fx.OffsetY, W: fx.Width, H: fx.Height, Image: fx.Image})
		}
	}

	if hasPlayer {
		ops = r.appendHealthBar(ops, w, player)
	}

	ops = append(ops, DrawOp{Kind: DrawFill, Y: stage.FloorY(), W: stage.Width, H: stage.GroundHeight, Color: r.palette.Ground})

	if r.debug {
		ops = r.appendDebug(ops, w, lvl.Platforms, lvl.Traps)
	}

	if state.Lost {
		ops = append(ops,
			DrawOp{Kind: DrawFill, W: stage.Width, H: stage.Height, Color: color.NRGBA{A: 0xb0}},
			DrawOp{Kind: DrawText, X: stage.Width/2 - 120, Y: stage.Height / 2, Text: r.loseText, Size: 48, Color: r.palette.Text},
		)
	}
	return ops
}

func (r *RenderSystem) appendSprite(ops []DrawOp, w *ecs.World, e ecs.Entity) []DrawOp {
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok || sprite.Image == "" {
		return ops
	}
	box, ok := entityBox(w, e)
	if !ok {
		return ops
	}
	return append(ops, DrawOp{Kind: DrawImage, X: box.L, Y: box.B, W: box.R - box.L, H: box.T - box.B, Image: sprite.Image, FlipX: sprite.FlipX})
}

func (r *RenderSystem) appendHealthBar(ops []DrawOp, w *ecs.World, player ecs.Entity) []DrawOp {
	h, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok || h.Max <= 0 {
		return ops
	}
	bar := r.healthBar
	fill := bar.Width * common.Clamp(float64(h.Current)/float64(h.Max), 0, 1)
	return append(ops,
		DrawOp{Kind: DrawFill, X: bar.X, Y: bar.Y, W: bar.Width, H: bar.Height, Color: r.palette.HealthBack},
		DrawOp{Kind: DrawFill, X: bar.X, Y: bar.Y, W: fill, H: bar.Height, Color: r.palette.HealthFill},
		DrawOp{Kind: DrawStroke, X: bar.X, Y: bar.Y, W: bar.Width, H: bar.Height, Color: r.palette.HealthFrame},
	)
}

func (r *RenderSystem) appendDebug(ops []DrawOp, w *ecs.World, platforms, traps []levels.Rect) []DrawOp {
	for _, rects := range [][]levels.Rect{platforms, traps} {
		for _, rc := range rects {
			ops = append(ops, DrawOp{Kind: DrawStroke, X: rc.X, Y: rc.Y, W: rc.Width, H: rc.Height, Color: r.palette.Debug})
		}
	}
	ecs.ForEach(w, component.BodyComponent.Kind(), func(e ecs.Entity, _ *component.Body) {
		if enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok && !enemy.Alive {
			return
		}
		if box, ok := entityBox(w, e); ok {
			ops = append(ops, DrawOp{Kind: DrawStroke, X: box.L, Y: box.B, W: box.R - box.L, H: box.T - box.B, Color: r.palette.Debug})
		}
	})
	return ops
}

// Draw executes the frame plan on screen.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Clear()
	for _, op := range r.Plan(w) {
		switch op.Kind {
		case DrawFill:
			vector.FillRect(screen, float32(op.X), float32(op.Y), float32(op.W), float32(op.H), op.Color, false)
		case DrawStroke:
			vector.StrokeRect(screen, float32(op.X), float32(op.Y), float32(op.W), float32(op.H), 1, op.Color, false)
		case DrawImage:
			r.drawImage(screen, op)
		case DrawText:
			r.drawText(screen, op)
		}
	}
}

func (r *RenderSystem) drawImage(screen *ebiten.Image, op DrawOp) {
	img, err := assets.Image(op.Image)
	if err != nil {
		if !r.missing[op.Image] {
			r.missing[op.Image] = true
			log.Printf("render: load image %s: %v", op.Image, err)
		}
		return
	}
	iw := float64(img.Bounds().Dx())
	ih := float64(img.Bounds().Dy())
	if iw == 0 || ih == 0 {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	if op.FlipX {
		opts.GeoM.Scale(-1, 1)
		opts.GeoM.Translate(iw, 0)
	}
	opts.GeoM.Scale(op.W/iw, op.H/ih)
	opts.GeoM.Translate(op.X, op.Y)
	screen.DrawImage(img, opts)
}

func (r *RenderSystem) drawText(screen *ebiten.Image, op DrawOp) {
	if r.face == nil {
		r.face = text.NewGoXFace(basicfont.Face7x13)
	}
	scale := op.Size / float64(basicfont.Face7x13.Height)
	opts := &text.DrawOptions{}
	opts.GeoM.Scale(scale, scale)
	// op.Y is the baseline
	opts.GeoM.Translate(op.X, op.Y-op.Size)
	opts.ColorScale.ScaleWithColor(op.Color)
	text.Draw(screen, op.Text, r.face, opts)
}
