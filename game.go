package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bonk/assets"
	"github.com/milk9111/bonk/common"
	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/entity"
	"github.com/milk9111/bonk/ecs/system"
	"github.com/milk9111/bonk/levels"
	"github.com/milk9111/bonk/prefabs"
)

const menuMusic = "menu.wav"

type mode int

const (
	modeMenu mode = iota
	modePlaying
	modePaused
	modeGameOver
)

type Options struct {
	StartLevel int
	Debug      bool
	Watch      bool
	Mute       bool
}

type Game struct {
	opts Options
	mode mode

	cfg    *prefabs.Config
	world  *ecs.World
	sched  *ecs.Scheduler
	render *system.RenderSystem

	menuUI  *ebitenui.UI
	pauseUI *ebitenui.UI
	music   *audio.Player
	watcher *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	cfg, err := prefabs.LoadConfig(levels.DefaultSet)
	if err != nil {
		return nil, fmt.Errorf("game: load config: %w", err)
	}

	g := &Game{opts: opts, cfg: cfg}
	g.buildUI()

	if !opts.Mute {
		music, err := assets.LoadLoopingPlayer(menuMusic)
		if err != nil {
			log.Printf("music disabled: %v", err)
		} else {
			music.SetVolume(0.5)
			g.music = music
		}
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts", "levels")
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.enterMenu()
	return g, nil
}

func (g *Game) buildUI() {
	g.menuUI = NewMenuUI(func() {
		if err := g.startSession(g.opts.StartLevel); err != nil {
			log.Printf("start: %v", err)
		}
	})
	g.pauseUI = NewPauseUI(func() {
		g.mode = modePlaying
	})
}

func (g *Game) enterMenu() {
	g.mode = modeMenu
	if g.music != nil && !g.music.IsPlaying() {
		g.music.Play()
	}
}

func (g *Game) stopMusic() {
	if g.music == nil {
		return
	}
	g.music.Pause()
	if err := g.music.SetPosition(0); err != nil {
		log.Printf("music: rewind: %v", err)
	}
}

// startSession builds a fresh world from the current config and enters the
// given level.
func (g *Game) startSession(level int) error {
	w, err := entity.BuildWorld(g.cfg, ebiten.TPS())
	if err != nil {
		return err
	}
	if state, stage, ok := entity.State(w); ok && level > 0 {
		state.Level = min(level, len(stage.Levels)-1)
	}
	entity.StartGame(w)

	g.stopMusic()
	g.world = w
	g.sched = system.NewGameplayScheduler(system.KeyboardSource{})
	g.render = system.NewRenderSystem(g.cfg.Rules, g.opts.Debug)
	g.mode = modePlaying
	g.drainEvents()
	return nil
}

// restart throws the whole session away and rebuilds it from configuration.
func (g *Game) restart() {
	g.world = nil
	g.sched = nil
	g.render = nil
	if cfg, err := prefabs.LoadConfig(levels.DefaultSet); err != nil {
		log.Printf("restart: keeping previous config: %v", err)
	} else {
		g.cfg = cfg
	}
	g.buildUI()
	g.enterMenu()
}

func (g *Game) drainEvents() {
	if g.world == nil {
		return
	}
	for _, ev := range g.world.Events().Drain() {
		switch ev.Type {
		case ecs.EventLevelLoaded:
			if data, ok := ev.Data.(entity.LevelEvent); ok {
				log.Printf("level %d (%s) loaded", data.Index+1, data.Name)
			}
		case ecs.EventPlayerDamaged:
			if data, ok := ev.Data.(ecs.DamageEvent); ok {
				log.Printf("player hit by %s for %d, health %d", data.Source, data.Amount, data.Health)
			}
		case ecs.EventEnemyDefeated:
			log.Printf("%v defeated", ev.Data)
		case ecs.EventGameOver:
			log.Printf("game over (%v)", ev.Data)
			g.mode = modeGameOver
		case ecs.EventGameWon:
			log.Printf("you win")
		}
	}
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("watcher: %v", err)
		}
	default:
	}
	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}
	cfg, err := prefabs.LoadConfig(levels.DefaultSet)
	if err != nil {
		log.Printf("reload %v: %v", changed, err)
		return
	}
	g.cfg = cfg
	log.Printf("reloaded config after edits to %v", changed)

	if g.mode != modePlaying && g.mode != modePaused {
		return
	}
	level := g.opts.StartLevel
	if state, _, ok := entity.State(g.world); ok {
		level = state.Level
	}
	if err := g.startSession(level); err != nil {
		log.Printf("reload: restart session: %v", err)
	}
}

func (g *Game) Update() error {
	g.pollReload()

	switch g.mode {
	case modeMenu:
		g.menuUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && g.mode == modeMenu {
			if err := g.startSession(g.opts.StartLevel); err != nil {
				log.Printf("start: %v", err)
			}
		}
	case modePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.mode = modePaused
			return nil
		}
		g.sched.Update(g.world)
		g.drainEvents()
	case modePaused:
		g.pauseUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.mode = modePlaying
		}
	case modeGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.restart()
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.mode {
	case modeMenu:
		g.menuUI.Draw(screen)
	case modePlaying, modeGameOver:
		g.render.Draw(g.world, screen)
	case modePaused:
		g.render.Draw(g.world, screen)
		g.pauseUI.Draw(screen)
	}

	if g.opts.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.2f    FPS: %.2f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg != nil && g.cfg.Levels != nil {
		return int(g.cfg.Levels.Width), int(g.cfg.Levels.Height)
	}
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("watcher: close: %v", err)
		}
	}
	if g.music != nil {
		_ = g.music.Close()
	}
}
