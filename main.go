package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (hitboxes and FPS)")
	level := flag.Int("level", 0, "level index to start at")
	watch := flag.Bool("watch", false, "reload prefabs/ and levels/ YAML from disk on change")
	mute := flag.Bool("mute", false, "disable menu music")
	scale := flag.Float64("scale", 1, "window scale")
	flag.Parse()

	game, err := NewGame(Options{
		StartLevel: *level,
		Debug:      *debug,
		Watch:      *watch,
		Mute:       *mute,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(int(float64(w)**scale), int(float64(h)**scale))
	ebiten.SetWindowTitle("bonk")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
