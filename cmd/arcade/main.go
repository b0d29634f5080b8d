// Command arcade plays snake or tetris in an ebiten window, or in the browser
// when built with GOOS=js GOARCH=wasm.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/arcade/audio"
	"github.com/plus3/arcade/games"
)

func main() {
	game := flag.String("game", "snake", fmt.Sprintf("The game to play (%s).", strings.Join(games.Names(), ", ")))
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "The random seed for piece and food placement.")
	volume := flag.Float64("volume", 0.3, "The sound effect volume from 0 (mute) to 1.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	flag.Parse()

	entry, err := games.Lookup(*game)
	if err != nil {
		log.Fatal(err)
	}

	player := audio.NewPlayer(*volume)
	if *volume > 0 {
		if err := player.Initialize(); err != nil {
			log.Printf("Sound disabled: %v", err)
		}
	}
	defer player.Cleanup()

	app, err := newApp(entry, rand.New(rand.NewPCG(*seed, *seed>>1)), player)
	if err != nil {
		log.Fatalf("Failed to start %s: %v", entry.Name, err)
	}
	if *debug {
		app.enableDebug()
	}

	ebiten.SetWindowTitle(entry.Name)
	ebiten.SetWindowSize(app.Layout(0, 0))
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
