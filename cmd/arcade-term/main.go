// Command arcade-term plays snake or tetris in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/arcade/audio"
	"github.com/plus3/arcade/games"
)

func main() {
	game := flag.String("game", "snake", fmt.Sprintf("The game to play (%s).", strings.Join(games.Names(), ", ")))
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "The random seed for piece and food placement.")
	volume := flag.Float64("volume", 0, "The sound effect volume from 0 (mute) to 1.")
	fps := flag.Int("fps", 60, "The number of frames drawn per second.")
	logFile := flag.String("log", "", "Write session logs to this file instead of discarding them.")
	flag.Parse()

	entry, err := games.Lookup(*game)
	if err != nil {
		log.Fatal(err)
	}
	if *fps <= 0 {
		log.Fatalf("Invalid frame rate %d", *fps)
	}

	logger := log.New(io.Discard, "", 0)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "[session] ", log.LstdFlags)
	}

	player := audio.NewPlayer(*volume)
	if *volume > 0 {
		if err := player.Initialize(); err != nil {
			logger.Printf("Sound disabled: %v", err)
		}
	}
	defer player.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	t, err := newTerminal(screen, entry, rand.New(rand.NewPCG(*seed, *seed>>1)), logger)
	if err != nil {
		screen.Fini()
		log.Fatalf("Failed to start %s: %v", entry.Name, err)
	}
	t.session.Subscribe(player.Listener())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go t.pollEvents(cancel)

	t.run(ctx, time.Second/time.Duration(*fps))
}
