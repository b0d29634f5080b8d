package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/arcade/games"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total wall-clock duration the soak should run for.")
	perGame := flag.Int("sessions", 4, "The number of concurrent sessions of each game.")
	step := flag.Duration("step", 16*time.Millisecond, "The simulated time between frames.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "The random seed for games and key presses.")
	verbose := flag.Bool("v", false, "Log session lifecycle events.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting arcade soak test...")

	var sessionLog *log.Logger
	if *verbose {
		sessionLog = log.New(os.Stderr, "[session] ", log.LstdFlags)
	}

	soak, err := NewSoak(*perGame, *seed, *step, sessionLog)
	if err != nil {
		log.Fatalf("Failed to create sessions: %v", err)
	}
	soak.Start()

	report := &Report{
		Duration:       *duration,
		Sessions:       *perGame * len(games.All()),
		Step:           *step,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d sessions for %s...\n", report.Sessions, *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalFrames int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			soak.Frame()
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = totalFrames
	report.SimulatedTime = soak.Elapsed()
	report.Games = soak.Results()
	report.Scheduler = soak.Scheduler().GetStats()
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Soak test complete.")
}
