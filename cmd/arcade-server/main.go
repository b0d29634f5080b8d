// Command arcade-server serves the arcade pages and wasm build.
//
// The embedded pages include the wasm build only when go generate ./web has
// run before the server is built.
//
// Settings come from flags, which default to the ARCADE_ADDR and ARCADE_ROOT
// environment variables. A .env file in the working directory is loaded first
// when present.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/plus3/arcade/server"
	"github.com/plus3/arcade/web"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Failed to load .env: %v", err)
	}

	addr := flag.String("addr", envOr("ARCADE_ADDR", server.DefaultAddr), "The address to listen on.")
	root := flag.String("root", os.Getenv("ARCADE_ROOT"), "Serve files from this directory instead of the embedded pages.")
	flag.Parse()

	var files fs.FS = web.FS()
	if *root != "" {
		info, err := os.Stat(*root)
		if err != nil {
			log.Fatalf("Failed to open root: %v", err)
		}
		if !info.IsDir() {
			log.Fatalf("Root %s is not a directory", *root)
		}
		files = os.DirFS(*root)
	}
	if missing := web.MissingBuild(files); len(missing) > 0 {
		log.Printf("Game pages will not load without %s. Run go generate ./web or pass -root.", strings.Join(missing, ", "))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(files, *addr)
	if err := srv.ListenAndServe(ctx); err != nil {
		if errors.Is(err, server.ErrPortInUse) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
