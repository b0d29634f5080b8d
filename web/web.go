// Package web embeds the pages served by the arcade file server.
package web

import (
	"embed"
	"io/fs"
)

// The game pages load the wasm build and Go's loader script; both are
// produced into static/ so they are embedded with the pages.
//go:generate env GOOS=js GOARCH=wasm go build -o static/arcade.wasm ../cmd/arcade
//go:generate sh -c "cp \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" static/wasm_exec.js"

//go:embed static
var static embed.FS

// BrowserBuild names the generated files the game pages need.
var BrowserBuild = []string{"wasm_exec.js", "arcade.wasm"}

// MissingBuild returns the entries of BrowserBuild that root lacks.
func MissingBuild(root fs.FS) []string {
	var missing []string
	for _, name := range BrowserBuild {
		if _, err := fs.Stat(root, name); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}

// FS returns the page tree rooted at the static directory.
func FS() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
