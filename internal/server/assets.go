package server

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var staticFS embed.FS

// Assets returns the browser runtime and stylesheet.
func Assets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return staticFS
	}
	return sub
}
