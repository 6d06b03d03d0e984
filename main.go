package main

import (
	"github.com/DontEatRice/bookmarks/internal/config"
	"github.com/DontEatRice/bookmarks/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
