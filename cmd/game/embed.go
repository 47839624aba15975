package main

import "embed"

// configFS holds the bundled game.yaml and level files
//
//go:embed configs
var configFS embed.FS
