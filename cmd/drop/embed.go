package main

import "embed"

//go:embed configs/game.yaml
var configFS embed.FS
