// Package gamedata provides the embedded tuning tables for Math Wars.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
