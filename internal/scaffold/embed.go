package scaffold

import "embed"

// The all: prefix keeps __init__.py.tmpl, which embed would otherwise skip.
//
//go:embed all:scaffolds
var scaffoldFS embed.FS
