// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jsontree renders JSON, HuJSON, or YAML values as box-drawing trees.
//
// Usage:
//
//	jsontree [flags] [file ...]
//
// With no files, or for a file named "-", input is read from stdin.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	setupLogger(os.Stderr, 0)
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("jsontree failed")
		os.Exit(1)
	}
}
