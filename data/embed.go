// Package data provides embedded story data and utilities for reading it.
package data

import "embed"

// dataFS embeds all story files from the data directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// FS returns the embedded filesystem containing story data.
func FS() embed.FS {
	return dataFS
}
