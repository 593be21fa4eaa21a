// Package engine defines the AI engine interface and implementations.
package engine

import "github.com/namecast/namecast"

// Engine is the interface for AI translation engines.
// This is an alias to the main package interface for convenience.
type Engine = namecast.Engine
