package game

import (
	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/forestquest/internal/story"
)

// Config holds game construction options.
type Config struct {
	// Registry is the story to play. Required.
	Registry *story.Registry

	// Screen overrides the terminal, e.g. with a tcell.SimulationScreen.
	// Nil means the real terminal.
	Screen tcell.Screen

	// Logger defaults to a no-op logger.
	Logger *zap.Logger

	// Tracer defaults to the global provider's "game" tracer.
	Tracer trace.Tracer
}
