package game

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/forestquest/internal/adventure"
	"github.com/samdwyer/forestquest/internal/story"
	"github.com/samdwyer/forestquest/internal/telemetry"
	"github.com/samdwyer/forestquest/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	registry *story.Registry
	engine   *adventure.Engine
	state    State
	banner   *ui.Banner
	running  bool

	sessionID   uuid.UUID // New for every quest, shared by its spans and log lines
	choicesMade int

	logger *zap.Logger
	tracer trace.Tracer
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	if cfg.Registry == nil {
		return nil, errors.New("game: story registry is required")
	}

	var screen *ui.Screen
	var err error
	if cfg.Screen != nil {
		screen, err = ui.NewScreenWith(cfg.Screen)
	} else {
		screen, err = ui.NewScreen()
	}
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = telemetry.Tracer("game")
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		registry: cfg.Registry,
		engine:   adventure.New(cfg.Registry),
		state:    StateStory,
		running:  true,
		logger:   logger,
		tracer:   tracer,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	g.startSession(ctx)

	for g.running {
		g.renderer.Render(g.view())

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	g.logger.Info("game closed", zap.String("session.id", g.sessionID.String()))
	g.Close()
	return nil
}

// view builds the frame for the current state.
func (g *Game) view() ui.View {
	node := g.engine.CurrentNode()

	v := ui.View{
		Title:       g.registry.Title(),
		Story:       node.Story,
		ShowRestart: g.canRestart(),
		Banner:      g.banner,
		Accent:      g.registry.AccentColor(),
	}
	for _, c := range node.Choices {
		v.Choices = append(v.Choices, ui.ChoiceButton{Title: c.Title, Description: c.Description})
	}
	return v
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, index := actionForKey(ev.Key(), ev.Rune())
		g.apply(ctx, action, index)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized
		g.running = false
	}
}

// apply performs an action in the current state.
func (g *Game) apply(ctx context.Context, action Action, index int) {
	if action == ActionQuit {
		g.running = false
		return
	}

	if g.state == StateBanner {
		if action == ActionConfirm {
			g.dismissBanner()
		}
		return
	}

	switch action {
	case ActionChoose:
		g.choose(ctx, index)
	case ActionRestart, ActionConfirm:
		if g.canRestart() {
			g.restart(ctx)
		}
	}
}

// canRestart reports whether the restart control is offered: once the quest
// is over, or on a node that leaves the player nothing to choose.
func (g *Game) canRestart() bool {
	return g.engine.IsComplete() || !g.engine.CurrentNode().HasChoices()
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
