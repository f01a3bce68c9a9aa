package game

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/samdwyer/forestquest/internal/adventure"
	"github.com/samdwyer/forestquest/internal/ui"
)

// errorBannerTitle heads the banner shown for a rejected choice.
const errorBannerTitle = "Error"

// startSession begins a new quest at the story root.
func (g *Game) startSession(ctx context.Context) {
	g.sessionID = uuid.New()
	g.choicesMade = 0

	_, span := g.tracer.Start(ctx, "adventure.start")
	span.SetAttributes(
		attribute.String("session.id", g.sessionID.String()),
		attribute.String("story.title", g.registry.Title()),
		attribute.Int("story.nodes", g.registry.Count()),
		attribute.Int("node.id", g.engine.State().NodeID),
	)
	span.End()

	g.logger.Info("quest started",
		zap.String("session.id", g.sessionID.String()),
		zap.String("story.title", g.registry.Title()),
	)
}

// choose hands a choice to the engine and shows what came of it.
func (g *Game) choose(ctx context.Context, index int) {
	from := g.engine.State()

	ctx, span := g.tracer.Start(ctx, "adventure.choice")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", g.sessionID.String()),
		attribute.Int("node.id", from.NodeID),
		attribute.Int("choice.index", index),
	)

	outcome, err := g.engine.MakeChoice(index)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		g.logger.Warn("choice rejected",
			zap.String("session.id", g.sessionID.String()),
			zap.Int("node.id", from.NodeID),
			zap.Int("choice.index", index),
			zap.Error(err),
		)
		g.showBanner(errorBannerTitle, g.errorMessage(err))
		return
	}

	g.choicesMade++
	to := g.engine.State()
	span.SetAttributes(
		attribute.String("outcome", outcome.Kind.String()),
		attribute.Int("node.next", to.NodeID),
	)
	g.logger.Info("choice made",
		zap.String("session.id", g.sessionID.String()),
		zap.Int("node.id", from.NodeID),
		zap.Int("choice.index", index),
		zap.Int("node.next", to.NodeID),
		zap.Stringer("outcome", outcome),
	)

	if !outcome.IsEnding() {
		return
	}

	msgs := g.registry.Messages()
	switch outcome.Kind {
	case adventure.OutcomeSuccess:
		g.showBanner(msgs.Success, outcome.Text)
	case adventure.OutcomeFailure:
		g.showBanner(msgs.Failure, outcome.Text)
	}
	g.endSession(ctx, outcome)
}

// endSession records a finished quest.
func (g *Game) endSession(ctx context.Context, outcome adventure.Outcome) {
	_, span := g.tracer.Start(ctx, "adventure.end")
	span.SetAttributes(
		attribute.String("session.id", g.sessionID.String()),
		attribute.String("outcome", outcome.Kind.String()),
		attribute.Int("choices_made", g.choicesMade),
		attribute.Int("node.id", g.engine.State().NodeID),
	)
	span.End()

	g.logger.Info("quest ended",
		zap.String("session.id", g.sessionID.String()),
		zap.Stringer("outcome", outcome),
		zap.Int("choices_made", g.choicesMade),
	)
}

// restart resets the engine and begins a new session.
func (g *Game) restart(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "adventure.reset")
	span.SetAttributes(
		attribute.String("session.id", g.sessionID.String()),
		attribute.Int("node.id", g.engine.State().NodeID),
		attribute.Bool("complete", g.engine.IsComplete()),
	)
	g.engine.Reset()
	span.End()

	g.startSession(ctx)
}

// showBanner switches to the banner state.
func (g *Game) showBanner(title, message string) {
	g.banner = &ui.Banner{Title: title, Message: message}
	g.state = StateBanner
}

// dismissBanner returns to the story.
func (g *Game) dismissBanner() {
	g.banner = nil
	g.state = StateStory
}

// errorMessage returns the player-facing text for an engine error.
func (g *Game) errorMessage(err error) string {
	msgs := g.registry.Messages()
	switch {
	case errors.Is(err, adventure.ErrAdventureComplete):
		return msgs.Complete
	case errors.Is(err, adventure.ErrInvalidChoice):
		return msgs.Invalid
	default:
		return err.Error()
	}
}
