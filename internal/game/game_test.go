package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/samdwyer/forestquest/internal/adventure"
	"github.com/samdwyer/forestquest/internal/story"
	"github.com/samdwyer/forestquest/internal/telemetry"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateStory, "story"},
		{StateBanner, "banner"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.state.String(), "State(%d).String()", tt.state)
	}
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		name       string
		key        tcell.Key
		r          rune
		wantAction Action
		wantIndex  int
	}{
		{"first choice", tcell.KeyRune, '1', ActionChoose, 0},
		{"second choice", tcell.KeyRune, '2', ActionChoose, 1},
		{"ninth choice", tcell.KeyRune, '9', ActionChoose, 8},
		{"zero ignored", tcell.KeyRune, '0', ActionNone, 0},
		{"quit", tcell.KeyRune, 'q', ActionQuit, 0},
		{"quit upper", tcell.KeyRune, 'Q', ActionQuit, 0},
		{"escape", tcell.KeyEscape, 0, ActionQuit, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0, ActionQuit, 0},
		{"restart", tcell.KeyRune, 'r', ActionRestart, 0},
		{"enter", tcell.KeyEnter, 0, ActionConfirm, 0},
		{"space", tcell.KeyRune, ' ', ActionConfirm, 0},
		{"arrow", tcell.KeyUp, 0, ActionNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, index := actionForKey(tt.key, tt.r)
			assert.Equal(t, tt.wantAction, action)
			assert.Equal(t, tt.wantIndex, index)
		})
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "choose", ActionChoose.String())
	assert.Equal(t, "confirm", ActionConfirm.String())
	assert.Equal(t, "unknown", Action(42).String())
}

type testGame struct {
	*Game
	spans *tracetest.SpanRecorder
	logs  *observer.ObservedLogs
}

func newTestGame(t *testing.T, registry *story.Registry) *testGame {
	t.Helper()

	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	core, logs := observer.New(zap.DebugLevel)

	g, err := New(Config{
		Registry: registry,
		Screen:   tcell.NewSimulationScreen("UTF-8"),
		Logger:   zap.New(core),
		Tracer:   tp.Tracer("test"),
	})
	require.NoError(t, err)
	t.Cleanup(g.Close)

	g.startSession(context.Background())
	return &testGame{Game: g, spans: spans, logs: logs}
}

func (tg *testGame) press(r rune) {
	action, index := actionForKey(tcell.KeyRune, r)
	tg.apply(context.Background(), action, index)
}

func (tg *testGame) enter() {
	tg.apply(context.Background(), ActionConfirm, 0)
}

func (tg *testGame) spanNames() []string {
	var names []string
	for _, s := range tg.spans.Ended() {
		names = append(names, s.Name())
	}
	return names
}

func TestNewRequiresRegistry(t *testing.T) {
	_, err := New(Config{Screen: tcell.NewSimulationScreen("UTF-8")})
	assert.Error(t, err)
}

func TestNewDefaults(t *testing.T) {
	g, err := New(Config{
		Registry: story.MustLoadRegistry(),
		Screen:   tcell.NewSimulationScreen("UTF-8"),
	})
	require.NoError(t, err)
	defer g.Close()

	assert.NotNil(t, g.logger)
	assert.NotNil(t, g.tracer)
	assert.True(t, g.running)
	assert.Equal(t, StateStory, g.state)
}

func TestOngoingChoiceRerenders(t *testing.T) {
	tg := newTestGame(t, story.MustLoadRegistry())

	tg.press('1')

	assert.Equal(t, StateStory, tg.state)
	assert.Nil(t, tg.banner)
	assert.Equal(t, 2, tg.engine.CurrentNode().ID)
	assert.Equal(t, 1, tg.choicesMade)

	v := tg.view()
	assert.Equal(t, tg.engine.CurrentNode().Story, v.Story)
	assert.Len(t, v.Choices, 2)
	assert.False(t, v.ShowRestart)

	assert.Equal(t, []string{"adventure.start", "adventure.choice"}, tg.spanNames())
	assert.Equal(t, 1, tg.logs.FilterMessage("choice made").Len())
}

func TestSuccessShowsBannerThenRestart(t *testing.T) {
	registry := story.MustLoadRegistry()
	tg := newTestGame(t, registry)
	firstSession := tg.sessionID

	// Moonlit path, offer food, examine carefully
	tg.press('1')
	tg.press('1')
	tg.press('1')

	require.Equal(t, StateBanner, tg.state)
	require.NotNil(t, tg.banner)
	assert.Equal(t, registry.Messages().Success, tg.banner.Title)
	node6, _ := registry.GetByID(6)
	assert.Equal(t, node6.Story, tg.banner.Message)
	assert.True(t, tg.view().ShowRestart)

	// Choices are ignored while the banner is up
	tg.press('1')
	assert.Equal(t, StateBanner, tg.state)

	tg.enter()
	assert.Equal(t, StateStory, tg.state)
	assert.Nil(t, tg.banner)

	tg.press('r')
	assert.Equal(t, adventure.State{NodeID: 1, Complete: false}, tg.engine.State())
	assert.NotEqual(t, firstSession, tg.sessionID)
	assert.Equal(t, 0, tg.choicesMade)

	assert.Equal(t, []string{
		"adventure.start",
		"adventure.choice", "adventure.choice", "adventure.end", "adventure.choice",
		"adventure.reset", "adventure.start",
	}, tg.spanNames())
	assert.Equal(t, 1, tg.logs.FilterMessage("quest ended").Len())
}

func TestFailureBanner(t *testing.T) {
	registry := story.MustLoadRegistry()
	tg := newTestGame(t, registry)

	// Shadow path, attack with magic
	tg.press('2')
	tg.press('2')

	require.NotNil(t, tg.banner)
	assert.Equal(t, registry.Messages().Failure, tg.banner.Title)
	node8, _ := registry.GetByID(8)
	assert.Equal(t, node8.Story, tg.banner.Message)
}

func TestInvalidChoiceShowsError(t *testing.T) {
	registry := story.MustLoadRegistry()
	tg := newTestGame(t, registry)

	tg.press('5')

	require.NotNil(t, tg.banner)
	assert.Equal(t, errorBannerTitle, tg.banner.Title)
	assert.Equal(t, registry.Messages().Invalid, tg.banner.Message)
	assert.Equal(t, 1, tg.engine.CurrentNode().ID, "no transition")
	assert.Equal(t, 0, tg.choicesMade)
	assert.Equal(t, 1, tg.logs.FilterMessage("choice rejected").Len())
}

func TestChoiceAfterEndingOnNonTerminalNode(t *testing.T) {
	registry, err := story.NewRegistry(story.Definition{
		Title:  "Short",
		RootID: 1,
		Nodes: []story.Node{
			{ID: 1, Story: "A locked door.", Choices: []story.Choice{
				{Title: "Walk away", IsSuccessful: false},
				{Title: "Knock", IsSuccessful: true},
			}},
		},
	})
	require.NoError(t, err)
	tg := newTestGame(t, registry)

	tg.press('1')
	require.NotNil(t, tg.banner)
	assert.Equal(t, story.DefaultMessages.Failure, tg.banner.Title)
	assert.Equal(t, "A locked door.", tg.banner.Message)
	tg.enter()

	// The engine is complete, so the restart control replaces the choices
	assert.True(t, tg.view().ShowRestart)

	// A choice key now is a contract violation surfaced as an error
	tg.press('2')
	require.NotNil(t, tg.banner)
	assert.Equal(t, story.DefaultMessages.Complete, tg.banner.Message)
	tg.enter()

	// Enter restarts once complete
	tg.enter()
	assert.False(t, tg.engine.IsComplete())
}

func TestRestartIgnoredWhileOngoing(t *testing.T) {
	tg := newTestGame(t, story.MustLoadRegistry())
	session := tg.sessionID

	tg.press('1')
	tg.press('r')

	assert.Equal(t, 2, tg.engine.CurrentNode().ID)
	assert.Equal(t, session, tg.sessionID)
}

func TestRestartFromNodeWithoutChoices(t *testing.T) {
	registry, err := story.NewRegistry(story.Definition{
		Title:  "Dead end",
		RootID: 1,
		Nodes: []story.Node{
			{ID: 1, Story: "A narrow path.", Choices: []story.Choice{
				{Title: "Follow it", IsSuccessful: true, NextNodeID: story.NodeRef(2)},
			}},
			{ID: 2, Story: "The path stops at a wall."},
		},
	})
	require.NoError(t, err)
	tg := newTestGame(t, registry)
	session := tg.sessionID

	tg.press('1')
	require.Equal(t, StateStory, tg.state)
	require.False(t, tg.engine.IsComplete())

	v := tg.view()
	assert.Empty(t, v.Choices)
	assert.True(t, v.ShowRestart)

	tg.press('r')
	assert.Equal(t, adventure.State{NodeID: 1, Complete: false}, tg.engine.State())
	assert.NotEqual(t, session, tg.sessionID)
	assert.False(t, tg.view().ShowRestart)
}

func TestQuitStopsLoop(t *testing.T) {
	tg := newTestGame(t, story.MustLoadRegistry())

	tg.press('q')
	assert.False(t, tg.running)
}

func TestRunExitsOnQuitKey(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	g, err := New(Config{
		Registry: story.MustLoadRegistry(),
		Screen:   sim,
		Tracer:   telemetry.NoopTracer(),
	})
	require.NoError(t, err)

	sim.InjectKey(tcell.KeyRune, '1', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, g.Run(context.Background()))
	assert.False(t, g.running)
	assert.Equal(t, 2, g.engine.CurrentNode().ID)
	assert.Nil(t, g.screen, "Run closes the screen")
}
