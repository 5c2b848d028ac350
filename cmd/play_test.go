package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/snake/internal/controller"
	"gooze.dev/pkg/snake/internal/domain"
	domainmocks "gooze.dev/pkg/snake/internal/domain/mocks"
	m "gooze.dev/pkg/snake/internal/model"
)

// useMockGame swaps the shared game and UI for the duration of a test.
func useMockGame(t *testing.T, cmd *cobra.Command) *domainmocks.MockGame {
	t.Helper()

	mockGame := domainmocks.NewMockGame(t)

	originalGame, originalUI := game, ui
	game = mockGame
	ui = controller.NewSimpleUI(cmd, mockGame)

	t.Cleanup(func() {
		game, ui = originalGame, originalUI
	})

	return mockGame
}

func lostSnapshot() m.Snapshot {
	return m.Snapshot{
		SessionID: "session-1",
		BoardSize: 3,
		Snake:     []m.Position{{Row: 0, Column: 4}, {Row: 0, Column: 3}, {Row: 0, Column: 2}},
		Direction: m.Right,
		Lost:      true,
		Cause:     m.CauseOutOfBounds,
		Period:    600 * time.Millisecond,
	}
}

func TestPlayCmd_RunsUntilLoss(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newPlayCmd())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	mockGame := useMockGame(t, cmd)
	mockGame.EXPECT().Start(mock.Anything, mock.MatchedBy(func(settings m.Settings) bool {
		return settings.BoardSize == 3 && settings.Seed == 42
	})).Return(nil, nil).Once()
	mockGame.EXPECT().Snapshot().Return(lostSnapshot(), nil).Once()
	mockGame.EXPECT().Stop().Return().Once()
	mockGame.EXPECT().Summary().Return(m.Summary{SessionID: "session-1", Advances: 2, Lost: true, Cause: m.CauseOutOfBounds}, nil).Once()
	mockGame.EXPECT().Close().Return(nil).Once()

	cmd.SetArgs(testLogArgs(t, "play", "--size", "3", "--seed", "42"))
	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Ohhh nooo! out-of-bounds")
	assert.Contains(t, output, "Advances")
}

func TestPlayCmd_YAMLSummary(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newPlayCmd())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	mockGame := useMockGame(t, cmd)
	mockGame.EXPECT().Start(mock.Anything, mock.Anything).Return(nil, nil).Once()
	mockGame.EXPECT().Snapshot().Return(lostSnapshot(), nil).Once()
	mockGame.EXPECT().Stop().Return().Once()
	mockGame.EXPECT().Summary().Return(m.Summary{SessionID: "session-1", Score: 2}, nil).Once()
	mockGame.EXPECT().Close().Return(nil).Once()

	cmd.SetArgs(testLogArgs(t, "play", "--format", "yaml"))
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "session: session-1")
	assert.Contains(t, out.String(), "score: 2")
}

func TestPlayCmd_InvalidSettings(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newPlayCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	useMockGame(t, cmd)

	cmd.SetArgs(testLogArgs(t, "play", "--size", "0"))
	err := cmd.Execute()
	require.ErrorIs(t, err, m.ErrInvalidSettings)
}

func TestPlayCmd_SummaryError(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newPlayCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockGame := useMockGame(t, cmd)
	mockGame.EXPECT().Start(mock.Anything, mock.Anything).Return(nil, nil).Once()
	mockGame.EXPECT().Snapshot().Return(lostSnapshot(), nil).Once()
	mockGame.EXPECT().Stop().Return().Once()
	mockGame.EXPECT().Summary().Return(m.Summary{}, domain.ErrNoSession).Once()
	mockGame.EXPECT().Close().Return(nil).Once()

	cmd.SetArgs(testLogArgs(t, "play"))
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrNoSession)
}
