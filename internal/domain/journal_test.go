package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/snake/internal/model"
)

func TestJournal_Summary(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	journal, err := NewJournal(t.TempDir(), "session-1", start)
	require.NoError(t, err)
	defer journal.Close()

	events := []m.Event{
		{Kind: m.EventSpawn, At: start, Length: 3, Period: 600 * time.Millisecond},
		{Kind: m.EventTurn, At: start.Add(time.Second), Length: 3, Period: 600 * time.Millisecond},
		{Kind: m.EventAdvance, At: start.Add(2 * time.Second), Length: 3, Period: 600 * time.Millisecond},
		{Kind: m.EventEat, At: start.Add(3 * time.Second), Length: 4, Score: 1, Period: 570 * time.Millisecond},
		{Kind: m.EventAdvance, At: start.Add(4 * time.Second), Length: 4, Score: 1, Period: 570 * time.Millisecond},
		{Kind: m.EventLoss, At: start.Add(5 * time.Second), Length: 4, Score: 1, Period: 570 * time.Millisecond, Cause: m.CauseSelfBite},
	}

	for _, event := range events {
		require.NoError(t, journal.Record(event))
	}

	summary, err := journal.Summary()
	require.NoError(t, err)

	assert.Equal(t, m.Summary{
		SessionID:   "session-1",
		Advances:    2,
		Turns:       1,
		Spawned:     1,
		Eaten:       1,
		Score:       1,
		MaxLength:   4,
		FinalPeriod: 570 * time.Millisecond,
		Lost:        true,
		Cause:       m.CauseSelfBite,
		Duration:    5 * time.Second,
	}, summary)
}

func TestJournal_EmptySummary(t *testing.T) {
	journal, err := NewJournal(t.TempDir(), "empty", time.Time{})
	require.NoError(t, err)
	defer journal.Close()

	summary, err := journal.Summary()
	require.NoError(t, err)
	assert.Equal(t, m.Summary{SessionID: "empty"}, summary)
}

func TestJournal_ClosedSummaryFails(t *testing.T) {
	journal, err := NewJournal(t.TempDir(), "closed", time.Time{})
	require.NoError(t, err)
	require.NoError(t, journal.Close())

	_, err = journal.Summary()
	require.Error(t, err)
	require.Error(t, journal.Record(m.Event{Kind: m.EventAdvance}))
}

func TestJournal_InvalidDir(t *testing.T) {
	_, err := NewJournal("/dev/null/journal", "bad", time.Time{})
	require.Error(t, err)
}

func TestDiscardJournal(t *testing.T) {
	journal := DiscardJournal()

	require.NoError(t, journal.Record(m.Event{Kind: m.EventEat}))
	require.NoError(t, journal.Flush())
	summary, err := journal.Summary()
	require.NoError(t, err)
	assert.Equal(t, m.Summary{}, summary)
	require.NoError(t, journal.Close())
}

func TestJournal_DurationFromSessionStart(t *testing.T) {
	started := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	journal, err := NewJournal(t.TempDir(), "late", started)
	require.NoError(t, err)
	defer journal.Close()

	require.NoError(t, journal.Record(m.Event{Kind: m.EventSpawn, At: started.Add(600 * time.Millisecond)}))
	require.NoError(t, journal.Record(m.Event{Kind: m.EventAdvance, At: started.Add(3 * time.Second)}))

	summary, err := journal.Summary()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, summary.Duration)
}

func TestJournal_RecordBuffersUntilFlush(t *testing.T) {
	journal, err := NewJournal(t.TempDir(), "buffered", time.Time{})
	require.NoError(t, err)
	defer journal.Close()

	spill := journal.(*spillJournal).spill

	require.NoError(t, journal.Record(m.Event{Kind: m.EventAdvance}))
	require.NoError(t, journal.Record(m.Event{Kind: m.EventTurn}))
	assert.Equal(t, uint64(0), spill.Len())

	require.NoError(t, journal.Flush())
	assert.Equal(t, uint64(2), spill.Len())

	var seqs []uint64
	require.NoError(t, spill.Range(func(_ uint64, event m.Event) error {
		seqs = append(seqs, event.Seq)
		return nil
	}))
	assert.Equal(t, []uint64{1, 2}, seqs)

	require.NoError(t, journal.Flush())
	assert.Equal(t, uint64(2), spill.Len())
}

func TestJournal_CloseFlushesPending(t *testing.T) {
	journal, err := NewJournal(t.TempDir(), "pending", time.Time{})
	require.NoError(t, err)

	spill := journal.(*spillJournal).spill

	require.NoError(t, journal.Record(m.Event{Kind: m.EventAdvance}))
	require.NoError(t, journal.Close())
	assert.Equal(t, uint64(1), spill.Len())
}
