package analysis

import (
	"testing"
	"time"

	"trade-journal/src/logger"
	"trade-journal/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

func newTestFacade(windows ...string) *AnalysisFacade {
	cfg := &models.MConfig{
		Name:       "test",
		LogLevel:   "CRITICAL",
		WindowsAgg: windows,
	}
	return NewAnalysisFacade(cfg, logger.NewLogger(cfg, "test"))
}

func at(secondsAgo int, now time.Time) time.Time {
	return now.Add(-time.Duration(secondsAgo) * time.Second)
}

// -----------------------------------------------------------------------------

func TestNewAnalysisFacadeParsesWindows(t *testing.T) {
	f := newTestFacade("1m", "5m", "bogus")

	assert.Equal(t, int64(60), f.WindowsSecondsMap["1m"])
	assert.Equal(t, int64(300), f.WindowsSecondsMap["5m"])
	assert.NotContains(t, f.WindowsSecondsMap, "bogus")
}

// -----------------------------------------------------------------------------

func TestAnalyzeCountsByKindAndSource(t *testing.T) {
	f := newTestFacade()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	messages := []models.MMessage{
		{Kind: models.KindInfo, Source: "A", ServerTime: at(10, now)},
		{Kind: models.KindInfo, Source: "B", ServerTime: at(8, now)},
		{Kind: models.KindError, Source: "A", ServerTime: at(5, now)},
	}

	stats := f.Analyze(messages, now)

	assert.Equal(t, 2, stats.ByKind["MESSAGE_INFO"])
	assert.Equal(t, 1, stats.ByKind["MESSAGE_ERROR"])
	assert.Equal(t, 2, stats.BySource["A"])
	assert.Equal(t, 1, stats.BySource["B"])
}

// -----------------------------------------------------------------------------

func TestAnalyzeWindowBoundsAndErrorRatio(t *testing.T) {
	f := newTestFacade("1m")
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	messages := []models.MMessage{
		{Kind: models.KindInfo, Source: "A", ServerTime: at(90, now)}, // outside window
		{Kind: models.KindInfo, Source: "A", ServerTime: at(50, now)},
		{Kind: models.KindError, Source: "A", ServerTime: at(20, now)},
		{Kind: models.KindOrderInfo, Source: "A", ServerTime: at(5, now)},
	}

	stats := f.Analyze(messages, now)
	window := stats.Windows["1m"]

	assert.Equal(t, 3, window.Count)
	// Order info sits above Error in the severity ordering.
	assert.Equal(t, 2, window.ErrorCount)
	assert.InDelta(t, 2.0/3.0, window.ErrorRatio, 1e-9)
	assert.InDelta(t, 3.0, window.MessagesPerMinute, 1e-9)
}

func TestAnalyzeEmptyHistory(t *testing.T) {
	f := newTestFacade("1m")
	now := time.Now()

	stats := f.Analyze(nil, now)

	require.Contains(t, stats.Windows, "1m")
	assert.Equal(t, 0, stats.Windows["1m"].Count)
	assert.Zero(t, stats.MeanGapMs)
	assert.Zero(t, stats.StdGapMs)
}

// -----------------------------------------------------------------------------

func TestAnalyzeGapStats(t *testing.T) {
	f := newTestFacade()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	// Evenly spaced 1s apart: mean 1000ms, std 0.
	messages := []models.MMessage{
		{Kind: models.KindInfo, Source: "A", ServerTime: at(3, now)},
		{Kind: models.KindInfo, Source: "A", ServerTime: at(2, now)},
		{Kind: models.KindInfo, Source: "A", ServerTime: at(1, now)},
	}

	stats := f.Analyze(messages, now)

	assert.InDelta(t, 1000, stats.MeanGapMs, 1e-9)
	assert.InDelta(t, 0, stats.StdGapMs, 1e-9)
}
