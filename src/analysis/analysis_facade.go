package analysis

import (
	"time"

	"trade-journal/src/analysis/core"
	"trade-journal/src/logger"
	"trade-journal/src/models"
)

// -----------------------------------------------------------------------------
// AnalysisFacade computes message-rate statistics over a recent history
// slice: counts per kind and source, and per-window error rates over the
// configured aggregation windows.
// -----------------------------------------------------------------------------

type AnalysisFacade struct {
	Config            *models.MConfig
	WindowsSecondsMap map[string]int64
	Logger            *logger.Logger
}

// -----------------------------------------------------------------------------

func NewAnalysisFacade(cfg *models.MConfig, log *logger.Logger) *AnalysisFacade {
	// Initialize window mapping from config
	windowsMap := make(map[string]int64)
	for _, window := range cfg.WindowsAgg {
		if dur, err := time.ParseDuration(window); err == nil {
			windowsMap[window] = int64(dur.Seconds())
		} else {
			log.Warning("Skipping invalid aggregation window %q", window)
		}
	}

	return &AnalysisFacade{
		Config:            cfg,
		WindowsSecondsMap: windowsMap,
		Logger:            log,
	}
}

// -----------------------------------------------------------------------------

// Analyze builds the full stats snapshot for a history slice, evaluated
// at the given reference time (normally the server clock's now).
func (a *AnalysisFacade) Analyze(messages []models.MMessage, now time.Time) models.MJournalStats {
	stats := models.MJournalStats{
		ByKind:   make(map[string]int),
		BySource: make(map[string]int),
		Windows:  make(map[string]models.MWindowStats),
	}

	for _, m := range messages {
		stats.ByKind[m.Kind.FullName()]++
		stats.BySource[m.Source]++
	}

	for name := range a.WindowsSecondsMap {
		stats.Windows[name] = a.windowStats(messages, name, now)
	}

	stats.MeanGapMs, stats.StdGapMs = a.gapStats(messages)
	return stats
}

// -----------------------------------------------------------------------------

// windowStats aggregates one trailing window ending at now.
func (a *AnalysisFacade) windowStats(messages []models.MMessage, windowName string, now time.Time) models.MWindowStats {
	windowSeconds, ok := a.WindowsSecondsMap[windowName]
	if !ok {
		a.Logger.Error("Invalid window name %s", windowName)
		return models.MWindowStats{Window: windowName}
	}

	cutoff := now.Add(-time.Duration(windowSeconds) * time.Second)

	count := 0
	errorCount := 0
	for _, m := range messages {
		if m.ServerTime.Before(cutoff) || m.ServerTime.After(now) {
			continue
		}
		count++
		if m.Kind >= models.KindError {
			errorCount++
		}
	}

	return models.MWindowStats{
		Window:            windowName,
		Count:             count,
		ErrorCount:        errorCount,
		ErrorRatio:        core.CalculateRatio(errorCount, count),
		MessagesPerMinute: core.CalculateRatePerMinute(count, float64(windowSeconds)),
	}
}

// -----------------------------------------------------------------------------

// gapStats measures the spacing between consecutive messages, a cheap
// burst indicator for the dashboard.
func (a *AnalysisFacade) gapStats(messages []models.MMessage) (mean, std float64) {
	if len(messages) < 2 {
		return 0, 0
	}

	gaps := make([]float64, 0, len(messages)-1)
	for i := 1; i < len(messages); i++ {
		gap := messages[i].ServerTime.Sub(messages[i-1].ServerTime)
		gaps = append(gaps, float64(gap.Milliseconds()))
	}

	return core.CalculateMeanStd(gaps)
}
