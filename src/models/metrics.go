package models

// MJournalMetrics is the snapshot served by /api/metrics.
type MJournalMetrics struct {
	MessagesTotal   int64            `json:"messages_total"`
	MessagesByKind  map[string]int64 `json:"messages_by_kind"`
	LastMessageUnix int64            `json:"last_message_unix"`
	PersistCount    int64            `json:"persist_count"`
	PersistFailures int64            `json:"persist_failures"`
	LastPersistUnix int64            `json:"last_persist_unix"`
	PrunedFiles     int64            `json:"pruned_files"`
}

// -----------------------------------------------------------------------------

// MWindowStats is the per-window message-rate aggregation.
type MWindowStats struct {
	Window            string  `json:"window"`
	Count             int     `json:"count"`
	ErrorCount        int     `json:"error_count"`
	ErrorRatio        float64 `json:"error_ratio"`
	MessagesPerMinute float64 `json:"messages_per_minute"`
}

// MJournalStats is the snapshot served by /api/stats.
type MJournalStats struct {
	ByKind    map[string]int          `json:"by_kind"`
	BySource  map[string]int          `json:"by_source"`
	Windows   map[string]MWindowStats `json:"windows"`
	MeanGapMs float64                 `json:"mean_gap_ms"`
	StdGapMs  float64                 `json:"std_gap_ms"`
}
