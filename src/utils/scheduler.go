package utils

import (
	"context"
	"sync"
	"time"

	"trade-journal/src/interfaces"
	"trade-journal/src/logger"
	"trade-journal/src/models"
)

// -----------------------------------------------------------------------------
// JournalScheduler drives the journal's flush-and-retention cycle:
// periodic persist-and-clear flushes, and one retention prune per day,
// run after every tracked market has closed.
// -----------------------------------------------------------------------------

type JournalScheduler struct {
	Journal   interfaces.IJournal
	Config    *models.MConfig
	Calendars map[string]*TradingCalendar
	Logger    *logger.Logger
	mu        sync.RWMutex

	lastPruneDay string // YYYY.MM.DD of the last retention pass
}

// -----------------------------------------------------------------------------

func NewJournalScheduler(j interfaces.IJournal, cfg *models.MConfig, log *logger.Logger) *JournalScheduler {
	s := &JournalScheduler{
		Journal:   j,
		Config:    cfg,
		Calendars: make(map[string]*TradingCalendar),
		Logger:    log,
	}

	for _, mic := range cfg.Markets {
		s.Calendars[mic] = GetCalendarByMIC(mic)
	}

	log.Info("JournalScheduler: tracking %d market calendars.", len(s.Calendars))
	return s
}

// -----------------------------------------------------------------------------

// AnyMarketOpen checks if ANY tracked market is currently open. With no
// calendars configured the journal is treated as always in session.
func (s *JournalScheduler) AnyMarketOpen() bool {
	now := time.Now().UTC()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.Calendars) == 0 {
		return true
	}

	for _, cal := range s.Calendars {
		if cal.IsOpenOnMinute(now) {
			return true
		}
	}

	return false
}

// -----------------------------------------------------------------------------

// Start runs the flush loop until the context is cancelled. A final flush
// happens on the way out so buffered messages survive shutdown.
func (s *JournalScheduler) Start(ctx context.Context, wg *sync.WaitGroup) {
	interval := time.Duration(s.Config.Journal.PersistIntervalSeconds) * time.Second

	wg.Add(1)
	go func() {
		defer wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.Flush()
				s.maybePrune()

			case <-ctx.Done():
				s.Flush()
				s.Logger.Info("JournalScheduler stopped.")
				return
			}
		}
	}()
}

// -----------------------------------------------------------------------------

// Flush persists the buffer and clears it only when the persist succeeded.
// PersistToFile itself never clears, so a failed flush keeps the messages
// for the next tick instead of dropping them.
func (s *JournalScheduler) Flush() bool {
	total := s.Journal.Total()
	if total == 0 {
		return true
	}

	if !s.Journal.PersistToFile() {
		s.Logger.Warning("Flush failed; keeping %d buffered messages for retry", total)
		return false
	}

	s.Journal.Clear()
	return true
}

// -----------------------------------------------------------------------------

// maybePrune runs the retention pass once per day, outside market hours.
// With no tracked markets there is no off-hours window, so the pass runs
// on the first tick of each day instead of never.
func (s *JournalScheduler) maybePrune() {
	s.mu.RLock()
	tracked := len(s.Calendars)
	s.mu.RUnlock()

	if tracked > 0 && s.AnyMarketOpen() {
		return
	}

	today := time.Now().UTC().Format(models.DateLayout)

	s.mu.Lock()
	alreadyDone := s.lastPruneDay == today
	if !alreadyDone {
		s.lastPruneDay = today
	}
	s.mu.Unlock()

	if alreadyDone {
		return
	}

	deleted := s.Journal.PruneOldLogs(s.Config.Journal.RetentionDays)
	s.Logger.Info("Daily retention pass removed %d files", deleted)
}
