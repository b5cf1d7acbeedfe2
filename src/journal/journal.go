package journal

import (
	"fmt"
	"sync"

	"trade-journal/src/interfaces"
	"trade-journal/src/logger"
	"trade-journal/src/models"
)

// -----------------------------------------------------------------------------
// Journal is the message aggregator: it validates incoming messages, fans
// them out to the console and push sinks according to the policy, buffers
// them, and owns persistence and retention over the log-file store.
//
// One instance is built by the composition root and passed by reference;
// there is no process-wide singleton.
// -----------------------------------------------------------------------------

// journalSource tags the journal's own self-logged messages.
const journalSource = "Journal"

// DefaultRetentionDays is the retention window used when none is given.
const DefaultRetentionDays = 30

type Journal struct {
	Config   *models.MConfig
	Logger   *logger.Logger
	Console  interfaces.IConsoleSink
	Push     interfaces.IPushSender
	Clock    interfaces.IClock
	Platform interfaces.IPlatformError
	Store    interfaces.ILogStore

	mu     sync.Mutex
	buffer *MessageBuffer
	policy Policy
	hooks  []hookEntry

	messagesTotal   int64
	messagesByKind  map[models.MessageKind]int64
	lastMessageUnix int64
	persistCount    int64
	persistFailures int64
	lastPersistUnix int64
	prunedFiles     int64
}

type hookEntry struct {
	hook  interfaces.IDiagnosticHook
	kinds map[models.MessageKind]struct{} // nil = all kinds
}

// -----------------------------------------------------------------------------

// New builds the aggregator and runs an initial retention pass over the
// store, mirroring the cleanup-at-startup behavior of the platform.
func New(
	cfg *models.MConfig,
	log *logger.Logger,
	console interfaces.IConsoleSink,
	push interfaces.IPushSender,
	clock interfaces.IClock,
	platform interfaces.IPlatformError,
	store interfaces.ILogStore,
) *Journal {
	j := &Journal{
		Config:         cfg,
		Logger:         log,
		Console:        console,
		Push:           push,
		Clock:          clock,
		Platform:       platform,
		Store:          store,
		buffer:         NewMessageBuffer(),
		messagesByKind: make(map[models.MessageKind]int64),
		policy: Policy{
			TerminalEnabled:  cfg.Terminal.Enabled,
			PushEnabled:      cfg.Push.Enabled,
			TerminalPriority: resolveKind(cfg.Terminal.Priority, models.KindInfo),
			PushPriority:     resolveKind(cfg.Push.Priority, models.KindError),
		},
	}

	j.PruneOldLogs(cfg.Journal.RetentionDays)
	return j
}

// -----------------------------------------------------------------------------

func resolveKind(name string, fallback models.MessageKind) models.MessageKind {
	if k, ok := models.KindFromName(name); ok {
		return k
	}
	return fallback
}

// -----------------------------------------------------------------------------
// Message factory
// -----------------------------------------------------------------------------

// NewMessage builds a message, stamping both clocks and the current platform
// error code. An empty source defaults to the unknown sentinel.
func (j *Journal) NewMessage(kind models.MessageKind, source, text string) models.MMessage {
	if source == "" {
		source = models.UnknownSource
	}
	return models.MMessage{
		Kind:          kind,
		Source:        source,
		Text:          text,
		SystemErrorID: j.Platform.LastError(),
		ServerTime:    j.Clock.ServerNow(),
		LocalTime:     j.Clock.LocalNow(),
	}
}

// -----------------------------------------------------------------------------
// AddMessage
// -----------------------------------------------------------------------------

// AddMessage validates the message, echoes it to the enabled sinks and
// appends it to the buffer. A message with a missing source or text first
// enqueues a self-logged Info notice per omission, so one malformed call
// grows the buffer by up to three entries.
func (j *Journal) AddMessage(msg models.MMessage) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.addLocked(msg)
}

// -----------------------------------------------------------------------------

func (j *Journal) addLocked(msg models.MMessage) bool {
	// Validation notices. Each notice carries a valid source and text, so
	// the recursion bottoms out after one level.
	if msg.Source == "" || msg.Source == models.UnknownSource {
		j.addLocked(j.NewMessage(models.KindInfo, journalSource, "message source is not specified"))
	}
	if msg.Text == "" {
		j.addLocked(j.NewMessage(models.KindInfo, journalSource, "message text is not specified"))
	}

	// Console echo
	if j.policy.PassesTerminal(msg.Kind) && j.Console != nil {
		j.Console.WriteLine(msg.ToConsoleForm())
	}

	// Push dispatch. The payload is truncated before hand-off; a declined
	// delivery never fails the add.
	if j.policy.PassesPush(msg.Kind) && j.Push != nil {
		if !j.Push.Send(msg.ToPushForm()) {
			j.Logger.Warning("Push sender %s declined message from %s", j.Push.Name(), msg.Source)
		}
	}

	ok := j.buffer.Add(msg)

	j.messagesTotal++
	j.messagesByKind[msg.Kind]++
	j.lastMessageUnix = msg.ServerTime.Unix()

	// Diagnostic hooks run after the message is buffered.
	for _, entry := range j.hooks {
		if entry.kinds != nil {
			if _, match := entry.kinds[msg.Kind]; !match {
				continue
			}
		}
		entry.hook.OnMessage(msg)
	}

	return ok
}

// -----------------------------------------------------------------------------
// Buffer access
// -----------------------------------------------------------------------------

// Clear empties the buffer; policy flags are untouched.
func (j *Journal) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.buffer.Clear()
}

// -----------------------------------------------------------------------------

// Total returns the number of buffered messages.
func (j *Journal) Total() int {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.buffer.Total()
}

// -----------------------------------------------------------------------------

// MessageAt returns the buffered message at index.
func (j *Journal) MessageAt(index int) (models.MMessage, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.buffer.At(index)
}

// -----------------------------------------------------------------------------
// Policy
// -----------------------------------------------------------------------------

// Policy returns a snapshot of the sink policy.
func (j *Journal) Policy() models.MPolicyView {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.policy.View()
}

// -----------------------------------------------------------------------------

// SetTerminal updates the terminal sink gate.
func (j *Journal) SetTerminal(enabled bool, priority models.MessageKind) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.policy.TerminalEnabled = enabled
	j.policy.TerminalPriority = priority
}

// -----------------------------------------------------------------------------

// SetPush updates the push sink gate.
func (j *Journal) SetPush(enabled bool, priority models.MessageKind) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.policy.PushEnabled = enabled
	j.policy.PushPriority = priority
}

// -----------------------------------------------------------------------------
// Hooks
// -----------------------------------------------------------------------------

// RegisterHook attaches a diagnostic observer. With no kinds the hook sees
// every message; otherwise only the listed kinds.
func (j *Journal) RegisterHook(hook interfaces.IDiagnosticHook, kinds ...models.MessageKind) {
	j.mu.Lock()
	defer j.mu.Unlock()

	entry := hookEntry{hook: hook}
	if len(kinds) > 0 {
		entry.kinds = make(map[models.MessageKind]struct{}, len(kinds))
		for _, k := range kinds {
			entry.kinds[k] = struct{}{}
		}
	}
	j.hooks = append(j.hooks, entry)
}

// -----------------------------------------------------------------------------
// Persistence
// -----------------------------------------------------------------------------

// PersistToFile appends every buffered message to today's log file. On an
// open failure (after the store's retry policy) it self-logs an Error and
// returns false. The buffer is NOT cleared here: repeated calls duplicate
// previously written lines unless the caller clears afterwards. The
// scheduler clears only after a successful flush.
func (j *Journal) PersistToFile() bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	path := j.Store.LogFileName(j.Clock.ServerNow())

	lines := make([]string, 0, j.buffer.Total())
	for i := 0; i < j.buffer.Total(); i++ {
		msg, _ := j.buffer.At(i)
		lines = append(lines, msg.ToPersistForm())
	}

	if err := j.Store.AppendLines(path, lines); err != nil {
		j.persistFailures++
		j.addLocked(j.NewMessage(models.KindError, journalSource,
			fmt.Sprintf("failed to persist journal to %s: %v", path, err)))
		return false
	}

	j.persistCount++
	j.lastPersistUnix = j.Clock.ServerNow().Unix()
	j.Logger.Debug("Persisted %d messages to %s", len(lines), path)
	return true
}

// -----------------------------------------------------------------------------
// Retention
// -----------------------------------------------------------------------------

// PruneOldLogs deletes log files whose whole-day age, measured from the
// creation timestamp, is at least retentionDays. The access-time age is
// computed as well but only surfaced on a debug line; the platform this
// mirrors carried the same unused computation, and the deletion decision
// keys off the creation time alone.
func (j *Journal) PruneOldLogs(retentionDays int) int {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	files, err := j.Store.ListLogs()
	if err != nil {
		j.Logger.Error("Failed to list log files: %v", err)
		return 0
	}

	now := j.Clock.ServerNow()
	deleted := 0

	for _, path := range files {
		created, accessed, err := j.Store.FileTimes(path)
		if err != nil {
			j.Logger.Warning("Failed to stat log file %s: %v", path, err)
			continue
		}

		accessAgeDays := int(now.Sub(accessed).Hours() / 24)
		j.Logger.Debug("Log file %s last accessed %d days ago", path, accessAgeDays)

		ageDays := int(now.Sub(created).Hours() / 24)
		if ageDays >= retentionDays {
			if j.Store.Delete(path) == nil {
				deleted++
			}
		}
	}

	if deleted > 0 {
		j.prunedFiles += int64(deleted)
		j.Logger.Info("Pruned %d log files older than %d days", deleted, retentionDays)
	}
	return deleted
}

// -----------------------------------------------------------------------------
// Metrics
// -----------------------------------------------------------------------------

// Metrics returns a counters snapshot for the API surface.
func (j *Journal) Metrics() models.MJournalMetrics {
	j.mu.Lock()
	defer j.mu.Unlock()

	byKind := make(map[string]int64, len(j.messagesByKind))
	for k, n := range j.messagesByKind {
		byKind[k.FullName()] = n
	}

	return models.MJournalMetrics{
		MessagesTotal:   j.messagesTotal,
		MessagesByKind:  byKind,
		LastMessageUnix: j.lastMessageUnix,
		PersistCount:    j.persistCount,
		PersistFailures: j.persistFailures,
		LastPersistUnix: j.lastPersistUnix,
		PrunedFiles:     j.prunedFiles,
	}
}
