package models

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// -----------------------------------------------------------------------------
// Message Kinds
// -----------------------------------------------------------------------------

// MessageKind classifies a journal entry. Higher ordinal = higher severity.
type MessageKind int

const (
	KindInfo MessageKind = iota
	KindWarning
	KindError
	KindWrongPositionParams
	KindFailedPosition
	KindFailedRestoreDatabase
	KindOrderInfo
)

// UnknownSource marks a message whose origin was never set.
const UnknownSource = "unknown"

// MaxPushPayload is the hard cap on a push payload, in characters.
const MaxPushPayload = 255

// Timestamp layouts used across the console and persisted renderings.
const (
	TimeLayout = "2006.01.02 15:04:05"
	DateLayout = "2006.01.02"
)

// -----------------------------------------------------------------------------

// Explicit display tables. The full name goes to persisted files and push
// payloads, the short name to the console.
var kindFullNames = map[MessageKind]string{
	KindInfo:                  "MESSAGE_INFO",
	KindWarning:               "MESSAGE_WARNING",
	KindError:                 "MESSAGE_ERROR",
	KindWrongPositionParams:   "MESSAGE_WRONG_POSITION_PARAMS",
	KindFailedPosition:        "MESSAGE_FAILED_POSITION",
	KindFailedRestoreDatabase: "MESSAGE_FAILED_RESTORE_DATABASE",
	KindOrderInfo:             "MESSAGE_ORDER_INFO",
}

var kindShortNames = map[MessageKind]string{
	KindInfo:                  "INFO",
	KindWarning:               "WARNING",
	KindError:                 "ERROR",
	KindWrongPositionParams:   "WRONG_POSITION_PARAMS",
	KindFailedPosition:        "FAILED_POSITION",
	KindFailedRestoreDatabase: "FAILED_RESTORE_DATABASE",
	KindOrderInfo:             "ORDER_INFO",
}

// -----------------------------------------------------------------------------

// FullName returns the symbolic name, e.g. "MESSAGE_ERROR".
func (k MessageKind) FullName() string {
	if name, ok := kindFullNames[k]; ok {
		return name
	}
	return fmt.Sprintf("MESSAGE_UNKNOWN_%d", int(k))
}

// -----------------------------------------------------------------------------

// ShortName returns the console name, e.g. "ERROR".
func (k MessageKind) ShortName() string {
	if name, ok := kindShortNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_%d", int(k))
}

// -----------------------------------------------------------------------------

// KindFromName resolves a full or short symbolic name back to a kind.
func KindFromName(name string) (MessageKind, bool) {
	for k, full := range kindFullNames {
		if full == name {
			return k, true
		}
	}
	for k, short := range kindShortNames {
		if short == name {
			return k, true
		}
	}
	return KindInfo, false
}

// -----------------------------------------------------------------------------

// AllKinds returns every kind in ascending severity order.
func AllKinds() []MessageKind {
	return []MessageKind{
		KindInfo,
		KindWarning,
		KindError,
		KindWrongPositionParams,
		KindFailedPosition,
		KindFailedRestoreDatabase,
		KindOrderInfo,
	}
}

// -----------------------------------------------------------------------------
// MMessage
// -----------------------------------------------------------------------------

// MMessage is one journal entry. Kind and both timestamps are fixed at
// construction; Source, Text, Retcode and SystemErrorID may be adjusted
// before the message is handed to a buffer.
type MMessage struct {
	Kind          MessageKind `json:"kind"`
	Source        string      `json:"source"`
	Text          string      `json:"text"`
	SystemErrorID int         `json:"system_error_id"`
	Retcode       int         `json:"retcode"`
	ServerTime    time.Time   `json:"server_time"`
	LocalTime     time.Time   `json:"local_time"`
}

// -----------------------------------------------------------------------------

// Pre-buffer adjustment setters. Kind and the timestamps stay fixed from
// construction.

func (m *MMessage) SetSource(source string) {
	if source == "" {
		source = UnknownSource
	}
	m.Source = source
}

func (m *MMessage) SetText(text string) {
	m.Text = text
}

func (m *MMessage) SetRetcode(retcode int) {
	m.Retcode = retcode
}

func (m *MMessage) SetSystemErrorID(id int) {
	m.SystemErrorID = id
}

// -----------------------------------------------------------------------------

// ToConsoleForm renders the message for the terminal:
// "<KIND>;<source>;<text>;<server time>".
func (m *MMessage) ToConsoleForm() string {
	return fmt.Sprintf("%s;%s;%s;%s",
		m.Kind.ShortName(), m.Source, m.Text, m.ServerTime.Format(TimeLayout))
}

// -----------------------------------------------------------------------------

// ToPersistForm renders one tab-separated log-file line (no trailing newline).
func (m *MMessage) ToPersistForm() string {
	return fmt.Sprintf("%s\t%s\t%s\t%s",
		m.ServerTime.Format(TimeLayout), m.Kind.FullName(), m.Source, m.Text)
}

// -----------------------------------------------------------------------------

// ToPushForm renders the push payload, hard-truncated to MaxPushPayload
// characters before transmission. The cut lands on a rune boundary so the
// wire form stays valid UTF-8.
func (m *MMessage) ToPushForm() string {
	payload := fmt.Sprintf("%s\t%s\t%s\t%s",
		m.Kind.FullName(), m.ServerTime.Format(TimeLayout), m.Source, m.Text)
	if utf8.RuneCountInString(payload) > MaxPushPayload {
		runes := []rune(payload)
		payload = string(runes[:MaxPushPayload])
	}
	return payload
}
