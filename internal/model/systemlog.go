package model

import "time"

// LogLevel grades system-log entries.  Almost everything is INFO;
// CRITICAL is reserved for conditions needing manual reconciliation,
// such as a payment confirmed after its hold already expired.
type LogLevel string

const (
	LogInfo     LogLevel = "INFO"
	LogWarn     LogLevel = "WARN"
	LogCritical LogLevel = "CRITICAL"
)

// SystemLogEntry is one line of the append-only audit trail kept by the
// engine.  Entries are immutable once written; the store keeps only the
// most recent entries (bounded ring).
type SystemLogEntry struct {
	Seq      uint64
	At       time.Time
	Level    LogLevel
	Event    string
	FlightID string
	Details  string
}
