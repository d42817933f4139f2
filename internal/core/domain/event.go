package domain

import "time"

// EventEntryAppended is emitted after a ledger entry commits.
const EventEntryAppended = "ledger.entry_appended"

// LedgerEvent is the payload published to downstream consumers.
type LedgerEvent struct {
	Type       string      `json:"type"`
	Entry      LedgerEntry `json:"entry"`
	Balance    int64       `json:"balance"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// NewEntryAppendedEvent builds the event for a committed entry.
func NewEntryAppendedEvent(entry LedgerEntry, balance int64) LedgerEvent {
	return LedgerEvent{
		Type:       EventEntryAppended,
		Entry:      entry,
		Balance:    balance,
		OccurredAt: entry.CreatedAt,
	}
}
