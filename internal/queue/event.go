// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// AttendanceRecordedEvent is published whenever a member records attendance.
// It carries enough for downstream consumers (points tallying, notifications)
// to work without querying the primary database. RecordID changes when a
// member resubmits for the same event because the ledger upsert regenerates
// the row id.
type AttendanceRecordedEvent struct {
	RecordID   uint64 `json:"record_id"`
	UserID     uint64 `json:"user_id"`
	EventID    uint64 `json:"event_id"`
	Attended   bool   `json:"attended"`
	RecordedAt string `json:"recorded_at"`
}
