package model

// Attendance represents a row in the `attendance` table. The table carries a
// UNIQUE(user_id, event_id) key, so at most one record exists per member and
// event; a later submission replaces the earlier one and the row id is
// regenerated by the upsert.
//
// EventID is not validated against the events table. Recording attendance for
// an id that does not exist is accepted, matching the source system.
type Attendance struct {
	ID       uint64 `json:"id"`
	UserID   uint64 `json:"user_id"`
	EventID  uint64 `json:"event_id"`
	Attended bool   `json:"attended"`
}
