package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/club-passport/internal/model"
)

// AttendanceRepo is the attendance ledger. It owns the attendance table and
// the one invariant that matters: at most one record per (user_id, event_id).
type AttendanceRepo struct{ DB *sql.DB }

func NewAttendanceRepo(db *sql.DB) *AttendanceRepo { return &AttendanceRepo{DB: db} }

// Record upserts the caller's attendance for an event and returns the record
// id. REPLACE INTO is a single atomic statement against the
// UNIQUE(user_id, event_id) key: a second submission for the same pair
// deletes the old row and inserts a fresh one with the latest attended value
// and a new id. Two concurrent submissions can never produce two rows.
//
// event_id is not checked against the events table; a dangling reference is
// accepted, matching the source system.
func (r *AttendanceRepo) Record(ctx context.Context, userID, eventID uint64, attended bool) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"REPLACE INTO attendance (user_id, event_id, attended) VALUES (?,?,?)",
		userID, eventID, attended)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUserAndEvent fetches a single ledger entry. sql.ErrNoRows passes
// through when the pair has never been recorded.
func (r *AttendanceRepo) GetByUserAndEvent(ctx context.Context, userID, eventID uint64) (model.Attendance, error) {
	a := model.Attendance{UserID: userID, EventID: eventID}
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, attended FROM attendance WHERE user_id=? AND event_id=? LIMIT 1",
		userID, eventID).Scan(&a.ID, &a.Attended)
	return a, err
}
