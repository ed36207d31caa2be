package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/club-passport/internal/model"
)

// EventRepo owns the events table. Events are insert-only; there are no
// update or delete statements in this repository on purpose.
type EventRepo struct{ DB *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{DB: db} }

// Create inserts the event and assigns the generated id back onto e.
// Datetime and category are stored verbatim; the store applies no parsing.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO events (title, datetime, category, points, description) VALUES (?,?,?,?,?)",
		e.Title, e.Datetime, e.Category, e.Points, e.Description)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return nil
}

// ListAll returns every event. Ordering is whatever the store yields; the
// API makes no ordering promise.
func (r *EventRepo) ListAll(ctx context.Context) ([]model.Event, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, title, datetime, category, points, description FROM events")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Datetime, &e.Category, &e.Points, &e.Description); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
