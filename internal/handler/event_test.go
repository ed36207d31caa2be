package handler

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/club-passport/internal/repository"
)

const (
	insertEventSQL = "INSERT INTO events (title, datetime, category, points, description) VALUES (?,?,?,?,?)"
	listEventsSQL  = "SELECT id, title, datetime, category, points, description FROM events"
)

func TestCreateEvent(t *testing.T) {
	db, mock := newMock(t)
	h := NewEventHandler(repository.NewEventRepo(db), nil, 0)

	mock.ExpectExec(insertEventSQL).
		WithArgs("Meetup", "2024-01-01", "social", 5, "").
		WillReturnResult(sqlmock.NewResult(3, 1))

	c, rec := newJSONCtx(http.MethodPost, "/api/events",
		`{"title":"Meetup","datetime":"2024-01-01","category":"social","points":5}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"id":3}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEventMissingTitle(t *testing.T) {
	db, _ := newMock(t)
	h := NewEventHandler(repository.NewEventRepo(db), nil, 0)

	c, rec := newJSONCtx(http.MethodPost, "/api/events", `{"datetime":"2024-01-01"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListEvents(t *testing.T) {
	db, mock := newMock(t)
	h := NewEventHandler(repository.NewEventRepo(db), nil, 0)

	mock.ExpectQuery(listEventsSQL).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "datetime", "category", "points", "description"}).
			AddRow(1, "Meetup", "2024-01-01", "social", 5, ""))

	c, rec := newJSONCtx(http.MethodGet, "/api/events", "")
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Meetup")
}
