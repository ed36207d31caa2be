package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/club-passport/internal/middleware"
	"github.com/iliyamo/club-passport/internal/queue"
	"github.com/iliyamo/club-passport/internal/repository"
	queue_publisher "github.com/iliyamo/club-passport/internal/service"
)

// publishAttendance is swapped out in tests so they do not dial a broker.
var publishAttendance = queue_publisher.PublishAttendanceRecorded

// AttendanceHandler serves the attendance ledger.
type AttendanceHandler struct {
	Ledger *repository.AttendanceRepo
}

func NewAttendanceHandler(ledger *repository.AttendanceRepo) *AttendanceHandler {
	return &AttendanceHandler{Ledger: ledger}
}

type submitAttendanceReq struct {
	EventID  uint64 `json:"event_id"`
	Attended bool   `json:"attended"`
}

// Submit upserts the caller's attendance for an event and returns the ledger
// record id. The user id comes exclusively from the verified token, so a
// member can never record attendance on someone else's behalf. Resubmitting
// for the same event overwrites the previous value; the pair invariant lives
// in the repository's single-statement upsert.
//
// The recorded event is also published to the broker for downstream points
// tallying. Publishing is fire-and-forget: a broker outage must not fail the
// member's request.
func (h *AttendanceHandler) Submit(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "No token"})
	}

	var req submitAttendanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Ledger.Record(ctx, userID, req.EventID, req.Attended)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	go func(ev queue.AttendanceRecordedEvent) {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pubCancel()
		_ = publishAttendance(pubCtx, ev)
	}(queue.AttendanceRecordedEvent{
		RecordID:   id,
		UserID:     userID,
		EventID:    req.EventID,
		Attended:   req.Attended,
		RecordedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{"id": id})
}
