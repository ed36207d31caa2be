package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/club-passport/internal/repository"
)

const (
	listUsersSQL  = "SELECT id, full_name, username, email, role, approved FROM users"
	updateRoleSQL = "UPDATE users SET role = COALESCE(?, role), approved = COALESCE(?, approved) WHERE id = ?"
)

func TestListUsersOmitsHashes(t *testing.T) {
	db, mock := newMock(t)
	h := NewUserHandler(repository.NewUserRepo(db))

	mock.ExpectQuery(listUsersSQL).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "username", "email", "role", "approved"}).
			AddRow(1, "Alice", "alice", "a@example.com", "candidate", false))

	c, rec := newJSONCtx(http.MethodGet, "/api/users", "")
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "a@example.com")
	require.NotContains(t, rec.Body.String(), "password")
	require.NotContains(t, rec.Body.String(), "hash")
}

func newRoleCtx(id, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/roles/"+id, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestUpdateRoleApprovalOnly(t *testing.T) {
	db, mock := newMock(t)
	h := NewUserHandler(repository.NewUserRepo(db))

	// role is absent from the body, so the statement receives NULL and the
	// stored role survives via COALESCE.
	mock.ExpectExec(updateRoleSQL).
		WithArgs(nil, true, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := newRoleCtx("5", `{"approved":true}`)
	require.NoError(t, h.UpdateRole(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"updated":1}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRoleUnknownUser(t *testing.T) {
	db, mock := newMock(t)
	h := NewUserHandler(repository.NewUserRepo(db))

	mock.ExpectExec(updateRoleSQL).
		WithArgs("member", nil, 999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	c, rec := newRoleCtx("999", `{"role":"member"}`)
	require.NoError(t, h.UpdateRole(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"updated":0}`, rec.Body.String())
}

func TestUpdateRoleBadID(t *testing.T) {
	db, _ := newMock(t)
	h := NewUserHandler(repository.NewUserRepo(db))

	c, rec := newRoleCtx("abc", `{"approved":true}`)
	require.NoError(t, h.UpdateRole(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
