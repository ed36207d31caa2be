package handler

import (
	"errors"

	"github.com/DATA-DOG/go-sqlmock"
)

// sqlErr1062 mimics the MySQL duplicate-key error the user repository maps
// onto ErrEmailExists.
var sqlErr1062 = errors.New("Error 1062 (23000): Duplicate entry 'dup@example.com' for key 'uq_users_email'")

// userRow builds a row matching the GetByEmail projection.
func userRow(id int64, email, hash, role string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "full_name", "username", "email", "password_hash", "role", "approved"}).
		AddRow(id, "Someone", "someone", email, hash, role, false)
}
