package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/club-passport/internal/model"
	"github.com/iliyamo/club-passport/internal/utils"
)

// UserRepo is the credential store. It owns the users table and is the only
// place password hashes are written or read.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create registers a new member and returns the generated id. The plaintext
// password is bcrypt-hashed here and discarded; role and approval are fixed
// to 'candidate' / false no matter what the caller put in u. A duplicate
// email maps to ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User, password string, cost int) (uint64, error) {
	email := strings.ToLower(strings.TrimSpace(u.Email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (full_name, birth_date, phone, username, email, password_hash, role, approved) VALUES (?,?,?,?,?,?,'candidate',0)",
		u.FullName, u.BirthDate, u.Phone, u.Username, email, hash)
	if err != nil {
		// MySQL 1062 = duplicate entry for a unique key; email is the only one.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email. sql.ErrNoRows passes
// through so callers can distinguish "no such user" from storage failure.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, full_name, username, email, password_hash, role, approved FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.FullName, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Approved)
	return u, err
}

// UpdateRoleApproval sets role and/or approved on a user. A nil parameter
// leaves the current value in place (COALESCE in a single statement). The
// returned count is the number of rows changed; updating a user that does
// not exist yields 0 and no error.
func (r *UserRepo) UpdateRoleApproval(ctx context.Context, id uint64, role *string, approved *bool) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET role = COALESCE(?, role), approved = COALESCE(?, approved) WHERE id = ?",
		role, approved, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListAll returns every user without the password hash. The projection is
// fixed server-side so hashes can never leak through this path.
func (r *UserRepo) ListAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, full_name, username, email, role, approved FROM users")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.FullName, &u.Username, &u.Email, &u.Role, &u.Approved); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
