package domain

import (
	"database/sql"
)

// User roles. Mutating sensor endpoints require RoleAdmin.
const (
	RoleUser  = 0
	RoleAdmin = 1
)

// User 用户领域模型（对应 users 表）
// password_hash is a bcrypt hash; plaintext passwords are never stored.
type User struct {
	ID           int            `db:"id"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	Email        sql.NullString `db:"email"`
	Phone        sql.NullString `db:"phone"`
	Role         int            `db:"role"`
}

// RoleName maps the numeric role to the wire representation.
func (u *User) RoleName() string {
	if u.Role == RoleAdmin {
		return "admin"
	}
	return "user"
}

// IsAdmin reports whether the user may hit mutating sensor endpoints.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserView is the login response payload. Credentials never leave the server.
type UserView struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

// View converts a stored user to its wire shape.
func (u *User) View() UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email.String,
		Phone:    u.Phone.String,
		Role:     u.RoleName(),
	}
}
