package user

import "time"

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleStaff      Role = "staff"
	RoleManagement Role = "management"
)

type User struct {
	ID           int64      `db:"id" json:"-"`
	Username     string     `db:"username" json:"username"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         Role       `db:"role" json:"role"`
	IsActive     bool       `db:"is_active" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"-"`
	LastLogin    *time.Time `db:"last_login" json:"-"`
}

// IsStaff reports whether the user may use the staff back-office.
// Management users have staff access as well.
func (u *User) IsStaff() bool {
	return u.Role == RoleStaff || u.Role == RoleManagement
}

func (u *User) IsManagement() bool {
	return u.Role == RoleManagement
}
