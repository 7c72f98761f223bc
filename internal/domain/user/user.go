package user

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// User rows are created by the external auth provider; this service only
// reads them and rewrites Role.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName string    `gorm:"column:full_name;size:100" json:"full_name"`
	Email    string    `gorm:"column:email;size:120;uniqueIndex" json:"email"`
	Role     string    `gorm:"column:role;size:20;default:student" json:"role"`
}

func (User) TableName() string { return "users" }

// HasRole compares case-insensitively; legacy rows carry values like "Student".
func (u *User) HasRole(r Role) bool {
	if u == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(u.Role), string(r))
}

func (u *User) CanPublish() bool {
	return u.HasRole(RoleExpert) || u.HasRole(RoleAdmin)
}

type Role string

const (
	RoleStudent Role = "student"
	RoleExpert  Role = "expert"
	RoleAdmin   Role = "admin"
)

var Roles = []Role{RoleStudent, RoleExpert, RoleAdmin}

func ParseRole(raw string) (Role, error) {
	norm := Role(strings.ToLower(strings.TrimSpace(raw)))
	for _, r := range Roles {
		if r == norm {
			return r, nil
		}
	}
	return "", fmt.Errorf("invalid role %q: must be one of student, expert, admin", raw)
}
