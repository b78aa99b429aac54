package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleMentor  UserRole = "mentor"
	UserRoleStudent UserRole = "student"
)

// ValidRole reports whether r is one of the two platform roles.
func ValidRole(r string) bool {
	return r == string(UserRoleMentor) || r == string(UserRoleStudent)
}

type User struct {
	Id           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         UserRole
	// Courses is semantically a set for matching, but order and duplicates
	// are preserved as submitted.
	Courses   []string
	Contact   []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
