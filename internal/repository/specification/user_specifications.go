package specification

import (
	"mentorlink-be/internal/entity"

	"gorm.io/gorm"
)

type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ByRole struct {
	Role entity.UserRole
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", string(s.Role))
}

// CoursesOverlap matches users whose course list shares at least one entry
// with the given set. Courses are stored as a JSONB array of strings.
type CoursesOverlap struct {
	Courses []string
}

func (s CoursesOverlap) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"EXISTS (SELECT 1 FROM jsonb_array_elements_text(courses) AS course WHERE course IN ?)",
		s.Courses,
	)
}

// UsernameContains is a case-insensitive substring match on username.
type UsernameContains struct {
	Query string
}

func (s UsernameContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username ILIKE ?", "%"+s.Query+"%")
}

// CourseContains matches users with at least one course containing the query,
// case-insensitive.
type CourseContains struct {
	Query string
}

func (s CourseContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"EXISTS (SELECT 1 FROM jsonb_array_elements_text(courses) AS course WHERE course ILIKE ?)",
		"%"+s.Query+"%",
	)
}
