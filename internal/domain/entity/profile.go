package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleStaff   = "staff"
	RoleAdmin   = "admin"
)

// Profile is one account in the school: identity, credentials and role.
// Name and personal fields stay empty until onboarding completes.
type Profile struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"size:100;not null" json:"-"`
	Role         string     `gorm:"size:20;not null;index" json:"role"`
	FirstName    string     `gorm:"size:100;not null;default:''" json:"first_name"`
	MiddleName   string     `gorm:"size:100;not null;default:''" json:"middle_name"`
	LastName     string     `gorm:"size:100;not null;default:''" json:"last_name"`
	Gender       string     `gorm:"size:20;not null;default:''" json:"gender"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	AvatarURL    string     `gorm:"size:500;not null;default:''" json:"avatar_url"`
	Onboarded    bool       `gorm:"not null;default:false" json:"onboarded"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName sets the GORM table name.
func (Profile) TableName() string {
	return "profiles"
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// IsTeacher reports whether the profile belongs to a teacher.
func (p *Profile) IsTeacher() bool {
	return p.Role == RoleTeacher
}

// IsStudent reports whether the profile belongs to a student.
func (p *Profile) IsStudent() bool {
	return p.Role == RoleStudent
}

// FullName joins the non-empty name parts.
func (p *Profile) FullName() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.FirstName, p.MiddleName, p.LastName} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// ValidRole reports whether the given role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleTeacher, RoleStaff, RoleAdmin:
		return true
	}
	return false
}
