package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployer Role = "employer"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleEmployer
}

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StudentProfile is the candidate side of matching. Skills keep the spelling the
// student typed.
type StudentProfile struct {
	UserID     uuid.UUID
	FullName   string
	University string
	Headline   string
	Bio        string
	Skills     []string
	UpdatedAt  time.Time
}

type EmployerProfile struct {
	UserID         uuid.UUID
	CompanyName    string
	Industry       string
	Description    string
	RequiredSkills []string
	UpdatedAt      time.Time
}
