package dto

import (
	"time"

	"skill-match/internal/domain/user"
	ucuser "skill-match/internal/usecase/user"

	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	FullName   *string  `json:"full_name" validate:"omitempty,max=120"`
	University *string  `json:"university" validate:"omitempty,max=160"`
	Headline   *string  `json:"headline" validate:"omitempty,max=160"`
	Bio        *string  `json:"bio" validate:"omitempty,max=2000"`
	Skills     []string `json:"skills" validate:"omitempty,max=50,dive,max=64"`

	CompanyName    *string  `json:"company_name" validate:"omitempty,max=160"`
	Industry       *string  `json:"industry" validate:"omitempty,max=120"`
	Description    *string  `json:"description" validate:"omitempty,max=4000"`
	RequiredSkills []string `json:"required_skills" validate:"omitempty,max=50,dive,max=64"`
}

func (r UpdateProfileRequest) Empty() bool {
	return r.FullName == nil && r.University == nil && r.Headline == nil && r.Bio == nil && r.Skills == nil &&
		r.CompanyName == nil && r.Industry == nil && r.Description == nil && r.RequiredSkills == nil
}

func (r UpdateProfileRequest) ToInput() ucuser.UpdateProfileInput {
	return ucuser.UpdateProfileInput{
		FullName:       r.FullName,
		University:     r.University,
		Headline:       r.Headline,
		Bio:            r.Bio,
		Skills:         r.Skills,
		CompanyName:    r.CompanyName,
		Industry:       r.Industry,
		Description:    r.Description,
		RequiredSkills: r.RequiredSkills,
	}
}

type StudentProfileResponse struct {
	UserID     uuid.UUID `json:"user_id"`
	FullName   string    `json:"full_name"`
	University string    `json:"university"`
	Headline   string    `json:"headline"`
	Bio        string    `json:"bio"`
	Skills     []string  `json:"skills"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type EmployerProfileResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	CompanyName    string    `json:"company_name"`
	Industry       string    `json:"industry"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"required_skills"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ProfileResponse struct {
	User     UserResponse             `json:"user"`
	Student  *StudentProfileResponse  `json:"student,omitempty"`
	Employer *EmployerProfileResponse `json:"employer,omitempty"`
}

func NewStudentProfileResponse(p user.StudentProfile) StudentProfileResponse {
	return StudentProfileResponse{
		UserID:     p.UserID,
		FullName:   p.FullName,
		University: p.University,
		Headline:   p.Headline,
		Bio:        p.Bio,
		Skills:     nonNil(p.Skills),
		UpdatedAt:  p.UpdatedAt,
	}
}

func NewProfileResponse(p ucuser.Profile) ProfileResponse {
	out := ProfileResponse{User: NewUserResponse(p.User)}
	if p.Student != nil {
		s := NewStudentProfileResponse(*p.Student)
		out.Student = &s
	}
	if p.Employer != nil {
		out.Employer = &EmployerProfileResponse{
			UserID:         p.Employer.UserID,
			CompanyName:    p.Employer.CompanyName,
			Industry:       p.Employer.Industry,
			Description:    p.Employer.Description,
			RequiredSkills: nonNil(p.Employer.RequiredSkills),
			UpdatedAt:      p.Employer.UpdatedAt,
		}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
