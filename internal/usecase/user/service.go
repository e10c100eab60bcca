package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"skill-match/internal/domain/user"
	"skill-match/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
	ErrInternal     = errors.New("internal error")
)

const maxSkills = 50

// Profile is the caller's account plus the profile matching their role. Exactly
// one of Student and Employer is set once the profile has been saved.
type Profile struct {
	User     user.User
	Student  *user.StudentProfile
	Employer *user.EmployerProfile
}

// UpdateProfileInput carries role-specific fields; fields for the other role are
// ignored. Nil pointers leave the stored value unchanged.
type UpdateProfileInput struct {
	FullName   *string
	University *string
	Headline   *string
	Bio        *string
	Skills     []string

	CompanyName    *string
	Industry       *string
	Description    *string
	RequiredSkills []string
}

type Service struct {
	users    user.Repository
	profiles repository.ProfileRepository
}

func NewService(users user.Repository, profiles repository.ProfileRepository) *Service {
	return &Service{users: users, profiles: profiles}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	usr, err := s.loadUser(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	out := Profile{User: usr}
	switch usr.Role {
	case user.RoleStudent:
		p, err := s.profiles.GetStudentProfile(ctx, userID)
		if err == nil {
			out.Student = &p
		} else if !errors.Is(err, user.ErrProfileNotFound) {
			return Profile{}, ErrInternal
		}
	case user.RoleEmployer:
		p, err := s.profiles.GetEmployerProfile(ctx, userID)
		if err == nil {
			out.Employer = &p
		} else if !errors.Is(err, user.ErrProfileNotFound) {
			return Profile{}, ErrInternal
		}
	}
	return out, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (Profile, error) {
	current, err := s.GetProfile(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	now := time.Now().UTC()
	switch current.User.Role {
	case user.RoleStudent:
		p := user.StudentProfile{UserID: userID}
		if current.Student != nil {
			p = *current.Student
		}
		assign(&p.FullName, in.FullName)
		assign(&p.University, in.University)
		assign(&p.Headline, in.Headline)
		assign(&p.Bio, in.Bio)
		if in.Skills != nil {
			p.Skills = CleanSkills(in.Skills)
		}
		if len(p.Skills) > maxSkills {
			return Profile{}, ErrInvalidInput
		}
		p.UpdatedAt = now

		saved, err := s.profiles.UpsertStudentProfile(ctx, p)
		if err != nil {
			return Profile{}, ErrInternal
		}
		current.Student = &saved
	case user.RoleEmployer:
		p := user.EmployerProfile{UserID: userID}
		if current.Employer != nil {
			p = *current.Employer
		}
		assign(&p.CompanyName, in.CompanyName)
		assign(&p.Industry, in.Industry)
		assign(&p.Description, in.Description)
		if in.RequiredSkills != nil {
			p.RequiredSkills = CleanSkills(in.RequiredSkills)
		}
		if len(p.RequiredSkills) > maxSkills {
			return Profile{}, ErrInvalidInput
		}
		p.UpdatedAt = now

		saved, err := s.profiles.UpsertEmployerProfile(ctx, p)
		if err != nil {
			return Profile{}, ErrInternal
		}
		current.Employer = &saved
	default:
		return Profile{}, ErrInvalidInput
	}
	return current, nil
}

func (s *Service) loadUser(ctx context.Context, userID uuid.UUID) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrNotFound
	}
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}

// CleanSkills trims skills, drops blanks and removes case-insensitive duplicates.
// The first spelling and the input order are kept.
func CleanSkills(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func assign(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
