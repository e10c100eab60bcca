package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"skill-match/internal/domain/matching"
	"skill-match/internal/domain/user"
	"skill-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultCandidateLimit = 20
	maxCandidateLimit     = 100
)

type CandidateSearchParams struct {
	// RequiredSkills falls back to the employer profile when empty.
	RequiredSkills []string
	MinPercentage  int
	Limit          int
	Offset         int
	ExcludeSwiped  bool
}

type CandidateMatch struct {
	Student user.StudentProfile
	Result  matching.Result
	Label   string
	Band    matching.Band
}

type CandidatePage struct {
	Items          []CandidateMatch
	Total          int
	RequiredSkills []string
}

type CandidateUsecase interface {
	Rank(ctx context.Context, employerID uuid.UUID, params CandidateSearchParams) (CandidatePage, error)
	ScoreCandidate(ctx context.Context, studentID uuid.UUID, required []string) (CandidateMatch, error)
}

type Candidates struct {
	profiles repository.ProfileRepository
	logger   *zap.Logger
}

func NewCandidateUsecase(profiles repository.ProfileRepository, logger *zap.Logger) *Candidates {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Candidates{profiles: profiles, logger: logger}
}

func (u *Candidates) Rank(ctx context.Context, employerID uuid.UUID, params CandidateSearchParams) (CandidatePage, error) {
	if employerID == uuid.Nil {
		return CandidatePage{}, ErrUnauthorized
	}
	if params.MinPercentage < 0 || params.MinPercentage > 100 || params.Limit < 0 || params.Offset < 0 {
		return CandidatePage{}, ErrInvalidInput
	}

	limit := params.Limit
	if limit == 0 {
		limit = defaultCandidateLimit
	}
	if limit > maxCandidateLimit {
		limit = maxCandidateLimit
	}

	required := matching.RequiredSkillSet(params.RequiredSkills)
	if len(required) == 0 {
		fromProfile, err := u.employerRequirements(ctx, employerID)
		if err != nil {
			return CandidatePage{}, err
		}
		required = fromProfile
	}

	var filter repository.StudentFilter
	if params.ExcludeSwiped {
		filter.ExcludeSwipedBy = employerID
	}
	students, err := u.profiles.ListStudentProfiles(ctx, filter)
	if err != nil {
		u.logger.Error("list student profiles", zap.Error(err))
		return CandidatePage{}, ErrInternal
	}

	ranked := make([]CandidateMatch, 0, len(students))
	for _, s := range students {
		m := scoreStudent(s, required)
		if m.Result.Percentage < params.MinPercentage {
			continue
		}
		ranked = append(ranked, m)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Result.Percentage != ranked[j].Result.Percentage {
			return ranked[i].Result.Percentage > ranked[j].Result.Percentage
		}
		return strings.ToLower(ranked[i].Student.FullName) < strings.ToLower(ranked[j].Student.FullName)
	})

	page := CandidatePage{Total: len(ranked), RequiredSkills: required, Items: []CandidateMatch{}}
	if params.Offset >= len(ranked) {
		return page, nil
	}
	end := params.Offset + limit
	if end > len(ranked) {
		end = len(ranked)
	}
	page.Items = ranked[params.Offset:end]
	return page, nil
}

func (u *Candidates) ScoreCandidate(ctx context.Context, studentID uuid.UUID, required []string) (CandidateMatch, error) {
	if studentID == uuid.Nil {
		return CandidateMatch{}, ErrInvalidInput
	}

	s, err := u.profiles.GetStudentProfile(ctx, studentID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return CandidateMatch{}, ErrNotFound
		}
		u.logger.Error("get student profile", zap.Stringer("student_id", studentID), zap.Error(err))
		return CandidateMatch{}, ErrInternal
	}

	return scoreStudent(s, matching.RequiredSkillSet(required)), nil
}

func (u *Candidates) employerRequirements(ctx context.Context, employerID uuid.UUID) ([]string, error) {
	p, err := u.profiles.GetEmployerProfile(ctx, employerID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return nil, nil
		}
		u.logger.Error("get employer profile", zap.Stringer("employer_id", employerID), zap.Error(err))
		return nil, ErrInternal
	}
	return matching.RequiredSkillSet(p.RequiredSkills), nil
}

func scoreStudent(s user.StudentProfile, required []string) CandidateMatch {
	r := matching.Score(s.Skills, required)
	return CandidateMatch{
		Student: s,
		Result:  r,
		Label:   matching.LabelForPercentage(r.Percentage),
		Band:    matching.ColorForPercentage(r.Percentage),
	}
}
