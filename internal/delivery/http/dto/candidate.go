package dto

import (
	"skill-match/internal/usecase"

	"github.com/google/uuid"
)

type CandidateSearchRequest struct {
	RequiredSkills []string `json:"required_skills" validate:"max=50,dive,max=64"`
	MinPercentage  int      `json:"min_percentage" validate:"gte=0,lte=100"`
	Limit          int      `json:"limit" validate:"gte=0,lte=100"`
	Offset         int      `json:"offset" validate:"gte=0"`
	ExcludeSwiped  bool     `json:"exclude_swiped"`
}

func (r CandidateSearchRequest) ToParams() usecase.CandidateSearchParams {
	return usecase.CandidateSearchParams{
		RequiredSkills: r.RequiredSkills,
		MinPercentage:  r.MinPercentage,
		Limit:          r.Limit,
		Offset:         r.Offset,
		ExcludeSwiped:  r.ExcludeSwiped,
	}
}

type MatchResultResponse struct {
	Score         float64  `json:"score"`
	Percentage    int      `json:"percentage"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	TotalRequired int      `json:"total_required"`
	Label         string   `json:"label"`
	Band          string   `json:"band"`
	Color         string   `json:"color"`
}

type CandidateResponse struct {
	StudentID  uuid.UUID           `json:"student_id"`
	FullName   string              `json:"full_name"`
	University string              `json:"university"`
	Headline   string              `json:"headline"`
	Skills     []string            `json:"skills"`
	Match      MatchResultResponse `json:"match"`
}

type CandidateSearchResponse struct {
	Items          []CandidateResponse `json:"items"`
	Total          int                 `json:"total"`
	RequiredSkills []string            `json:"required_skills"`
}

func NewCandidateResponse(m usecase.CandidateMatch) CandidateResponse {
	return CandidateResponse{
		StudentID:  m.Student.UserID,
		FullName:   m.Student.FullName,
		University: m.Student.University,
		Headline:   m.Student.Headline,
		Skills:     nonNil(m.Student.Skills),
		Match: MatchResultResponse{
			Score:         m.Result.Score,
			Percentage:    m.Result.Percentage,
			MatchedSkills: nonNil(m.Result.MatchedSkills),
			MissingSkills: nonNil(m.Result.MissingSkills),
			TotalRequired: m.Result.TotalRequired,
			Label:         m.Label,
			Band:          string(m.Band),
			Color:         m.Band.Hex(),
		},
	}
}

func NewCandidateSearchResponse(p usecase.CandidatePage) CandidateSearchResponse {
	items := make([]CandidateResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, NewCandidateResponse(it))
	}
	return CandidateSearchResponse{Items: items, Total: p.Total, RequiredSkills: nonNil(p.RequiredSkills)}
}
