package dto

import (
	"time"

	"skill-match/internal/domain/match"
	"skill-match/internal/usecase"

	"github.com/google/uuid"
)

type SwipeRequest struct {
	TargetID string `json:"target_id" validate:"required,uuid"`
	Decision string `json:"decision" validate:"required,oneof=like pass"`
}

type MatchResponse struct {
	ID         uuid.UUID `json:"id"`
	StudentID  uuid.UUID `json:"student_id"`
	EmployerID uuid.UUID `json:"employer_id"`
	MatchedAt  time.Time `json:"matched_at"`
}

type SwipeResponse struct {
	TargetID uuid.UUID      `json:"target_id"`
	Decision string         `json:"decision"`
	Matched  bool           `json:"matched"`
	Match    *MatchResponse `json:"match,omitempty"`
}

func NewMatchResponse(m match.Match) MatchResponse {
	return MatchResponse{ID: m.ID, StudentID: m.StudentID, EmployerID: m.EmployerID, MatchedAt: m.MatchedAt}
}

func NewSwipeResponse(r usecase.SwipeResult) SwipeResponse {
	out := SwipeResponse{TargetID: r.Swipe.TargetID, Decision: string(r.Swipe.Decision)}
	if r.Match != nil {
		m := NewMatchResponse(*r.Match)
		out.Matched = true
		out.Match = &m
	}
	return out
}

func NewMatchListResponse(items []match.Match) []MatchResponse {
	out := make([]MatchResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewMatchResponse(m))
	}
	return out
}
