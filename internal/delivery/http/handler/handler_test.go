package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skill-match/internal/delivery/http/middleware"
	"skill-match/internal/domain/match"
	"skill-match/internal/domain/matching"
	"skill-match/internal/domain/skill"
	"skill-match/internal/domain/user"
	"skill-match/internal/pkg/jwt"
	"skill-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	items   []skill.Category
	created usecase.CreateCategoryInput
	err     error
}

func (s *stubCatalog) EnsureDefaults(context.Context) error { return nil }
func (s *stubCatalog) ListCategories(context.Context) ([]skill.Category, error) {
	return s.items, s.err
}
func (s *stubCatalog) CreateCategory(_ context.Context, in usecase.CreateCategoryInput) (skill.Category, error) {
	s.created = in
	return skill.Category{ID: uuid.New(), Name: in.Name, Keywords: in.Keywords, Order: in.Order}, s.err
}
func (s *stubCatalog) AddKeyword(_ context.Context, id uuid.UUID, kw string) (skill.Category, error) {
	return skill.Category{ID: id, Keywords: []string{kw}}, s.err
}
func (s *stubCatalog) RemoveKeyword(_ context.Context, id uuid.UUID, _ string) (skill.Category, error) {
	return skill.Category{ID: id}, s.err
}
func (s *stubCatalog) DeleteCategory(context.Context, uuid.UUID) error { return s.err }

type stubCandidates struct {
	params usecase.CandidateSearchParams
	page   usecase.CandidatePage
}

func (s *stubCandidates) Rank(_ context.Context, _ uuid.UUID, p usecase.CandidateSearchParams) (usecase.CandidatePage, error) {
	s.params = p
	return s.page, nil
}
func (s *stubCandidates) ScoreCandidate(_ context.Context, id uuid.UUID, required []string) (usecase.CandidateMatch, error) {
	r := matching.Score([]string{"Go"}, matching.RequiredSkillSet(required))
	return usecase.CandidateMatch{
		Student: user.StudentProfile{UserID: id, FullName: "Ada"},
		Result:  r,
		Label:   matching.LabelForPercentage(r.Percentage),
		Band:    matching.ColorForPercentage(r.Percentage),
	}, nil
}

type stubSwipes struct{ err error }

func (s stubSwipes) Swipe(_ context.Context, actor, target uuid.UUID, d match.Decision) (usecase.SwipeResult, error) {
	if s.err != nil {
		return usecase.SwipeResult{}, s.err
	}
	m := match.Match{ID: uuid.New(), StudentID: actor, EmployerID: target, MatchedAt: time.Now().UTC()}
	return usecase.SwipeResult{Swipe: match.Swipe{ActorID: actor, TargetID: target, Decision: d}, Match: &m}, nil
}
func (s stubSwipes) ListMatches(context.Context, uuid.UUID) ([]match.Match, error) { return nil, s.err }

type stubClassification struct{ grouping matching.Grouping }

func (s stubClassification) GroupSkills(context.Context) (matching.Grouping, error) {
	return s.grouping, nil
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	app    *fiber.App
	tokens *jwt.HMACService
}

func newTestServer(t *testing.T, catalog usecase.CatalogUsecase, candidates usecase.CandidateUsecase, swipes usecase.SwipeUsecase) *testServer {
	t.Helper()
	tokens := jwt.NewHMACService("a", "r", time.Minute, time.Hour)
	auth := middleware.NewAuthMiddleware(tokens).Middleware()

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	NewHealthHandler(stubPinger{}, stubPinger{err: errors.New("down")}).RegisterRoutes(app)
	api := app.Group("/api/v1", auth)
	NewCategoryHandler(catalog).RegisterRoutes(api.Group("/categories"))
	NewCandidateHandler(candidates).RegisterRoutes(api.Group("/candidates"))
	NewSwipeHandler(swipes).RegisterRoutes(api)
	NewSkillHandler(stubClassification{grouping: matching.Classify(
		[]skill.Category{{Name: "Frontend", Keywords: []string{"react"}, Order: 1}},
		[]string{"React", "Knitting"},
	)}).RegisterRoutes(api.Group("/skills"))

	return &testServer{app: app, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path string, role user.Role, body any) (int, envelope) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		tok, err := s.tokens.GenerateAccessToken(uuid.New(), "x@y.z", string(role))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := s.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestCategories_ReadForAllEditForEmployers(t *testing.T) {
	cat := &stubCatalog{items: skill.DefaultCategories()}
	s := newTestServer(t, cat, &stubCandidates{}, stubSwipes{})

	status, env := s.do(t, http.MethodGet, "/api/v1/categories", user.RoleStudent, nil)
	require.Equal(t, http.StatusOK, status)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, len(skill.DefaultCategories()))
	assert.Equal(t, "Frontend", list[0]["name"])

	body := map[string]any{"name": "Security", "keywords": []string{"owasp"}, "order": 8}
	status, _ = s.do(t, http.MethodPost, "/api/v1/categories", user.RoleStudent, body)
	assert.Equal(t, http.StatusForbidden, status)

	status, env = s.do(t, http.MethodPost, "/api/v1/categories", user.RoleEmployer, body)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Security", cat.created.Name)
	assert.Equal(t, http.StatusCreated, env.Status)
}

func TestCategories_ErrorMapping(t *testing.T) {
	s := newTestServer(t, &stubCatalog{err: usecase.ErrNotFound}, &stubCandidates{}, stubSwipes{})

	status, env := s.do(t, http.MethodDelete, "/api/v1/categories/"+uuid.NewString(), user.RoleEmployer, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, http.StatusNotFound, env.Status)

	status, _ = s.do(t, http.MethodDelete, "/api/v1/categories/not-a-uuid", user.RoleEmployer, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCategories_InternalErrorsAreHidden(t *testing.T) {
	s := newTestServer(t, &stubCatalog{err: errors.New("pq: connection reset")}, &stubCandidates{}, stubSwipes{})

	status, env := s.do(t, http.MethodGet, "/api/v1/categories", user.RoleStudent, nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", env.Message)
	assert.Equal(t, "null", string(env.Data))
}

func TestRequestsWithoutTokenAreRejected(t *testing.T) {
	s := newTestServer(t, &stubCatalog{}, &stubCandidates{}, stubSwipes{})

	status, env := s.do(t, http.MethodGet, "/api/v1/categories", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized", env.Message)
}

func TestCandidateSearch(t *testing.T) {
	cands := &stubCandidates{page: usecase.CandidatePage{
		Total:          1,
		RequiredSkills: []string{"Go"},
		Items: []usecase.CandidateMatch{{
			Student: user.StudentProfile{UserID: uuid.New(), FullName: "Ada", Skills: []string{"Golang"}},
			Result:  matching.Score([]string{"Golang"}, []string{"Go"}),
			Label:   "Perfect",
			Band:    matching.BandStrong,
		}},
	}}
	s := newTestServer(t, &stubCatalog{}, cands, stubSwipes{})

	status, env := s.do(t, http.MethodPost, "/api/v1/candidates/search", user.RoleEmployer,
		map[string]any{"required_skills": []string{"Go"}, "min_percentage": 50, "exclude_swiped": true})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 50, cands.params.MinPercentage)
	assert.True(t, cands.params.ExcludeSwiped)

	var page struct {
		Total int `json:"total"`
		Items []struct {
			FullName string `json:"full_name"`
			Match    struct {
				Percentage int    `json:"percentage"`
				Band       string `json:"band"`
				Color      string `json:"color"`
			} `json:"match"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, 100, page.Items[0].Match.Percentage)
	assert.Equal(t, "strong", page.Items[0].Match.Band)
	assert.Equal(t, matching.BandStrong.Hex(), page.Items[0].Match.Color)

	status, env = s.do(t, http.MethodPost, "/api/v1/candidates/search", user.RoleEmployer, map[string]any{"min_percentage": 120})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(env.Data), "min_percentage")

	status, _ = s.do(t, http.MethodPost, "/api/v1/candidates/search", user.RoleStudent, map[string]any{})
	assert.Equal(t, http.StatusForbidden, status)
}

func TestCandidateMatchQuery(t *testing.T) {
	s := newTestServer(t, &stubCatalog{}, &stubCandidates{}, stubSwipes{})

	status, env := s.do(t, http.MethodGet, "/api/v1/candidates/"+uuid.NewString()+"/match?skills=go,rust", user.RoleEmployer, nil)
	require.Equal(t, http.StatusOK, status)

	var out struct {
		Match struct {
			Percentage    int      `json:"percentage"`
			MissingSkills []string `json:"missing_skills"`
			Label         string   `json:"label"`
		} `json:"match"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, 50, out.Match.Percentage)
	assert.Equal(t, []string{"rust"}, out.Match.MissingSkills)
	assert.Equal(t, "Good", out.Match.Label)
}

func TestSwipe(t *testing.T) {
	s := newTestServer(t, &stubCatalog{}, &stubCandidates{}, stubSwipes{})

	status, env := s.do(t, http.MethodPost, "/api/v1/swipes", user.RoleStudent,
		map[string]any{"target_id": uuid.NewString(), "decision": "like"})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"matched":true`)

	status, _ = s.do(t, http.MethodPost, "/api/v1/swipes", user.RoleStudent,
		map[string]any{"target_id": "nope", "decision": "like"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(t, http.MethodPost, "/api/v1/swipes", user.RoleStudent,
		map[string]any{"target_id": uuid.NewString(), "decision": "superlike"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSwipe_UsecaseErrors(t *testing.T) {
	s := newTestServer(t, &stubCatalog{}, &stubCandidates{}, stubSwipes{err: usecase.ErrInvalidInput})

	status, _ := s.do(t, http.MethodPost, "/api/v1/swipes", user.RoleStudent,
		map[string]any{"target_id": uuid.NewString(), "decision": "like"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHealth_DegradedCacheStillOK(t *testing.T) {
	s := newTestServer(t, &stubCatalog{}, &stubCandidates{}, stubSwipes{})

	status, env := s.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"cache":"degraded"`)
}

func TestSkills_GroupedWithCategoryFilter(t *testing.T) {
	s := newTestServer(t, &stubCatalog{}, &stubCandidates{}, stubSwipes{})

	status, env := s.do(t, http.MethodGet, "/api/v1/skills/grouped", user.RoleStudent, nil)
	require.Equal(t, fiber.StatusOK, status)
	var all []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &all))
	assert.Len(t, all, 2)

	status, env = s.do(t, http.MethodGet, "/api/v1/skills/grouped?category=frontend", user.RoleStudent, nil)
	require.Equal(t, fiber.StatusOK, status)
	var one []struct {
		Skills []string `json:"skills"`
		Count  int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &one))
	require.Len(t, one, 1)
	assert.Equal(t, []string{"React"}, one[0].Skills)
	assert.Equal(t, 1, one[0].Count)

	status, _ = s.do(t, http.MethodGet, "/api/v1/skills/grouped?category=Design", user.RoleStudent, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}
