package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"skill-match/internal/domain/match"
	"skill-match/internal/domain/skill"
	"skill-match/internal/domain/user"
	"skill-match/internal/repository"

	"github.com/google/uuid"
)

var errBoom = errors.New("boom")

type fakeCategories struct {
	items    []skill.Category
	fetchErr error
	countErr error
	fetches  int
	// writes counts keyword mutations that reached the store.
	writes int
}

func (f *fakeCategories) FetchCategories(context.Context) ([]skill.Category, error) {
	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := append([]skill.Category(nil), f.items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeCategories) find(id uuid.UUID) int {
	for i, c := range f.items {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (f *fakeCategories) GetCategory(_ context.Context, id uuid.UUID) (skill.Category, error) {
	i := f.find(id)
	if i < 0 {
		return skill.Category{}, repository.ErrCategoryNotFound
	}
	return f.items[i], nil
}

func (f *fakeCategories) CountCategories(context.Context) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.items), nil
}

func (f *fakeCategories) CreateCategory(_ context.Context, c skill.Category) (skill.Category, error) {
	for _, it := range f.items {
		if strings.EqualFold(it.Name, c.Name) {
			return skill.Category{}, repository.ErrCategoryExists
		}
	}
	c.ID = uuid.New()
	f.items = append(f.items, c)
	return c, nil
}

func (f *fakeCategories) AddKeyword(_ context.Context, id uuid.UUID, kw string) (skill.Category, error) {
	i := f.find(id)
	if i < 0 {
		return skill.Category{}, repository.ErrCategoryNotFound
	}
	f.writes++
	if !f.items[i].HasKeyword(kw) {
		f.items[i].Keywords = append(f.items[i].Keywords, kw)
	}
	return f.items[i], nil
}

func (f *fakeCategories) RemoveKeyword(_ context.Context, id uuid.UUID, kw string) (skill.Category, error) {
	i := f.find(id)
	if i < 0 {
		return skill.Category{}, repository.ErrCategoryNotFound
	}
	f.writes++
	kept := f.items[i].Keywords[:0]
	for _, k := range f.items[i].Keywords {
		if k != kw {
			kept = append(kept, k)
		}
	}
	f.items[i].Keywords = kept
	return f.items[i], nil
}

func (f *fakeCategories) DeleteCategory(_ context.Context, id uuid.UUID) error {
	i := f.find(id)
	if i < 0 {
		return repository.ErrCategoryNotFound
	}
	f.items = append(f.items[:i], f.items[i+1:]...)
	return nil
}

type fakeProfiles struct {
	students  []user.StudentProfile
	employers map[uuid.UUID]user.EmployerProfile
	// swiped[actor] holds targets the actor already swiped on.
	swiped  map[uuid.UUID]map[uuid.UUID]bool
	listErr error
	lastF   repository.StudentFilter
}

func (f *fakeProfiles) FetchAllDistinctSkills(context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, s := range f.students {
		for _, sk := range s.Skills {
			k := strings.ToLower(strings.TrimSpace(sk))
			if k == "" || seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, strings.TrimSpace(sk))
		}
	}
	return out, nil
}

func (f *fakeProfiles) GetStudentProfile(_ context.Context, id uuid.UUID) (user.StudentProfile, error) {
	for _, s := range f.students {
		if s.UserID == id {
			return s, nil
		}
	}
	return user.StudentProfile{}, user.ErrProfileNotFound
}

func (f *fakeProfiles) UpsertStudentProfile(_ context.Context, p user.StudentProfile) (user.StudentProfile, error) {
	for i, s := range f.students {
		if s.UserID == p.UserID {
			f.students[i] = p
			return p, nil
		}
	}
	f.students = append(f.students, p)
	return p, nil
}

func (f *fakeProfiles) ListStudentProfiles(_ context.Context, filter repository.StudentFilter) ([]user.StudentProfile, error) {
	f.lastF = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]user.StudentProfile, 0, len(f.students))
	for _, s := range f.students {
		if filter.ExcludeSwipedBy != uuid.Nil && f.swiped[filter.ExcludeSwipedBy][s.UserID] {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeProfiles) GetEmployerProfile(_ context.Context, id uuid.UUID) (user.EmployerProfile, error) {
	p, ok := f.employers[id]
	if !ok {
		return user.EmployerProfile{}, user.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfiles) UpsertEmployerProfile(_ context.Context, p user.EmployerProfile) (user.EmployerProfile, error) {
	if f.employers == nil {
		f.employers = map[uuid.UUID]user.EmployerProfile{}
	}
	f.employers[p.UserID] = p
	return p, nil
}

type fakeUsers struct {
	byID map[uuid.UUID]user.User
}

func newFakeUsers(us ...user.User) *fakeUsers {
	f := &fakeUsers{byID: map[uuid.UUID]user.User{}}
	for _, u := range us {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsers) CreateUser(_ context.Context, u user.User) error {
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUsers) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetUserByEmail(ctx, email)
	return err == nil, nil
}

type pairKey struct{ a, b uuid.UUID }

type fakeSwipes struct {
	decisions map[pairKey]match.Decision
	matches   map[pairKey]match.Match
}

func newFakeSwipes() *fakeSwipes {
	return &fakeSwipes{decisions: map[pairKey]match.Decision{}, matches: map[pairKey]match.Match{}}
}

func (f *fakeSwipes) RecordSwipe(_ context.Context, s match.Swipe) error {
	f.decisions[pairKey{s.ActorID, s.TargetID}] = s.Decision
	return nil
}

func (f *fakeSwipes) HasLiked(_ context.Context, actor, target uuid.UUID) (bool, error) {
	return f.decisions[pairKey{actor, target}] == match.DecisionLike, nil
}

func (f *fakeSwipes) CreateMatch(_ context.Context, m match.Match) (match.Match, bool, error) {
	k := pairKey{m.StudentID, m.EmployerID}
	if existing, ok := f.matches[k]; ok {
		return existing, false, nil
	}
	m.ID = uuid.New()
	m.MatchedAt = time.Now().UTC()
	f.matches[k] = m
	return m, true, nil
}

func (f *fakeSwipes) ListMatches(_ context.Context, id uuid.UUID) ([]match.Match, error) {
	var out []match.Match
	for _, m := range f.matches {
		if m.StudentID == id || m.EmployerID == id {
			out = append(out, m)
		}
	}
	return out, nil
}

type memCache struct {
	mu      sync.Mutex
	data     map[string][]byte
	deleted  []string
	patterns []string
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, v any, _ time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

func (c *memCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.data {
		if ok, _ := path.Match(pattern, k); ok {
			delete(c.data, k)
		}
	}
	c.patterns = append(c.patterns, pattern)
	return nil
}

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

type recordingNotifier struct {
	calls []notifyCall
}

type notifyCall struct {
	userIDs []uuid.UUID
	event   MatchEvent
}

func (n *recordingNotifier) NotifyMatch(userIDs []uuid.UUID, event MatchEvent) {
	n.calls = append(n.calls, notifyCall{userIDs: userIDs, event: event})
}
