package usecase

import (
	"context"
	"testing"

	"skill-match/internal/domain/match"
	"skill-match/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func swipeFixture() (*Swipes, *fakeSwipes, *recordingNotifier, user.User, user.User) {
	student := user.User{ID: uuid.New(), Email: "s@x.io", Role: user.RoleStudent}
	employer := user.User{ID: uuid.New(), Email: "e@x.io", Role: user.RoleEmployer}
	swipes := newFakeSwipes()
	n := &recordingNotifier{}
	return NewSwipeUsecase(newFakeUsers(student, employer), swipes, n, nil), swipes, n, student, employer
}

func TestSwipes_MutualLikeCreatesMatchOnce(t *testing.T) {
	uc, swipes, n, student, employer := swipeFixture()
	ctx := context.Background()

	res, err := uc.Swipe(ctx, student.ID, employer.ID, match.DecisionLike)
	require.NoError(t, err)
	assert.Nil(t, res.Match)
	assert.Empty(t, n.calls)

	res, err = uc.Swipe(ctx, employer.ID, student.ID, match.DecisionLike)
	require.NoError(t, err)
	require.NotNil(t, res.Match)
	assert.Equal(t, student.ID, res.Match.StudentID)
	assert.Equal(t, employer.ID, res.Match.EmployerID)

	require.Len(t, n.calls, 1)
	assert.ElementsMatch(t, []uuid.UUID{student.ID, employer.ID}, n.calls[0].userIDs)
	assert.Equal(t, EventMatchCreated, n.calls[0].event.Type)
	assert.Equal(t, res.Match.ID, n.calls[0].event.MatchID)

	// A repeated like finds the existing match and stays quiet.
	res, err = uc.Swipe(ctx, student.ID, employer.ID, match.DecisionLike)
	require.NoError(t, err)
	require.NotNil(t, res.Match)
	assert.Len(t, n.calls, 1)
	assert.Len(t, swipes.matches, 1)
}

func TestSwipes_PassNeverMatches(t *testing.T) {
	uc, swipes, n, student, employer := swipeFixture()
	ctx := context.Background()

	_, err := uc.Swipe(ctx, employer.ID, student.ID, match.DecisionLike)
	require.NoError(t, err)
	res, err := uc.Swipe(ctx, student.ID, employer.ID, match.DecisionPass)
	require.NoError(t, err)

	assert.Nil(t, res.Match)
	assert.Empty(t, swipes.matches)
	assert.Empty(t, n.calls)
}

func TestSwipes_Rejects(t *testing.T) {
	uc, _, _, student, employer := swipeFixture()
	other := user.User{ID: uuid.New(), Role: user.RoleStudent}
	uc.users.(*fakeUsers).byID[other.ID] = other
	ctx := context.Background()

	_, err := uc.Swipe(ctx, student.ID, student.ID, match.DecisionLike)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Swipe(ctx, student.ID, employer.ID, "maybe")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Swipe(ctx, student.ID, other.ID, match.DecisionLike)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Swipe(ctx, student.ID, uuid.New(), match.DecisionLike)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = uc.Swipe(ctx, uuid.Nil, employer.ID, match.DecisionLike)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSwipes_ListMatches(t *testing.T) {
	uc, _, _, student, employer := swipeFixture()
	ctx := context.Background()

	_, err := uc.Swipe(ctx, student.ID, employer.ID, match.DecisionLike)
	require.NoError(t, err)
	_, err = uc.Swipe(ctx, employer.ID, student.ID, match.DecisionLike)
	require.NoError(t, err)

	items, err := uc.ListMatches(ctx, employer.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = uc.ListMatches(ctx, uuid.Nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
