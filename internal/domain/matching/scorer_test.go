package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_NoRequirementsIsPerfect(t *testing.T) {
	for _, candidate := range [][]string{nil, {}, {"Go", "SQL"}} {
		got := Score(candidate, nil)
		assert.Equal(t, 100, got.Percentage)
		assert.Equal(t, 1.0, got.Score)
		assert.Equal(t, 0, got.TotalRequired)
		assert.Empty(t, got.MatchedSkills)
		assert.Empty(t, got.MissingSkills)
	}
}

func TestScore_CaseInsensitiveExactMatch(t *testing.T) {
	got := Score([]string{"flutter", "dart"}, []string{"Flutter"})

	assert.Equal(t, 100, got.Percentage)
	assert.Equal(t, []string{"Flutter"}, got.MatchedSkills)
	assert.Empty(t, got.MissingSkills)
}

func TestScore_CandidateContainedInRequired(t *testing.T) {
	got := Score([]string{"React"}, []string{"React Native"})

	assert.Equal(t, 100, got.Percentage)
	assert.Equal(t, []string{"React Native"}, got.MatchedSkills)
}

func TestScore_EmptyCandidate(t *testing.T) {
	got := Score(nil, []string{"Python", "SQL"})

	assert.Equal(t, 0, got.Percentage)
	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, []string{"Python", "SQL"}, got.MissingSkills)
	assert.Empty(t, got.MatchedSkills)
	assert.Equal(t, 2, got.TotalRequired)
}

func TestScore_BlankCandidateSkillMatchesNothing(t *testing.T) {
	got := Score([]string{"", "   "}, []string{"Go"})

	assert.Equal(t, 0, got.Percentage)
	assert.Equal(t, []string{"Go"}, got.MissingSkills)
}

func TestScore_PartialAndRounding(t *testing.T) {
	tests := []struct {
		name      string
		candidate []string
		required  []string
		want      int
	}{
		{name: "one of three", candidate: []string{"go"}, required: []string{"Go", "Docker", "Figma"}, want: 33},
		{name: "two of three", candidate: []string{"go", "docker"}, required: []string{"Go", "Docker", "Figma"}, want: 67},
		{name: "half rounds up", candidate: []string{"a1"}, required: []string{"A1", "B2", "C3", "D4", "E5", "F6", "G7", "H8"}, want: 13},
		{name: "one of two", candidate: []string{"Kotlin"}, required: []string{"Kotlin", "Swift"}, want: 50},
		{name: "23 of 40 rounds up", candidate: numberedSkills(23), required: numberedSkills(40), want: 58},
		{name: "29 of 200 rounds up", candidate: numberedSkills(29), required: numberedSkills(200), want: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.candidate, tt.required)
			assert.Equal(t, tt.want, got.Percentage)
			assert.Len(t, got.MatchedSkills, int(got.Score*float64(got.TotalRequired)+0.5))
		})
	}
}

func TestScore_PercentageRoundsHalfUpForEveryRatio(t *testing.T) {
	for total := 1; total <= 200; total++ {
		required := numberedSkills(total)
		for matched := 0; matched <= total; matched++ {
			// Half up over exact rationals: floor((100*matched)/total + 1/2).
			want := (200*matched + total) / (2 * total)
			got := Score(required[:matched], required)
			if !assert.Equal(t, want, got.Percentage, "%d of %d", matched, total) {
				return
			}
		}
	}
}

// numberedSkills yields n equal-length distinct skills, so none contains another.
func numberedSkills(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("skill%04dx", i)
	}
	return out
}

func TestScore_MatchedPlusMissingEqualsTotal(t *testing.T) {
	candidate := []string{"Python", "PYTHON", "pandas", "Docker "}
	required := []string{"Python", "Pandas", "Kubernetes", "SQL", "Docker"}

	got := Score(candidate, required)

	assert.Equal(t, len(required), got.TotalRequired)
	assert.Equal(t, got.TotalRequired, len(got.MatchedSkills)+len(got.MissingSkills))
	assert.Equal(t, []string{"Python", "Pandas", "Docker"}, got.MatchedSkills)
	assert.Equal(t, []string{"Kubernetes", "SQL"}, got.MissingSkills)
	assert.InDelta(t, 0.6, got.Score, 1e-9)
	assert.Equal(t, 60, got.Percentage)
}

func TestRequiredSkillSet(t *testing.T) {
	got := RequiredSkillSet([]string{" sql", "Python", "", "SQL", "docker", "  "})

	assert.Equal(t, []string{"docker", "Python", "sql"}, got)
}

func TestSkillsEquivalent(t *testing.T) {
	assert.True(t, SkillsEquivalent("PostgreSQL", "postgres"))
	assert.True(t, SkillsEquivalent(" Go ", "GO"))
	assert.False(t, SkillsEquivalent("Go", ""))
	assert.False(t, SkillsEquivalent("Swift", "Kotlin"))
}
