package matching

import (
	"sort"
	"strings"
)

// Result is the outcome of scoring one candidate against a required-skill set.
type Result struct {
	Score         float64
	Percentage    int
	MatchedSkills []string
	MissingSkills []string
	// TotalRequired is zero when no filter was applied.
	TotalRequired int
}

// Score measures how many of the required skills a candidate covers. Required
// skills are checked in the given order against every candidate skill with
// SkillsEquivalent. An empty requirement list is a perfect match so that "no
// filter" never penalizes anyone.
func Score(candidateSkills []string, requiredSkills []string) Result {
	if len(requiredSkills) == 0 {
		return Result{
			Score:         1,
			Percentage:    100,
			MatchedSkills: []string{},
			MissingSkills: []string{},
			TotalRequired: 0,
		}
	}

	have := normalizedSet(candidateSkills)

	matched := make([]string, 0, len(requiredSkills))
	missing := make([]string, 0)
	for _, req := range requiredSkills {
		if covers(have, NormalizeSkill(req)) {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}

	score := float64(len(matched)) / float64(len(requiredSkills))
	return Result{
		Score:         score,
		Percentage:    roundPercentage(len(matched), len(requiredSkills)),
		MatchedSkills: matched,
		MissingSkills: missing,
		TotalRequired: len(requiredSkills),
	}
}

// roundPercentage rounds matched/total*100 half up in integer arithmetic;
// 12.5 becomes 13 and 57.5 becomes 58.
func roundPercentage(matched, total int) int {
	if total <= 0 {
		return 100
	}
	p := (matched*200 + total) / (2 * total)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func covers(have []string, required string) bool {
	for _, h := range have {
		if equivalentNormalized(h, required) {
			return true
		}
	}
	return false
}

// normalizedSet keeps first-seen order so results do not depend on map iteration.
func normalizedSet(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		n := NormalizeSkill(s)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// RequiredSkillSet turns an operator's picks into the ordered set Score expects:
// trimmed, blanks dropped, case-insensitive duplicates collapsed to the first
// spelling, sorted alphabetically ignoring case.
func RequiredSkillSet(picks []string) []string {
	out := make([]string, 0, len(picks))
	seen := make(map[string]struct{}, len(picks))
	for _, p := range picks {
		p = strings.TrimSpace(p)
		n := strings.ToLower(p)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
