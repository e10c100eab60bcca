package matching

import "strings"

// NormalizeSkill trims and case-folds a skill for comparison. Display code keeps
// the original string.
func NormalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SkillsEquivalent is the loose equality shared by classification and scoring:
// after normalization the two strings are equal, or either contains the other.
// An empty side never matches.
func SkillsEquivalent(a, b string) bool {
	return equivalentNormalized(NormalizeSkill(a), NormalizeSkill(b))
}

func equivalentNormalized(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
