package matching

import (
	"strings"

	"skill-match/internal/domain/skill"
)

const (
	// UncategorizedName labels the fallback bucket for skills no category claims.
	UncategorizedName = "Sonstiges"
	// UncategorizedOrder sorts the fallback bucket after every catalog category.
	UncategorizedOrder = 999
)

// Group is one category together with the skills it collected.
type Group struct {
	Category skill.Category
	Skills   []string
}

// Grouping is the classifier output in catalog order, with the fallback bucket last.
type Grouping []Group

// Lookup returns the group of the category with the given name, ignoring case.
func (g Grouping) Lookup(name string) (Group, bool) {
	for _, grp := range g {
		if strings.EqualFold(grp.Category.Name, name) {
			return grp, true
		}
	}
	return Group{}, false
}

// Classify distributes skills over categories by keyword. A skill joins every
// category that has at least one matching keyword, so membership can overlap.
// Skills matched by no category end up in the Sonstiges bucket. Categories that
// collect nothing are omitted. Inputs are not modified.
func Classify(categories []skill.Category, skills []string) Grouping {
	if len(skills) == 0 {
		return Grouping{}
	}

	buckets := make([][]string, len(categories))
	seen := make([]map[string]struct{}, len(categories))
	for i := range categories {
		seen[i] = map[string]struct{}{}
	}

	uncategorized := make([]string, 0)
	uncategorizedSeen := map[string]struct{}{}

	for _, raw := range skills {
		norm := NormalizeSkill(raw)
		matched := false

		for i, cat := range categories {
			if !categoryMatches(cat, norm) {
				continue
			}
			matched = true
			if _, dup := seen[i][raw]; dup {
				continue
			}
			seen[i][raw] = struct{}{}
			buckets[i] = append(buckets[i], raw)
		}

		if matched {
			continue
		}
		if _, dup := uncategorizedSeen[raw]; dup {
			continue
		}
		uncategorizedSeen[raw] = struct{}{}
		uncategorized = append(uncategorized, raw)
	}

	out := make(Grouping, 0, len(categories)+1)
	for i, cat := range categories {
		if len(buckets[i]) == 0 {
			continue
		}
		out = append(out, Group{Category: copyCategory(cat), Skills: buckets[i]})
	}

	if len(uncategorized) > 0 {
		out = append(out, Group{
			Category: skill.Category{
				Name:     UncategorizedName,
				Keywords: []string{},
				Order:    UncategorizedOrder,
			},
			Skills: uncategorized,
		})
	}
	return out
}

func categoryMatches(cat skill.Category, normalizedSkill string) bool {
	for _, kw := range cat.Keywords {
		if KeywordMatches(kw, normalizedSkill) {
			return true
		}
	}
	return false
}

// KeywordMatches applies SkillsEquivalent between a category keyword and an
// already-normalized skill. Blank keywords never match.
func KeywordMatches(keyword, normalizedSkill string) bool {
	return equivalentNormalized(NormalizeSkill(keyword), normalizedSkill)
}

func copyCategory(c skill.Category) skill.Category {
	kws := make([]string, len(c.Keywords))
	copy(kws, c.Keywords)
	c.Keywords = kws
	return c
}
