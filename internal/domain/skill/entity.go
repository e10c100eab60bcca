package skill

import (
	"time"

	"github.com/google/uuid"
)

// Category is a named, keyword-defined grouping of skills. Keywords are stored
// lowercase and matched as substrings; Icon and Color are opaque to matching.
type Category struct {
	ID        uuid.UUID
	Name      string
	Keywords  []string
	Icon      string
	Color     string
	Order     int
	CreatedAt time.Time
}

// HasKeyword reports whether kw (already normalized) is in the keyword list.
func (c Category) HasKeyword(kw string) bool {
	for _, k := range c.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}
