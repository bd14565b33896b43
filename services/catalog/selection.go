package catalog

// CategoryAll is the sentinel meaning "no category restriction".
const CategoryAll = "ALL"

// Selection is the category toggle set. Its normalization rules are part of
// the product contract: selecting ALL clears everything else, selecting a
// specific category removes ALL, and deselecting the last specific category
// reverts to ALL. The set is never empty.
type Selection struct {
	cats []string
}

func NewSelection() *Selection {
	return &Selection{cats: []string{CategoryAll}}
}

// Toggle flips the given category in the set, applying the normalization
// rules above.
func (s *Selection) Toggle(category string) {
	if category == CategoryAll {
		s.cats = []string{CategoryAll}
		return
	}

	next := make([]string, 0, len(s.cats)+1)
	removed := false
	for _, c := range s.cats {
		if c == CategoryAll {
			continue
		}
		if c == category {
			removed = true
			continue
		}
		next = append(next, c)
	}
	if !removed {
		next = append(next, category)
	}
	if len(next) == 0 {
		next = []string{CategoryAll}
	}
	s.cats = next
}

// Selected returns the current selection.
func (s *Selection) Selected() []string {
	out := make([]string, len(s.cats))
	copy(out, s.cats)
	return out
}

// AllActive reports whether the sentinel is the active selection.
func (s *Selection) AllActive() bool {
	for _, c := range s.cats {
		if c == CategoryAll {
			return true
		}
	}
	return false
}
