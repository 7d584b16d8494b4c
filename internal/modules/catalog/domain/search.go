package domain

import "strings"

// Sentinel filter values coming from the listing UI. Either one disables its
// filter dimension entirely.
const (
	CuisineAll = "Todas"
	PriceAll   = "Todos"
)

// SearchQuery combines the three discovery filters. Matching is the
// intersection of every non-sentinel dimension.
type SearchQuery struct {
	Text    string
	Cuisine string
	Price   string
}

// FiltersCuisine reports whether the cuisine dimension is active.
func (q SearchQuery) FiltersCuisine() bool {
	c := strings.TrimSpace(q.Cuisine)
	return c != "" && !strings.EqualFold(c, CuisineAll)
}

// FiltersPrice reports whether the price dimension is active.
func (q SearchQuery) FiltersPrice() bool {
	p := strings.TrimSpace(q.Price)
	return p != "" && !strings.EqualFold(p, PriceAll)
}

// PriceLevel resolves the price filter to a 1-4 tier. It accepts both the
// "$".."$$$$" form and plain digits; anything else yields 0 (no filter).
func (q SearchQuery) PriceLevel() int {
	p := strings.TrimSpace(q.Price)
	if !q.FiltersPrice() {
		return 0
	}
	if strings.Count(p, "$") == len(p) && len(p) >= 1 && len(p) <= 4 {
		return len(p)
	}
	switch p {
	case "1", "2", "3", "4":
		return int(p[0] - '0')
	}
	return 0
}

// Matches applies the query to a single restaurant. Empty free text matches
// everything; text matching is a case-insensitive substring scan over name,
// description and cuisine.
func (q SearchQuery) Matches(r *Restaurant) bool {
	if text := strings.ToLower(strings.TrimSpace(q.Text)); text != "" {
		if !strings.Contains(strings.ToLower(r.Name), text) &&
			!strings.Contains(strings.ToLower(r.Description), text) &&
			!strings.Contains(strings.ToLower(r.Cuisine), text) {
			return false
		}
	}
	if q.FiltersCuisine() && !strings.EqualFold(r.Cuisine, strings.TrimSpace(q.Cuisine)) {
		return false
	}
	if level := q.PriceLevel(); level != 0 && r.PriceLevel != level {
		return false
	}
	return true
}
