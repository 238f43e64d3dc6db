package extension

import (
	"cmp"
	"slices"
	"strings"

	"go-marketplace/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type compareFunc func(a, b *models.Extension) int

// sortKeys maps a normalised attribute name (lower-case, no underscores) to
// its comparison.
var sortKeys = map[string]func(c *collate.Collator) compareFunc{
	"id":          byString(func(e *models.Extension) string { return e.ID }),
	"name":        byString(func(e *models.Extension) string { return e.Name }),
	"publisher":   byString(func(e *models.Extension) string { return e.Publisher }),
	"description": byString(func(e *models.Extension) string { return e.Description }),
	"category":    byString(func(e *models.Extension) string { return e.Category }),
	"version":     byString(func(e *models.Extension) string { return e.Version }),
	"rating":      byNumber(func(e *models.Extension) float64 { return e.Rating }),
	"installcount": byNumber(func(e *models.Extension) float64 {
		return float64(e.InstallCount)
	}),
	"price": byNumber(func(e *models.Extension) float64 { return e.Price }),
	"lastupdated": func(*collate.Collator) compareFunc {
		return func(a, b *models.Extension) int { return a.LastUpdated.Compare(b.LastUpdated) }
	},
	"recommended": func(*collate.Collator) compareFunc {
		return func(a, b *models.Extension) int { return compareBool(a.Recommended, b.Recommended) }
	},
}

func byString(get func(*models.Extension) string) func(*collate.Collator) compareFunc {
	return func(c *collate.Collator) compareFunc {
		return func(a, b *models.Extension) int { return c.CompareString(get(a), get(b)) }
	}
}

func byNumber(get func(*models.Extension) float64) func(*collate.Collator) compareFunc {
	return func(*collate.Collator) compareFunc {
		return func(a, b *models.Extension) int { return cmp.Compare(get(a), get(b)) }
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func normaliseSortKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "_", "")
}

// Normalise fills in the page defaults and canonical enum spellings.
func (c SearchCriteria) Normalise() SearchCriteria {
	if c.Page < 1 {
		c.Page = DefaultPage
	}
	if c.Limit < 1 {
		c.Limit = DefaultLimit
	}
	switch p := PriceFilter(strings.ToLower(string(c.PriceFilter))); p {
	case PriceFree, PricePaid:
		c.PriceFilter = p
	default:
		c.PriceFilter = PriceAny
	}
	if SortOrder(strings.ToLower(string(c.SortOrder))) == SortDesc {
		c.SortOrder = SortDesc
	} else {
		c.SortOrder = SortAsc
	}
	return c
}

func (c SearchCriteria) matches(e *models.Extension) bool {
	if q := strings.ToLower(c.Query); q != "" && !matchesText(e, q) {
		return false
	}
	if c.Category != "" && !strings.EqualFold(c.Category, models.CategoryAll) &&
		!strings.EqualFold(c.Category, e.Category) {
		return false
	}
	if c.MinRating > 0 && e.Rating < c.MinRating {
		return false
	}
	switch c.PriceFilter {
	case PriceFree:
		return e.Price == 0
	case PricePaid:
		return e.Price > 0
	}
	return true
}

func matchesText(e *models.Extension, q string) bool {
	if strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Description), q) ||
		strings.Contains(strings.ToLower(e.Publisher), q) {
		return true
	}
	return slices.ContainsFunc(e.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), q)
	})
}

// runQuery filters, sorts and pages all. It never reorders all itself. The
// returned pointers alias all's elements; callers clone before releasing
// the store.
func runQuery(all []*models.Extension, c SearchCriteria) (page []*models.Extension, total int) {
	c = c.Normalise()

	filtered := make([]*models.Extension, 0, len(all))
	for _, e := range all {
		if c.matches(e) {
			filtered = append(filtered, e)
		}
	}

	if key, ok := sortKeys[normaliseSortKey(c.SortBy)]; ok {
		// Collators keep internal buffers and are not safe for concurrent use.
		compare := key(collate.New(language.English))
		if c.SortOrder == SortDesc {
			asc := compare
			compare = func(a, b *models.Extension) int { return asc(b, a) }
		}
		slices.SortStableFunc(filtered, compare)
	}

	total = len(filtered)
	if c.Page > totalPages(total, c.Limit) {
		return nil, total
	}
	start := (c.Page - 1) * c.Limit
	end := start + min(c.Limit, total-start)
	return filtered[start:end], total
}

// totalPages is ceil(total/limit) without overflowing for huge limits.
func totalPages(total, limit int) int {
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}
