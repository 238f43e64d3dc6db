package extension

import "go-marketplace/internal/models"

type PriceFilter string

const (
	PriceAny  PriceFilter = "any"
	PriceFree PriceFilter = "free"
	PricePaid PriceFilter = "paid"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
)

// SearchCriteria selects a page of the catalogue. Zero values mean "no
// filter"; invalid values never cause an error.
type SearchCriteria struct {
	Query       string
	Category    string
	PriceFilter PriceFilter
	MinRating   float64
	SortBy      string
	SortOrder   SortOrder
	Page        int
	Limit       int
}

type SearchResult struct {
	Extensions []models.Extension `json:"extensions"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

type ReviewInput struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}
