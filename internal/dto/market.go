package dto

import "github.com/SscSPs/finance_dashboard/internal/core/domain"

// MarketPricesResponse is the cached quote map and the version it was read at.
type MarketPricesResponse struct {
	Version uint64            `json:"version"`
	Prices  domain.MarketData `json:"prices"`
}

// TopMoversParams bounds the top movers listing.
type TopMoversParams struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// TopMoversResponse lists quotes ranked by percentage change.
type TopMoversResponse struct {
	Movers []domain.Mover `json:"movers"`
}
