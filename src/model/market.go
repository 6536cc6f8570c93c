package model

import "github.com/shopspring/decimal"

// PropOutcome is one side of a league-level market.
type PropOutcome struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Prop is a season-long market (championship, MVP, and similar).
type Prop struct {
	Question string        `json:"question"`
	Slug     string        `json:"slug"`
	Outcomes []PropOutcome `json:"outcomes"`
}

// PricePoint is one sample of a market token's 24h price history.
type PricePoint struct {
	Time  int64           `json:"t"`
	Price decimal.Decimal `json:"p"`
}
