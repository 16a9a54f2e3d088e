package presenter

import "github.com/pablotanner/RocketRealtor/internal/domain"

// PropertyRow one line of the portfolio table
type PropertyRow struct {
	PropertyID     uint      `json:"propertyId"`
	Title          string    `json:"title"`
	RealEstateType string    `json:"realEstateType"`
	TypeLabel      string    `json:"typeLabel"`
	Location       string    `json:"location"`
	MarketPrice    string    `json:"marketPrice"`
	Badges         []Badge   `json:"badges"`
	Occupancy      Occupancy `json:"occupancy"`
	OccupancyLabel string    `json:"occupancyLabel"`
}

// Portfolio rows plus occupancy over every unit of the realtor
type Portfolio struct {
	Rows        []PropertyRow `json:"rows"`
	Totals      Occupancy     `json:"totals"`
	TotalsLabel string        `json:"totalsLabel"`
}

// SummarizeProperty builds the table row for p; p must have its units loaded
func SummarizeProperty(p domain.Property) PropertyRow {
	occ := ComputeOccupancy(p.Units)
	title := deref(p.Title)
	if title == "" {
		title = "Untitled"
	}
	return PropertyRow{
		PropertyID:     p.ID,
		Title:          title,
		RealEstateType: string(p.RealEstateType),
		TypeLabel:      RealEstateTypeLabel(p.RealEstateType),
		Location:       LocationLabel(p.City, p.Country),
		MarketPrice:    FormatMoney(p.MarketPrice, p.Currency),
		Badges:         UnitBadges(p.Units),
		Occupancy:      occ,
		OccupancyLabel: occ.Label(),
	}
}

// SummarizePortfolio summarizes each property in order
func SummarizePortfolio(properties []*domain.Property) Portfolio {
	out := Portfolio{Rows: make([]PropertyRow, 0, len(properties))}
	var all []domain.Unit
	for _, p := range properties {
		out.Rows = append(out.Rows, SummarizeProperty(*p))
		all = append(all, p.Units...)
	}
	out.Totals = ComputeOccupancy(all)
	out.TotalsLabel = out.Totals.Label()
	return out
}
