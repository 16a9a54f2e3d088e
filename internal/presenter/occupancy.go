// Package presenter derives display values from loaded entities.
package presenter

import (
	"fmt"
	"strings"

	"github.com/pablotanner/RocketRealtor/internal/domain"

	"github.com/shopspring/decimal"
)

// MaxBadges units rendered per property row
const MaxBadges = 3

// NoDataLabel occupancy label for a property without units
const NoDataLabel = "N/A"

var hundred = decimal.NewFromInt(100)

// Occupancy unit counts of a property. Percent is rounded to two decimals,
// half away from zero; with no units it is 0 and HasData is false.
type Occupancy struct {
	Total    int             `json:"total"`
	Occupied int             `json:"occupied"`
	Vacant   int             `json:"vacant"`
	Percent  decimal.Decimal `json:"percent"`
	HasData  bool            `json:"hasData"`
}

// Label "66.67%", or "N/A" when there are no units
func (o Occupancy) Label() string {
	if !o.HasData {
		return NoDataLabel
	}
	return o.Percent.String() + "%"
}

// ComputeOccupancy partitions units by their listing status
func ComputeOccupancy(units []domain.Unit) Occupancy {
	o := Occupancy{Total: len(units), Percent: decimal.Zero}
	for _, u := range units {
		if u.Status.IsOccupied() {
			o.Occupied++
		}
	}
	o.Vacant = o.Total - o.Occupied
	if o.Total == 0 {
		return o
	}
	o.HasData = true
	o.Percent = decimal.NewFromInt(int64(o.Occupied)).
		Div(decimal.NewFromInt(int64(o.Total))).
		Mul(hundred).
		Round(2)
	return o
}

// Badge one chip in a property row; More marks the overflow counter
type Badge struct {
	Label  string `json:"label"`
	UnitID uint   `json:"unitId,omitempty"`
	More   bool   `json:"more,omitempty"`
}

// UnitBadges renders at most MaxBadges badges. When there are more units than
// that, the last badge is replaced by "<n> more" counting every unit not shown.
func UnitBadges(units []domain.Unit) []Badge {
	if len(units) <= MaxBadges {
		badges := make([]Badge, 0, len(units))
		for _, u := range units {
			label := unitLabel(u)
			if len(units) == 1 {
				label = "Single Unit"
			}
			badges = append(badges, Badge{Label: label, UnitID: u.ID})
		}
		return badges
	}

	badges := make([]Badge, 0, MaxBadges)
	for _, u := range units[:MaxBadges-1] {
		badges = append(badges, Badge{Label: unitLabel(u), UnitID: u.ID})
	}
	hidden := len(units) - (MaxBadges - 1)
	return append(badges, Badge{Label: fmt.Sprintf("%d more", hidden), More: true})
}

func unitLabel(u domain.Unit) string {
	if u.UnitIdentifier != nil && strings.TrimSpace(*u.UnitIdentifier) != "" {
		return *u.UnitIdentifier
	}
	return fmt.Sprintf("Unit %d", u.ID)
}

// LocationLabel "City, Country", either part alone, or "No Location"
func LocationLabel(city, country *string) string {
	c, k := deref(city), deref(country)
	switch {
	case c != "" && k != "":
		return c + ", " + k
	case c != "":
		return c
	case k != "":
		return k
	default:
		return "No Location"
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
