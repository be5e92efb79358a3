package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type ModelRevenue struct {
	ModelID int             `json:"model_id"`
	Revenue decimal.Decimal `json:"revenue" swaggertype:"string" example:"111.00"`
}

// MarshalJSON writes revenue as a money string with two decimals.
func (r ModelRevenue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ModelID int    `json:"model_id"`
		Revenue string `json:"revenue"`
	}{
		ModelID: r.ModelID,
		Revenue: r.Revenue.StringFixed(2),
	})
}

type ModelDuration struct {
	ModelID    int `json:"model_id"`
	TotalHours int `json:"total_hours"`
}

type DurationStats struct {
	Min int     `json:"min"`
	Max int     `json:"max"`
	Avg float64 `json:"avg"`
}

type CategoryUtilization struct {
	BikeType   BikeType `json:"bike_type" swaggertype:"string" example:"Sport"`
	TotalHours int      `json:"total_hours"`
}

type ClientRentalCount struct {
	Renter      *Renter `json:"renter"`
	RentalCount int     `json:"rental_count"`
}
