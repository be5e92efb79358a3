package domain

import "time"

// swagger:model domain.Rental
type Rental struct {
	ID            int       `json:"id"`
	StartTime     time.Time `json:"start_time"`
	DurationHours int       `json:"duration_hours"`
	BikeID        int       `json:"bike_id"`
	RenterID      int       `json:"renter_id"`
}

type RentalPayload struct {
	StartTime     time.Time `json:"start_time" example:"2024-01-10T09:00:00Z"`
	DurationHours int       `json:"duration_hours" validate:"gt=0" example:"3"`
	BikeID        int       `json:"bike_id" example:"1"`
	RenterID      int       `json:"renter_id" example:"1"`
}

func (p *RentalPayload) Apply(r *Rental) {
	r.StartTime = p.StartTime
	r.DurationHours = p.DurationHours
	r.BikeID = p.BikeID
	r.RenterID = p.RenterID
}

func (r *Rental) EndTime() time.Time {
	return r.StartTime.Add(time.Duration(r.DurationHours) * time.Hour)
}

// IsActive reports whether the rental has not ended by now, upcoming rentals included.
func (r *Rental) IsActive(now time.Time) bool {
	return r.EndTime().After(now)
}
