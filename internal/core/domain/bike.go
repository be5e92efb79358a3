package domain

// swagger:model domain.Bike
type Bike struct {
	ID           int     `json:"id"`
	SerialNumber string  `json:"serial_number"`
	Color        *string `json:"color,omitempty"`
	ModelID      int     `json:"model_id"`
}

type BikePayload struct {
	SerialNumber string  `json:"serial_number" validate:"required,max=50" example:"SPT0052025"`
	Color        *string `json:"color,omitempty" validate:"omitempty,max=50" example:"Carbon Gray"`
	ModelID      int     `json:"model_id" example:"5"`
}

func (p *BikePayload) Apply(b *Bike) {
	b.SerialNumber = p.SerialNumber
	b.Color = p.Color
	b.ModelID = p.ModelID
}
