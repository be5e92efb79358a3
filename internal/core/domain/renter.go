package domain

// swagger:model domain.Renter
type Renter struct {
	ID          int     `json:"id"`
	LastName    string  `json:"last_name"`
	FirstName   string  `json:"first_name"`
	MiddleName  *string `json:"middle_name,omitempty"`
	PhoneNumber string  `json:"phone_number"`
}

type RenterPayload struct {
	LastName    string  `json:"last_name" validate:"required,max=100" example:"Ivanov"`
	FirstName   string  `json:"first_name" validate:"required,max=100" example:"Alexey"`
	MiddleName  *string `json:"middle_name,omitempty" validate:"omitempty,max=100" example:"Petrovich"`
	PhoneNumber string  `json:"phone_number" validate:"required,max=30" example:"+7 901 123-45-67"`
}

func (p *RenterPayload) Apply(r *Renter) {
	r.LastName = p.LastName
	r.FirstName = p.FirstName
	r.MiddleName = p.MiddleName
	r.PhoneNumber = p.PhoneNumber
}
