package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type BikeType int

const (
	Road BikeType = iota
	Mountain
	Hybrid
	Sport
)

var bikeTypeNames = map[BikeType]string{
	Road:     "Road",
	Mountain: "Mountain",
	Hybrid:   "Hybrid",
	Sport:    "Sport",
}

// ParseBikeType converts a numeric category code into a BikeType.
// Codes outside the defined range are rejected with ErrInvalidArgument.
func ParseBikeType(code int) (BikeType, error) {
	t := BikeType(code)
	if !t.IsValid() {
		return 0, fmt.Errorf("%w: unknown bike type %d", ErrInvalidArgument, code)
	}
	return t, nil
}

func BikeTypeFromName(name string) (BikeType, error) {
	for t, n := range bikeTypeNames {
		if strings.EqualFold(n, name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown bike type %q", ErrInvalidArgument, name)
}

func (t BikeType) IsValid() bool {
	_, ok := bikeTypeNames[t]
	return ok
}

func (t BikeType) String() string {
	if name, ok := bikeTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("BikeType(%d)", int(t))
}

func (t BikeType) MarshalJSON() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: unknown bike type %d", ErrInvalidArgument, int(t))
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts both the enum name ("Sport") and its numeric code (3).
func (t *BikeType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, err := BikeTypeFromName(name)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	}

	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return fmt.Errorf("%w: bike type must be a name or a code", ErrInvalidArgument)
	}
	parsed, err := ParseBikeType(code)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// swagger:model domain.BikeModel
type BikeModel struct {
	ID                 int             `json:"id"`
	BikeType           BikeType        `json:"bike_type" swaggertype:"string" example:"Sport"`
	WheelSize          *float64        `json:"wheel_size,omitempty"`
	MaxPassengerWeight *float64        `json:"max_passenger_weight,omitempty"`
	BikeWeight         *float64        `json:"bike_weight,omitempty"`
	BrakeType          *string         `json:"brake_type,omitempty"`
	ModelYear          *int            `json:"model_year,omitempty"`
	PricePerHour       decimal.Decimal `json:"price_per_hour" swaggertype:"string" example:"12.50"`
}

// BikeModelPayload carries bike type and price as pointers so that a missing
// field fails validation instead of defaulting to Road at zero.
type BikeModelPayload struct {
	BikeType           *BikeType        `json:"bike_type" validate:"required,biketype" swaggertype:"string" example:"Sport"`
	WheelSize          *float64         `json:"wheel_size,omitempty" validate:"omitempty,gt=0,lte=40"`
	MaxPassengerWeight *float64         `json:"max_passenger_weight,omitempty" validate:"omitempty,gt=0"`
	BikeWeight         *float64         `json:"bike_weight,omitempty" validate:"omitempty,gt=0"`
	BrakeType          *string          `json:"brake_type,omitempty" validate:"omitempty,max=100"`
	ModelYear          *int             `json:"model_year,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	PricePerHour       *decimal.Decimal `json:"price_per_hour" validate:"required,gte=0" swaggertype:"string" example:"12.50"`
}

// Apply replaces every mutable field of m with the payload values.
// Payloads are validated first, so the required pointers are set.
func (p *BikeModelPayload) Apply(m *BikeModel) {
	if p.BikeType != nil {
		m.BikeType = *p.BikeType
	}
	m.WheelSize = p.WheelSize
	m.MaxPassengerWeight = p.MaxPassengerWeight
	m.BikeWeight = p.BikeWeight
	m.BrakeType = p.BrakeType
	m.ModelYear = p.ModelYear
	if p.PricePerHour != nil {
		m.PricePerHour = *p.PricePerHour
	}
}

// Revenue of a rental of the given length on this model.
func (m *BikeModel) Revenue(hours int) decimal.Decimal {
	return m.PricePerHour.Mul(decimal.NewFromInt(int64(hours)))
}
