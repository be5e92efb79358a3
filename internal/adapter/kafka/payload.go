package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
)

var ErrEmptyBatch = errors.New("batch is null")

// wireRental is one element of a batch message. Field names follow the
// camelCase contract shared with the generator.
type wireRental struct {
	StartTime     strfmt.DateTime `json:"startTime"`
	DurationHours int             `json:"durationHours"`
	BikeID        int             `json:"bikeId"`
	RenterID      int             `json:"renterId"`
}

func DecodeBatch(data []byte) ([]domain.RentalPayload, error) {
	var wire []wireRental
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode rental batch: %w", err)
	}
	if wire == nil {
		return nil, ErrEmptyBatch
	}

	batch := make([]domain.RentalPayload, 0, len(wire))
	for _, w := range wire {
		batch = append(batch, domain.RentalPayload{
			StartTime:     time.Time(w.StartTime).UTC(),
			DurationHours: w.DurationHours,
			BikeID:        w.BikeID,
			RenterID:      w.RenterID,
		})
	}
	return batch, nil
}

func EncodeBatch(batch []domain.RentalPayload) ([]byte, error) {
	wire := make([]wireRental, 0, len(batch))
	for _, p := range batch {
		wire = append(wire, wireRental{
			StartTime:     strfmt.DateTime(p.StartTime.UTC()),
			DurationHours: p.DurationHours,
			BikeID:        p.BikeID,
			RenterID:      p.RenterID,
		})
	}
	return json.Marshal(wire)
}
