// Package seed holds the fixed demo data set: ten models, ten bikes, ten
// renters and twenty rentals.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

type Data struct {
	Models  []domain.BikeModel
	Bikes   []domain.Bike
	Renters []domain.Renter
	Rentals []domain.Rental
}

type Repositories struct {
	Models  ports.BikeModelRepository
	Bikes   ports.BikeRepository
	Renters ports.RenterRepository
	Rentals ports.RentalRepository
}

func ptr[T any](v T) *T { return &v }

func model(id int, t domain.BikeType, wheel, maxWeight, weight float64, brake string, year int, price string) domain.BikeModel {
	return domain.BikeModel{
		ID:                 id,
		BikeType:           t,
		WheelSize:          ptr(wheel),
		MaxPassengerWeight: ptr(maxWeight),
		BikeWeight:         ptr(weight),
		BrakeType:          ptr(brake),
		ModelYear:          ptr(year),
		PricePerHour:       decimal.RequireFromString(price),
	}
}

func renter(id int, last, first, middle, phone string) domain.Renter {
	return domain.Renter{ID: id, LastName: last, FirstName: first, MiddleName: ptr(middle), PhoneNumber: phone}
}

func rental(id int, start string, hours, bikeID, renterID int) domain.Rental {
	t, err := time.Parse("2006-01-02 15:04", start)
	if err != nil {
		panic(fmt.Sprintf("seed: bad rental start %q: %v", start, err))
	}
	return domain.Rental{ID: id, StartTime: t.UTC(), DurationHours: hours, BikeID: bikeID, RenterID: renterID}
}

func New() Data {
	d := Data{
		Models: []domain.BikeModel{
			model(1, domain.Mountain, 29.0, 120, 14.5, "Disc Hydraulic", 2024, "8.50"),
			model(2, domain.Sport, 28.0, 100, 9.2, "Rim Brake", 2024, "12.00"),
			model(3, domain.Road, 26.0, 110, 12.8, "Coaster Brake", 2023, "5.50"),
			model(4, domain.Hybrid, 27.5, 115, 13.1, "Disc Mechanical", 2024, "7.80"),
			model(5, domain.Sport, 28.0, 105, 8.9, "Disc Hydraulic", 2025, "15.00"),
			model(6, domain.Mountain, 27.5, 125, 15.2, "Disc Hydraulic", 2023, "9.20"),
			model(7, domain.Road, 28.0, 95, 10.5, "Rim Brake", 2024, "6.80"),
			model(8, domain.Hybrid, 26.0, 118, 14.0, "Disc Mechanical", 2023, "8.00"),
			model(9, domain.Sport, 29.0, 108, 9.8, "Disc Hydraulic", 2025, "18.50"),
			model(10, domain.Road, 26.0, 112, 11.3, "Coaster Brake", 2022, "4.90"),
		},
		Renters: []domain.Renter{
			renter(1, "Ivanov", "Alexey", "Petrovich", "+7 901 123-45-67"),
			renter(2, "Smirnova", "Ekaterina", "Sergeevna", "+7 902 234-56-78"),
			renter(3, "Kuznetsov", "Dmitry", "Viktorovich", "+7 903 345-67-89"),
			renter(4, "Popova", "Anna", "Alexandrovna", "+7 904 456-78-90"),
			renter(5, "Sokolov", "Mikhail", "Igorevich", "+7 905 567-89-01"),
			renter(6, "Fedorov", "Sergey", "Nikolaevich", "+7 906 678-90-12"),
			renter(7, "Orlova", "Olga", "Vladimirovna", "+7 907 789-01-23"),
			renter(8, "Lebedev", "Andrey", "Borisovich", "+7 908 890-12-34"),
			renter(9, "Kozlova", "Natalia", "Pavlovna", "+7 909 901-23-45"),
			renter(10, "Morozov", "Vladimir", "Anatolievich", "+7 910 012-34-56"),
		},
		Rentals: []domain.Rental{
			rental(1, "2024-01-10 09:00", 3, 1, 1),
			rental(2, "2024-01-12 14:30", 2, 2, 2),
			rental(3, "2024-01-15 10:00", 5, 3, 3),
			rental(4, "2024-01-18 16:45", 1, 4, 4),
			rental(5, "2024-01-20 11:00", 4, 5, 5),
			rental(6, "2024-01-22 13:15", 2, 1, 2),
			rental(7, "2024-01-25 15:30", 3, 2, 3),
			rental(8, "2024-01-28 08:45", 6, 3, 1),
			rental(9, "2024-02-01 12:00", 2, 4, 4),
			rental(10, "2024-02-03 17:20", 1, 5, 5),
			rental(11, "2024-02-05 10:30", 4, 6, 6),
			rental(12, "2024-02-08 14:00", 3, 7, 7),
			rental(13, "2024-02-12 11:15", 2, 8, 8),
			rental(14, "2024-02-15 16:45", 5, 9, 9),
			rental(15, "2024-02-18 09:30", 1, 10, 10),
			rental(16, "2024-02-20 13:00", 3, 6, 1),
			rental(17, "2024-02-22 15:20", 2, 7, 2),
			rental(18, "2024-02-25 10:45", 4, 8, 3),
			rental(19, "2024-02-28 17:30", 1, 9, 4),
			rental(20, "2024-03-02 12:15", 6, 10, 5),
		},
	}

	serials := []struct{ serial, color string }{
		{"MTN0012024", "Forest Green"},
		{"RD0022024", "Racing Red"},
		{"CTY0032023", "Sky Blue"},
		{"HYB0042024", "Matte Black"},
		{"SPT0052025", "Carbon Gray"},
		{"MTN0062023", "Orange"},
		{"RD0072024", "Yellow"},
		{"CTY0082023", "White"},
		{"HYB0092025", "Purple"},
		{"SPT0102022", "Blue"},
	}
	for i, s := range serials {
		d.Bikes = append(d.Bikes, domain.Bike{ID: i + 1, SerialNumber: s.serial, Color: ptr(s.color), ModelID: i + 1})
	}

	return d
}

// Load writes the data set when the model collection is empty and reports
// whether anything was inserted.
func Load(ctx context.Context, repos Repositories) (bool, error) {
	existing, err := repos.Models.ReadAll(ctx)
	if err != nil {
		return false, fmt.Errorf("check existing models: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	d := New()
	for i := range d.Models {
		if _, err := repos.Models.Create(ctx, &d.Models[i]); err != nil {
			return false, fmt.Errorf("seed model %d: %w", d.Models[i].ID, err)
		}
	}
	for i := range d.Bikes {
		if _, err := repos.Bikes.Create(ctx, &d.Bikes[i]); err != nil {
			return false, fmt.Errorf("seed bike %d: %w", d.Bikes[i].ID, err)
		}
	}
	for i := range d.Renters {
		if _, err := repos.Renters.Create(ctx, &d.Renters[i]); err != nil {
			return false, fmt.Errorf("seed renter %d: %w", d.Renters[i].ID, err)
		}
	}
	for i := range d.Rentals {
		if _, err := repos.Rentals.Create(ctx, &d.Rentals[i]); err != nil {
			return false, fmt.Errorf("seed rental %d: %w", d.Rentals[i].ID, err)
		}
	}
	return true, nil
}
