package provider

import (
	"context"

	"trip-orchestrator/internal/domain"
)

// MockFlightProvider permite tests sin llamar a una API real.
type MockFlightProvider struct {
	Flights []domain.FlightOption
	Err     error
	Calls   int
}

func (m *MockFlightProvider) SearchFlights(ctx context.Context, query domain.TripQuery) ([]domain.FlightOption, error) {
	m.Calls++
	return m.Flights, m.Err
}

// MockHotelProvider permite tests sin llamar a una API real.
type MockHotelProvider struct {
	Hotels []domain.HotelOption
	Err    error
	Calls  int
}

func (m *MockHotelProvider) SearchHotels(ctx context.Context, query domain.TripQuery) ([]domain.HotelOption, error) {
	m.Calls++
	return m.Hotels, m.Err
}
