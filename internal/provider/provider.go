package provider

import (
	"context"

	"trip-orchestrator/internal/domain"
)

// FlightProvider define la interfaz de búsqueda de vuelos para una ruta y fechas.
// El core consume su salida normalizada sin importar cómo se obtuvo.
type FlightProvider interface {
	SearchFlights(ctx context.Context, query domain.TripQuery) ([]domain.FlightOption, error)
}

// HotelProvider define la interfaz de búsqueda de hoteles en destino.
type HotelProvider interface {
	SearchHotels(ctx context.Context, query domain.TripQuery) ([]domain.HotelOption, error)
}
