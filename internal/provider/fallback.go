package provider

import (
	"context"

	"go.uber.org/zap"

	"trip-orchestrator/internal/domain"
)

// SampleFlights devuelve el dataset fijo de vuelos usado cuando el proveedor
// real falla (credenciales vencidas, whitelist, sin red). Copia nueva en cada
// llamada para que ningún consumidor mute el original.
func SampleFlights() []domain.FlightOption {
	return []domain.FlightOption{
		{ID: "A1", Airline: "Indigo Test Result", OutboundTime: "05:30", ArrivalTime: "08:30", ReturnTime: "10:00", Layovers: 0, TransitHours: 3, Price: 12000, IsRefundable: true},
		{ID: "A2", Airline: "Emirates Test Result", OutboundTime: "10:00", ArrivalTime: "13:30", ReturnTime: "18:00", Layovers: 0, TransitHours: 3.5, Price: 28000, IsRefundable: true},
		{ID: "A4", Airline: "Vistara Test Result", OutboundTime: "08:00", ArrivalTime: "11:00", ReturnTime: "20:00", Layovers: 0, TransitHours: 3, Price: 21000, IsRefundable: true},
		{ID: "A5", Airline: "SpiceJet Test Result", OutboundTime: "23:30", ArrivalTime: "03:00", ReturnTime: "06:00", Layovers: 0, TransitHours: 3.5, Price: 10500, IsRefundable: false},
	}
}

// SampleHotels devuelve el dataset fijo de hoteles de respaldo.
func SampleHotels() []domain.HotelOption {
	return []domain.HotelOption{
		{ID: "H1", Name: "Taj Palace Test Result", StarRating: 5, PricePerNight: 12000, IsRefundable: true, CancelPolicy: "Free till 2 days prior"},
		{ID: "H2", Name: "Ibis Styles Test Result", StarRating: 3, PricePerNight: 4000, IsRefundable: false, CancelPolicy: "Non-refundable"},
	}
}

// FlightFallback envuelve un FlightProvider primario: ante cualquier error
// devuelve el dataset de muestra. El core nunca distingue entre dato vivo y
// dato sustituto.
type FlightFallback struct {
	primary FlightProvider
	logger  *zap.Logger
}

func NewFlightFallback(primary FlightProvider, logger *zap.Logger) *FlightFallback {
	return &FlightFallback{primary: primary, logger: logger}
}

func (f *FlightFallback) SearchFlights(ctx context.Context, query domain.TripQuery) ([]domain.FlightOption, error) {
	if f.primary != nil {
		flights, err := f.primary.SearchFlights(ctx, query)
		if err == nil {
			return flights, nil
		}
		f.logger.Warn("flight provider failed, using fallback dataset", zap.Error(err))
	}
	return SampleFlights(), nil
}

// HotelFallback envuelve un HotelProvider primario con el mismo contrato.
type HotelFallback struct {
	primary HotelProvider
	logger  *zap.Logger
}

func NewHotelFallback(primary HotelProvider, logger *zap.Logger) *HotelFallback {
	return &HotelFallback{primary: primary, logger: logger}
}

func (f *HotelFallback) SearchHotels(ctx context.Context, query domain.TripQuery) ([]domain.HotelOption, error) {
	if f.primary != nil {
		hotels, err := f.primary.SearchHotels(ctx, query)
		if err == nil {
			return hotels, nil
		}
		f.logger.Warn("hotel provider failed, using fallback dataset", zap.Error(err))
	}
	return SampleHotels(), nil
}
