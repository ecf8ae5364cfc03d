package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trip-orchestrator/internal/domain"
	"trip-orchestrator/internal/provider"
	"trip-orchestrator/internal/repository"
)

// TripService coordina el pipeline completo de un request: búsqueda en
// proveedores, generación de candidatos, puntuación y ranking. No guarda
// estado entre requests; requests concurrentes no comparten nada mutable.
type TripService struct {
	logger    *zap.Logger
	flights   provider.FlightProvider
	hotels    provider.HotelProvider
	generator *CandidateGenerator
	history   repository.SearchHistoryRepository
}

func NewTripService(
	logger *zap.Logger,
	flights provider.FlightProvider,
	hotels provider.HotelProvider,
	generator *CandidateGenerator,
	history repository.SearchHistoryRepository,
) *TripService {
	return &TripService{
		logger:    logger,
		flights:   flights,
		hotels:    hotels,
		generator: generator,
		history:   history,
	}
}

// Recommend ejecuta el pipeline una vez, de punta a punta. Las dos búsquedas
// de proveedor salen en paralelo y se espera a ambas antes de generar
// candidatos; si cualquiera falla, falla el request completo (sin parciales).
// Listas vacías de proveedor son entrada legal y producen resultado vacío.
func (s *TripService) Recommend(ctx context.Context, query domain.TripQuery) ([]domain.Recommendation, error) {
	var (
		wg         sync.WaitGroup
		flights    []domain.FlightOption
		hotels     []domain.HotelOption
		flightsErr error
		hotelsErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		flights, flightsErr = s.flights.SearchFlights(ctx, query)
	}()
	go func() {
		defer wg.Done()
		hotels, hotelsErr = s.hotels.SearchHotels(ctx, query)
	}()
	wg.Wait()

	if flightsErr != nil {
		return nil, fmt.Errorf("flight search: %w", flightsErr)
	}
	if hotelsErr != nil {
		return nil, fmt.Errorf("hotel search: %w", hotelsErr)
	}

	weights := WeightsFor(query.Persona)
	nights := query.Nights()

	candidates := s.generator.Generate(flights, hotels, nights, query.TargetBudget, weights)
	ranked := RankCandidates(candidates, query.TargetBudget)

	recommendations := make([]domain.Recommendation, 0, len(ranked))
	for _, c := range ranked {
		recommendations = append(recommendations, toRecommendation(c))
	}

	s.logger.Info("trip pipeline finished",
		zap.String("origin", query.Origin),
		zap.String("destination", query.Destination),
		zap.Int("flights", len(flights)),
		zap.Int("hotels", len(hotels)),
		zap.Int("candidates", len(candidates)),
		zap.Int("results", len(recommendations)),
	)

	// El historial se escribe en segundo plano para no bloquear la respuesta.
	if s.history != nil {
		record := buildSearchRecord(query, recommendations)
		go func() {
			ctxSave, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.history.Save(ctxSave, record); err != nil {
				s.logger.Warn("search history save failed", zap.Error(err))
			}
		}()
	}

	return recommendations, nil
}

// History devuelve las búsquedas más recientes registradas.
func (s *TripService) History(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Recent(ctx, limit)
}

func toRecommendation(c domain.TripCandidate) domain.Recommendation {
	return domain.Recommendation{
		TotalPrice:      c.TotalPrice,
		HotelName:       c.Hotel.Name,
		HotelRating:     c.Hotel.StarRating,
		StayDuration:    fmt.Sprintf("%d Nights", c.Nights),
		FlightOutbound:  fmt.Sprintf("%s (%s - %s)", c.Flight.Airline, c.Flight.OutboundTime, c.Flight.ArrivalTime),
		FlightReturn:    fmt.Sprintf("%s (%s)", c.Flight.Airline, c.Flight.ReturnTime),
		Scores:          c.Scores,
		ConfidenceScore: c.ConfidenceScore,
		RiskNotes:       c.RiskNotes,
		Insight:         c.Insight,
		DecisionTag:     c.DecisionTag,
	}
}

func buildSearchRecord(query domain.TripQuery, results []domain.Recommendation) domain.SearchRecord {
	record := domain.SearchRecord{
		ID:            uuid.NewString(),
		Origin:        query.Origin,
		Destination:   query.Destination,
		DepartureDate: query.DepartureDate,
		ReturnDate:    query.ReturnDate,
		Persona:       query.Persona,
		TargetBudget:  query.TargetBudget,
		ResultCount:   len(results),
		CreatedAt:     time.Now().UTC(),
	}
	if len(results) > 0 {
		record.TopConfidence = results[0].ConfidenceScore
		record.TopTag = results[0].DecisionTag
	}
	return record
}
