package service

import (
	"go.uber.org/zap"

	"trip-orchestrator/internal/domain"
)

// CandidateGenerator arma el producto cartesiano vuelo x hotel en candidatos
// puntuados. Es exhaustivo a propósito (acotado por los topes de resultados de
// los proveedores): el ranking posterior necesita opciones reales, así que no
// se poda nada antes de puntuar.
type CandidateGenerator struct {
	maxFlights int
	maxHotels  int
	logger     *zap.Logger
}

func NewCandidateGenerator(maxFlights, maxHotels int, logger *zap.Logger) *CandidateGenerator {
	if maxFlights <= 0 {
		maxFlights = 15
	}
	if maxHotels <= 0 {
		maxHotels = 20
	}
	return &CandidateGenerator{
		maxFlights: maxFlights,
		maxHotels:  maxHotels,
		logger:     logger,
	}
}

// Generate produce un TripCandidate por cada par (vuelo, hotel). Listas vacías
// devuelven un slice vacío sin error. Un vuelo con horarios no interpretables
// se descarta completo (todas sus combinaciones) en lugar de abortar el lote.
func (g *CandidateGenerator) Generate(
	flights []domain.FlightOption,
	hotels []domain.HotelOption,
	nights int,
	targetBudget float64,
	weights domain.PersonaWeights,
) []domain.TripCandidate {
	if len(flights) > g.maxFlights {
		flights = flights[:g.maxFlights]
	}
	if len(hotels) > g.maxHotels {
		hotels = hotels[:g.maxHotels]
	}

	candidates := make([]domain.TripCandidate, 0, len(flights)*len(hotels))

	for _, flight := range flights {
		outHour, errOut := ParseHour(flight.OutboundTime)
		arrHour, errArr := ParseHour(flight.ArrivalTime)
		retHour, errRet := ParseHour(flight.ReturnTime)
		if errOut != nil || errArr != nil || errRet != nil {
			g.logger.Warn("flight excluded: unparsable time fields",
				zap.String("flight_id", flight.ID),
				zap.String("outbound", flight.OutboundTime),
				zap.String("arrival", flight.ArrivalTime),
				zap.String("return", flight.ReturnTime),
			)
			continue
		}

		fatigueScore := FatigueIndex(outHour, flight.Layovers, flight.TransitHours)
		timingScore := TimeUtilization(arrHour, retHour)

		for _, hotel := range hotels {
			totalPrice := flight.Price + hotel.PricePerNight*float64(nights)
			comfortScore := ComfortScore(hotel.StarRating)
			budgetScore := BudgetScore(totalPrice, targetBudget)

			candidate := domain.TripCandidate{
				Flight:     flight,
				Hotel:      hotel,
				Nights:     nights,
				TotalPrice: totalPrice,
				Scores: domain.SubScores{
					Budget:  budgetScore,
					Comfort: comfortScore,
					Timing:  timingScore,
					Fatigue: fatigueScore,
				},
			}
			candidate.ConfidenceScore = ConfidenceScore(candidate.Scores, hotel.StarRating, weights)
			candidate.RiskNotes = RiskNotes(candidate, targetBudget, outHour, arrHour)
			candidate.Insight = ElasticityInsight(totalPrice, targetBudget, comfortScore, fatigueScore)

			candidates = append(candidates, candidate)
		}
	}

	return candidates
}
