package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"trip-orchestrator/internal/domain"
	"trip-orchestrator/internal/provider"
	"trip-orchestrator/internal/repository"
	"trip-orchestrator/internal/service"
)

// Demo interactiva del pipeline contra los datasets de respaldo; no requiere
// credenciales ni red.
func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	logger := zap.NewExample()
	defer logger.Sync()

	flights := provider.NewFlightFallback(nil, logger)
	hotels := provider.NewHotelFallback(nil, logger)
	generator := service.NewCandidateGenerator(15, 20, logger)
	tripSvc := service.NewTripService(logger, flights, hotels, generator, repository.NewDisabledSearchHistory())

	fmt.Println("===== Trip Orchestrator CLI =====")
	origin := prompt(reader, "Origen (ej: DEL)", "DEL")
	destination := prompt(reader, "Destino (ej: BOM)", "BOM")
	departure := promptDate(reader, "Fecha de salida (YYYY-MM-DD)", time.Now().AddDate(0, 0, 14))
	returnDate := promptDate(reader, "Fecha de regreso (YYYY-MM-DD)", departure.AddDate(0, 0, 3))
	budget := promptFloat(reader, "Presupuesto objetivo (INR)", 25000)
	persona := prompt(reader, fmt.Sprintf("Persona %v", service.Personas()), service.DefaultPersona)

	query := domain.TripQuery{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: departure,
		ReturnDate:    returnDate,
		TargetBudget:  budget,
		Persona:       persona,
	}

	trips, err := tripSvc.Recommend(ctx, query)
	if err != nil {
		log.Fatalf("recomendación falló: %v", err)
	}
	if len(trips) == 0 {
		fmt.Println("Sin recomendaciones disponibles.")
		return
	}

	for i, trip := range trips {
		fmt.Printf("\n#%d [%s] — confianza %.0f\n", i+1, trip.DecisionTag, trip.ConfidenceScore)
		fmt.Printf("   Hotel: %s (%d estrellas), %s\n", trip.HotelName, trip.HotelRating, trip.StayDuration)
		fmt.Printf("   Vuelo ida: %s | regreso: %s\n", trip.FlightOutbound, trip.FlightReturn)
		fmt.Printf("   Precio total: ₹%.0f | scores: budget %.0f, comfort %.0f, timing %.0f, fatigue %.0f\n",
			trip.TotalPrice, trip.Scores.Budget, trip.Scores.Comfort, trip.Scores.Timing, trip.Scores.Fatigue)
		for _, note := range trip.RiskNotes {
			fmt.Printf("   [%s] %s\n", note.Severity, note.Message)
		}
		if trip.Insight != "" {
			fmt.Printf("   Insight: %s\n", trip.Insight)
		}
	}
}

func prompt(reader *bufio.Reader, label, fallback string) string {
	fmt.Printf("%s [%s]: ", label, fallback)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}

func promptDate(reader *bufio.Reader, label string, fallback time.Time) time.Time {
	raw := prompt(reader, label, fallback.Format("2006-01-02"))
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		fmt.Printf("fecha inválida, usando %s\n", fallback.Format("2006-01-02"))
		return fallback
	}
	return parsed
}

func promptFloat(reader *bufio.Reader, label string, fallback float64) float64 {
	raw := prompt(reader, label, strconv.FormatFloat(fallback, 'f', 0, 64))
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || parsed <= 0 {
		fmt.Printf("monto inválido, usando %.0f\n", fallback)
		return fallback
	}
	return parsed
}
