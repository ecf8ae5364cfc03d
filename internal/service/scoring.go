package service

import (
	"fmt"
	"math"

	"trip-orchestrator/internal/domain"
)

// ConfidenceScore combina los cuatro sub-scores según la ponderación de la persona.
// El término de calidad de hotel (estrellas*20) reutiliza el star rating aparte del
// término de comfort: ambos pesan por canales distintos a propósito, de modo que una
// persona que enfatiza "hotel" amplifica las estrellas dos veces. No normalizar.
func ConfidenceScore(scores domain.SubScores, starRating int, w domain.PersonaWeights) float64 {
	return scores.Budget*(float64(w.Budget)/100) +
		scores.Comfort*(float64(w.Comfort)/100) +
		scores.Timing*(float64(w.Timing)/100) +
		scores.Fatigue*(float64(w.Fatigue)/100) +
		float64(starRating*20)*(float64(w.Hotel)/100)
}

// RiskNotes genera las anotaciones de riesgo de un candidato en orden fijo:
// presupuesto, llegada, horario de salida, reembolsabilidad, escalas.
// Puede aplicar más de una; todas se conservan en orden de generación.
func RiskNotes(c domain.TripCandidate, targetBudget float64, outHour, arrHour int) []domain.RiskNote {
	notes := make([]domain.RiskNote, 0, 5)

	diff := c.TotalPrice - targetBudget
	switch {
	case c.TotalPrice <= targetBudget:
		notes = append(notes, domain.RiskNote{Severity: domain.SeveritySuccess, Message: "Dentro de un presupuesto cómodo"})
	case c.TotalPrice <= targetBudget*1.1:
		pct := math.Round(diff / targetBudget * 100)
		notes = append(notes, domain.RiskNote{Severity: domain.SeverityWarning, Message: fmt.Sprintf("Levemente sobre presupuesto (+%.0f%%)", pct)})
	default:
		notes = append(notes, domain.RiskNote{Severity: domain.SeverityDanger, Message: "Significativamente sobre presupuesto"})
	}

	if arrHour < 15 {
		notes = append(notes, domain.RiskNote{Severity: domain.SeveritySuccess, Message: "Buena hora de llegada (día 1 intacto)"})
	} else {
		notes = append(notes, domain.RiskNote{Severity: domain.SeverityWarning, Message: "Llegada tardía desperdicia el día 1"})
	}

	if outHour < 6 || outHour > 22 {
		notes = append(notes, domain.RiskNote{Severity: domain.SeverityWarning, Message: fmt.Sprintf("Horario de salida incómodo (%s)", c.Flight.OutboundTime)})
	}

	switch {
	case c.Hotel.IsRefundable && c.Flight.IsRefundable:
		notes = append(notes, domain.RiskNote{Severity: domain.SeveritySuccess, Message: "Viaje totalmente reembolsable"})
	case c.Hotel.IsRefundable:
		notes = append(notes, domain.RiskNote{Severity: domain.SeverityWarning, Message: "Hotel reembolsable, vuelo estricto"})
	default:
		notes = append(notes, domain.RiskNote{Severity: domain.SeverityDanger, Message: "Componentes del viaje no reembolsables"})
	}

	if c.Flight.Layovers > 0 {
		notes = append(notes, domain.RiskNote{Severity: domain.SeverityWarning, Message: "Incluye escalas"})
	}

	return notes
}
