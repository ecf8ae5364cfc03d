package service

import "trip-orchestrator/internal/domain"

// DefaultPersona se usa cuando la persona solicitada no existe en el registro.
const DefaultPersona = "Professional"

// personaWeights es el registro inmutable de ponderaciones por arquetipo de viajero.
// Invariante: los cinco pesos de cada entrada suman 100.
var personaWeights = map[string]domain.PersonaWeights{
	"Student":      {Budget: 35, Comfort: 15, Timing: 10, Fatigue: 10, Hotel: 30},
	"Family":       {Budget: 20, Comfort: 30, Timing: 20, Fatigue: 20, Hotel: 10},
	"Professional": {Budget: 15, Comfort: 20, Timing: 35, Fatigue: 20, Hotel: 10},
	"Bachelors":    {Budget: 25, Comfort: 15, Timing: 25, Fatigue: 10, Hotel: 25},
}

// WeightsFor devuelve la ponderación de la persona, o la de Professional si no se reconoce.
// Lookup puro, siempre devuelve un valor.
func WeightsFor(persona string) domain.PersonaWeights {
	if w, ok := personaWeights[persona]; ok {
		return w
	}
	return personaWeights[DefaultPersona]
}

// Personas devuelve los nombres registrados; útil para validación y documentación.
func Personas() []string {
	names := make([]string, 0, len(personaWeights))
	for name := range personaWeights {
		names = append(names, name)
	}
	return names
}
