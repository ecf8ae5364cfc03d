package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadTime indica un horario "HH:MM" que no se pudo interpretar.
var ErrBadTime = errors.New("bad time format")

// ParseHour extrae la hora (0-23) de un horario "HH:MM".
// La capa de generación de candidatos descarta vuelos con horarios inválidos
// antes de que lleguen a los calculadores de señales.
func ParseHour(hhmm string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
	if parts[0] == "" {
		return 0, fmt.Errorf("%w: %q", ErrBadTime, hhmm)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrBadTime, hhmm)
	}
	return hour, nil
}

// FatigueIndex estima qué tan desgastante es el itinerario de vuelo, en [0,100].
// Penaliza salidas antes de las 06:00, salidas muy tardías (>= 22:00 o, por
// wraparound al día siguiente, antes de las 03:00), cada escala y tránsitos
// largos. outboundHour debe venir ya validado por ParseHour.
func FatigueIndex(outboundHour, layovers int, transitHours float64) float64 {
	penalty := 0.0
	if outboundHour < 6 {
		penalty += 15
	}
	if outboundHour >= 22 || outboundHour < 3 {
		penalty += 15
	}
	if layovers > 0 {
		penalty += float64(layovers) * 10
	}
	if transitHours > 8 {
		penalty += 10
	}
	return clampScore(100 - penalty)
}

// TimeUtilization mide cuánto del viaje queda aprovechable, en [0,100].
// Llegadas después de las 15:00 desperdician el primer día; regresos antes
// del mediodía recortan el último.
func TimeUtilization(arrivalHour, returnHour int) float64 {
	score := 100.0
	if arrivalHour > 15 {
		score -= 20
	}
	if returnHour < 12 {
		score -= 20
	}
	return clampScore(score)
}

// ComfortScore es el proxy de calidad del hotel: (estrellas/5)*100.
func ComfortScore(starRating int) float64 {
	return clampScore(float64(starRating) / 5.0 * 100)
}

// clampScore acota un score al rango [0,100].
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
