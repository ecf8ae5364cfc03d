package service

import (
	"sort"

	"trip-orchestrator/internal/domain"
)

// Etiquetas de decisión para los finalistas.
const (
	TagSafestOverall   = "Safest Overall"
	TagBestValue       = "Best Value"
	TagMostComfortable = "Most Comfortable"
	TagPremiumChoice   = "Premium Choice"
	TagSmartOption     = "Smart Option"
)

// tagFallbackOrder define el orden fijo de sustitución cuando una etiqueta
// calculada ya fue usada por un finalista anterior.
var tagFallbackOrder = []string{TagBestValue, TagMostComfortable, TagPremiumChoice, TagSmartOption}

const (
	dedupPoolSize  = 6
	finalistCount  = 5
	resultMaxCount = 4
)

// RankCandidates ordena, deduplica y etiqueta los candidatos puntuados:
//  1. Orden estable por confianza descendente (empates conservan el orden del generador).
//  2. Dedup por nombre de hotel hasta juntar 6 candidatos con hoteles distintos.
//  3. Los primeros 5 son finalistas y reciben etiqueta de decisión.
//  4. Se devuelven los 4 mejores en orden de ranking.
func RankCandidates(candidates []domain.TripCandidate, targetBudget float64) []domain.TripCandidate {
	sorted := make([]domain.TripCandidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ConfidenceScore > sorted[j].ConfidenceScore
	})

	seenHotels := make(map[string]struct{}, dedupPoolSize)
	unique := make([]domain.TripCandidate, 0, dedupPoolSize)
	for _, c := range sorted {
		if _, ok := seenHotels[c.Hotel.Name]; ok {
			continue
		}
		seenHotels[c.Hotel.Name] = struct{}{}
		unique = append(unique, c)
		if len(unique) == dedupPoolSize {
			break
		}
	}

	finalists := unique
	if len(finalists) > finalistCount {
		finalists = finalists[:finalistCount]
	}

	assignTags(finalists, targetBudget)

	if len(finalists) > resultMaxCount {
		finalists = finalists[:resultMaxCount]
	}
	return finalists
}

// assignTags etiqueta a los finalistas en orden de ranking. El puesto 0 siempre
// recibe la etiqueta reservada. El set de usadas vive solo en esta llamada.
func assignTags(finalists []domain.TripCandidate, targetBudget float64) {
	used := make(map[string]struct{}, len(finalists))
	for i := range finalists {
		tag := decideTag(i, finalists[i], targetBudget)
		if _, taken := used[tag]; taken && i != 0 {
			tag = firstUnusedTag(used)
		}
		finalists[i].DecisionTag = tag
		used[tag] = struct{}{}
	}
}

// decideTag evalúa las reglas de etiquetado en orden de prioridad fija.
func decideTag(rank int, c domain.TripCandidate, targetBudget float64) string {
	switch {
	case rank == 0:
		return TagSafestOverall
	case c.Scores.Budget >= 90 && c.TotalPrice < targetBudget:
		return TagBestValue
	case c.Scores.Comfort >= 80 || c.Scores.Fatigue >= 85:
		return TagMostComfortable
	case c.Hotel.StarRating == 5 && c.TotalPrice > targetBudget:
		return TagPremiumChoice
	default:
		return TagSmartOption
	}
}

// firstUnusedTag recorre el orden de sustitución fijo; si todo está tomado,
// repite la etiqueta genérica (único caso donde se permiten duplicados).
func firstUnusedTag(used map[string]struct{}) string {
	for _, tag := range tagFallbackOrder {
		if _, taken := used[tag]; !taken {
			return tag
		}
	}
	return TagSmartOption
}
