package service

import "fmt"

// BudgetScore puntúa el ajuste al presupuesto objetivo, en [0,100].
// En o bajo presupuesto: 100. Sobrecosto de hasta 10%: banda plana de 80
// (discontinuidad deliberada: un sobrecosto "límite" no debe puntuar mejor
// que un viaje cómodamente bajo presupuesto). Más allá decae lineal y fuerte:
// max(0, 100 - fraccionSobrecosto*200), llegando a 0 con 50% de sobrecosto.
func BudgetScore(totalPrice, targetBudget float64) float64 {
	diff := totalPrice - targetBudget
	if diff <= 0 {
		return 100
	}
	if diff <= targetBudget*0.10 {
		return 80
	}
	return clampScore(100 - (diff/targetBudget)*200)
}

// ElasticityInsight genera a lo sumo un insight de elasticidad por candidato;
// gana la primera regla que aplique. Devuelve "" si ninguna aplica.
func ElasticityInsight(totalPrice, targetBudget, comfortScore, fatigueScore float64) string {
	if totalPrice > targetBudget && totalPrice <= targetBudget*1.15 && comfortScore >= 80 {
		return fmt.Sprintf("Por ₹%.0f más, tu comfort y la categoría del hotel mejoran significativamente.", totalPrice-targetBudget)
	}
	if totalPrice < targetBudget*0.9 && fatigueScore < 65 {
		return fmt.Sprintf("Ahorrar ₹%.0f implica un costo alto de fatiga (vuelos tardíos/escalas).", targetBudget-totalPrice)
	}
	return ""
}
