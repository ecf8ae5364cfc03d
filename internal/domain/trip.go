package domain

import "time"

// TripQuery es la entrada ya validada por la capa HTTP.
type TripQuery struct {
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate time.Time `json:"departure_date"`
	ReturnDate    time.Time `json:"return_date"`
	TargetBudget  float64   `json:"target_budget"`
	Persona       string    `json:"persona"`
}

// Nights calcula noches de estadia compartidas por todos los candidatos del request.
func (q TripQuery) Nights() int {
	days := q.ReturnDate.Sub(q.DepartureDate).Hours() / 24
	nights := int(days)
	if days > float64(nights) {
		nights++
	}
	if nights < 1 {
		return 1
	}
	return nights
}

// FlightOption es una opcion de vuelo normalizada por el proveedor.
// Los horarios vienen como "HH:MM"; inmutable una vez devuelta.
type FlightOption struct {
	ID           string  `json:"id"`
	Airline      string  `json:"airline"`
	FlightNumber string  `json:"flight_number,omitempty"`
	OutboundTime string  `json:"outbound_time"`
	ArrivalTime  string  `json:"arrival_time"`
	ReturnTime   string  `json:"return_time"`
	Layovers     int     `json:"layovers"`
	TransitHours float64 `json:"transit_hours"`
	Price        float64 `json:"price"`
	IsRefundable bool    `json:"is_refundable"`
}

// HotelOption es una opcion de hotel normalizada por el proveedor.
type HotelOption struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	StarRating    int     `json:"star_rating"`
	PricePerNight float64 `json:"price_per_night"`
	IsRefundable  bool    `json:"is_refundable"`
	CancelPolicy  string  `json:"cancel_policy"`
}

// PersonaWeights pondera como se combinan los sub-scores en el score de confianza.
// Los cinco pesos de una persona suman 100.
type PersonaWeights struct {
	Budget  int `json:"budget"`
	Comfort int `json:"comfort"`
	Timing  int `json:"timing"`
	Fatigue int `json:"fatigue"`
	Hotel   int `json:"hotel"`
}

// Severidades de las anotaciones de riesgo.
const (
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityDanger  = "danger"
)

// RiskNote es una anotacion de riesgo/insight con severidad y mensaje.
type RiskNote struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// SubScores agrupa los cuatro sub-scores de un candidato, cada uno en [0,100].
type SubScores struct {
	Budget  float64 `json:"budget"`
	Comfort float64 `json:"comfort"`
	Timing  float64 `json:"timing"`
	Fatigue float64 `json:"fatigue"`
}

// TripCandidate es la entidad derivada de un par vuelo x hotel para un request.
// Vive solo durante el pipeline de un request; nunca se persiste.
type TripCandidate struct {
	Flight     FlightOption `json:"-"`
	Hotel      HotelOption  `json:"-"`
	Nights     int          `json:"nights"`
	TotalPrice float64      `json:"total_price"`

	Scores          SubScores  `json:"scores"`
	ConfidenceScore float64    `json:"confidence_score"`
	RiskNotes       []RiskNote `json:"risk_notes"`
	Insight         string     `json:"insight,omitempty"`
	DecisionTag     string     `json:"decision_tag,omitempty"`
}

// Recommendation es la vista final de un candidato ganador, lista para serializar.
type Recommendation struct {
	TotalPrice      float64    `json:"total_price"`
	HotelName       string     `json:"hotel_name"`
	HotelRating     int        `json:"hotel_rating"`
	StayDuration    string     `json:"stay_duration"`
	FlightOutbound  string     `json:"flight_outbound"`
	FlightReturn    string     `json:"flight_return"`
	Scores          SubScores  `json:"scores"`
	ConfidenceScore float64    `json:"confidence_score"`
	RiskNotes       []RiskNote `json:"risk_notes"`
	Insight         string     `json:"insight,omitempty"`
	DecisionTag     string     `json:"decision_tag"`
}

// SearchRecord guarda el resultado de una busqueda para historial/analitica.
type SearchRecord struct {
	ID            string    `json:"id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate time.Time `json:"departure_date"`
	ReturnDate    time.Time `json:"return_date"`
	Persona       string    `json:"persona"`
	TargetBudget  float64   `json:"target_budget"`
	ResultCount   int       `json:"result_count"`
	TopConfidence float64   `json:"top_confidence"`
	TopTag        string    `json:"top_tag"`
	CreatedAt     time.Time `json:"created_at"`
}
