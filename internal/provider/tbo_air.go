package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"trip-orchestrator/internal/domain"
)

const tboDateLayout = "2006-01-02"

// TBOAirClient implementa FlightProvider contra la API de vuelos de TBO.
// Flujo: autenticar para obtener un TokenId y luego buscar ida y vuelta.
type TBOAirClient struct {
	authURL    string
	searchURL  string
	username   string
	password   string
	maxResults int
	client     *http.Client
	logger     *zap.Logger
}

func NewTBOAirClient(authURL, searchURL, username, password string, maxResults int, timeout time.Duration, logger *zap.Logger) *TBOAirClient {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if maxResults <= 0 {
		maxResults = 15
	}
	return &TBOAirClient{
		authURL:    authURL,
		searchURL:  searchURL,
		username:   username,
		password:   password,
		maxResults: maxResults,
		client:     &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *TBOAirClient) SearchFlights(ctx context.Context, query domain.TripQuery) ([]domain.FlightOption, error) {
	token, err := c.authenticate(ctx)
	if err != nil {
		return nil, fmt.Errorf("tbo air auth: %w", err)
	}

	depDate := query.DepartureDate.Format(tboDateLayout)
	retDate := query.ReturnDate.Format(tboDateLayout)

	reqBody := map[string]interface{}{
		"AdultCount":  "1",
		"ChildCount":  "0",
		"InfantCount": "0",
		"IsDomestic":  "false",
		"BookingMode": "5",
		"JourneyType": "2",
		"EndUserIp":   "192.168.10.36",
		"TokenId":     token,
		"Segments": []map[string]interface{}{
			{
				"Origin":                 query.Origin,
				"Destination":            query.Destination,
				"FlightCabinClass":       1,
				"PreferredDepartureTime": depDate + "T00:00:00",
				"PreferredArrivalTime":   depDate + "T00:00:00",
			},
			{
				"Origin":                 query.Destination,
				"Destination":            query.Origin,
				"FlightCabinClass":       1,
				"PreferredDepartureTime": retDate + "T00:00:00",
				"PreferredArrivalTime":   retDate + "T00:00:00",
			},
		},
		"ResultFareType":    0,
		"PreferredCurrency": "INR",
	}

	var searchResp tboAirSearchResponse
	if err := c.postJSON(ctx, c.searchURL, reqBody, &searchResp); err != nil {
		return nil, fmt.Errorf("tbo air search: %w", err)
	}
	if searchResp.Response == nil || len(searchResp.Response.Results) == 0 || len(searchResp.Response.Results[0]) == 0 {
		return nil, fmt.Errorf("tbo air search: no results")
	}

	results := searchResp.Response.Results[0]
	if len(results) > c.maxResults {
		results = results[:c.maxResults]
	}

	flights := make([]domain.FlightOption, 0, len(results))
	for _, r := range results {
		flights = append(flights, r.toFlightOption())
	}
	return flights, nil
}

func (c *TBOAirClient) authenticate(ctx context.Context) (string, error) {
	reqBody := map[string]interface{}{
		"BookingMode": "API",
		"UserName":    c.username,
		"Password":    c.password,
		"IPAddress":   "192.168.11.120",
	}
	var authResp struct {
		TokenId string `json:"TokenId"`
	}
	if err := c.postJSON(ctx, c.authURL, reqBody, &authResp); err != nil {
		return "", err
	}
	if authResp.TokenId == "" {
		return "", fmt.Errorf("empty token")
	}
	return authResp.TokenId, nil
}

func (c *TBOAirClient) postJSON(ctx context.Context, url string, body interface{}, out interface{}) error {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		if c.logger != nil {
			c.logger.Warn("tbo air http error", zap.Int("status", resp.StatusCode), zap.ByteString("body", respBody))
		}
		return fmt.Errorf("http status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

type tboAirSearchResponse struct {
	Response *struct {
		Results [][]tboAirResult `json:"Results"`
	} `json:"Response"`
}

type tboAirResult struct {
	ResultIndex  string `json:"ResultIndex"`
	IsRefundable bool   `json:"IsRefundable"`
	Fare         *struct {
		PublishedFare float64 `json:"PublishedFare"`
	} `json:"Fare"`
	Segments [][]tboAirSegment `json:"Segments"`
}

type tboAirSegment struct {
	StopPoint int `json:"StopPoint"`
	Airline   *struct {
		AirlineName string `json:"AirlineName"`
		FlightNo    string `json:"FlightNumber"`
	} `json:"Airline"`
	Origin struct {
		DepTime string `json:"DepTime"`
	} `json:"Origin"`
	Destination struct {
		ArrTime string `json:"ArrTime"`
	} `json:"Destination"`
}

// toFlightOption normaliza un resultado TBO al modelo del dominio, con
// defaults defensivos para campos ausentes como hacía el pipeline original.
func (r tboAirResult) toFlightOption() domain.FlightOption {
	var outbound, inbound *tboAirSegment
	if len(r.Segments) > 0 && len(r.Segments[0]) > 0 {
		outbound = &r.Segments[0][0]
	}
	if len(r.Segments) > 1 && len(r.Segments[1]) > 0 {
		inbound = &r.Segments[1][0]
	}

	flight := domain.FlightOption{
		ID:           r.ResultIndex,
		Airline:      "TBO Airline",
		OutboundTime: "10:00",
		ArrivalTime:  "14:00",
		ReturnTime:   "18:00",
		TransitHours: 3,
		Price:        15000,
		IsRefundable: r.IsRefundable,
	}
	if r.Fare != nil && r.Fare.PublishedFare > 0 {
		flight.Price = r.Fare.PublishedFare
	}
	if outbound == nil {
		return flight
	}

	if outbound.Airline != nil && outbound.Airline.AirlineName != "" {
		flight.Airline = outbound.Airline.AirlineName
		flight.FlightNumber = outbound.Airline.FlightNo
	}
	flight.Layovers = outbound.StopPoint
	if hhmm, ok := extractHHMM(outbound.Origin.DepTime); ok {
		flight.OutboundTime = hhmm
	}
	if hhmm, ok := extractHHMM(outbound.Destination.ArrTime); ok {
		flight.ArrivalTime = hhmm
	}
	if inbound != nil {
		if hhmm, ok := extractHHMM(inbound.Origin.DepTime); ok {
			flight.ReturnTime = hhmm
		}
	}
	if hours, ok := transitHours(outbound.Origin.DepTime, outbound.Destination.ArrTime); ok && hours > 0 {
		flight.TransitHours = hours
	}
	return flight
}

// extractHHMM saca "HH:MM" de un timestamp "2006-01-02T15:04:05" de TBO.
func extractHHMM(ts string) (string, bool) {
	idx := strings.IndexByte(ts, 'T')
	if idx < 0 || len(ts) < idx+6 {
		return "", false
	}
	return ts[idx+1 : idx+6], true
}

func transitHours(dep, arr string) (float64, bool) {
	const layout = "2006-01-02T15:04:05"
	depAt, errDep := time.Parse(layout, dep)
	arrAt, errArr := time.Parse(layout, arr)
	if errDep != nil || errArr != nil {
		return 0, false
	}
	return arrAt.Sub(depAt).Hours(), true
}
