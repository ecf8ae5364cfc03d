package provider

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"trip-orchestrator/internal/domain"
)

// TBOHotelClient implementa HotelProvider contra la API de hoteles de TBO.
// Busca sobre un set configurado de códigos de hotel con basic auth.
type TBOHotelClient struct {
	searchURL  string
	username   string
	password   string
	hotelCodes string
	maxResults int
	client     *http.Client
	logger     *zap.Logger
}

func NewTBOHotelClient(searchURL, username, password, hotelCodes string, maxResults int, timeout time.Duration, logger *zap.Logger) *TBOHotelClient {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if maxResults <= 0 {
		maxResults = 20
	}
	return &TBOHotelClient{
		searchURL:  searchURL,
		username:   username,
		password:   password,
		hotelCodes: hotelCodes,
		maxResults: maxResults,
		client:     &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *TBOHotelClient) SearchHotels(ctx context.Context, query domain.TripQuery) ([]domain.HotelOption, error) {
	reqBody := map[string]interface{}{
		"CheckIn":          query.DepartureDate.Format(tboDateLayout),
		"CheckOut":         query.ReturnDate.Format(tboDateLayout),
		"HotelCodes":       c.hotelCodes,
		"GuestNationality": "IN",
		"PaxRooms": []map[string]interface{}{
			{"Adults": 1, "Children": 0, "ChildrenAges": []int{}},
		},
		"ResponseTime":       20.0,
		"IsDetailedResponse": true,
		"Filters": map[string]interface{}{
			"Refundable": true,
			"NoOfRooms":  0,
			"MealType":   0,
			"OrderBy":    0,
			"StarRating": 0,
			"HotelName":  nil,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("tbo hotel marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.searchURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("tbo hotel request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.username != "" {
		creds := base64.StdEncoding.EncodeToString([]byte(c.username + ":" + c.password))
		req.Header.Set("Authorization", "Basic "+creds)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tbo hotel do: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tbo hotel read: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("tbo hotel http status %d", resp.StatusCode)
	}

	var searchResp tboHotelSearchResponse
	if err := json.Unmarshal(respBody, &searchResp); err != nil {
		return nil, fmt.Errorf("tbo hotel unmarshal: %w", err)
	}
	if c.logger != nil && searchResp.Status != nil {
		c.logger.Info("tbo hotel status", zap.String("description", searchResp.Status.Description))
	}

	// Código 201 o "No Available rooms": la cuenta demo no tiene inventario.
	if searchResp.Status != nil &&
		(searchResp.Status.Code == 201 || strings.Contains(searchResp.Status.Description, "No Available rooms")) {
		return nil, fmt.Errorf("tbo hotel: no inventory available")
	}
	if searchResp.HotelSearchResult == nil || len(searchResp.HotelSearchResult.HotelResults) == 0 {
		return nil, fmt.Errorf("tbo hotel: no results")
	}

	results := searchResp.HotelSearchResult.HotelResults
	if len(results) > c.maxResults {
		results = results[:c.maxResults]
	}

	nights := query.Nights()
	hotels := make([]domain.HotelOption, 0, len(results))
	for _, h := range results {
		hotels = append(hotels, h.toHotelOption(nights))
	}
	return hotels, nil
}

type tboHotelSearchResponse struct {
	Status *struct {
		Code        int    `json:"Code"`
		Description string `json:"Description"`
	} `json:"Status"`
	HotelSearchResult *struct {
		HotelResults []tboHotelResult `json:"HotelResults"`
	} `json:"HotelSearchResult"`
}

type tboHotelResult struct {
	HotelCode      string  `json:"HotelCode"`
	HotelName      string  `json:"HotelName"`
	StarRating     int     `json:"StarRating"`
	TotalFare      float64 `json:"TotalFare"`
	IsRefundable   bool    `json:"IsRefundable"`
	CancelPolicies []struct {
		PolicyDetails string `json:"PolicyDetails"`
	} `json:"CancelPolicies"`
}

func (h tboHotelResult) toHotelOption(nights int) domain.HotelOption {
	hotel := domain.HotelOption{
		ID:            h.HotelCode,
		Name:          h.HotelName,
		StarRating:    h.StarRating,
		PricePerNight: 5000,
		IsRefundable:  h.IsRefundable,
		CancelPolicy:  "Standard rules apply",
	}
	if hotel.Name == "" {
		hotel.Name = "TBO Hotel"
	}
	if hotel.StarRating == 0 {
		hotel.StarRating = 3
	}
	if h.TotalFare > 0 && nights > 0 {
		hotel.PricePerNight = math.Round(h.TotalFare / float64(nights))
	}
	if len(h.CancelPolicies) > 0 && h.CancelPolicies[0].PolicyDetails != "" {
		hotel.CancelPolicy = h.CancelPolicies[0].PolicyDetails
	}
	return hotel
}
