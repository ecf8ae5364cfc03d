package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestTBOHotelSearchHotels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Basic ") {
			t.Fatalf("missing basic auth header: %q", auth)
		}
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["CheckIn"] != "2026-09-10" || body["CheckOut"] != "2026-09-12" {
			t.Fatalf("dates = %v / %v", body["CheckIn"], body["CheckOut"])
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"Status": map[string]interface{}{"Code": 200, "Description": "Success"},
			"HotelSearchResult": map[string]interface{}{
				"HotelResults": []map[string]interface{}{
					{
						"HotelCode":    "376565",
						"HotelName":    "Taj Palace",
						"StarRating":   5,
						"TotalFare":    24000.0,
						"IsRefundable": true,
						"CancelPolicies": []map[string]interface{}{
							{"PolicyDetails": "Free till 2 days prior"},
						},
					},
					{
						"HotelCode": "1345318",
						"TotalFare": 8000.0,
					},
				},
			},
		})
	}))
	defer server.Close()

	client := NewTBOHotelClient(server.URL, "demo", "secret", "376565,1345318", 20, 5*time.Second, zap.NewNop())

	hotels, err := client.SearchHotels(context.Background(), fallbackQuery())
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(hotels) != 2 {
		t.Fatalf("expected 2 hotels, got %d", len(hotels))
	}

	taj := hotels[0]
	if taj.ID != "376565" || taj.Name != "Taj Palace" || taj.StarRating != 5 {
		t.Fatalf("mapped hotel = %+v", taj)
	}
	// 24000 de fare total entre 2 noches.
	if taj.PricePerNight != 12000 {
		t.Fatalf("price per night = %.0f; want 12000", taj.PricePerNight)
	}
	if taj.CancelPolicy != "Free till 2 days prior" {
		t.Fatalf("cancel policy = %q", taj.CancelPolicy)
	}

	// Campos ausentes reciben defaults defensivos.
	anon := hotels[1]
	if anon.Name != "TBO Hotel" || anon.StarRating != 3 {
		t.Fatalf("defaulted hotel = %+v", anon)
	}
	if anon.PricePerNight != 4000 {
		t.Fatalf("defaulted price per night = %.0f; want 4000", anon.PricePerNight)
	}
	if anon.CancelPolicy != "Standard rules apply" {
		t.Fatalf("defaulted cancel policy = %q", anon.CancelPolicy)
	}
}

func TestTBOHotelNoInventory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"Status": map[string]interface{}{"Code": 201, "Description": "No Available rooms for given criteria"},
		})
	}))
	defer server.Close()

	client := NewTBOHotelClient(server.URL, "demo", "secret", "376565", 20, 5*time.Second, zap.NewNop())
	if _, err := client.SearchHotels(context.Background(), fallbackQuery()); err == nil {
		t.Fatal("expected no-inventory error")
	}
}

func TestTBOHotelCapsResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		results := make([]map[string]interface{}, 5)
		for i := range results {
			results[i] = map[string]interface{}{"HotelCode": "X", "HotelName": "Hotel", "StarRating": 3, "TotalFare": 6000.0}
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"HotelSearchResult": map[string]interface{}{"HotelResults": results},
		})
	}))
	defer server.Close()

	client := NewTBOHotelClient(server.URL, "", "", "X", 2, 5*time.Second, zap.NewNop())
	hotels, err := client.SearchHotels(context.Background(), fallbackQuery())
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(hotels) != 2 {
		t.Fatalf("expected capped 2 hotels, got %d", len(hotels))
	}
}
