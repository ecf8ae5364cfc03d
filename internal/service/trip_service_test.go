package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"trip-orchestrator/internal/domain"
	"trip-orchestrator/internal/provider"
)

type mockHistoryRepo struct {
	mu      sync.Mutex
	saved   []domain.SearchRecord
	savedCh chan struct{}
	err     error
}

func newMockHistoryRepo() *mockHistoryRepo {
	return &mockHistoryRepo{savedCh: make(chan struct{}, 1)}
}

func (m *mockHistoryRepo) Save(_ context.Context, record domain.SearchRecord) error {
	m.mu.Lock()
	m.saved = append(m.saved, record)
	m.mu.Unlock()
	select {
	case m.savedCh <- struct{}{}:
	default:
	}
	return m.err
}

func (m *mockHistoryRepo) Recent(_ context.Context, _ int) ([]domain.SearchRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved, m.err
}

func testQuery() domain.TripQuery {
	return domain.TripQuery{
		Origin:        "DEL",
		Destination:   "BOM",
		DepartureDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		ReturnDate:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		TargetBudget:  20000,
		Persona:       "Professional",
	}
}

func TestRecommendHappyPath(t *testing.T) {
	flights := &provider.MockFlightProvider{Flights: provider.SampleFlights()}
	hotels := &provider.MockHotelProvider{Hotels: provider.SampleHotels()}
	history := newMockHistoryRepo()

	svc := NewTripService(zap.NewNop(), flights, hotels, NewCandidateGenerator(15, 20, zap.NewNop()), history)

	trips, err := svc.Recommend(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(trips) == 0 || len(trips) > 4 {
		t.Fatalf("expected 1-4 recommendations, got %d", len(trips))
	}
	if flights.Calls != 1 || hotels.Calls != 1 {
		t.Fatalf("expected one call per provider, got flights=%d hotels=%d", flights.Calls, hotels.Calls)
	}

	if trips[0].DecisionTag != TagSafestOverall {
		t.Fatalf("top tag = %q; want %q", trips[0].DecisionTag, TagSafestOverall)
	}
	for i := 0; i < len(trips)-1; i++ {
		if trips[i].ConfidenceScore < trips[i+1].ConfidenceScore {
			t.Fatalf("results not sorted by confidence at %d", i)
		}
	}
	seenHotels := map[string]bool{}
	seenTags := map[string]bool{}
	for _, trip := range trips {
		if seenHotels[trip.HotelName] {
			t.Fatalf("duplicate hotel %q in results", trip.HotelName)
		}
		seenHotels[trip.HotelName] = true
		if seenTags[trip.DecisionTag] {
			t.Fatalf("duplicate tag %q in results", trip.DecisionTag)
		}
		seenTags[trip.DecisionTag] = true
		if trip.StayDuration != "2 Nights" {
			t.Fatalf("stay duration = %q; want \"2 Nights\"", trip.StayDuration)
		}
	}
}

func TestRecommendWritesHistoryAsync(t *testing.T) {
	flights := &provider.MockFlightProvider{Flights: provider.SampleFlights()}
	hotels := &provider.MockHotelProvider{Hotels: provider.SampleHotels()}
	history := newMockHistoryRepo()

	svc := NewTripService(zap.NewNop(), flights, hotels, NewCandidateGenerator(15, 20, zap.NewNop()), history)

	trips, err := svc.Recommend(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	select {
	case <-history.savedCh:
	case <-time.After(2 * time.Second):
		t.Fatal("history record was not saved")
	}

	history.mu.Lock()
	defer history.mu.Unlock()
	record := history.saved[0]
	if record.Origin != "DEL" || record.Destination != "BOM" {
		t.Fatalf("record route = %s-%s; want DEL-BOM", record.Origin, record.Destination)
	}
	if record.ResultCount != len(trips) {
		t.Fatalf("record result count = %d; want %d", record.ResultCount, len(trips))
	}
	if record.TopTag != TagSafestOverall {
		t.Fatalf("record top tag = %q", record.TopTag)
	}
	if record.ID == "" {
		t.Fatal("record id empty")
	}
}

func TestRecommendProviderErrorFailsWhole(t *testing.T) {
	wantErr := errors.New("upstream down")

	svc := NewTripService(
		zap.NewNop(),
		&provider.MockFlightProvider{Err: wantErr},
		&provider.MockHotelProvider{Hotels: provider.SampleHotels()},
		NewCandidateGenerator(15, 20, zap.NewNop()),
		nil,
	)
	if _, err := svc.Recommend(context.Background(), testQuery()); !errors.Is(err, wantErr) {
		t.Fatalf("flight error not propagated: %v", err)
	}

	svc = NewTripService(
		zap.NewNop(),
		&provider.MockFlightProvider{Flights: provider.SampleFlights()},
		&provider.MockHotelProvider{Err: wantErr},
		NewCandidateGenerator(15, 20, zap.NewNop()),
		nil,
	)
	if _, err := svc.Recommend(context.Background(), testQuery()); !errors.Is(err, wantErr) {
		t.Fatalf("hotel error not propagated: %v", err)
	}
}

func TestRecommendEmptyProviderListsIsSuccess(t *testing.T) {
	svc := NewTripService(
		zap.NewNop(),
		&provider.MockFlightProvider{},
		&provider.MockHotelProvider{},
		NewCandidateGenerator(15, 20, zap.NewNop()),
		nil,
	)

	trips, err := svc.Recommend(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("empty provider lists must not error: %v", err)
	}
	if len(trips) != 0 {
		t.Fatalf("expected empty result, got %d", len(trips))
	}
}

func TestTripQueryNights(t *testing.T) {
	tests := []struct {
		name string
		dep  time.Time
		ret  time.Time
		want int
	}{
		{
			name: "two nights",
			dep:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			ret:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			want: 2,
		},
		{
			name: "same day clamps to one",
			dep:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			ret:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "partial day rounds up",
			dep:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			ret:  time.Date(2026, 9, 12, 6, 0, 0, 0, time.UTC),
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := domain.TripQuery{DepartureDate: tt.dep, ReturnDate: tt.ret}
			if got := q.Nights(); got != tt.want {
				t.Fatalf("Nights() = %d; want %d", got, tt.want)
			}
		})
	}
}
