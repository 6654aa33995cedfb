package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bookingmx/bookingmx/internal/cities"
)

func testGraph(t *testing.T) *cities.Graph {
	t.Helper()

	g, err := cities.BuildGraph(
		[]string{"CenterCity", "A", "B", "C"},
		[]cities.EdgeSpec{
			{From: "CenterCity", To: "A", Distance: 50},
			{From: "CenterCity", To: "B", Distance: 150},
			{From: "CenterCity", To: "C", Distance: 300},
		},
	)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	return g
}

func TestCityService_ListCities(t *testing.T) {
	svc := NewCityService(testGraph(t), 0, testLogger())

	cat, err := svc.ListCities(context.Background())
	if err != nil {
		t.Fatalf("ListCities: %v", err)
	}

	if len(cat.Cities) != 4 || cat.Cities[0] != "CenterCity" || cat.Roads != 3 {
		t.Errorf("catalog = %+v", cat)
	}
}

func TestCityService_NearbyDefaultRadius(t *testing.T) {
	svc := NewCityService(testGraph(t), 0, testLogger())

	if svc.DefaultMaxKm() != cities.DefaultMaxDistanceKm {
		t.Fatalf("DefaultMaxKm = %v", svc.DefaultMaxKm())
	}

	got, err := svc.Nearby(context.Background(), "CenterCity", nil)
	if err != nil {
		t.Fatalf("Nearby: %v", err)
	}

	if len(got) != 2 || got[0].City != "A" || got[1].City != "B" {
		t.Errorf("Nearby = %+v, want A, B", got)
	}
}

func TestCityService_NearbyExplicitRadius(t *testing.T) {
	svc := NewCityService(testGraph(t), 100, testLogger())

	got, _ := svc.Nearby(context.Background(), "CenterCity", nil)
	if len(got) != 1 {
		t.Errorf("configured default: got %d results, want 1", len(got))
	}

	radius := 300.0

	got, _ = svc.Nearby(context.Background(), "CenterCity", &radius)
	if len(got) != 3 || got[2].City != "C" {
		t.Errorf("explicit radius: got %+v", got)
	}
}

func TestCityService_NearbyNonStringDestination(t *testing.T) {
	svc := NewCityService(testGraph(t), 0, testLogger())

	for _, dest := range []any{nil, 42, true, []any{"CenterCity"}} {
		got, err := svc.Nearby(context.Background(), dest, nil)
		if err != nil {
			t.Errorf("Nearby(%v) err = %v", dest, err)
		}

		if got == nil || len(got) != 0 {
			t.Errorf("Nearby(%v) = %+v, want empty", dest, got)
		}
	}
}

func TestCityService_Neighbors(t *testing.T) {
	svc := NewCityService(testGraph(t), 0, testLogger())

	got, err := svc.Neighbors(context.Background(), "A")
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}

	if len(got) != 1 || got[0].To != "CenterCity" || got[0].Distance != 50 {
		t.Errorf("Neighbors(A) = %+v", got)
	}

	if _, err := svc.Neighbors(context.Background(), "Nowhere"); !errors.Is(err, cities.ErrUnknownCity) {
		t.Errorf("err = %v, want ErrUnknownCity", err)
	}
}

func TestCityService_NilGraph(t *testing.T) {
	svc := NewCityService(nil, 0, testLogger())

	if _, err := svc.Nearby(context.Background(), "A", nil); !errors.Is(err, cities.ErrNotAGraph) {
		t.Errorf("Nearby err = %v, want ErrNotAGraph", err)
	}

	if _, err := svc.ListCities(context.Background()); !errors.Is(err, cities.ErrNotAGraph) {
		t.Errorf("ListCities err = %v, want ErrNotAGraph", err)
	}
}

func TestCityService_Validate(t *testing.T) {
	svc := NewCityService(testGraph(t), 0, testLogger())

	v := svc.Validate(context.Background(), cities.RawDataset{
		Cities: []any{"A", "A"},
		Edges:  []any{},
	})

	if v.OK || v.Reason != cities.ReasonDuplicateCities {
		t.Errorf("Validate = %+v", v)
	}
}
