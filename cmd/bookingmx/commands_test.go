package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bookingmx/bookingmx/client"
)

// executeArgs runs a fresh root command with args and returns any error.
// It suppresses cobra's usage/error output so test output stays clean.
func executeArgs(t *testing.T, args ...string) error {
	t.Helper()
	resetFlags(t)
	isolateHome(t)
	root := newRootCmd()
	root.SetOut(&strings.Builder{})
	root.SetErr(&strings.Builder{})
	root.SetArgs(args)
	_, err := root.ExecuteC()
	return err
}

func jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func newFakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	reservations := []client.Reservation{
		{ID: 1, GuestName: "Ana", HotelName: "Hotel Riu", CheckIn: "2030-07-01", CheckOut: "2030-07-04", Status: client.StatusActive},
		{ID: 2, GuestName: "Luis", HotelName: "Fiesta Inn", CheckIn: "2030-08-01", CheckOut: "2030-08-03", Status: client.StatusCanceled},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", func(w http.ResponseWriter, _ *http.Request) {
		jsonResponse(w, 200, client.HealthResponse{Status: "ok", Version: "test", Store: "memory", Cities: 14})
	})
	mux.HandleFunc("GET /api/v1/ready", func(w http.ResponseWriter, _ *http.Request) {
		jsonResponse(w, 200, client.ReadyResponse{Status: "ready"})
	})
	mux.HandleFunc("GET /api/v1/reservations", func(w http.ResponseWriter, _ *http.Request) {
		jsonResponse(w, 200, reservations)
	})
	mux.HandleFunc("GET /api/v1/reservations/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "1" {
			jsonResponse(w, 404, map[string]string{"code": "not_found", "message": "reservation not found"})
			return
		}
		jsonResponse(w, 200, reservations[0])
	})
	mux.HandleFunc("POST /api/v1/reservations", func(w http.ResponseWriter, r *http.Request) {
		var req client.ReservationRequest
		json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
		jsonResponse(w, 201, client.Reservation{ID: 3, GuestName: req.GuestName, HotelName: req.HotelName,
			CheckIn: req.CheckIn, CheckOut: req.CheckOut, Status: client.StatusActive})
	})
	mux.HandleFunc("POST /api/v1/reservations/{id}/cancel", func(w http.ResponseWriter, _ *http.Request) {
		canceled := reservations[0]
		canceled.Status = client.StatusCanceled
		jsonResponse(w, 200, canceled)
	})
	mux.HandleFunc("DELETE /api/v1/reservations/{id}/purge", func(w http.ResponseWriter, _ *http.Request) {
		jsonResponse(w, 200, map[string]bool{"deleted": true})
	})
	mux.HandleFunc("GET /api/v1/cities/{name}/nearby", func(w http.ResponseWriter, _ *http.Request) {
		jsonResponse(w, 200, []client.NearbyCity{{City: "Tlaquepaque", Distance: 8}, {City: "Zapopan", Distance: 10}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"get needs an id", []string{"reservation", "get"}},
		{"get rejects extra args", []string{"reservation", "get", "1", "2"}},
		{"get rejects non-numeric id", []string{"reservation", "get", "abc"}},
		{"cancel rejects zero id", []string{"reservation", "cancel", "0"}},
		{"create requires flags", []string{"reservation", "create", "--guest", "Ana"}},
		{"list takes no args", []string{"reservation", "list", "x"}},
		{"nearby needs a destination", []string{"city", "nearby"}},
		{"validate needs a file", []string{"city", "validate"}},
		{"unknown format", []string{"--format", "yaml", "city", "list"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := executeArgs(t, tc.args...); err == nil {
				t.Errorf("expected error for %v", tc.args)
			}
		})
	}
}

func TestReservationListTable(t *testing.T) {
	srv := newFakeServer(t)

	var err error
	got := captureStdout(t, func() {
		err = executeArgs(t, "--url", srv.URL, "--format", "table", "reservation", "list", "--status", "ACTIVE")
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !strings.HasPrefix(got, "ID  GUEST  HOTEL") {
		t.Errorf("missing header:\n%s", got)
	}
	if !strings.Contains(got, "Hotel Riu") || strings.Contains(got, "Fiesta Inn") {
		t.Errorf("status filter not applied:\n%s", got)
	}
}

func TestReservationCreateJSON(t *testing.T) {
	srv := newFakeServer(t)

	var err error
	got := captureStdout(t, func() {
		err = executeArgs(t, "--url", srv.URL, "reservation", "create",
			"--guest", "Marta", "--hotel", "Hotel Xcaret", "--check-in", "2030-09-01", "--check-out", "2030-09-05")
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var r client.Reservation
	if err := json.Unmarshal([]byte(got), &r); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, got)
	}
	if r.ID != 3 || r.GuestName != "Marta" || r.CheckOut != "2030-09-05" {
		t.Errorf("got %+v", r)
	}
}

func TestReservationCancelQuiet(t *testing.T) {
	srv := newFakeServer(t)

	var err error
	got := captureStdout(t, func() {
		err = executeArgs(t, "--url", srv.URL, "--format", "quiet", "reservation", "cancel", "1")
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got != "1\n" {
		t.Errorf("got %q, want %q", got, "1\n")
	}
}

func TestReservationGetNotFound(t *testing.T) {
	srv := newFakeServer(t)

	var err error
	captureStdout(t, func() {
		err = executeArgs(t, "--url", srv.URL, "reservation", "get", "9")
	})
	if !client.IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestReservationDelete(t *testing.T) {
	srv := newFakeServer(t)

	var err error
	got := captureStdout(t, func() {
		err = executeArgs(t, "--url", srv.URL, "reservation", "delete", "1")
	})
	if err != nil || got != "deleted\n" {
		t.Errorf("got %q, %v", got, err)
	}
}

func TestCityNearbyQuiet(t *testing.T) {
	srv := newFakeServer(t)

	var err error
	got := captureStdout(t, func() {
		err = executeArgs(t, "--url", srv.URL, "--format", "quiet", "city", "nearby", "Guadalajara", "--max-km", "20")
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got != "Tlaquepaque\nZapopan\n" {
		t.Errorf("got %q", got)
	}
}

func TestCityValidateLocal(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(good, []byte(`{"cities":["A","B"],"edges":[{"from":"A","to":"B","distance":1}]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte(`{"cities":["A"],"edges":[{"from":"A","to":"Z","distance":1}]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	var err error
	got := captureStdout(t, func() {
		err = executeArgs(t, "--format", "quiet", "city", "validate", good)
	})
	if err != nil || got != "true\n" {
		t.Errorf("good dataset: got %q, %v", got, err)
	}

	captureStdout(t, func() {
		err = executeArgs(t, "city", "validate", bad)
	})
	if err == nil || !strings.Contains(err.Error(), "edge references unknown city") {
		t.Errorf("bad dataset: got %v", err)
	}
}

func TestDoctor(t *testing.T) {
	srv := newFakeServer(t)

	var err error
	got := captureStdout(t, func() {
		err = executeArgs(t, "--url", srv.URL, "doctor")
	})
	if err != nil {
		t.Fatalf("doctor: %v\n%s", err, got)
	}
	if !strings.Contains(got, "Server ready: ready") {
		t.Errorf("missing readiness line:\n%s", got)
	}
}

func TestDoctor_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	var err error
	captureStdout(t, func() {
		err = executeArgs(t, "--url", url, "doctor")
	})
	if err == nil {
		t.Error("expected doctor to fail")
	}
}

func TestInitNonInteractive(t *testing.T) {
	srv := newFakeServer(t)

	var err error
	captureStdout(t, func() {
		err = executeArgs(t, "init", "--server", srv.URL)
	})
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	_, cfg, err := loadConfigFile()
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.profileURL() != srv.URL {
		t.Errorf("saved URL = %q, want %q", cfg.profileURL(), srv.URL)
	}
}
