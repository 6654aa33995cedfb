package models_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bookingmx/bookingmx/internal/models"
)

func assertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func assertErrorContains(t *testing.T, err error, want string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error containing %q, got nil", want)
	}

	if !strings.Contains(err.Error(), want) {
		t.Errorf("expected error containing %q, got %q", want, err.Error())
	}
}

func TestReservationRequest_Validate(t *testing.T) {
	in := models.NewDate(2030, time.January, 10)
	out := models.NewDate(2030, time.January, 12)

	tests := []struct {
		name    string
		req     models.ReservationRequest
		wantErr string
	}{
		{name: "valid", req: models.ReservationRequest{GuestName: "Ana", HotelName: "Hotel Riu", CheckIn: in, CheckOut: out}},
		{name: "missing guest", req: models.ReservationRequest{HotelName: "Hotel Riu", CheckIn: in, CheckOut: out}, wantErr: "guestName is required"},
		{name: "blank guest", req: models.ReservationRequest{GuestName: "   ", HotelName: "Hotel Riu", CheckIn: in, CheckOut: out}, wantErr: "guestName is required"},
		{name: "missing hotel", req: models.ReservationRequest{GuestName: "Ana", CheckIn: in, CheckOut: out}, wantErr: "hotelName is required"},
		{name: "missing check-in", req: models.ReservationRequest{GuestName: "Ana", HotelName: "Hotel Riu", CheckOut: out}, wantErr: "dates are required"},
		{name: "missing check-out", req: models.ReservationRequest{GuestName: "Ana", HotelName: "Hotel Riu", CheckIn: in}, wantErr: "dates are required"},
		{name: "guest too long", req: models.ReservationRequest{GuestName: strings.Repeat("x", 201), HotelName: "H", CheckIn: in, CheckOut: out}, wantErr: "exceeds maximum length"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr != "" {
				assertErrorContains(t, err, tc.wantErr)
				return
			}
			assertNoError(t, err)
		})
	}
}

func TestReservationRequest_ValidateTrimsNames(t *testing.T) {
	req := models.ReservationRequest{
		GuestName: "  Ana  ",
		HotelName: " Hotel Riu ",
		CheckIn:   models.NewDate(2030, time.January, 10),
		CheckOut:  models.NewDate(2030, time.January, 12),
	}
	assertNoError(t, req.Validate())

	if req.GuestName != "Ana" || req.HotelName != "Hotel Riu" {
		t.Errorf("names not trimmed: %q / %q", req.GuestName, req.HotelName)
	}
}

func TestDate_JSON(t *testing.T) {
	var req models.ReservationRequest
	body := `{"guestName":"Ana","hotelName":"Riu","checkIn":"2030-03-01","checkOut":null}`
	assertNoError(t, json.Unmarshal([]byte(body), &req))

	if got := req.CheckIn.String(); got != "2030-03-01" {
		t.Errorf("CheckIn = %q, want 2030-03-01", got)
	}

	if !req.CheckOut.IsZero() {
		t.Errorf("CheckOut = %v, want zero", req.CheckOut)
	}

	data, err := json.Marshal(models.Reservation{ID: 1, CheckIn: req.CheckIn})
	assertNoError(t, err)

	if !strings.Contains(string(data), `"checkIn":"2030-03-01"`) || !strings.Contains(string(data), `"checkOut":null`) {
		t.Errorf("unexpected JSON: %s", data)
	}
}

func TestDate_InvalidJSON(t *testing.T) {
	var d models.Date
	assertErrorContains(t, json.Unmarshal([]byte(`"03/01/2030"`), &d), "invalid date")
	assertErrorContains(t, json.Unmarshal([]byte(`20300301`), &d), "date must be a string")
}

func TestDate_Ordering(t *testing.T) {
	a := models.NewDate(2030, time.May, 1)
	b := a.AddDays(1)

	if !b.After(a) || a.After(b) || a.After(a) {
		t.Error("After is not strict")
	}

	if got := models.DateOf(time.Date(2030, time.May, 1, 23, 59, 0, 0, time.UTC)); got != a {
		t.Errorf("DateOf = %v, want %v", got, a)
	}
}

func TestValidationError(t *testing.T) {
	err := models.NewValidationError(models.ErrCheckInNotFuture)

	if !models.IsValidation(err) {
		t.Error("expected IsValidation to be true")
	}

	if !errors.Is(err, models.ErrCheckInNotFuture) {
		t.Error("expected wrapped sentinel")
	}

	if err.Error() != "check-in must be in the future" {
		t.Errorf("unexpected message %q", err.Error())
	}

	if models.IsValidation(models.ErrReservationNotFound) {
		t.Error("not-found must not be a validation error")
	}
}
