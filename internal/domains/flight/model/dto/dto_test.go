package dto_test

import (
	"testing"

	"flightapi/internal/domains/flight/model"
	"flightapi/internal/domains/flight/model/dto"
)

func strPtr(s string) *string {
	return &s
}

func completePayload() dto.FlightPayload {
	return dto.FlightPayload{
		FlightDate:        strPtr("2024-05-01"),
		DepartureAirport:  strPtr("NRT"),
		ArrivalAirport:    strPtr("LAX"),
		ReservationNumber: strPtr("ABC123"),
		FlightNumber:      strPtr("JL62"),
	}
}

func TestFlightPayload_MissingRequiredField(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *dto.FlightPayload)
		missing string
	}{
		{
			name:    "complete record",
			mutate:  func(p *dto.FlightPayload) {},
			missing: "",
		},
		{
			name:    "absent flight_date",
			mutate:  func(p *dto.FlightPayload) { p.FlightDate = nil },
			missing: "flight_date",
		},
		{
			name:    "empty flight_date",
			mutate:  func(p *dto.FlightPayload) { p.FlightDate = strPtr("") },
			missing: "flight_date",
		},
		{
			name:    "absent departure_airport",
			mutate:  func(p *dto.FlightPayload) { p.DepartureAirport = nil },
			missing: "departure_airport",
		},
		{
			name:    "absent arrival_airport",
			mutate:  func(p *dto.FlightPayload) { p.ArrivalAirport = nil },
			missing: "arrival_airport",
		},
		{
			name:    "absent reservation_number",
			mutate:  func(p *dto.FlightPayload) { p.ReservationNumber = nil },
			missing: "reservation_number",
		},
		{
			name:    "absent flight_number",
			mutate:  func(p *dto.FlightPayload) { p.FlightNumber = nil },
			missing: "flight_number",
		},
		{
			name: "flight_date reported before later missing fields",
			mutate: func(p *dto.FlightPayload) {
				p.FlightDate = nil
				p.ReservationNumber = nil
				p.FlightNumber = nil
			},
			missing: "flight_date",
		},
		{
			name: "departure_airport reported before reservation_number",
			mutate: func(p *dto.FlightPayload) {
				p.DepartureAirport = strPtr("")
				p.ReservationNumber = nil
			},
			missing: "departure_airport",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := completePayload()
			tt.mutate(&payload)

			if got := payload.MissingRequiredField(); got != tt.missing {
				t.Errorf("expected missing field %q, got %q", tt.missing, got)
			}
		})
	}
}

func TestFlightPayload_ToModel_Defaults(t *testing.T) {
	payload := completePayload()

	flight, err := payload.ToModel()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if flight.Status != model.StatusReserved {
		t.Errorf("expected default status %q, got %q", model.StatusReserved, flight.Status)
	}

	if !flight.Currency.Valid || flight.Currency.String != model.DefaultCurrency {
		t.Errorf("expected default currency %q, got %v", model.DefaultCurrency, flight.Currency)
	}

	if flight.FlightDate.Format("2006-01-02") != "2024-05-01" {
		t.Errorf("unexpected flight date: %v", flight.FlightDate)
	}

	if flight.CreatedAt.IsZero() || flight.UpdatedAt.IsZero() {
		t.Error("expected metadata timestamps to be stamped")
	}
}

func TestFlightPayload_ToModel_ExplicitValues(t *testing.T) {
	amount := 54321.5

	payload := completePayload()
	payload.Status = strPtr(model.StatusBoarded)
	payload.Currency = strPtr("USD")
	payload.SeatNumber = strPtr("12A")
	payload.DepartureTime = strPtr("10:30")
	payload.PaymentAmount = &amount

	flight, err := payload.ToModel()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if flight.Status != model.StatusBoarded {
		t.Errorf("expected status %q, got %q", model.StatusBoarded, flight.Status)
	}

	if flight.Currency.String != "USD" {
		t.Errorf("expected currency USD, got %q", flight.Currency.String)
	}

	if !flight.SeatNumber.Valid || flight.SeatNumber.String != "12A" {
		t.Errorf("unexpected seat number: %v", flight.SeatNumber)
	}

	if !flight.PaymentAmount.Valid || flight.PaymentAmount.Float64 != amount {
		t.Errorf("unexpected payment amount: %v", flight.PaymentAmount)
	}
}

func TestFlightPayload_ToModel_InvalidDate(t *testing.T) {
	payload := completePayload()
	payload.FlightDate = strPtr("01-05-2024")

	if _, err := payload.ToModel(); err == nil {
		t.Error("expected error for invalid flight_date format")
	}
}

func TestFlightResponse_FromModel(t *testing.T) {
	payload := completePayload()
	payload.Notes = strPtr("window seat requested")

	flight, err := payload.ToModel()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flight.ID = 42

	res := dto.FlightResponse{}
	res.FromModel(flight)

	if res.ID != 42 {
		t.Errorf("expected ID 42, got %d", res.ID)
	}

	if res.FlightDate != "2024-05-01" {
		t.Errorf("expected flight date 2024-05-01, got %q", res.FlightDate)
	}

	if res.Notes == nil || *res.Notes != "window seat requested" {
		t.Errorf("unexpected notes: %v", res.Notes)
	}

	if res.SeatNumber != nil {
		t.Errorf("expected nil seat number, got %v", *res.SeatNumber)
	}

	if res.CreatedAt == "" || res.UpdatedAt == "" {
		t.Error("expected metadata timestamps to be rendered")
	}
}
