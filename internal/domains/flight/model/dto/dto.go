package dto

import (
	"database/sql"
	"time"

	"flightapi/internal/domains/flight/model"
	gDto "flightapi/shared/dto"
	"flightapi/shared/timezone"
)

// requiredFields is the fixed order in which batch records are checked;
// the first missing field is the one reported.
var requiredFields = []string{
	model.FieldFlightDate,
	model.FieldDepartureAirport,
	model.FieldArrivalAirport,
	model.FieldReservationNumber,
	model.FieldFlightNumber,
}

// FlightPayload is one record of a batch import (and of the extraction
// response). Optional fields are pointers so an absent JSON key can be told
// apart from an empty value.
type FlightPayload struct {
	FlightDate        *string  `json:"flight_date"`
	DepartureAirport  *string  `json:"departure_airport"`
	ArrivalAirport    *string  `json:"arrival_airport"`
	ReservationNumber *string  `json:"reservation_number"`
	FlightNumber      *string  `json:"flight_number"`
	EticketPdfPath    *string  `json:"eticket_pdf_path"`
	SeatNumber        *string  `json:"seat_number"`
	Status            *string  `json:"status"`
	DepartureTime     *string  `json:"departure_time"`
	ArrivalTime       *string  `json:"arrival_time"`
	Notes             *string  `json:"notes"`
	PaymentAmount     *float64 `json:"payment_amount"`
	Currency          *string  `json:"currency"`
}

// MissingRequiredField returns the name of the first required field that is
// absent or empty, or an empty string when the record is complete.
func (p *FlightPayload) MissingRequiredField() string {
	values := map[string]*string{
		model.FieldFlightDate:        p.FlightDate,
		model.FieldDepartureAirport:  p.DepartureAirport,
		model.FieldArrivalAirport:    p.ArrivalAirport,
		model.FieldReservationNumber: p.ReservationNumber,
		model.FieldFlightNumber:      p.FlightNumber,
	}

	for _, field := range requiredFields {
		if values[field] == nil || *values[field] == "" {
			return field
		}
	}

	return ""
}

// ToModel converts the payload into a storable flight, filling defaults for
// status and currency and stamping both metadata timestamps.
func (p *FlightPayload) ToModel() (model.Flight, error) {
	flightDate, err := time.Parse("2006-01-02", deref(p.FlightDate))
	if err != nil {
		return model.Flight{}, err
	}

	status := model.DefaultStatus
	if p.Status != nil && *p.Status != "" {
		status = *p.Status
	}

	currency := model.DefaultCurrency
	if p.Currency != nil && *p.Currency != "" {
		currency = *p.Currency
	}

	now := timezone.Now()

	flight := model.Flight{
		FlightDate:        flightDate,
		DepartureAirport:  deref(p.DepartureAirport),
		ArrivalAirport:    deref(p.ArrivalAirport),
		ReservationNumber: deref(p.ReservationNumber),
		FlightNumber:      deref(p.FlightNumber),
		EticketPdfPath:    nullString(p.EticketPdfPath),
		SeatNumber:        nullString(p.SeatNumber),
		Status:            status,
		DepartureTime:     nullString(p.DepartureTime),
		ArrivalTime:       nullString(p.ArrivalTime),
		Notes:             nullString(p.Notes),
		PaymentAmount:     nullFloat(p.PaymentAmount),
		Currency:          sql.NullString{String: currency, Valid: true},
	}
	flight.CreatedAt = now
	flight.UpdatedAt = now

	return flight, nil
}

type CreateFlightRequest struct {
	FlightDate        string   `json:"flight_date"        validate:"required,datetime=2006-01-02"`
	DepartureAirport  string   `json:"departure_airport"  validate:"required,len=3"`
	ArrivalAirport    string   `json:"arrival_airport"    validate:"required,len=3"`
	ReservationNumber string   `json:"reservation_number" validate:"required,max=50"`
	FlightNumber      string   `json:"flight_number"      validate:"required,max=20"`
	EticketPdfPath    string   `json:"eticket_pdf_path"   validate:"omitempty,max=255"`
	SeatNumber        string   `json:"seat_number"        validate:"omitempty,max=10"`
	Status            string   `json:"status"             validate:"omitempty,oneof=Reserved Boarded Cancelled"`
	DepartureTime     string   `json:"departure_time"     validate:"omitempty,datetime=15:04"`
	ArrivalTime       string   `json:"arrival_time"       validate:"omitempty,datetime=15:04"`
	Notes             string   `json:"notes"              validate:"omitempty"`
	PaymentAmount     *float64 `json:"payment_amount"     validate:"omitempty,gte=0"`
	Currency          string   `json:"currency"           validate:"omitempty,len=3"`
}

func (c *CreateFlightRequest) ToModel() (model.Flight, error) {
	payload := FlightPayload{
		FlightDate:        &c.FlightDate,
		DepartureAirport:  &c.DepartureAirport,
		ArrivalAirport:    &c.ArrivalAirport,
		ReservationNumber: &c.ReservationNumber,
		FlightNumber:      &c.FlightNumber,
		EticketPdfPath:    optional(c.EticketPdfPath),
		SeatNumber:        optional(c.SeatNumber),
		Status:            optional(c.Status),
		DepartureTime:     optional(c.DepartureTime),
		ArrivalTime:       optional(c.ArrivalTime),
		Notes:             optional(c.Notes),
		PaymentAmount:     c.PaymentAmount,
		Currency:          optional(c.Currency),
	}

	return payload.ToModel()
}

type UpdateFlightRequest struct {
	FlightDate        *string  `db:"flight_date"        json:"flight_date"        validate:"omitempty,datetime=2006-01-02"`
	DepartureAirport  *string  `db:"departure_airport"  json:"departure_airport"  validate:"omitempty,len=3"`
	ArrivalAirport    *string  `db:"arrival_airport"    json:"arrival_airport"    validate:"omitempty,len=3"`
	ReservationNumber *string  `db:"reservation_number" json:"reservation_number" validate:"omitempty,max=50"`
	FlightNumber      *string  `db:"flight_number"      json:"flight_number"      validate:"omitempty,max=20"`
	EticketPdfPath    *string  `db:"eticket_pdf_path"   json:"eticket_pdf_path"   validate:"omitempty,max=255"`
	SeatNumber        *string  `db:"seat_number"        json:"seat_number"        validate:"omitempty,max=10"`
	Status            *string  `db:"status"             json:"status"             validate:"omitempty,oneof=Reserved Boarded Cancelled"`
	DepartureTime     *string  `db:"departure_time"     json:"departure_time"     validate:"omitempty,datetime=15:04"`
	ArrivalTime       *string  `db:"arrival_time"       json:"arrival_time"       validate:"omitempty,datetime=15:04"`
	Notes             *string  `db:"notes"              json:"notes"              validate:"omitempty"`
	PaymentAmount     *float64 `db:"payment_amount"     json:"payment_amount"     validate:"omitempty,gte=0"`
	Currency          *string  `db:"currency"           json:"currency"           validate:"omitempty,len=3"`
}

type FlightResponse struct {
	ID                int64    `json:"id"`
	FlightDate        string   `json:"flight_date"`
	DepartureAirport  string   `json:"departure_airport"`
	ArrivalAirport    string   `json:"arrival_airport"`
	ReservationNumber string   `json:"reservation_number"`
	FlightNumber      string   `json:"flight_number"`
	EticketPdfPath    *string  `json:"eticket_pdf_path"`
	SeatNumber        *string  `json:"seat_number"`
	Status            string   `json:"status"`
	DepartureTime     *string  `json:"departure_time"`
	ArrivalTime       *string  `json:"arrival_time"`
	Notes             *string  `json:"notes"`
	PaymentAmount     *float64 `json:"payment_amount"`
	Currency          *string  `json:"currency"`
	gDto.Metadata
}

func (r *FlightResponse) FromModel(model model.Flight) {
	r.ID = model.ID
	r.FlightDate = model.FlightDate.Format("2006-01-02")
	r.DepartureAirport = model.DepartureAirport
	r.ArrivalAirport = model.ArrivalAirport
	r.ReservationNumber = model.ReservationNumber
	r.FlightNumber = model.FlightNumber
	r.EticketPdfPath = fromNullString(model.EticketPdfPath)
	r.SeatNumber = fromNullString(model.SeatNumber)
	r.Status = model.Status
	r.DepartureTime = fromNullString(model.DepartureTime)
	r.ArrivalTime = fromNullString(model.ArrivalTime)
	r.Notes = fromNullString(model.Notes)
	r.PaymentAmount = fromNullFloat(model.PaymentAmount)
	r.Currency = fromNullString(model.Currency)
	r.Metadata.FromModel(model.Metadata)
}

type GetFlightsResponse struct {
	Flights   []FlightResponse `json:"flights"`
	TotalData int              `json:"total_data"`
}

func (r *GetFlightsResponse) FromModels(models []model.Flight) {
	r.TotalData = len(models)

	r.Flights = make([]FlightResponse, len(models))
	for i, mod := range models {
		r.Flights[i].FromModel(mod)
	}
}

type ImportFlightsRequest struct {
	Version    *string         `json:"version"`
	ExportDate *string         `json:"exportDate"`
	Flights    []FlightPayload `json:"flights"`
}

type ImportFlightsResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Deleted  int64  `json:"deleted"`
	Imported int64  `json:"imported"`
}

type ExportFlightsResponse struct {
	Version    string           `json:"version"`
	ExportDate string           `json:"exportDate"`
	Flights    []FlightResponse `json:"flights"`
}

type ExtractFlightsResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Flights []FlightPayload `json:"flights"`
}

type UploadEticketResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	FilePath          string `json:"file_path"`
	UpdatedFlights    int    `json:"updated_flights"`
	ReservationNumber string `json:"reservation_number"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: *f, Valid: true}
}

func fromNullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}

	return &s.String
}

func fromNullFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}

	return &f.Float64
}
