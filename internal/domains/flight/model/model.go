package model

import (
	"database/sql"
	"time"

	"flightapi/shared/model"
)

const (
	TableName  = "flights"
	EntityName = "flight"

	FieldID                = "id"
	FieldFlightDate        = "flight_date"
	FieldDepartureAirport  = "departure_airport"
	FieldArrivalAirport    = "arrival_airport"
	FieldReservationNumber = "reservation_number"
	FieldFlightNumber      = "flight_number"
	FieldEticketPdfPath    = "eticket_pdf_path"
	FieldSeatNumber        = "seat_number"
	FieldStatus            = "status"
	FieldDepartureTime     = "departure_time"
	FieldArrivalTime       = "arrival_time"
	FieldNotes             = "notes"
	FieldPaymentAmount     = "payment_amount"
	FieldCurrency          = "currency"
)

const (
	StatusReserved  = "Reserved"
	StatusBoarded   = "Boarded"
	StatusCancelled = "Cancelled"

	DefaultStatus   = StatusReserved
	DefaultCurrency = "JPY"
)

type Flight struct {
	ID                int64           `db:"id"`
	FlightDate        time.Time       `db:"flight_date"`
	DepartureAirport  string          `db:"departure_airport"`
	ArrivalAirport    string          `db:"arrival_airport"`
	ReservationNumber string          `db:"reservation_number"`
	FlightNumber      string          `db:"flight_number"`
	EticketPdfPath    sql.NullString  `db:"eticket_pdf_path"`
	SeatNumber        sql.NullString  `db:"seat_number"`
	Status            string          `db:"status"`
	DepartureTime     sql.NullString  `db:"departure_time"`
	ArrivalTime       sql.NullString  `db:"arrival_time"`
	Notes             sql.NullString  `db:"notes"`
	PaymentAmount     sql.NullFloat64 `db:"payment_amount"`
	Currency          sql.NullString  `db:"currency"`
	model.Metadata
}
