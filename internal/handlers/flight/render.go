package flight

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"flightapi/internal/domains/flight/model/dto"
	"flightapi/shared/constant"
	"flightapi/transport/http/response"
)

// Flight data is user supplied; every interpolated field must be escaped.
var flightsTemplate = template.Must(template.New("flights").Parse(`<div class="flights-list">
{{- range . }}
  <div class="flight-item">
    <div class="flight-header">
      <span class="flight-number">{{ .FlightNumber }}</span>
      <span class="flight-status">{{ .Status }}</span>
    </div>
    <div class="flight-route">{{ .DepartureAirport }} to {{ .ArrivalAirport }}</div>
    <div class="flight-date">{{ .FlightDate }}</div>
    <div class="flight-times">{{ .DepartureTime }} - {{ .ArrivalTime }}</div>
    <div class="flight-reservation">Reservation: {{ .ReservationNumber }}</div>
    <div class="flight-seat">Seat: {{ .SeatNumber }}</div>
    <div class="flight-payment">{{ .PaymentAmount }} {{ .Currency }}</div>
    <div class="flight-notes">{{ .Notes }}</div>
  </div>
{{- end }}
</div>
`))

type renderItem struct {
	FlightNumber      string
	Status            string
	DepartureAirport  string
	ArrivalAirport    string
	FlightDate        string
	DepartureTime     string
	ArrivalTime       string
	ReservationNumber string
	SeatNumber        string
	PaymentAmount     string
	Currency          string
	Notes             string
}

// RenderFlights returns the full flight list as an HTML fragment, in the same
// order as the export.
func (handler *Handler) RenderFlights(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RenderFlights")
	defer scope.End()

	flights, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get flights for rendering")

		response.WithError(w, err)

		return
	}

	body, err := renderFlights(flights.Flights)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render flights")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flights rendered successfully")

	response.WithHTML(w, http.StatusOK, body)
}

func renderFlights(flights []dto.FlightResponse) ([]byte, error) {
	items := make([]renderItem, len(flights))
	for index, flight := range flights {
		items[index] = renderItem{
			FlightNumber:      flight.FlightNumber,
			Status:            flight.Status,
			DepartureAirport:  flight.DepartureAirport,
			ArrivalAirport:    flight.ArrivalAirport,
			FlightDate:        flight.FlightDate,
			DepartureTime:     coalesce(flight.DepartureTime),
			ArrivalTime:       coalesce(flight.ArrivalTime),
			ReservationNumber: flight.ReservationNumber,
			SeatNumber:        coalesce(flight.SeatNumber),
			PaymentAmount:     coalesceFloat(flight.PaymentAmount),
			Currency:          coalesce(flight.Currency),
			Notes:             coalesce(flight.Notes),
		}
	}

	buf := bytes.Buffer{}
	if err := flightsTemplate.Execute(&buf, items); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return buf.Bytes(), nil
}

func coalesce(value *string) string {
	if value == nil || *value == "" {
		return "-"
	}

	return *value
}

func coalesceFloat(value *float64) string {
	if value == nil {
		return "-"
	}

	return strconv.FormatFloat(*value, 'f', 2, 64)
}
