package flight

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"flightapi/infras/otel"
	"flightapi/internal/domains/flight/model/dto"
	"flightapi/internal/domains/flight/service"
	"flightapi/shared/constant"
	"flightapi/shared/failure"
	"flightapi/shared/validator"
	"flightapi/transport/http/response"
)

type Handler struct {
	service service.Flight
	otel    otel.Otel
}

func New(service service.Flight, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/flights", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFlights)
		routerGroup.Post("/", handler.CreateFlight)
		routerGroup.Get("/export", handler.ExportFlights)
		routerGroup.Post("/import", handler.ImportFlights)
		routerGroup.Post("/import-from-file", handler.ImportFromFile)
		routerGroup.Get("/render", handler.RenderFlights)
		routerGroup.Get("/{id}", handler.GetFlightByID)
		routerGroup.Put("/{id}", handler.UpdateFlight)
		routerGroup.Delete("/{id}", handler.DeleteFlight)
		routerGroup.Post("/{id}/upload-eticket", handler.UploadEticket)
		routerGroup.Get("/{id}/eticket", handler.GetEticket)
	})
}

// CreateFlight stores a new flight reservation.
func (handler *Handler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFlight")
	defer scope.End()

	req := dto.CreateFlightRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	flight, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create flight")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight created successfully")

	response.WithJSON(w, http.StatusCreated, flight)
}

// GetFlights lists every flight, most recent flight date first.
func (handler *Handler) GetFlights(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlights")
	defer scope.End()

	flights, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get flights")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flights retrieved successfully")

	response.WithJSON(w, http.StatusOK, flights)
}

// GetFlightByID retrieves a single flight.
func (handler *Handler) GetFlightByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlightByID")
	defer scope.End()

	id, err := flightID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	flight, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get flight by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight retrieved successfully")

	response.WithJSON(w, http.StatusOK, flight)
}

// UpdateFlight applies a partial update to an existing flight.
func (handler *Handler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFlight")
	defer scope.End()

	id, err := flightID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateFlightRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update flight")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight updated successfully")

	response.WithMessage(w, http.StatusOK, "Flight updated successfully")
}

// DeleteFlight removes a flight.
func (handler *Handler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFlight")
	defer scope.End()

	id, err := flightID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete flight")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight deleted successfully")

	response.WithMessage(w, http.StatusOK, "Flight deleted successfully")
}

// ImportFlights replaces the whole flights table with the posted batch.
func (handler *Handler) ImportFlights(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ImportFlights")
	defer scope.End()

	req := dto.ImportFlightsRequest{}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode import payload")

		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			response.WithError(w, failure.MalformedImportPayload)
		} else {
			response.WithError(w, failure.BadRequestFromString("malformed JSON body"))
		}

		return
	}

	res, err := handler.service.Import(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to import flights")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flights imported successfully")

	response.WithRaw(w, http.StatusOK, res)
}

// ExportFlights serves the full dataset as a downloadable JSON envelope.
func (handler *Handler) ExportFlights(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportFlights")
	defer scope.End()

	res, filename, err := handler.service.Export(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export flights")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flights exported successfully")

	response.WithAttachment(w, http.StatusOK, res, filename)
}

// UploadEticket attaches a PDF e-ticket to a flight's reservation.
func (handler *Handler) UploadEticket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadEticket")
	defer scope.End()

	id, err := flightID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("missing uploaded file")

		response.WithError(w, failure.BadRequestFromString("file is required"))

		return
	}
	defer file.Close()

	res, err := handler.service.UploadEticket(ctx, id, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload eticket")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("E-ticket uploaded successfully")

	response.WithRaw(w, http.StatusOK, res)
}

// GetEticket redirects to the stored e-ticket object.
func (handler *Handler) GetEticket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEticket")
	defer scope.End()

	id, err := flightID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	url, err := handler.service.EticketURL(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve eticket")

		response.WithError(w, err)

		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}

// ImportFromFile extracts import-ready flight records from an uploaded ticket
// document without persisting anything.
func (handler *Handler) ImportFromFile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ImportFromFile")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("missing uploaded file")

		response.WithError(w, failure.BadRequestFromString("file is required"))

		return
	}
	defer file.Close()

	res, err := handler.service.ExtractFromFile(ctx, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to extract flights from file")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flights extracted successfully")

	response.WithRaw(w, http.StatusOK, res)
}

func flightID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.InvalidFlightID
	}

	return id, nil
}
