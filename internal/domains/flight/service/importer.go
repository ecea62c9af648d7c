package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"flightapi/internal/domains/flight/model"
	"flightapi/internal/domains/flight/model/dto"
	"flightapi/shared"
	"flightapi/shared/constant"
	gDto "flightapi/shared/dto"
	"flightapi/shared/failure"
	"flightapi/shared/timezone"
)

const exportVersion = "1.0"

// validateRecords checks every record of a batch before anything touches the
// store. The first incomplete record fails the whole batch, reported with its
// 1-based position.
func validateRecords(records []dto.FlightPayload) error {
	for index, record := range records {
		if field := record.MissingRequiredField(); field != "" {
			return failure.BadRequestFromString(fmt.Sprintf("record %d: %s is required", index+1, field)) // nolint:wrapcheck
		}
	}

	return nil
}

// Import replaces the entire flights table with the given batch. The batch is
// validated up front; a validation failure leaves the store untouched.
// Imports are serialized with an in-process mutex, so overlapping requests on
// a single instance cannot interleave their transactions.
func (s *serviceImpl) Import(ctx context.Context, req dto.ImportFlightsRequest) (res dto.ImportFlightsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Import")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(req.Flights) == 0 {
		return res, failure.MalformedImportPayload
	}

	if err = validateRecords(req.Flights); err != nil {
		log.Error().Err(err).Msg("import batch failed validation")

		return res, err
	}

	models := make([]model.Flight, len(req.Flights))

	for index, record := range req.Flights {
		models[index], err = record.ToModel()
		if err != nil {
			log.Error().Err(err).Int("record", index+1).Msg("import record has invalid flight_date")

			return res, failure.BadRequestFromString(fmt.Sprintf("record %d: invalid flight_date format", index+1)) // nolint:wrapcheck
		}
	}

	s.importMu.Lock()
	defer s.importMu.Unlock()

	deleted, imported, err := s.repo.ReplaceAll(ctx, models)
	if err != nil {
		log.Error().Err(err).Msg("failed to replace flights")

		return res, fmt.Errorf("failed to replace flights: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePrefixFlight)
	}()

	return dto.ImportFlightsResponse{
		Success:  true,
		Message:  fmt.Sprintf("Imported %d flights", imported),
		Deleted:  deleted,
		Imported: imported,
	}, nil
}

// Export returns every flight wrapped in the import-compatible envelope,
// along with the attachment filename stamped from the current UTC time.
func (s *serviceImpl) Export(ctx context.Context) (res dto.ExportFlightsResponse, filename string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, defaultQueryParams(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get flights for export")

		return res, "", fmt.Errorf("failed to get flights for export: %w", err)
	}

	now := timezone.Now().UTC()

	res.Version = exportVersion
	res.ExportDate = now.Format(constant.TimestampUTC)

	res.Flights = make([]dto.FlightResponse, len(models))
	for index, mod := range models {
		res.Flights[index].FromModel(mod)
	}

	filename = fmt.Sprintf("flights_%s.json", now.Format(constant.ExportStamp))

	return res, filename, nil
}
