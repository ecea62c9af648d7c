package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog/log"

	"flightapi/internal/domains/flight/model"
	"flightapi/internal/domains/flight/model/dto"
	"flightapi/shared"
	"flightapi/shared/constant"
	gDto "flightapi/shared/dto"
	"flightapi/shared/failure"
	"flightapi/shared/timezone"
)

const eticketDirectory = "etickets"

// UploadEticket stores a PDF e-ticket for the flight's reservation and points
// every flight sharing that reservation number at the new object. The
// previous object, if any, is deleted best effort.
func (s *serviceImpl) UploadEticket(ctx context.Context, id int64, file multipart.File, fileHeader *multipart.FileHeader) (res dto.UploadEticketResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadEticket")
	defer scope.End()
	defer scope.TraceIfError(err)

	if fileHeader.Header.Get(constant.RequestHeaderContentType) != constant.ContentTypePDF {
		return res, failure.BadRequestFromString("only PDF files are allowed") // nolint:wrapcheck
	}

	flight, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get flight")

		return res, fmt.Errorf("failed to get flight: %w", err)
	}

	if flight.ID == 0 {
		return res, failure.NotFound("flight not found") // nolint:wrapcheck
	}

	previousURL := flight.EticketPdfPath.String

	objectName := fmt.Sprintf("eticket_%s_%s.pdf", flight.ReservationNumber, timezone.Now().UTC().Format(constant.ExportStamp))

	url, err := s.s3.UploadFile(ctx, constant.Empty, eticketDirectory, file, fileHeader, objectName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload eticket")

		return res, fmt.Errorf("failed to upload eticket: %w", err)
	}

	reservationFilter := filterByReservation(flight.ReservationNumber)

	updated, err := s.repo.Count(ctx, reservationFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count flights for reservation")

		return res, fmt.Errorf("failed to count flights for reservation: %w", err)
	}

	updatedFields := map[string]any{
		model.FieldEticketPdfPath: url,
		constant.FieldUpdatedAt:   timezone.Now(),
	}

	if err = s.repo.Update(ctx, updatedFields, reservationFilter); err != nil {
		log.Error().Err(err).Msg("failed to update eticket path")

		return res, fmt.Errorf("failed to update eticket path: %w", err)
	}

	if flight.EticketPdfPath.Valid && previousURL != url {
		if oldObject := s.s3.GetObjectNameFromURL(constant.Empty, previousURL); oldObject != "" {
			if deleteErr := s.s3.DeleteFile(ctx, constant.Empty, constant.Empty, oldObject); deleteErr != nil {
				log.Warn().Err(deleteErr).Str("object", oldObject).Msg("failed to delete previous eticket")
			}
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePrefixFlight)
	}()

	return dto.UploadEticketResponse{
		Success:           true,
		Message:           fmt.Sprintf("E-ticket uploaded for reservation %s", flight.ReservationNumber),
		FilePath:          url,
		UpdatedFlights:    updated,
		ReservationNumber: flight.ReservationNumber,
	}, nil
}

// EticketURL resolves the stored e-ticket location for a flight.
func (s *serviceImpl) EticketURL(ctx context.Context, id int64) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EticketURL")
	defer scope.End()
	defer scope.TraceIfError(err)

	flight, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get flight")

		return constant.Empty, fmt.Errorf("failed to get flight: %w", err)
	}

	if flight.ID == 0 {
		return constant.Empty, failure.NotFound("flight not found") // nolint:wrapcheck
	}

	if !flight.EticketPdfPath.Valid || flight.EticketPdfPath.String == "" {
		return constant.Empty, failure.NotFound("eticket not found") // nolint:wrapcheck
	}

	return flight.EticketPdfPath.String, nil
}

func filterByReservation(reservationNumber string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldReservationNumber,
				Value:    reservationNumber,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
