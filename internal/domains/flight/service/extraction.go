package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog/log"

	"flightapi/infras/anthropic"
	"flightapi/internal/domains/flight/model/dto"
	"flightapi/shared/constant"
	"flightapi/shared/failure"
)

const extractionPrompt = `Extract all flight reservation details from this document. ` +
	`Respond with only a JSON object of the form {"flights": [...]} where each ` +
	`flight has the keys flight_date (YYYY-MM-DD), departure_airport (3-letter code), ` +
	`arrival_airport (3-letter code), reservation_number, flight_number, seat_number, ` +
	`departure_time (HH:MM, 24h), arrival_time (HH:MM, 24h), payment_amount (number) ` +
	`and currency (3-letter code). Omit keys you cannot determine. ` +
	`Do not include any text outside the JSON object.`

// blockTypeByContentType maps accepted upload content types to the Messages
// API content block that carries them.
var blockTypeByContentType = map[string]string{
	constant.ContentTypePDF: anthropic.BlockTypeDocument,
	"image/png":             anthropic.BlockTypeImage,
	"image/jpeg":            anthropic.BlockTypeImage,
	"image/jpg":             anthropic.BlockTypeImage,
	"image/webp":            anthropic.BlockTypeImage,
	"image/gif":             anthropic.BlockTypeImage,
}

// ExtractFromFile asks the model to read a ticket document and returns
// import-ready records. Nothing is persisted; the caller reviews the records
// and imports them separately.
func (s *serviceImpl) ExtractFromFile(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (res dto.ExtractFlightsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExtractFromFile")
	defer scope.End()
	defer scope.TraceIfError(err)

	contentType := fileHeader.Header.Get(constant.RequestHeaderContentType)

	blockType, ok := blockTypeByContentType[contentType]
	if !ok {
		return res, failure.BadRequestFromString("unsupported file type, expected pdf or image") // nolint:wrapcheck
	}

	buf := bytes.NewBuffer(nil)
	if _, err = buf.ReadFrom(file); err != nil {
		log.Error().Err(err).Msg("failed to read uploaded file")

		return res, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())

	text, err := s.ai.ExtractText(ctx, blockType, contentType, encoded, extractionPrompt)
	if err != nil {
		log.Error().Err(err).Msg("failed to extract flights from file")

		return res, fmt.Errorf("failed to extract flights from file: %w", err)
	}

	flights, err := parseExtractedFlights(text)
	if err != nil {
		log.Error().Err(err).Msg("model returned unparseable flight data")

		return res, failure.BadRequestFromString("could not parse flight data from the document") // nolint:wrapcheck
	}

	return dto.ExtractFlightsResponse{
		Success: true,
		Message: fmt.Sprintf("Extracted %d flights", len(flights)),
		Flights: flights,
	}, nil
}

// parseExtractedFlights tolerates markdown fences around the JSON and both
// the {"flights": [...]} envelope and a bare array.
func parseExtractedFlights(text string) ([]dto.FlightPayload, error) {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	var envelope struct {
		Flights []dto.FlightPayload `json:"flights"`
	}

	if err := json.Unmarshal([]byte(text), &envelope); err == nil && envelope.Flights != nil {
		return envelope.Flights, nil
	}

	var flights []dto.FlightPayload
	if err := json.Unmarshal([]byte(text), &flights); err != nil {
		return nil, fmt.Errorf("failed to parse extracted flights: %w", err)
	}

	return flights, nil
}
