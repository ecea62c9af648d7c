package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"flightapi/internal/domains/flight/model"
	"flightapi/internal/domains/flight/model/dto"
	"flightapi/shared/failure"
)

func strPtr(s string) *string {
	return &s
}

func importRecord() dto.FlightPayload {
	return dto.FlightPayload{
		FlightDate:        strPtr("2024-05-01"),
		DepartureAirport:  strPtr("NRT"),
		ArrivalAirport:    strPtr("LAX"),
		ReservationNumber: strPtr("ABC123"),
		FlightNumber:      strPtr("JL62"),
	}
}

func TestFlightService_Import_EmptyPayload(t *testing.T) {
	tests := []struct {
		name    string
		flights []dto.FlightPayload
	}{
		{name: "nil flights", flights: nil},
		{name: "empty flights", flights: []dto.FlightPayload{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)

			_, err := f.svc.Import(context.Background(), dto.ImportFlightsRequest{Flights: tt.flights})

			assert.Equal(t, failure.MalformedImportPayload, err)
		})
	}
}

func TestFlightService_Import_ValidationFailure(t *testing.T) {
	incomplete := importRecord()
	incomplete.ArrivalAirport = nil
	incomplete.FlightNumber = nil

	f := newServiceFixture(t)

	_, err := f.svc.Import(context.Background(), dto.ImportFlightsRequest{
		Flights: []dto.FlightPayload{importRecord(), incomplete, importRecord()},
	})

	require.Error(t, err)
	assert.Equal(t, "record 2: arrival_airport is required", err.Error())
}

func TestFlightService_Import_Success(t *testing.T) {
	f := newServiceFixture(t)

	noCurrency := importRecord()
	noCurrency.Status = strPtr(model.StatusBoarded)

	f.repo.EXPECT().
		ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, models []model.Flight) (int64, int64, error) {
			require.Len(t, models, 2)
			assert.Equal(t, model.StatusReserved, models[0].Status)
			assert.Equal(t, model.StatusBoarded, models[1].Status)
			assert.Equal(t, model.DefaultCurrency, models[0].Currency.String)

			return 5, int64(len(models)), nil
		})

	res, err := f.svc.Import(context.Background(), dto.ImportFlightsRequest{
		Flights: []dto.FlightPayload{importRecord(), noCurrency},
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, int64(5), res.Deleted)
	assert.Equal(t, int64(2), res.Imported)
}

func TestFlightService_Import_StoreFailure(t *testing.T) {
	f := newServiceFixture(t)

	f.repo.EXPECT().
		ReplaceAll(gomock.Any(), gomock.Any()).
		Return(int64(0), int64(0), errors.New("transaction aborted"))

	_, err := f.svc.Import(context.Background(), dto.ImportFlightsRequest{
		Flights: []dto.FlightPayload{importRecord()},
	})

	require.Error(t, err)
	assert.NotEqual(t, 400, failure.GetCode(err))
}

func TestFlightService_Import_InvalidDateFormat(t *testing.T) {
	bad := importRecord()
	bad.FlightDate = strPtr("May 1st 2024")

	f := newServiceFixture(t)

	_, err := f.svc.Import(context.Background(), dto.ImportFlightsRequest{
		Flights: []dto.FlightPayload{bad},
	})

	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
	assert.Equal(t, "record 1: invalid flight_date format", err.Error())
}

func TestFlightService_Export(t *testing.T) {
	f := newServiceFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Flight{sampleFlight(1), sampleFlight(2)}, nil)

	res, filename, err := f.svc.Export(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.0", res.Version)
	assert.Len(t, res.Flights, 2)

	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`), res.ExportDate)
	assert.Regexp(t, regexp.MustCompile(`^flights_\d{8}_\d{6}\.json$`), filename)
}

func TestFlightService_Export_Empty(t *testing.T) {
	f := newServiceFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Flight{}, nil)

	res, _, err := f.svc.Export(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, res.Flights)
	assert.Len(t, res.Flights, 0)
}

func TestFlightService_ImportExportRoundTrip(t *testing.T) {
	f := newServiceFixture(t)

	var stored []model.Flight

	f.repo.EXPECT().
		ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, models []model.Flight) (int64, int64, error) {
			stored = models

			return 0, int64(len(models)), nil
		})

	first := importRecord()
	second := importRecord()
	second.FlightNumber = strPtr("JL61")
	second.ReservationNumber = strPtr("XYZ789")

	_, err := f.svc.Import(context.Background(), dto.ImportFlightsRequest{
		Flights: []dto.FlightPayload{first, second},
	})
	require.NoError(t, err)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(stored, nil)

	res, _, err := f.svc.Export(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Flights, 2)
	assert.Equal(t, "JL62", res.Flights[0].FlightNumber)
	assert.Equal(t, "XYZ789", res.Flights[1].ReservationNumber)
	assert.Equal(t, "2024-05-01", res.Flights[0].FlightDate)
}
