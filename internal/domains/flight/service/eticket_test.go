package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"flightapi/internal/domains/flight/model"
	"flightapi/shared/failure"
)

func TestFlightService_UploadEticket(t *testing.T) {
	f := newServiceFixture(t)

	file, fileHeader := multipartFile(t, "eticket.pdf", "application/pdf", []byte("%PDF-1.4 fake"))

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(sampleFlight(1), nil)

	f.s3.EXPECT().
		UploadFile(gomock.Any(), "", "etickets", gomock.Any(), gomock.Any(), gomock.Any()).
		Return("https://cdn.example.com/etickets/eticket_ABC123_20240501_120000.pdf", nil)

	f.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	res, err := f.svc.UploadEticket(context.Background(), 1, file, fileHeader)

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.UpdatedFlights)
	assert.Equal(t, "ABC123", res.ReservationNumber)
	assert.Contains(t, res.FilePath, "etickets/")
}

func TestFlightService_UploadEticket_ReplacesPrevious(t *testing.T) {
	f := newServiceFixture(t)

	file, fileHeader := multipartFile(t, "eticket.pdf", "application/pdf", []byte("%PDF-1.4 fake"))

	existing := sampleFlight(1)
	existing.EticketPdfPath = sql.NullString{String: "https://cdn.example.com/etickets/old.pdf", Valid: true}

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(existing, nil)

	f.s3.EXPECT().
		UploadFile(gomock.Any(), "", "etickets", gomock.Any(), gomock.Any(), gomock.Any()).
		Return("https://cdn.example.com/etickets/new.pdf", nil)

	f.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	f.s3.EXPECT().
		GetObjectNameFromURL("", "https://cdn.example.com/etickets/old.pdf").
		Return("etickets/old.pdf")

	f.s3.EXPECT().
		DeleteFile(gomock.Any(), "", "", "etickets/old.pdf").
		Return(nil)

	_, err := f.svc.UploadEticket(context.Background(), 1, file, fileHeader)

	require.NoError(t, err)
}

func TestFlightService_UploadEticket_RejectsNonPDF(t *testing.T) {
	f := newServiceFixture(t)

	file, fileHeader := multipartFile(t, "eticket.png", "image/png", []byte("fake png"))

	_, err := f.svc.UploadEticket(context.Background(), 1, file, fileHeader)

	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestFlightService_UploadEticket_FlightNotFound(t *testing.T) {
	f := newServiceFixture(t)

	file, fileHeader := multipartFile(t, "eticket.pdf", "application/pdf", []byte("%PDF-1.4 fake"))

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Flight{}, nil)

	_, err := f.svc.UploadEticket(context.Background(), 1, file, fileHeader)

	assert.Equal(t, failure.NotFound("flight not found"), err)
}

func TestFlightService_EticketURL(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f serviceFixture)
		wantURL   string
		wantErr   error
	}{
		{
			name: "resolves stored url",
			setupMock: func(f serviceFixture) {
				flight := sampleFlight(1)
				flight.EticketPdfPath = sql.NullString{String: "https://cdn.example.com/etickets/x.pdf", Valid: true}

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(flight, nil)
			},
			wantURL: "https://cdn.example.com/etickets/x.pdf",
		},
		{
			name: "flight missing",
			setupMock: func(f serviceFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Flight{}, nil)
			},
			wantErr: failure.NotFound("flight not found"),
		},
		{
			name: "no eticket stored",
			setupMock: func(f serviceFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleFlight(1), nil)
			},
			wantErr: failure.NotFound("eticket not found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)
			tt.setupMock(f)

			url, err := f.svc.EticketURL(context.Background(), 1)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantURL, url)
			}
		})
	}
}
