package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"flightapi/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "MalformedImportPayload",
			failure: failure.MalformedImportPayload,
			code:    http.StatusBadRequest,
			message: "flights field must be a non-empty array",
		},
		{
			name:    "InvalidFlightID",
			failure: failure.InvalidFlightID,
			code:    http.StatusBadRequest,
			message: "invalid flight id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, tt.failure.Code)
			}

			if tt.failure.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "BadRequest",
			err:      failure.BadRequest(errors.New("bad input")),
			wantCode: http.StatusBadRequest,
			wantMsg:  "bad input",
		},
		{
			name:     "BadRequestFromString",
			err:      failure.BadRequestFromString("record 3: flight_date is required"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "record 3: flight_date is required",
		},
		{
			name:     "InternalError",
			err:      failure.InternalError(errors.New("boom")),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "boom",
		},
		{
			name:     "NotFound",
			err:      failure.NotFound("flight not found"),
			wantCode: http.StatusNotFound,
			wantMsg:  "flight not found",
		},
		{
			name:     "Conflict",
			err:      failure.Conflict("duplicate reservation"),
			wantCode: http.StatusConflict,
			wantMsg:  "duplicate reservation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, tt.err.Error())
			}

			if code := failure.GetCode(tt.err); code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, code)
			}
		})
	}
}

func TestNilErrorsReturnNil(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestGetCode(t *testing.T) {
	if code := failure.GetCode(errors.New("plain error")); code != http.StatusInternalServerError {
		t.Errorf("expected plain errors to map to 500, got %d", code)
	}

	wrapped := fmt.Errorf("context: %w", failure.NotFound("flight not found"))
	if code := failure.GetCode(wrapped); code != http.StatusNotFound {
		t.Errorf("expected wrapped failure to keep its code, got %d", code)
	}
}
