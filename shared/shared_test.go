package shared_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goRedis "github.com/redis/go-redis/v9"

	"flightapi/infras/otel/mocks"
	"flightapi/shared"
	"flightapi/shared/cache"
	"flightapi/shared/constant"
	"flightapi/shared/dto"
)

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		FlightNumber *string `db:"flight_number"`
		SeatNumber   *string `db:"seat_number"`
		Status       string  `db:"status"`
		Ignored      string
	}

	flightNumber := "JL61"

	tests := []struct {
		name       string
		input      updateRequest
		wantFields map[string]any
	}{
		{
			name: "pointer and value fields",
			input: updateRequest{
				FlightNumber: &flightNumber,
				Status:       "Boarded",
			},
			wantFields: map[string]any{
				"flight_number": "JL61",
				"status":        "Boarded",
			},
		},
		{
			name:       "zero fields are skipped",
			input:      updateRequest{},
			wantFields: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.TransformFields(tt.input)

			if _, ok := got[constant.FieldUpdatedAt]; !ok {
				t.Error("expected updated_at to always be set")
			}

			delete(got, constant.FieldUpdatedAt)

			if !reflect.DeepEqual(got, tt.wantFields) {
				t.Errorf("expected fields %v, got %v", tt.wantFields, got)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(int64(7), "id", "flights")

	if len(filter.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(filter.Filters))
	}

	f, ok := filter.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected filter to be a dto.Filter")
	}

	if f.Field != "id" || f.Table != "flights" || f.Operator != dto.FilterOperatorEq {
		t.Errorf("unexpected filter: %+v", f)
	}

	if f.Value != int64(7) {
		t.Errorf("expected value 7, got %v", f.Value)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("flight:get", "42"); got != "flight:get:42" {
		t.Errorf("expected 'flight:get:42', got %q", got)
	}

	if got := shared.BuildCacheKey("flight"); got != "flight" {
		t.Errorf("expected 'flight', got %q", got)
	}
}

func TestInvalidateCaches(t *testing.T) {
	server := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: server.Addr()})
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())

	ctx := context.Background()

	seed := map[string]string{
		"flight:gets":      `{"flights":[],"total_data":0}`,
		"flight:get:1":     `{"id":1}`,
		"limiter:10.0.0.1": "3",
	}
	for key, value := range seed {
		if err := redisCache.Save(ctx, key, value, 60); err != nil {
			t.Fatalf("failed to seed cache key %s: %v", key, err)
		}
	}

	shared.InvalidateCaches(ctx, redisCache, "flight")

	if server.Exists("flight:gets") || server.Exists("flight:get:1") {
		t.Errorf("expected flight cache keys to be cleared, keys left: %v", server.Keys())
	}

	if !server.Exists("limiter:10.0.0.1") {
		t.Error("expected keys outside the prefix to survive invalidation")
	}
}
