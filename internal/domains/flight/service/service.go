package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Flight=MockFlightService

import (
	"context"
	"fmt"
	"mime/multipart"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"

	"flightapi/config"
	"flightapi/infras/anthropic"
	"flightapi/infras/otel"
	"flightapi/infras/s3"
	"flightapi/internal/domains/flight/model"
	"flightapi/internal/domains/flight/model/dto"
	"flightapi/internal/domains/flight/repository"
	"flightapi/shared"
	"flightapi/shared/cache"
	"flightapi/shared/constant"
	gDto "flightapi/shared/dto"
	"flightapi/shared/failure"
)

const (
	cacheGetFlight     = "flight:get"
	cacheGetAllFlights = "flight:gets"
	cachePrefixFlight  = "flight"
)

type Flight interface {
	Create(ctx context.Context, req dto.CreateFlightRequest) (dto.FlightResponse, error)
	GetAll(ctx context.Context) (dto.GetFlightsResponse, error)
	Get(ctx context.Context, id int64) (dto.FlightResponse, error)
	Update(ctx context.Context, req dto.UpdateFlightRequest, id int64) error
	Delete(ctx context.Context, id int64) error
	Import(ctx context.Context, req dto.ImportFlightsRequest) (dto.ImportFlightsResponse, error)
	Export(ctx context.Context) (dto.ExportFlightsResponse, string, error)
	UploadEticket(ctx context.Context, id int64, file multipart.File, fileHeader *multipart.FileHeader) (dto.UploadEticketResponse, error)
	EticketURL(ctx context.Context, id int64) (string, error)
	ExtractFromFile(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (dto.ExtractFlightsResponse, error)
}

type serviceImpl struct {
	repo     repository.Flight
	cfg      *config.Config
	cache    cache.RedisCache
	s3       s3.S3
	ai       anthropic.Client
	otel     otel.Otel
	importMu sync.Mutex
}

func New(repo repository.Flight, cfg *config.Config, cache cache.RedisCache, s3 s3.S3, ai anthropic.Client, otel otel.Otel) Flight {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		s3:    s3,
		ai:    ai,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFlightRequest) (res dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	flight, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse flight request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid flight_date format: %v", err)) // nolint:wrapcheck
	}

	created, err := s.repo.Insert(ctx, flight)
	if err != nil {
		log.Error().Err(err).Msg("failed to create flight")

		return res, fmt.Errorf("failed to create flight: %w", err)
	}

	res.FromModel(created)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePrefixFlight)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetFlightsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllFlights, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllFlights).Msg("cache hit for flights")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, defaultQueryParams(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get flights")

		return res, fmt.Errorf("failed to get flights: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllFlights, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save flights to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetFlight, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for flight")

		return res, nil
	}

	flight, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get flight")

		return res, fmt.Errorf("failed to get flight: %w", err)
	}

	if flight.ID == 0 {
		return res, failure.NotFound("flight not found") // nolint:wrapcheck
	}

	res.FromModel(flight)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save flight to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateFlightRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateFlightRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if flight exists")

		return fmt.Errorf("failed to check if flight exists: %w", err)
	}

	if !exist {
		log.Error().Int64("id", id).Msg("flight not found")

		return failure.NotFound("flight not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update flight")

		return fmt.Errorf("failed to update flight: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePrefixFlight)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	deleted, err := s.repo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete flight")

		return fmt.Errorf("failed to delete flight: %w", err)
	}

	if deleted == 0 {
		log.Error().Int64("id", id).Msg("flight not found")

		return failure.NotFound("flight not found") // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePrefixFlight)
	}()

	return nil
}

func defaultQueryParams() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}
}
