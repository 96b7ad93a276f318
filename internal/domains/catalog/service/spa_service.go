package service

import (
	"context"
	"fmt"

	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/model"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/model/dto"
	"github.com/BenlahcenSoufiane/AzurHotel/shared"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/constant"
	gDto "github.com/BenlahcenSoufiane/AzurHotel/shared/dto"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/failure"

	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) CreateSpaService(ctx context.Context, req dto.CreateSpaServiceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSpaService")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.InsertSpaService(ctx, req.ToModel(user)); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSpaServices)
		shared.InvalidateCaches(c, s.cache, cacheCountSpaServices)
	}()

	return nil
}

func (s *serviceImpl) GetAllSpaServices(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSpaServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllSpaServices")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSpaServices, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for spa services")

		return res, nil
	}

	total, err := s.CountSpaServices(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count spa services")

		return res, fmt.Errorf("failed to count spa services: %w", err)
	}

	models, err := s.repo.GetAllSpaServices(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get spa services")

		return res, fmt.Errorf("failed to get spa services: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save spa services to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CountSpaServices(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountSpaServices")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountSpaServices, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.CountSpaServices(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count spa services")

		return res, fmt.Errorf("failed to count spa services: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save spa service count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetSpaService(ctx context.Context, id string) (res dto.SpaServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSpaService")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSpaService, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for spa service")

		return res, nil
	}

	spaService, err := s.repo.GetSpaService(ctx, shared.FilterByID(id, model.FieldSpaServiceID, model.SpaServiceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get spa service")

		return res, fmt.Errorf("failed to get spa service: %w", err)
	}

	if spaService.ID == constant.Empty {
		return res, failure.NotFound("spa service not found") // nolint:wrapcheck
	}

	res.FromModel(spaService)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save spa service to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateSpaService(ctx context.Context, req dto.UpdateSpaServiceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSpaService")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldSpaServiceID, model.SpaServiceTableName)

	exist, err := s.repo.ExistSpaService(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check spa service existence")

		return fmt.Errorf("failed to check spa service existence: %w", err)
	}

	if !exist {
		return failure.NotFound("spa service not found") // nolint:wrapcheck
	}

	if err = s.repo.UpdateSpaService(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update spa service")

		return fmt.Errorf("failed to update spa service: %w", err)
	}

	s.invalidateSpaServiceCaches(ctx, id)

	return nil
}

func (s *serviceImpl) DeleteSpaService(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteSpaService")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldSpaServiceID, model.SpaServiceTableName)

	exist, err := s.repo.ExistSpaService(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if spa service exists")

		return fmt.Errorf("failed to check if spa service exists: %w", err)
	}

	if !exist {
		return failure.NotFound("spa service not found") // nolint:wrapcheck
	}

	if err = s.repo.DeleteSpaService(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete spa service")

		return fmt.Errorf("failed to delete spa service: %w", err)
	}

	s.invalidateSpaServiceCaches(ctx, id)

	return nil
}

func (s *serviceImpl) invalidateSpaServiceCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSpaService, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete spa service cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSpaServices)
		shared.InvalidateCaches(c, s.cache, cacheCountSpaServices)
	}()
}
