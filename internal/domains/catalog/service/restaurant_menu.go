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

func (s *serviceImpl) CreateRestaurantMenu(ctx context.Context, req dto.CreateRestaurantMenuRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRestaurantMenu")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.InsertRestaurantMenu(ctx, req.ToModel(user)); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRestaurantMenus)
		shared.InvalidateCaches(c, s.cache, cacheCountRestaurantMenus)
	}()

	return nil
}

func (s *serviceImpl) GetAllRestaurantMenus(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRestaurantMenusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllRestaurantMenus")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRestaurantMenus, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for restaurant menus")

		return res, nil
	}

	total, err := s.CountRestaurantMenus(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count restaurant menus")

		return res, fmt.Errorf("failed to count restaurant menus: %w", err)
	}

	models, err := s.repo.GetAllRestaurantMenus(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant menus")

		return res, fmt.Errorf("failed to get restaurant menus: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save restaurant menus to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CountRestaurantMenus(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountRestaurantMenus")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRestaurantMenus, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.CountRestaurantMenus(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count restaurant menus")

		return res, fmt.Errorf("failed to count restaurant menus: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save restaurant menu count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetRestaurantMenu(ctx context.Context, id string) (res dto.RestaurantMenuResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRestaurantMenu")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRestaurantMenu, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for restaurant menu")

		return res, nil
	}

	menu, err := s.repo.GetRestaurantMenu(ctx, shared.FilterByID(id, model.FieldRestaurantMenuID, model.RestaurantMenuTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant menu")

		return res, fmt.Errorf("failed to get restaurant menu: %w", err)
	}

	if menu.ID == constant.Empty {
		return res, failure.NotFound("restaurant menu not found") // nolint:wrapcheck
	}

	res.FromModel(menu)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save restaurant menu to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateRestaurantMenu(ctx context.Context, req dto.UpdateRestaurantMenuRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRestaurantMenu")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldRestaurantMenuID, model.RestaurantMenuTableName)

	exist, err := s.repo.ExistRestaurantMenu(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check restaurant menu existence")

		return fmt.Errorf("failed to check restaurant menu existence: %w", err)
	}

	if !exist {
		return failure.NotFound("restaurant menu not found") // nolint:wrapcheck
	}

	if err = s.repo.UpdateRestaurantMenu(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update restaurant menu")

		return fmt.Errorf("failed to update restaurant menu: %w", err)
	}

	s.invalidateRestaurantMenuCaches(ctx, id)

	return nil
}

func (s *serviceImpl) DeleteRestaurantMenu(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRestaurantMenu")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldRestaurantMenuID, model.RestaurantMenuTableName)

	exist, err := s.repo.ExistRestaurantMenu(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if restaurant menu exists")

		return fmt.Errorf("failed to check if restaurant menu exists: %w", err)
	}

	if !exist {
		return failure.NotFound("restaurant menu not found") // nolint:wrapcheck
	}

	if err = s.repo.DeleteRestaurantMenu(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete restaurant menu")

		return fmt.Errorf("failed to delete restaurant menu: %w", err)
	}

	s.invalidateRestaurantMenuCaches(ctx, id)

	return nil
}

func (s *serviceImpl) invalidateRestaurantMenuCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRestaurantMenu, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete restaurant menu cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRestaurantMenus)
		shared.InvalidateCaches(c, s.cache, cacheCountRestaurantMenus)
	}()
}
