package service

import (
	"context"

	"github.com/BenlahcenSoufiane/AzurHotel/config"
	"github.com/BenlahcenSoufiane/AzurHotel/infras/otel"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/model/dto"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/repository"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/cache"
	gDto "github.com/BenlahcenSoufiane/AzurHotel/shared/dto"
)

const (
	cacheGetRoomType     = "room_type:get"
	cacheGetAllRoomTypes = "room_type:gets"
	cacheCountRoomTypes  = "room_type:count"

	cacheGetSpaService     = "spa_service:get"
	cacheGetAllSpaServices = "spa_service:gets"
	cacheCountSpaServices  = "spa_service:count"

	cacheGetRestaurantMenu     = "restaurant_menu:get"
	cacheGetAllRestaurantMenus = "restaurant_menu:gets"
	cacheCountRestaurantMenus  = "restaurant_menu:count"
)

type Catalog interface {
	CreateRoomType(ctx context.Context, req dto.CreateRoomTypeRequest) error
	GetAllRoomTypes(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomTypesResponse, error)
	CountRoomTypes(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetRoomType(ctx context.Context, id string) (dto.RoomTypeResponse, error)
	UpdateRoomType(ctx context.Context, req dto.UpdateRoomTypeRequest, id string) error
	DeleteRoomType(ctx context.Context, id string) error

	CreateSpaService(ctx context.Context, req dto.CreateSpaServiceRequest) error
	GetAllSpaServices(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSpaServicesResponse, error)
	CountSpaServices(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetSpaService(ctx context.Context, id string) (dto.SpaServiceResponse, error)
	UpdateSpaService(ctx context.Context, req dto.UpdateSpaServiceRequest, id string) error
	DeleteSpaService(ctx context.Context, id string) error

	CreateRestaurantMenu(ctx context.Context, req dto.CreateRestaurantMenuRequest) error
	GetAllRestaurantMenus(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRestaurantMenusResponse, error)
	CountRestaurantMenus(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetRestaurantMenu(ctx context.Context, id string) (dto.RestaurantMenuResponse, error)
	UpdateRestaurantMenu(ctx context.Context, req dto.UpdateRestaurantMenuRequest, id string) error
	DeleteRestaurantMenu(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Catalog
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Catalog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}
