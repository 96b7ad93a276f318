package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"github.com/BenlahcenSoufiane/AzurHotel/infras/otel"
	"github.com/BenlahcenSoufiane/AzurHotel/infras/postgres"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/model"
	gDto "github.com/BenlahcenSoufiane/AzurHotel/shared/dto"
	gRepo "github.com/BenlahcenSoufiane/AzurHotel/shared/repository"
)

// Catalog persists the bookable inventory: room categories, spa treatments
// and the restaurant menu.
type Catalog interface {
	InsertRoomType(ctx context.Context, model model.RoomType) error
	GetRoomType(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomType, error)
	GetAllRoomTypes(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomType, error)
	ExistRoomType(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	CountRoomTypes(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateRoomType(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteRoomType(ctx context.Context, filter gDto.FilterGroup) error

	InsertSpaService(ctx context.Context, model model.SpaService) error
	GetSpaService(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SpaService, error)
	GetAllSpaServices(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SpaService, error)
	ExistSpaService(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	CountSpaServices(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateSpaService(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteSpaService(ctx context.Context, filter gDto.FilterGroup) error

	InsertRestaurantMenu(ctx context.Context, model model.RestaurantMenu) error
	GetRestaurantMenu(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RestaurantMenu, error)
	GetAllRestaurantMenus(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RestaurantMenu, error)
	ExistRestaurantMenu(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	CountRestaurantMenus(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateRestaurantMenu(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteRestaurantMenu(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	roomTypes gRepo.Repository[model.RoomType]
	spa       gRepo.Repository[model.SpaService]
	menus     gRepo.Repository[model.RestaurantMenu]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Catalog {
	return &repositoryImpl{
		roomTypes: gRepo.NewRepository[model.RoomType](model.RoomTypeEntityName, model.RoomTypeTableName, model.FieldRoomTypeID, db, otel),
		spa:       gRepo.NewRepository[model.SpaService](model.SpaServiceEntityName, model.SpaServiceTableName, model.FieldSpaServiceID, db, otel),
		menus:     gRepo.NewRepository[model.RestaurantMenu](model.RestaurantMenuEntityName, model.RestaurantMenuTableName, model.FieldRestaurantMenuID, db, otel),
		db:        db,
		otel:      otel,
	}
}

func (repo *repositoryImpl) InsertRoomType(ctx context.Context, model model.RoomType) error {
	return repo.roomTypes.Insert(ctx, model)
}

func (repo *repositoryImpl) GetRoomType(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomType, error) {
	return repo.roomTypes.Get(ctx, filter, columns...)
}

func (repo *repositoryImpl) GetAllRoomTypes(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomType, error) {
	return repo.roomTypes.GetAll(ctx, params, filter, columns...)
}

func (repo *repositoryImpl) ExistRoomType(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.roomTypes.Exist(ctx, filter)
}

func (repo *repositoryImpl) CountRoomTypes(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.roomTypes.Count(ctx, filter)
}

func (repo *repositoryImpl) UpdateRoomType(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return repo.roomTypes.Update(ctx, req, filter)
}

func (repo *repositoryImpl) DeleteRoomType(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.roomTypes.Delete(ctx, filter)
}

func (repo *repositoryImpl) InsertSpaService(ctx context.Context, model model.SpaService) error {
	return repo.spa.Insert(ctx, model)
}

func (repo *repositoryImpl) GetSpaService(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SpaService, error) {
	return repo.spa.Get(ctx, filter, columns...)
}

func (repo *repositoryImpl) GetAllSpaServices(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SpaService, error) {
	return repo.spa.GetAll(ctx, params, filter, columns...)
}

func (repo *repositoryImpl) ExistSpaService(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.spa.Exist(ctx, filter)
}

func (repo *repositoryImpl) CountSpaServices(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.spa.Count(ctx, filter)
}

func (repo *repositoryImpl) UpdateSpaService(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return repo.spa.Update(ctx, req, filter)
}

func (repo *repositoryImpl) DeleteSpaService(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.spa.Delete(ctx, filter)
}

func (repo *repositoryImpl) InsertRestaurantMenu(ctx context.Context, model model.RestaurantMenu) error {
	return repo.menus.Insert(ctx, model)
}

func (repo *repositoryImpl) GetRestaurantMenu(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RestaurantMenu, error) {
	return repo.menus.Get(ctx, filter, columns...)
}

func (repo *repositoryImpl) GetAllRestaurantMenus(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RestaurantMenu, error) {
	return repo.menus.GetAll(ctx, params, filter, columns...)
}

func (repo *repositoryImpl) ExistRestaurantMenu(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.menus.Exist(ctx, filter)
}

func (repo *repositoryImpl) CountRestaurantMenus(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.menus.Count(ctx, filter)
}

func (repo *repositoryImpl) UpdateRestaurantMenu(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return repo.menus.Update(ctx, req, filter)
}

func (repo *repositoryImpl) DeleteRestaurantMenu(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.menus.Delete(ctx, filter)
}
