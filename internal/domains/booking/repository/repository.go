package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/BenlahcenSoufiane/AzurHotel/infras/otel"
	"github.com/BenlahcenSoufiane/AzurHotel/infras/postgres"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/model"
	gDto "github.com/BenlahcenSoufiane/AzurHotel/shared/dto"
	gRepo "github.com/BenlahcenSoufiane/AzurHotel/shared/repository"
)

// Booking persists reservations for all three facilities.
//
// The Insert* methods are conditional: they re-check the capacity rule inside
// a serializable transaction and refuse the insert with failure.Conflict when
// the facility is full, so two concurrent requests for the last opening can
// never both land.
type Booking interface {
	InsertRoom(ctx context.Context, booking model.RoomBooking, capacity int) error
	InsertSpa(ctx context.Context, booking model.SpaBooking, capacity int) error
	InsertRestaurant(ctx context.Context, booking model.RestaurantBooking, seats int) error

	CountRoomOverlaps(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (int, error)
	CountSpaSlot(ctx context.Context, serviceID string, date time.Time, timeSlot string) (int, error)
	SumRestaurantSeats(ctx context.Context, date time.Time, timeSlot, mealPeriod string) (int, error)

	GetRoom(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomBooking, error)
	GetAllRooms(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomBooking, error)
	CountRooms(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateRoom(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	GetSpa(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SpaBooking, error)
	GetAllSpa(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SpaBooking, error)
	CountSpa(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateSpa(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	GetRestaurant(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RestaurantBooking, error)
	GetAllRestaurant(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RestaurantBooking, error)
	CountRestaurant(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateRestaurant(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	rooms      gRepo.Repository[model.RoomBooking]
	spa        gRepo.Repository[model.SpaBooking]
	restaurant gRepo.Repository[model.RestaurantBooking]
	db         *postgres.Connection
	otel       otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		rooms:      gRepo.NewRepository[model.RoomBooking](model.RoomBookingEntityName, model.RoomBookingTableName, model.FieldRoomBookingID, db, otel),
		spa:        gRepo.NewRepository[model.SpaBooking](model.SpaBookingEntityName, model.SpaBookingTableName, model.FieldSpaBookingID, db, otel),
		restaurant: gRepo.NewRepository[model.RestaurantBooking](model.RestaurantBookingEntityName, model.RestaurantBookingTableName, model.FieldRestaurantBookingID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetRoom(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomBooking, error) {
	return repo.rooms.Get(ctx, filter, columns...)
}

func (repo *repositoryImpl) GetAllRooms(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomBooking, error) {
	return repo.rooms.GetAll(ctx, params, filter, columns...)
}

func (repo *repositoryImpl) CountRooms(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.rooms.Count(ctx, filter)
}

func (repo *repositoryImpl) UpdateRoom(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return repo.rooms.Update(ctx, req, filter)
}

func (repo *repositoryImpl) GetSpa(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SpaBooking, error) {
	return repo.spa.Get(ctx, filter, columns...)
}

func (repo *repositoryImpl) GetAllSpa(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SpaBooking, error) {
	return repo.spa.GetAll(ctx, params, filter, columns...)
}

func (repo *repositoryImpl) CountSpa(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.spa.Count(ctx, filter)
}

func (repo *repositoryImpl) UpdateSpa(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return repo.spa.Update(ctx, req, filter)
}

func (repo *repositoryImpl) GetRestaurant(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RestaurantBooking, error) {
	return repo.restaurant.Get(ctx, filter, columns...)
}

func (repo *repositoryImpl) GetAllRestaurant(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RestaurantBooking, error) {
	return repo.restaurant.GetAll(ctx, params, filter, columns...)
}

func (repo *repositoryImpl) CountRestaurant(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.restaurant.Count(ctx, filter)
}

func (repo *repositoryImpl) UpdateRestaurant(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return repo.restaurant.Update(ctx, req, filter)
}
