package service

import (
	"context"

	"github.com/BenlahcenSoufiane/AzurHotel/config"
	"github.com/BenlahcenSoufiane/AzurHotel/infras/otel"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/model/dto"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/repository"
	catalogRepo "github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/repository"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/notification"
	userRepo "github.com/BenlahcenSoufiane/AzurHotel/internal/domains/user/repository"
	gDto "github.com/BenlahcenSoufiane/AzurHotel/shared/dto"
)

// Booking covers the reservation lifecycle for rooms, spa sessions and
// restaurant tables: availability probes, creation, per-user listings, the
// admin cross-facility view and status transitions.
type Booking interface {
	CheckRoomAvailability(ctx context.Context, req dto.RoomAvailabilityRequest) (dto.AvailabilityResponse, error)
	CheckSpaAvailability(ctx context.Context, req dto.SpaAvailabilityRequest) (dto.AvailabilityResponse, error)
	CheckRestaurantAvailability(ctx context.Context, req dto.RestaurantAvailabilityRequest) (dto.AvailabilityResponse, error)

	CreateRoomBooking(ctx context.Context, req dto.CreateRoomBookingRequest) (dto.RoomBookingResponse, error)
	CreateSpaBooking(ctx context.Context, req dto.CreateSpaBookingRequest) (dto.SpaBookingResponse, error)
	CreateRestaurantBooking(ctx context.Context, req dto.CreateRestaurantBookingRequest) (dto.RestaurantBookingResponse, error)

	GetRoomBooking(ctx context.Context, id string) (dto.RoomBookingResponse, error)
	GetSpaBooking(ctx context.Context, id string) (dto.SpaBookingResponse, error)
	GetRestaurantBooking(ctx context.Context, id string) (dto.RestaurantBookingResponse, error)

	MyBookings(ctx context.Context) (dto.MyBookingsResponse, error)
	AdminListBookings(ctx context.Context, params gDto.QueryParams) (dto.GetAdminBookingsResponse, error)
	UpdateStatus(ctx context.Context, kind, id string, req dto.UpdateBookingStatusRequest) (dto.AdminBookingView, error)
}

type serviceImpl struct {
	repo     repository.Booking
	catalog  catalogRepo.Catalog
	users    userRepo.User
	notifier notification.Notifier
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Booking, catalog catalogRepo.Catalog, users userRepo.User, notifier notification.Notifier, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		catalog:  catalog,
		users:    users,
		notifier: notifier,
		cfg:      cfg,
		otel:     otel,
	}
}
