package service

import (
	"context"
	"fmt"

	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/model/dto"
	catalogModel "github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/model"
	"github.com/BenlahcenSoufiane/AzurHotel/shared"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/constant"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const hoursPerDay = 24

// identityFromContext resolves the caller for booking attribution. A missing
// user id means a guest checkout, the booking is stored without an owner.
func identityFromContext(ctx context.Context) (*string, string) {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if id == constant.Empty {
		return nil, constant.ContextGuest
	}

	return &id, id
}

func (s *serviceImpl) CreateRoomBooking(ctx context.Context, req dto.CreateRoomBookingRequest) (res dto.RoomBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoomBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := parseStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	roomType, err := s.catalog.GetRoomType(ctx, shared.FilterByID(req.RoomTypeID, catalogModel.FieldRoomTypeID, catalogModel.RoomTypeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty || !roomType.Active {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	// Totals are always recomputed server side, the client never prices its
	// own booking.
	nights := int(checkOut.Sub(checkIn).Hours() / hoursPerDay)
	totalPrice := nights * roomType.PricePerNight

	userID, actor := identityFromContext(ctx)
	booking := req.ToModel(userID, actor, checkIn, checkOut, totalPrice)

	if err = s.repo.InsertRoom(ctx, booking, s.cfg.Booking.RoomsPerType); err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notifier.RoomBooked(c, booking); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish room booking notification")
		}
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) CreateSpaBooking(ctx context.Context, req dto.CreateSpaBookingRequest) (res dto.SpaBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSpaBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := parseDate(req.Date)
	if err != nil {
		return res, err
	}

	spaService, err := s.catalog.GetSpaService(ctx, shared.FilterByID(req.ServiceID, catalogModel.FieldSpaServiceID, catalogModel.SpaServiceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get spa service")

		return res, fmt.Errorf("failed to get spa service: %w", err)
	}

	if spaService.ID == constant.Empty || !spaService.Active {
		return res, failure.NotFound("spa service not found") // nolint:wrapcheck
	}

	totalPrice := spaService.Price*req.Participants + s.cfg.Booking.SpaServiceFee

	userID, actor := identityFromContext(ctx)
	booking := req.ToModel(userID, actor, date, totalPrice)

	if err = s.repo.InsertSpa(ctx, booking, s.cfg.Booking.SpaSessionsPerSlot); err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notifier.SpaBooked(c, booking); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish spa booking notification")
		}
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) CreateRestaurantBooking(ctx context.Context, req dto.CreateRestaurantBookingRequest) (res dto.RestaurantBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRestaurantBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := parseDate(req.Date)
	if err != nil {
		return res, err
	}

	userID, actor := identityFromContext(ctx)
	booking := req.ToModel(userID, actor, date)

	if err = s.repo.InsertRestaurant(ctx, booking, s.cfg.Booking.RestaurantSeats); err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notifier.TableBooked(c, booking); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish restaurant booking notification")
		}
	}()

	res.FromModel(booking)

	return res, nil
}
