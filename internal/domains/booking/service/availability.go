package service

import (
	"context"
	"fmt"
	"time"

	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/model/dto"
	catalogModel "github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/model"
	"github.com/BenlahcenSoufiane/AzurHotel/shared"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/constant"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/failure"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

// parseStayDates parses a calendar date pair and enforces a positive-length
// stay. Equal dates are rejected, the interval must cover at least one night.
func parseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	start, err := timezone.Parse(constant.DateOnlyFormat, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequest(err) // nolint:wrapcheck
	}

	end, err := timezone.Parse(constant.DateOnlyFormat, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	return start, end, nil
}

func parseDate(date string) (time.Time, error) {
	parsed, err := timezone.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		return time.Time{}, failure.BadRequest(err) // nolint:wrapcheck
	}

	return parsed, nil
}

func (s *serviceImpl) CheckRoomAvailability(ctx context.Context, req dto.RoomAvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckRoomAvailability")
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
		return dto.AvailabilityResponse{Decision: dto.DecisionNotFound}, nil
	}

	booked, err := s.repo.CountRoomOverlaps(ctx, req.RoomTypeID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to count overlapping stays")

		return res, fmt.Errorf("failed to count overlapping stays: %w", err)
	}

	remaining := s.cfg.Booking.RoomsPerType - booked
	if remaining <= 0 {
		return dto.AvailabilityResponse{Decision: dto.DecisionUnavailable}, nil
	}

	return dto.AvailabilityResponse{Decision: dto.DecisionAvailable, Remaining: remaining}, nil
}

func (s *serviceImpl) CheckSpaAvailability(ctx context.Context, req dto.SpaAvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckSpaAvailability")
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
		return dto.AvailabilityResponse{Decision: dto.DecisionNotFound}, nil
	}

	booked, err := s.repo.CountSpaSlot(ctx, req.ServiceID, date, req.TimeSlot)
	if err != nil {
		log.Error().Err(err).Msg("failed to count slot sessions")

		return res, fmt.Errorf("failed to count slot sessions: %w", err)
	}

	remaining := s.cfg.Booking.SpaSessionsPerSlot - booked
	if remaining <= 0 {
		return dto.AvailabilityResponse{Decision: dto.DecisionUnavailable}, nil
	}

	return dto.AvailabilityResponse{Decision: dto.DecisionAvailable, Remaining: remaining}, nil
}

func (s *serviceImpl) CheckRestaurantAvailability(ctx context.Context, req dto.RestaurantAvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckRestaurantAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := parseDate(req.Date)
	if err != nil {
		return res, err
	}

	reserved, err := s.repo.SumRestaurantSeats(ctx, date, req.TimeSlot, req.MealPeriod)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum reserved seats")

		return res, fmt.Errorf("failed to sum reserved seats: %w", err)
	}

	remaining := s.cfg.Booking.RestaurantSeats - reserved
	if remaining < req.PartySize {
		return dto.AvailabilityResponse{Decision: dto.DecisionUnavailable, Remaining: max(remaining, 0)}, nil
	}

	return dto.AvailabilityResponse{Decision: dto.DecisionAvailable, Remaining: remaining}, nil
}
