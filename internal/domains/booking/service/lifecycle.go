package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/model"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/model/dto"
	userModel "github.com/BenlahcenSoufiane/AzurHotel/internal/domains/user/model"
	"github.com/BenlahcenSoufiane/AzurHotel/shared"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/constant"
	gDto "github.com/BenlahcenSoufiane/AzurHotel/shared/dto"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/failure"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

func filterByUser(userID, field, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Value:    userID,
				Operator: gDto.FilterOperatorEq,
				Table:    table,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

func (s *serviceImpl) GetRoomBooking(ctx context.Context, id string) (res dto.RoomBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.GetRoom(ctx, shared.FilterByID(id, model.FieldRoomBookingID, model.RoomBookingTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room booking")

		return res, fmt.Errorf("failed to get room booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetSpaBooking(ctx context.Context, id string) (res dto.SpaBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSpaBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.GetSpa(ctx, shared.FilterByID(id, model.FieldSpaBookingID, model.SpaBookingTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get spa booking")

		return res, fmt.Errorf("failed to get spa booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetRestaurantBooking(ctx context.Context, id string) (res dto.RestaurantBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRestaurantBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.GetRestaurant(ctx, shared.FilterByID(id, model.FieldRestaurantBookingID, model.RestaurantBookingTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant booking")

		return res, fmt.Errorf("failed to get restaurant booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

// MyBookings lists every reservation owned by the caller, rooms ordered by
// check-in date and the other facilities by visit date, most recent first.
func (s *serviceImpl) MyBookings(ctx context.Context) (res dto.MyBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MyBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	rooms, err := s.repo.GetAllRooms(ctx,
		gDto.QueryParams{SortBy: model.FieldRoomBookingCheckIn, SortDir: constant.DefaultValueSortDir},
		filterByUser(userID, model.FieldRoomBookingUserID, model.RoomBookingTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room bookings")

		return res, fmt.Errorf("failed to get room bookings: %w", err)
	}

	spa, err := s.repo.GetAllSpa(ctx,
		gDto.QueryParams{SortBy: model.FieldSpaBookingDate, SortDir: constant.DefaultValueSortDir},
		filterByUser(userID, model.FieldSpaBookingUserID, model.SpaBookingTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get spa bookings")

		return res, fmt.Errorf("failed to get spa bookings: %w", err)
	}

	restaurant, err := s.repo.GetAllRestaurant(ctx,
		gDto.QueryParams{SortBy: model.FieldRestaurantBookingDate, SortDir: constant.DefaultValueSortDir},
		filterByUser(userID, model.FieldRestaurantBookingUserID, model.RestaurantBookingTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant bookings")

		return res, fmt.Errorf("failed to get restaurant bookings: %w", err)
	}

	res.Rooms = make([]dto.RoomBookingResponse, len(rooms))
	for i, booking := range rooms {
		res.Rooms[i].FromModel(booking)
	}

	res.Spa = make([]dto.SpaBookingResponse, len(spa))
	for i, booking := range spa {
		res.Spa[i].FromModel(booking)
	}

	res.Restaurant = make([]dto.RestaurantBookingResponse, len(restaurant))
	for i, booking := range restaurant {
		res.Restaurant[i].FromModel(booking)
	}

	return res, nil
}

func roomView(booking model.RoomBooking) (time.Time, dto.AdminBookingView) {
	var payload dto.RoomBookingResponse

	payload.FromModel(booking)

	return booking.CreatedAt, dto.AdminBookingView{
		BookingType: model.KindRoom,
		ID:          booking.ID,
		Status:      booking.Status,
		GuestName:   booking.GuestName,
		GuestEmail:  booking.GuestEmail,
		UserID:      booking.UserID,
		CreatedAt:   timezone.Format(booking.CreatedAt, constant.DateFormat),
		Room:        &payload,
	}
}

func spaView(booking model.SpaBooking) (time.Time, dto.AdminBookingView) {
	var payload dto.SpaBookingResponse

	payload.FromModel(booking)

	return booking.CreatedAt, dto.AdminBookingView{
		BookingType: model.KindSpa,
		ID:          booking.ID,
		Status:      booking.Status,
		GuestName:   booking.GuestName,
		GuestEmail:  booking.GuestEmail,
		UserID:      booking.UserID,
		CreatedAt:   timezone.Format(booking.CreatedAt, constant.DateFormat),
		Spa:         &payload,
	}
}

func restaurantView(booking model.RestaurantBooking) (time.Time, dto.AdminBookingView) {
	var payload dto.RestaurantBookingResponse

	payload.FromModel(booking)

	return booking.CreatedAt, dto.AdminBookingView{
		BookingType: model.KindRestaurant,
		ID:          booking.ID,
		Status:      booking.Status,
		GuestName:   booking.GuestName,
		GuestEmail:  booking.GuestEmail,
		UserID:      booking.UserID,
		CreatedAt:   timezone.Format(booking.CreatedAt, constant.DateFormat),
		Restaurant:  &payload,
	}
}

// AdminListBookings merges the three facilities into one reverse
// chronological listing. Pagination applies per facility before the merge, so
// a page holds at most three times the requested limit.
func (s *serviceImpl) AdminListBookings(ctx context.Context, params gDto.QueryParams) (res dto.GetAdminBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminListBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	rooms, err := s.repo.GetAllRooms(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get room bookings")

		return res, fmt.Errorf("failed to get room bookings: %w", err)
	}

	spa, err := s.repo.GetAllSpa(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get spa bookings")

		return res, fmt.Errorf("failed to get spa bookings: %w", err)
	}

	restaurant, err := s.repo.GetAllRestaurant(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant bookings")

		return res, fmt.Errorf("failed to get restaurant bookings: %w", err)
	}

	type row struct {
		at   time.Time
		view dto.AdminBookingView
	}

	rows := make([]row, 0, len(rooms)+len(spa)+len(restaurant))

	for _, booking := range rooms {
		at, view := roomView(booking)
		rows = append(rows, row{at: at, view: view})
	}

	for _, booking := range spa {
		at, view := spaView(booking)
		rows = append(rows, row{at: at, view: view})
	}

	for _, booking := range restaurant {
		at, view := restaurantView(booking)
		rows = append(rows, row{at: at, view: view})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].at.After(rows[j].at)
	})

	res.Bookings = make([]dto.AdminBookingView, len(rows))
	for i, r := range rows {
		res.Bookings[i] = r.view
	}

	if err = s.attachAccountIdentity(ctx, res.Bookings); err != nil {
		return res, err
	}

	totalRooms, err := s.repo.CountRooms(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count room bookings")

		return res, fmt.Errorf("failed to count room bookings: %w", err)
	}

	totalSpa, err := s.repo.CountSpa(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count spa bookings")

		return res, fmt.Errorf("failed to count spa bookings: %w", err)
	}

	totalRestaurant, err := s.repo.CountRestaurant(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count restaurant bookings")

		return res, fmt.Errorf("failed to count restaurant bookings: %w", err)
	}

	res.TotalData = totalRooms + totalSpa + totalRestaurant

	return res, nil
}

// attachAccountIdentity overlays the live account name and email on bookings
// owned by a registered user. The guest snapshot stays authoritative for
// guest checkouts and deleted accounts.
func (s *serviceImpl) attachAccountIdentity(ctx context.Context, views []dto.AdminBookingView) error {
	ids := make([]string, 0, len(views))
	seen := make(map[string]bool, len(views))

	for _, view := range views {
		if view.UserID == nil || seen[*view.UserID] {
			continue
		}

		seen[*view.UserID] = true
		ids = append(ids, *view.UserID)
	}

	if len(ids) == 0 {
		return nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldID,
				Value:    ids,
				Operator: gDto.FilterOperatorIn,
				Table:    userModel.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	users, err := s.users.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking owners")

		return fmt.Errorf("failed to get booking owners: %w", err)
	}

	byID := make(map[string]userModel.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	for i := range views {
		if views[i].UserID == nil {
			continue
		}

		user, ok := byID[*views[i].UserID]
		if !ok {
			continue
		}

		if user.FullName != nil && *user.FullName != constant.Empty {
			views[i].GuestName = *user.FullName
		}

		if user.Email != constant.Empty {
			views[i].GuestEmail = user.Email
		}
	}

	return nil
}

// UpdateStatus moves a booking to any valid lifecycle status. Transitions are
// deliberately permissive, the back office may correct a record in either
// direction.
func (s *serviceImpl) UpdateStatus(ctx context.Context, kind, id string, req dto.UpdateBookingStatusRequest) (res dto.AdminBookingView, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !model.ValidStatus(req.Status) {
		return res, failure.BadRequestFromString("invalid booking status") // nolint:wrapcheck
	}

	_, actor := identityFromContext(ctx)

	updates := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	switch kind {
	case model.KindRoom:
		return s.updateRoomStatus(ctx, id, req.Status, updates)
	case model.KindSpa:
		return s.updateSpaStatus(ctx, id, req.Status, updates)
	case model.KindRestaurant:
		return s.updateRestaurantStatus(ctx, id, req.Status, updates)
	default:
		return res, failure.BadRequestFromString("unknown booking type") // nolint:wrapcheck
	}
}

func (s *serviceImpl) updateRoomStatus(ctx context.Context, id, status string, updates map[string]any) (res dto.AdminBookingView, err error) {
	filter := shared.FilterByID(id, model.FieldRoomBookingID, model.RoomBookingTableName)

	booking, err := s.repo.GetRoom(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room booking")

		return res, fmt.Errorf("failed to get room booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updates[model.FieldRoomBookingStatus] = status

	if err = s.repo.UpdateRoom(ctx, updates, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room booking status")

		return res, fmt.Errorf("failed to update room booking status: %w", err)
	}

	booking.Status = status
	_, res = roomView(booking)

	return res, nil
}

func (s *serviceImpl) updateSpaStatus(ctx context.Context, id, status string, updates map[string]any) (res dto.AdminBookingView, err error) {
	filter := shared.FilterByID(id, model.FieldSpaBookingID, model.SpaBookingTableName)

	booking, err := s.repo.GetSpa(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get spa booking")

		return res, fmt.Errorf("failed to get spa booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updates[model.FieldSpaBookingStatus] = status

	if err = s.repo.UpdateSpa(ctx, updates, filter); err != nil {
		log.Error().Err(err).Msg("failed to update spa booking status")

		return res, fmt.Errorf("failed to update spa booking status: %w", err)
	}

	booking.Status = status
	_, res = spaView(booking)

	return res, nil
}

func (s *serviceImpl) updateRestaurantStatus(ctx context.Context, id, status string, updates map[string]any) (res dto.AdminBookingView, err error) {
	filter := shared.FilterByID(id, model.FieldRestaurantBookingID, model.RestaurantBookingTableName)

	booking, err := s.repo.GetRestaurant(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant booking")

		return res, fmt.Errorf("failed to get restaurant booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updates[model.FieldRestaurantBookingStatus] = status

	if err = s.repo.UpdateRestaurant(ctx, updates, filter); err != nil {
		log.Error().Err(err).Msg("failed to update restaurant booking status")

		return res, fmt.Errorf("failed to update restaurant booking status: %w", err)
	}

	booking.Status = status
	_, res = restaurantView(booking)

	return res, nil
}
