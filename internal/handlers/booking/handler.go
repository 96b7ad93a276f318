package booking

import (
	"net/http"
	"strconv"

	"github.com/BenlahcenSoufiane/AzurHotel/infras/otel"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/model/dto"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/service"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/constant"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/validator"
	"github.com/BenlahcenSoufiane/AzurHotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Get("/rooms/availability", handler.CheckRoomAvailability)
		r.Get("/spa/availability", handler.CheckSpaAvailability)
		r.Get("/restaurant/availability", handler.CheckRestaurantAvailability)

		r.Post("/rooms", handler.CreateRoomBooking)
		r.Post("/spa", handler.CreateSpaBooking)
		r.Post("/restaurant", handler.CreateRestaurantBooking)

		r.Get("/my", handler.MyBookings)

		r.Get("/rooms/{id}", handler.GetRoomBooking)
		r.Get("/spa/{id}", handler.GetSpaBooking)
		r.Get("/restaurant/{id}", handler.GetRestaurantBooking)
	})
}

// CheckRoomAvailability probes room inventory for a stay
// @Summary Check room availability
// @Description Check whether a room of the given type is free for the half-open [check_in, check_out) stay.
// @Tags Booking
// @Produce json
// @Param room_type_id query string true "Room Type ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/rooms/availability [get]
func (handler *Handler) CheckRoomAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckRoomAvailability")
	defer scope.End()

	query := r.URL.Query()
	req := dto.RoomAvailabilityRequest{
		RoomTypeID: query.Get("room_type_id"),
		CheckIn:    query.Get("check_in"),
		CheckOut:   query.Get("check_out"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckRoomAvailability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check room availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CheckSpaAvailability probes spa session capacity
// @Summary Check spa availability
// @Description Check whether a spa session has an opening for the date and time slot.
// @Tags Booking
// @Produce json
// @Param service_id query string true "Spa Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time_slot query string true "Time slot label"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/spa/availability [get]
func (handler *Handler) CheckSpaAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckSpaAvailability")
	defer scope.End()

	query := r.URL.Query()
	req := dto.SpaAvailabilityRequest{
		ServiceID: query.Get("service_id"),
		Date:      query.Get("date"),
		TimeSlot:  query.Get("time_slot"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckSpaAvailability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check spa availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CheckRestaurantAvailability probes dining-room seat capacity
// @Summary Check restaurant availability
// @Description Check whether the dining room can seat the party for the date, slot and meal period.
// @Tags Booking
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time_slot query string true "Time slot label"
// @Param meal_period query string true "Meal period (breakfast, lunch, dinner)"
// @Param party_size query int true "Party size"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/restaurant/availability [get]
func (handler *Handler) CheckRestaurantAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckRestaurantAvailability")
	defer scope.End()

	query := r.URL.Query()
	partySize, _ := strconv.Atoi(query.Get("party_size"))

	req := dto.RestaurantAvailabilityRequest{
		Date:       query.Get("date"),
		TimeSlot:   query.Get("time_slot"),
		MealPeriod: query.Get("meal_period"),
		PartySize:  partySize,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckRestaurantAvailability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check restaurant availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateRoomBooking reserves a room
// @Summary Book a room
// @Description Reserve one room of the requested type. Works for guests, a valid bearer token associates the booking with the account.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomBookingRequest true "Create Room Booking Request"
// @Success 201 {object} dto.RoomBookingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/rooms [post]
func (handler *Handler) CreateRoomBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomBooking")
	defer scope.End()

	req := dto.CreateRoomBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateRoomBooking(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room booked successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// CreateSpaBooking reserves a spa session
// @Summary Book a spa session
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateSpaBookingRequest true "Create Spa Booking Request"
// @Success 201 {object} dto.SpaBookingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/spa [post]
func (handler *Handler) CreateSpaBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSpaBooking")
	defer scope.End()

	req := dto.CreateSpaBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateSpaBooking(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create spa booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Spa session booked successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// CreateRestaurantBooking reserves a table
// @Summary Book a table
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateRestaurantBookingRequest true "Create Restaurant Booking Request"
// @Success 201 {object} dto.RestaurantBookingResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/restaurant [post]
func (handler *Handler) CreateRestaurantBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRestaurantBooking")
	defer scope.End()

	req := dto.CreateRestaurantBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateRestaurantBooking(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create restaurant booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table booked successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// MyBookings lists the caller's reservations
// @Summary List my bookings
// @Description List every reservation owned by the authenticated user, grouped per facility.
// @Tags Booking
// @Produce json
// @Success 200 {object} dto.MyBookingsResponse
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/my [get]
// @Security BearerAuth
func (handler *Handler) MyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MyBookings")
	defer scope.End()

	res, err := handler.service.MyBookings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRoomBooking fetches a room booking by id
// @Summary Get a room booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.RoomBookingResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/rooms/{id} [get]
func (handler *Handler) GetRoomBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomBooking")
	defer scope.End()

	res, err := handler.service.GetRoomBooking(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetSpaBooking fetches a spa booking by id
// @Summary Get a spa booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.SpaBookingResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/spa/{id} [get]
func (handler *Handler) GetSpaBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSpaBooking")
	defer scope.End()

	res, err := handler.service.GetSpaBooking(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get spa booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRestaurantBooking fetches a restaurant booking by id
// @Summary Get a restaurant booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.RestaurantBookingResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/restaurant/{id} [get]
func (handler *Handler) GetRestaurantBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurantBooking")
	defer scope.End()

	res, err := handler.service.GetRestaurantBooking(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get restaurant booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
