package dto

import (
	"time"

	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/model"
	"github.com/BenlahcenSoufiane/AzurHotel/shared"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/constant"
	gDto "github.com/BenlahcenSoufiane/AzurHotel/shared/dto"
	gModel "github.com/BenlahcenSoufiane/AzurHotel/shared/model"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/timezone"

	"github.com/google/uuid"
)

func newMetadata(actor string) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  actor,
		ModifiedBy: actor,
	}
}

// optionalText maps an omitted form field to NULL rather than an empty string.
func optionalText(value string) *string {
	if value == constant.Empty {
		return nil
	}

	return &value
}

// CreateRoomBookingRequest reserves one room of a type for a stay. Dates use
// the YYYY-MM-DD calendar form; check_out is the morning the guest leaves, so
// the night of check_out itself is not occupied.
type CreateRoomBookingRequest struct {
	RoomTypeID      string `json:"room_type_id"     validate:"required"`
	GuestName       string `json:"guest_name"       validate:"required,max=100"`
	GuestEmail      string `json:"guest_email"      validate:"required,email"`
	GuestPhone      string `json:"guest_phone"      validate:"omitempty,max=30"`
	CheckIn         string `json:"check_in"         validate:"required,datetime=2006-01-02"`
	CheckOut        string `json:"check_out"        validate:"required,datetime=2006-01-02"`
	Adults          int    `json:"adults"           validate:"required,min=1"`
	Children        int    `json:"children"         validate:"min=0"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

func (c *CreateRoomBookingRequest) ToModel(userID *string, actor string, checkIn, checkOut time.Time, totalPrice int) model.RoomBooking {
	return model.RoomBooking{
		ID:              uuid.NewString(),
		UserID:          userID,
		RoomTypeID:      c.RoomTypeID,
		GuestName:       c.GuestName,
		GuestEmail:      c.GuestEmail,
		GuestPhone:      optionalText(c.GuestPhone),
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          c.Adults,
		Children:        c.Children,
		SpecialRequests: optionalText(c.SpecialRequests),
		TotalPrice:      totalPrice,
		Status:          model.StatusConfirmed,
		Metadata:        newMetadata(actor),
	}
}

type CreateSpaBookingRequest struct {
	ServiceID       string `json:"service_id"       validate:"required"`
	GuestName       string `json:"guest_name"       validate:"required,max=100"`
	GuestEmail      string `json:"guest_email"      validate:"required,email"`
	GuestPhone      string `json:"guest_phone"      validate:"omitempty,max=30"`
	Date            string `json:"date"             validate:"required,datetime=2006-01-02"`
	TimeSlot        string `json:"time_slot"        validate:"required,max=20"`
	Participants    int    `json:"participants"     validate:"required,min=1"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

func (c *CreateSpaBookingRequest) ToModel(userID *string, actor string, date time.Time, totalPrice int) model.SpaBooking {
	return model.SpaBooking{
		ID:              uuid.NewString(),
		UserID:          userID,
		ServiceID:       c.ServiceID,
		GuestName:       c.GuestName,
		GuestEmail:      c.GuestEmail,
		GuestPhone:      optionalText(c.GuestPhone),
		Date:            date,
		TimeSlot:        c.TimeSlot,
		Participants:    c.Participants,
		SpecialRequests: optionalText(c.SpecialRequests),
		TotalPrice:      totalPrice,
		Status:          model.StatusConfirmed,
		Metadata:        newMetadata(actor),
	}
}

type CreateRestaurantBookingRequest struct {
	GuestName       string `json:"guest_name"       validate:"required,max=100"`
	GuestEmail      string `json:"guest_email"      validate:"required,email"`
	GuestPhone      string `json:"guest_phone"      validate:"omitempty,max=30"`
	Date            string `json:"date"             validate:"required,datetime=2006-01-02"`
	TimeSlot        string `json:"time_slot"        validate:"required,max=20"`
	MealPeriod      string `json:"meal_period"      validate:"required,oneof=breakfast lunch dinner"`
	PartySize       int    `json:"party_size"       validate:"required,min=1"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

func (c *CreateRestaurantBookingRequest) ToModel(userID *string, actor string, date time.Time) model.RestaurantBooking {
	return model.RestaurantBooking{
		ID:              uuid.NewString(),
		UserID:          userID,
		GuestName:       c.GuestName,
		GuestEmail:      c.GuestEmail,
		GuestPhone:      optionalText(c.GuestPhone),
		Date:            date,
		TimeSlot:        c.TimeSlot,
		MealPeriod:      c.MealPeriod,
		PartySize:       c.PartySize,
		SpecialRequests: optionalText(c.SpecialRequests),
		Status:          model.StatusConfirmed,
		Metadata:        newMetadata(actor),
	}
}

// Availability decisions. NotFound means the referenced catalog entry does
// not exist or is inactive, Unavailable means it exists but the capacity for
// the requested window is exhausted.
const (
	DecisionAvailable   = "available"
	DecisionUnavailable = "unavailable"
	DecisionNotFound    = "not_found"
)

type RoomAvailabilityRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required"`
	CheckIn    string `json:"check_in"     validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out"    validate:"required,datetime=2006-01-02"`
}

type SpaAvailabilityRequest struct {
	ServiceID string `json:"service_id" validate:"required"`
	Date      string `json:"date"       validate:"required,datetime=2006-01-02"`
	TimeSlot  string `json:"time_slot"  validate:"required,max=20"`
}

type RestaurantAvailabilityRequest struct {
	Date       string `json:"date"        validate:"required,datetime=2006-01-02"`
	TimeSlot   string `json:"time_slot"   validate:"required,max=20"`
	MealPeriod string `json:"meal_period" validate:"required,oneof=breakfast lunch dinner"`
	PartySize  int    `json:"party_size"  validate:"required,min=1"`
}

// Remaining is only meaningful when Decision is available or unavailable.
type AvailabilityResponse struct {
	Decision  string `json:"decision"`
	Remaining int    `json:"remaining"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed checked-in completed cancelled"`
}

type RoomBookingResponse struct {
	ID              string  `json:"id"`
	UserID          *string `json:"user_id,omitempty"`
	RoomTypeID      string  `json:"room_type_id"`
	GuestName       string  `json:"guest_name"`
	GuestEmail      string  `json:"guest_email"`
	GuestPhone      *string `json:"guest_phone,omitempty"`
	CheckIn         string  `json:"check_in"`
	CheckOut        string  `json:"check_out"`
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	SpecialRequests *string `json:"special_requests,omitempty"`
	TotalPrice      int     `json:"total_price"`
	Status          string  `json:"status"`
	gDto.Metadata
}

func (r *RoomBookingResponse) FromModel(model model.RoomBooking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.RoomTypeID = model.RoomTypeID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.CheckIn = timezone.Format(model.CheckIn, constant.DateOnlyFormat)
	r.CheckOut = timezone.Format(model.CheckOut, constant.DateOnlyFormat)
	r.Adults = model.Adults
	r.Children = model.Children
	r.SpecialRequests = model.SpecialRequests
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type SpaBookingResponse struct {
	ID              string  `json:"id"`
	UserID          *string `json:"user_id,omitempty"`
	ServiceID       string  `json:"service_id"`
	GuestName       string  `json:"guest_name"`
	GuestEmail      string  `json:"guest_email"`
	GuestPhone      *string `json:"guest_phone,omitempty"`
	Date            string  `json:"date"`
	TimeSlot        string  `json:"time_slot"`
	Participants    int     `json:"participants"`
	SpecialRequests *string `json:"special_requests,omitempty"`
	TotalPrice      int     `json:"total_price"`
	Status          string  `json:"status"`
	gDto.Metadata
}

func (r *SpaBookingResponse) FromModel(model model.SpaBooking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.ServiceID = model.ServiceID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.Date = timezone.Format(model.Date, constant.DateOnlyFormat)
	r.TimeSlot = model.TimeSlot
	r.Participants = model.Participants
	r.SpecialRequests = model.SpecialRequests
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type RestaurantBookingResponse struct {
	ID              string  `json:"id"`
	UserID          *string `json:"user_id,omitempty"`
	GuestName       string  `json:"guest_name"`
	GuestEmail      string  `json:"guest_email"`
	GuestPhone      *string `json:"guest_phone,omitempty"`
	Date            string  `json:"date"`
	TimeSlot        string  `json:"time_slot"`
	MealPeriod      string  `json:"meal_period"`
	PartySize       int     `json:"party_size"`
	SpecialRequests *string `json:"special_requests,omitempty"`
	Status          string  `json:"status"`
	gDto.Metadata
}

func (r *RestaurantBookingResponse) FromModel(model model.RestaurantBooking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.Date = timezone.Format(model.Date, constant.DateOnlyFormat)
	r.TimeSlot = model.TimeSlot
	r.MealPeriod = model.MealPeriod
	r.PartySize = model.PartySize
	r.SpecialRequests = model.SpecialRequests
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomBookingsResponse struct {
	Bookings  []RoomBookingResponse `json:"bookings"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetRoomBookingsResponse) FromModels(models []model.RoomBooking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]RoomBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type GetSpaBookingsResponse struct {
	Bookings  []SpaBookingResponse `json:"bookings"`
	TotalPage int                  `json:"total_page"`
	TotalData int                  `json:"total_data"`
}

func (r *GetSpaBookingsResponse) FromModels(models []model.SpaBooking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]SpaBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type GetRestaurantBookingsResponse struct {
	Bookings  []RestaurantBookingResponse `json:"bookings"`
	TotalPage int                         `json:"total_page"`
	TotalData int                         `json:"total_data"`
}

func (r *GetRestaurantBookingsResponse) FromModels(models []model.RestaurantBooking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]RestaurantBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// MyBookingsResponse groups the caller's reservations per facility. Rooms are
// ordered by check-in date descending, spa and restaurant by date descending.
type MyBookingsResponse struct {
	Rooms      []RoomBookingResponse       `json:"rooms"`
	Spa        []SpaBookingResponse        `json:"spa"`
	Restaurant []RestaurantBookingResponse `json:"restaurant"`
}

// AdminBookingView is one row of the cross-facility admin listing. Exactly
// one of the kind payloads is set, matching BookingType.
type AdminBookingView struct {
	BookingType string  `json:"booking_type"`
	ID          string  `json:"id"`
	Status      string  `json:"status"`
	GuestName   string  `json:"guest_name"`
	GuestEmail  string  `json:"guest_email"`
	UserID      *string `json:"user_id,omitempty"`
	CreatedAt   string  `json:"created_at"`

	Room       *RoomBookingResponse       `json:"room,omitempty"`
	Spa        *SpaBookingResponse        `json:"spa,omitempty"`
	Restaurant *RestaurantBookingResponse `json:"restaurant,omitempty"`
}

type GetAdminBookingsResponse struct {
	Bookings  []AdminBookingView `json:"bookings"`
	TotalData int                `json:"total_data"`
}
