package model

import (
	"time"

	"github.com/BenlahcenSoufiane/AzurHotel/shared/model"
)

// Booking lifecycle statuses. Values are part of the external contract and
// must never be renamed.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCheckedIn = "checked-in"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Restaurant meal periods.
const (
	MealPeriodBreakfast = "breakfast"
	MealPeriodLunch     = "lunch"
	MealPeriodDinner    = "dinner"
)

// Booking kinds used by the aggregate admin listing and the status endpoints.
const (
	KindRoom       = "room"
	KindSpa        = "spa"
	KindRestaurant = "restaurant"
)

const (
	RoomBookingTableName  = "room_bookings"
	RoomBookingEntityName = "room_booking"

	FieldRoomBookingID              = "id"
	FieldRoomBookingUserID          = "user_id"
	FieldRoomBookingRoomTypeID      = "room_type_id"
	FieldRoomBookingGuestName       = "guest_name"
	FieldRoomBookingGuestEmail      = "guest_email"
	FieldRoomBookingGuestPhone      = "guest_phone"
	FieldRoomBookingCheckIn         = "check_in"
	FieldRoomBookingCheckOut        = "check_out"
	FieldRoomBookingAdults          = "adults"
	FieldRoomBookingChildren        = "children"
	FieldRoomBookingSpecialRequests = "special_requests"
	FieldRoomBookingTotalPrice      = "total_price"
	FieldRoomBookingStatus          = "status"
)

// RoomBooking occupies one room of its type for the half-open interval
// [check_in, check_out). UserID is nil for guest checkouts.
type RoomBooking struct {
	ID              string    `db:"id"`
	UserID          *string   `db:"user_id"`
	RoomTypeID      string    `db:"room_type_id"`
	GuestName       string    `db:"guest_name"`
	GuestEmail      string    `db:"guest_email"`
	GuestPhone      *string   `db:"guest_phone"`
	CheckIn         time.Time `db:"check_in"`
	CheckOut        time.Time `db:"check_out"`
	Adults          int       `db:"adults"`
	Children        int       `db:"children"`
	SpecialRequests *string   `db:"special_requests"`
	TotalPrice      int       `db:"total_price"`
	Status          string    `db:"status"`
	model.Metadata
}

const (
	SpaBookingTableName  = "spa_bookings"
	SpaBookingEntityName = "spa_booking"

	FieldSpaBookingID              = "id"
	FieldSpaBookingUserID          = "user_id"
	FieldSpaBookingServiceID       = "service_id"
	FieldSpaBookingGuestName       = "guest_name"
	FieldSpaBookingGuestEmail      = "guest_email"
	FieldSpaBookingGuestPhone      = "guest_phone"
	FieldSpaBookingDate            = "date"
	FieldSpaBookingTimeSlot        = "time_slot"
	FieldSpaBookingParticipants    = "participants"
	FieldSpaBookingSpecialRequests = "special_requests"
	FieldSpaBookingTotalPrice      = "total_price"
	FieldSpaBookingStatus          = "status"
)

// SpaBooking reserves one treatment session. A session is identified by the
// service, the calendar date and the exact time slot label.
type SpaBooking struct {
	ID              string    `db:"id"`
	UserID          *string   `db:"user_id"`
	ServiceID       string    `db:"service_id"`
	GuestName       string    `db:"guest_name"`
	GuestEmail      string    `db:"guest_email"`
	GuestPhone      *string   `db:"guest_phone"`
	Date            time.Time `db:"date"`
	TimeSlot        string    `db:"time_slot"`
	Participants    int       `db:"participants"`
	SpecialRequests *string   `db:"special_requests"`
	TotalPrice      int       `db:"total_price"`
	Status          string    `db:"status"`
	model.Metadata
}

const (
	RestaurantBookingTableName  = "restaurant_bookings"
	RestaurantBookingEntityName = "restaurant_booking"

	FieldRestaurantBookingID              = "id"
	FieldRestaurantBookingUserID          = "user_id"
	FieldRestaurantBookingGuestName       = "guest_name"
	FieldRestaurantBookingGuestEmail      = "guest_email"
	FieldRestaurantBookingGuestPhone      = "guest_phone"
	FieldRestaurantBookingDate            = "date"
	FieldRestaurantBookingTimeSlot        = "time_slot"
	FieldRestaurantBookingMealPeriod      = "meal_period"
	FieldRestaurantBookingPartySize       = "party_size"
	FieldRestaurantBookingSpecialRequests = "special_requests"
	FieldRestaurantBookingStatus          = "status"
)

// RestaurantBooking holds seats against the shared dining-room capacity for
// the date, time slot and meal period triple.
type RestaurantBooking struct {
	ID              string    `db:"id"`
	UserID          *string   `db:"user_id"`
	GuestName       string    `db:"guest_name"`
	GuestEmail      string    `db:"guest_email"`
	GuestPhone      *string   `db:"guest_phone"`
	Date            time.Time `db:"date"`
	TimeSlot        string    `db:"time_slot"`
	MealPeriod      string    `db:"meal_period"`
	PartySize       int       `db:"party_size"`
	SpecialRequests *string   `db:"special_requests"`
	Status          string    `db:"status"`
	model.Metadata
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
