package model

import "github.com/BenlahcenSoufiane/AzurHotel/shared/model"

const (
	RoomTypeTableName  = "room_types"
	RoomTypeEntityName = "room_type"

	FieldRoomTypeID            = "id"
	FieldRoomTypeName          = "name"
	FieldRoomTypeDescription   = "description"
	FieldRoomTypePricePerNight = "price_per_night"
	FieldRoomTypeCapacity      = "capacity"
	FieldRoomTypeSize          = "size"
	FieldRoomTypeAmenities     = "amenities"
	FieldRoomTypeImage         = "image"
	FieldRoomTypeActive        = "active"
)

// RoomType is a bookable room category. Capacity is the number of guests a
// single room accommodates, not the number of physical rooms.
type RoomType struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	Description   string `db:"description"`
	PricePerNight int    `db:"price_per_night"`
	Capacity      int    `db:"capacity"`
	Size          string `db:"size"`
	Amenities     string `db:"amenities"`
	Image         string `db:"image"`
	Active        bool   `db:"active"`
	model.Metadata
}

const (
	SpaServiceTableName  = "spa_services"
	SpaServiceEntityName = "spa_service"

	FieldSpaServiceID              = "id"
	FieldSpaServiceName            = "name"
	FieldSpaServiceDescription     = "description"
	FieldSpaServiceDurationMinutes = "duration_minutes"
	FieldSpaServicePrice           = "price"
	FieldSpaServiceImage           = "image"
	FieldSpaServiceActive          = "active"
)

type SpaService struct {
	ID              string `db:"id"`
	Name            string `db:"name"`
	Description     string `db:"description"`
	DurationMinutes int    `db:"duration_minutes"`
	Price           int    `db:"price"`
	Image           string `db:"image"`
	Active          bool   `db:"active"`
	model.Metadata
}

const (
	RestaurantMenuTableName  = "restaurant_menus"
	RestaurantMenuEntityName = "restaurant_menu"

	FieldRestaurantMenuID          = "id"
	FieldRestaurantMenuName        = "name"
	FieldRestaurantMenuDescription = "description"
	FieldRestaurantMenuPrice       = "price"
	FieldRestaurantMenuCategory    = "category"
	FieldRestaurantMenuImage       = "image"
	FieldRestaurantMenuActive      = "active"
)

// RestaurantMenu rows are informational; table reservations never reference a
// menu item.
type RestaurantMenu struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Price       int    `db:"price"`
	Category    string `db:"category"`
	Image       string `db:"image"`
	Active      bool   `db:"active"`
	model.Metadata
}
