package dto

import (
	"strings"

	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/model"
	"github.com/BenlahcenSoufiane/AzurHotel/shared"
	gDto "github.com/BenlahcenSoufiane/AzurHotel/shared/dto"
	gModel "github.com/BenlahcenSoufiane/AzurHotel/shared/model"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/timezone"

	"github.com/google/uuid"
)

const amenitiesSeparator = ","

func joinAmenities(amenities []string) string {
	trimmed := make([]string, 0, len(amenities))
	for _, amenity := range amenities {
		if a := strings.TrimSpace(amenity); a != "" {
			trimmed = append(trimmed, a)
		}
	}

	return strings.Join(trimmed, amenitiesSeparator)
}

func splitAmenities(amenities string) []string {
	if amenities == "" {
		return []string{}
	}

	return strings.Split(amenities, amenitiesSeparator)
}

func newMetadata(user string) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

type CreateRoomTypeRequest struct {
	Name          string   `json:"name"            validate:"required,max=100"`
	Description   string   `json:"description"     validate:"omitempty,max=2000"`
	PricePerNight int      `json:"price_per_night" validate:"required,min=1"`
	Capacity      int      `json:"capacity"        validate:"required,min=1"`
	Size          string   `json:"size"            validate:"omitempty,max=50"`
	Amenities     []string `json:"amenities"       validate:"omitempty,dive,max=100"`
	Image         string   `json:"image"           validate:"omitempty,max=500"`
	Active        *bool    `json:"active"          validate:"omitempty"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.RoomType{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Description:   c.Description,
		PricePerNight: c.PricePerNight,
		Capacity:      c.Capacity,
		Size:          c.Size,
		Amenities:     joinAmenities(c.Amenities),
		Image:         c.Image,
		Active:        active,
		Metadata:      newMetadata(user),
	}
}

type UpdateRoomTypeRequest struct {
	Name          string `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Description   string `db:"description"     json:"description"     validate:"omitempty,max=2000"`
	PricePerNight *int   `db:"price_per_night" json:"price_per_night" validate:"omitempty,min=1"`
	Capacity      *int   `db:"capacity"        json:"capacity"        validate:"omitempty,min=1"`
	Size          string `db:"size"            json:"size"            validate:"omitempty,max=50"`
	Image         string `db:"image"           json:"image"           validate:"omitempty,max=500"`
	Active        *bool  `db:"active"          json:"active"          validate:"omitempty"`
}

type RoomTypeResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PricePerNight int      `json:"price_per_night"`
	Capacity      int      `json:"capacity"`
	Size          string   `json:"size"`
	Amenities     []string `json:"amenities"`
	Image         string   `json:"image"`
	Active        bool     `json:"active"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.PricePerNight = model.PricePerNight
	r.Capacity = model.Capacity
	r.Size = model.Size
	r.Amenities = splitAmenities(model.Amenities)
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}

type CreateSpaServiceRequest struct {
	Name            string `json:"name"             validate:"required,max=100"`
	Description     string `json:"description"      validate:"omitempty,max=2000"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=1"`
	Price           int    `json:"price"            validate:"required,min=1"`
	Image           string `json:"image"            validate:"omitempty,max=500"`
	Active          *bool  `json:"active"           validate:"omitempty"`
}

func (c *CreateSpaServiceRequest) ToModel(user string) model.SpaService {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.SpaService{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Description:     c.Description,
		DurationMinutes: c.DurationMinutes,
		Price:           c.Price,
		Image:           c.Image,
		Active:          active,
		Metadata:        newMetadata(user),
	}
}

type UpdateSpaServiceRequest struct {
	Name            string `db:"name"             json:"name"             validate:"omitempty,max=100"`
	Description     string `db:"description"      json:"description"      validate:"omitempty,max=2000"`
	DurationMinutes *int   `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,min=1"`
	Price           *int   `db:"price"            json:"price"            validate:"omitempty,min=1"`
	Image           string `db:"image"            json:"image"            validate:"omitempty,max=500"`
	Active          *bool  `db:"active"           json:"active"           validate:"omitempty"`
}

type SpaServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           int    `json:"price"`
	Image           string `json:"image"`
	Active          bool   `json:"active"`
	gDto.Metadata
}

func (r *SpaServiceResponse) FromModel(model model.SpaService) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.DurationMinutes = model.DurationMinutes
	r.Price = model.Price
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetSpaServicesResponse struct {
	SpaServices []SpaServiceResponse `json:"spa_services"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetSpaServicesResponse) FromModels(models []model.SpaService, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.SpaServices = make([]SpaServiceResponse, len(models))
	for i, mod := range models {
		r.SpaServices[i].FromModel(mod)
	}
}

type CreateRestaurantMenuRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Price       int    `json:"price"       validate:"required,min=1"`
	Category    string `json:"category"    validate:"omitempty,max=50"`
	Image       string `json:"image"       validate:"omitempty,max=500"`
	Active      *bool  `json:"active"      validate:"omitempty"`
}

func (c *CreateRestaurantMenuRequest) ToModel(user string) model.RestaurantMenu {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.RestaurantMenu{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		Category:    c.Category,
		Image:       c.Image,
		Active:      active,
		Metadata:    newMetadata(user),
	}
}

type UpdateRestaurantMenuRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=2000"`
	Price       *int   `db:"price"       json:"price"       validate:"omitempty,min=1"`
	Category    string `db:"category"    json:"category"    validate:"omitempty,max=50"`
	Image       string `db:"image"       json:"image"       validate:"omitempty,max=500"`
	Active      *bool  `db:"active"      json:"active"      validate:"omitempty"`
}

type RestaurantMenuResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *RestaurantMenuResponse) FromModel(model model.RestaurantMenu) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.Category = model.Category
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRestaurantMenusResponse struct {
	Menus     []RestaurantMenuResponse `json:"menus"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

func (r *GetRestaurantMenusResponse) FromModels(models []model.RestaurantMenu, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Menus = make([]RestaurantMenuResponse, len(models))
	for i, mod := range models {
		r.Menus[i].FromModel(mod)
	}
}
