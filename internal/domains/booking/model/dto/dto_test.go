package dto_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/model/dto"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/failure"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/validator"
)

func TestCreateRoomBookingRequest_RoundTrip(t *testing.T) {
	body := `{
		"room_type_id": "rt-1",
		"guest_name": "Jordan Miles",
		"guest_email": "jordan@example.com",
		"check_in": "2026-09-10",
		"check_out": "2026-09-13",
		"adults": 2,
		"children": 1,
		"special_requests": "sea view please"
	}`

	req := dto.CreateRoomBookingRequest{}

	err := validator.Validate(strings.NewReader(body), &req)
	assert.NoError(t, err)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

	booking := req.ToModel(nil, "guest", checkIn, checkOut, 450)

	assert.Equal(t, 2, booking.Adults)
	assert.Equal(t, 1, booking.Children)
	if assert.NotNil(t, booking.SpecialRequests) {
		assert.Equal(t, "sea view please", *booking.SpecialRequests)
	}
	assert.Nil(t, booking.GuestPhone)

	res := dto.RoomBookingResponse{}
	res.FromModel(booking)

	assert.Equal(t, 2, res.Adults)
	assert.Equal(t, 1, res.Children)
	if assert.NotNil(t, res.SpecialRequests) {
		assert.Equal(t, "sea view please", *res.SpecialRequests)
	}
	assert.Nil(t, res.GuestPhone)
}

func TestCreateRoomBookingRequest_Validation(t *testing.T) {
	valid := func() dto.CreateRoomBookingRequest {
		return dto.CreateRoomBookingRequest{
			RoomTypeID: "rt-1",
			GuestName:  "Jordan Miles",
			GuestEmail: "jordan@example.com",
			CheckIn:    "2026-09-10",
			CheckOut:   "2026-09-13",
			Adults:     2,
		}
	}

	tests := []struct {
		name    string
		mutate  func(req *dto.CreateRoomBookingRequest)
		wantErr bool
	}{
		{
			name:   "phone and special requests are optional",
			mutate: func(req *dto.CreateRoomBookingRequest) {},
		},
		{
			name: "children default to zero",
			mutate: func(req *dto.CreateRoomBookingRequest) {
				req.Children = 0
			},
		},
		{
			name: "at least one adult is required",
			mutate: func(req *dto.CreateRoomBookingRequest) {
				req.Adults = 0
			},
			wantErr: true,
		},
		{
			name: "children cannot be negative",
			mutate: func(req *dto.CreateRoomBookingRequest) {
				req.Children = -1
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCreateSpaBookingRequest_RoundTrip(t *testing.T) {
	req := dto.CreateSpaBookingRequest{
		ServiceID:       "spa-1",
		GuestName:       "Jordan Miles",
		GuestEmail:      "jordan@example.com",
		GuestPhone:      "+33612345678",
		Date:            "2026-09-10",
		TimeSlot:        "10:00",
		Participants:    2,
		SpecialRequests: "low table please",
	}

	assert.NoError(t, validator.ValidateStruct(&req))

	booking := req.ToModel(nil, "guest", time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), 180)

	if assert.NotNil(t, booking.SpecialRequests) {
		assert.Equal(t, "low table please", *booking.SpecialRequests)
	}
	if assert.NotNil(t, booking.GuestPhone) {
		assert.Equal(t, "+33612345678", *booking.GuestPhone)
	}

	res := dto.SpaBookingResponse{}
	res.FromModel(booking)

	assert.Equal(t, booking.SpecialRequests, res.SpecialRequests)
	assert.Equal(t, booking.GuestPhone, res.GuestPhone)
}

func TestCreateRestaurantBookingRequest_RoundTrip(t *testing.T) {
	req := dto.CreateRestaurantBookingRequest{
		GuestName:       "Jordan Miles",
		GuestEmail:      "jordan@example.com",
		Date:            "2026-09-10",
		TimeSlot:        "19:00",
		MealPeriod:      "dinner",
		PartySize:       4,
		SpecialRequests: "window seat",
	}

	assert.NoError(t, validator.ValidateStruct(&req))

	booking := req.ToModel(nil, "guest", time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))

	if assert.NotNil(t, booking.SpecialRequests) {
		assert.Equal(t, "window seat", *booking.SpecialRequests)
	}
	assert.Nil(t, booking.GuestPhone)

	res := dto.RestaurantBookingResponse{}
	res.FromModel(booking)

	assert.Equal(t, booking.SpecialRequests, res.SpecialRequests)
	assert.Nil(t, res.GuestPhone)
}
