package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/BenlahcenSoufiane/AzurHotel/config"
	"github.com/BenlahcenSoufiane/AzurHotel/infras/otel/mocks"
	bookingMocks "github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/mocks"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/model/dto"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/service"
	catalogMocks "github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/mocks"
	catalogModel "github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/model"
	notifierMocks "github.com/BenlahcenSoufiane/AzurHotel/internal/domains/notification/mocks"
	userMocks "github.com/BenlahcenSoufiane/AzurHotel/internal/domains/user/mocks"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/failure"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Booking.RoomsPerType = 3
	cfg.Booking.SpaSessionsPerSlot = 3
	cfg.Booking.RestaurantSeats = 50
	cfg.Booking.SpaServiceFee = 20

	return cfg
}

func activeRoomType() catalogModel.RoomType {
	return catalogModel.RoomType{
		ID:            "rt-1",
		Name:          "Deluxe Sea View",
		PricePerNight: 150,
		Capacity:      2,
		Active:        true,
	}
}

func activeSpaService() catalogModel.SpaService {
	return catalogModel.SpaService{
		ID:              "spa-1",
		Name:            "Hot Stone Massage",
		DurationMinutes: 60,
		Price:           80,
		Active:          true,
	}
}

func TestBookingService_CheckRoomAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCatalog := catalogMocks.NewMockCatalog(ctrl)
	mockUsers := userMocks.NewMockUser(ctrl)
	mockNotifier := notifierMocks.NewMockNotifier(ctrl)

	svc := service.New(mockRepo, mockCatalog, mockUsers, mockNotifier, newTestConfig(), mocks.NewOtel())

	tests := []struct {
		name         string
		req          dto.RoomAvailabilityRequest
		setupMock    func()
		wantErr      bool
		wantCode     int
		wantDecision string
		wantLeft     int
	}{
		{
			name: "available with remaining rooms",
			req:  dto.RoomAvailabilityRequest{RoomTypeID: "rt-1", CheckIn: "2026-09-10", CheckOut: "2026-09-12"},
			setupMock: func() {
				mockCatalog.EXPECT().GetRoomType(gomock.Any(), gomock.Any()).Return(activeRoomType(), nil)
				mockRepo.EXPECT().CountRoomOverlaps(gomock.Any(), "rt-1", gomock.Any(), gomock.Any()).Return(1, nil)
			},
			wantDecision: dto.DecisionAvailable,
			wantLeft:     2,
		},
		{
			name: "unavailable when all rooms overlap",
			req:  dto.RoomAvailabilityRequest{RoomTypeID: "rt-1", CheckIn: "2026-09-10", CheckOut: "2026-09-12"},
			setupMock: func() {
				mockCatalog.EXPECT().GetRoomType(gomock.Any(), gomock.Any()).Return(activeRoomType(), nil)
				mockRepo.EXPECT().CountRoomOverlaps(gomock.Any(), "rt-1", gomock.Any(), gomock.Any()).Return(3, nil)
			},
			wantDecision: dto.DecisionUnavailable,
		},
		{
			name: "not found for unknown room type",
			req:  dto.RoomAvailabilityRequest{RoomTypeID: "nope", CheckIn: "2026-09-10", CheckOut: "2026-09-12"},
			setupMock: func() {
				mockCatalog.EXPECT().GetRoomType(gomock.Any(), gomock.Any()).Return(catalogModel.RoomType{}, nil)
			},
			wantDecision: dto.DecisionNotFound,
		},
		{
			name: "not found for inactive room type",
			req:  dto.RoomAvailabilityRequest{RoomTypeID: "rt-1", CheckIn: "2026-09-10", CheckOut: "2026-09-12"},
			setupMock: func() {
				inactive := activeRoomType()
				inactive.Active = false

				mockCatalog.EXPECT().GetRoomType(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantDecision: dto.DecisionNotFound,
		},
		{
			name:      "rejects zero-night stay",
			req:       dto.RoomAvailabilityRequest{RoomTypeID: "rt-1", CheckIn: "2026-09-10", CheckOut: "2026-09-10"},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:      "rejects inverted dates",
			req:       dto.RoomAvailabilityRequest{RoomTypeID: "rt-1", CheckIn: "2026-09-12", CheckOut: "2026-09-10"},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.CheckRoomAvailability(context.Background(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantDecision, res.Decision)

			if tt.wantLeft > 0 {
				assert.Equal(t, tt.wantLeft, res.Remaining)
			}
		})
	}
}

func TestBookingService_CheckSpaAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCatalog := catalogMocks.NewMockCatalog(ctrl)
	mockUsers := userMocks.NewMockUser(ctrl)
	mockNotifier := notifierMocks.NewMockNotifier(ctrl)

	svc := service.New(mockRepo, mockCatalog, mockUsers, mockNotifier, newTestConfig(), mocks.NewOtel())

	tests := []struct {
		name         string
		req          dto.SpaAvailabilityRequest
		setupMock    func()
		wantDecision string
		wantLeft     int
	}{
		{
			name: "available when slot has openings",
			req:  dto.SpaAvailabilityRequest{ServiceID: "spa-1", Date: "2026-09-10", TimeSlot: "10:00"},
			setupMock: func() {
				mockCatalog.EXPECT().GetSpaService(gomock.Any(), gomock.Any()).Return(activeSpaService(), nil)
				mockRepo.EXPECT().CountSpaSlot(gomock.Any(), "spa-1", gomock.Any(), "10:00").Return(2, nil)
			},
			wantDecision: dto.DecisionAvailable,
			wantLeft:     1,
		},
		{
			name: "unavailable when slot is full",
			req:  dto.SpaAvailabilityRequest{ServiceID: "spa-1", Date: "2026-09-10", TimeSlot: "10:00"},
			setupMock: func() {
				mockCatalog.EXPECT().GetSpaService(gomock.Any(), gomock.Any()).Return(activeSpaService(), nil)
				mockRepo.EXPECT().CountSpaSlot(gomock.Any(), "spa-1", gomock.Any(), "10:00").Return(3, nil)
			},
			wantDecision: dto.DecisionUnavailable,
		},
		{
			name: "not found for unknown service",
			req:  dto.SpaAvailabilityRequest{ServiceID: "nope", Date: "2026-09-10", TimeSlot: "10:00"},
			setupMock: func() {
				mockCatalog.EXPECT().GetSpaService(gomock.Any(), gomock.Any()).Return(catalogModel.SpaService{}, nil)
			},
			wantDecision: dto.DecisionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.CheckSpaAvailability(context.Background(), tt.req)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantDecision, res.Decision)

			if tt.wantLeft > 0 {
				assert.Equal(t, tt.wantLeft, res.Remaining)
			}
		})
	}
}

func TestBookingService_CheckRestaurantAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCatalog := catalogMocks.NewMockCatalog(ctrl)
	mockUsers := userMocks.NewMockUser(ctrl)
	mockNotifier := notifierMocks.NewMockNotifier(ctrl)

	svc := service.New(mockRepo, mockCatalog, mockUsers, mockNotifier, newTestConfig(), mocks.NewOtel())

	tests := []struct {
		name         string
		partySize    int
		reserved     int
		wantDecision string
		wantLeft     int
	}{
		{
			name:         "seats the party with room to spare",
			partySize:    5,
			reserved:     40,
			wantDecision: dto.DecisionAvailable,
			wantLeft:     10,
		},
		{
			name:         "seats the party exactly at capacity",
			partySize:    5,
			reserved:     45,
			wantDecision: dto.DecisionAvailable,
			wantLeft:     5,
		},
		{
			name:         "rejects the party that would overflow",
			partySize:    5,
			reserved:     48,
			wantDecision: dto.DecisionUnavailable,
			wantLeft:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().SumRestaurantSeats(gomock.Any(), gomock.Any(), "19:00", "dinner").Return(tt.reserved, nil)

			res, err := svc.CheckRestaurantAvailability(context.Background(), dto.RestaurantAvailabilityRequest{
				Date:       "2026-09-10",
				TimeSlot:   "19:00",
				MealPeriod: "dinner",
				PartySize:  tt.partySize,
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.wantDecision, res.Decision)
			assert.Equal(t, tt.wantLeft, res.Remaining)
		})
	}
}
