package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/BenlahcenSoufiane/AzurHotel/config"
	"github.com/BenlahcenSoufiane/AzurHotel/infras/otel/mocks"
	cacheMocks "github.com/BenlahcenSoufiane/AzurHotel/shared/cache/mocks"
	catalogMocks "github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/mocks"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/model"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/model/dto"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/service"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/cache"
	gDto "github.com/BenlahcenSoufiane/AzurHotel/shared/dto"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/failure"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return cfg
}

// waitCalls blocks until the async cache goroutines have fired n times.
func waitCalls(t *testing.T, calls <-chan struct{}, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("async cache operation never ran")
		}
	}
}

func deluxeRoomType() model.RoomType {
	return model.RoomType{
		ID:            "rt-1",
		Name:          "Deluxe Sea View",
		Description:   "Corner room overlooking the bay",
		PricePerNight: 150,
		Capacity:      2,
		Size:          "32sqm",
		Amenities:     "wifi,minibar",
		Active:        true,
	}
}

func TestCatalogService_GetRoomType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := catalogMocks.NewMockCatalog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mocks.NewOtel())

	t.Run("serves from cache on a hit", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res := value.(*dto.RoomTypeResponse)
				res.ID = "rt-1"
				res.Name = "Deluxe Sea View"

				return nil
			})

		res, err := svc.GetRoomType(context.Background(), "rt-1")

		assert.NoError(t, err)
		assert.Equal(t, "Deluxe Sea View", res.Name)
	})

	t.Run("falls back to the repository on a miss", func(t *testing.T) {
		saved := make(chan struct{}, 1)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockRepo.EXPECT().GetRoomType(gomock.Any(), gomock.Any()).Return(deluxeRoomType(), nil)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).
			DoAndReturn(func(_ context.Context, _ string, _ any, _ int) error {
				saved <- struct{}{}

				return nil
			})

		res, err := svc.GetRoomType(context.Background(), "rt-1")

		assert.NoError(t, err)
		assert.Equal(t, "rt-1", res.ID)
		assert.Equal(t, []string{"wifi", "minibar"}, res.Amenities)

		waitCalls(t, saved, 1)
	})

	t.Run("not found for an unknown id", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockRepo.EXPECT().GetRoomType(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)

		_, err := svc.GetRoomType(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestCatalogService_GetAllRoomTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := catalogMocks.NewMockCatalog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mocks.NewOtel())

	saved := make(chan struct{}, 2)

	// one miss for the listing, one for the count
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
	mockRepo.EXPECT().CountRoomTypes(gomock.Any(), gomock.Any()).Return(12, nil)
	mockRepo.EXPECT().GetAllRoomTypes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.RoomType{deluxeRoomType()}, nil)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).
		DoAndReturn(func(_ context.Context, _ string, _ any, _ int) error {
			saved <- struct{}{}

			return nil
		}).Times(2)

	res, err := svc.GetAllRoomTypes(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.RoomTypes, 1)

	waitCalls(t, saved, 2)
}

func TestCatalogService_CreateRoomType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := catalogMocks.NewMockCatalog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mocks.NewOtel())

	cleared := make(chan struct{}, 2)

	var inserted model.RoomType

	mockRepo.EXPECT().InsertRoomType(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, roomType model.RoomType) error {
			inserted = roomType

			return nil
		})
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string) error {
			cleared <- struct{}{}

			return nil
		}).Times(2)

	err := svc.CreateRoomType(context.Background(), dto.CreateRoomTypeRequest{
		Name:          "Deluxe Sea View",
		PricePerNight: 150,
		Capacity:      2,
		Amenities:     []string{"wifi", " minibar "},
	})

	assert.NoError(t, err)
	assert.True(t, inserted.Active)
	assert.Equal(t, "wifi,minibar", inserted.Amenities)
	assert.NotEmpty(t, inserted.ID)

	waitCalls(t, cleared, 2)
}

func TestCatalogService_UpdateRoomType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := catalogMocks.NewMockCatalog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mocks.NewOtel())

	price := 175

	t.Run("updates only the provided fields", func(t *testing.T) {
		invalidated := make(chan struct{}, 3)

		mockRepo.EXPECT().ExistRoomType(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().UpdateRoomType(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updates map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, &price, updates["price_per_night"])
				assert.NotContains(t, updates, "name")

				return nil
			})
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string) error {
				invalidated <- struct{}{}

				return nil
			})
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string) error {
				invalidated <- struct{}{}

				return nil
			}).Times(2)

		err := svc.UpdateRoomType(context.Background(), dto.UpdateRoomTypeRequest{PricePerNight: &price}, "rt-1")

		assert.NoError(t, err)

		waitCalls(t, invalidated, 3)
	})

	t.Run("not found when the room type does not exist", func(t *testing.T) {
		mockRepo.EXPECT().ExistRoomType(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.UpdateRoomType(context.Background(), dto.UpdateRoomTypeRequest{PricePerNight: &price}, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestCatalogService_DeleteSpaService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := catalogMocks.NewMockCatalog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mocks.NewOtel())

	t.Run("deletes and invalidates caches", func(t *testing.T) {
		invalidated := make(chan struct{}, 3)

		mockRepo.EXPECT().ExistSpaService(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().DeleteSpaService(gomock.Any(), gomock.Any()).Return(nil)
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string) error {
				invalidated <- struct{}{}

				return nil
			})
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string) error {
				invalidated <- struct{}{}

				return nil
			}).Times(2)

		err := svc.DeleteSpaService(context.Background(), "spa-1")

		assert.NoError(t, err)

		waitCalls(t, invalidated, 3)
	})

	t.Run("not found when the service does not exist", func(t *testing.T) {
		mockRepo.EXPECT().ExistSpaService(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.DeleteSpaService(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestCatalogService_GetRestaurantMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := catalogMocks.NewMockCatalog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mocks.NewOtel())

	t.Run("falls back to the repository on a miss", func(t *testing.T) {
		saved := make(chan struct{}, 1)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockRepo.EXPECT().GetRestaurantMenu(gomock.Any(), gomock.Any()).
			Return(model.RestaurantMenu{ID: "menu-1", Name: "Bouillabaisse", Price: 42, Category: "main", Active: true}, nil)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).
			DoAndReturn(func(_ context.Context, _ string, _ any, _ int) error {
				saved <- struct{}{}

				return nil
			})

		res, err := svc.GetRestaurantMenu(context.Background(), "menu-1")

		assert.NoError(t, err)
		assert.Equal(t, "Bouillabaisse", res.Name)
		assert.Equal(t, 42, res.Price)

		waitCalls(t, saved, 1)
	})

	t.Run("not found for an unknown id", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockRepo.EXPECT().GetRestaurantMenu(gomock.Any(), gomock.Any()).Return(model.RestaurantMenu{}, nil)

		_, err := svc.GetRestaurantMenu(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
