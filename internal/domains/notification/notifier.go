package notification

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"

	"github.com/BenlahcenSoufiane/AzurHotel/config"
	"github.com/BenlahcenSoufiane/AzurHotel/infras/kafka"
	"github.com/BenlahcenSoufiane/AzurHotel/infras/otel"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/model"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/constant"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/timezone"
)

// BookingEvent is the payload published for every new reservation. Consumers
// key off BookingType to format the guest-facing confirmation.
type BookingEvent struct {
	BookingType string `json:"booking_type"`
	BookingID   string `json:"booking_id"`
	GuestName   string `json:"guest_name"`
	GuestEmail  string `json:"guest_email"`
	Status      string `json:"status"`
	Detail      string `json:"detail"`
	OccurredAt  string `json:"occurred_at"`
}

// Notifier publishes booking confirmations. Callers fire it after the booking
// is committed, a publish failure never rolls the booking back.
type Notifier interface {
	RoomBooked(ctx context.Context, booking model.RoomBooking) error
	SpaBooked(ctx context.Context, booking model.SpaBooking) error
	TableBooked(ctx context.Context, booking model.RestaurantBooking) error
}

type notifierImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Notifier {
	return &notifierImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (n *notifierImpl) publish(ctx context.Context, event BookingEvent) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("booking_type", event.BookingType)

	return n.client.SendMessages(ctx, n.cfg.Kafka.Topic.BookingNotifications, kafka.Message{ // nolint:wrapcheck
		Key:   event.BookingID,
		Value: event,
	})
}

func (n *notifierImpl) RoomBooked(ctx context.Context, booking model.RoomBooking) error {
	return n.publish(ctx, BookingEvent{
		BookingType: model.KindRoom,
		BookingID:   booking.ID,
		GuestName:   booking.GuestName,
		GuestEmail:  booking.GuestEmail,
		Status:      booking.Status,
		Detail:      timezone.Format(booking.CheckIn, constant.DateOnlyFormat) + " to " + timezone.Format(booking.CheckOut, constant.DateOnlyFormat),
		OccurredAt:  timezone.Format(timezone.Now(), constant.DateFormat),
	})
}

func (n *notifierImpl) SpaBooked(ctx context.Context, booking model.SpaBooking) error {
	return n.publish(ctx, BookingEvent{
		BookingType: model.KindSpa,
		BookingID:   booking.ID,
		GuestName:   booking.GuestName,
		GuestEmail:  booking.GuestEmail,
		Status:      booking.Status,
		Detail:      timezone.Format(booking.Date, constant.DateOnlyFormat) + " " + booking.TimeSlot,
		OccurredAt:  timezone.Format(timezone.Now(), constant.DateFormat),
	})
}

func (n *notifierImpl) TableBooked(ctx context.Context, booking model.RestaurantBooking) error {
	return n.publish(ctx, BookingEvent{
		BookingType: model.KindRestaurant,
		BookingID:   booking.ID,
		GuestName:   booking.GuestName,
		GuestEmail:  booking.GuestEmail,
		Status:      booking.Status,
		Detail:      timezone.Format(booking.Date, constant.DateOnlyFormat) + " " + booking.TimeSlot + " (" + booking.MealPeriod + ")",
		OccurredAt:  timezone.Format(timezone.Now(), constant.DateFormat),
	})
}
