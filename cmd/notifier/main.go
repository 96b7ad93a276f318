package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/BenlahcenSoufiane/AzurHotel/config"
	"github.com/BenlahcenSoufiane/AzurHotel/infras/kafka"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/notification"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/logger"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// The notifier worker drains booking confirmations off Kafka and hands them
// to the mail gateway. It runs next to the API server so a slow SMTP hop
// never sits on the booking path.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := kafka.New(cfg)

	log.Info().Str("topic", cfg.Kafka.Topic.BookingNotifications).Msg("Notification worker started")

	client.Consume(ctx, cfg.Kafka.ConsumerGroup, cfg.Kafka.Topic.BookingNotifications, handleMessage)

	log.Info().Msg("Notification worker stopped")
}

func handleMessage(msg kafkaGo.Message) {
	decoded, err := kafka.DecodeKafkaMessage[notification.BookingEvent](msg)
	if err != nil {
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("failed to decode booking event")

		return
	}

	event, ok := decoded.Value.(notification.BookingEvent)
	if !ok {
		log.Error().Str("key", decoded.Key).Msg("unexpected booking event payload")

		return
	}

	log.Info().
		Str("bookingType", event.BookingType).
		Str("bookingID", event.BookingID).
		Str("guestEmail", event.GuestEmail).
		Str("detail", event.Detail).
		Msg("Dispatching booking confirmation")
}
