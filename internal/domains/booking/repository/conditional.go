package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/model"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/constant"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/failure"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/logger"

	"github.com/lib/pq"
)

const (
	MsgRoomUnavailable       = "no rooms of this type are available for the requested dates"
	MsgSpaSlotUnavailable    = "spa session is fully booked for the requested slot"
	MsgRestaurantUnavailable = "not enough seats available for the requested slot"
)

// stayOverlapCondition filters stays colliding with the candidate interval
// [$3, $4): the candidate start falls inside an existing stay, the candidate
// end falls inside one, or the candidate contains one. Stays are half-open,
// so a stay ending on the day another begins does not collide. StayOverlaps
// is the Go rendition of this predicate.
const stayOverlapCondition = `((check_in <= $3 AND check_out > $3)
    OR (check_in < $4 AND check_out >= $4)
    OR (check_in >= $3 AND check_out <= $4))`

const queryCountRoomOverlaps = `
SELECT COUNT(id) FROM room_bookings
WHERE room_type_id = $1
  AND status <> $2
  AND ` + stayOverlapCondition

// StayOverlaps reports whether the candidate stay [candidateIn, candidateOut)
// shares at least one occupied night with the existing stay
// [existingIn, existingOut). It mirrors stayOverlapCondition clause for
// clause so the boundary semantics can be asserted without a database.
func StayOverlaps(candidateIn, candidateOut, existingIn, existingOut time.Time) bool {
	startsInside := !existingIn.After(candidateIn) && existingOut.After(candidateIn)
	endsInside := existingIn.Before(candidateOut) && !existingOut.Before(candidateOut)
	contains := !existingIn.Before(candidateIn) && !existingOut.After(candidateOut)

	return startsInside || endsInside || contains
}

const queryCountSpaSlot = `
SELECT COUNT(id) FROM spa_bookings
WHERE service_id = $1
  AND status <> $2
  AND date = $3
  AND time_slot = $4`

const querySumRestaurantSeats = `
SELECT COALESCE(SUM(party_size), 0) FROM restaurant_bookings
WHERE status <> $1
  AND date = $2
  AND time_slot = $3
  AND meal_period = $4`

type queryer interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeSerializationFailure
	}

	return false
}

func countRoomOverlaps(ctx context.Context, q queryer, roomTypeID string, checkIn, checkOut time.Time) (int, error) {
	var count int

	err := q.GetContext(ctx, &count, queryCountRoomOverlaps, roomTypeID, model.StatusCancelled, checkIn, checkOut)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count overlapping stays (%s): %w", model.RoomBookingEntityName, err)
	}

	return count, nil
}

func countSpaSlot(ctx context.Context, q queryer, serviceID string, date time.Time, timeSlot string) (int, error) {
	var count int

	err := q.GetContext(ctx, &count, queryCountSpaSlot, serviceID, model.StatusCancelled, date, timeSlot)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count slot sessions (%s): %w", model.SpaBookingEntityName, err)
	}

	return count, nil
}

func sumRestaurantSeats(ctx context.Context, q queryer, date time.Time, timeSlot, mealPeriod string) (int, error) {
	var seats int

	err := q.GetContext(ctx, &seats, querySumRestaurantSeats, model.StatusCancelled, date, timeSlot, mealPeriod)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to sum reserved seats (%s): %w", model.RestaurantBookingEntityName, err)
	}

	return seats, nil
}

func (repo *repositoryImpl) CountRoomOverlaps(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room_booking.CountRoomOverlaps")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCountRoomOverlaps)

	return countRoomOverlaps(ctx, repo.db.Read, roomTypeID, checkIn, checkOut)
}

func (repo *repositoryImpl) CountSpaSlot(ctx context.Context, serviceID string, date time.Time, timeSlot string) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".spa_booking.CountSpaSlot")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCountSpaSlot)

	return countSpaSlot(ctx, repo.db.Read, serviceID, date, timeSlot)
}

func (repo *repositoryImpl) SumRestaurantSeats(ctx context.Context, date time.Time, timeSlot, mealPeriod string) (seats int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".restaurant_booking.SumRestaurantSeats")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, querySumRestaurantSeats)

	return sumRestaurantSeats(ctx, repo.db.Read, date, timeSlot, mealPeriod)
}

// InsertRoom re-checks the overlap count inside a serializable transaction so
// the capacity rule holds under concurrent writers. A serialization failure
// from postgres is retried once before surfacing.
func (repo *repositoryImpl) InsertRoom(ctx context.Context, booking model.RoomBooking, capacity int) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room_booking.InsertRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	for attempt := 0; ; attempt++ {
		err = repo.insertRoomOnce(ctx, booking, capacity)
		if attempt == 0 && isSerializationFailure(err) {
			scope.AddEvent("serialization failure, retrying")

			continue
		}

		return err
	}
}

func (repo *repositoryImpl) insertRoomOnce(ctx context.Context, booking model.RoomBooking, capacity int) error {
	tx, err := repo.db.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.RoomBookingEntityName, err)
	}

	count, err := countRoomOverlaps(ctx, tx, booking.RoomTypeID, booking.CheckIn, booking.CheckOut)
	if err != nil {
		_ = tx.Rollback()

		return err
	}

	if count >= capacity {
		_ = tx.Rollback()

		return failure.Conflict(MsgRoomUnavailable)
	}

	if err = repo.rooms.InsertTx(ctx, tx, booking); err != nil {
		_ = tx.Rollback()

		return err // nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.RoomBookingEntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) InsertSpa(ctx context.Context, booking model.SpaBooking, capacity int) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".spa_booking.InsertSpa")
	defer scope.End()
	defer scope.TraceIfError(err)

	for attempt := 0; ; attempt++ {
		err = repo.insertSpaOnce(ctx, booking, capacity)
		if attempt == 0 && isSerializationFailure(err) {
			scope.AddEvent("serialization failure, retrying")

			continue
		}

		return err
	}
}

func (repo *repositoryImpl) insertSpaOnce(ctx context.Context, booking model.SpaBooking, capacity int) error {
	tx, err := repo.db.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.SpaBookingEntityName, err)
	}

	count, err := countSpaSlot(ctx, tx, booking.ServiceID, booking.Date, booking.TimeSlot)
	if err != nil {
		_ = tx.Rollback()

		return err
	}

	if count >= capacity {
		_ = tx.Rollback()

		return failure.Conflict(MsgSpaSlotUnavailable)
	}

	if err = repo.spa.InsertTx(ctx, tx, booking); err != nil {
		_ = tx.Rollback()

		return err // nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.SpaBookingEntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) InsertRestaurant(ctx context.Context, booking model.RestaurantBooking, seats int) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".restaurant_booking.InsertRestaurant")
	defer scope.End()
	defer scope.TraceIfError(err)

	for attempt := 0; ; attempt++ {
		err = repo.insertRestaurantOnce(ctx, booking, seats)
		if attempt == 0 && isSerializationFailure(err) {
			scope.AddEvent("serialization failure, retrying")

			continue
		}

		return err
	}
}

func (repo *repositoryImpl) insertRestaurantOnce(ctx context.Context, booking model.RestaurantBooking, seats int) error {
	tx, err := repo.db.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.RestaurantBookingEntityName, err)
	}

	reserved, err := sumRestaurantSeats(ctx, tx, booking.Date, booking.TimeSlot, booking.MealPeriod)
	if err != nil {
		_ = tx.Rollback()

		return err
	}

	if reserved+booking.PartySize > seats {
		_ = tx.Rollback()

		return failure.Conflict(MsgRestaurantUnavailable)
	}

	if err = repo.restaurant.InsertTx(ctx, tx, booking); err != nil {
		_ = tx.Rollback()

		return err // nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.RestaurantBookingEntityName, err)
	}

	return nil
}
