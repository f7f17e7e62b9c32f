package repository

import (
	"context"
	"time"

	"hotel-core/internal/domain/booking"
	"hotel-core/internal/infra"
	"hotel-core/internal/infra/repository/converter"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	FindBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	FindBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error)
	FindOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.FindOverlappingBookingsParams) ([]sqlc.FindOverlappingBookingsRow, error)
	NextArrival(ctx context.Context, db sqlc.DBTX, arg sqlc.NextArrivalParams) (pgtype.Date, error)
}

type BookingRepository struct {
	queries BookingQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries *sqlc.Queries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.FindBookingByID(ctx, r.db, id)
	return toBooking(row, err)
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.FindBookingByIDForUpdate(ctx, r.db, id)
	return toBooking(row, err)
}

func toBooking(row sqlc.Bookings, err error) (*booking.Booking, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	b, err := converter.BookingToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking row", err, infra.KindCorruptRow)
	}
	return b, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	n, err := r.queries.UpdateBooking(ctx, r.db, converter.BookingToUpdateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, roomID uuid.UUID, period booking.StayPeriod, exclude *uuid.UUID) ([]booking.Occupancy, error) {
	rows, err := r.queries.FindOverlappingBookings(ctx, r.db, sqlc.FindOverlappingBookingsParams{
		RoomID:    roomID,
		CheckIn:   pgconv.DateToPgtype(period.CheckIn()),
		CheckOut:  pgconv.DateToPgtype(period.CheckOut()),
		ExcludeID: pgconv.UUIDPtrToPgtype(exclude),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping bookings", err)
	}

	out := make([]booking.Occupancy, 0, len(rows))
	for _, row := range rows {
		occ, err := converter.OccupancyToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode overlapping booking", err, infra.KindCorruptRow)
		}
		out = append(out, occ)
	}
	return out, nil
}

// NextArrival returns nil when nothing is booked from the given day on.
func (r *BookingRepository) NextArrival(ctx context.Context, roomID uuid.UUID, from time.Time) (*time.Time, error) {
	d, err := r.queries.NextArrival(ctx, r.db, sqlc.NextArrivalParams{
		RoomID:      roomID,
		CheckInDate: pgconv.DateToPgtype(from),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find next arrival", err)
	}
	return pgconv.DatePtrFromPgtype(d), nil
}
