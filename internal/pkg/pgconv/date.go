package pgconv

import (
	"time"

	"hotel-core/internal/pkg/dateutil"

	"github.com/jackc/pgx/v5/pgtype"
)

func DateToPgtype(t time.Time) pgtype.Date {
	return pgtype.Date{Time: dateutil.DateOf(t), Valid: true}
}

func DatePtrToPgtype(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{Valid: false}
	}
	return DateToPgtype(*t)
}

func DateFromPgtype(d pgtype.Date) time.Time {
	return dateutil.DateOf(d.Time)
}

func DatePtrFromPgtype(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := dateutil.DateOf(d.Time)
	return &t
}
