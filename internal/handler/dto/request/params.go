package request

import (
	"strings"
	"time"

	"hotel-core/internal/pkg/dateutil"
	"hotel-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate = errs.New("dates must use the YYYY-MM-DD format")
	ErrInvalidUUID = errs.New("malformed id")
)

func parseDate(field, s string) (time.Time, error) {
	t, err := dateutil.Parse(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errs.Wrap(errs.Attach(ErrInvalidDate, err), field)
	}
	return t, nil
}

func parseOptionalDate(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseDate(field, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseOptionalUUID(field, s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, errs.Wrap(errs.Attach(ErrInvalidUUID, err), field)
	}
	return &id, nil
}

// ParseID parses a path parameter.
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errs.Attach(ErrInvalidUUID, err)
	}
	return id, nil
}
