package commands

import (
	"time"

	"hotel-core/internal/infra"
	"hotel-core/internal/pkg/errs"
)

// NumberGenerator issues booking and invoice reference numbers.
type NumberGenerator interface {
	BookingNumber() string
	InvoiceNumber(issuedAt time.Time) string
}

// notFoundAs swaps a repository NOT_FOUND for the caller-facing sentinel.
func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
