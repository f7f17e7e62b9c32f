package readstore

import (
	"hotel-core/internal/infra"
	"hotel-core/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// rowDecoder keeps the first numeric decode failure so view mapping stays flat.
type rowDecoder struct {
	err error
}

func (d *rowDecoder) decimal(n pgtype.Numeric) decimal.Decimal {
	v, err := pgconv.DecimalFromNumeric(n)
	if err != nil && d.err == nil {
		d.err = err
	}
	return v
}

func (d *rowDecoder) decimalPtr(n pgtype.Numeric) *decimal.Decimal {
	v, err := pgconv.DecimalPtrFromNumeric(n)
	if err != nil && d.err == nil {
		d.err = err
	}
	return v
}

func (d *rowDecoder) wrap(msg string) error {
	if d.err == nil {
		return nil
	}
	return infra.WrapRepoErr(msg, d.err, infra.KindCorruptRow)
}

func findErr(what string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(what+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to find "+what, err)
}
