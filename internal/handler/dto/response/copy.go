package response

import (
	"fmt"
	"time"

	"hotel-core/internal/pkg/dateutil"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Money and calendar dates leave the API as strings; timestamps keep time.Time.
var copyOpts = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(2), nil
			},
		},
		{
			SrcType: (*decimal.Decimal)(nil),
			DstType: (*string)(nil),
			Fn: func(src any) (any, error) {
				d := src.(*decimal.Decimal)
				if d == nil {
					return (*string)(nil), nil
				}
				s := d.StringFixed(2)
				return &s, nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return dateutil.Format(src.(time.Time)), nil
			},
		},
		{
			SrcType: (*time.Time)(nil),
			DstType: (*string)(nil),
			Fn: func(src any) (any, error) {
				t := src.(*time.Time)
				if t == nil {
					return (*string)(nil), nil
				}
				s := dateutil.Format(*t)
				return &s, nil
			},
		},
	},
}

// mustCopy fails only on mismatched struct shapes, which is a programming error.
func mustCopy(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copyOpts); err != nil {
		panic(fmt.Sprintf("response copy %T -> %T: %v", src, dst, err))
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type CreatedResponse struct {
	ID string `json:"id"`
}
