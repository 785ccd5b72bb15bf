package response

import (
	"time"

	"library-backend/internal/pkg/clock"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Calendar dates leave the API as YYYY-MM-DD. Timestamps keep RFC 3339.
var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return clock.FormatDate(src.(time.Time)), nil
			},
		},
		{
			SrcType: &time.Time{},
			DstType: (*string)(nil),
			Fn: func(src any) (any, error) {
				t, _ := src.(*time.Time)
				if t == nil {
					return (*string)(nil), nil
				}
				s := clock.FormatDate(*t)
				return &s, nil
			},
		},
		{
			// copier would otherwise route *decimal.Decimal through sql.Scanner
			SrcType: &decimal.Decimal{},
			DstType: &decimal.Decimal{},
			Fn: func(src any) (any, error) {
				d, _ := src.(*decimal.Decimal)
				if d == nil {
					return (*decimal.Decimal)(nil), nil
				}
				c := d.Copy()
				return &c, nil
			},
		},
	},
}

// mustCopy only fails on mismatched field kinds, which is a programming error.
func mustCopy(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copyOptions); err != nil {
		panic(err)
	}
}
