package response

import (
	"time"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Response DTOs declare calendar dates as strings; copying a time.Time into
// one of them formats it as YYYY-MM-DD. Timestamps stay time.Time.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return reservation.FormatDate(src.(time.Time)), nil
			},
		},
		{
			SrcType: []time.Time{},
			DstType: []string{},
			Fn: func(src any) (any, error) {
				dates := src.([]time.Time)
				out := make([]string, 0, len(dates))
				for _, d := range dates {
					out = append(out, reservation.FormatDate(d))
				}
				return out, nil
			},
		},
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(4), nil
			},
		},
	},
}

func copyFrom[T any](src any) (*T, error) {
	dst := new(T)
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		return nil, errs.Wrap(err, "copy response")
	}
	return dst, nil
}

func copyList[T any, S any](src []S) ([]*T, error) {
	out := make([]*T, 0, len(src))
	for _, s := range src {
		item, err := copyFrom[T](s)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
