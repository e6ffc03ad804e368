package response

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Money goes out as a fixed two place string, ratings as plain numbers.
var copyOpts = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				d, ok := src.(decimal.Decimal)
				if !ok {
					return nil, fmt.Errorf("expected decimal.Decimal, got %T", src)
				}
				return d.StringFixed(2), nil
			},
		},
		{
			SrcType: decimal.Decimal{},
			DstType: float64(0),
			Fn: func(src any) (any, error) {
				d, ok := src.(decimal.Decimal)
				if !ok {
					return nil, fmt.Errorf("expected decimal.Decimal, got %T", src)
				}
				return d.InexactFloat64(), nil
			},
		},
	},
}

func copyInto(dst, src any) error {
	return copier.CopyWithOption(dst, src, copyOpts)
}
