//go:build unit

package offer_test

import (
	"testing"

	"hotel-booking-engine/internal/domain/offer"
	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/pkg/ptr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discount(t *testing.T, kind offer.DiscountType, value string, maxDiscount *int64, freeNights *int) offer.Discount {
	t.Helper()
	d, err := offer.NewDiscount(kind, decimal.RequireFromString(value), maxDiscount, freeNights)
	require.NoError(t, err)
	return d
}

func TestCalculateDiscount(t *testing.T) {
	testCases := []struct {
		name         string
		discount     offer.Discount
		original     int64
		nights       int
		wantDiscount int64
		wantFinal    int64
	}{
		{
			name:         "percentage capped at max discount",
			discount:     discount(t, offer.DiscountPercentage, "20", ptr.To[int64](50), nil),
			original:     1000,
			nights:       2,
			wantDiscount: 50,
			wantFinal:    950,
		},
		{
			name:         "percentage below cap",
			discount:     discount(t, offer.DiscountPercentage, "20", ptr.To[int64](500), nil),
			original:     1000,
			nights:       2,
			wantDiscount: 200,
			wantFinal:    800,
		},
		{
			name:         "percentage rounds half up",
			discount:     discount(t, offer.DiscountPercentage, "15", nil, nil),
			original:     1010,
			nights:       1,
			wantDiscount: 152,
			wantFinal:    858,
		},
		{
			name:         "fixed amount",
			discount:     discount(t, offer.DiscountFixedAmount, "300", nil, nil),
			original:     1000,
			nights:       1,
			wantDiscount: 300,
			wantFinal:    700,
		},
		{
			name:         "fixed amount larger than original",
			discount:     discount(t, offer.DiscountFixedAmount, "5000", nil, nil),
			original:     1000,
			nights:       1,
			wantDiscount: 1000,
			wantFinal:    0,
		},
		{
			name:         "one free night of three",
			discount:     discount(t, offer.DiscountFreeNights, "0", nil, ptr.To(1)),
			original:     900,
			nights:       3,
			wantDiscount: 300,
			wantFinal:    600,
		},
		{
			name:         "free nights clamped to stay length",
			discount:     discount(t, offer.DiscountFreeNights, "0", nil, ptr.To(5)),
			original:     900,
			nights:       2,
			wantDiscount: 900,
			wantFinal:    0,
		},
		{
			name:         "free night of uneven total rounds half up",
			discount:     discount(t, offer.DiscountFreeNights, "0", nil, ptr.To(1)),
			original:     1001,
			nights:       2,
			wantDiscount: 501,
			wantFinal:    500,
		},
		{
			name:         "upgrade has no monetary discount",
			discount:     discount(t, offer.DiscountUpgrade, "0", nil, nil),
			original:     1000,
			nights:       2,
			wantDiscount: 0,
			wantFinal:    1000,
		},
		{
			name:         "package has no monetary discount",
			discount:     discount(t, offer.DiscountPackage, "0", nil, nil),
			original:     1000,
			nights:       2,
			wantDiscount: 0,
			wantFinal:    1000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := offer.CalculateDiscount(tc.discount, reservation.NewMoney(tc.original), tc.nights)
			assert.Equal(t, tc.wantDiscount, got.Discount.Cents())
			assert.Equal(t, tc.wantFinal, got.Final.Cents())
		})
	}
}

// 0 <= final <= original and 0 <= discount <= original for every discount shape.
func TestCalculateDiscountBounds(t *testing.T) {
	discounts := []offer.Discount{
		discount(t, offer.DiscountPercentage, "100", nil, nil),
		discount(t, offer.DiscountPercentage, "33.3", ptr.To[int64](10), nil),
		discount(t, offer.DiscountFixedAmount, "999999", nil, nil),
		discount(t, offer.DiscountFreeNights, "0", nil, ptr.To(30)),
		discount(t, offer.DiscountFreeNights, "0", nil, ptr.To(1)),
		discount(t, offer.DiscountUpgrade, "0", nil, nil),
	}
	for _, d := range discounts {
		for _, original := range []int64{0, 1, 7, 999, 123457} {
			for nights := 0; nights <= 4; nights++ {
				got := offer.CalculateDiscount(d, reservation.NewMoney(original), nights)
				assert.GreaterOrEqual(t, got.Discount.Cents(), int64(0))
				assert.LessOrEqual(t, got.Discount.Cents(), original)
				assert.GreaterOrEqual(t, got.Final.Cents(), int64(0))
				assert.LessOrEqual(t, got.Final.Cents(), original)
				assert.Equal(t, original, got.Discount.Add(got.Final).Cents())
			}
		}
	}
}

func TestNewDiscount(t *testing.T) {
	testCases := []struct {
		name       string
		kind       offer.DiscountType
		value      string
		freeNights *int
		errIs      error
	}{
		{name: "unknown type", kind: offer.DiscountType("bogus"), value: "1", errIs: offer.ErrInvalidDiscountType},
		{name: "negative value", kind: offer.DiscountFixedAmount, value: "-1", errIs: offer.ErrInvalidDiscountAmount},
		{name: "percentage above 100", kind: offer.DiscountPercentage, value: "100.01", errIs: offer.ErrInvalidDiscountPercent},
		{name: "fractional fixed amount", kind: offer.DiscountFixedAmount, value: "10.5", errIs: offer.ErrFractionalAmount},
		{name: "free nights missing", kind: offer.DiscountFreeNights, value: "0", errIs: offer.ErrInvalidFreeNights},
		{name: "free nights zero", kind: offer.DiscountFreeNights, value: "0", freeNights: ptr.To(0), errIs: offer.ErrInvalidFreeNights},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := offer.NewDiscount(tc.kind, decimal.RequireFromString(tc.value), nil, tc.freeNights)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
