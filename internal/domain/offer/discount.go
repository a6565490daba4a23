package offer

import (
	"hotel-booking-engine/internal/domain/reservation"

	"github.com/shopspring/decimal"
)

type DiscountResult struct {
	Original reservation.Money
	Discount reservation.Money
	Final    reservation.Money
}

// CalculateDiscount always returns 0 <= Discount <= Original and
// Final = Original - Discount. Upgrade and package offers carry no
// monetary discount.
func CalculateDiscount(d Discount, original reservation.Money, nights int) DiscountResult {
	original = original.Max(reservation.NewMoney(0))

	var amount reservation.Money
	switch d.kind {
	case DiscountPercentage:
		amount = original.Percent(d.value)
		if d.maxDiscount != nil {
			amount = amount.Min(*d.maxDiscount)
		}
	case DiscountFixedAmount:
		amount = reservation.NewMoney(d.value.IntPart()).Min(original)
	case DiscountFreeNights:
		if nights > 0 && d.freeNights != nil {
			free := min(*d.freeNights, nights)
			perNight := original.Decimal().Div(decimal.NewFromInt(int64(nights)))
			amount = reservation.FromDecimal(perNight.Mul(decimal.NewFromInt(int64(free))))
		}
	}

	amount = amount.Max(reservation.NewMoney(0)).Min(original)
	return DiscountResult{
		Original: original,
		Discount: amount,
		Final:    original.Sub(amount),
	}
}
