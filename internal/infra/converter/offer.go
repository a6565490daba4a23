package converter

import (
	"hotel-booking-engine/internal/domain/offer"
	"hotel-booking-engine/internal/domain/reservation"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/pgconv"
)

func OfferToCreateParams(o *offer.Offer) sqlc.CreateOfferParams {
	d := o.Discount()
	c := o.Conditions()
	u := o.Usage()

	var maxDiscount, minAmount *int64
	if m := d.MaxDiscount(); m != nil {
		v := m.Cents()
		maxDiscount = &v
	}
	if m := c.MinimumBookingAmount; m != nil {
		v := m.Cents()
		minAmount = &v
	}

	return sqlc.CreateOfferParams{
		ID:                   o.ID(),
		HotelID:              o.HotelID(),
		Code:                 o.Code().String(),
		Title:                o.Title(),
		Description:          o.Description(),
		DiscountType:         string(d.Type()),
		DiscountValue:        pgconv.DecimalToNumeric(d.Value()),
		MaxDiscount:          pgconv.Int64PtrToPgtype(maxDiscount),
		FreeNights:           pgconv.IntPtrToPgtype(d.FreeNights()),
		MinimumStay:          int32(c.MinimumStay),
		MaximumStay:          pgconv.IntPtrToPgtype(c.MaximumStay),
		MinimumRooms:         int32(c.MinimumRooms),
		MinimumBookingAmount: pgconv.Int64PtrToPgtype(minAmount),
		AdvanceBookingDays:   pgconv.IntPtrToPgtype(c.AdvanceBookingDays),
		BlackoutDates:        pgconv.DatesToPgtype(c.BlackoutDates),
		ApplicableRoomTypes:  nonNilStrings(c.ApplicableRoomTypes),
		StartDate:            pgconv.TimeToPgtype(o.Validity().Start()),
		EndDate:              pgconv.TimeToPgtype(o.Validity().End()),
		TotalBookings:        pgconv.IntPtrToPgtype(u.TotalBookings()),
		BookingsPerCustomer:  int32(u.BookingsPerCustomer()),
		CurrentBookings:      int32(u.CurrentBookings()),
		Status:               o.Status().String(),
		CreatedAt:            pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:            pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

func OfferToStatusParams(o *offer.Offer) sqlc.UpdateOfferStatusParams {
	return sqlc.UpdateOfferStatusParams{
		Status:     o.Status().String(),
		ApprovedAt: pgconv.TimePtrToPgtype(o.ApprovedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(o.UpdatedAt()),
		ID:         o.ID(),
	}
}

func OfferFromRow(row sqlc.Offer) (*offer.Offer, error) {
	value, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, errs.Wrapf(err, "offer %s: discount value", row.ID)
	}
	discount, err := offer.NewDiscount(
		offer.DiscountType(row.DiscountType),
		value,
		pgconv.Int64PtrFromPgtype(row.MaxDiscount),
		pgconv.IntPtrFromPgtype(row.FreeNights),
	)
	if err != nil {
		return nil, errs.Wrapf(err, "offer %s: discount", row.ID)
	}

	var minAmount *reservation.Money
	if v := pgconv.Int64PtrFromPgtype(row.MinimumBookingAmount); v != nil {
		m := reservation.NewMoney(*v)
		minAmount = &m
	}
	conditions, err := offer.NewConditions(offer.Conditions{
		MinimumStay:          int(row.MinimumStay),
		MaximumStay:          pgconv.IntPtrFromPgtype(row.MaximumStay),
		MinimumRooms:         int(row.MinimumRooms),
		MinimumBookingAmount: minAmount,
		AdvanceBookingDays:   pgconv.IntPtrFromPgtype(row.AdvanceBookingDays),
		BlackoutDates:        pgconv.DatesFromPgtype(row.BlackoutDates),
		ApplicableRoomTypes:  row.ApplicableRoomTypes,
	})
	if err != nil {
		return nil, errs.Wrapf(err, "offer %s: conditions", row.ID)
	}

	validity, err := offer.NewValidity(pgconv.TimeFromPgtype(row.StartDate), pgconv.TimeFromPgtype(row.EndDate))
	if err != nil {
		return nil, errs.Wrapf(err, "offer %s: validity", row.ID)
	}
	usage, err := offer.NewUsageLimit(pgconv.IntPtrFromPgtype(row.TotalBookings), int(row.BookingsPerCustomer), int(row.CurrentBookings))
	if err != nil {
		return nil, errs.Wrapf(err, "offer %s: usage limit", row.ID)
	}

	return offer.ReconstructOffer(
		row.ID,
		row.HotelID,
		offer.Code(row.Code),
		row.Title,
		row.Description,
		discount,
		conditions,
		validity,
		usage,
		offer.Status(row.Status),
		offer.NewAnalytics(row.Views, row.Clicks, row.Bookings, reservation.NewMoney(row.Revenue)),
		pgconv.TimePtrFromPgtype(row.ApprovedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func RedemptionToInsertParams(r offer.Redemption) sqlc.InsertOfferRedemptionParams {
	return sqlc.InsertOfferRedemptionParams{
		ID:             r.ID(),
		OfferID:        r.OfferID(),
		CustomerID:     r.CustomerID(),
		BookingID:      pgconv.UUIDPtrToPgtype(r.BookingID()),
		CheckIn:        pgconv.DateToPgtype(r.Stay().Start()),
		CheckOut:       pgconv.DateToPgtype(r.Stay().End()),
		OriginalAmount: r.Original().Cents(),
		DiscountAmount: r.Discount().Cents(),
		FinalAmount:    r.Final().Cents(),
		RedeemedAt:     pgconv.TimeToPgtype(r.RedeemedAt()),
	}
}

func RedemptionFromRow(row sqlc.OfferRedemption) (offer.Redemption, error) {
	stay, err := reservation.NewDateRange(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
	if err != nil {
		return offer.Redemption{}, errs.Wrapf(err, "redemption %s: stay", row.ID)
	}
	return offer.ReconstructRedemption(
		row.ID,
		row.OfferID,
		row.CustomerID,
		pgconv.UUIDPtrFromPgtype(row.BookingID),
		stay,
		reservation.NewMoney(row.OriginalAmount),
		reservation.NewMoney(row.DiscountAmount),
		reservation.NewMoney(row.FinalAmount),
		pgconv.TimeFromPgtype(row.RedeemedAt),
	), nil
}

func RedemptionsFromRows(rows []sqlc.OfferRedemption) ([]offer.Redemption, error) {
	out := make([]offer.Redemption, 0, len(rows))
	for _, row := range rows {
		r, err := RedemptionFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
