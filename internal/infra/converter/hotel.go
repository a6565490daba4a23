package converter

import (
	"hotel-booking-engine/internal/domain/hotel"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/pgconv"
)

func PolicyFromRow(row sqlc.Hotel) (*hotel.Policy, error) {
	gst, err := pgconv.DecimalFromNumeric(row.GstRate)
	if err != nil {
		return nil, errs.Wrapf(err, "hotel %s: gst rate", row.ID)
	}
	svc, err := pgconv.DecimalFromNumeric(row.ServiceTaxRate)
	if err != nil {
		return nil, errs.Wrapf(err, "hotel %s: service tax rate", row.ID)
	}

	baseOccupancy := 0
	if row.BaseOccupancy.Valid {
		baseOccupancy = int(row.BaseOccupancy.Int32)
	}

	return hotel.NewPolicy(row.ID, row.OwnerID, row.Name, gst, svc, baseOccupancy, pgconv.DatesFromPgtype(row.Holidays))
}
