package converter

import (
	"encoding/json"
	"time"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/domain/room"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type bedJSON struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

func RoomToCreateParams(r *room.Room) (sqlc.CreateRoomParams, error) {
	beds, err := marshalBeds(r.Beds())
	if err != nil {
		return sqlc.CreateRoomParams{}, err
	}
	c := r.Capacity()
	p := r.Pricing()

	return sqlc.CreateRoomParams{
		ID:                r.ID(),
		HotelID:           r.HotelID(),
		RoomNumber:        r.Number(),
		RoomType:          r.Type().String(),
		Adults:            int32(c.Adults()),
		Children:          int32(c.Children()),
		Infants:           int32(c.Infants()),
		MaxOccupancy:      int32(c.MaxOccupancy()),
		Beds:              beds,
		BasePrice:         p.BasePrice().Cents(),
		WeekendSurcharge:  p.WeekendSurcharge().Cents(),
		HolidaySurcharge:  p.HolidaySurcharge().Cents(),
		ExtraPersonCharge: p.ExtraPersonCharge().Cents(),
		Status:            r.Status().String(),
		Housekeeping:      r.Housekeeping().String(),
		CreatedAt:         pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(r.UpdatedAt()),
	}, nil
}

func RoomToStateParams(r *room.Room) sqlc.UpdateRoomStateParams {
	return sqlc.UpdateRoomStateParams{
		Status:       r.Status().String(),
		Housekeeping: r.Housekeeping().String(),
		ArchivedAt:   pgconv.TimePtrToPgtype(r.ArchivedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(r.UpdatedAt()),
		ID:           r.ID(),
	}
}

func RoomToPricingParams(r *room.Room) sqlc.UpdateRoomPricingParams {
	p := r.Pricing()
	return sqlc.UpdateRoomPricingParams{
		BasePrice:         p.BasePrice().Cents(),
		WeekendSurcharge:  p.WeekendSurcharge().Cents(),
		HolidaySurcharge:  p.HolidaySurcharge().Cents(),
		ExtraPersonCharge: p.ExtraPersonCharge().Cents(),
		UpdatedAt:         pgconv.TimeToPgtype(r.UpdatedAt()),
		ID:                r.ID(),
	}
}

// SeasonalRatesToParams keeps the declared order in position.
func SeasonalRatesToParams(roomID uuid.UUID, p room.Pricing) []sqlc.InsertSeasonalRateParams {
	rates := p.SeasonalRates()
	params := make([]sqlc.InsertSeasonalRateParams, len(rates))
	for i, sr := range rates {
		params[i] = sqlc.InsertSeasonalRateParams{
			RoomID:    roomID,
			Position:  int32(i),
			Name:      sr.Name(),
			StartDate: pgconv.DateToPgtype(sr.Window().Start()),
			EndDate:   pgconv.DateToPgtype(sr.Window().End()),
			Price:     sr.Price().Cents(),
		}
	}
	return params
}

func MaintenanceWindowToParams(roomID uuid.UUID, w room.MaintenanceWindow, now time.Time) sqlc.InsertMaintenanceWindowParams {
	return sqlc.InsertMaintenanceWindowParams{
		ID:        w.ID(),
		RoomID:    roomID,
		StartDate: pgconv.DateToPgtype(w.Period().Start()),
		EndDate:   pgconv.DateToPgtype(w.Period().End()),
		Reason:    w.Reason(),
		CreatedAt: pgconv.TimeToPgtype(now),
	}
}

// RoomFromRow rebuilds the aggregate; rates must be ordered by position.
func RoomFromRow(row sqlc.Room, rates []sqlc.RoomSeasonalRate, windows []sqlc.RoomMaintenanceWindow) (*room.Room, error) {
	capacity, err := room.NewCapacity(int(row.Adults), int(row.Children), int(row.Infants), int(row.MaxOccupancy))
	if err != nil {
		return nil, errs.Wrapf(err, "room %s: capacity", row.ID)
	}
	beds, err := unmarshalBeds(row.Beds)
	if err != nil {
		return nil, errs.Wrapf(err, "room %s: beds", row.ID)
	}

	seasonal := make([]room.SeasonalRate, 0, len(rates))
	for _, sr := range rates {
		window, werr := room.NewSeasonWindow(pgconv.DateFromPgtype(sr.StartDate), pgconv.DateFromPgtype(sr.EndDate))
		if werr != nil {
			return nil, errs.Wrapf(werr, "room %s: seasonal rate %q", row.ID, sr.Name)
		}
		rate, rerr := room.NewSeasonalRate(sr.Name, window, reservation.NewMoney(sr.Price))
		if rerr != nil {
			return nil, errs.Wrapf(rerr, "room %s: seasonal rate %q", row.ID, sr.Name)
		}
		seasonal = append(seasonal, rate)
	}
	pricing, err := room.NewPricing(
		reservation.NewMoney(row.BasePrice),
		seasonal,
		reservation.NewMoney(row.WeekendSurcharge),
		reservation.NewMoney(row.HolidaySurcharge),
		reservation.NewMoney(row.ExtraPersonCharge),
	)
	if err != nil {
		return nil, errs.Wrapf(err, "room %s: pricing", row.ID)
	}

	mws, err := MaintenanceWindowsFromRows(windows)
	if err != nil {
		return nil, errs.Wrapf(err, "room %s", row.ID)
	}

	return room.ReconstructRoom(
		row.ID,
		row.HotelID,
		row.RoomNumber,
		room.Type(row.RoomType),
		capacity,
		beds,
		pricing,
		room.Status(row.Status),
		room.Housekeeping(row.Housekeeping),
		mws,
		pgconv.TimePtrFromPgtype(row.ArchivedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func MaintenanceWindowsFromRows(rows []sqlc.RoomMaintenanceWindow) ([]room.MaintenanceWindow, error) {
	out := make([]room.MaintenanceWindow, 0, len(rows))
	for _, w := range rows {
		period, err := reservation.NewDateRange(pgconv.DateFromPgtype(w.StartDate), pgconv.DateFromPgtype(w.EndDate))
		if err != nil {
			return nil, errs.Wrapf(err, "maintenance window %s", w.ID)
		}
		out = append(out, room.ReconstructMaintenanceWindow(w.ID, period, w.Reason))
	}
	return out, nil
}

func BedsFromJSON(raw []byte) ([]room.Bed, error) {
	return unmarshalBeds(raw)
}

func marshalBeds(beds []room.Bed) ([]byte, error) {
	out := make([]bedJSON, len(beds))
	for i, b := range beds {
		out[i] = bedJSON{Type: b.Type, Count: b.Count}
	}
	return json.Marshal(out)
}

func unmarshalBeds(raw []byte) ([]room.Bed, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var in []bedJSON
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, err
	}
	beds := make([]room.Bed, len(in))
	for i, b := range in {
		beds[i] = room.Bed{Type: b.Type, Count: b.Count}
	}
	return beds, nil
}
