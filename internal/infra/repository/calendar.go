package repository

import (
	"context"
	"time"

	"fleetops/internal/domain/schedule"
	"fleetops/internal/infra"
	"fleetops/internal/infra/db"

	"github.com/google/uuid"
)

type CalendarRepository struct {
	db db.DBTX
}

func NewCalendarRepository(dbtx db.DBTX) *CalendarRepository {
	return &CalendarRepository{db: dbtx}
}

func (r *CalendarRepository) Create(ctx context.Context, ev *schedule.CalendarEvent) error {
	const q = `
INSERT INTO calendar_events (id, vehicle_id, type, title, start_time, end_time, status, priority)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err := r.db.Exec(ctx, q,
		ev.ID(), ev.VehicleID(), ev.Type().String(), ev.Title(),
		ev.Interval().Start(), ev.Interval().End(), string(ev.Status()), ev.Priority(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create calendar event", err)
	}
	return nil
}

func (r *CalendarRepository) ListForVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*schedule.CalendarEvent, error) {
	const q = `
SELECT id, vehicle_id, type, title, start_time, end_time, status, priority
FROM calendar_events
WHERE vehicle_id = $1 AND status <> 'cancelled'
ORDER BY start_time
`
	rows, err := r.db.Query(ctx, q, vehicleID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load calendar events", err)
	}
	defer rows.Close()

	var out []*schedule.CalendarEvent
	for rows.Next() {
		var (
			id, vid       uuid.UUID
			evType, title string
			start, end    time.Time
			status        string
			priority      int
		)
		if err := rows.Scan(&id, &vid, &evType, &title, &start, &end, &status, &priority); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan calendar event", err)
		}
		out = append(out, schedule.ReconstructCalendarEvent(
			id, vid, schedule.EventType(evType), title,
			schedule.ReconstructInterval(start, end),
			schedule.EventStatus(status), priority,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read calendar events", err)
	}
	return out, nil
}
