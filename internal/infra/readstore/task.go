package readstore

import (
	"context"

	"fleetops/internal/infra"
	"fleetops/internal/infra/db"
	"fleetops/internal/usecase/queries"
)

type TaskReadStore struct {
	db db.DBTX
}

func NewTaskReadStore(dbtx db.DBTX) *TaskReadStore {
	return &TaskReadStore{db: dbtx}
}

const taskBoardQuery = `
SELECT id, title, type, category, assignee_id, status, deadline, booking_id, priority
FROM tasks
ORDER BY deadline NULLS LAST, priority DESC, id
`

func (r *TaskReadStore) ListAll(ctx context.Context) ([]*queries.TaskBoardItem, error) {
	rows, err := r.db.Query(ctx, taskBoardQuery)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load tasks", err)
	}
	defer rows.Close()

	out := []*queries.TaskBoardItem{}
	for rows.Next() {
		it := &queries.TaskBoardItem{}
		if err := rows.Scan(
			&it.ID, &it.Title, &it.Type, &it.Category, &it.AssigneeID,
			&it.Status, &it.Deadline, &it.BookingID, &it.Priority,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan task", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read tasks", err)
	}
	return out, nil
}
