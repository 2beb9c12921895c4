package repository

import (
	"context"

	"fleetops/internal/domain/task"
	"fleetops/internal/infra"
	"fleetops/internal/infra/db"
)

type TaskRepository struct {
	db db.DBTX
}

func NewTaskRepository(dbtx db.DBTX) *TaskRepository {
	return &TaskRepository{db: dbtx}
}

func (r *TaskRepository) Create(ctx context.Context, t *task.Task) error {
	const q = `
INSERT INTO tasks (id, title, type, category, assignee_id, status, deadline, booking_id, priority)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	_, err := r.db.Exec(ctx, q,
		t.ID(), t.Title(), string(t.Type()), t.Category(), t.AssigneeID(),
		string(t.Status()), t.Deadline(), t.BookingID(), t.Priority(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create task", err)
	}
	return nil
}
