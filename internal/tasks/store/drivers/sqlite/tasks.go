package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/taskapi/internal/tasks/domain"
	"github.com/aussiebroadwan/taskapi/internal/tasks/store"
	"github.com/aussiebroadwan/taskapi/internal/tasks/store/drivers/sqlite/gen"
)

type tasksRepo struct {
	db *sql.DB
	q  *gen.Queries
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	err := r.q.CreateTask(ctx, gen.CreateTaskParams{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		DueDate:      t.DueDate.UTC(),
		AssignedUser: t.AssignedUser,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt.UTC(),
		UpdatedAt:    t.UpdatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.Task, error) {
	row, err := r.q.GetTaskByID(ctx, id)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return mapTask(row), nil
}

func (r *tasksRepo) ListTaskSummaries(ctx context.Context) ([]domain.TaskSummary, error) {
	rows, err := r.q.ListTaskSummaries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TaskSummary, len(rows))
	for i, row := range rows {
		out[i] = domain.TaskSummary{ID: row.ID, Title: row.Title}
	}
	return out, nil
}

func (r *tasksRepo) UpdateTask(ctx context.Context, id string, p domain.TaskPatch) (domain.Task, error) {
	var status sql.NullString
	if p.Status != nil {
		status = sql.NullString{String: string(*p.Status), Valid: true}
	}

	var out domain.Task
	err := withTx(ctx, r.db, r.q, func(q *gen.Queries) error {
		n, err := q.UpdateTask(ctx, gen.UpdateTaskParams{
			Title:       mapOptionalString(p.Title),
			Description: mapOptionalString(p.Description),
			Status:      status,
			DueDate:     mapOptionalTime(p.DueDate),
			UpdatedAt:   p.UpdatedAt.UTC(),
			ID:          id,
		})
		if err != nil {
			return err
		}
		if n == 0 {
			return store.ErrNotFound
		}

		row, err := q.GetTaskByID(ctx, id)
		if err != nil {
			return mapNotFound(err)
		}
		out = mapTask(row)
		return nil
	})
	return out, err
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id string) error {
	n, err := r.q.DeleteTask(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
