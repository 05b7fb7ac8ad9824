package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mdb "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aussiebroadwan/taskapi/internal/tasks/domain"
	"github.com/aussiebroadwan/taskapi/internal/tasks/store"
)

type taskDoc struct {
	ID           string    `bson:"_id"`
	Title        string    `bson:"title"`
	Description  string    `bson:"description"`
	DueDate      time.Time `bson:"dueDate"`
	AssignedUser string    `bson:"assignedUser"`
	Status       string    `bson:"status"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

func (d taskDoc) toDomain() domain.Task {
	return domain.Task{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		DueDate:      d.DueDate.UTC(),
		AssignedUser: d.AssignedUser,
		Status:       domain.TaskStatus(d.Status),
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

type tasksRepo struct {
	c *mdb.Collection
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := r.c.InsertOne(ctx, taskDoc{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		DueDate:      t.DueDate.UTC(),
		AssignedUser: t.AssignedUser,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt.UTC(),
		UpdatedAt:    t.UpdatedAt.UTC(),
	})
	return mapDuplicate(err)
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.Task, error) {
	var doc taskDoc
	if err := r.c.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc); err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *tasksRepo) ListTaskSummaries(ctx context.Context) ([]domain.TaskSummary, error) {
	cur, err := r.c.Find(ctx, bson.D{}, options.Find().
		SetSort(createdOrder).
		SetProjection(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var docs []struct {
		ID    string `bson:"_id"`
		Title string `bson:"title"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.TaskSummary, len(docs))
	for i, d := range docs {
		out[i] = domain.TaskSummary{ID: d.ID, Title: d.Title}
	}
	return out, nil
}

func (r *tasksRepo) UpdateTask(ctx context.Context, id string, p domain.TaskPatch) (domain.Task, error) {
	set := bson.D{{Key: "updatedAt", Value: p.UpdatedAt.UTC()}}
	if p.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *p.Title})
	}
	if p.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *p.Description})
	}
	if p.Status != nil {
		set = append(set, bson.E{Key: "status", Value: string(*p.Status)})
	}
	if p.DueDate != nil {
		set = append(set, bson.E{Key: "dueDate", Value: p.DueDate.UTC()})
	}

	var doc taskDoc
	err := r.c.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id string) error {
	res, err := r.c.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
