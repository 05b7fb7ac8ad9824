// Package mongo is the MongoDB store driver. Documents use the ULID string
// as _id; uniqueness is enforced by indexes created in ApplyMigrations.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mdb "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/aussiebroadwan/taskapi/internal/tasks/store"
)

const (
	usersCollection = "users"
	tasksCollection = "tasks"

	migrateTimeout = 30 * time.Second
)

type Store struct {
	client *mdb.Client
	db     *mdb.Database
}

var _ store.Store = (*Store)(nil)

// NewStore connects to uri and uses the named database. The driver connects
// lazily; call Ping to confirm the server is reachable.
func NewStore(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mdb.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetAppName("taskapi").
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(database),
	}, nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ping verifies the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Users() store.Users { return &usersRepo{c: s.db.Collection(usersCollection)} }
func (s *Store) Tasks() store.Tasks { return &tasksRepo{c: s.db.Collection(tasksCollection)} }

// ApplyMigrations creates the indexes the repositories rely on. Index
// creation is idempotent.
func (s *Store) ApplyMigrations() error {
	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	_, err := s.db.Collection(usersCollection).Indexes().CreateMany(ctx, []mdb.IndexModel{
		{Keys: bson.D{{Key: "useremail", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_useremail")},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_username")},
		{Keys: bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}, Options: options.Index().SetName("created_order")},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	_, err = s.db.Collection(tasksCollection).Indexes().CreateMany(ctx, []mdb.IndexModel{
		{Keys: bson.D{{Key: "assignedUser", Value: 1}}, Options: options.Index().SetName("assigned_user")},
		{Keys: bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}, Options: options.Index().SetName("created_order")},
	})
	if err != nil {
		return fmt.Errorf("tasks indexes: %w", err)
	}
	return nil
}

var createdOrder = bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}

func mapNotFound(err error) error {
	if errors.Is(err, mdb.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}

func mapDuplicate(err error) error {
	if mdb.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %w", store.ErrAlreadyExists, err)
	}
	return err
}
