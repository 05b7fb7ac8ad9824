package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/taskapi/internal/tasks/domain"
	"github.com/aussiebroadwan/taskapi/internal/tasks/store"
	"github.com/aussiebroadwan/taskapi/internal/tasks/store/drivers/sqlite/gen"
)

type usersRepo struct {
	db *sql.DB
	q  *gen.Queries
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt.UTC(),
		UpdatedAt:    u.UpdatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, len(rows))
	for i, row := range rows {
		out[i] = mapUser(row)
	}
	return out, nil
}

func (r *usersRepo) ExistsWithEmailOrUsername(ctx context.Context, email, username, excludeID string) (bool, error) {
	n, err := r.q.CountUsersWithEmailOrUsername(ctx, gen.CountUsersWithEmailOrUsernameParams{
		Email:     email,
		Username:  username,
		ExcludeID: excludeID,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *usersRepo) UpdateProfile(ctx context.Context, id string, p domain.UserPatch) (domain.User, error) {
	var out domain.User
	err := withTx(ctx, r.db, r.q, func(q *gen.Queries) error {
		n, err := q.UpdateUserProfile(ctx, gen.UpdateUserProfileParams{
			Username:  mapOptionalString(p.Username),
			Email:     mapOptionalString(p.Email),
			UpdatedAt: p.UpdatedAt.UTC(),
			ID:        id,
		})
		if err != nil {
			return mapConstraint(err)
		}
		if n == 0 {
			return store.ErrNotFound
		}

		row, err := q.GetUserByID(ctx, id)
		if err != nil {
			return mapNotFound(err)
		}
		out = mapUser(row)
		return nil
	})
	return out, err
}
