package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/notes-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const (
	userColumns    = `id, username, email, full_name, avatar, password_hash, refresh_token, created_at, updated_at`
	profileColumns = `id, username, email, full_name, avatar, created_at, updated_at`
)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.FullName, &user.Avatar,
		&user.PasswordHash, &user.RefreshToken, &user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}

func scanProfile(row pgx.Row) (model.Profile, error) {
	var p model.Profile
	err := row.Scan(&p.ID, &p.Username, &p.Email, &p.FullName, &p.Avatar, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// GetProfileByID reads only the public columns so secrets never leave the database.
func (r *UserRepository) GetProfileByID(ctx context.Context, id uuid.UUID) (model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM users WHERE id = $1`

	p, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile by id: %w", err)
	}

	return p, nil
}

// GetByUsernameOrEmail matches either identifier. Empty arguments never match.
func (r *UserRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
			  WHERE ($1 <> '' AND username = $1) OR ($2 <> '' AND email = $2)
			  ORDER BY created_at
			  LIMIT 1`

	user, err := scanUser(r.db.QueryRow(ctx, query, username, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by username or email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Exists(ctx context.Context, username, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, username, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.Profile, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	query := `INSERT INTO users (id, username, email, full_name, avatar, password_hash)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + profileColumns

	p, err := scanProfile(r.db.QueryRow(ctx, query,
		user.ID, user.Username, user.Email, user.FullName, user.Avatar, user.PasswordHash,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Profile{}, model.ErrAlreadyExists
		}
		return model.Profile{}, fmt.Errorf("failed to create user: %w", err)
	}

	return p, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (model.Profile, error) {
	query := `UPDATE users SET
				username = COALESCE($2, username),
				full_name = COALESCE($3, full_name),
				avatar = COALESCE($4, avatar),
				updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + profileColumns

	p, err := scanProfile(r.db.QueryRow(ctx, query, id, update.Username, update.FullName, update.Avatar))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Profile{}, model.ErrAlreadyExists
		}
		return model.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return p, nil
}

// UpdatePassword stores a new hash. When revokeSession is set the refresh slot is cleared in the same statement.
func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, revokeSession bool) error {
	const query = `UPDATE users SET
					password_hash = $2,
					refresh_token = CASE WHEN $3 THEN NULL ELSE refresh_token END,
					updated_at = NOW()
				   WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id, passwordHash, revokeSession)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *UserRepository) SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	const query = `UPDATE users SET refresh_token = $2, updated_at = NOW() WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id, token)
	if err != nil {
		return fmt.Errorf("failed to set refresh token: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// SwapRefreshToken replaces the stored token only if it still equals expected.
// Of two concurrent swaps with the same expected value at most one succeeds.
func (r *UserRepository) SwapRefreshToken(ctx context.Context, id uuid.UUID, expected, next string) error {
	const query = `UPDATE users SET refresh_token = $3, updated_at = NOW()
				   WHERE id = $1 AND refresh_token = $2`

	cmd, err := r.db.Exec(ctx, query, id, expected, next)
	if err != nil {
		return fmt.Errorf("failed to swap refresh token: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrRefreshTokenMismatch
	}
	return nil
}

// ClearRefreshToken is idempotent.
func (r *UserRepository) ClearRefreshToken(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE users SET refresh_token = NULL, updated_at = NOW() WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}
