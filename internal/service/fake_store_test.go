package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/notes-server/internal/model"
)

// memUserStore is an in-memory UserStore with the same slot semantics as the postgres one.
type memUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
}

var _ model.UserStore = (*memUserStore)(nil)

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uuid.UUID]model.User)}
}

func (s *memUserStore) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s *memUserStore) GetProfileByID(ctx context.Context, id uuid.UUID) (model.Profile, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return model.Profile{}, err
	}
	return u.Profile(), nil
}

func (s *memUserStore) GetByUsernameOrEmail(_ context.Context, username, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (s *memUserStore) Exists(_ context.Context, username, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *memUserStore) Create(_ context.Context, user model.User) (model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return model.Profile{}, model.ErrAlreadyExists
		}
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	s.users[user.ID] = user
	return user.Profile(), nil
}

func (s *memUserStore) UpdateProfile(_ context.Context, id uuid.UUID, update model.ProfileUpdate) (model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.Profile{}, model.ErrNotFound
	}
	if update.Username != nil {
		u.Username = *update.Username
	}
	if update.FullName != nil {
		u.FullName = *update.FullName
	}
	if update.Avatar != nil {
		u.Avatar = *update.Avatar
	}
	s.users[id] = u
	return u.Profile(), nil
}

func (s *memUserStore) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string, revokeSession bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.ErrNotFound
	}
	u.PasswordHash = passwordHash
	if revokeSession {
		u.RefreshToken = nil
	}
	s.users[id] = u
	return nil
}

func (s *memUserStore) SetRefreshToken(_ context.Context, id uuid.UUID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.ErrNotFound
	}
	u.RefreshToken = &token
	s.users[id] = u
	return nil
}

func (s *memUserStore) SwapRefreshToken(_ context.Context, id uuid.UUID, expected, next string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok || u.RefreshToken == nil || *u.RefreshToken != expected {
		return model.ErrRefreshTokenMismatch
	}
	u.RefreshToken = &next
	s.users[id] = u
	return nil
}

func (s *memUserStore) ClearRefreshToken(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		u.RefreshToken = nil
		s.users[id] = u
	}
	return nil
}

func (s *memUserStore) delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}
