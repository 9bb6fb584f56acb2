package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tasklight/tasklight/internal/shared"
)

// Store holds user records in process memory. Mutations are serialized
// with a write lock so email uniqueness and id monotonicity hold under
// concurrent requests.
type Store struct {
	mu      sync.RWMutex
	users   map[int64]*User
	byEmail map[string]int64
	nextID  int64
}

// NewStore constructs an empty credential store.
func NewStore() *Store {
	return &Store{
		users:   make(map[int64]*User),
		byEmail: make(map[string]int64),
		nextID:  1,
	}
}

// Register creates a user with a bcrypt-hashed password. The display name
// defaults to the local part of the email when not supplied. Email
// matching is exact and case-sensitive.
func (s *Store) Register(ctx context.Context, name, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, shared.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = email
		if at := strings.Index(email, "@"); at > 0 {
			name = email[:at]
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return nil, shared.ErrDuplicateEmail
	}

	user := &User{
		ID:           s.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	s.nextID++
	s.users[user.ID] = user
	s.byEmail[user.Email] = user.ID

	out := *user
	return &out, nil
}

// Verify validates email/password credentials. Unknown email and wrong
// password surface the same error so callers cannot enumerate accounts.
func (s *Store) Verify(ctx context.Context, email, password string) (*User, error) {
	s.mu.RLock()
	id, ok := s.byEmail[email]
	var user *User
	if ok {
		u := *s.users[id]
		user = &u
	}
	s.mu.RUnlock()

	if user == nil {
		return nil, shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	return user, nil
}

// GetByID fetches a user by id.
func (s *Store) GetByID(ctx context.Context, id int64) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	out := *user
	return &out, nil
}
