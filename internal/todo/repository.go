package todo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/tasklight/tasklight/internal/shared"
)

// Repository holds todo records in process memory. Every operation is
// scoped to the owner id resolved by the authorizer: a todo owned by a
// different user is indistinguishable from a missing one. The slice keeps
// insertion order so List never reorders.
type Repository struct {
	mu     sync.RWMutex
	todos  []*Todo
	nextID int64
}

// NewRepository constructs an empty todo repository.
func NewRepository() *Repository {
	return &Repository{nextID: 1}
}

// List returns the owner's todos in creation order. The result is always
// non-nil so an empty list serializes as [] rather than null.
func (r *Repository) List(ctx context.Context, ownerID int64) ([]Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Todo, 0)
	for _, t := range r.todos {
		if t.OwnerID == ownerID {
			out = append(out, *t)
		}
	}
	return out, nil
}

// Add creates a todo for the owner. Text is trimmed before storing;
// empty or whitespace-only text is rejected without creating a record.
func (r *Repository) Add(ctx context.Context, ownerID int64, text string) (*Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, shared.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t := &Todo{
		ID:        r.nextID,
		OwnerID:   ownerID,
		Text:      text,
		Completed: false,
		CreatedAt: time.Now(),
	}
	r.nextID++
	r.todos = append(r.todos, t)

	out := *t
	return &out, nil
}

// Update applies the patch to the owner's todo. Only fields present in
// the patch are written; patched text is trimmed and must stay non-empty.
func (r *Repository) Update(ctx context.Context, ownerID, id int64, patch Patch) (*Todo, error) {
	var text string
	if patch.Text != nil {
		text = strings.TrimSpace(*patch.Text)
		if text == "" {
			return nil, shared.ErrInvalidInput
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.find(ownerID, id)
	if t == nil {
		return nil, shared.ErrNotFound
	}
	if patch.Text != nil {
		t.Text = text
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}

	out := *t
	return &out, nil
}

// Remove deletes the owner's todo. Ids are never reused.
func (r *Repository) Remove(ctx context.Context, ownerID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.todos {
		if t.ID == id && t.OwnerID == ownerID {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

// find returns the live record for id when owned by ownerID. Callers hold
// the write lock.
func (r *Repository) find(ownerID, id int64) *Todo {
	for _, t := range r.todos {
		if t.ID == id && t.OwnerID == ownerID {
			return t
		}
	}
	return nil
}
