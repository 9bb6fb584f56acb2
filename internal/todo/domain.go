package todo

import "time"

// Todo is a single list item owned by one user.
type Todo struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"-"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	Text      *string
	Completed *bool
}
