package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tasklight/tasklight/internal/shared"
)

func TestRegisterAssignsMonotonicIDs(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	first, err := store.Register(ctx, "Alice", "a@x.com", "secret123")
	require.NoError(t, err)
	second, err := store.Register(ctx, "Bob", "b@x.com", "secret456")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	first, err := store.Register(ctx, "Alice", "a@x.com", "secret123")
	require.NoError(t, err)

	_, err = store.Register(ctx, "Impostor", "a@x.com", "other")
	require.ErrorIs(t, err, shared.ErrDuplicateEmail)

	// First user is unaffected.
	got, err := store.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "a@x.com", got.Email)
}

func TestRegisterNameDefaultsToEmailLocalPart(t *testing.T) {
	store := NewStore()

	user, err := store.Register(context.Background(), "", "carol@example.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, "carol", user.Name)
}

func TestRegisterRejectsEmptyFields(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Register(ctx, "A", "", "pw")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = store.Register(ctx, "A", "a@x.com", "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	store := NewStore()

	user, err := store.Register(context.Background(), "Alice", "a@x.com", "secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func TestVerifyRoundTrip(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	registered, err := store.Register(ctx, "Alice", "a@x.com", "secret123")
	require.NoError(t, err)

	verified, err := store.Verify(ctx, "a@x.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, verified.ID)
}

func TestVerifyDoesNotDistinguishFailureModes(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Register(ctx, "Alice", "a@x.com", "secret123")
	require.NoError(t, err)

	_, unknownErr := store.Verify(ctx, "nobody@x.com", "secret123")
	_, wrongErr := store.Verify(ctx, "a@x.com", "wrongpass")

	assert.ErrorIs(t, unknownErr, shared.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, shared.ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongErr)
}

func TestVerifyEmailIsCaseSensitive(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Register(ctx, "Alice", "a@x.com", "secret123")
	require.NoError(t, err)

	_, err = store.Verify(ctx, "A@X.COM", "secret123")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestGetByIDNotFound(t *testing.T) {
	store := NewStore()

	_, err := store.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestStoreReturnsCopies(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	user, err := store.Register(ctx, "Alice", "a@x.com", "secret123")
	require.NoError(t, err)

	user.Name = "Mallory"

	got, err := store.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
}
