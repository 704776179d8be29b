package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/pkg/event"
	"github.com/shashiranjanraj/foodcourt/pkg/kv"
)

const slotKey = "currentUser"

func newSession(t *testing.T, store kv.Store) *services.SessionService {
	t.Helper()
	s, err := services.NewSessionService(context.Background(), store, slotKey, event.NewBus())
	require.NoError(t, err)
	return s
}

func TestLoginRejectsEmptyFields(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	s := newSession(t, store)

	_, err := s.Login(ctx, "john@example.com", "")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	_, err = s.Login(ctx, "", "secret")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	assert.False(t, s.IsLoggedIn())
	_, ok, _ := store.Get(ctx, slotKey)
	assert.False(t, ok)
}

func TestLoginRejectionKeepsExistingUser(t *testing.T) {
	ctx := context.Background()
	s := newSession(t, kv.NewMemory())

	_, err := s.Login(ctx, "first@example.com", "pw")
	require.NoError(t, err)
	_, err = s.Login(ctx, "second@example.com", "")
	require.Error(t, err)

	u, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "first@example.com", u.Email)
}

func TestLoginPublishesMockUserAndPersists(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	s := newSession(t, store)

	u, err := s.Login(ctx, "anyone@example.com", "anything")
	require.NoError(t, err)

	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "anyone@example.com", u.Email)
	assert.Equal(t, "John Doe", u.Name)
	assert.Equal(t, "+1234567890", u.Phone)
	assert.Equal(t, "123 Main St, City, State 12345", u.Address)
	assert.True(t, s.IsLoggedIn())

	raw, ok, err := store.Get(ctx, slotKey)
	require.NoError(t, err)
	require.True(t, ok)
	var persisted models.User
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, u, persisted)
}

func TestRegisterUsesSuppliedFields(t *testing.T) {
	ctx := context.Background()
	s := newSession(t, kv.NewMemory())

	u, err := s.Register(ctx, "jane@example.com", "pw", "Jane", "+44 20", "1 High St")
	require.NoError(t, err)

	assert.Positive(t, u.ID)
	assert.Equal(t, "Jane", u.Name)
	assert.Equal(t, "1 High St", u.Address)

	cur, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, u, cur)
}

func TestLogoutClearsSessionAndSlot(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	s := newSession(t, store)

	_, err := s.Login(ctx, "john@example.com", "pw")
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx))

	assert.False(t, s.IsLoggedIn())
	_, ok, err := store.Get(ctx, slotKey)
	require.NoError(t, err)
	assert.False(t, ok)

	fresh := newSession(t, store)
	assert.False(t, fresh.IsLoggedIn())
}

func TestFreshStartWithoutSlotHasNoUser(t *testing.T) {
	s := newSession(t, kv.NewMemory())
	_, ok := s.CurrentUser()
	assert.False(t, ok)
}

func TestRehydratesFromSlot(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()

	first := newSession(t, store)
	_, err := first.Login(ctx, "john@example.com", "pw")
	require.NoError(t, err)

	second := newSession(t, store)
	u, ok := second.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "john@example.com", u.Email)
}

func TestMalformedSlotFailsStartup(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, slotKey, "{not json"))

	_, err := services.NewSessionService(ctx, store, slotKey, event.NewBus())
	assert.Error(t, err)
}

type failingStore struct{ kv.Store }

func (failingStore) Set(context.Context, string, string) error { return errors.New("quota exceeded") }

func TestSlotWriteFailureLeavesSessionUntouched(t *testing.T) {
	ctx := context.Background()
	s := newSession(t, failingStore{kv.NewMemory()})

	_, err := s.Login(ctx, "john@example.com", "pw")
	assert.Error(t, err)
	assert.False(t, s.IsLoggedIn())
}

func TestSessionSubscribe(t *testing.T) {
	ctx := context.Background()
	s := newSession(t, kv.NewMemory())

	var seen []*models.User
	stop := s.Subscribe(func(u *models.User) { seen = append(seen, u) })

	require.Len(t, seen, 1)
	assert.Nil(t, seen[0])

	_, err := s.Login(ctx, "john@example.com", "pw")
	require.NoError(t, err)
	require.Len(t, seen, 2)
	assert.Equal(t, "john@example.com", seen[1].Email)

	require.NoError(t, s.Logout(ctx))
	require.Len(t, seen, 3)
	assert.Nil(t, seen[2])

	stop()
	_, _ = s.Login(ctx, "again@example.com", "pw")
	assert.Len(t, seen, 3)
}
