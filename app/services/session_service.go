package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/pkg/event"
	"github.com/shashiranjanraj/foodcourt/pkg/kv"
	"github.com/shashiranjanraj/foodcourt/pkg/logger"
	"github.com/shashiranjanraj/foodcourt/pkg/metrics"
)

// mockUser is the record every successful login produces.
var mockUser = models.User{
	ID:      1,
	Name:    "John Doe",
	Phone:   "+1234567890",
	Address: "123 Main St, City, State 12345",
}

// SessionService holds the single signed-in user and mirrors it to one
// slot in a kv.Store.
//
// pubMu serialises each mutation with its publish so subscribers see
// changes in order. Subscribers must not mutate the session from inside
// their callback.
type SessionService struct {
	pubMu sync.Mutex
	mu    sync.RWMutex
	user  *models.User

	store kv.Store
	key   string
	bus   *event.Bus
	now   func() time.Time
}

// NewSessionService rehydrates the user from the slot, if present. A slot
// that does not hold a JSON user is a startup error.
func NewSessionService(ctx context.Context, store kv.Store, key string, bus *event.Bus) (*SessionService, error) {
	s := &SessionService{store: store, key: key, bus: bus, now: time.Now}

	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("services: session: read slot %q: %w", key, err)
	}
	if ok {
		var u models.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			return nil, fmt.Errorf("services: session: malformed slot %q: %w", key, err)
		}
		s.user = &u
		logger.Info("session restored", "driver", store.Driver(), "user_id", u.ID)
	}
	return s, nil
}

// Login signs in anyone who supplies a non-empty email and password.
func (s *SessionService) Login(ctx context.Context, email, password string) (models.User, error) {
	if email == "" || password == "" {
		metrics.Logins.WithLabelValues("rejected").Inc()
		return models.User{}, ErrInvalidCredentials
	}

	u := mockUser
	u.Email = email
	if err := s.replace(ctx, &u); err != nil {
		return models.User{}, err
	}

	metrics.Logins.WithLabelValues("success").Inc()
	logger.WithCtx(ctx).Info("user logged in", "user_id", u.ID)
	return u, nil
}

// Register always succeeds; the ID is the current time in milliseconds.
func (s *SessionService) Register(ctx context.Context, email, password, name, phone, address string) (models.User, error) {
	_ = password // accepted and discarded, there is no account store
	u := models.User{
		ID:      s.now().UnixMilli(),
		Email:   email,
		Name:    name,
		Phone:   phone,
		Address: address,
	}
	if err := s.replace(ctx, &u); err != nil {
		return models.User{}, err
	}

	logger.WithCtx(ctx).Info("user registered", "user_id", u.ID)
	return u, nil
}

// Logout clears the user and deletes the slot.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.replace(ctx, nil); err != nil {
		return err
	}
	logger.WithCtx(ctx).Info("user logged out")
	return nil
}

// CurrentUser returns a copy of the signed-in user.
func (s *SessionService) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *SessionService) IsLoggedIn() bool {
	_, ok := s.CurrentUser()
	return ok
}

// Subscribe calls fn with the current user (nil when signed out) and then
// after every change until the returned func is called.
func (s *SessionService) Subscribe(fn func(*models.User)) func() {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	unlisten := s.bus.Listen(EventSessionChanged, func(p any) {
		u, _ := p.(*models.User)
		fn(u)
	})
	fn(s.snapshot())
	return unlisten
}

// replace writes the slot first so a storage failure leaves the session
// untouched, then swaps the user and publishes.
func (s *SessionService) replace(ctx context.Context, u *models.User) error {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	if u == nil {
		if err := s.store.Delete(ctx, s.key); err != nil {
			return fmt.Errorf("services: session: clear slot: %w", err)
		}
	} else {
		data, err := json.Marshal(u)
		if err != nil {
			return fmt.Errorf("services: session: encode user: %w", err)
		}
		if err := s.store.Set(ctx, s.key, string(data)); err != nil {
			return fmt.Errorf("services: session: write slot: %w", err)
		}
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()

	s.bus.Fire(EventSessionChanged, s.snapshot())
	return nil
}

func (s *SessionService) snapshot() *models.User {
	u, ok := s.CurrentUser()
	if !ok {
		return nil
	}
	return &u
}
