package application

import (
	"context"
	"io"
	"strconv"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-auth-api/internal/domain/entity"
	repo "github.com/oksasatya/go-auth-api/internal/domain/repository"
	"github.com/oksasatya/go-auth-api/pkg/helpers"
)

// fakeUserRepo is an in-memory store enforcing the unique-email constraint
// the same way the postgres repository does.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
	nextID  int

	createErr   error
	getEmailErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*entity.User{},
		byID:    map[string]*entity.User{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return repo.ErrDuplicateEmail
	}
	f.nextID++
	u.ID = "id-" + strconv.Itoa(f.nextID)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.byEmail[u.Email] = &cp
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.getEmailErr != nil {
		return nil, f.getEmailErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func newTestService(r repo.UserRepository) *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	jwt := helpers.NewJWTManager("test-secret", 3600*time.Second)
	return NewService(r, jwt, logger, nil, nil, "", false)
}

func TestRegister_Success(t *testing.T) {
	f := newFakeUserRepo()
	s := newTestService(f)

	u, err := s.Register(context.Background(), "A", "a@x.com", "secret1")
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "A", u.Name)
	assert.Equal(t, "a@x.com", u.Email)
	// Stored password is a hash, never the plaintext.
	assert.NotEqual(t, "secret1", u.Password)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "secret1"))
	// Avatar derived from the registration email.
	assert.Contains(t, u.AvatarURL, "gravatar.com/avatar/743173788aa9166801df2e18f0e7ff24")
	assert.Contains(t, u.AvatarURL, "s=200")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFakeUserRepo()
	s := newTestService(f)

	_, err := s.Register(context.Background(), "A", "a@x.com", "secret1")
	require.NoError(t, err)

	_, err = s.Register(context.Background(), "B", "a@x.com", "other-secret")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, f.byEmail, 1)
}

func TestRegister_ConstraintViolationMapsToEmailTaken(t *testing.T) {
	// The pre-insert check can miss a concurrent insert; the store's unique
	// constraint reports it and the service surfaces the same conflict.
	f := newFakeUserRepo()
	f.createErr = repo.ErrDuplicateEmail
	s := newTestService(f)

	_, err := s.Register(context.Background(), "A", "a@x.com", "secret1")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_StoreErrorPropagates(t *testing.T) {
	f := newFakeUserRepo()
	f.getEmailErr = assert.AnError
	s := newTestService(f)

	_, err := s.Register(context.Background(), "A", "a@x.com", "secret1")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestLogin_Success(t *testing.T) {
	f := newFakeUserRepo()
	s := newTestService(f)

	created, err := s.Register(context.Background(), "A", "a@x.com", "secret1")
	require.NoError(t, err)

	token, exp, err := s.Login(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(3600*time.Second), exp, 5*time.Second)

	// A token verified before expiry recovers the id used at issuance.
	claims, err := s.JWT.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
	assert.Equal(t, "A", claims.Name)
	assert.Equal(t, created.AvatarURL, claims.Avatar)
}

func TestLogin_UserNotFound(t *testing.T) {
	s := newTestService(newFakeUserRepo())

	_, _, err := s.Login(context.Background(), "missing@x.com", "x")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_PasswordIncorrect(t *testing.T) {
	f := newFakeUserRepo()
	s := newTestService(f)

	_, err := s.Register(context.Background(), "A", "a@x.com", "secret1")
	require.NoError(t, err)

	_, _, err = s.Login(context.Background(), "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestCurrentUser(t *testing.T) {
	f := newFakeUserRepo()
	s := newTestService(f)

	created, err := s.Register(context.Background(), "A", "a@x.com", "secret1")
	require.NoError(t, err)

	u, err := s.CurrentUser(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
	assert.Equal(t, "a@x.com", u.Email)

	_, err = s.CurrentUser(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSearchUsers_NoESConfigured(t *testing.T) {
	s := newTestService(newFakeUserRepo())
	out, err := s.SearchUsers(context.Background(), "alice", 10)
	require.NoError(t, err)
	assert.Empty(t, out)
}
