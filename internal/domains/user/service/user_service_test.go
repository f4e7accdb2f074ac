package service_test

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"nonprofit-cms-backend/internal/domains/user"
	"nonprofit-cms-backend/internal/domains/user/service"
	"nonprofit-cms-backend/internal/infrastructure/storage"
	"nonprofit-cms-backend/pkg/jwt"
)

type mockUserRepo struct{ mock.Mock }

var _ user.Repository = (*mockUserRepo)(nil)

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

type mockMediaStore struct{ mock.Mock }

var _ storage.MediaStore = (*mockMediaStore)(nil)

func (m *mockMediaStore) Store(ctx context.Context, folder string, file *multipart.FileHeader) (storage.StoredObject, error) {
	args := m.Called(ctx, folder, file)
	return args.Get(0).(storage.StoredObject), args.Error(1)
}

func (m *mockMediaStore) Delete(ctx context.Context, storageID string) error {
	return m.Called(ctx, storageID).Error(0)
}

func (m *mockMediaStore) DeleteMany(ctx context.Context, storageIDs []string) error {
	return m.Called(ctx, storageIDs).Error(0)
}

func newService(repo user.Repository) user.Service {
	return service.NewUserService(repo, new(mockMediaStore), jwt.NewManager("test-secret"))
}

func registerReq() user.RegisterRequest {
	return user.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.org",
		Password: "s3cret-pass",
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newService(repo)

	repo.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
	repo.On("ExistsByEmail", mock.Anything, "alice@example.org").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil)

	resp, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.Username)

	claims, err := jwt.NewManager("test-secret").ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestRegisterUsernameTaken(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newService(repo)

	repo.On("ExistsByUsername", mock.Anything, "alice").Return(true, nil)

	_, err := svc.Register(context.Background(), registerReq())
	require.ErrorIs(t, err, user.ErrUsernameTaken)
	repo.AssertNotCalled(t, "Create")
}

func TestRegisterEmailTaken(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newService(repo)

	repo.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
	repo.On("ExistsByEmail", mock.Anything, "alice@example.org").Return(true, nil)

	_, err := svc.Register(context.Background(), registerReq())
	require.ErrorIs(t, err, user.ErrEmailTaken)
	repo.AssertNotCalled(t, "Create")
}

func TestLoginWrongPassword(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newService(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("the-right-one"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.On("FindByEmail", mock.Anything, "alice@example.org").Return(&user.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.org",
		PasswordHash: string(hash),
	}, nil)

	_, err = svc.Login(context.Background(), user.LoginRequest{
		Email:    "alice@example.org",
		Password: "guess",
	})
	require.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginUnknownEmailHidesExistence(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newService(repo)

	repo.On("FindByEmail", mock.Anything, "ghost@example.org").Return(nil, user.ErrNotFound)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "ghost@example.org",
		Password: "whatever",
	})

	// same error as a wrong password, so the email cannot be probed
	require.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestChangePasswordRequiresCurrent(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newService(repo)

	id := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("current-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, id).Return(&user.User{ID: id, PasswordHash: string(hash)}, nil)

	err = svc.ChangePassword(context.Background(), id, user.ChangePasswordRequest{
		CurrentPassword: "not-the-current",
		NewPassword:     "brand-new-pass",
	})
	require.ErrorIs(t, err, user.ErrWrongPassword)
	repo.AssertNotCalled(t, "UpdatePassword")
}

func TestChangePasswordRejectsReuse(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newService(repo)

	id := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("current-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, id).Return(&user.User{ID: id, PasswordHash: string(hash)}, nil)

	err = svc.ChangePassword(context.Background(), id, user.ChangePasswordRequest{
		CurrentPassword: "current-pass",
		NewPassword:     "current-pass",
	})
	require.ErrorIs(t, err, user.ErrSamePassword)
	repo.AssertNotCalled(t, "UpdatePassword")
}

func TestChangePasswordRehashes(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newService(repo)

	id := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("current-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, id).Return(&user.User{ID: id, PasswordHash: string(hash)}, nil)
	repo.On("UpdatePassword", mock.Anything, id, mock.MatchedBy(func(newHash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(newHash), []byte("brand-new-pass")) == nil
	})).Return(nil)

	err = svc.ChangePassword(context.Background(), id, user.ChangePasswordRequest{
		CurrentPassword: "current-pass",
		NewPassword:     "brand-new-pass",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetProfileNeverLeaksHash(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newService(repo)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(&user.User{
		ID:           id,
		Username:     "alice",
		Email:        "alice@example.org",
		PasswordHash: "$2a$12$secret",
	}, nil)

	dto, err := svc.GetProfile(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "alice", dto.Username)
	// the DTO type has no password field at all; spot-check the id mapping
	assert.Equal(t, id, dto.ID)
}
