package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nonprofit-cms-backend/internal/domains/project"
	"nonprofit-cms-backend/internal/domains/project/service"
	"nonprofit-cms-backend/internal/infrastructure/storage"
	"nonprofit-cms-backend/internal/shared/uploads"
)

type mockProjectRepo struct{ mock.Mock }

var _ project.Repository = (*mockProjectRepo)(nil)

func (m *mockProjectRepo) Create(ctx context.Context, p *project.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*project.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectRepo) List(ctx context.Context, filter project.ListFilter) ([]project.Project, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]project.Project), args.Get(1).(int64), args.Error(2)
}

func (m *mockProjectRepo) Update(ctx context.Context, p *project.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProjectRepo) Stats(ctx context.Context) (*project.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(*project.Stats), args.Error(1)
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

var assertErr = errors.New("deadlock detected")

func seeded(id uuid.UUID) *project.Project {
	return &project.Project{
		ID:       id,
		Title:    "Village Well",
		Goal:     "Fund ten wells",
		Icon:     "droplet",
		IsActive: true,
		Images: []uploads.Image{
			{URL: "http://cdn/a", StorageID: "projects/a"},
			{URL: "http://cdn/b", StorageID: "projects/b"},
		},
	}
}

func TestUpdateAppendsNewImagesInOrder(t *testing.T) {
	repo := new(mockProjectRepo)
	media := new(mockMediaStore)
	svc := service.NewProjectService(repo, media)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(seeded(id), nil)

	file := &multipart.FileHeader{Filename: "c.jpg"}
	media.On("Store", mock.Anything, "projects", file).
		Return(storage.StoredObject{URL: "http://cdn/c", StorageID: "projects/c"}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Update(context.Background(), id, project.UpdateRequest{},
		[]*multipart.FileHeader{file})
	require.NoError(t, err)

	// existing images survive, the new one lands at the end
	assert.Equal(t, []string{"projects/a", "projects/b", "projects/c"},
		uploads.StorageIDs(p.Images))
}

func TestRemoveImageDetachesThenDeletes(t *testing.T) {
	repo := new(mockProjectRepo)
	media := new(mockMediaStore)
	svc := service.NewProjectService(repo, media)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(seeded(id), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	media.On("DeleteMany", mock.Anything, []string{"projects/a"}).Return(nil)

	p, err := svc.RemoveImage(context.Background(), id, "projects/a")
	require.NoError(t, err)

	assert.Equal(t, []string{"projects/b"}, uploads.StorageIDs(p.Images))
	media.AssertExpectations(t)
}

func TestRemoveImageUnknownStorageID(t *testing.T) {
	repo := new(mockProjectRepo)
	media := new(mockMediaStore)
	svc := service.NewProjectService(repo, media)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(seeded(id), nil)

	_, err := svc.RemoveImage(context.Background(), id, "projects/nope")

	require.ErrorIs(t, err, project.ErrImageNotFound)
	repo.AssertNotCalled(t, "Update")
	media.AssertNotCalled(t, "DeleteMany")
}

func TestRemoveImageKeepsStoreObjectWhenSaveFails(t *testing.T) {
	repo := new(mockProjectRepo)
	media := new(mockMediaStore)
	svc := service.NewProjectService(repo, media)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(seeded(id), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(assertErr)

	_, err := svc.RemoveImage(context.Background(), id, "projects/a")

	require.ErrorIs(t, err, assertErr)
	// the row still references the image, so the object must stay
	media.AssertNotCalled(t, "DeleteMany")
}

func TestToggleStatusFlips(t *testing.T) {
	repo := new(mockProjectRepo)
	media := new(mockMediaStore)
	svc := service.NewProjectService(repo, media)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(seeded(id), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	p, err := svc.ToggleStatus(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, p.IsActive)
}

func TestCreateWrapsBareDescription(t *testing.T) {
	repo := new(mockProjectRepo)
	media := new(mockMediaStore)
	svc := service.NewProjectService(repo, media)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Create(context.Background(), project.CreateRequest{
		Title:       "Village Well",
		Goal:        "Fund ten wells",
		Icon:        "droplet",
		Description: "One paragraph only.",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"One paragraph only."}, p.Description)
	assert.True(t, p.IsActive)
	assert.Equal(t, 0, p.Order)
}

func TestCreateRejectsUnknownIcon(t *testing.T) {
	repo := new(mockProjectRepo)
	media := new(mockMediaStore)
	svc := service.NewProjectService(repo, media)

	_, err := svc.Create(context.Background(), project.CreateRequest{
		Title: "Village Well",
		Goal:  "Fund ten wells",
		Icon:  "rocket",
	}, nil)

	require.Error(t, err)
	repo.AssertNotCalled(t, "Create")
}
