package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nonprofit-cms-backend/internal/domains/content"
	"nonprofit-cms-backend/internal/domains/content/service"
	"nonprofit-cms-backend/internal/infrastructure/storage"
	"nonprofit-cms-backend/internal/shared/parse"
	"nonprofit-cms-backend/internal/shared/uploads"
)

type mockContentRepo struct{ mock.Mock }

var _ content.Repository = (*mockContentRepo)(nil)

func (m *mockContentRepo) Create(ctx context.Context, c *content.Content) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockContentRepo) FindByIDOrSlug(ctx context.Context, idOrSlug string) (*content.Content, error) {
	args := m.Called(ctx, idOrSlug)
	if doc := args.Get(0); doc != nil {
		return doc.(*content.Content), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContentRepo) FindAndIncrementViews(ctx context.Context, idOrSlug string) (*content.Content, error) {
	args := m.Called(ctx, idOrSlug)
	if doc := args.Get(0); doc != nil {
		return doc.(*content.Content), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContentRepo) List(ctx context.Context, filter content.ListFilter) ([]content.Content, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]content.Content), args.Get(1).(int64), args.Error(2)
}

func (m *mockContentRepo) Update(ctx context.Context, c *content.Content) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockContentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockContentRepo) Stats(ctx context.Context) (*content.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(*content.Stats), args.Error(1)
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

func header(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}

func TestCreateDerivesTimestampedSlug(t *testing.T) {
	repo := new(mockContentRepo)
	media := new(mockMediaStore)
	svc := service.NewContentService(repo, media)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*content.Content")).Return(nil)

	doc, err := svc.Create(context.Background(), content.CreateRequest{Topic: "Our Story"}, nil)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^our-story-\d+$`), doc.Slug)
	assert.Equal(t, content.StatusDraft, doc.Status)
	repo.AssertExpectations(t)
}

func TestCreateRejectsMalformedSubtopics(t *testing.T) {
	repo := new(mockContentRepo)
	media := new(mockMediaStore)
	svc := service.NewContentService(repo, media)

	req := content.CreateRequest{Topic: "Our Story", Subtopics: `[{"title": broken]`}

	_, err := svc.Create(context.Background(), req, nil)

	var parseErr *parse.ParseError
	require.ErrorAs(t, err, &parseErr)
	repo.AssertNotCalled(t, "Create")
	media.AssertNotCalled(t, "Store")
}

func TestCreateCompensatesUploadsOnPersistFailure(t *testing.T) {
	repo := new(mockContentRepo)
	media := new(mockMediaStore)
	svc := service.NewContentService(repo, media)

	files := []*multipart.FileHeader{header("a.jpg"), header("b.jpg")}
	media.On("Store", mock.Anything, "content", files[0]).
		Return(storage.StoredObject{URL: "http://cdn/a", StorageID: "content/a"}, nil)
	media.On("Store", mock.Anything, "content", files[1]).
		Return(storage.StoredObject{URL: "http://cdn/b", StorageID: "content/b"}, nil)

	persistErr := errors.New("connection reset")
	repo.On("Create", mock.Anything, mock.Anything).Return(persistErr)

	// exactly this request's uploads get deleted
	media.On("DeleteMany", mock.Anything, []string{"content/a", "content/b"}).Return(nil)

	_, err := svc.Create(context.Background(), content.CreateRequest{Topic: "Our Story"}, files)
	require.ErrorIs(t, err, persistErr)

	media.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUpdateCompensationSparesPreexistingImages(t *testing.T) {
	repo := new(mockContentRepo)
	media := new(mockMediaStore)
	svc := service.NewContentService(repo, media)

	id := uuid.New()
	existing := &content.Content{
		ID:     id,
		Topic:  "Our Story",
		Slug:   "our-story-1700000000000",
		Status: content.StatusPublished,
		Images: []uploads.Image{{URL: "http://cdn/old", StorageID: "content/old"}},
	}
	repo.On("FindByIDOrSlug", mock.Anything, id.String()).Return(existing, nil)

	newFile := header("new.jpg")
	media.On("Store", mock.Anything, "content", newFile).
		Return(storage.StoredObject{URL: "http://cdn/new", StorageID: "content/new"}, nil)

	repo.On("Update", mock.Anything, mock.Anything).Return(errors.New("deadlock"))

	// only the upload from this request is rolled back; content/old survives
	media.On("DeleteMany", mock.Anything, []string{"content/new"}).Return(nil)

	_, err := svc.Update(context.Background(), id, content.UpdateRequest{}, []*multipart.FileHeader{newFile})
	require.Error(t, err)

	media.AssertExpectations(t)
}

func TestUpdateRemovedImagesCleanedOnlyAfterSave(t *testing.T) {
	repo := new(mockContentRepo)
	media := new(mockMediaStore)
	svc := service.NewContentService(repo, media)

	id := uuid.New()
	existing := &content.Content{
		ID:     id,
		Topic:  "Our Story",
		Slug:   "our-story-1700000000000",
		Status: content.StatusPublished,
		Images: []uploads.Image{
			{URL: "http://cdn/keep", StorageID: "content/keep"},
			{URL: "http://cdn/drop", StorageID: "content/drop"},
		},
	}
	repo.On("FindByIDOrSlug", mock.Anything, id.String()).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	media.On("DeleteMany", mock.Anything, []string{"content/drop"}).Return(nil)

	doc, err := svc.Update(context.Background(), id,
		content.UpdateRequest{RemoveImages: "content/drop"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"content/keep"}, uploads.StorageIDs(doc.Images))
	media.AssertExpectations(t)
}

func TestUpdateSlugStaysPut(t *testing.T) {
	repo := new(mockContentRepo)
	media := new(mockMediaStore)
	svc := service.NewContentService(repo, media)

	id := uuid.New()
	existing := &content.Content{
		ID:     id,
		Topic:  "Our Story",
		Slug:   "our-story-1700000000000",
		Status: content.StatusDraft,
	}
	repo.On("FindByIDOrSlug", mock.Anything, id.String()).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	doc, err := svc.Update(context.Background(), id, content.UpdateRequest{Topic: "A Whole New Name"}, nil)
	require.NoError(t, err)

	// slug is immutable after creation even when the topic changes
	assert.Equal(t, "our-story-1700000000000", doc.Slug)
	assert.Equal(t, "A Whole New Name", doc.Topic)
}

func TestPatchCaptionsByStorageID(t *testing.T) {
	repo := new(mockContentRepo)
	media := new(mockMediaStore)
	svc := service.NewContentService(repo, media)

	id := uuid.New()
	existing := &content.Content{
		ID:     id,
		Topic:  "Our Story",
		Slug:   "our-story-1700000000000",
		Status: content.StatusPublished,
		Images: []uploads.Image{
			{StorageID: "content/a", Caption: "old"},
			{StorageID: "content/b"},
		},
	}
	repo.On("FindByIDOrSlug", mock.Anything, id.String()).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	doc, err := svc.PatchCaptions(context.Background(), id, content.CaptionPatch{
		Captions: map[string]string{"content/a": "volunteers at the well"},
	})
	require.NoError(t, err)

	assert.Equal(t, "volunteers at the well", doc.Images[0].Caption)
	assert.Empty(t, doc.Images[1].Caption)
}

func TestDeleteCleansUpMediaAfterRow(t *testing.T) {
	repo := new(mockContentRepo)
	media := new(mockMediaStore)
	svc := service.NewContentService(repo, media)

	id := uuid.New()
	existing := &content.Content{
		ID:     id,
		Slug:   "our-story-1700000000000",
		Images: []uploads.Image{{StorageID: "content/a"}, {StorageID: "content/b"}},
	}
	repo.On("FindByIDOrSlug", mock.Anything, id.String()).Return(existing, nil)
	repo.On("Delete", mock.Anything, id).Return(nil)
	media.On("DeleteMany", mock.Anything, []string{"content/a", "content/b"}).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))
	media.AssertExpectations(t)
}

func TestDeleteNotFoundSkipsCleanup(t *testing.T) {
	repo := new(mockContentRepo)
	media := new(mockMediaStore)
	svc := service.NewContentService(repo, media)

	id := uuid.New()
	repo.On("FindByIDOrSlug", mock.Anything, id.String()).Return(nil, content.ErrNotFound)

	err := svc.Delete(context.Background(), id)
	require.ErrorIs(t, err, content.ErrNotFound)
	media.AssertNotCalled(t, "DeleteMany")
}
