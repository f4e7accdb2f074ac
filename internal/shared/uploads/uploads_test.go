package uploads_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nonprofit-cms-backend/internal/infrastructure/storage"
	"nonprofit-cms-backend/internal/shared/uploads"
)

type mockMediaStore struct{ mock.Mock }

var _ storage.MediaStore = (*mockMediaStore)(nil)

func (m *mockMediaStore) Store(ctx context.Context, folder string, file *multipart.FileHeader) (storage.StoredObject, error) {
	args := m.Called(ctx, folder, file)
	return args.Get(0).(storage.StoredObject), args.Error(1)
}

func (m *mockMediaStore) Delete(ctx context.Context, storageID string) error {
	args := m.Called(ctx, storageID)
	return args.Error(0)
}

func (m *mockMediaStore) DeleteMany(ctx context.Context, storageIDs []string) error {
	args := m.Called(ctx, storageIDs)
	return args.Error(0)
}

func header(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}

func TestCollectPreservesOrder(t *testing.T) {
	store := new(mockMediaStore)
	files := []*multipart.FileHeader{header("a.jpg"), header("b.jpg"), header("c.jpg")}

	store.On("Store", mock.Anything, "gallery", files[0]).
		Return(storage.StoredObject{URL: "http://cdn/a", StorageID: "gallery/a"}, nil)
	store.On("Store", mock.Anything, "gallery", files[1]).
		Return(storage.StoredObject{URL: "http://cdn/b", StorageID: "gallery/b"}, nil)
	store.On("Store", mock.Anything, "gallery", files[2]).
		Return(storage.StoredObject{URL: "http://cdn/c", StorageID: "gallery/c"}, nil)

	images, err := uploads.Collect(context.Background(), store, "gallery", files)
	require.NoError(t, err)

	assert.Equal(t, []string{"gallery/a", "gallery/b", "gallery/c"}, uploads.StorageIDs(images))
	store.AssertExpectations(t)
}

func TestCollectRollsBackOnMidBatchFailure(t *testing.T) {
	store := new(mockMediaStore)
	files := []*multipart.FileHeader{header("a.jpg"), header("b.jpg"), header("c.jpg")}

	store.On("Store", mock.Anything, "content", files[0]).
		Return(storage.StoredObject{URL: "http://cdn/a", StorageID: "content/a"}, nil)
	store.On("Store", mock.Anything, "content", files[1]).
		Return(storage.StoredObject{URL: "http://cdn/b", StorageID: "content/b"}, nil)
	upstream := &storage.MediaError{Reason: storage.ReasonUpstream, Err: errors.New("boom")}
	store.On("Store", mock.Anything, "content", files[2]).
		Return(storage.StoredObject{}, upstream)

	// exactly the two already-stored objects are compensated
	store.On("DeleteMany", mock.Anything, []string{"content/a", "content/b"}).Return(nil)

	images, err := uploads.Collect(context.Background(), store, "content", files)
	require.Error(t, err)
	assert.Nil(t, images)

	var mediaErr *storage.MediaError
	assert.ErrorAs(t, err, &mediaErr)
	store.AssertExpectations(t)
}

func TestCollectNoFiles(t *testing.T) {
	store := new(mockMediaStore)

	images, err := uploads.Collect(context.Background(), store, "content", nil)
	require.NoError(t, err)
	assert.Empty(t, images)
	store.AssertNotCalled(t, "Store")
}

func TestRollbackSwallowsDeleteFailure(t *testing.T) {
	store := new(mockMediaStore)
	images := []uploads.Image{{StorageID: "content/a"}, {StorageID: "content/b"}}

	store.On("DeleteMany", mock.Anything, []string{"content/a", "content/b"}).
		Return(errors.New("media host down"))

	// must not panic or propagate
	uploads.Rollback(store, images)
	store.AssertExpectations(t)
}

func TestRollbackNothingToDo(t *testing.T) {
	store := new(mockMediaStore)
	uploads.Rollback(store, nil)
	store.AssertNotCalled(t, "DeleteMany")
}

func TestCleanupDeletesBatch(t *testing.T) {
	store := new(mockMediaStore)
	store.On("DeleteMany", mock.Anything, []string{"x", "y"}).Return(nil)

	uploads.Cleanup(store, []string{"x", "y"})
	store.AssertExpectations(t)
}
